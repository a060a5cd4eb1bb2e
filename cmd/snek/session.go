package main

import (
	"log"

	"github.com/lixenwraith/snek/components"
	"github.com/lixenwraith/snek/config"
	"github.com/lixenwraith/snek/engine"
	"github.com/lixenwraith/snek/events"
	"github.com/lixenwraith/snek/status"
)

// session owns everything that outlives a single run: the event plumbing,
// metrics, pausable clock and the scheduler; restart swaps only the simulation
type session struct {
	cfg       *config.Config
	autopilot bool

	queue     *events.EventQueue
	router    *events.Router
	reg       *status.Registry
	clock     *engine.PausableClock
	scheduler *engine.ClockScheduler
}

func newSession(cfg *config.Config, autopilot bool) (*session, error) {
	s := &session{
		cfg:       cfg,
		autopilot: autopilot,
		queue:     events.NewEventQueue(),
		reg:       status.NewRegistry(),
		clock:     engine.NewPausableClock(nil),
	}
	s.router = events.NewRouter(s.queue)
	s.router.Register(status.NewEventHandler(s.reg))
	s.router.Register(events.HandlerFunc{
		Types: []events.EventType{events.EventAgentDied, events.EventSimulationEnded},
		Fn:    logOutcome,
	})

	sim, err := s.newSimulation()
	if err != nil {
		return nil, err
	}
	s.scheduler = engine.NewClockScheduler(sim, s.clock, cfg.TickInterval(), s.router, s.reg)
	return s, nil
}

func (s *session) newSimulation() (*engine.Simulation, error) {
	return engine.New(s.cfg,
		engine.WithEventQueue(s.queue),
		engine.WithPlayerAutopilot(s.autopilot),
	)
}

// restart replaces an ended run with a fresh Idle one on the next seed
func (s *session) restart() (*engine.Simulation, error) {
	s.cfg.Seed++
	sim, err := s.newSimulation()
	if err != nil {
		return nil, err
	}
	s.scheduler.SetSimulation(sim)
	log.Printf("[main] restarted with seed %d", s.cfg.Seed)
	return sim, nil
}

func logOutcome(ev events.GameEvent) {
	switch ev.Type {
	case events.EventAgentDied:
		who := "bot"
		if ev.Kind == components.KindPlayer {
			who = "player"
		}
		log.Printf("[game] tick %d: %s %d died at (%.1f,%.1f), score %d", ev.Tick, who, ev.AgentID, ev.Position.X, ev.Position.Y, ev.Score)
	case events.EventSimulationEnded:
		log.Printf("[game] tick %d: run ended, score %d", ev.Tick, ev.Score)
	}
}
