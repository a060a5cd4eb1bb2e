package engine

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/snek/components"
	"github.com/lixenwraith/snek/config"
	"github.com/lixenwraith/snek/constants"
	"github.com/lixenwraith/snek/events"
	"github.com/lixenwraith/snek/input"
	"github.com/lixenwraith/snek/systems"
	"github.com/lixenwraith/snek/vmath"
)

var (
	ErrNotRunning     = errors.New("simulation is not running")
	ErrAlreadyStarted = errors.New("simulation already started")
	ErrNoSpawn        = errors.New("no free spawn position")
)

// Option configures a Simulation at construction
type Option func(*Simulation)

// WithRand injects the random source, default is seeded from config
func WithRand(rng systems.Rand) Option {
	return func(s *Simulation) { s.rng = rng }
}

// WithEventQueue routes tick outcomes into q
func WithEventQueue(q *events.EventQueue) Option {
	return func(s *Simulation) { s.queue = q }
}

// WithPlayerAutopilot lets the autonomous policy drive the player
func WithPlayerAutopilot(on bool) Option {
	return func(s *Simulation) { s.autopilot = on }
}

// Simulation is the fixed-rate world clock: it owns every agent, the food
// registry and the world bounds, and is the only mutator of them
// All methods are safe for concurrent use; Tick holds the lock for its
// whole step so readers never observe a partial tick
type Simulation struct {
	mu sync.Mutex

	cfg       *config.Config
	bounds    components.WorldBounds
	rng       systems.Rand
	queue     *events.EventQueue
	food      *systems.FoodRegistry
	collision *systems.CollisionResolver
	pilot     *systems.Autopilot

	agents []*components.Agent // index 0 is the player
	player *components.Agent

	mailbox   *input.Mailbox
	control   input.Control
	autopilot bool

	phase Phase
	tick  uint64
	prev  Snapshot
	curr  Snapshot
}

// New builds an Idle simulation with the player, cfg.Agent.Bots autonomous
// agents and an initial food batch
func New(cfg *config.Config, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bounds, err := cfg.Bounds()
	if err != nil {
		return nil, err
	}

	s := &Simulation{
		cfg:     cfg,
		bounds:  bounds,
		mailbox: input.NewMailbox(),
		phase:   PhaseIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(cfg.Seed))
	}
	if s.queue == nil {
		s.queue = events.NewEventQueue()
	}

	s.food = systems.NewFoodRegistry(cfg, bounds, s.rng)
	s.collision = systems.NewCollisionResolver(cfg, bounds)
	s.pilot = systems.NewAutopilot(s.collision, s.food, cfg.Agent.BoostMultiplier, int64(cfg.Seed))

	for id := 0; id <= cfg.Agent.Bots; id++ {
		kind := components.KindAutonomous
		if id == constants.PlayerID {
			kind = components.KindPlayer
		}
		pos, ok := s.spawnPoint()
		if !ok {
			return nil, fmt.Errorf("place agent %d: %w", id, ErrNoSpawn)
		}
		a := components.NewAgent(id, kind, pos, s.spawnHeading(pos), cfg.Agent.InitialSegments, cfg.Agent.BaseSpeed)
		s.agents = append(s.agents, a)
	}
	s.player = s.agents[0]

	s.food.SpawnBatch(s.agents)

	s.curr = s.snapshot()
	s.prev = s.curr
	return s, nil
}

// Start moves Idle -> Running
func (s *Simulation) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !CanTransition(s.phase, PhaseRunning) {
		return ErrAlreadyStarted
	}
	s.phase = PhaseRunning
	s.curr.Phase = s.phase
	s.emit(events.GameEvent{Type: events.EventSimulationStarted})
	return nil
}

// Tick advances the world by one step:
// steer, candidate heads, collisions, commit and pickups, magnetism and
// effect aging, respawn, opportunistic spawn
func (s *Simulation) Tick() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseRunning {
		return ErrNotRunning
	}

	// 1. Previous snapshot for interpolation
	s.prev = s.curr
	s.tick++

	dead := make([]systems.Cause, len(s.agents))

	// 2. Steer
	s.steer(dead)

	// 3. Candidate heads, boxed-in agents do not move
	cands := make([]vmath.Vec2, len(s.agents))
	for i, a := range s.agents {
		if a.Alive && dead[i] == systems.CauseNone {
			cands[i] = a.AdvanceHead(a.SpeedScale(s.cfg.Agent.BoostMultiplier))
		}
	}

	// 4. Collisions against the pre-move world
	s.resolveCollisions(cands, dead)
	playerDied := dead[0] != systems.CauseNone
	s.applyDeaths(dead)

	if playerDied {
		// Partners of a fatal head-on still respawn before the run ends
		s.respawnDead()
		s.end()
		s.curr = s.snapshot()
		return nil
	}

	// 5. Commit moves and pickups
	s.commit(cands)

	// 6. Magnetism and effect timers
	s.food.ApplyMagnetism(s.agents)
	s.ageEffects()

	s.respawnDead()

	// 7. Opportunistic spawn, mandatory when empty
	if spawned := s.food.MaybeSpawn(s.agents); len(spawned) > 0 {
		s.emit(events.GameEvent{Type: events.EventFoodSpawned, AgentID: -1, Count: len(spawned)})
	}

	s.curr = s.snapshot()
	return nil
}

func (s *Simulation) steer(dead []systems.Cause) {
	s.control.Apply(s.mailbox.Drain())

	for i, a := range s.agents {
		if !a.Alive {
			continue
		}
		if a.Kind == components.KindPlayer {
			a.Effects.Boosting = s.control.Boosting
			if !s.autopilot {
				systems.SteerPlayer(a, s.control.Direction(a.Head()))
				continue
			}
		}
		if !s.pilot.Steer(a, s.agents, s.tick) {
			dead[i] = systems.CauseBoxedIn
		}
	}
}

func (s *Simulation) resolveCollisions(cands []vmath.Vec2, dead []systems.Cause) {
	moving := func(i int) bool {
		return s.agents[i].Alive && dead[i] != systems.CauseBoxedIn
	}

	for i, a := range s.agents {
		if !moving(i) {
			continue
		}
		if c := s.collision.IsFatal(cands[i], a, s.agents); c.Fatal() {
			dead[i] = c.Cause
		}
	}

	// Head-on is fatal to both sides
	for i := range s.agents {
		if !moving(i) {
			continue
		}
		for j := i + 1; j < len(s.agents); j++ {
			if !moving(j) {
				continue
			}
			if s.collision.HeadOn(cands[i], s.agents[i].Head(), cands[j], s.agents[j].Head()) {
				dead[i] = systems.CauseHeadOn
				dead[j] = systems.CauseHeadOn
			}
		}
	}
}

// applyDeaths converts autonomous corpses to food; the player keeps its body
// and score for the final frame
func (s *Simulation) applyDeaths(dead []systems.Cause) {
	for i, cause := range dead {
		if cause == systems.CauseNone {
			continue
		}
		a := s.agents[i]
		head := a.Head()

		if a.Kind == components.KindPlayer {
			a.Alive = false
			log.Printf("[sim] tick %d: player died (%s), score %d", s.tick, cause, a.Score)
			s.emit(events.GameEvent{Type: events.EventAgentDied, AgentID: a.ID, Kind: a.Kind, Score: a.Score, Position: head})
			continue
		}

		corpse := a.Kill()
		spawned := s.food.SpawnFromCorpse(corpse)
		s.emit(events.GameEvent{Type: events.EventAgentDied, AgentID: a.ID, Kind: a.Kind, Score: a.Score, Position: head, Count: len(corpse)})
		s.emit(events.GameEvent{Type: events.EventFoodSpawned, AgentID: a.ID, Count: len(spawned)})
	}
}

func (s *Simulation) commit(cands []vmath.Vec2) {
	for i, a := range s.agents {
		if !a.Alive {
			continue
		}
		extraDrop := a.SpeedScale(s.cfg.Agent.BoostMultiplier) > 1

		item, ok := s.collision.FindPickup(cands[i], a, s.food)
		if !ok {
			a.CommitMove(cands[i], false, extraDrop)
			continue
		}

		s.food.Remove(item.ID)
		a.CommitMove(cands[i], true, extraDrop)
		effect, started := a.ApplyPickup(item)
		s.emit(events.GameEvent{
			Type:     events.EventFoodEaten,
			AgentID:  a.ID,
			Kind:     a.Kind,
			FoodID:   item.ID,
			Food:     item.Type,
			Score:    a.Score,
			Position: item.Position,
		})
		if started {
			s.emit(events.GameEvent{Type: events.EventEffectStarted, AgentID: a.ID, Kind: a.Kind, Effect: effect})
		}
	}
}

func (s *Simulation) ageEffects() {
	for _, a := range s.agents {
		if !a.Alive {
			continue
		}
		for _, effect := range a.TickEffects() {
			s.emit(events.GameEvent{Type: events.EventEffectExpired, AgentID: a.ID, Kind: a.Kind, Effect: effect})
		}
	}
}

// respawnDead revives dead autonomous agents; a failed placement is retried next tick
func (s *Simulation) respawnDead() {
	for _, a := range s.agents {
		if a.Alive || a.Kind == components.KindPlayer {
			continue
		}
		pos, ok := s.spawnPoint()
		if !ok {
			log.Printf("[sim] tick %d: respawn of agent %d deferred", s.tick, a.ID)
			continue
		}
		a.Respawn(pos, s.spawnHeading(pos), s.cfg.Agent.InitialSegments)
		s.emit(events.GameEvent{Type: events.EventAgentRespawned, AgentID: a.ID, Kind: a.Kind, Score: a.Score, Position: pos})
	}
}

func (s *Simulation) end() {
	s.phase = PhaseEnded
	log.Printf("[sim] ended at tick %d, player score %d", s.tick, s.player.Score)
	s.emit(events.GameEvent{Type: events.EventSimulationEnded, AgentID: s.player.ID, Kind: s.player.Kind, Score: s.player.Score})
}

func (s *Simulation) spawnPoint() (vmath.Vec2, bool) {
	clearance := s.cfg.Collision.SpawnClearance
	return systems.SamplePosition(s.rng, s.bounds, constants.SpawnEdgeMargin, s.cfg.Food.RetryCap, func(p vmath.Vec2) bool {
		return systems.NearBody(p, s.agents, clearance)
	})
}

// spawnHeading points a fresh agent at the world center
func (s *Simulation) spawnHeading(pos vmath.Vec2) vmath.Vec2 {
	if h, ok := s.bounds.Center().Sub(pos).Normalize(); ok {
		return h
	}
	return vmath.V(1, 0)
}

func (s *Simulation) emit(ev events.GameEvent) {
	ev.Tick = s.tick
	s.queue.Push(ev)
}

func (s *Simulation) snapshot() Snapshot {
	return takeSnapshot(s.tick, s.phase, s.agents, s.food.Items())
}

// Snapshot returns the current tick snapshot
func (s *Simulation) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.curr
}

// Snapshots returns the previous and current tick snapshots
func (s *Simulation) Snapshots() (prev, curr Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prev, s.curr
}

func (s *Simulation) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *Simulation) IsEnded() bool {
	return s.Phase() == PhaseEnded
}

func (s *Simulation) PlayerScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.player.Score
}

// TickCount returns the number of completed ticks
func (s *Simulation) TickCount() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tick
}

// Post queues a steering intent for the player's next tick
func (s *Simulation) Post(i input.Intent) {
	s.mailbox.Post(i)
}

// Events returns the queue tick outcomes are pushed to
func (s *Simulation) Events() *events.EventQueue {
	return s.queue
}

// SetAutopilot switches the player between intents and the autonomous policy
func (s *Simulation) SetAutopilot(on bool) {
	s.mu.Lock()
	s.autopilot = on
	s.mu.Unlock()
}

// Bounds returns the world region
func (s *Simulation) Bounds() components.WorldBounds {
	return s.bounds
}
