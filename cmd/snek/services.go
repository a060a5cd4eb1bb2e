package main

import (
	"context"
	"log"
	"time"

	"github.com/lixenwraith/snek/audio"
	"github.com/lixenwraith/snek/engine"
	"github.com/lixenwraith/snek/feed"
	"github.com/lixenwraith/snek/service"
)

const feedStopTimeout = 2 * time.Second

// soundService opens the speaker on Init and closes it on Stop
// A missing audio device leaves the game silent instead of failing startup
type soundService struct {
	sound *audio.SoundManager
}

func (s *soundService) Name() string           { return "audio" }
func (s *soundService) Dependencies() []string { return nil }

func (s *soundService) Init(...any) error {
	if err := s.sound.Initialize(); err != nil {
		log.Printf("[service] audio unavailable: %v", err)
	}
	return nil
}

func (s *soundService) Start() error { return nil }

func (s *soundService) Stop() error {
	s.sound.Cleanup()
	return nil
}

// feedService runs the spectator websocket listener
type feedService struct {
	srv *feed.Server
}

func (f *feedService) Name() string           { return "feed" }
func (f *feedService) Dependencies() []string { return nil }
func (f *feedService) Init(...any) error      { return nil }

func (f *feedService) Start() error { return f.srv.Start() }

func (f *feedService) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), feedStopTimeout)
	defer cancel()
	return f.srv.Stop(ctx)
}

// schedulerService drives real-time ticks; it starts after its listeners' backends
type schedulerService struct {
	scheduler *engine.ClockScheduler
	deps      []string
}

func (s *schedulerService) Name() string           { return "scheduler" }
func (s *schedulerService) Dependencies() []string { return s.deps }
func (s *schedulerService) Init(...any) error      { return nil }

func (s *schedulerService) Start() error {
	s.scheduler.Start()
	return nil
}

func (s *schedulerService) Stop() error {
	s.scheduler.Stop()
	return nil
}

// startServices registers the optional backends ahead of the scheduler and starts them all
func startServices(sched *engine.ClockScheduler, sound *audio.SoundManager, srv *feed.Server) (*service.Hub, error) {
	hub := service.NewHub()
	var deps []string
	if sound != nil {
		hub.Register(&soundService{sound: sound})
		deps = append(deps, "audio")
	}
	if srv != nil {
		hub.Register(&feedService{srv: srv})
		deps = append(deps, "feed")
	}
	hub.Register(&schedulerService{scheduler: sched, deps: deps})

	if err := hub.InitAll(); err != nil {
		return nil, err
	}
	if err := hub.StartAll(); err != nil {
		return nil, err
	}
	return hub, nil
}
