package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snek/audio"
	"github.com/lixenwraith/snek/config"
	"github.com/lixenwraith/snek/core"
	"github.com/lixenwraith/snek/engine"
	"github.com/lixenwraith/snek/feed"
	"github.com/lixenwraith/snek/input"
	"github.com/lixenwraith/snek/render"
)

// runTUI runs the interactive game until the player quits
func runTUI(cfg *config.Config, opts options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	// Goroutine crashes restore the terminal before printing the stack
	core.SetCrashRestore(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	sess, err := newSession(cfg, opts.autopilot)
	if err != nil {
		return err
	}
	sim := sess.scheduler.Simulation()

	sound := audio.NewSoundManager(audio.FromConfig(cfg.Audio))
	if opts.mute && !sound.IsMuted() {
		sound.ToggleMute()
	}
	sess.router.Register(audio.NewEventHandler(sound))

	renderer := render.NewTerminalRenderer(screen, sim.Bounds())
	bridge := render.NewBridge(sess.clock, cfg.TickInterval(), sim.Snapshot())
	sess.scheduler.AddListener(bridge)

	var srv *feed.Server
	if cfg.Feed.Addr != "" {
		hub := feed.NewHub(sess.reg)
		sess.scheduler.AddListener(hub)
		srv = feed.NewServer(cfg.Feed.Addr, hub)
	}

	translator := input.NewTranslator(nil, renderer.Viewport())

	services, err := startServices(sess.scheduler, sound, srv)
	if err != nil {
		return fmt.Errorf("start services: %w", err)
	}
	defer services.StopAll()

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(cfg.FrameInterval())
	defer frameTicker.Stop()

	var paused, muted bool
	muted = sound.IsMuted()

	for {
		select {
		case ev := <-eventChan:
			for _, in := range translator.Translate(ev) {
				if in.Steering() {
					sim.Post(in)
					continue
				}

				switch in.Type {
				case input.IntentQuit:
					return nil

				case input.IntentStart:
					if err := sim.Start(); err != nil && !errors.Is(err, engine.ErrAlreadyStarted) {
						log.Printf("[main] start: %v", err)
					}

				case input.IntentRestart:
					if !sim.IsEnded() {
						continue
					}
					next, err := sess.restart()
					if err != nil {
						log.Printf("[main] restart: %v", err)
						continue
					}
					sim = next
					bridge.Reset(sim.Snapshot())

				case input.IntentPause:
					if sim.Phase() == engine.PhaseRunning {
						paused = sess.clock.Toggle()
					}

				case input.IntentToggleMute:
					muted = sound.ToggleMute()

				case input.IntentResize:
					w, h := screen.Size()
					renderer.UpdateDimensions(w, h)
					screen.Sync()
				}
			}

		case <-frameTicker.C:
			hud := render.HUD{Paused: paused, Muted: muted}
			if opts.debug {
				hud.Status = sess.reg.Summary()
			}
			renderer.RenderFrame(bridge.Frame(), hud)
		}
	}
}
