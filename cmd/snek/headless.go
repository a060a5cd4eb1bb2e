package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/lixenwraith/snek/config"
	"github.com/lixenwraith/snek/feed"
)

// runHeadless drives an autopiloted run without a terminal
// With a spectator feed the run keeps wall-clock pace, otherwise ticks run back to back
func runHeadless(cfg *config.Config, opts options) int {
	sess, err := newSession(cfg, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snek: %v\n", err)
		return 1
	}
	sim := sess.scheduler.Simulation()
	if err := sim.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "snek: %v\n", err)
		return 1
	}

	if cfg.Feed.Addr == "" {
		for i := 0; i < opts.ticks && sess.scheduler.Step(); i++ {
		}
	} else {
		hub := feed.NewHub(sess.reg)
		sess.scheduler.AddListener(hub)
		services, err := startServices(sess.scheduler, nil, feed.NewServer(cfg.Feed.Addr, hub))
		if err != nil {
			fmt.Fprintf(os.Stderr, "snek: %v\n", err)
			return 1
		}

		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt)
		defer signal.Stop(interrupt)

		poll := time.NewTicker(cfg.TickInterval())
	wait:
		for !sim.IsEnded() && sess.scheduler.TickCount() < uint64(opts.ticks) {
			select {
			case <-interrupt:
				break wait
			case <-poll.C:
			}
		}
		poll.Stop()
		services.StopAll()
	}

	log.Printf("[main] headless run finished at tick %d", sim.TickCount())
	fmt.Printf("ticks=%d phase=%s score=%d\n%s\n", sim.TickCount(), sim.Phase(), sim.PlayerScore(), sess.reg.Summary())
	return 0
}
