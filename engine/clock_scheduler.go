package engine

import (
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/snek/constants"
	"github.com/lixenwraith/snek/core"
	"github.com/lixenwraith/snek/events"
	"github.com/lixenwraith/snek/status"
)

// TickListener receives the snapshot pair after every completed tick
// Called on the scheduler goroutine; implementations must not block
type TickListener interface {
	OnTick(prev, curr Snapshot)
}

// ClockScheduler drives Simulation.Tick on a fixed interval of pausable time
// Deadline-based with drift correction; falls back to rebasing when more than
// MaxTicksBehind intervals late
type ClockScheduler struct {
	mu  sync.RWMutex
	sim *Simulation

	clock  *PausableClock
	router *events.Router

	tickInterval     time.Duration
	nextTickDeadline time.Time

	listeners []TickListener
	tickCount atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	statTicks    *atomic.Int64
	statFoodLive *atomic.Int64
	statTickMS   *status.AtomicFloat
	statMaxMS    *status.AtomicFloat
}

// NewClockScheduler creates a scheduler; router and reg may be nil
func NewClockScheduler(sim *Simulation, clock *PausableClock, tickInterval time.Duration, router *events.Router, reg *status.Registry) *ClockScheduler {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &ClockScheduler{
		sim:          sim,
		clock:        clock,
		router:       router,
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
		statTicks:    reg.Ints.Get(status.KeyTicks),
		statFoodLive: reg.Ints.Get(status.KeyFoodLive),
		statTickMS:   reg.Floats.Get(status.KeyTickMS),
		statMaxMS:    reg.Floats.Get(status.KeyTickMaxMS),
	}
}

// AddListener registers l, must be called before Start()
func (cs *ClockScheduler) AddListener(l TickListener) {
	cs.listeners = append(cs.listeners, l)
}

// SetSimulation swaps the driven simulation, used by the restart flow
func (cs *ClockScheduler) SetSimulation(sim *Simulation) {
	cs.mu.Lock()
	cs.sim = sim
	cs.mu.Unlock()
}

func (cs *ClockScheduler) Simulation() *Simulation {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.sim
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for it to exit
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// TickCount returns the number of ticks this scheduler completed
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Step runs one tick synchronously, for hosts that drive time themselves
func (cs *ClockScheduler) Step() bool {
	return cs.processTick()
}

func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.mu.Lock()
	cs.nextTickDeadline = cs.clock.Now().Add(cs.tickInterval)
	cs.mu.Unlock()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		default:
		}

		var sleepDuration time.Duration

		if cs.clock.IsPaused() {
			// Game time is frozen, poll slowly
			sleepDuration = cs.tickInterval * 2
		} else {
			now := cs.clock.Now()

			cs.mu.RLock()
			deadline := cs.nextTickDeadline
			cs.mu.RUnlock()

			if !now.Before(deadline) {
				cs.processTick()

				cs.mu.Lock()
				cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
				if now.Sub(cs.nextTickDeadline) > cs.tickInterval*constants.MaxTicksBehind {
					cs.nextTickDeadline = now.Add(cs.tickInterval)
				}
				deadline = cs.nextTickDeadline
				cs.mu.Unlock()

				sleepDuration = max(deadline.Sub(cs.clock.Now()), 0)
			} else {
				sleepDuration = deadline.Sub(now)
			}
		}

		if sleepDuration > 0 {
			timer.Reset(sleepDuration)
			select {
			case <-timer.C:
			case <-cs.stopChan:
				return
			}
		}
	}
}

// processTick ticks the simulation, publishes snapshots and routes events
// Returns false when the simulation is not running
func (cs *ClockScheduler) processTick() bool {
	sim := cs.Simulation()

	start := time.Now()
	if err := sim.Tick(); err != nil {
		if !errors.Is(err, ErrNotRunning) {
			log.Printf("[scheduler] tick failed: %v", err)
		}
		return false
	}
	ms := float64(time.Since(start).Microseconds()) / 1000

	cs.tickCount.Add(1)
	cs.statTicks.Add(1)
	cs.statTickMS.Set(ms)
	cs.statMaxMS.SetMax(ms)

	prev, curr := sim.Snapshots()
	cs.statFoodLive.Store(int64(len(curr.Foods)))
	for _, l := range cs.listeners {
		l.OnTick(prev, curr)
	}
	if cs.router != nil {
		cs.router.DispatchAll()
	}
	return true
}
