package engine

import (
	"sync"
	"time"
)

// PausableClock derives simulation time from a real clock, frozen while paused
// The logic schedule and render interpolation both read it
type PausableClock struct {
	mu sync.RWMutex

	real      Clock
	paused    bool
	pausedAt  time.Time     // real time the current pause began
	pausedSum time.Duration // total of finished pauses
}

// NewPausableClock creates a running clock over real, nil selects the system clock
func NewPausableClock(real Clock) *PausableClock {
	if real == nil {
		real = NewTimeProvider()
	}
	return &PausableClock{real: real}
}

// Now returns simulation time
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused {
		return pc.pausedAt.Add(-pc.pausedSum)
	}
	return pc.real.Now().Add(-pc.pausedSum)
}

// Pause stops simulation time, no-op when already paused
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pausedAt = pc.real.Now()
}

// Resume continues simulation time, no-op when running
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.pausedSum += pc.real.Now().Sub(pc.pausedAt)
	pc.paused = false
	pc.pausedAt = time.Time{}
}

// Toggle flips the pause state and returns the new one
func (pc *PausableClock) Toggle() bool {
	pc.mu.Lock()
	paused := pc.paused
	pc.mu.Unlock()

	if paused {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// PausedTotal returns cumulative pause time including a running pause
func (pc *PausableClock) PausedTotal() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.pausedSum
	if pc.paused {
		total += pc.real.Now().Sub(pc.pausedAt)
	}
	return total
}
