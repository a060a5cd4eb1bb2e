package render

import (
	"sync"
	"time"

	"github.com/lixenwraith/snek/engine"
	"github.com/lixenwraith/snek/vmath"
)

// Frame is one interpolated view of the world, ready to draw
type Frame struct {
	Tick   uint64
	Phase  engine.Phase
	Alpha  float64
	Agents []engine.AgentView
	Foods  []engine.FoodView
}

// Bridge receives snapshot pairs from the scheduler goroutine and hands
// interpolated frames to the render loop
// Alpha is derived from pausable time so a paused world holds still
type Bridge struct {
	mu          sync.RWMutex
	prev        engine.Snapshot
	curr        engine.Snapshot
	publishedAt time.Time

	clock    *engine.PausableClock
	interval time.Duration
}

// NewBridge creates a bridge seeded with an initial snapshot
func NewBridge(clock *engine.PausableClock, interval time.Duration, initial engine.Snapshot) *Bridge {
	b := &Bridge{clock: clock, interval: interval}
	b.Reset(initial)
	return b
}

// OnTick implements engine.TickListener
func (b *Bridge) OnTick(prev, curr engine.Snapshot) {
	now := b.clock.Now()
	b.mu.Lock()
	b.prev, b.curr = prev, curr
	b.publishedAt = now
	b.mu.Unlock()
}

// Reset drops interpolation history, used when a simulation is replaced
func (b *Bridge) Reset(snap engine.Snapshot) {
	now := b.clock.Now()
	b.mu.Lock()
	b.prev, b.curr = snap, snap
	b.publishedAt = now
	b.mu.Unlock()
}

// Alpha returns the tick progress in [0,1] since the last publish
func (b *Bridge) Alpha() float64 {
	b.mu.RLock()
	published := b.publishedAt
	b.mu.RUnlock()

	if b.interval <= 0 {
		return 1
	}
	elapsed := b.clock.Now().Sub(published)
	return vmath.Clamp01(float64(elapsed) / float64(b.interval))
}

// Current returns the latest published snapshot
func (b *Bridge) Current() engine.Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.curr
}

// Frame samples the pair at the current alpha
func (b *Bridge) Frame() Frame {
	return b.Sample(b.Alpha())
}

// Sample interpolates between the previous and current snapshot
// alpha 0 reproduces the previous positions, alpha 1 the current ones
// Agents that respawned since prev, and new food, are drawn at their current position
func (b *Bridge) Sample(alpha float64) Frame {
	b.mu.RLock()
	prev, curr := b.prev, b.curr
	b.mu.RUnlock()

	alpha = vmath.Clamp01(alpha)
	f := Frame{
		Tick:   curr.Tick,
		Phase:  curr.Phase,
		Alpha:  alpha,
		Agents: make([]engine.AgentView, len(curr.Agents)),
		Foods:  make([]engine.FoodView, len(curr.Foods)),
	}

	for i, a := range curr.Agents {
		out := a
		out.Segments = append([]vmath.Vec2(nil), a.Segments...)
		if p, ok := prev.Agent(a.ID); ok && p.Generation == a.Generation && len(p.Segments) > 0 {
			for j := range out.Segments {
				// Segments added by growth start from the old tail
				from := p.Segments[min(j, len(p.Segments)-1)]
				out.Segments[j] = vmath.Lerp(from, a.Segments[j], alpha)
			}
		}
		f.Agents[i] = out
	}

	prevFood := make(map[uint64]vmath.Vec2, len(prev.Foods))
	for _, fd := range prev.Foods {
		prevFood[fd.ID] = fd.Position
	}
	for i, fd := range curr.Foods {
		out := fd
		if from, ok := prevFood[fd.ID]; ok {
			out.Position = vmath.Lerp(from, fd.Position, alpha)
		}
		f.Foods[i] = out
	}
	return f
}
