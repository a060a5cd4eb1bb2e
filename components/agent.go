package components

import (
	"github.com/lixenwraith/snek/constants"
	"github.com/lixenwraith/snek/vmath"
)

// AgentKind separates input-driven and policy-driven agents
type AgentKind uint8

const (
	KindPlayer AgentKind = iota
	KindAutonomous
)

func (k AgentKind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindAutonomous:
		return "Autonomous"
	default:
		return "Unknown"
	}
}

// EffectKind names a timed effect
type EffectKind uint8

const (
	EffectMagnet EffectKind = iota
	EffectBigHead
)

func (e EffectKind) String() string {
	switch e {
	case EffectMagnet:
		return "Magnet"
	case EffectBigHead:
		return "BigHead"
	default:
		return "Unknown"
	}
}

// Effects is the tagged set of timers and flags on an agent
// Timers are aged only by Agent.TickEffects, called once per tick by the clock
type Effects struct {
	MagnetTicks  uint
	BigHeadTicks uint
	Boosting     bool
}

// Active reports whether the timer of kind e is running
func (e Effects) Active(kind EffectKind) bool {
	switch kind {
	case EffectMagnet:
		return e.MagnetTicks > 0
	case EffectBigHead:
		return e.BigHeadTicks > 0
	}
	return false
}

// Agent is one snake: an ordered chain of segments, head first
type Agent struct {
	ID       int
	Kind     AgentKind
	Segments []vmath.Vec2
	Heading  vmath.Vec2
	Score    int
	Alive    bool
	Effects  Effects

	// BaseSpeed is head displacement per tick before speed scaling
	BaseSpeed float64

	// Tint is a cosmetic marker set by special pickups, 0 = none
	Tint int

	// Generation increments on every (re)spawn so renderers can detect teleports
	Generation uint32
}

// NewAgent creates a live agent of length segments, all stacked at pos
func NewAgent(id int, kind AgentKind, pos, heading vmath.Vec2, segments int, baseSpeed float64) *Agent {
	a := &Agent{
		ID:        id,
		Kind:      kind,
		BaseSpeed: baseSpeed,
	}
	a.Respawn(pos, heading, segments)
	return a
}

// Head returns the first segment; callers must check Alive
func (a *Agent) Head() vmath.Vec2 {
	return a.Segments[0]
}

// Len returns the segment count
func (a *Agent) Len() int {
	return len(a.Segments)
}

// AdvanceHead computes the next head position without mutating state
func (a *Agent) AdvanceHead(speedScale float64) vmath.Vec2 {
	return a.Segments[0].Add(a.Heading.Scale(a.BaseSpeed * speedScale))
}

// SpeedScale returns the boost multiplier if boosting can be paid for, else 1
func (a *Agent) SpeedScale(boostMultiplier float64) float64 {
	if a.Effects.Boosting && len(a.Segments) > 1 {
		return boostMultiplier
	}
	return 1
}

// CommitMove pushes newHead to the front and trims the tail
// Without grew the last segment is removed; extraDrop removes one more
// The chain never shrinks below one segment
func (a *Agent) CommitMove(newHead vmath.Vec2, grew, extraDrop bool) {
	a.Segments = append(a.Segments, vmath.Vec2{})
	copy(a.Segments[1:], a.Segments)
	a.Segments[0] = newHead

	if !grew && len(a.Segments) > 1 {
		a.Segments = a.Segments[:len(a.Segments)-1]
	}
	if extraDrop && len(a.Segments) > 1 {
		a.Segments = a.Segments[:len(a.Segments)-1]
	}
}

// ApplyPickup applies score, growth and effect timers of food
// Returns the effect started, if any
func (a *Agent) ApplyPickup(food FoodItem) (EffectKind, bool) {
	a.Score += food.ScoreValue
	if a.Score < 0 {
		a.Score = 0
	}

	if n := len(a.Segments); n > 0 {
		tail := a.Segments[n-1]
		for range food.GrowthCount {
			a.Segments = append(a.Segments, tail)
		}
	}

	switch food.Type {
	case FoodSpecial:
		a.Tint = int(food.ID%constants.TintCount) + 1
	case FoodMagnetic:
		if food.EffectTicks > 0 {
			a.Effects.MagnetTicks = food.EffectTicks
			return EffectMagnet, true
		}
	case FoodBigHead:
		if food.EffectTicks > 0 {
			a.Effects.BigHeadTicks = food.EffectTicks
			return EffectBigHead, true
		}
	}
	return 0, false
}

// TickEffects ages every running timer by one tick
// Returns effects that expired on this tick
func (a *Agent) TickEffects() []EffectKind {
	var expired []EffectKind
	if a.Effects.MagnetTicks > 0 {
		a.Effects.MagnetTicks--
		if a.Effects.MagnetTicks == 0 {
			expired = append(expired, EffectMagnet)
		}
	}
	if a.Effects.BigHeadTicks > 0 {
		a.Effects.BigHeadTicks--
		if a.Effects.BigHeadTicks == 0 {
			expired = append(expired, EffectBigHead)
		}
	}
	return expired
}

// SetHeading applies a requested direction, normalizing it
// Rejected, keeping the previous heading, when the request is zero-length,
// non-finite, or an exact reversal while the agent has a body
func (a *Agent) SetHeading(h vmath.Vec2) bool {
	n, ok := h.Normalize()
	if !ok {
		return false
	}
	if len(a.Segments) > 1 && vmath.IsReversal(a.Heading, n) {
		return false
	}
	a.Heading = n
	return true
}

// Kill marks the agent dead, halves its score (floored) and returns the corpse
// The returned slice is owned by the caller
func (a *Agent) Kill() []vmath.Vec2 {
	corpse := a.Segments
	a.Segments = nil
	a.Alive = false
	a.Score /= 2
	a.Effects = Effects{}
	return corpse
}

// Respawn revives the agent at pos with a fresh body
// Score is left untouched; Kill already applied the death penalty
func (a *Agent) Respawn(pos, heading vmath.Vec2, segments int) {
	if segments < 1 {
		segments = 1
	}
	a.Segments = make([]vmath.Vec2, segments)
	for i := range a.Segments {
		a.Segments[i] = pos
	}
	if n, ok := heading.Normalize(); ok {
		a.Heading = n
	} else {
		a.Heading = vmath.Vec2{}
	}
	a.Alive = true
	a.Effects = Effects{}
	a.Tint = 0
	a.Generation++
}
