package systems

import (
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/lixenwraith/snek/components"
	"github.com/lixenwraith/snek/constants"
	"github.com/lixenwraith/snek/vmath"
)

// SteerPlayer applies an intent-derived direction to a player agent
// A zero direction keeps the heading; the reversal guard applies
func SteerPlayer(a *components.Agent, dir vmath.Vec2) bool {
	if dir.IsZero() {
		return false
	}
	return a.SetHeading(dir)
}

// Autopilot is the autonomous steering policy: seek the nearest food with a
// greedy one-tick lookahead over a fixed set of angular offsets
type Autopilot struct {
	collision *CollisionResolver
	food      *FoodRegistry
	boost     float64
	noise     *perlin.Perlin
	offsets   [len(constants.CandidateOffsetsDeg)]float64
}

// NewAutopilot creates the policy; seed drives the wander noise
func NewAutopilot(collision *CollisionResolver, food *FoodRegistry, boostMultiplier float64, seed int64) *Autopilot {
	p := &Autopilot{
		collision: collision,
		food:      food,
		boost:     boostMultiplier,
		noise:     perlin.NewPerlin(constants.WanderAlpha, constants.WanderBeta, constants.WanderOctaves, seed),
	}
	for i, deg := range constants.CandidateOffsetsDeg {
		p.offsets[i] = vmath.DegToRad(deg)
	}
	return p
}

// Steer sets the heading of a to the first safe candidate
// Returns false when every candidate is fatal, the agent is boxed in
func (p *Autopilot) Steer(a *components.Agent, agents []*components.Agent, tick uint64) bool {
	if !a.Alive {
		return false
	}

	desired := p.desiredAngle(a, tick)
	head := a.Head()
	step := a.BaseSpeed * a.SpeedScale(p.boost)

	for _, off := range p.offsets {
		h := vmath.FromAngle(desired + off)
		if a.Len() > 1 && vmath.IsReversal(a.Heading, h) {
			continue
		}
		candidate := head.Add(h.Scale(step))
		if p.collision.IsFatal(candidate, a, agents).Fatal() {
			continue
		}
		a.SetHeading(h)
		return true
	}
	return false
}

// desiredAngle points at the nearest food, or wanders when none exists
func (p *Autopilot) desiredAngle(a *components.Agent, tick uint64) float64 {
	head := a.Head()
	if item, ok := p.food.Nearest(head); ok {
		if d := item.Position.Sub(head); !d.IsZero() {
			return d.Angle()
		}
	}

	base := a.Heading
	if base.IsZero() {
		// Spawn instant: head for the center
		base = p.collision.bounds.Center().Sub(head)
		if base.IsZero() {
			base = vmath.V(1, 0)
		}
	}

	// Per-agent phase so bots do not wander in lockstep
	x := float64(tick)*constants.WanderFrequency + float64(a.ID)*17.31
	n := math.Max(-1, math.Min(1, p.noise.Noise1D(x)))
	return base.Angle() + n*vmath.DegToRad(constants.WanderMaxTurnDeg)
}
