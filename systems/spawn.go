package systems

import (
	"math"

	"github.com/lixenwraith/snek/components"
	"github.com/lixenwraith/snek/vmath"
)

// Rand is the random source consumed by the systems
// Satisfied by *golang.org/x/exp/rand.Rand
type Rand interface {
	Float64() float64
}

// SamplePosition draws uniform points inside bounds shrunk by margin until
// blocked rejects none of them, at most retryCap draws
// Returns false when every draw was rejected
func SamplePosition(rng Rand, bounds components.WorldBounds, margin float64, retryCap int, blocked func(vmath.Vec2) bool) (vmath.Vec2, bool) {
	r := bounds.Radius() - margin
	if r < 0 {
		r = 0
	}
	for range retryCap {
		// sqrt for uniform area density
		dist := r * math.Sqrt(rng.Float64())
		theta := 2 * math.Pi * rng.Float64()
		p := bounds.Center().Add(vmath.FromAngle(theta).Scale(dist))
		if !bounds.ContainsWithMargin(p, margin) {
			continue
		}
		if blocked != nil && blocked(p) {
			continue
		}
		return p, true
	}
	return vmath.Vec2{}, false
}

// NearBody reports whether p lies within dist of any segment of an alive agent
func NearBody(p vmath.Vec2, agents []*components.Agent, dist float64) bool {
	d2 := dist * dist
	for _, a := range agents {
		if !a.Alive {
			continue
		}
		for _, seg := range a.Segments {
			if p.DistSq(seg) < d2 {
				return true
			}
		}
	}
	return false
}
