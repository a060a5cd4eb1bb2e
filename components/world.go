package components

import (
	"errors"
	"math"

	"github.com/lixenwraith/snek/vmath"
)

// ErrInvalidRadius is returned for a non-positive or non-finite world radius
var ErrInvalidRadius = errors.New("world radius must be positive and finite")

// WorldBounds is the circular playable region, immutable after construction
type WorldBounds struct {
	center vmath.Vec2
	radius float64
}

// NewWorldBounds validates and creates world bounds
func NewWorldBounds(center vmath.Vec2, radius float64) (WorldBounds, error) {
	if !(radius > 0) || math.IsInf(radius, 0) || !center.IsFinite() {
		return WorldBounds{}, ErrInvalidRadius
	}
	return WorldBounds{center: center, radius: radius}, nil
}

func (w WorldBounds) Center() vmath.Vec2 { return w.center }
func (w WorldBounds) Radius() float64    { return w.radius }

// Contains reports whether p lies inside or on the boundary circle
func (w WorldBounds) Contains(p vmath.Vec2) bool {
	return p.DistSq(w.center) <= w.radius*w.radius
}

// ContainsWithMargin reports whether p lies at least margin inside the boundary
func (w WorldBounds) ContainsWithMargin(p vmath.Vec2, margin float64) bool {
	r := w.radius - margin
	if r <= 0 {
		return p.Equal(w.center)
	}
	return p.DistSq(w.center) <= r*r
}
