package vmath

import "math"

// Vec2 is a point or displacement in world units
type Vec2 struct {
	X float64 `msgpack:"x" toml:"x"`
	Y float64 `msgpack:"y" toml:"y"`
}

// V is shorthand for Vec2{x, y}
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2       { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2       { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(f float64) Vec2  { return Vec2{v.X * f, v.Y * f} }
func (v Vec2) IsZero() bool          { return v.X == 0 && v.Y == 0 }
func (v Vec2) Equal(o Vec2) bool     { return v.X == o.X && v.Y == o.Y }
func (v Vec2) LenSq() float64        { return v.X*v.X + v.Y*v.Y }
func (v Vec2) Len() float64          { return math.Hypot(v.X, v.Y) }
func (v Vec2) Dist(o Vec2) float64   { return v.Sub(o).Len() }
func (v Vec2) DistSq(o Vec2) float64 { return v.Sub(o).LenSq() }

// IsFinite reports whether both components are neither NaN nor Inf
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// Normalize returns the unit vector and true, or the zero vector and false
// when the input is zero-length or non-finite
func (v Vec2) Normalize() (Vec2, bool) {
	if !v.IsFinite() {
		return Vec2{}, false
	}
	l := v.Len()
	if l == 0 || math.IsInf(l, 0) {
		return Vec2{}, false
	}
	n := Vec2{v.X / l, v.Y / l}
	if !n.IsFinite() {
		return Vec2{}, false
	}
	return n, true
}

// Rotate returns the vector rotated counter-clockwise by rad
func (v Vec2) Rotate(rad float64) Vec2 {
	sin, cos := math.Sincos(rad)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Angle returns the direction of the vector in radians, (-π, π]
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// ClampLen limits the vector length to maxLen preserving direction
func (v Vec2) ClampLen(maxLen float64) Vec2 {
	l := v.Len()
	if l <= maxLen || l == 0 {
		return v
	}
	return v.Scale(maxLen / l)
}

// Toward returns a displacement of at most step from v toward target,
// never passing it
func (v Vec2) Toward(target Vec2, step float64) Vec2 {
	d := target.Sub(v)
	return d.ClampLen(step)
}

// Lerp interpolates a→b; t=0 yields a exactly and t=1 yields b exactly
func Lerp(a, b Vec2, t float64) Vec2 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}
