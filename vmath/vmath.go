package vmath

import "math"

// Epsilon is the tolerance used for heading comparisons
const Epsilon = 1e-9

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// FromAngle returns the unit vector pointing at rad
func FromAngle(rad float64) Vec2 {
	sin, cos := math.Sincos(rad)
	return Vec2{cos, sin}
}

// IsReversal reports whether next points exactly opposite to cur
// Both inputs are expected to be unit vectors
func IsReversal(cur, next Vec2) bool {
	if cur.IsZero() || next.IsZero() {
		return false
	}
	return math.Abs(cur.X+next.X) <= Epsilon && math.Abs(cur.Y+next.Y) <= Epsilon
}

// Clamp01 limits f to [0, 1]
func Clamp01(f float64) float64 {
	switch {
	case f < 0 || math.IsNaN(f):
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
