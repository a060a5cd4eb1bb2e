package constants

// CandidateOffsetsDeg are autonomous heading trials relative to the desired angle, in preference order
var CandidateOffsetsDeg = [...]float64{0, 15, -15, 30, -30, 45, -45}

// Wander Constants
// Used by autonomous agents when no food target exists
const (
	WanderFrequency  = 0.07 // noise input advance per tick
	WanderMaxTurnDeg = 30.0
	WanderAlpha      = 2.0
	WanderBeta       = 2.0
	WanderOctaves    = 3
)
