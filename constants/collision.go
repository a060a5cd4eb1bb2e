package constants

// Collision Constants
const (
	// CollisionThreshold is the distance under which two segments touch
	CollisionThreshold = 0.8

	// NeckSegments is the count of leading segments skipped in self checks
	// The current head becomes the neck once the move commits
	NeckSegments = 1

	// PickupRadius is the default head-to-food consumption distance
	PickupRadius = 1.2

	// BigHeadPickupMultiplier scales PickupRadius while BigHead is active
	BigHeadPickupMultiplier = 2.0

	// SpawnClearance is the minimum distance of a new spawn from bodies and food
	SpawnClearance = 1.5

	// SpawnRetryCap bounds position resampling for one spawn attempt
	SpawnRetryCap = 32

	// SpawnEdgeMargin keeps (re)spawned agents away from the world edge
	SpawnEdgeMargin = 3.0
)
