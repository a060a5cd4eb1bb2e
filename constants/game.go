package constants

import "time"

// Loop Timing Constants
const (
	// TickInterval is the logic clock interval
	TickInterval = 100 * time.Millisecond

	// FrameInterval is the render schedule interval (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// MaxTicksBehind caps scheduler catch-up before the deadline is rebased
	MaxTicksBehind = 2
)

// World Constants
const (
	WorldCenterX = 20.0
	WorldCenterY = 20.0
	WorldRadius  = 20.0
)

// Agent Constants
const (
	// BaseSpeed is head displacement per tick in world units
	BaseSpeed = 1.0

	// BoostMultiplier scales speed while boosting
	BoostMultiplier = 1.5

	// InitialSegments is the length of a freshly spawned agent
	InitialSegments = 1

	// DefaultBotCount is the number of autonomous agents
	DefaultBotCount = 3

	// PlayerID is the fixed identity of the player agent
	PlayerID = 0
)

// Event Queue Constants
const (
	// EventQueueSize must be a power of two
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)
