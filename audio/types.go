package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat      SoundType = iota // Normal food pickup
	SoundSpecial                   // Special food pickup
	SoundPowerUp                   // Magnet or big-head effect started
	SoundDeath                     // Autonomous agent died
	SoundGameOver                  // Player died
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundSpecial:
		return "special"
	case SoundPowerUp:
		return "powerup"
	case SoundDeath:
		return "death"
	case SoundGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrUnknownSound   = errors.New("unknown sound type")
)
