package constants

import "time"

// Eat Sound Timing
const (
	EatSoundDuration = 120 * time.Millisecond
	EatSoundAttack   = 5 * time.Millisecond
	EatSoundRelease  = 80 * time.Millisecond
)

// Special Sound Timing (two-note chime)
const (
	SpecialSoundNote1Duration = 80 * time.Millisecond
	SpecialSoundNote2Duration = 240 * time.Millisecond
	SpecialSoundAttack        = 5 * time.Millisecond
	SpecialSoundNote1Release  = 40 * time.Millisecond
	SpecialSoundNote2Release  = 180 * time.Millisecond
)

// PowerUp Sound Timing
const (
	PowerUpSoundDuration = 300 * time.Millisecond
	PowerUpSoundAttack   = 120 * time.Millisecond
	PowerUpSoundRelease  = 150 * time.Millisecond
)

// Death Sound Timing
const (
	DeathSoundDuration = 200 * time.Millisecond
	DeathSoundAttack   = 5 * time.Millisecond
	DeathSoundRelease  = 120 * time.Millisecond
)

// GameOver Sound Timing
const (
	GameOverNoteDuration = 180 * time.Millisecond
	GameOverSoundAttack  = 5 * time.Millisecond
	GameOverSoundRelease = 120 * time.Millisecond
)

// Audio Engine
const (
	AudioSampleRate   = 44100
	AudioBufferPeriod = 100 * time.Millisecond
)
