package audio

import (
	"github.com/lixenwraith/snek/config"
	"github.com/lixenwraith/snek/constants"
)

// AudioConfig holds synthesis and mixing settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 - 1.0
	SampleRate    int
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns the built-in mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: [soundTypeCount]float64{
			SoundEat:      0.4,
			SoundSpecial:  0.5,
			SoundPowerUp:  0.5,
			SoundDeath:    0.3,
			SoundGameOver: 0.6,
		},
	}
}

// FromConfig derives the audio settings from the application config
func FromConfig(cfg config.AudioConfig) *AudioConfig {
	ac := DefaultAudioConfig()
	ac.Enabled = cfg.Enabled
	ac.MasterVolume = min(max(cfg.MasterVolume, 0), 1)
	return ac
}

// volume returns the effective gain of a sound
func (c *AudioConfig) volume(s SoundType) float64 {
	if s < 0 || s >= soundTypeCount {
		return 0
	}
	return c.EffectVolumes[s] * c.MasterVolume
}
