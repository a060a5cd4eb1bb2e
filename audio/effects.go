package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/snek/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves for a fixed duration
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(uint64(freq*1000) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain, math.Log2(0) is -Inf so 0 is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is a sine of freq for duration, from the beep generator when available
func tone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return NewOscillator(freq, duration, WaveSine, rate)
	}
	return beep.Take(rate.N(duration), sine)
}

// CreateEatSound generates a short blip for a normal pickup
func CreateEatSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	t := tone(660, constants.EatSoundDuration, rate)
	shaped := NewEnvelope(t, constants.EatSoundDuration, constants.EatSoundAttack, constants.EatSoundRelease, rate)

	return newVolume(shaped, cfg.volume(SoundEat))
}

// CreateSpecialSound generates a two-note chime for a special pickup
func CreateSpecialSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// First note (B5)
	n1 := NewOscillator(987.77, constants.SpecialSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.SpecialSoundNote1Duration, constants.SpecialSoundAttack, constants.SpecialSoundNote1Release, rate)

	// Second note (E6)
	n2 := NewOscillator(1318.51, constants.SpecialSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.SpecialSoundNote2Duration, constants.SpecialSoundAttack, constants.SpecialSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.volume(SoundSpecial))
}

// CreatePowerUpSound generates a rising fifth for magnet and big-head pickups
func CreatePowerUpSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	fund := tone(440, constants.PowerUpSoundDuration, rate)
	fundShaped := NewEnvelope(fund, constants.PowerUpSoundDuration, constants.PowerUpSoundAttack, constants.PowerUpSoundRelease, rate)

	fifth := tone(660, constants.PowerUpSoundDuration, rate)
	fifthShaped := NewEnvelope(fifth, constants.PowerUpSoundDuration, constants.PowerUpSoundAttack, constants.PowerUpSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.6),
		newVolume(fifthShaped, 0.4),
	)
	return newVolume(mixed, cfg.volume(SoundPowerUp))
}

// CreateDeathSound generates a noise burst over a low saw
func CreateDeathSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, constants.DeathSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, constants.DeathSoundDuration, constants.DeathSoundAttack, constants.DeathSoundRelease, rate)

	saw := NewOscillator(90, constants.DeathSoundDuration, WaveSaw, rate)
	sawShaped := NewEnvelope(saw, constants.DeathSoundDuration, constants.DeathSoundAttack, constants.DeathSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.4),
		newVolume(sawShaped, 0.6),
	)
	return newVolume(mixed, cfg.volume(SoundDeath))
}

// CreateGameOverSound generates a descending three-note phrase
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var notes []beep.Streamer
	for _, freq := range []float64{523.25, 392.0, 261.63} {
		t := tone(freq, constants.GameOverNoteDuration, rate)
		notes = append(notes, NewEnvelope(t, constants.GameOverNoteDuration, constants.GameOverSoundAttack, constants.GameOverSoundRelease, rate))
	}
	return newVolume(beep.Seq(notes...), cfg.volume(SoundGameOver))
}

// GetSoundEffect returns the streamer for soundType, nil for unknown types
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundEat:
		return CreateEatSound(cfg)
	case SoundSpecial:
		return CreateSpecialSound(cfg)
	case SoundPowerUp:
		return CreatePowerUpSound(cfg)
	case SoundDeath:
		return CreateDeathSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
