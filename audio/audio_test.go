package audio

import (
	"errors"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/snek/components"
	"github.com/lixenwraith/snek/config"
	"github.com/lixenwraith/snek/events"
)

func drainStreamer(s beep.Streamer) (total int) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)

	tests := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewOscillator(440, 10*time.Millisecond, tt.wave, rate)
			samples := make([][2]float64, 100)
			n, ok := osc.Stream(samples)
			if !ok || n != 100 {
				t.Fatalf("Stream() = %d, %v; want 100, true", n, ok)
			}
			for i := 0; i < n; i++ {
				if samples[i][0] < -1 || samples[i][0] > 1 {
					t.Errorf("sample %d out of range: %f", i, samples[i][0])
				}
				if tt.wave == WaveSquare && samples[i][0] != 1 && samples[i][0] != -1 {
					t.Errorf("square sample %d = %f", i, samples[i][0])
				}
			}
		})
	}
}

func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	if got, want := drainStreamer(osc), rate.N(100*time.Millisecond); got != want {
		t.Errorf("streamed %d samples, want %d", got, want)
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate) // phase stays 0: constant 1.0
	env := NewEnvelope(osc, time.Second, 100*time.Millisecond, 100*time.Millisecond, rate)

	samples := make([][2]float64, 1000)
	n, _ := env.Stream(samples)
	if n != 1000 {
		t.Fatalf("streamed %d samples, want 1000", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("first sample = %f, want 0 at attack start", samples[0][0])
	}
	if samples[500][0] != 1 {
		t.Errorf("sustain sample = %f, want 1", samples[500][0])
	}
	if samples[999][0] > 0.02 {
		t.Errorf("last sample = %f, want near 0 after release", samples[999][0])
	}
}

func TestSoundEffectsTerminate(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.SampleRate = 8000

	for s := SoundEat; s < soundTypeCount; s++ {
		t.Run(s.String(), func(t *testing.T) {
			streamer := GetSoundEffect(s, cfg)
			if streamer == nil {
				t.Fatal("GetSoundEffect() = nil")
			}
			if n := drainStreamer(streamer); n == 0 {
				t.Error("sound produced no samples")
			}
		})
	}

	if GetSoundEffect(soundTypeCount, cfg) != nil {
		t.Error("unknown sound type should return nil")
	}
}

func TestSoundManagerWithoutSpeaker(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); err != nil {
		t.Fatalf("Initialize() with audio disabled = %v", err)
	}
	if err := sm.Play(SoundEat); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Play() = %v, want ErrNotInitialized", err)
	}
	if err := sm.Play(soundTypeCount); !errors.Is(err, ErrUnknownSound) {
		t.Errorf("Play(unknown) = %v, want ErrUnknownSound", err)
	}
	if !sm.IsMuted() {
		t.Error("disabled audio should start muted")
	}
	if sm.ToggleMute() {
		t.Error("ToggleMute() should unmute")
	}

	// Cleanup without a speaker is a no-op
	sm.Cleanup()
}

func TestFromConfigClampsVolume(t *testing.T) {
	ac := FromConfig(config.AudioConfig{Enabled: true, MasterVolume: 3})
	if ac.MasterVolume != 1 {
		t.Errorf("MasterVolume = %v, want 1", ac.MasterVolume)
	}
	if !ac.Enabled {
		t.Error("Enabled lost")
	}
}

type recordingPlayer struct {
	played []SoundType
}

func (p *recordingPlayer) Play(s SoundType) error {
	p.played = append(p.played, s)
	return nil
}

func TestEventHandlerCues(t *testing.T) {
	tests := []struct {
		name string
		ev   events.GameEvent
		want []SoundType
	}{
		{"player eats normal", events.GameEvent{Type: events.EventFoodEaten, Kind: components.KindPlayer, Food: components.FoodNormal}, []SoundType{SoundEat}},
		{"player eats special", events.GameEvent{Type: events.EventFoodEaten, Kind: components.KindPlayer, Food: components.FoodSpecial}, []SoundType{SoundSpecial}},
		{"player eats magnet", events.GameEvent{Type: events.EventFoodEaten, Kind: components.KindPlayer, Food: components.FoodMagnetic}, nil},
		{"bot eats", events.GameEvent{Type: events.EventFoodEaten, Kind: components.KindAutonomous}, nil},
		{"player power-up", events.GameEvent{Type: events.EventEffectStarted, Kind: components.KindPlayer}, []SoundType{SoundPowerUp}},
		{"bot power-up", events.GameEvent{Type: events.EventEffectStarted, Kind: components.KindAutonomous}, nil},
		{"bot dies", events.GameEvent{Type: events.EventAgentDied, Kind: components.KindAutonomous}, []SoundType{SoundDeath}},
		{"player dies", events.GameEvent{Type: events.EventAgentDied, Kind: components.KindPlayer}, nil},
		{"game over", events.GameEvent{Type: events.EventSimulationEnded}, []SoundType{SoundGameOver}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &recordingPlayer{}
			NewEventHandler(p).HandleEvent(tt.ev)
			if len(p.played) != len(tt.want) {
				t.Fatalf("played %v, want %v", p.played, tt.want)
			}
			for i := range tt.want {
				if p.played[i] != tt.want[i] {
					t.Errorf("played %v, want %v", p.played, tt.want)
				}
			}
		})
	}
}
