package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/snek/components"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.TickInterval() != 100*time.Millisecond {
		t.Errorf("TickInterval() = %v, want 100ms", cfg.TickInterval())
	}
	if cfg.FoodTable() != components.DefaultFoodTable() {
		t.Errorf("FoodTable() = %+v, want default table", cfg.FoodTable())
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snek.toml")
	content := `
seed = 42

[world]
radius = 30.0

[agent]
bots = 5

[food]
special_chance = 0.5

[food.special]
score = 50
growth = 4
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.World.Radius != 30 {
		t.Errorf("World.Radius = %v, want 30", cfg.World.Radius)
	}
	if cfg.World.CenterX != Default().World.CenterX {
		t.Errorf("World.CenterX = %v, should keep default", cfg.World.CenterX)
	}
	if cfg.Agent.Bots != 5 {
		t.Errorf("Agent.Bots = %d, want 5", cfg.Agent.Bots)
	}
	if cfg.Food.SpecialChance != 0.5 {
		t.Errorf("Food.SpecialChance = %v, want 0.5", cfg.Food.SpecialChance)
	}
	if got := cfg.FoodTable()[components.FoodSpecial]; got.Score != 50 || got.Growth != 4 {
		t.Errorf("special spec = %+v, want score 50 growth 4", got)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load(missing) succeeded, want error")
	}

	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[world\nradius = "), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load(malformed) succeeded, want error")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvSeed, "7")
	t.Setenv(EnvTickMS, "50")
	t.Setenv(EnvBots, "not-a-number")
	t.Setenv(EnvAudioEnabled, "false")
	t.Setenv(EnvMasterVolume, "150")
	t.Setenv(EnvFeedAddr, ":9000")

	cfg := Default()
	cfg.ApplyEnv()

	if cfg.Seed != 7 {
		t.Errorf("Seed = %d, want 7", cfg.Seed)
	}
	if cfg.TickInterval() != 50*time.Millisecond {
		t.Errorf("TickInterval() = %v, want 50ms", cfg.TickInterval())
	}
	if cfg.Agent.Bots != Default().Agent.Bots {
		t.Errorf("Agent.Bots = %d, invalid value should be ignored", cfg.Agent.Bots)
	}
	if cfg.Audio.Enabled {
		t.Error("Audio.Enabled = true, want false")
	}
	if cfg.Audio.MasterVolume != 1 {
		t.Errorf("Audio.MasterVolume = %v, want clamped 1", cfg.Audio.MasterVolume)
	}
	if cfg.Feed.Addr != ":9000" {
		t.Errorf("Feed.Addr = %q, want :9000", cfg.Feed.Addr)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero radius", func(c *Config) { c.World.Radius = 0 }},
		{"zero tick", func(c *Config) { c.Clock.TickMS = 0 }},
		{"negative speed", func(c *Config) { c.Agent.BaseSpeed = -1 }},
		{"boost below one", func(c *Config) { c.Agent.BoostMultiplier = 0.5 }},
		{"zero segments", func(c *Config) { c.Agent.InitialSegments = 0 }},
		{"zero threshold", func(c *Config) { c.Collision.Threshold = 0 }},
		{"speed equal to threshold", func(c *Config) { c.Agent.BaseSpeed = c.Collision.Threshold }},
		{"speed below threshold", func(c *Config) { c.Agent.BaseSpeed = 0.3 }},
		{"chance above one", func(c *Config) { c.Food.SpecialChance = 1.5 }},
		{"negative chance", func(c *Config) { c.Food.BigHeadChance = -0.1 }},
		{"batch order", func(c *Config) { c.Food.BatchDoubleChance = 0.1 }},
		{"zero retry cap", func(c *Config) { c.Food.RetryCap = 0 }},
		{"negative growth", func(c *Config) { c.Food.Normal.Growth = -1 }},
		{"loud", func(c *Config) { c.Audio.MasterVolume = 2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}
