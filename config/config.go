// Package config holds the runtime tunables of the simulation and its host
package config

import (
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/snek/components"
	"github.com/lixenwraith/snek/constants"
	"github.com/lixenwraith/snek/vmath"
)

// ErrInvalid is wrapped by every Validate failure
var ErrInvalid = errors.New("invalid config")

// Config is the complete tunable set, defaults come from constants
type Config struct {
	Seed      uint64          `toml:"seed"`
	World     WorldConfig     `toml:"world"`
	Clock     ClockConfig     `toml:"clock"`
	Agent     AgentConfig     `toml:"agent"`
	Collision CollisionConfig `toml:"collision"`
	Food      FoodConfig      `toml:"food"`
	Audio     AudioConfig     `toml:"audio"`
	Feed      FeedConfig      `toml:"feed"`
}

type WorldConfig struct {
	CenterX float64 `toml:"center_x"`
	CenterY float64 `toml:"center_y"`
	Radius  float64 `toml:"radius"`
}

type ClockConfig struct {
	TickMS  int `toml:"tick_ms"`
	FrameMS int `toml:"frame_ms"`
}

type AgentConfig struct {
	BaseSpeed       float64 `toml:"base_speed"`
	BoostMultiplier float64 `toml:"boost_multiplier"`
	InitialSegments int     `toml:"initial_segments"`
	Bots            int     `toml:"bots"`
}

type CollisionConfig struct {
	Threshold         float64 `toml:"threshold"`
	NeckSegments      int     `toml:"neck_segments"`
	PickupRadius      float64 `toml:"pickup_radius"`
	BigHeadMultiplier float64 `toml:"bighead_multiplier"`
	SpawnClearance    float64 `toml:"spawn_clearance"`
}

type FoodConfig struct {
	BigHeadChance     float64 `toml:"bighead_chance"`
	MagnetChance      float64 `toml:"magnet_chance"`
	SpecialChance     float64 `toml:"special_chance"`
	SpawnTickChance   float64 `toml:"spawn_tick_chance"`
	BatchTripleChance float64 `toml:"batch_triple_chance"`
	BatchDoubleChance float64 `toml:"batch_double_chance"`
	MaxLive           int     `toml:"max_live"`
	RetryCap          int     `toml:"retry_cap"`
	MagnetStep        float64 `toml:"magnet_step"`
	AmbientRadius     float64 `toml:"ambient_radius"`
	AmbientStep       float64 `toml:"ambient_step"`

	Normal   components.FoodSpec `toml:"normal"`
	Special  components.FoodSpec `toml:"special"`
	Magnetic components.FoodSpec `toml:"magnetic"`
	BigHead  components.FoodSpec `toml:"bighead"`
}

type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"` // 0.0 - 1.0
}

type FeedConfig struct {
	Addr string `toml:"addr"` // empty disables the spectator feed
}

// Default returns the reference configuration
func Default() *Config {
	table := components.DefaultFoodTable()
	return &Config{
		Seed: 0,
		World: WorldConfig{
			CenterX: constants.WorldCenterX,
			CenterY: constants.WorldCenterY,
			Radius:  constants.WorldRadius,
		},
		Clock: ClockConfig{
			TickMS:  int(constants.TickInterval / time.Millisecond),
			FrameMS: int(constants.FrameInterval / time.Millisecond),
		},
		Agent: AgentConfig{
			BaseSpeed:       constants.BaseSpeed,
			BoostMultiplier: constants.BoostMultiplier,
			InitialSegments: constants.InitialSegments,
			Bots:            constants.DefaultBotCount,
		},
		Collision: CollisionConfig{
			Threshold:         constants.CollisionThreshold,
			NeckSegments:      constants.NeckSegments,
			PickupRadius:      constants.PickupRadius,
			BigHeadMultiplier: constants.BigHeadPickupMultiplier,
			SpawnClearance:    constants.SpawnClearance,
		},
		Food: FoodConfig{
			BigHeadChance:     constants.BigHeadChance,
			MagnetChance:      constants.MagnetChance,
			SpecialChance:     constants.SpecialChance,
			SpawnTickChance:   constants.SpawnTickChance,
			BatchTripleChance: constants.BatchTripleChance,
			BatchDoubleChance: constants.BatchDoubleChance,
			MaxLive:           constants.MaxLiveFood,
			RetryCap:          constants.SpawnRetryCap,
			MagnetStep:        constants.MagnetStep,
			AmbientRadius:     constants.AmbientRadius,
			AmbientStep:       constants.AmbientStep,
			Normal:            table[components.FoodNormal],
			Special:           table[components.FoodSpecial],
			Magnetic:          table[components.FoodMagnetic],
			BigHead:           table[components.FoodBigHead],
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
		},
	}
}

// Load decodes a TOML file over the defaults
// Unknown keys are logged and otherwise ignored
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Printf("[config] unknown key %q in %s", key.String(), path)
	}
	return cfg, nil
}

// TickInterval returns the logic schedule interval
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Clock.TickMS) * time.Millisecond
}

// FrameInterval returns the render schedule interval
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.Clock.FrameMS) * time.Millisecond
}

// Bounds builds the world region
func (c *Config) Bounds() (components.WorldBounds, error) {
	return components.NewWorldBounds(vmath.V(c.World.CenterX, c.World.CenterY), c.World.Radius)
}

// FoodTable assembles the per-type descriptors
func (c *Config) FoodTable() components.FoodTable {
	return components.FoodTable{
		components.FoodNormal:   c.Food.Normal,
		components.FoodSpecial:  c.Food.Special,
		components.FoodMagnetic: c.Food.Magnetic,
		components.FoodBigHead:  c.Food.BigHead,
	}
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	if _, err := c.Bounds(); err != nil {
		return fmt.Errorf("%w: world: %v", ErrInvalid, err)
	}
	if c.Clock.TickMS <= 0 || c.Clock.FrameMS <= 0 {
		return fmt.Errorf("%w: clock intervals must be positive", ErrInvalid)
	}
	if !positive(c.Agent.BaseSpeed) {
		return fmt.Errorf("%w: agent.base_speed must be positive", ErrInvalid)
	}
	if !(c.Agent.BoostMultiplier >= 1) || math.IsInf(c.Agent.BoostMultiplier, 0) {
		return fmt.Errorf("%w: agent.boost_multiplier must be >= 1", ErrInvalid)
	}
	if c.Agent.InitialSegments < 1 {
		return fmt.Errorf("%w: agent.initial_segments must be >= 1", ErrInvalid)
	}
	if c.Agent.Bots < 0 {
		return fmt.Errorf("%w: agent.bots must be >= 0", ErrInvalid)
	}
	if !positive(c.Collision.Threshold) || !positive(c.Collision.PickupRadius) {
		return fmt.Errorf("%w: collision distances must be positive", ErrInvalid)
	}
	// Stacked spawn segments lie one step behind the first candidate head
	if c.Agent.BaseSpeed <= c.Collision.Threshold {
		return fmt.Errorf("%w: agent.base_speed %v must exceed collision.threshold %v", ErrInvalid, c.Agent.BaseSpeed, c.Collision.Threshold)
	}
	if c.Collision.NeckSegments < 0 {
		return fmt.Errorf("%w: collision.neck_segments must be >= 0", ErrInvalid)
	}
	if !(c.Collision.BigHeadMultiplier >= 1) {
		return fmt.Errorf("%w: collision.bighead_multiplier must be >= 1", ErrInvalid)
	}
	if !(c.Collision.SpawnClearance >= 0) {
		return fmt.Errorf("%w: collision.spawn_clearance must be >= 0", ErrInvalid)
	}

	probs := map[string]float64{
		"bighead_chance":      c.Food.BigHeadChance,
		"magnet_chance":       c.Food.MagnetChance,
		"special_chance":      c.Food.SpecialChance,
		"spawn_tick_chance":   c.Food.SpawnTickChance,
		"batch_triple_chance": c.Food.BatchTripleChance,
		"batch_double_chance": c.Food.BatchDoubleChance,
	}
	for name, p := range probs {
		if !(p >= 0 && p <= 1) {
			return fmt.Errorf("%w: food.%s must be within [0,1], got %v", ErrInvalid, name, p)
		}
	}
	if c.Food.BatchDoubleChance < c.Food.BatchTripleChance {
		return fmt.Errorf("%w: food.batch_double_chance must be >= batch_triple_chance", ErrInvalid)
	}
	if c.Food.RetryCap < 1 {
		return fmt.Errorf("%w: food.retry_cap must be >= 1", ErrInvalid)
	}
	if c.Food.MaxLive < 1 {
		return fmt.Errorf("%w: food.max_live must be >= 1", ErrInvalid)
	}
	if !(c.Food.MagnetStep >= 0) || !(c.Food.AmbientStep >= 0) || !(c.Food.AmbientRadius >= 0) {
		return fmt.Errorf("%w: magnetism values must be >= 0", ErrInvalid)
	}
	for _, spec := range c.FoodTable() {
		if spec.Score < 0 || spec.Growth < 0 {
			return fmt.Errorf("%w: food score and growth must be >= 0", ErrInvalid)
		}
	}
	if !(c.Audio.MasterVolume >= 0 && c.Audio.MasterVolume <= 1) {
		return fmt.Errorf("%w: audio.master_volume must be within [0,1]", ErrInvalid)
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
