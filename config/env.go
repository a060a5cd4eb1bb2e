package config

import (
	"log"
	"os"
	"strconv"
)

// Environment variables read by ApplyEnv
const (
	EnvSeed         = "SNEK_SEED"
	EnvTickMS       = "SNEK_TICK_MS"
	EnvBots         = "SNEK_BOTS"
	EnvAudioEnabled = "SNEK_AUDIO_ENABLED"
	EnvMasterVolume = "SNEK_MASTER_VOLUME" // 0-100
	EnvFeedAddr     = "SNEK_FEED_ADDR"
)

// ApplyEnv overrides fields from SNEK_* environment variables
// Unparseable values are logged and skipped
func (c *Config) ApplyEnv() {
	if v, ok := os.LookupEnv(EnvSeed); ok {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Seed = seed
		} else {
			log.Printf("[config] ignoring %s=%q: %v", EnvSeed, v, err)
		}
	}

	if v, ok := os.LookupEnv(EnvTickMS); ok {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			c.Clock.TickMS = ms
		} else {
			log.Printf("[config] ignoring %s=%q", EnvTickMS, v)
		}
	}

	if v, ok := os.LookupEnv(EnvBots); ok {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Agent.Bots = n
		} else {
			log.Printf("[config] ignoring %s=%q", EnvBots, v)
		}
	}

	if v, ok := os.LookupEnv(EnvAudioEnabled); ok {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = enabled
		} else {
			log.Printf("[config] ignoring %s=%q: %v", EnvAudioEnabled, v, err)
		}
	}

	// 0-100 converted to 0.0-1.0
	if v, ok := os.LookupEnv(EnvMasterVolume); ok {
		if vol, err := strconv.Atoi(v); err == nil {
			c.Audio.MasterVolume = min(max(float64(vol)/100.0, 0), 1)
		} else {
			log.Printf("[config] ignoring %s=%q: %v", EnvMasterVolume, v, err)
		}
	}

	if v, ok := os.LookupEnv(EnvFeedAddr); ok {
		c.Feed.Addr = v
	}
}
