package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/lixenwraith/snek/config"
)

var (
	configFlag    = flag.String("config", "", "TOML config file")
	seedFlag      = flag.Uint64("seed", 0, "RNG seed, 0 picks one from the clock")
	botsFlag      = flag.Int("bots", config.Default().Agent.Bots, "number of autonomous agents")
	headlessFlag  = flag.Bool("headless", false, "run without the terminal UI")
	ticksFlag     = flag.Int("ticks", 1000, "tick limit in headless mode")
	autopilotFlag = flag.Bool("autopilot", false, "let the autonomous policy drive the player")
	serveFlag     = flag.String("serve", "", "spectator feed address, e.g. :8080")
	debugFlag     = flag.Bool("debug", false, "write logs/snek.log and show metrics")
	muteFlag      = flag.Bool("mute", false, "start with audio muted")
)

type options struct {
	headless  bool
	ticks     int
	autopilot bool
	debug     bool
	mute      bool
}

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	opts := options{
		headless:  *headlessFlag || !term.IsTerminal(int(os.Stdout.Fd())),
		ticks:     *ticksFlag,
		autopilot: *autopilotFlag,
		debug:     *debugFlag,
		mute:      *muteFlag,
	}

	if opts.headless {
		os.Exit(runHeadless(cfg, opts))
	}
	if err := runTUI(cfg, opts); err != nil {
		fmt.Fprintf(os.Stderr, "snek: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig layers defaults, the config file, SNEK_* env and explicit flags
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seedFlag
		case "bots":
			cfg.Agent.Bots = *botsFlag
		case "serve":
			cfg.Feed.Addr = *serveFlag
		}
	})
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
