package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pixil98/go-errors"
	"github.com/plus3/blockfall/tetris"
)

// Config holds the desktop game settings. It is loaded from JSON and then
// overridden by command-line flags.
type Config struct {
	Seed         uint64  `json:"seed"`
	DropInterval string  `json:"drop_interval"`
	Volume       float64 `json:"volume"`
	Mute         bool    `json:"mute"`
	Debug        bool    `json:"debug"`
	LogLevel     string  `json:"log_level"`
}

// DefaultConfig returns the settings used when no file or flag sets them.
func DefaultConfig() Config {
	return Config{
		DropInterval: tetris.DefaultDropInterval.String(),
		Volume:       0.5,
		LogLevel:     "info",
	}
}

// LoadConfig reads a JSON config file over the defaults. An empty path
// returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseFlags loads the file named by -config and then applies any flags that
// were set explicitly on the command line.
func ParseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	configPath := fs.String("config", "", "Path to a JSON config file.")
	seed := fs.Uint64("seed", 0, "Seed for the piece bag. Zero picks a random seed.")
	dropInterval := fs.Duration("drop-interval", tetris.DefaultDropInterval, "How often the active block falls on its own.")
	volume := fs.Float64("volume", 0.5, "Sound volume between 0 and 1.")
	mute := fs.Bool("mute", false, "Disable sound.")
	debug := fs.Bool("debug", false, "Show the debug overlay.")
	logLevel := fs.String("log-level", "info", "Log level: debug, info, warn or error.")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return cfg, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "drop-interval":
			cfg.DropInterval = dropInterval.String()
		case "volume":
			cfg.Volume = *volume
		case "mute":
			cfg.Mute = *mute
		case "debug":
			cfg.Debug = *debug
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	el := errors.NewErrorList()

	d, err := time.ParseDuration(c.DropInterval)
	if err != nil {
		el.Add(fmt.Errorf("parsing drop_interval: %w", err))
	} else if d <= 0 {
		el.Add(fmt.Errorf("drop_interval must be positive"))
	}

	if c.Volume < 0 || c.Volume > 1 {
		el.Add(fmt.Errorf("volume must be between 0 and 1, got %g", c.Volume))
	}

	if _, err := parseLevel(c.LogLevel); err != nil {
		el.Add(err)
	}

	return el.Err()
}

// DropDuration returns the parsed drop interval. Call Validate first.
func (c *Config) DropDuration() time.Duration {
	d, err := time.ParseDuration(c.DropInterval)
	if err != nil {
		return tetris.DefaultDropInterval
	}
	return d
}

// Level returns the parsed log level, defaulting to info.
func (c *Config) Level() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level %q: %w", s, err)
	}
	return level, nil
}
