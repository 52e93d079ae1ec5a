// Package config loads game settings from the environment and command-line
// flags. Flags override the environment.
package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the game's runtime settings.
type Config struct {
	SavePath    string        `env:"SANDS_SAVE_PATH"  envDefault:"game_save.db"`
	Slot        string        `env:"SANDS_SLOT"       envDefault:"default"`
	TypeDelay   time.Duration `env:"SANDS_TYPE_DELAY" envDefault:"30ms"`
	Seed        int64         `env:"SANDS_SEED"`
	LogLevel    string        `env:"SANDS_LOG_LEVEL"  envDefault:"warn"`
	ShowVersion bool
	ListSlots   bool
	Reset       bool
}

// Parse reads the environment, then flags from args.
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.SavePath, "save", cfg.SavePath, "path to the sqlite save file")
	fs.StringVar(&cfg.Slot, "slot", cfg.Slot, "save slot name")
	fs.DurationVar(&cfg.TypeDelay, "delay", cfg.TypeDelay, "per-character typing delay (0 disables)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for reproducible runs (0 uses crypto/rand)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")
	fs.BoolVar(&cfg.ListSlots, "list", false, "list saved slots and exit")
	fs.BoolVar(&cfg.Reset, "reset", false, "delete the save in -slot before playing")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.SavePath) == "" {
		errs = append(errs, errors.New("save path is required"))
	}
	if strings.TrimSpace(c.Slot) == "" {
		errs = append(errs, errors.New("slot is required"))
	}
	if c.TypeDelay < 0 {
		errs = append(errs, fmt.Errorf("type delay %s must not be negative", c.TypeDelay))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level returns the configured slog level. Call after Validate.
func (c Config) Level() slog.Level {
	lvl, _ := ParseLevel(c.LogLevel)
	return lvl
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelWarn, fmt.Errorf("unknown log level %q", name)
	}
	return lvl, nil
}
