// internal/config/config.go
//
// Environment configuration for the game.
//
// Environment variables:
//   LOG_LEVEL=warn          zerolog level (trace, debug, info, warn, error, ...)
//   LOG_FORMAT=console      console | json
//   NUMGUESS_SEED=0         pin the secret sequence; 0 seeds from crypto/rand
//   NUMGUESS_PLAIN=false    force ASCII output even on a terminal
//
// A local .env file is loaded by main before Load is called.

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Log output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config is the process configuration.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL"      envDefault:"warn"`
	LogFormat string `env:"LOG_FORMAT"     envDefault:"console"`
	Seed      uint64 `env:"NUMGUESS_SEED"  envDefault:"0"`
	Plain     bool   `env:"NUMGUESS_PLAIN" envDefault:"false"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unknown log levels and formats.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: LOG_LEVEL: %w", err)
	}
	switch c.LogFormat {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("config: LOG_FORMAT: unknown format %q", c.LogFormat)
	}
	return nil
}

// Level returns the parsed log level. Call only on a validated Config.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return lvl
}
