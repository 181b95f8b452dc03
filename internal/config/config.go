// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/ayomide-cmd/folio/internal/loader"
)

// Config holds all runtime settings.
type Config struct {
	// Loader cadence.
	TickInterval time.Duration `env:"FOLIO_TICK"   envDefault:"30ms"`
	Step         int           `env:"FOLIO_STEP"   envDefault:"1"`
	Settle       time.Duration `env:"FOLIO_SETTLE" envDefault:"500ms"`

	// SkipIntro starts on the page instead of the loading screen.
	SkipIntro bool `env:"FOLIO_SKIP_INTRO"`

	// LogFile receives JSON logs. Empty disables logging in the TUI, which owns the terminal.
	LogFile  string `env:"FOLIO_LOG_FILE"`
	LogLevel string `env:"FOLIO_LOG_LEVEL" envDefault:"info"`
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

// Validate checks value ranges env parsing cannot express.
func (c Config) Validate() error {
	var errs []string
	if c.TickInterval <= 0 {
		errs = append(errs, fmt.Sprintf("FOLIO_TICK must be > 0, got %s", c.TickInterval))
	}
	if c.Step <= 0 || c.Step > 100 {
		errs = append(errs, fmt.Sprintf("FOLIO_STEP must be in [1, 100], got %d", c.Step))
	}
	if c.Settle < 0 {
		errs = append(errs, fmt.Sprintf("FOLIO_SETTLE must be >= 0, got %s", c.Settle))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// Loader returns the loading-screen cadence.
func (c Config) Loader() loader.Config {
	cfg := loader.DefaultConfig()
	cfg.Interval = c.TickInterval
	cfg.Step = c.Step
	cfg.Settle = c.Settle
	return cfg
}
