// Package config loads CLI settings from an optional YAML file and RSWAIT_*
// environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the tunables of the CLI. The widget itself ships with fixed
// defaults; these only exist so the terminal and demo surfaces can be tried
// at other speeds.
//
// A zero FadeDelay is indistinguishable from an unset one and falls back to
// the default. Set NoFade to swap quotes without a hidden period.
type Config struct {
	Interval  time.Duration `yaml:"interval" env:"RSWAIT_INTERVAL" env-default:"4s" env-description:"time between quotes"`
	FadeDelay time.Duration `yaml:"fade_delay" env:"RSWAIT_FADE_DELAY" env-default:"300ms" env-description:"hidden period before a quote is swapped"`
	NoFade    bool          `yaml:"no_fade" env:"RSWAIT_NO_FADE" env-description:"swap quotes without a fade"`
	Context   string        `yaml:"context" env:"RSWAIT_CONTEXT" env-description:"context catalog added to the generic quotes"`
	Seed      uint64        `yaml:"seed" env:"RSWAIT_SEED" env-description:"shuffle seed, 0 for random"`
	Catalog   string        `yaml:"catalog" env:"RSWAIT_CATALOG" env-description:"path to a custom quotes.json"`
	Port      string        `yaml:"port" env:"RSWAIT_PORT" env-default:"8080" env-description:"demo server port"`
}

// Load reads path when it is non-empty, then applies the environment.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Interval <= 0 {
		return nil, fmt.Errorf("interval must be positive, got %v", cfg.Interval)
	}
	if cfg.FadeDelay < 0 {
		return nil, fmt.Errorf("fade delay must not be negative, got %v", cfg.FadeDelay)
	}
	if cfg.NoFade {
		cfg.FadeDelay = 0
	}
	return cfg, nil
}

// Usage describes the environment variables Load understands.
func Usage() string {
	desc, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return desc
}
