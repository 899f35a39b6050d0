// Package config holds the application configuration of the island tools.
package config

import (
	"fmt"
	"time"

	"islandgen/internal/island"
	"islandgen/internal/logger"
)

// Config holds all application configuration.
type Config struct {
	Generation island.Config `yaml:"generation"`
	Display    DisplayConfig `yaml:"display"`
	Logging    LoggingConfig `yaml:"logging"`
}

// DisplayConfig holds viewer settings.
type DisplayConfig struct {
	Scale int  `yaml:"scale"`
	TPS   int  `yaml:"tps"`
	HUD   bool `yaml:"hud"`
	// Reroll is the auto-regeneration interval; zero keeps it off at start.
	Reroll time.Duration `yaml:"reroll"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Generation: island.DefaultConfig(),
		Display: DisplayConfig{
			Scale:  6,
			TPS:    30,
			HUD:    true,
			Reroll: 0,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Generation.Validate(); err != nil {
		return fmt.Errorf("generation: %w", err)
	}
	if c.Display.Scale < 1 {
		return fmt.Errorf("display: scale %d must be at least 1", c.Display.Scale)
	}
	if c.Display.TPS < 1 {
		return fmt.Errorf("display: tps %d must be at least 1", c.Display.TPS)
	}
	if c.Display.Reroll < 0 {
		return fmt.Errorf("display: reroll %s must not be negative", c.Display.Reroll)
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}
