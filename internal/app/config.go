package app

import (
	"time"

	"wordle/internal/config"
)

// Config holds the application configuration
type Config struct {
	// Debug settings
	Debug bool

	// Command line overrides. Zero values keep the loaded configuration.
	WordsSource    string
	RevealInterval time.Duration
	Seed           int64
	Theme          string

	// Game configuration, populated by NewApplication
	WordleConfig *config.Config
}

// NewConfig creates a new application configuration
func NewConfig(debug bool) *Config {
	return &Config{
		Debug: debug,
	}
}

// applyOverrides layers the command line flags over the loaded configuration.
func (c *Config) applyOverrides(base config.Config) config.Config {
	if c.WordsSource != "" {
		base.Words.Source = c.WordsSource
	}
	if c.RevealInterval != 0 {
		base.Game.RevealInterval = c.RevealInterval
	}
	if c.Seed != 0 {
		base.Game.Seed = c.Seed
	}
	if c.Theme != "" {
		base.UI.Theme = c.Theme
	}
	if c.Debug {
		base.UI.Debug = true
	}
	return base
}
