package app

import (
	"context"
	"fmt"
	"os"

	"wordle/internal/config"
	"wordle/internal/words"
	"wordle/pkg/logging"
)

// Application is the main application structure that bootstraps and runs the game
type Application struct {
	config *Config
	source words.Source
}

// NewApplication loads the layered configuration, applies the command line
// overrides and resolves the word source.
func NewApplication(cfg *Config) (*Application, error) {
	logging.InitForCLI(logLevel(cfg.Debug), os.Stderr)

	wordleCfg, err := config.LoadConfig()
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to load configuration")
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	wordleCfg = cfg.applyOverrides(wordleCfg)
	if err := config.Validate(wordleCfg); err != nil {
		return nil, fmt.Errorf("invalid command line options: %w", err)
	}
	cfg.WordleConfig = &wordleCfg
	cfg.Debug = wordleCfg.UI.Debug

	src := words.NewSource(wordleCfg.Words.Source)
	logging.Debug("Bootstrap", "Using word source %s", src.Name())

	return &Application{
		config: cfg,
		source: src,
	}, nil
}

// Run starts the game and blocks until the player quits.
func (a *Application) Run(ctx context.Context) error {
	return runTUIMode(ctx, a.config, a.source)
}

func logLevel(debug bool) logging.LogLevel {
	if debug {
		return logging.LevelDebug
	}
	return logging.LevelInfo
}
