package app

import (
	"context"

	"wordle/internal/color"
	"wordle/internal/tui/controller"
	"wordle/internal/tui/model"
	"wordle/internal/words"
	"wordle/pkg/logging"

	"github.com/charmbracelet/lipgloss"
)

// runTUIMode executes the interactive terminal UI
func runTUIMode(ctx context.Context, cfg *Config, src words.Source) error {
	wordleCfg := cfg.WordleConfig

	color.InitializeTheme(wordleCfg.UI.Theme)

	// Switch logging to channel-based system for TUI integration
	logChan := logging.InitForTUI(logLevel(cfg.Debug))
	defer logging.CloseTUIChannel()

	p, err := controller.NewProgram(model.TUIConfig{
		Source:         src,
		LoadTimeout:    wordleCfg.Words.LoadTimeout,
		RevealInterval: wordleCfg.Game.RevealInterval,
		Seed:           wordleCfg.Game.Seed,
		DebugMode:      cfg.Debug,
		ColorMode:      lipgloss.ColorProfile().Name(),
		LogChannel:     logChan,
	})
	if err != nil {
		logging.Error("TUI-Lifecycle", err, "Error creating TUI program")
		return err
	}

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	return nil
}
