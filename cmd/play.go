package cmd

import (
	"context"
	"fmt"
	"time"

	"wordle/internal/app"

	"github.com/spf13/cobra"
)

// Flags shared by the root and play commands.
var (
	playWords          string
	playRevealInterval time.Duration
	playSeed           int64
	playTheme          string
	playDebug          bool
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start a new game",
		Long: `Starts the interactive game.

Type letters to fill the current row, press Enter to submit a guess and
Backspace to correct it. Press ? for the full list of shortcuts.

Configuration:
  Settings are read from ~/.config/wordle/config.yaml, then
  .wordle/config.yaml in the current directory, then WORDLE_* environment
  variables (a .env file is honoured). Flags override all of them.`,
		Args: cobra.NoArgs,
		RunE: runPlay,
	}
	addPlayFlags(cmd)
	return cmd
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&playWords, "words", "w", "", `Word list: "builtin", a file path or an http(s) URL`)
	cmd.Flags().DurationVar(&playRevealInterval, "reveal-interval", 0, "Delay between revealed tiles (e.g. 250ms)")
	cmd.Flags().Int64Var(&playSeed, "seed", 0, "Seed for picking secret words; 0 picks a random seed")
	cmd.Flags().StringVar(&playTheme, "theme", "", "Color theme: dark or light")
	cmd.Flags().BoolVar(&playDebug, "debug", false, "Enable debug logging in the activity log")
}

// runPlay is the main entry point for the play command
func runPlay(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(playDebug)
	cfg.WordsSource = playWords
	cfg.RevealInterval = playRevealInterval
	cfg.Seed = playSeed
	cfg.Theme = playTheme

	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}
