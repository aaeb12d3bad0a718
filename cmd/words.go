package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"wordle/internal/config"
	"wordle/internal/words"
	"wordle/pkg/logging"

	"github.com/spf13/cobra"
)

var wordsCheckDebug bool

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Inspect word lists",
	}
	cmd.AddCommand(newWordsCheckCmd())
	return cmd
}

func newWordsCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [SOURCE]",
		Short: "Validate a word list",
		Long: `Reads a word list and reports how many words a game would accept.

SOURCE is "builtin", a file path or an http(s) URL. Without SOURCE the
configured word list is checked. Lines must hold exactly one five-letter
word; blank lines and lines starting with # are skipped.

The command fails when no usable word is found.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runWordsCheck,
	}
	cmd.Flags().BoolVar(&wordsCheckDebug, "debug", false, "Log every rejected line")
	return cmd
}

func runWordsCheck(cmd *cobra.Command, args []string) error {
	level := logging.LevelWarn
	if wordsCheckDebug {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, os.Stderr)

	location, timeout, err := wordsCheckSettings(args)
	if err != nil {
		return err
	}
	src := words.NewSource(location)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	report, err := words.Validate(ctx, src)
	if err != nil {
		return err
	}
	if err := report.Write(cmd.OutOrStdout()); err != nil {
		return err
	}
	if !report.OK() {
		return fmt.Errorf("%s: %w", src.Name(), words.ErrEmptyWordList)
	}
	return nil
}

// wordsCheckSettings returns the source to check and the load timeout. The
// source named on the command line wins over the configured one.
func wordsCheckSettings(args []string) (string, time.Duration, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return "", 0, fmt.Errorf("failed to load configuration: %w", err)
	}
	if len(args) == 1 {
		return args[0], cfg.Words.LoadTimeout, nil
	}
	return cfg.Words.Source, cfg.Words.LoadTimeout, nil
}
