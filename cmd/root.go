package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
// Without a subcommand it starts a game.
var rootCmd = &cobra.Command{
	Use:   "wordle",
	Short: "Play Wordle in your terminal",
	Long: `wordle is a terminal version of the five-letter word guessing game.

Guess the secret word in six tries. After every guess the tiles show
which letters are in the right spot, which are in the word but in the
wrong spot, and which are not in the word at all.

Running wordle without a subcommand is the same as 'wordle play'.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// that are not about the command line itself
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "wordle version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	addPlayFlags(rootCmd)

	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newWordsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
