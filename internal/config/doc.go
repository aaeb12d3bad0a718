// Package config provides configuration management for wordle.
//
// This package implements a layered configuration system. Configuration is
// loaded from multiple sources and merged in a specific order, with later
// sources overriding earlier ones.
//
// # Configuration Layers
//
//  1. Default Configuration (compiled in)
//     - The built-in word list, a 400ms reveal interval and the dark theme
//
//  2. User Configuration (~/.config/wordle/config.yaml)
//     - Personal preferences that apply everywhere
//
//  3. Project Configuration (./.wordle/config.yaml)
//     - Settings for the current directory, e.g. a shared word list
//
//  4. Environment
//     - WORDLE_WORDS, WORDLE_REVEAL_INTERVAL, WORDLE_SEED, WORDLE_THEME and
//     WORDLE_DEBUG, optionally read from a .env file in the working directory
//
// Command-line flags are applied on top of the result by the cmd package.
//
// # Configuration Structure
//
//	words:
//	  source: builtin        # builtin, a file path or an http(s) URL
//	  loadTimeout: 10s
//	game:
//	  revealInterval: 400ms
//	  seed: 0                # 0 picks a time-based seed
//	ui:
//	  theme: dark            # dark or light
//	  debug: false
//
// # Merging
//
// Zero values in a later layer never reset an earlier one, so a project file
// that only sets words.source keeps the user's theme. A file that exists but
// fails to parse is an error; a missing file is skipped.
//
// # Usage
//
//	cfg, err := config.LoadConfig()
//	if err != nil {
//	    return err
//	}
//	interval := cfg.Game.RevealInterval
package config
