package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables recognised by applyEnvOverrides.
const (
	EnvWords          = "WORDLE_WORDS"
	EnvRevealInterval = "WORDLE_REVEAL_INTERVAL"
	EnvSeed           = "WORDLE_SEED"
	EnvTheme          = "WORDLE_THEME"
	EnvDebug          = "WORDLE_DEBUG"
)

// For mocking in tests
var dotenvPath = ".env"
var osLookupEnv = os.LookupEnv

// loadDotenv reads dotenvPath into the process environment. Variables that
// are already set win over the file.
func loadDotenv() error {
	err := godotenv.Load(dotenvPath)
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("error loading %s: %w", dotenvPath, err)
}

func applyEnvOverrides(c Config) (Config, error) {
	if err := loadDotenv(); err != nil {
		return Config{}, err
	}

	if v, ok := osLookupEnv(EnvWords); ok && v != "" {
		c.Words.Source = v
	}
	if v, ok := osLookupEnv(EnvRevealInterval); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvRevealInterval, err)
		}
		c.Game.RevealInterval = d
	}
	if v, ok := osLookupEnv(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvSeed, err)
		}
		c.Game.Seed = seed
	}
	if v, ok := osLookupEnv(EnvTheme); ok && v != "" {
		c.UI.Theme = v
	}
	if v, ok := osLookupEnv(EnvDebug); ok && v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvDebug, err)
		}
		c.UI.Debug = debug
	}
	return c, nil
}
