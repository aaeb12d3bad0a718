package app

import (
	"path/filepath"
	"testing"
	"time"

	"wordle/internal/config"
	"wordle/pkg/logging"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name  string
		debug bool
	}{
		{name: "debug", debug: true},
		{name: "default", debug: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(tt.debug)

			assert.Equal(t, tt.debug, cfg.Debug)
			assert.Nil(t, cfg.WordleConfig, "WordleConfig should be nil before loading")
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	base := config.GetDefaultConfig()

	t.Run("no flags keep loaded values", func(t *testing.T) {
		got := NewConfig(false).applyOverrides(base)
		assert.Equal(t, base, got)
	})

	t.Run("flags win", func(t *testing.T) {
		cfg := &Config{
			Debug:          true,
			WordsSource:    "words.txt",
			RevealInterval: 50 * time.Millisecond,
			Seed:           42,
			Theme:          config.ThemeLight,
		}

		got := cfg.applyOverrides(base)

		assert.Equal(t, "words.txt", got.Words.Source)
		assert.Equal(t, 50*time.Millisecond, got.Game.RevealInterval)
		assert.Equal(t, int64(42), got.Game.Seed)
		assert.Equal(t, config.ThemeLight, got.UI.Theme)
		assert.True(t, got.UI.Debug)
		assert.Equal(t, base.Words.LoadTimeout, got.Words.LoadTimeout)
	})
}

// isolate keeps user, project and environment configuration out of a test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	for _, env := range []string{config.EnvWords, config.EnvRevealInterval, config.EnvSeed, config.EnvTheme, config.EnvDebug} {
		t.Setenv(env, "")
	}
}

func TestNewApplication(t *testing.T) {
	isolate(t)

	cfg := NewConfig(false)
	cfg.WordsSource = filepath.Join("testdata", "words.txt")

	app, err := NewApplication(cfg)

	assert.NoError(t, err)
	assert.NotNil(t, cfg.WordleConfig)
	assert.Equal(t, cfg.WordsSource, app.source.Name())
}

func TestNewApplication_InvalidTheme(t *testing.T) {
	isolate(t)

	cfg := NewConfig(false)
	cfg.Theme = "sepia"

	_, err := NewApplication(cfg)

	assert.ErrorContains(t, err, "invalid command line options")
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, logging.LevelDebug, logLevel(true))
	assert.Equal(t, logging.LevelInfo, logLevel(false))
}
