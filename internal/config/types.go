package config

import "time"

// Theme names accepted by UIConfig.Theme.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Config is the top-level configuration structure for wordle.
type Config struct {
	Words WordsConfig `yaml:"words"`
	Game  GameConfig  `yaml:"game"`
	UI    UIConfig    `yaml:"ui"`
}

// WordsConfig selects where the word list comes from.
type WordsConfig struct {
	// Source is "builtin", a local file path or an http(s) URL.
	Source      string        `yaml:"source,omitempty"`
	LoadTimeout time.Duration `yaml:"loadTimeout,omitempty"`
}

// GameConfig holds gameplay settings.
type GameConfig struct {
	RevealInterval time.Duration `yaml:"revealInterval,omitempty"`
	// Seed makes word selection reproducible. Zero seeds from the clock.
	Seed int64 `yaml:"seed,omitempty"`
}

// UIConfig holds terminal presentation settings.
type UIConfig struct {
	Theme string `yaml:"theme,omitempty"`
	Debug bool   `yaml:"debug,omitempty"`
}
