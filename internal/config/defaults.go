package config

import "time"

const (
	// BuiltinSource names the word list compiled into the binary.
	BuiltinSource = "builtin"

	DefaultLoadTimeout    = 10 * time.Second
	DefaultRevealInterval = 400 * time.Millisecond
)

// GetDefaultConfig returns the configuration used when no file or
// environment override is present.
func GetDefaultConfig() Config {
	return Config{
		Words: WordsConfig{
			Source:      BuiltinSource,
			LoadTimeout: DefaultLoadTimeout,
		},
		Game: GameConfig{
			RevealInterval: DefaultRevealInterval,
		},
		UI: UIConfig{
			Theme: ThemeDark,
		},
	}
}
