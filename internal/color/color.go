package color

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// For mocking in tests
var osLookupEnv = os.LookupEnv

// Initialize tells lipgloss which background the AdaptiveColor values in
// the design system should resolve against.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}

// InitializeTheme applies a theme name from the configuration. Anything
// other than "light" is treated as dark. NO_COLOR disables colour output.
func InitializeTheme(theme string) {
	Initialize(theme != "light")

	if v, ok := osLookupEnv("NO_COLOR"); ok && v != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
