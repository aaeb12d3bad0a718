// Package color configures terminal theming for wordle.
//
// The TUI design system is built from lipgloss.AdaptiveColor values, which
// carry one colour for light and one for dark terminals. This package
// decides which of the two is used.
//
// # Usage
//
//	color.InitializeTheme(cfg.UI.Theme)
//
// Initialize can be called directly with a boolean when the theme is
// already known. Setting NO_COLOR to any non-empty value switches lipgloss
// to the ASCII profile so tiles fall back to plain text.
package color
