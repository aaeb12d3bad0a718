package view

import (
	"wordle/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

var (
	// AppStyle frames the whole screen.
	AppStyle = lipgloss.NewStyle().Padding(0, design.SpaceXS)

	// StatusStyle is used for the bare loading and quitting screens.
	StatusStyle = lipgloss.NewStyle().
			Foreground(design.ColorTextSecondary).
			Padding(1, design.SpaceSM)
)
