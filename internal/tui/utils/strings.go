package utils

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TruncateString shortens s to at most width terminal cells, ending with an
// ellipsis when anything was cut.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// Width returns the display width of s in terminal cells.
func Width(s string) int {
	return lipgloss.Width(s)
}
