package view

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Icon constants
const (
	IconCheck     = "✔" // U+2714
	IconCross     = "❌" // U+274C
	IconWarning   = "⚠" // U+26A0 without VS16
	IconHourglass = "⏳" // U+23F3
	IconSparkles  = "✨" // U+2728
	IconScroll    = "📜" // U+1F4DC
	IconQuestion  = "❓" // U+2753
	IconKeyboard  = "⌨" // U+2328 without VS16
)

// SafeIcon wraps an icon with proper spacing to prevent rendering issues.
// Wide icons get two trailing spaces so at least one stays visible.
func SafeIcon(icon string) string {
	spaces := 1
	if runewidth.StringWidth(icon) >= 2 {
		spaces = 2
	}
	return fmt.Sprintf("%s%s", icon, strings.Repeat(" ", spaces))
}

// IconText formats an icon with text, handling spacing properly
func IconText(icon string, text string) string {
	return SafeIcon(icon) + text
}
