package view

import (
	"strings"

	"wordle/internal/tui/design"
	"wordle/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// PrepareLogContent applies color styles based on log level markers.
func PrepareLogContent(lines []string, maxWidth int) string {
	out := make([]string, len(lines))
	for i, rawLine := range lines {
		out[i] = styleLogLine(rawLine)
	}
	return strings.Join(out, "\n")
}

func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return design.LogErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return design.LogWarnStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return design.LogDebugStyle.Render(l)
	default:
		return design.LogInfoStyle.Render(l)
	}
}

// LogOverlaySize returns the viewport dimensions used by the log overlay
// for a terminal of the given size.
func LogOverlaySize(width, height int) (int, int) {
	titleHeight := lipgloss.Height(design.LogPanelTitleStyle.Render(" "))
	w := int(float64(width)*0.8) - design.LogOverlayStyle.GetHorizontalFrameSize()
	h := int(float64(height)*0.7) - design.LogOverlayStyle.GetVerticalFrameSize() - titleHeight
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}

func renderLogOverlay(m *model.Model) string {
	titleText := SafeIcon(IconScroll) + "Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)"
	if m.ColorMode != "" {
		titleText += "  color: " + m.ColorMode
	}
	titleView := design.LogPanelTitleStyle.Render(titleText)

	content := lipgloss.JoinVertical(lipgloss.Left, titleView, m.LogViewport.View())
	overlay := design.LogOverlayStyle.Render(content)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, overlay)
}
