package view

import (
	"fmt"

	"wordle/internal/tui/design"
	"wordle/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

const maxErrorWidth = 60

func renderHelpOverlay(m *model.Model) string {
	width, height := dimensions(m)

	titleView := design.HelpTitleStyle.Render("KEYBOARD SHORTCUTS")
	keys := m.Help.FullHelpView(m.Keys.FullHelp())
	rules := design.HelpTitleStyle.Render("HOW TO PLAY")
	intro := design.TextSecondaryStyle.Render("Guess the five-letter word in six tries.")

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleView,
		keys,
		"",
		rules,
		intro,
		"",
		renderLegend(),
	)
	container := design.CenteredOverlayContainerStyle.Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, container)
}

// renderLoadFailed explains why no game can start and how to recover.
func renderLoadFailed(m *model.Model) string {
	width, _ := dimensions(m)
	wrap := width - design.ErrorPanelStyle.GetHorizontalFrameSize() - 2*design.SpaceSM
	if wrap > maxErrorWidth {
		wrap = maxErrorWidth
	}
	if wrap < 10 {
		wrap = 10
	}

	reason := "unknown error"
	if m.LoadErr != nil {
		reason = m.LoadErr.Error()
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		design.TextErrorStyle.Render(IconText(IconCross, "Could not load the word list")),
		"",
		wordwrap.String(reason, wrap),
		"",
		design.TextSecondaryStyle.Render(fmt.Sprintf("Source: %s", sourceName(m))),
		design.RestartHintStyle.Render("r retry  •  q/esc quit"),
	)
	return design.ErrorPanelStyle.Render(content)
}
