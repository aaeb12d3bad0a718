package controller

import (
	"wordle/internal/tui/model"
	"wordle/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
)

// handleWindowSizeMsg records the terminal dimensions and resizes the log
// overlay viewport to match.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height

	m.LogViewport.Width, m.LogViewport.Height = view.LogOverlaySize(msg.Width, msg.Height)
	return m, nil
}
