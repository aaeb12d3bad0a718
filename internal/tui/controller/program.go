package controller

import (
	"wordle/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program that runs the game.
func NewProgram(cfg model.TUIConfig) (*tea.Program, error) {
	m, err := model.InitializeModel(cfg)
	if err != nil {
		return nil, err
	}

	app := NewAppModel(m)

	p := tea.NewProgram(app, tea.WithAltScreen())
	return p, nil
}
