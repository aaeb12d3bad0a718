package controller

import (
	"wordle/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsgInput edits and submits guesses while a game is in progress.
// Once the game is over only "play again" is accepted.
func handleKeyMsgInput(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if m.Game.GameOver {
		if key.Matches(keyMsg, m.Keys.PlayAgain) {
			return restart(m)
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Submit):
		if m.Revealing() {
			return m, nil
		}
		if !m.Game.CanSubmit() {
			LogDebug(m, controllerSubsystem, "Ignoring submit of %q", m.Game.Current())
			return m, nil
		}
		LogDebug(m, controllerSubsystem, "Submitting guess %d", m.Game.CurrentRow+1)
		return m, m.StartReveal()
	case key.Matches(keyMsg, m.Keys.Delete):
		m.Game.DeleteLetter()
		return m, nil
	}

	if keyMsg.Type == tea.KeyRunes && !keyMsg.Alt && !keyMsg.Paste && len(keyMsg.Runes) == 1 {
		m.Game.TypeLetter(keyMsg.Runes[0])
	}
	return m, nil
}
