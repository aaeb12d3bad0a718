package controller

import (
	"strings"

	"wordle/internal/game"
	"wordle/internal/tui/model"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardWriteAll is replaced in tests.
var clipboardWriteAll = clipboard.WriteAll

// handleKeyMsgGlobal processes key presses that work regardless of the game
// state: overlays, restart, share and quit. Everything else is forwarded to
// handleKeyMsgInput while a game is being played.
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if keyMsg.String() == "ctrl+c" {
		return quit(m)
	}

	// --- Overlay-specific key handling --------------------------------------
	if m.CurrentAppMode == model.ModeLogOverlay {
		switch {
		case key.Matches(keyMsg, m.Keys.Esc), key.Matches(keyMsg, m.Keys.ToggleLog):
			closeOverlay(m)
			return m, nil
		case key.Matches(keyMsg, m.Keys.CopyLogs):
			if err := clipboardWriteAll(strings.Join(m.ActivityLog, "\n")); err != nil {
				LogError(controllerSubsystem, err, "Failed to copy logs")
				return m, m.SetStatusMessage("Copy logs failed", model.StatusBarError, statusMessageDuration)
			}
			return m, m.SetStatusMessage("Logs copied to clipboard", model.StatusBarSuccess, statusMessageDuration)
		case key.Matches(keyMsg, m.Keys.Scroll):
			var vpCmd tea.Cmd
			m.LogViewport, vpCmd = m.LogViewport.Update(keyMsg)
			return m, vpCmd
		default:
			return m, nil
		}
	}

	if m.CurrentAppMode == model.ModeHelpOverlay {
		if key.Matches(keyMsg, m.Keys.Esc) || key.Matches(keyMsg, m.Keys.Help) {
			closeOverlay(m)
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Help):
		openOverlay(m, model.ModeHelpOverlay)
		return m, nil
	case key.Matches(keyMsg, m.Keys.ToggleLog):
		openOverlay(m, model.ModeLogOverlay)
		m.LogViewport.GotoBottom()
		return m, nil
	case key.Matches(keyMsg, m.Keys.Quit):
		return quit(m)
	case key.Matches(keyMsg, m.Keys.Restart):
		return restart(m)
	case key.Matches(keyMsg, m.Keys.Share):
		return share(m)
	}

	switch m.CurrentAppMode {
	case model.ModeLoadFailed:
		switch {
		case key.Matches(keyMsg, m.Keys.Retry):
			LogInfo(controllerSubsystem, "Retrying word list from %s", m.Source.Name())
			return m, m.BeginReload()
		case keyMsg.String() == "q":
			return quit(m)
		}
		return m, nil
	case model.ModePlaying:
		return handleKeyMsgInput(m, keyMsg)
	}
	return m, nil
}

func openOverlay(m *model.Model, mode model.AppMode) {
	m.LastAppMode = m.CurrentAppMode
	m.CurrentAppMode = mode
}

func closeOverlay(m *model.Model) {
	m.CurrentAppMode = m.LastAppMode
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.StopReveal()
	m.CurrentAppMode = model.ModeQuitting
	return m, tea.Quit
}

// restart abandons the current game and reloads the word list. It is a
// no-op while a load is already running.
func restart(m *model.Model) (*model.Model, tea.Cmd) {
	if m.CurrentAppMode == model.ModeLoading {
		return m, nil
	}
	LogInfo(controllerSubsystem, "Restarting, reloading words from %s", m.Source.Name())
	return m, m.BeginReload()
}

// share copies the emoji summary of a finished game to the clipboard.
func share(m *model.Model) (*model.Model, tea.Cmd) {
	if m.CurrentAppMode != model.ModePlaying || !m.Game.GameOver {
		return m, nil
	}
	text := game.ShareText(m.Game)
	return m, func() tea.Msg {
		return model.ShareCopiedMsg{Err: clipboardWriteAll(text)}
	}
}
