package controller

import (
	"fmt"
	"time"

	"wordle/internal/game"
	"wordle/internal/tui/model"
	"wordle/internal/tui/view"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	controllerDispatchSubsystem = "ControllerDispatch"
	statusMessageDuration       = 3 * time.Second
)

// Update is the controller entry point used by AppModel.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	return mainControllerDispatch(m, msg)
}

// mainControllerDispatch routes every Bubble Tea message to its handler and
// refreshes the log viewport once the message has been applied.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg.(type) {
	case spinner.TickMsg, model.RevealTickMsg, model.NewLogEntryMsg:
	default:
		LogDebug(m, controllerDispatchSubsystem, "Received msg: %T", msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return handleKeyMsgGlobal(m, msg)

	case tea.WindowSizeMsg:
		m, cmd = handleWindowSizeMsg(m, msg)
		cmds = append(cmds, cmd)

	case spinner.TickMsg:
		// The spinner only runs while words are loading.
		if isLoading(m) {
			m.Spinner, cmd = m.Spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case model.WordsLoadedMsg:
		m, cmd = handleWordsLoadedMsg(m, msg)
		cmds = append(cmds, cmd)

	case model.RevealTickMsg:
		m, cmd = handleRevealTickMsg(m, msg)
		cmds = append(cmds, cmd)

	case model.ShareCopiedMsg:
		if msg.Err != nil {
			LogError(controllerSubsystem, msg.Err, "Failed to copy result")
			cmds = append(cmds, m.SetStatusMessage("Copy result failed", model.StatusBarError, statusMessageDuration))
		} else {
			cmds = append(cmds, m.SetStatusMessage("Result copied to clipboard", model.StatusBarSuccess, statusMessageDuration))
		}

	case model.ClearStatusBarMsg:
		m.ClearStatusMessage()

	case model.NewLogEntryMsg:
		m = handleNewLogEntry(m, msg)
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))

	case tea.MouseMsg:
		if m.CurrentAppMode == model.ModeLogOverlay {
			m.LogViewport, cmd = m.LogViewport.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	logOverlayWidthChanged := m.LogViewportLastWidth != m.LogViewport.Width
	if m.ActivityLogDirty || logOverlayWidthChanged {
		wasAtBottom := m.LogViewport.AtBottom()
		m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog, m.LogViewport.Width))
		if m.CurrentAppMode != model.ModeLogOverlay || wasAtBottom {
			m.LogViewport.GotoBottom()
		}
		m.LogViewportLastWidth = m.LogViewport.Width
		m.ActivityLogDirty = false
	}

	return m, tea.Batch(cmds...)
}

// handleWordsLoadedMsg starts a game with the loaded list, or switches to
// the load failure screen. An open overlay stays on top.
func handleWordsLoadedMsg(m *model.Model, msg model.WordsLoadedMsg) (*model.Model, tea.Cmd) {
	overlay := m.CurrentAppMode
	if !isLoading(m) {
		LogDebug(m, controllerSubsystem, "Ignoring word list from %s in mode %s", msg.Source, m.CurrentAppMode)
		return m, nil
	}
	restore := func() {
		if overlay.IsOverlay() {
			m.LastAppMode = m.CurrentAppMode
			m.CurrentAppMode = overlay
		}
	}

	if msg.Err == nil {
		if err := m.StartNewGame(msg.Words); err != nil {
			msg.Err = err
		}
	}
	if msg.Err != nil {
		LogError(controllerSubsystem, msg.Err, "Failed to load words from %s", msg.Source)
		m.StopReveal()
		m.Words = nil
		m.LoadErr = msg.Err
		m.CurrentAppMode = model.ModeLoadFailed
		restore()
		return m, nil
	}

	LogInfo(controllerSubsystem, "Loaded %d words from %s", len(msg.Words), msg.Source)
	LogDebug(m, controllerSubsystem, "New game %s", m.Game.ID)
	restore()
	return m, nil
}

// isLoading reports whether a word list load is in flight, possibly behind
// an overlay.
func isLoading(m *model.Model) bool {
	if m.CurrentAppMode.IsOverlay() {
		return m.LastAppMode == model.ModeLoading
	}
	return m.CurrentAppMode == model.ModeLoading
}

// handleRevealTickMsg flips the next tile of the submitted row and reports
// the outcome once the row is evaluated.
func handleRevealTickMsg(m *model.Model, msg model.RevealTickMsg) (*model.Model, tea.Cmd) {
	outcome, next, ok := m.AdvanceReveal(msg)
	if !ok {
		LogDebug(m, controllerSubsystem, "Dropped stale reveal tick %d", msg.Seq)
		return m, nil
	}

	switch outcome {
	case game.OutcomeWon:
		LogInfo(controllerSubsystem, "Game %s won in %s", m.Game.ID, guessCount(m.Game.CurrentRow))
		return m, m.SetStatusMessage("Solved!", model.StatusBarSuccess, statusMessageDuration)
	case game.OutcomeLost:
		LogInfo(controllerSubsystem, "Game %s lost, the word was %s", m.Game.ID, m.Game.Secret)
		return m, m.SetStatusMessage("Out of guesses", model.StatusBarWarning, statusMessageDuration)
	case game.OutcomeContinue:
		LogDebug(m, controllerSubsystem, "Guess %d evaluated", m.Game.CurrentRow)
	}
	return m, next
}

func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) *model.Model {
	model.AddRawLineToActivityLog(m, msg.Entry.String())
	return m
}

func guessCount(n int) string {
	if n == 1 {
		return "1 guess"
	}
	return fmt.Sprintf("%d guesses", n)
}
