package model

import (
	"fmt"
	"time"

	"wordle/internal/game"
	"wordle/internal/words"

	tea "github.com/charmbracelet/bubbletea"
)

// StartNewGame installs a freshly loaded word list and picks the secret word.
// Any running reveal is cancelled first.
func (m *Model) StartNewGame(list []string) error {
	m.StopReveal()

	secret, err := words.Pick(list, m.Rand)
	if err != nil {
		return err
	}
	m.Words = list
	m.LoadErr = nil
	m.Game.Reset(secret)
	m.SyncKeys()
	m.CurrentAppMode = ModePlaying
	return nil
}

// BeginReload abandons the current game and returns the command that
// fetches the word list again.
func (m *Model) BeginReload() tea.Cmd {
	m.StopReveal()
	m.Game.Reset("")
	m.SyncKeys()
	m.LoadErr = nil
	m.CurrentAppMode = ModeLoading
	return tea.Batch(m.Spinner.Tick, LoadWordsCmd(m.Source, m.LoadTimeout))
}

// StartReveal submits the current row and returns the first reveal tick.
// It returns nil when the row cannot be submitted or a reveal is running.
func (m *Model) StartReveal() tea.Cmd {
	if m.Revealing() || !m.Game.BeginReveal() {
		return nil
	}
	m.RevealSeq++
	m.RevealCancel = make(chan struct{})
	return m.nextRevealTick()
}

// AdvanceReveal applies one reveal tick. Ticks from an earlier or cancelled
// reveal are ignored and report ok=false. When the row is evaluated the
// timer is stopped and no further tick is scheduled.
func (m *Model) AdvanceReveal(msg RevealTickMsg) (outcome game.Outcome, next tea.Cmd, ok bool) {
	if !m.Revealing() || msg.Seq != m.RevealSeq {
		return game.OutcomePending, nil, false
	}

	outcome = m.Game.AdvanceReveal()
	if outcome == game.OutcomePending {
		return outcome, m.nextRevealTick(), true
	}

	m.StopReveal()
	m.recordOutcome(outcome)
	m.SyncKeys()
	return outcome, nil, true
}

// SyncKeys enables the key bindings that apply to the current game state.
func (m *Model) SyncKeys() {
	m.Keys.SetGameOver(m.Game != nil && m.Game.GameOver)
}

// StopReveal cancels the reveal timer. Calling it without a running reveal
// is a no-op.
func (m *Model) StopReveal() {
	if m.RevealCancel == nil {
		return
	}
	close(m.RevealCancel)
	m.RevealCancel = nil
}

func (m *Model) nextRevealTick() tea.Cmd {
	seq := m.RevealSeq
	captured := m.RevealCancel

	return tea.Tick(m.RevealInterval, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return RevealTickMsg{Seq: seq}
		}
	})
}

func (m *Model) recordOutcome(outcome game.Outcome) {
	switch outcome {
	case game.OutcomeWon:
		m.GamesPlayed++
		m.GamesWon++
		m.Streak++
	case game.OutcomeLost:
		m.GamesPlayed++
		m.Streak = 0
	}
}

// StatsLine summarises the session for the header.
func (m *Model) StatsLine() string {
	return fmt.Sprintf("played %d  won %d  streak %d", m.GamesPlayed, m.GamesWon, m.Streak)
}
