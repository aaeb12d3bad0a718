package model

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"wordle/internal/game"
	"wordle/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	body string
	err  error
}

func (s staticSource) Name() string { return "static" }

func (s staticSource) Open(context.Context) (io.ReadCloser, error) {
	if s.err != nil {
		return nil, s.err
	}
	return io.NopCloser(strings.NewReader(s.body)), nil
}

func newTestModel(t *testing.T, body string) *Model {
	t.Helper()
	m, err := InitializeModel(TUIConfig{
		Source:         staticSource{body: body},
		RevealInterval: time.Millisecond,
		Seed:           1,
	})
	require.NoError(t, err)
	return m
}

func typeWord(m *Model, w string) {
	for _, r := range w {
		m.Game.TypeLetter(r)
	}
}

// finishReveal drives the running reveal to its end by feeding ticks.
func finishReveal(t *testing.T, m *Model) game.Outcome {
	t.Helper()
	for i := 0; i < game.WordLength; i++ {
		outcome, _, ok := m.AdvanceReveal(RevealTickMsg{Seq: m.RevealSeq})
		require.True(t, ok)
		if outcome != game.OutcomePending {
			return outcome
		}
	}
	t.Fatal("reveal did not finish")
	return game.OutcomePending
}

func TestInitializeModel(t *testing.T) {
	t.Run("requires a source", func(t *testing.T) {
		_, err := InitializeModel(TUIConfig{})
		assert.Error(t, err)
	})

	t.Run("defaults", func(t *testing.T) {
		m, err := InitializeModel(TUIConfig{Source: staticSource{}})
		require.NoError(t, err)
		assert.Equal(t, ModeLoading, m.CurrentAppMode)
		assert.Equal(t, 400*time.Millisecond, m.RevealInterval)
		assert.Equal(t, 10*time.Second, m.LoadTimeout)
		assert.NotNil(t, m.Rand)
		assert.False(t, m.WordsLoaded())
		assert.NotNil(t, m.Init())
	})
}

func TestLoadWordsCmd(t *testing.T) {
	msg := LoadWordsCmd(staticSource{body: "apple\nmango\n"}, time.Second)()

	loaded, ok := msg.(WordsLoadedMsg)
	require.True(t, ok)
	assert.NoError(t, loaded.Err)
	assert.Equal(t, []string{"apple", "mango"}, loaded.Words)
	assert.Equal(t, "static", loaded.Source)

	msg = LoadWordsCmd(staticSource{err: errors.New("offline")}, time.Second)()
	assert.Error(t, msg.(WordsLoadedMsg).Err)
}

func TestListenForLogEntriesCmd(t *testing.T) {
	assert.Nil(t, ListenForLogEntriesCmd(nil))

	ch := make(chan logging.LogEntry, 1)
	ch <- logging.LogEntry{Subsystem: "Test", Message: "hello"}
	msg := ListenForLogEntriesCmd(ch)()
	assert.Equal(t, "hello", msg.(NewLogEntryMsg).Entry.Message)

	close(ch)
	assert.Nil(t, ListenForLogEntriesCmd(ch)())
}

func TestStartNewGame(t *testing.T) {
	m := newTestModel(t, "")

	require.NoError(t, m.StartNewGame([]string{"apple", "mango"}))

	assert.Equal(t, ModePlaying, m.CurrentAppMode)
	assert.Contains(t, []string{"apple", "mango"}, m.Game.Secret)
	assert.True(t, m.WordsLoaded())

	err := m.StartNewGame(nil)
	assert.Error(t, err)
}

func TestReveal(t *testing.T) {
	m := newTestModel(t, "")
	require.NoError(t, m.StartNewGame([]string{"apple"}))
	typeWord(m, "mango")

	cmd := m.StartReveal()
	require.NotNil(t, cmd)
	assert.True(t, m.Revealing())
	assert.Nil(t, m.StartReveal(), "second submit while revealing")

	tick, ok := cmd().(RevealTickMsg)
	require.True(t, ok)
	assert.Equal(t, m.RevealSeq, tick.Seq)

	assert.Equal(t, game.OutcomeContinue, finishReveal(t, m))
	assert.False(t, m.Revealing())
	assert.Equal(t, 1, m.Game.CurrentRow)
}

func TestReveal_StaleTicksIgnored(t *testing.T) {
	m := newTestModel(t, "")
	require.NoError(t, m.StartNewGame([]string{"apple"}))
	typeWord(m, "mango")
	cmd := m.StartReveal()
	staleSeq := m.RevealSeq

	m.StopReveal()

	assert.Nil(t, cmd(), "cancelled tick yields no message")
	_, _, ok := m.AdvanceReveal(RevealTickMsg{Seq: staleSeq})
	assert.False(t, ok)

	_, _, ok = m.AdvanceReveal(RevealTickMsg{Seq: staleSeq - 1})
	assert.False(t, ok)
}

func TestReveal_RestartCancelsTimer(t *testing.T) {
	m := newTestModel(t, "")
	require.NoError(t, m.StartNewGame([]string{"apple"}))
	typeWord(m, "mango")
	require.NotNil(t, m.StartReveal())
	cancel := m.RevealCancel
	seq := m.RevealSeq

	require.NoError(t, m.StartNewGame([]string{"apple"}))

	select {
	case <-cancel:
	default:
		t.Fatal("reveal timer not cancelled on restart")
	}
	_, _, ok := m.AdvanceReveal(RevealTickMsg{Seq: seq})
	assert.False(t, ok)
	assert.Equal(t, [game.MaxGuesses]string{}, m.Game.Rows)
}

func TestStats(t *testing.T) {
	m := newTestModel(t, "")
	require.NoError(t, m.StartNewGame([]string{"apple"}))
	typeWord(m, "apple")
	require.NotNil(t, m.StartReveal())
	assert.Equal(t, game.OutcomeWon, finishReveal(t, m))

	assert.Equal(t, 1, m.GamesPlayed)
	assert.Equal(t, 1, m.GamesWon)
	assert.Equal(t, 1, m.Streak)
	assert.Equal(t, "played 1  won 1  streak 1", m.StatsLine())
}

func TestBeginReload(t *testing.T) {
	m := newTestModel(t, "apple\n")
	require.NoError(t, m.StartNewGame([]string{"apple"}))
	typeWord(m, "mango")
	require.NotNil(t, m.StartReveal())

	cmd := m.BeginReload()

	assert.NotNil(t, cmd)
	assert.Equal(t, ModeLoading, m.CurrentAppMode)
	assert.False(t, m.Revealing())
	assert.Equal(t, "", m.Game.Secret)
	assert.False(t, m.WordsLoaded())
}

func TestAddRawLineToActivityLog(t *testing.T) {
	m := &Model{}
	for i := 0; i < MaxActivityLogLines+5; i++ {
		AddRawLineToActivityLog(m, "line")
	}
	assert.Len(t, m.ActivityLog, MaxActivityLogLines)
	assert.True(t, m.ActivityLogDirty)
}

func TestAppModeString(t *testing.T) {
	assert.Equal(t, "Playing", ModePlaying.String())
	assert.Equal(t, "LoadFailed", ModeLoadFailed.String())
	assert.True(t, ModeHelpOverlay.IsOverlay())
	assert.False(t, ModePlaying.IsOverlay())
}

func TestSyncKeys(t *testing.T) {
	m := newTestModel(t, "")
	assert.False(t, m.Keys.Restart.Enabled(), "no restart before the first game")

	require.NoError(t, m.StartNewGame([]string{"apple"}))
	assert.True(t, m.Keys.Submit.Enabled())
	assert.False(t, m.Keys.Restart.Enabled())
	assert.False(t, m.Keys.PlayAgain.Enabled())
	assert.False(t, m.Keys.Share.Enabled())

	typeWord(m, "apple")
	require.NotNil(t, m.StartReveal())
	finishReveal(t, m)
	assert.False(t, m.Keys.Submit.Enabled())
	assert.True(t, m.Keys.Restart.Enabled())
	assert.True(t, m.Keys.PlayAgain.Enabled())
	assert.True(t, m.Keys.Share.Enabled())
	assert.Equal(t, []string{"r"}, m.Keys.PlayAgain.Keys())

	m.BeginReload()
	assert.False(t, m.Keys.Restart.Enabled())
	assert.True(t, m.Keys.Submit.Enabled())
}
