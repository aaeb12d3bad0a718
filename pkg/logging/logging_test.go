package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.level.String())
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel("ERROR"))
	assert.Equal(t, LevelInfo, ParseLevel("whatever"))
}

func TestInitForCLI_WritesSubsystem(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelDebug, &buf)

	Info("Words", "loaded %d words", 3)
	Error("Words", errors.New("boom"), "failed")

	out := buf.String()
	assert.Contains(t, out, "loaded 3 words")
	assert.Contains(t, out, "subsystem=Words")
	assert.Contains(t, out, "error=boom")
}

func TestInitForCLI_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelWarn, &buf)

	Info("Game", "hidden")
	Warn("Game", "shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestInitForTUI_SendsToChannel(t *testing.T) {
	ch := InitForTUI(LevelInfo)
	defer CloseTUIChannel()

	Debug("Game", "filtered out")
	Warn("Game", "reveal for row %d", 2)

	select {
	case entry := <-ch:
		assert.Equal(t, LevelWarn, entry.Level)
		assert.Equal(t, "Game", entry.Subsystem)
		assert.Equal(t, "reveal for row 2", entry.Message)
	case <-time.After(time.Second):
		t.Fatal("expected a log entry on the TUI channel")
	}
}

func TestLogEntryString(t *testing.T) {
	entry := LogEntry{
		Timestamp: time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC),
		Level:     LevelError,
		Subsystem: "Words",
		Message:   "load failed",
		Err:       errors.New("no such file"),
	}
	s := entry.String()
	require.True(t, strings.HasPrefix(s, "15:04:05 [ERROR] Words: load failed"))
	assert.Contains(t, s, "no such file")
}
