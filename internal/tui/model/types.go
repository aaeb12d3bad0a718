package model

import (
	"math/rand"
	"time"

	"wordle/internal/game"
	"wordle/internal/words"
	"wordle/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeLoading AppMode = iota
	ModePlaying
	ModeLoadFailed
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeLoading:
		return "Loading"
	case ModePlaying:
		return "Playing"
	case ModeLoadFailed:
		return "LoadFailed"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// IsOverlay reports whether the mode is drawn on top of the board.
func (m AppMode) IsOverlay() bool {
	return m == ModeHelpOverlay || m == ModeLogOverlay
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// Constants for UI
const (
	MaxActivityLogLines = 1000
)

// TUIConfig carries everything InitializeModel needs.
type TUIConfig struct {
	Source         words.Source
	LoadTimeout    time.Duration
	RevealInterval time.Duration
	// Seed makes word selection reproducible. Zero seeds from the clock.
	Seed       int64
	DebugMode  bool
	ColorMode  string
	LogChannel <-chan logging.LogEntry
}

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Type      key.Binding
	Delete    key.Binding
	Submit    key.Binding
	PlayAgain key.Binding
	Restart   key.Binding
	Retry     key.Binding
	Share     key.Binding
	Help      key.Binding
	ToggleLog key.Binding
	CopyLogs  key.Binding
	Scroll    key.Binding
	Esc       key.Binding
	Quit      key.Binding
}

// Model represents the state of the TUI application.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	// Global application state
	CurrentAppMode AppMode
	// LastAppMode is restored when an overlay closes.
	LastAppMode AppMode
	DebugMode   bool
	ColorMode   string

	// Game
	Game           *game.State
	Words          []string
	Source         words.Source
	LoadTimeout    time.Duration
	LoadErr        error
	Rand           *rand.Rand
	RevealInterval time.Duration
	// RevealSeq identifies the running reveal; ticks carrying another
	// value are stale.
	RevealSeq    int
	RevealCancel chan struct{}

	// Session statistics
	GamesPlayed int
	GamesWon    int
	Streak      int

	// UI State & Output
	ActivityLog          []string
	ActivityLogDirty     bool
	LogViewportLastWidth int
	LogViewport          viewport.Model
	Spinner              spinner.Model
	Keys                 KeyMap
	Help                 help.Model
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	// Logging
	LogChannel <-chan logging.LogEntry
}

// WordsLoaded reports whether a secret word is available for classification.
func (m *Model) WordsLoaded() bool {
	return len(m.Words) > 0 && m.Game != nil && m.Game.Secret != ""
}

// Revealing reports whether a reveal timer is owned by the model.
func (m *Model) Revealing() bool {
	return m.RevealCancel != nil
}
