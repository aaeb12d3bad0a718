package model

import (
	"errors"
	"math/rand"
	"time"

	"wordle/internal/game"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultRevealInterval = 400 * time.Millisecond
	defaultLoadTimeout    = 10 * time.Second
)

// InitializeModel constructs the initial model. The word list is not loaded
// until Init runs.
func InitializeModel(cfg TUIConfig) (*Model, error) {
	if cfg.Source == nil {
		return nil, errors.New("word source is required")
	}

	interval := cfg.RevealInterval
	if interval <= 0 {
		interval = defaultRevealInterval
	}
	timeout := cfg.LoadTimeout
	if timeout <= 0 {
		timeout = defaultLoadTimeout
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := &Model{
		CurrentAppMode:   ModeLoading,
		LastAppMode:      ModeLoading,
		DebugMode:        cfg.DebugMode,
		ColorMode:        cfg.ColorMode,
		Game:             game.New(""),
		Source:           cfg.Source,
		LoadTimeout:      timeout,
		Rand:             rand.New(rand.NewSource(seed)),
		RevealInterval:   interval,
		ActivityLog:      make([]string, 0),
		ActivityLogDirty: true,
		LogViewport:      viewport.New(0, 0),
		Spinner:          s,
		Keys:             DefaultKeyMap(),
		Help:             help.New(),
		LogChannel:       cfg.LogChannel,
	}
	return m, nil
}

// Init implements the tea.Model interface
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.Spinner.Tick,
		LoadWordsCmd(m.Source, m.LoadTimeout),
		ListenForLogEntriesCmd(m.LogChannel),
	)
}
