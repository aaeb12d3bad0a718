package view

import (
	"strings"

	"wordle/internal/game"
	"wordle/internal/tui/components"
	"wordle/internal/tui/design"
	"wordle/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
	appTitle       = "WORDLE"
	loadingText    = "Loading words…"
	restartHint    = "r play again  •  ctrl+y copy result"
)

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return ""
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m)
	case model.ModeLogOverlay:
		return renderLogOverlay(m)
	case model.ModeLoadFailed:
		return renderScreen(m, renderLoadFailed(m))
	default:
		return renderScreen(m, renderGame(m))
	}
}

func dimensions(m *model.Model) (int, int) {
	w, h := m.Width, m.Height
	if w <= 0 {
		w = fallbackWidth
	}
	if h <= 0 {
		h = fallbackHeight
	}
	return w, h
}

// renderScreen stacks header, body and status bar over the full terminal.
func renderScreen(m *model.Model, body string) string {
	width, height := dimensions(m)
	contentWidth := width - AppStyle.GetHorizontalFrameSize()

	header := renderHeader(m, contentWidth)
	statusBar := renderStatusBar(m, contentWidth)

	bodyHeight := height - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if bodyHeight < 0 {
		bodyHeight = 0
	}
	placed := lipgloss.Place(contentWidth, bodyHeight, lipgloss.Center, lipgloss.Center, body)

	return AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, placed, statusBar))
}

func sourceName(m *model.Model) string {
	if m.Source == nil {
		return ""
	}
	return m.Source.Name()
}

func renderHeader(m *model.Model, width int) string {
	h := components.NewHeader(appTitle).
		WithWidth(width).
		WithRightContent(m.StatsLine())
	if m.CurrentAppMode == model.ModeLoading {
		h = h.WithSpinner(m.Spinner.View()).WithSubtitle(sourceName(m))
	}
	return h.Render()
}

func renderStatusBar(m *model.Model, width int) string {
	return components.NewStatusBar(width).
		WithLeftText(m.Help.ShortHelpView(m.Keys.ShortHelp())).
		WithRightText(m.CurrentAppMode.String()).
		WithMessage(m.StatusBarMessage, m.StatusBarMessageType).
		Render()
}

func renderGame(m *model.Model) string {
	width, height := dimensions(m)
	compact := width < design.MinBoardWidth || height < design.MinBoardHeight

	parts := []string{renderBoard(BuildBoard(m), compact)}

	switch {
	case m.CurrentAppMode == model.ModeLoading:
		parts = append(parts, design.GameStatusStyle.Render(loadingText))
	case m.Game.GameOver:
		status := design.TextErrorStyle
		if m.Game.Won {
			status = design.TextSuccessStyle
		}
		parts = append(parts,
			design.GameStatusStyle.Render(status.Render(m.Game.StatusText())),
			design.RestartHintStyle.Render(restartHint),
		)
	default:
		parts = append(parts, design.GameStatusStyle.Render(m.Game.StatusText()))
	}

	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

// renderBoard draws the grid. Compact boards have no borders and no gaps
// between rows.
func renderBoard(b Board, compact bool) string {
	rows := make([]string, 0, len(b))
	for _, row := range b {
		tiles := make([]string, 0, len(row))
		for _, t := range row {
			tiles = append(tiles, renderTile(t, compact))
		}
		rows = append(rows, components.Row(tiles))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func renderTile(t Tile, compact bool) string {
	c := components.NewTile(t.Letter).WithCompact(compact)
	if t.Revealed && t.Mark != game.MarkNone {
		c = c.WithMark(t.Mark)
	}
	return c.Render()
}

// renderLegend shows one example tile per classification for the help overlay.
func renderLegend() string {
	entries := []struct {
		letter string
		mark   game.Mark
		text   string
	}{
		{"a", game.MarkCorrect, "right letter, right spot"},
		{"b", game.MarkClose, "in the word, wrong spot"},
		{"c", game.MarkAbsent, "not in the word"},
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		tile := components.NewTile(e.letter).WithCompact(true).WithMark(e.mark).Render()
		lines = append(lines, tile+" "+design.TextSecondaryStyle.Render(e.text))
	}
	return strings.Join(lines, "\n")
}
