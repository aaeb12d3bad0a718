package components

import (
	"strings"

	"wordle/internal/game"
	"wordle/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// Tile renders one letter cell of the board.
type Tile struct {
	Letter   string
	Revealed bool
	Mark     game.Mark
	Compact  bool
}

// NewTile creates a tile for letter, which may be empty.
func NewTile(letter string) *Tile {
	return &Tile{Letter: strings.ToUpper(letter)}
}

// WithMark reveals the tile with the given classification.
func (t *Tile) WithMark(mark game.Mark) *Tile {
	t.Revealed = true
	t.Mark = mark
	return t
}

// WithCompact switches to the borderless form.
func (t *Tile) WithCompact(compact bool) *Tile {
	t.Compact = compact
	return t
}

// Render returns the styled tile
func (t *Tile) Render() string {
	letter := t.Letter
	if letter == "" {
		letter = " "
	}
	if t.Compact {
		return t.compactStyle().Render(letter)
	}
	return t.style().Render(letter)
}

func (t *Tile) style() lipgloss.Style {
	if t.Revealed {
		switch t.Mark {
		case game.MarkCorrect:
			return design.TileCorrectStyle
		case game.MarkClose:
			return design.TileCloseStyle
		case game.MarkAbsent:
			return design.TileAbsentStyle
		}
	}
	if t.Letter != "" {
		return design.TileFilledStyle
	}
	return design.TileEmptyStyle
}

func (t *Tile) compactStyle() lipgloss.Style {
	s := design.CompactTileStyle
	if !t.Revealed {
		return s.Foreground(design.ColorText).Background(design.ColorSurfaceAlt)
	}
	switch t.Mark {
	case game.MarkCorrect:
		return s.Foreground(design.ColorTileText).Background(design.ColorTileCorrect)
	case game.MarkClose:
		return s.Foreground(design.ColorTileText).Background(design.ColorTileClose)
	case game.MarkAbsent:
		return s.Foreground(design.ColorTileText).Background(design.ColorTileAbsent)
	default:
		return s.Foreground(design.ColorText).Background(design.ColorSurfaceAlt)
	}
}

// Row joins rendered tiles horizontally with the design gap between them.
func Row(tiles []string) string {
	if len(tiles) == 0 {
		return ""
	}
	gap := strings.Repeat(" ", design.TileGap)
	parts := make([]string, 0, len(tiles)*2-1)
	for i, tile := range tiles {
		if i > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, tile)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
