package design

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestCenterHorizontal(t *testing.T) {
	out := CenterHorizontal(10, "ab")
	assert.Equal(t, 10, lipgloss.Width(out))
	assert.Contains(t, out, "    ab")

	assert.Equal(t, "too wide", CenterHorizontal(3, "too wide"))
}

func TestTileStylesShareGeometry(t *testing.T) {
	for _, s := range []lipgloss.Style{TileEmptyStyle, TileFilledStyle, TileAbsentStyle, TileCloseStyle, TileCorrectStyle} {
		rendered := s.Render("A")
		assert.Equal(t, TileWidth+2, lipgloss.Width(rendered))
		assert.Equal(t, TileHeight+2, lipgloss.Height(rendered))
	}
}
