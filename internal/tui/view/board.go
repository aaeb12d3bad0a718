package view

import (
	"wordle/internal/game"
	"wordle/internal/tui/model"
)

// Tile is the presentation state of one board cell.
type Tile struct {
	// Letter is the typed lowercase letter, or "" for a blank cell.
	Letter   string
	Revealed bool
	// Mark is MarkNone unless the words are loaded and the tile is revealed.
	Mark game.Mark
}

// Board is the full grid, one row per guess.
type Board [game.MaxGuesses][game.WordLength]Tile

// BuildBoard derives the grid from the model. Typed letters are always
// present; a classification is only attached to revealed, non-empty tiles
// once the word list has loaded.
func BuildBoard(m *model.Model) Board {
	var b Board
	if m.Game == nil {
		return b
	}
	loaded := m.WordsLoaded()

	for row, guess := range m.Game.Rows {
		for col := range b[row] {
			tile := Tile{}
			if col < len(guess) {
				tile.Letter = guess[col : col+1]
			}
			tile.Revealed = m.Game.IsRevealed(row, col)
			if loaded && tile.Revealed && tile.Letter != "" {
				tile.Mark = game.Classify(m.Game.Secret, guess, col)
			}
			b[row][col] = tile
		}
	}
	return b
}
