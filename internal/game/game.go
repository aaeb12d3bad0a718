package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// New creates a game for the given secret word.
func New(secret string) *State {
	s := &State{}
	s.Reset(secret)
	return s
}

// Reset starts a fresh game with a new secret word. All rows, the row index,
// the game-over flag, the status and any reveal in progress are cleared.
func (s *State) Reset(secret string) {
	*s = State{
		ID:     uuid.NewString(),
		Secret: strings.ToLower(strings.TrimSpace(secret)),
	}
}

// Current returns the text of the row being typed, or "" when no row is current.
func (s *State) Current() string {
	if s.CurrentRow >= MaxGuesses {
		return ""
	}
	return s.Rows[s.CurrentRow]
}

// acceptsInput reports whether the current row may be edited.
func (s *State) acceptsInput() bool {
	return !s.GameOver && !s.Reveal.Active && s.CurrentRow < MaxGuesses
}

// TypeLetter appends r to the current row. It returns false, leaving the
// state untouched, when r is not an ASCII letter, the row is full, a reveal
// is running or the game is over.
func (s *State) TypeLetter(r rune) bool {
	if !s.acceptsInput() || !isLetter(r) {
		return false
	}
	row := s.Rows[s.CurrentRow]
	if len(row) >= WordLength {
		return false
	}
	s.Rows[s.CurrentRow] = row + strings.ToLower(string(r))
	return true
}

// DeleteLetter removes the last letter of the current row. Deleting from an
// empty row is a no-op.
func (s *State) DeleteLetter() bool {
	if !s.acceptsInput() {
		return false
	}
	row := s.Rows[s.CurrentRow]
	if row == "" {
		return false
	}
	s.Rows[s.CurrentRow] = row[:len(row)-1]
	return true
}

// CanSubmit reports whether the current row may be submitted.
func (s *State) CanSubmit() bool {
	return s.acceptsInput() && len(s.Rows[s.CurrentRow]) == WordLength
}

// BeginReveal starts the reveal of the current row with its first tile
// disclosed. It returns false when the row cannot be submitted, which also
// covers a second submit while a reveal is already running.
func (s *State) BeginReveal() bool {
	if !s.CanSubmit() {
		return false
	}
	s.Reveal = Reveal{Active: true, Row: s.CurrentRow, Tiles: 1}
	return true
}

// AdvanceReveal discloses one more tile. Once the counter passes the word
// length the row is evaluated, the row index advances and the reveal ends.
// The returned outcome is OutcomePending until then.
func (s *State) AdvanceReveal() Outcome {
	if !s.Reveal.Active {
		return OutcomePending
	}
	s.Reveal.Tiles++
	if s.Reveal.Tiles <= WordLength {
		return OutcomePending
	}
	return s.evaluate()
}

func (s *State) evaluate() Outcome {
	guess := s.Rows[s.Reveal.Row]
	outcome := OutcomeContinue

	switch {
	case strings.EqualFold(guess, s.Secret):
		s.GameOver = true
		s.Won = true
		s.Status = fmt.Sprintf("You won, the word was %q", strings.ToUpper(guess))
		outcome = OutcomeWon
	case s.Reveal.Row >= MaxGuesses-1:
		s.GameOver = true
		s.Status = fmt.Sprintf("You lost, the word was %q", strings.ToUpper(s.Secret))
		outcome = OutcomeLost
	}

	s.CurrentRow++
	s.Reveal = Reveal{}
	return outcome
}

// GuessesLeft is the number of rows not yet consumed.
func (s *State) GuessesLeft() int {
	return MaxGuesses - s.CurrentRow
}

// StatusText is the explicit status, or the default remaining-guesses text.
func (s *State) StatusText() string {
	if s.Status != "" {
		return s.Status
	}
	return fmt.Sprintf("%d guesses left", s.GuessesLeft())
}

// IsRevealed reports whether the tile at row/col shows its classification.
// Finalized rows are revealed; the revealing row discloses col < Tiles.
func (s *State) IsRevealed(row, col int) bool {
	if row != s.CurrentRow {
		return true
	}
	return s.Reveal.Active && s.Reveal.Row == row && col < s.Reveal.Tiles
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
