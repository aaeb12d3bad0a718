package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// play types guess, submits it and drives the reveal to completion.
func play(t *testing.T, s *State, guess string) Outcome {
	t.Helper()
	for _, r := range guess {
		require.True(t, s.TypeLetter(r), "typing %q", r)
	}
	require.True(t, s.BeginReveal())
	for i := 0; i < WordLength-1; i++ {
		require.Equal(t, OutcomePending, s.AdvanceReveal())
	}
	return s.AdvanceReveal()
}

func TestNew(t *testing.T) {
	s := New("  APPLE \n")

	assert.Equal(t, "apple", s.Secret)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, 0, s.CurrentRow)
	assert.False(t, s.GameOver)
	assert.Equal(t, "6 guesses left", s.StatusText())
}

func TestTypeLetter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercase", input: "abc", want: "abc"},
		{name: "uppercase is folded", input: "HeLlO", want: "hello"},
		{name: "sixth letter ignored", input: "abcdef", want: "abcde"},
		{name: "non letters ignored", input: "a1 b-c!", want: "abc"},
		{name: "non ascii ignored", input: "aé", want: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New("apple")
			for _, r := range tt.input {
				s.TypeLetter(r)
			}
			assert.Equal(t, tt.want, s.Current())
		})
	}
}

func TestDeleteLetter(t *testing.T) {
	s := New("apple")

	assert.False(t, s.DeleteLetter(), "empty row")
	assert.Equal(t, "", s.Current())

	s.TypeLetter('a')
	s.TypeLetter('b')
	assert.True(t, s.DeleteLetter())
	assert.Equal(t, "a", s.Current())
}

func TestBeginReveal_RejectsIncompleteRow(t *testing.T) {
	for _, guess := range []string{"", "a", "appl"} {
		t.Run(fmt.Sprintf("len %d", len(guess)), func(t *testing.T) {
			s := New("apple")
			for _, r := range guess {
				s.TypeLetter(r)
			}
			before := *s

			assert.False(t, s.BeginReveal())
			assert.Equal(t, before, *s)
		})
	}
}

func TestBeginReveal_SecondSubmitIgnored(t *testing.T) {
	s := New("apple")
	for _, r := range "mango" {
		s.TypeLetter(r)
	}
	require.True(t, s.BeginReveal())
	s.AdvanceReveal()

	assert.False(t, s.BeginReveal())
	assert.Equal(t, 2, s.Reveal.Tiles)
}

func TestInputBlockedDuringReveal(t *testing.T) {
	s := New("apple")
	for _, r := range "mango" {
		s.TypeLetter(r)
	}
	require.True(t, s.BeginReveal())

	assert.False(t, s.DeleteLetter())
	assert.False(t, s.TypeLetter('x'))
	assert.Equal(t, "mango", s.Rows[0])
}

func TestAdvanceReveal(t *testing.T) {
	s := New("apple")
	for _, r := range "mango" {
		s.TypeLetter(r)
	}
	require.True(t, s.BeginReveal())
	assert.Equal(t, 1, s.Reveal.Tiles)

	for want := 2; want <= WordLength; want++ {
		assert.Equal(t, OutcomePending, s.AdvanceReveal())
		assert.Equal(t, want, s.Reveal.Tiles)
		assert.Equal(t, 0, s.CurrentRow)
	}

	assert.Equal(t, OutcomeContinue, s.AdvanceReveal())
	assert.False(t, s.Reveal.Active)
	assert.Equal(t, 1, s.CurrentRow)
	assert.Equal(t, OutcomePending, s.AdvanceReveal(), "no reveal running")
}

func TestWin(t *testing.T) {
	s := New("apple")

	outcome := play(t, s, "APPLE")

	assert.Equal(t, OutcomeWon, outcome)
	assert.True(t, s.GameOver)
	assert.True(t, s.Won)
	assert.Contains(t, s.StatusText(), "APPLE")
	assert.Equal(t, `You won, the word was "APPLE"`, s.StatusText())
	assert.Equal(t, 1, s.CurrentRow)
}

func TestLossOnLastRow(t *testing.T) {
	s := New("apple")

	for i := 0; i < MaxGuesses-1; i++ {
		assert.Equal(t, OutcomeContinue, play(t, s, "mango"))
		assert.False(t, s.GameOver)
	}
	outcome := play(t, s, "mango")

	assert.Equal(t, OutcomeLost, outcome)
	assert.True(t, s.GameOver)
	assert.False(t, s.Won)
	assert.Equal(t, `You lost, the word was "APPLE"`, s.StatusText())
	assert.Equal(t, MaxGuesses, s.CurrentRow)
	assert.False(t, s.TypeLetter('a'), "no input after game over")
}

func TestMissOnNonLastRow(t *testing.T) {
	s := New("apple")

	for row := 0; row < MaxGuesses-1; row++ {
		outcome := play(t, s, "mango")

		assert.Equal(t, OutcomeContinue, outcome)
		assert.False(t, s.GameOver)
		assert.Equal(t, row+1, s.CurrentRow)
		assert.Equal(t, "", s.Status)
		assert.Equal(t, fmt.Sprintf("%d guesses left", MaxGuesses-row-1), s.StatusText())
	}
}

func TestReset(t *testing.T) {
	s := New("apple")
	play(t, s, "apple")
	oldID := s.ID
	s.TypeLetter('x')

	s.Reset("Mango")

	assert.Equal(t, "mango", s.Secret)
	assert.Equal(t, [MaxGuesses]string{}, s.Rows)
	assert.Equal(t, 0, s.CurrentRow)
	assert.False(t, s.GameOver)
	assert.False(t, s.Won)
	assert.Equal(t, "", s.Status)
	assert.Equal(t, Reveal{}, s.Reveal)
	assert.NotEqual(t, oldID, s.ID)
}

func TestResetDuringReveal(t *testing.T) {
	s := New("apple")
	for _, r := range "mango" {
		s.TypeLetter(r)
	}
	require.True(t, s.BeginReveal())

	s.Reset("apple")

	assert.Equal(t, OutcomePending, s.AdvanceReveal())
	assert.Equal(t, 0, s.CurrentRow)
}

func TestIsRevealed(t *testing.T) {
	s := New("apple")
	play(t, s, "mango")
	for _, r := range "scale" {
		s.TypeLetter(r)
	}

	assert.True(t, s.IsRevealed(0, 4), "finalized row")
	assert.False(t, s.IsRevealed(1, 0), "typing row")

	require.True(t, s.BeginReveal())
	s.AdvanceReveal()
	assert.True(t, s.IsRevealed(1, 0))
	assert.True(t, s.IsRevealed(1, 1))
	assert.False(t, s.IsRevealed(1, 2))
}
