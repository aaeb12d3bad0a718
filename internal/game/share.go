package game

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

var shareSquares = map[Mark]string{
	MarkCorrect: "🟩",
	MarkClose:   "🟨",
	MarkAbsent:  "⬛",
}

// ShareText renders a finished game as the familiar emoji grid. It returns
// "" while the game is still running.
func ShareText(s *State) string {
	if !s.GameOver {
		return ""
	}

	score := "X"
	if s.Won {
		score = fmt.Sprintf("%d", s.CurrentRow)
	}

	lines := lo.Map(s.Rows[:s.CurrentRow], func(guess string, _ int) string {
		marks := Marks(s.Secret, guess)
		return strings.Join(lo.Map(marks[:], func(m Mark, _ int) string {
			return shareSquares[m]
		}), "")
	})

	return fmt.Sprintf("Wordle %s/%d\n\n%s", score, MaxGuesses, strings.Join(lines, "\n"))
}
