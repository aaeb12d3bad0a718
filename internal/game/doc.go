// Package game holds the rules of a single word-guessing game.
//
// A State owns the secret word, six guess rows, the index of the row being
// typed and the reveal counter of a submitted row. It has no knowledge of
// timers or terminals: the TUI calls BeginReveal when a guess is submitted
// and AdvanceReveal on every timer tick until an Outcome other than
// OutcomePending is returned.
//
// # Lifecycle
//
//	Typing -> Submitted -> Revealing(tile 1..5) -> Evaluated -> GameOver | Typing(next row)
//
// CurrentRow only ever increases, exactly once per completed reveal. Reset
// is the only way to replace the secret word.
//
// # Classification
//
// Classify checks the exact position first and then presence anywhere in the
// secret word, so "scale" against "apple" yields absent, absent, close,
// correct, correct.
package game
