package game

const (
	// WordLength is the number of letters in every guess and secret word.
	WordLength = 5
	// MaxGuesses is the number of rows on the board.
	MaxGuesses = 6
)

// Mark is the classification of a single revealed tile.
type Mark int

const (
	// MarkNone means the tile carries no classification (unrevealed, empty
	// or the word list is still loading).
	MarkNone Mark = iota
	// MarkAbsent is a letter that does not appear in the secret word.
	MarkAbsent
	// MarkClose is a letter present in the secret word at another position.
	MarkClose
	// MarkCorrect is a letter at its exact position in the secret word.
	MarkCorrect
)

// String provides a human-readable representation of the Mark.
func (m Mark) String() string {
	switch m {
	case MarkAbsent:
		return "absent"
	case MarkClose:
		return "close"
	case MarkCorrect:
		return "correct"
	default:
		return "none"
	}
}

// Reveal tracks the tile-by-tile disclosure of a submitted row.
type Reveal struct {
	Active bool
	Row    int
	// Tiles is the number of tiles of Row currently disclosed.
	Tiles int
}

// State is the complete state of one game.
type State struct {
	// ID identifies the game in log lines.
	ID string
	// Secret is the lowercase answer. It only changes on Reset.
	Secret string
	// Rows holds one guess per attempt, 0..WordLength lowercase letters each.
	Rows [MaxGuesses]string
	// CurrentRow is the row being typed. It reaches MaxGuesses once all rows
	// are used.
	CurrentRow int
	GameOver   bool
	Won        bool
	// Status is the explicit status message; empty means the default
	// "guesses left" text.
	Status string
	Reveal Reveal
}

// Outcome is the result of evaluating a fully revealed row.
type Outcome int

const (
	// OutcomePending means the reveal has not finished yet.
	OutcomePending Outcome = iota
	// OutcomeContinue means the guess missed and rows remain.
	OutcomeContinue
	// OutcomeWon means the guess matched the secret word.
	OutcomeWon
	// OutcomeLost means the last row was used without a match.
	OutcomeLost
)

// String provides a human-readable representation of the Outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "pending"
	}
}
