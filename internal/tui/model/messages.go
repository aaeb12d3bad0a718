package model

import "wordle/pkg/logging"

// WordsLoadedMsg carries the result of LoadWordsCmd.
type WordsLoadedMsg struct {
	Source string
	Words  []string
	Err    error
}

// RevealTickMsg advances the reveal identified by Seq by one tile.
type RevealTickMsg struct {
	Seq int
}

// NewLogEntryMsg delivers a log entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// ShareCopiedMsg reports the outcome of copying the result grid.
type ShareCopiedMsg struct {
	Err error
}

type ClearStatusBarMsg struct{}
