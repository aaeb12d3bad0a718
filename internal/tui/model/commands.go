package model

import (
	"context"
	"time"

	"wordle/internal/words"
	"wordle/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// LoadWordsCmd loads the word list from src in the background.
func LoadWordsCmd(src words.Source, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		list, err := words.Load(ctx, src)
		return WordsLoadedMsg{
			Source: src.Name(),
			Words:  list,
			Err:    err,
		}
	}
}

// ListenForLogEntriesCmd waits for the next log entry. It must be re-armed
// after every NewLogEntryMsg.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}
