package model

import "github.com/charmbracelet/bubbles/key"

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
// Letters are matched directly by the input handler; Type only documents them.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Type: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a-z", "type letter"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete letter"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit guess"),
		),
		PlayAgain: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "play again"),
			key.WithDisabled(),
		),
		Restart: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "new game"),
			key.WithDisabled(),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry loading words"),
		),
		Share: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy result"),
			key.WithDisabled(),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "toggle log"),
		),
		CopyLogs: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy logs"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "pgup", "pgdown", "home", "end"),
			key.WithHelp("↑/↓", "scroll"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close/quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc/ctrl+c", "quit"),
		),
	}
}

// SetGameOver switches between the bindings of a running game and those of
// a finished one. Disabled bindings neither match nor show up in help.
func (k *KeyMap) SetGameOver(over bool) {
	k.Type.SetEnabled(!over)
	k.Delete.SetEnabled(!over)
	k.Submit.SetEnabled(!over)
	k.PlayAgain.SetEnabled(over)
	k.Restart.SetEnabled(over)
	k.Share.SetEnabled(over)
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.PlayAgain, k.Restart, k.Share, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Type, k.Delete, k.Submit},
		{k.PlayAgain, k.Restart, k.Share},
		{k.Help, k.ToggleLog, k.Quit},
	}
}
