// Package tui provides the terminal user interface of the game.
//
// The TUI follows a Model-View-Controller pattern built on Bubble Tea:
//
//   - Model (internal/tui/model/): session state, the current game, reveal
//     timer bookkeeping and the commands that load words
//   - View (internal/tui/view/): renders the board, the status line and the
//     help, log and load failure screens
//   - Controller (internal/tui/controller/): routes keys and timer messages
//     and owns the Bubble Tea program
//
// Shared building blocks live in internal/tui/components/ (header, status
// bar, tiles) and internal/tui/design/ (palette and styles).
//
// # Modes
//
// The application starts in ModeLoading while the word list is fetched,
// moves to ModePlaying once a secret word has been picked, or to
// ModeLoadFailed when no usable word could be loaded. The help and log
// overlays can be opened from any of these modes and return to it on close.
//
// # Usage
//
//	p, err := controller.NewProgram(model.TUIConfig{Source: src})
//	if err != nil {
//		return err
//	}
//	_, err = p.Run()
package tui
