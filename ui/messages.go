package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// --- Push-based UI Messages (Session -> UI) ---

// SetBarsMsg pushes rendered bar rows from Session to UI.
// Session lays out the widget trees and renders them to styled strings;
// UI just places the rows at the edges.
type SetBarsMsg struct {
	Top    []string
	Bottom []string
}

// UpdateBindsMsg pushes the current set of bound keys from Session to UI.
// UI uses this to check if a key should be sent to Session for execution.
type UpdateBindsMsg map[string]bool

// PromptStateMsg switches the UI between normal and prompt input modes.
// While a prompt is active every non-global key is forwarded to Session.
type PromptStateMsg struct {
	Active bool
}

// StatusTextMsg shows a transient line in the filler area (Lua prints,
// script errors). It fades after a few seconds.
type StatusTextMsg string

// statusExpireMsg clears the status line if no newer status arrived.
type statusExpireMsg struct {
	seq int
}

func expireStatus(seq int) tea.Cmd {
	return tea.Tick(5*time.Second, func(time.Time) tea.Msg {
		return statusExpireMsg{seq: seq}
	})
}

// --- Push-based UI Messages (UI -> Session) ---

// Event is a message flowing from UI to Session. Session reads these
// from Events() in its event loop.
type Event any

// WindowSizeChangedMsg notifies Session of terminal size changes.
// Session uses this to re-render bars and update ledge.state.
type WindowSizeChangedMsg struct {
	Width  int
	Height int
}

// ExecuteBindMsg requests Session to execute a Lua key binding.
// Sent when UI detects a key that's in the boundKeys map.
type ExecuteBindMsg string

// PromptOpenMsg asks Session to activate a prompt widget.
type PromptOpenMsg struct{}

// PromptKeyMsg forwards a key press to the active prompt widget.
type PromptKeyMsg struct {
	Key tea.KeyMsg
}
