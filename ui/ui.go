// Package ui renders the panel shell with Bubble Tea. The model is
// deliberately thin: Session renders bars and owns all widget state,
// the shell only places rows and reports keys back.
package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// BubbleTeaUI bridges the session's channel-based architecture with
// Bubble Tea's model/update/view event loop.
type BubbleTeaUI struct {
	program *tea.Program

	// Message queue - buffered channel drained by a single goroutine.
	// This decouples callers from tea.Program.Send() which can block.
	msgQueue chan tea.Msg

	// Outbound messages from UI to Session (ExecuteBindMsg,
	// WindowSizeChangedMsg, ...). Session reads from this channel in
	// its event loop.
	outbound chan Event

	// Shutdown coordination
	done     chan struct{}
	doneOnce sync.Once
}

// New creates a new Bubble Tea-based UI.
func New() *BubbleTeaUI {
	return &BubbleTeaUI{
		msgQueue: make(chan tea.Msg, 1024),
		outbound: make(chan Event, 256),
		done:     make(chan struct{}),
	}
}

// Send queues a message for delivery to the Bubble Tea program.
// Safe to call before Run and after shutdown.
func (b *BubbleTeaUI) Send(msg tea.Msg) {
	select {
	case <-b.done:
	case b.msgQueue <- msg:
	}
}

// Events returns the channel of messages from UI to Session.
func (b *BubbleTeaUI) Events() <-chan Event {
	return b.outbound
}

// Run starts the TUI and blocks until exit.
func (b *BubbleTeaUI) Run() error {
	model := NewModel(b.outbound)

	b.program = tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithInputTTY(),
	)

	// Single goroutine drains the message queue to Bubble Tea. This
	// can block on Send() without affecting producers.
	go func() {
		for {
			select {
			case <-b.done:
				return
			case msg := <-b.msgQueue:
				b.program.Send(msg)
			}
		}
	}()

	_, err := b.program.Run()

	b.doneOnce.Do(func() {
		close(b.done)
	})

	return err
}

// Done returns a channel that closes when the UI exits.
func (b *BubbleTeaUI) Done() <-chan struct{} {
	return b.done
}

// Quit signals the TUI to exit.
func (b *BubbleTeaUI) Quit() {
	if b.program != nil {
		b.program.Quit()
	}
	b.doneOnce.Do(func() {
		close(b.done)
	})
}
