package widget

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/drake/ledge/layout"
	"github.com/drake/ledge/text"
)

// Prompt is an interactive command line living inside a bar. Inactive
// prompts fit to nothing and collapse out of the layout; an active
// prompt shows its marker, the edited value, and a block cursor.
//
// The prompt does not read the keyboard itself: the session feeds key
// messages in through Update.
type Prompt struct {
	Base

	input  textinput.Model
	active bool
	style  lipgloss.Style
}

// NewPrompt creates an inactive Prompt with a ":" marker.
func NewPrompt() *Prompt {
	ti := textinput.New()
	ti.Prompt = ":"
	return &Prompt{input: ti}
}

// Active reports whether the prompt is capturing input.
func (p *Prompt) Active() bool { return p.active }

// Activate clears the value and starts capturing input.
func (p *Prompt) Activate() {
	if p.active {
		return
	}
	p.active = true
	p.input.SetValue("")
	p.input.CursorEnd()
	p.input.Focus()
	p.EmitChanged()
}

// Deactivate stops capturing input and collapses the prompt.
func (p *Prompt) Deactivate() {
	if !p.active {
		return
	}
	p.active = false
	p.input.Blur()
	p.EmitChanged()
}

// Value returns the edited line.
func (p *Prompt) Value() string { return p.input.Value() }

// SetValue replaces the edited line and moves the cursor to the end.
// Used for history recall.
func (p *Prompt) SetValue(s string) {
	if p.input.Value() == s {
		return
	}
	p.input.SetValue(s)
	p.input.CursorEnd()
	p.EmitChanged()
}

// SetMarker replaces the leading marker glyph. Always emits when
// the marker changes.
func (p *Prompt) SetMarker(marker string) {
	if p.input.Prompt == marker {
		return
	}
	p.input.Prompt = marker
	p.EmitChanged()
}

// Update feeds a key message into the underlying text input. Ignored
// while inactive.
func (p *Prompt) Update(msg tea.Msg) {
	if !p.active {
		return
	}
	p.input, _ = p.input.Update(msg)
	p.EmitChanged()
}

// SetStyle replaces the render style. Always emits.
func (p *Prompt) SetStyle(s lipgloss.Style) {
	p.style = s
	p.EmitChanged()
}

// Style returns the render style.
func (p *Prompt) Style() lipgloss.Style { return p.style }

// Fit wants the rendered line while active and nothing while idle.
func (p *Prompt) Fit(_ *layout.Context, _, _ int) (int, int) {
	if !p.active {
		return 0, 0
	}
	return text.Width(p.view()), 1
}

// View returns the marker, value, and cursor block.
func (p *Prompt) View(_, _ int) string {
	if !p.active {
		return ""
	}
	return p.view()
}

func (p *Prompt) view() string {
	runes := []rune(p.input.Value())
	pos := p.input.Position()
	if pos < 0 {
		pos = 0
	}
	if pos >= len(runes) {
		return p.input.Prompt + string(runes) + "█"
	}
	// The block replaces the rune under the cursor; close enough to a
	// real inverse cursor for a plain-text cell model.
	return p.input.Prompt + string(runes[:pos]) + "█" + string(runes[pos+1:])
}
