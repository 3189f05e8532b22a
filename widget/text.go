package widget

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/drake/ledge/layout"
	"github.com/drake/ledge/text"
)

// Text is a single-line styled text widget.
type Text struct {
	Base

	content  string
	style    lipgloss.Style
	maxWidth int
}

// NewText creates a Text holding content.
func NewText(content string) *Text {
	return &Text{content: content}
}

// Text returns the current content.
func (t *Text) Text() string { return t.content }

// SetText replaces the content. Writing the current content emits
// nothing.
func (t *Text) SetText(s string) {
	if t.content == s {
		return
	}
	t.content = s
	t.EmitChanged()
}

// SetStyle replaces the render style. Styles are not comparable, so
// this always emits.
func (t *Text) SetStyle(s lipgloss.Style) {
	t.style = s
	t.EmitChanged()
}

// Style returns the render style.
func (t *Text) Style() lipgloss.Style { return t.style }

// MaxWidth returns the display-width cap, 0 meaning uncapped.
func (t *Text) MaxWidth() int { return t.maxWidth }

// SetMaxWidth caps the fitted display width. Zero removes the cap.
func (t *Text) SetMaxWidth(n int) {
	if n < 0 {
		n = 0
	}
	if t.maxWidth == n {
		return
	}
	t.maxWidth = n
	t.EmitChanged()
}

// Fit wants the content's display width on one row.
func (t *Text) Fit(_ *layout.Context, _, _ int) (int, int) {
	w := text.Width(t.content)
	if t.maxWidth > 0 && w > t.maxWidth {
		w = t.maxWidth
	}
	return w, 1
}

// View returns the content; the renderer clips it to the placed box.
func (t *Text) View(_, _ int) string { return t.content }
