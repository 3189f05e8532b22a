package widget

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/drake/ledge/layout"
	"github.com/drake/ledge/text"
)

// Separator draws a single divider glyph between neighbors.
type Separator struct {
	Base

	glyph string
	style lipgloss.Style
}

// NewSeparator creates a Separator drawing a thin vertical bar.
func NewSeparator() *Separator {
	return &Separator{glyph: "│"}
}

// SetGlyph replaces the divider glyph. Writing the current glyph
// emits nothing.
func (s *Separator) SetGlyph(glyph string) {
	if s.glyph == glyph {
		return
	}
	s.glyph = glyph
	s.EmitChanged()
}

// SetStyle replaces the render style. Always emits.
func (s *Separator) SetStyle(st lipgloss.Style) {
	s.style = st
	s.EmitChanged()
}

// Style returns the render style.
func (s *Separator) Style() lipgloss.Style { return s.style }

// Fit wants the glyph's display width on one row.
func (s *Separator) Fit(_ *layout.Context, _, _ int) (int, int) {
	return text.Width(s.glyph), 1
}

// View returns the glyph.
func (s *Separator) View(_, _ int) string { return s.glyph }
