package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/drake/ledge/layout"
	"github.com/drake/ledge/style"
	"github.com/drake/ledge/text"
)

const (
	meterFilled = '█'
	meterEmpty  = '░'
)

// Meter is a fractional gauge drawn as a run of filled and empty
// cells, optionally labeled. Its color slides between the ramp
// endpoints as the value moves.
type Meter struct {
	Base

	label string
	value float64
	cells int
	low   string
	high  string
	base  lipgloss.Style
}

// NewMeter creates a Meter with a gauge body of cells columns. Sizes
// under one cell are bumped to one. The default ramp runs red to
// green.
func NewMeter(cells int) *Meter {
	if cells < 1 {
		cells = 1
	}
	return &Meter{cells: cells, low: "#d70000", high: "#00af5f"}
}

// Value returns the current fill fraction in [0, 1].
func (m *Meter) Value() float64 { return m.value }

// SetValue moves the gauge. Values clamp into [0, 1]; writing the
// current value emits nothing.
func (m *Meter) SetValue(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	if m.value == v {
		return
	}
	m.value = v
	m.EmitChanged()
}

// Label returns the text drawn before the gauge body.
func (m *Meter) Label() string { return m.label }

// SetLabel replaces the label. Writing the current label emits
// nothing.
func (m *Meter) SetLabel(s string) {
	if m.label == s {
		return
	}
	m.label = s
	m.EmitChanged()
}

// SetRamp replaces the hex color endpoints the fill color blends
// between.
func (m *Meter) SetRamp(low, high string) {
	if m.low == low && m.high == high {
		return
	}
	m.low, m.high = low, high
	m.EmitChanged()
}

// SetStyle replaces the base style the ramp color is laid over.
// Always emits.
func (m *Meter) SetStyle(s lipgloss.Style) {
	m.base = s
	m.EmitChanged()
}

// Style returns the base style with the value's ramp color applied.
func (m *Meter) Style() lipgloss.Style {
	return m.base.Foreground(style.Blend(m.low, m.high, m.value))
}

// Fit wants the label plus gauge body on one row.
func (m *Meter) Fit(_ *layout.Context, _, _ int) (int, int) {
	w := m.cells
	if m.label != "" {
		w += text.Width(m.label) + 1
	}
	return w, 1
}

// View returns the label and gauge glyphs.
func (m *Meter) View(_, _ int) string {
	filled := int(m.value*float64(m.cells) + 0.5)
	if filled > m.cells {
		filled = m.cells
	}
	var b strings.Builder
	if m.label != "" {
		b.WriteString(m.label)
		b.WriteByte(' ')
	}
	b.WriteString(strings.Repeat(string(meterFilled), filled))
	b.WriteString(strings.Repeat(string(meterEmpty), m.cells-filled))
	return b.String()
}
