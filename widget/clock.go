package widget

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/drake/ledge/layout"
	"github.com/drake/ledge/text"
)

// Clock renders an instant with a Go time layout string. Something has
// to drive it: the session ticks every clock it can reach once a
// second, aligned to wall-clock second boundaries.
type Clock struct {
	Base

	format string
	loc    *time.Location
	now    time.Time
	style  lipgloss.Style
}

// NewClock creates a Clock with the given layout string, "15:04" when
// empty, showing local time.
func NewClock(format string) *Clock {
	if format == "" {
		format = "15:04"
	}
	return &Clock{format: format, loc: time.Local, now: time.Now()}
}

// Format returns the time layout string.
func (c *Clock) Format() string { return c.format }

// SetFormat replaces the layout string. Writing the current format
// emits nothing.
func (c *Clock) SetFormat(format string) {
	if c.format == format {
		return
	}
	c.format = format
	c.EmitChanged()
}

// SetLocation changes the displayed time zone. Nil is ignored.
func (c *Clock) SetLocation(loc *time.Location) {
	if loc == nil || c.loc == loc {
		return
	}
	c.loc = loc
	c.EmitChanged()
}

// Tick advances the displayed instant. Emits only when the rendered
// string actually changes, so a minute-resolution clock stays quiet on
// second ticks.
func (c *Clock) Tick(now time.Time) {
	changed := c.render(now) != c.render(c.now)
	c.now = now
	if changed {
		c.EmitChanged()
	}
}

// SetStyle replaces the render style. Always emits.
func (c *Clock) SetStyle(s lipgloss.Style) {
	c.style = s
	c.EmitChanged()
}

// Style returns the render style.
func (c *Clock) Style() lipgloss.Style { return c.style }

// Fit wants the formatted time's display width on one row.
func (c *Clock) Fit(_ *layout.Context, _, _ int) (int, int) {
	return text.Width(c.render(c.now)), 1
}

// View returns the formatted time.
func (c *Clock) View(_, _ int) string { return c.render(c.now) }

func (c *Clock) render(t time.Time) string {
	return t.In(c.loc).Format(c.format)
}
