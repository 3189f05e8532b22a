// Package widget provides the leaf widgets bars are built from.
//
// Every widget embeds Base, which supplies change notification and
// visibility. Mutators follow one rule: writing the value a field
// already holds emits nothing, any real change emits exactly once.
// Widgets render as plain text through View plus a single lipgloss
// style; the renderer applies the style per placed segment.
package widget

import "github.com/drake/ledge/layout"

// Base supplies the notification and visibility plumbing every leaf
// widget embeds.
type Base struct {
	layout.Notifier

	hidden bool
}

// Visible reports whether the widget participates in layout and
// rendering.
func (b *Base) Visible() bool { return !b.hidden }

// SetVisible toggles participation. Emits only on an actual flip.
func (b *Base) SetVisible(v bool) {
	if b.hidden == !v {
		return
	}
	b.hidden = !v
	b.EmitChanged()
}
