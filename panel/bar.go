package panel

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/drake/ledge/layout"
	"github.com/drake/ledge/lua"
	"github.com/drake/ledge/style"
)

// Bar is one live panel strip: a named Align tree pinned to a screen
// edge. Redeclaring a name updates the existing Bar in place, so
// widgets the script kept between reloads also keep their state.
type Bar struct {
	name   string
	edge   string
	height int
	fg     string
	bg     string
	gen    uint64

	style lipgloss.Style
	root  *layout.Align
}

// Name returns the declared bar name.
func (b *Bar) Name() string { return b.name }

// Edge returns "top" or "bottom".
func (b *Bar) Edge() string { return b.edge }

// Height returns the bar height in rows.
func (b *Bar) Height() int { return b.height }

// Root returns the bar's layout tree.
func (b *Bar) Root() *layout.Align { return b.root }

// apply folds a declaration into the bar, reporting whether anything
// about the bar itself changed. Slot churn notifies through the root's
// own change handler, so it is not part of the return value.
func (b *Bar) apply(def lua.BarDef, styles style.Styles, gen uint64) bool {
	b.gen = gen

	changed := false
	if b.edge != def.Edge {
		b.edge = def.Edge
		changed = true
	}
	if b.height != def.Height {
		b.height = def.Height
		changed = true
	}
	if b.fg != def.Fg || b.bg != def.Bg {
		b.fg, b.bg = def.Fg, def.Bg
		b.style = barStyle(styles, def.Fg, def.Bg)
		changed = true
	}

	if mode := layout.ParseExpand(def.Expand); b.root.Expand() != mode {
		b.root.SetExpand(mode)
	}
	if !slotMatches(b.root.First(), def.Left, def.Spacing) {
		b.root.SetFirst(buildSlot(def.Left, def.Spacing))
	}
	if !slotMatches(b.root.Second(), def.Center, def.Spacing) {
		b.root.SetSecond(buildSlot(def.Center, def.Spacing))
	}
	if !slotMatches(b.root.Third(), def.Right, def.Spacing) {
		b.root.SetThird(buildSlot(def.Right, def.Spacing))
	}
	return changed
}

// barStyle derives the bar background style, starting from the theme
// and overriding with declared colors.
func barStyle(styles style.Styles, fg, bg string) lipgloss.Style {
	s := styles.Bar
	if bg != "" {
		s = s.Background(lipgloss.Color(bg))
	}
	if fg != "" {
		s = s.Foreground(lipgloss.Color(fg))
	}
	return s
}

// buildSlot wraps slot widgets in a horizontal row. Empty slots stay
// nil so Align treats them as absent.
func buildSlot(widgets []layout.Widget, spacing int) layout.Widget {
	if len(widgets) == 0 {
		return nil
	}
	f := layout.NewFixed(layout.Horizontal, widgets...)
	f.SetSpacing(spacing)
	return f
}

// slotMatches reports whether the current slot already holds exactly
// these widgets at this spacing. A matching slot is left untouched so
// an identical redeclaration moves nothing and notifies nobody.
func slotMatches(current layout.Widget, widgets []layout.Widget, spacing int) bool {
	if current == nil {
		return len(widgets) == 0
	}
	f, ok := current.(*layout.Fixed)
	if !ok || f.Spacing() != spacing {
		return false
	}
	kids := f.Children()
	if len(kids) != len(widgets) {
		return false
	}
	for i := range kids {
		if kids[i] != widgets[i] {
			return false
		}
	}
	return true
}

// forEachWidget walks a widget tree depth-first, containers included.
func forEachWidget(w layout.Widget, fn func(layout.Widget)) {
	if w == nil {
		return
	}
	fn(w)
	if c, ok := w.(layout.Container); ok {
		for _, kid := range c.Children() {
			forEachWidget(kid, fn)
		}
	}
}
