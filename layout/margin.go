package layout

// Margin insets a single child by per-side amounts.
type Margin struct {
	Notifier

	child  Widget
	left   int
	right  int
	top    int
	bottom int
}

var _ Container = (*Margin)(nil)

// NewMargin wraps child with zero insets.
func NewMargin(child Widget) *Margin {
	return &Margin{child: child}
}

// Widget returns the wrapped child.
func (m *Margin) Widget() Widget { return m.child }

// SetWidget replaces the wrapped child. Assigning the current child is
// a no-op and emits nothing.
func (m *Margin) SetWidget(w Widget) {
	if m.child == w {
		return
	}
	m.child = w
	m.EmitChanged()
}

// Margins returns the current insets.
func (m *Margin) Margins() (left, right, top, bottom int) {
	return m.left, m.right, m.top, m.bottom
}

// SetMargins sets all four insets. Negative insets clamp to zero; an
// unchanged set emits nothing.
func (m *Margin) SetMargins(left, right, top, bottom int) {
	if left < 0 {
		left = 0
	}
	if right < 0 {
		right = 0
	}
	if top < 0 {
		top = 0
	}
	if bottom < 0 {
		bottom = 0
	}
	if m.left == left && m.right == right && m.top == top && m.bottom == bottom {
		return
	}
	m.left, m.right, m.top, m.bottom = left, right, top, bottom
	m.EmitChanged()
}

// Children returns the wrapped child, or nothing.
func (m *Margin) Children() []Widget {
	if m.child == nil {
		return nil
	}
	return []Widget{m.child}
}

// Fit asks the child to fit the inset box and adds the insets back. An
// empty Margin still wants its insets.
func (m *Margin) Fit(ctx *Context, width, height int) (int, int) {
	if m.child == nil {
		return m.left + m.right, m.top + m.bottom
	}
	fw, fh := ctx.FitWidget(m.child, width-m.left-m.right, height-m.top-m.bottom)
	return fw + m.left + m.right, fh + m.top + m.bottom
}

// Layout places the child inside the inset box. Insets larger than the
// box collapse the child to zero size rather than going negative.
func (m *Margin) Layout(ctx *Context, width, height int) []Placement {
	width, height = sanitizeBox(width, height)
	if m.child == nil {
		return nil
	}
	w := width - m.left - m.right
	h := height - m.top - m.bottom
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return []Placement{{Widget: m.child, X: m.left, Y: m.top, Width: w, Height: h}}
}
