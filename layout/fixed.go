package layout

// group holds the child list, spacing, and notification plumbing
// shared by the sequential containers.
type group struct {
	Notifier

	axis     Axis
	spacing  int
	children []Widget
}

// Axis returns the construction-time axis.
func (g *group) Axis() Axis { return g.axis }

// Spacing returns the gap inserted between consecutive children.
func (g *group) Spacing() int { return g.spacing }

// SetSpacing sets the inter-child gap. Negative gaps clamp to zero;
// an unchanged gap emits nothing.
func (g *group) SetSpacing(n int) {
	if n < 0 {
		n = 0
	}
	if g.spacing == n {
		return
	}
	g.spacing = n
	g.EmitChanged()
}

// Add appends widgets to the end of the list, dropping nil entries.
// Emits once when at least one widget was added.
func (g *group) Add(ws ...Widget) {
	added := false
	for _, w := range ws {
		if w == nil {
			continue
		}
		g.children = append(g.children, w)
		added = true
	}
	if added {
		g.EmitChanged()
	}
}

// Insert places w before index i, clamping i into range.
func (g *group) Insert(i int, w Widget) {
	if w == nil {
		return
	}
	if i < 0 {
		i = 0
	}
	if i > len(g.children) {
		i = len(g.children)
	}
	g.children = append(g.children, nil)
	copy(g.children[i+1:], g.children[i:])
	g.children[i] = w
	g.EmitChanged()
}

// Remove drops the first child identical to w, reporting whether one
// was found. Emits only on a hit.
func (g *group) Remove(w Widget) bool {
	for i, c := range g.children {
		if c == w {
			g.children = append(g.children[:i], g.children[i+1:]...)
			g.EmitChanged()
			return true
		}
	}
	return false
}

// Reset clears the child list with a single notification.
func (g *group) Reset() {
	g.children = nil
	g.EmitChanged()
}

// Children returns a copy of the child list.
func (g *group) Children() []Widget {
	out := make([]Widget, len(g.children))
	copy(out, g.children)
	return out
}

func seedChildren(children []Widget) []Widget {
	var out []Widget
	for _, w := range children {
		if w != nil {
			out = append(out, w)
		}
	}
	return out
}

// Fixed packs children one after another along its axis, each at its
// fitted size, with optional spacing in between. Children past the end
// of the box are dropped from the output.
type Fixed struct {
	group
}

var _ Container = (*Fixed)(nil)

// NewFixed creates a Fixed along axis, seeded with children.
func NewFixed(axis Axis, children ...Widget) *Fixed {
	return &Fixed{group: group{axis: axis, children: seedChildren(children)}}
}

// Fit reports the packed size: main extents summed with spacing, cross
// extents maxed. Unlike Align, each child is offered only the space
// its predecessors left over.
func (f *Fixed) Fit(ctx *Context, width, height int) (int, int) {
	width, height = sanitizeBox(width, height)
	cross := f.axis.Cross(width, height)
	left := f.axis.Main(width, height)

	usedMain, usedCross := 0, 0
	for _, w := range f.children {
		gap := 0
		if usedMain > 0 {
			gap = f.spacing
		}
		avail := left - gap
		if avail <= 0 {
			break
		}
		conW, conH := f.axis.Size(avail, cross)
		fw, fh := ctx.FitWidget(w, conW, conH)
		m := f.axis.Main(fw, fh)
		if m == 0 {
			// Hidden or empty children earn no gap either.
			continue
		}
		usedMain += gap + m
		left -= gap + m
		if c := f.axis.Cross(fw, fh); c > usedCross {
			usedCross = c
		}
	}
	return f.axis.Size(usedMain, usedCross)
}

// Layout places children at increasing offsets along the axis, each at
// its fitted main extent and the full cross extent. Placement stops
// once the box is exhausted.
func (f *Fixed) Layout(ctx *Context, width, height int) []Placement {
	width, height = sanitizeBox(width, height)
	cross := f.axis.Cross(width, height)
	left := f.axis.Main(width, height)

	var placements []Placement
	offset := 0
	for _, w := range f.children {
		gap := 0
		if offset > 0 {
			gap = f.spacing
		}
		avail := left - gap
		if avail <= 0 {
			break
		}
		conW, conH := f.axis.Size(avail, cross)
		fw, fh := ctx.FitWidget(w, conW, conH)
		m := f.axis.Main(fw, fh)
		if m == 0 {
			continue
		}
		offset += gap
		pw, ph := f.axis.Size(m, cross)
		x, y := f.axis.Size(offset, 0)
		placements = append(placements, Placement{Widget: w, X: x, Y: y, Width: pw, Height: ph})
		offset += m
		left -= gap + m
	}
	return placements
}
