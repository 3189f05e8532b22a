package layout

// Flex divides its main extent into equal shares, one per child,
// regardless of what the children ask for. Children fill their share
// and the full cross extent.
type Flex struct {
	group
}

var _ Container = (*Flex)(nil)

// NewFlex creates a Flex along axis, seeded with children.
func NewFlex(axis Axis, children ...Widget) *Flex {
	return &Flex{group: group{axis: axis, children: seedChildren(children)}}
}

// Fit reports room for the hungriest child times the child count, plus
// spacing. Like Align, the answer may exceed the box.
func (f *Flex) Fit(ctx *Context, width, height int) (int, int) {
	n := len(f.children)
	if n == 0 {
		return 0, 0
	}
	width, height = sanitizeBox(width, height)

	maxMain, maxCross := 0, 0
	for _, w := range f.children {
		fw, fh := ctx.FitWidget(w, width, height)
		if m := f.axis.Main(fw, fh); m > maxMain {
			maxMain = m
		}
		if c := f.axis.Cross(fw, fh); c > maxCross {
			maxCross = c
		}
	}
	return f.axis.Size(maxMain*n+f.spacing*(n-1), maxCross)
}

// Layout hands every child an equal floor share of the main extent.
// Rounding slack accumulates at the trailing edge rather than being
// redistributed.
func (f *Flex) Layout(ctx *Context, width, height int) []Placement {
	width, height = sanitizeBox(width, height)
	n := len(f.children)
	if n == 0 {
		return nil
	}
	cross := f.axis.Cross(width, height)
	share := (f.axis.Main(width, height) - f.spacing*(n-1)) / n
	if share < 0 {
		share = 0
	}

	placements := make([]Placement, 0, n)
	for i, w := range f.children {
		pw, ph := f.axis.Size(share, cross)
		x, y := f.axis.Size(i*(share+f.spacing), 0)
		placements = append(placements, Placement{Widget: w, X: x, Y: y, Width: pw, Height: ph})
	}
	return placements
}
