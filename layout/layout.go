package layout

// Axis selects the direction a container arranges children in.
type Axis uint8

const (
	// Horizontal lays out along x; the main extent is width.
	Horizontal Axis = iota
	// Vertical lays out along y; the main extent is height.
	Vertical
)

// Main returns the extent of (w, h) along the axis.
func (a Axis) Main(w, h int) int {
	if a == Vertical {
		return h
	}
	return w
}

// Cross returns the extent of (w, h) across the axis.
func (a Axis) Cross(w, h int) int {
	if a == Vertical {
		return w
	}
	return h
}

// Size recombines main and cross extents into (width, height).
func (a Axis) Size(main, cross int) (int, int) {
	if a == Vertical {
		return cross, main
	}
	return main, cross
}

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Widget is the minimal layout participant: report a preferred size
// under the given constraints. Implementations should return
// non-negative extents; Context.FitWidget sanitizes anything else.
//
// Widget identity is reference identity. Containers compare slots with
// ==, so widgets are expected to be pointer values.
type Widget interface {
	Fit(ctx *Context, width, height int) (int, int)
}

// Container is a Widget that positions child widgets.
type Container interface {
	Widget

	// Layout computes placements for the children inside a
	// width x height box. Coordinates are relative to the container's
	// own origin. Containers never clip: bounding fit results is the
	// fit query's job, overlap resolution is the renderer's.
	Layout(ctx *Context, width, height int) []Placement

	// Children returns the current children, skipping empty slots.
	Children() []Widget
}

// Placement is one positioned child within a container's box.
type Placement struct {
	Widget Widget
	X, Y   int
	Width  int
	Height int
}

func sanitizeBox(width, height int) (int, int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return width, height
}
