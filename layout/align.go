package layout

// Expand selects how Align hands out space left over after its slots
// are measured.
type Expand uint8

const (
	// ExpandInside gives all leftover space to the second slot; the
	// outer slots keep their fitted sizes.
	ExpandInside Expand = iota
	// ExpandOutside measures the second slot first and stretches the
	// outer slots over everything else, ignoring their own fits.
	ExpandOutside
	// ExpandNone measures the second slot first and leaves every slot
	// at its fitted size, centering the second in the full box.
	ExpandNone
)

// ParseExpand maps scripting-facing mode names onto Expand. Unknown
// names fall back to ExpandInside, the same coercion SetExpand applies.
func ParseExpand(s string) Expand {
	switch s {
	case "outside":
		return ExpandOutside
	case "none":
		return ExpandNone
	default:
		return ExpandInside
	}
}

func (e Expand) String() string {
	switch e {
	case ExpandOutside:
		return "outside"
	case ExpandNone:
		return "none"
	default:
		return "inside"
	}
}

// Align arranges up to three widgets along one axis: first flush with
// the leading edge, third flush with the trailing edge, second between
// them. The axis is fixed at construction; any slot may be empty.
type Align struct {
	Notifier

	axis   Axis
	expand Expand

	first  Widget
	second Widget
	third  Widget
}

var _ Container = (*Align)(nil)

// NewAlign creates an Align along axis. Slots may be seeded here or
// left nil and assigned later.
func NewAlign(axis Axis, first, second, third Widget) *Align {
	return &Align{axis: axis, first: first, second: second, third: third}
}

// --- Slots & modes ---

// Axis returns the construction-time axis.
func (a *Align) Axis() Axis { return a.axis }

// First returns the leading slot.
func (a *Align) First() Widget { return a.first }

// Second returns the middle slot.
func (a *Align) Second() Widget { return a.second }

// Third returns the trailing slot.
func (a *Align) Third() Widget { return a.third }

// SetFirst assigns the leading slot. Assigning the widget already in
// the slot is a no-op and emits nothing.
func (a *Align) SetFirst(w Widget) {
	if a.first == w {
		return
	}
	a.first = w
	a.EmitChanged()
}

// SetSecond assigns the middle slot. Same no-op rule as SetFirst.
func (a *Align) SetSecond(w Widget) {
	if a.second == w {
		return
	}
	a.second = w
	a.EmitChanged()
}

// SetThird assigns the trailing slot. Same no-op rule as SetFirst.
func (a *Align) SetThird(w Widget) {
	if a.third == w {
		return
	}
	a.third = w
	a.EmitChanged()
}

// SetChildren assigns list[0], list[1], list[2] to first, second,
// third. Short lists clear the remaining slots; entries past the third
// are ignored. Each slot goes through its setter, so slots that do not
// actually change emit nothing.
func (a *Align) SetChildren(list []Widget) {
	a.SetFirst(slotAt(list, 0))
	a.SetSecond(slotAt(list, 1))
	a.SetThird(slotAt(list, 2))
}

// Children returns the occupied slots in first, second, third order.
func (a *Align) Children() []Widget {
	out := make([]Widget, 0, 3)
	for _, w := range []Widget{a.first, a.second, a.third} {
		if w != nil {
			out = append(out, w)
		}
	}
	return out
}

// Reset clears all three slots with a single notification.
func (a *Align) Reset() {
	a.first, a.second, a.third = nil, nil, nil
	a.EmitChanged()
}

// Expand returns the current expand mode.
func (a *Align) Expand() Expand { return a.expand }

// SetExpand sets the leftover-distribution mode. Values other than
// ExpandOutside and ExpandNone coerce to ExpandInside. SetExpand emits
// unconditionally, changed or not.
func (a *Align) SetExpand(mode Expand) {
	switch mode {
	case ExpandOutside, ExpandNone:
		a.expand = mode
	default:
		a.expand = ExpandInside
	}
	a.EmitChanged()
}

// --- Fit ---

// Fit reports the size the slots want together: main extents summed,
// cross extents maxed. Every slot is queried with the full constraints
// rather than a running remainder, so the answer may exceed the box.
func (a *Align) Fit(ctx *Context, width, height int) (int, int) {
	usedMain, usedCross := 0, 0
	for _, w := range []Widget{a.first, a.second, a.third} {
		if w == nil {
			continue
		}
		fw, fh := ctx.FitWidget(w, width, height)
		usedMain += a.axis.Main(fw, fh)
		if c := a.axis.Cross(fw, fh); c > usedCross {
			usedCross = c
		}
	}
	return a.axis.Size(usedMain, usedCross)
}

// --- Layout ---

// Layout places the slots inside a width x height box.
//
// In Outside and None modes the second slot is measured first: its fit
// takes priority, the leftover is floor-halved into a per-side budget
// for the outer slots, and a second that wants the whole box
// short-circuits to a single full-box placement. The first slot then
// takes the leading end and the third the trailing end, sized by their
// fits (Inside, None) or stretched over the per-side budget (Outside).
// The second slot is placed last: right after first at exactly the
// leftover size in Inside mode, floor-centered at its reserved size
// otherwise. Slots whose turn comes after the budget ran out are
// skipped; nothing is ever clipped here.
func (a *Align) Layout(ctx *Context, width, height int) []Placement {
	width, height = sanitizeBox(width, height)
	cross := a.axis.Cross(width, height)

	var placements []Placement

	remaining := a.axis.Main(width, height)
	sizeFirst := 0
	sizeSecond := 0
	reserved := false

	if a.second != nil && a.expand != ExpandInside {
		fw, fh := ctx.FitWidget(a.second, width, height)
		sizeSecond = a.axis.Main(fw, fh)
		reserved = true
		if sizeSecond >= remaining {
			return []Placement{{Widget: a.second, Width: width, Height: height}}
		}
		remaining = (remaining - sizeSecond) / 2
	}

	if a.first != nil {
		w, h := width, height
		if a.expand == ExpandOutside {
			w, h = a.axis.Size(remaining, cross)
		} else {
			conW, conH := a.axis.Size(remaining, cross)
			fw, fh := ctx.FitWidget(a.first, conW, conH)
			sizeFirst = a.axis.Main(fw, fh)
			w, h = a.axis.Size(sizeFirst, cross)
			// Inside hands first's leftovers onward. None keeps the
			// per-side reservation intact, unless there was no second
			// widget to reserve for in the first place.
			if a.expand == ExpandInside || !reserved {
				remaining -= sizeFirst
			}
		}
		placements = append(placements, Placement{Widget: a.first, Width: w, Height: h})
	}

	if a.third != nil && remaining > 0 {
		w, h := width, height
		if a.expand == ExpandOutside {
			w, h = a.axis.Size(remaining, cross)
		} else {
			conW, conH := a.axis.Size(remaining, cross)
			fw, fh := ctx.FitWidget(a.third, conW, conH)
			size := a.axis.Main(fw, fh)
			w, h = a.axis.Size(size, cross)
			if a.expand == ExpandInside {
				remaining -= size
			}
		}
		placements = append(placements, Placement{
			Widget: a.third,
			X:      width - w,
			Y:      height - h,
			Width:  w,
			Height: h,
		})
	}

	if a.second != nil && remaining > 0 {
		var x, y, w, h int
		if a.expand == ExpandInside {
			w, h = a.axis.Size(remaining, cross)
			x, y = a.axis.Size(sizeFirst, 0)
		} else {
			conW, conH := a.axis.Size(sizeSecond, cross)
			fw, fh := ctx.FitWidget(a.second, conW, conH)
			size := a.axis.Main(fw, fh)
			w, h = a.axis.Size(size, cross)
			x, y = a.axis.Size((a.axis.Main(width, height)-size)/2, 0)
		}
		placements = append(placements, Placement{Widget: a.second, X: x, Y: y, Width: w, Height: h})
	}

	return placements
}

func slotAt(list []Widget, i int) Widget {
	if i < len(list) {
		return list[i]
	}
	return nil
}
