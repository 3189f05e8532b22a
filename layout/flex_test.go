package layout

import "testing"

func TestFlexLayoutEqualShares(t *testing.T) {
	a, b, c := stub(5, 1), stub(90, 1), stub(1, 1)
	f := NewFlex(Horizontal, a, b, c)

	got := f.Layout(NewContext(), 30, 1)
	checkPlacements(t, got, []Placement{
		{Widget: a, X: 0, Y: 0, Width: 10, Height: 1},
		{Widget: b, X: 10, Y: 0, Width: 10, Height: 1},
		{Widget: c, X: 20, Y: 0, Width: 10, Height: 1},
	})
}

func TestFlexLayoutSpacing(t *testing.T) {
	a, b, c := stub(1, 1), stub(1, 1), stub(1, 1)
	f := NewFlex(Horizontal, a, b, c)
	f.SetSpacing(2)

	got := f.Layout(NewContext(), 34, 1)
	checkPlacements(t, got, []Placement{
		{Widget: a, X: 0, Y: 0, Width: 10, Height: 1},
		{Widget: b, X: 12, Y: 0, Width: 10, Height: 1},
		{Widget: c, X: 24, Y: 0, Width: 10, Height: 1},
	})
}

func TestFlexLayoutRoundingSlack(t *testing.T) {
	a, b, c := stub(1, 1), stub(1, 1), stub(1, 1)
	f := NewFlex(Horizontal, a, b, c)

	// 32/3 floors to 10; two cells of slack stay at the trailing edge.
	got := f.Layout(NewContext(), 32, 1)
	checkPlacements(t, got, []Placement{
		{Widget: a, X: 0, Y: 0, Width: 10, Height: 1},
		{Widget: b, X: 10, Y: 0, Width: 10, Height: 1},
		{Widget: c, X: 20, Y: 0, Width: 10, Height: 1},
	})
}

func TestFlexFit(t *testing.T) {
	f := NewFlex(Horizontal, stub(5, 2), stub(9, 1))
	f.SetSpacing(3)
	if w, h := f.Fit(NewContext(), 100, 10); w != 21 || h != 2 {
		t.Errorf("fit = (%d, %d), want (21, 2)", w, h)
	}

	empty := NewFlex(Horizontal)
	if w, h := empty.Fit(NewContext(), 100, 10); w != 0 || h != 0 {
		t.Errorf("empty fit = (%d, %d), want (0, 0)", w, h)
	}
	if got := empty.Layout(NewContext(), 100, 10); got != nil {
		t.Error("empty flex produced placements")
	}
}

func TestFlexLayoutVertical(t *testing.T) {
	a, b := stub(1, 1), stub(1, 1)
	f := NewFlex(Vertical, a, b)

	got := f.Layout(NewContext(), 8, 10)
	checkPlacements(t, got, []Placement{
		{Widget: a, X: 0, Y: 0, Width: 8, Height: 5},
		{Widget: b, X: 0, Y: 5, Width: 8, Height: 5},
	})
}
