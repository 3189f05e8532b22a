package layout

import "testing"

func TestMarginLayout(t *testing.T) {
	child := stub(10, 1)
	m := NewMargin(child)
	m.SetMargins(2, 3, 1, 1)

	got := m.Layout(NewContext(), 100, 10)
	checkPlacements(t, got, []Placement{
		{Widget: child, X: 2, Y: 1, Width: 95, Height: 8},
	})
}

func TestMarginFit(t *testing.T) {
	child := stub(10, 1)
	m := NewMargin(child)
	m.SetMargins(2, 3, 1, 1)

	if w, h := m.Fit(NewContext(), 100, 10); w != 15 || h != 3 {
		t.Errorf("fit = (%d, %d), want (15, 3)", w, h)
	}

	// An empty margin still wants its insets.
	empty := NewMargin(nil)
	empty.SetMargins(2, 2, 1, 1)
	if w, h := empty.Fit(NewContext(), 100, 10); w != 4 || h != 2 {
		t.Errorf("empty fit = (%d, %d), want (4, 2)", w, h)
	}
	if got := empty.Layout(NewContext(), 100, 10); got != nil {
		t.Error("empty margin produced placements")
	}
}

func TestMarginCollapsesOversizedInsets(t *testing.T) {
	child := stub(10, 10)
	m := NewMargin(child)
	m.SetMargins(5, 0, 0, 0)

	got := m.Layout(NewContext(), 3, 3)
	checkPlacements(t, got, []Placement{
		{Widget: child, X: 5, Y: 0, Width: 0, Height: 3},
	})
}

func TestMarginMutators(t *testing.T) {
	a, b := stub(1, 1), stub(1, 1)
	m := NewMargin(a)
	count := 0
	m.OnChanged(func() { count++ })

	m.SetWidget(a)
	if count != 0 {
		t.Fatalf("no-op SetWidget emitted %d times", count)
	}
	m.SetWidget(b)
	if count != 1 || m.Widget() != b {
		t.Fatalf("SetWidget: count = %d, widget replaced = %v", count, m.Widget() == b)
	}

	m.SetMargins(1, 2, 3, 4)
	m.SetMargins(1, 2, 3, 4)
	if count != 2 {
		t.Fatalf("SetMargins emitted %d times total, want 2", count)
	}

	m.SetMargins(-1, -1, -1, -1)
	l, r, top, bottom := m.Margins()
	if l != 0 || r != 0 || top != 0 || bottom != 0 {
		t.Fatalf("negative insets = (%d, %d, %d, %d), want zeros", l, r, top, bottom)
	}

	if got := m.Children(); len(got) != 1 || got[0] != b {
		t.Fatal("Children() should hold exactly the wrapped child")
	}
	m.SetWidget(nil)
	if got := m.Children(); len(got) != 0 {
		t.Fatal("Children() of an empty margin should be empty")
	}
}
