package widget

import (
	"testing"

	"github.com/drake/ledge/layout"
)

func TestTextSetText(t *testing.T) {
	w := NewText("cpu")
	count := 0
	w.OnChanged(func() { count++ })

	w.SetText("cpu")
	if count != 0 {
		t.Fatalf("no-op SetText emitted %d times", count)
	}
	w.SetText("mem")
	if count != 1 || w.Text() != "mem" {
		t.Fatalf("SetText: count = %d, text = %q", count, w.Text())
	}
}

func TestTextFit(t *testing.T) {
	ctx := layout.NewContext()

	if w, h := NewText("héllo").Fit(ctx, 100, 1); w != 5 || h != 1 {
		t.Errorf("fit = (%d, %d), want (5, 1)", w, h)
	}

	// East Asian wide runes occupy two cells each.
	if w, _ := NewText("日本").Fit(ctx, 100, 1); w != 4 {
		t.Errorf("wide-rune fit width = %d, want 4", w)
	}
}

func TestTextMaxWidth(t *testing.T) {
	w := NewText("a long label")
	w.SetMaxWidth(4)
	if fw, _ := w.Fit(layout.NewContext(), 100, 1); fw != 4 {
		t.Errorf("capped fit width = %d, want 4", fw)
	}

	count := 0
	w.OnChanged(func() { count++ })
	w.SetMaxWidth(4)
	if count != 0 {
		t.Fatal("no-op SetMaxWidth emitted")
	}
	w.SetMaxWidth(0)
	if count != 1 {
		t.Fatalf("SetMaxWidth emitted %d times, want 1", count)
	}
	if fw, _ := w.Fit(layout.NewContext(), 100, 1); fw != 12 {
		t.Errorf("uncapped fit width = %d, want 12", fw)
	}
}
