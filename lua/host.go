package lua

import (
	"time"

	"github.com/drake/ledge/layout"
)

// BarDef is a bar declaration produced by ledge.bar{}. Pure data plus
// already-constructed widgets; the session turns it into a live bar
// tree (decoupling lua from panel).
type BarDef struct {
	Name    string
	Edge    string // "top" or "bottom"
	Height  int    // rows, at least 1
	Expand  string // align mode name, "" means inside
	Spacing int    // cells between widgets within a slot

	Left   []layout.Widget
	Center []layout.Widget
	Right  []layout.Widget

	Fg string // optional hex/ANSI color override for the bar
	Bg string
}

// Host provides the bridge between Engine and the rest of the system.
// This abstraction decouples Engine from specific implementations,
// making it testable without full infrastructure.
type Host interface {
	// IO
	Print(text string)

	// System / Lifecycle
	Quit()
	Reload()
	LoadFile(path string)

	// Bars
	DeclareBar(def BarDef)
	RemoveBar(name string)

	// LayoutChanged notifies the host that some widget changed in a
	// way that affects geometry or content. Called synchronously from
	// widget mutation; the host coalesces bursts into one re-render.
	LayoutChanged()

	// BindsChanged hands the host the full bound-key set whenever a
	// binding is added or removed, so it can push the list to the UI.
	BindsChanged(keys []string)

	// Timers - Timer service owns IDs, scheduling, and cancellation
	TimerAfter(d time.Duration) int
	TimerEvery(d time.Duration) int
	TimerCancel(id int)
	TimerCancelAll()
}
