// layout-test is a development testbed for the bar layout engine. It
// lays out canned widget scenarios at a given size and prints the
// placement boxes next to the rendered rows.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/drake/ledge/layout"
	"github.com/drake/ledge/render"
	"github.com/drake/ledge/text"
	"github.com/drake/ledge/widget"
)

type scenario struct {
	desc  string
	build func() *layout.Align
}

var scenarios = map[string]scenario{
	"default": {
		desc: "the fallback panel: title and separator left, collapsed prompt center, clock right",
		build: func() *layout.Align {
			left := layout.NewFixed(layout.Horizontal,
				widget.NewText("ledge"),
				widget.NewSeparator(),
			)
			left.SetSpacing(1)
			return layout.NewAlign(layout.Horizontal, left, widget.NewPrompt(), fixedClock())
		},
	},
	"inside": {
		desc: "three text slots, center gets the leftover",
		build: func() *layout.Align {
			return threeSlots(layout.ExpandInside)
		},
	},
	"outside": {
		desc: "three text slots, ends get the leftover",
		build: func() *layout.Align {
			return threeSlots(layout.ExpandOutside)
		},
	},
	"none": {
		desc: "three text slots, every slot at its fitted size",
		build: func() *layout.Align {
			return threeSlots(layout.ExpandNone)
		},
	},
	"overlap": {
		desc: "outside mode with no center slot: both ends own the full box",
		build: func() *layout.Align {
			a := layout.NewAlign(layout.Horizontal,
				widget.NewText("left-side-text"), nil, widget.NewText("right-side-text"))
			a.SetExpand(layout.ExpandOutside)
			return a
		},
	},
	"meters": {
		desc: "a meter row in the center slot",
		build: func() *layout.Align {
			cpu := widget.NewMeter(10)
			cpu.SetLabel("cpu")
			cpu.SetValue(0.42)
			mem := widget.NewMeter(10)
			mem.SetLabel("mem")
			mem.SetValue(0.87)
			row := layout.NewFixed(layout.Horizontal, cpu, mem)
			row.SetSpacing(2)
			return layout.NewAlign(layout.Horizontal, widget.NewText("load"), row, fixedClock())
		},
	},
}

func threeSlots(mode layout.Expand) *layout.Align {
	a := layout.NewAlign(layout.Horizontal,
		widget.NewText("first"),
		widget.NewText("second"),
		widget.NewText("third"))
	a.SetExpand(mode)
	return a
}

// fixedClock pins the clock so runs are comparable.
func fixedClock() *widget.Clock {
	c := widget.NewClock("15:04")
	c.Tick(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	return c
}

func main() {
	name := flag.String("scenario", "default", "Scenario to lay out")
	width := flag.Int("width", 40, "Bar width in cells")
	height := flag.Int("height", 1, "Bar height in rows")
	list := flag.Bool("list", false, "List scenarios and exit")
	flag.Parse()

	if *list {
		var names []string
		for n := range scenarios {
			names = append(names, n)
		}
		sort.Strings(names)
		for _, n := range names {
			fmt.Printf("%-10s %s\n", n, scenarios[n].desc)
		}
		return
	}

	sc, ok := scenarios[*name]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown scenario %q, try -list\n", *name)
		os.Exit(1)
	}

	root := sc.build()
	ctx := layout.NewContext()

	fmt.Printf("%s: %s\n", *name, sc.desc)
	fmt.Printf("box %dx%d, expand=%s\n\n", *width, *height, root.Expand())
	dump(ctx, root, *width, *height, 0)

	fmt.Println()
	for _, row := range render.Lines(ctx, root, *width, *height, lipgloss.NewStyle()) {
		fmt.Printf("|%s|\n", text.StripANSI(row))
	}
}

// dump prints the placement tree, containers recursed with their own
// box as the origin.
func dump(ctx *layout.Context, w layout.Widget, width, height, depth int) {
	for _, p := range ctx.LayoutWidget(w, width, height) {
		fmt.Printf("%s%-24s x=%-3d y=%-3d w=%-3d h=%d\n",
			strings.Repeat("  ", depth), fmt.Sprintf("%T", p.Widget), p.X, p.Y, p.Width, p.Height)
		if _, ok := p.Widget.(layout.Container); ok {
			dump(ctx, p.Widget, p.Width, p.Height, depth+1)
		}
	}
}
