// Package render flattens placed widget trees into styled terminal
// rows.
//
// Containers are walked through the layout Context; leaves paint
// plain-text views into a cell grid, placement order deciding who wins
// an overlap. Each cell remembers its owning segment, so a finished
// row is emitted as a handful of lipgloss renders instead of
// per-cell escape churn.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/drake/ledge/layout"
	"github.com/drake/ledge/text"
)

// Viewer is the render half of a leaf widget: plain-text content plus
// a single style for the whole segment. Multi-line views fill rows
// from the top of the placed box.
type Viewer interface {
	View(width, height int) string
	Style() lipgloss.Style
}

// Lines renders root into height rows of width cells. Cells no widget
// painted are filled with spaces in the background style.
func Lines(ctx *layout.Context, root layout.Widget, width, height int, background lipgloss.Style) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	c := newCanvas(width, height)
	c.walk(ctx, root, 0, 0, width, height)

	rows := make([]string, height)
	for y := range rows {
		rows[y] = c.renderRow(y, background)
	}
	return rows
}

const bgOwner = -1

type cell struct {
	r     rune
	owner int
}

type canvas struct {
	w, h   int
	cells  [][]cell
	styles []lipgloss.Style
}

func newCanvas(w, h int) *canvas {
	cells := make([][]cell, h)
	for y := range cells {
		row := make([]cell, w)
		for x := range row {
			row[x] = cell{r: ' ', owner: bgOwner}
		}
		cells[y] = row
	}
	return &canvas{w: w, h: h, cells: cells}
}

func (c *canvas) walk(ctx *layout.Context, w layout.Widget, x, y, width, height int) {
	if w == nil {
		return
	}
	if ct, ok := w.(layout.Container); ok {
		for _, p := range ctx.LayoutWidget(ct, width, height) {
			c.walk(ctx, p.Widget, x+p.X, y+p.Y, p.Width, p.Height)
		}
		return
	}
	if v, ok := w.(interface{ Visible() bool }); ok && !v.Visible() {
		return
	}
	if v, ok := w.(Viewer); ok {
		c.paint(v, x, y, width, height)
	}
}

// paint claims the whole placed box for the viewer, laying its view
// over the top-left corner and blank-filling the rest.
func (c *canvas) paint(v Viewer, x, y, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	owner := len(c.styles)
	c.styles = append(c.styles, v.Style())

	lines := strings.Split(text.StripANSI(v.View(width, height)), "\n")
	for row := 0; row < height; row++ {
		content := ""
		if row < len(lines) {
			content = lines[row]
		}
		c.paintRow(owner, content, x, y+row, width)
	}
}

func (c *canvas) paintRow(owner int, content string, x, y, width int) {
	if y < 0 || y >= c.h {
		return
	}
	col := x
	limit := x + width
	if limit > c.w {
		limit = c.w
	}
	for _, r := range content {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if col+rw > limit {
			break
		}
		if col >= 0 {
			c.cells[y][col] = cell{r: r, owner: owner}
			// A wide rune's trailing cell carries no rune of its own.
			for k := 1; k < rw; k++ {
				c.cells[y][col+k] = cell{owner: owner}
			}
		}
		col += rw
	}
	for ; col < limit; col++ {
		if col >= 0 {
			c.cells[y][col] = cell{r: ' ', owner: owner}
		}
	}
}

// renderRow groups consecutive same-owner cells and renders each run
// with its segment style.
func (c *canvas) renderRow(y int, background lipgloss.Style) string {
	var b strings.Builder
	col := 0
	for col < c.w {
		owner := c.cells[y][col].owner
		var runs []rune
		for col < c.w && c.cells[y][col].owner == owner {
			if r := c.cells[y][col].r; r != 0 {
				runs = append(runs, r)
			}
			col++
		}
		seg := string(runs)
		if owner == bgOwner {
			b.WriteString(background.Render(seg))
		} else {
			// Unset properties fall back to the bar background, so an
			// uncolored widget still sits on the bar's color.
			b.WriteString(c.styles[owner].Inherit(background).Render(seg))
		}
	}
	return b.String()
}
