package lua

import (
	glua "github.com/yuin/gopher-lua"

	"github.com/drake/ledge/layout"
)

// registerBarFuncs registers the ledge.bar API.
func (e *Engine) registerBarFuncs() {
	// ledge.bar{ name=, edge=, height=, expand=, spacing=,
	//            left={...}, center={...}, right={...}, fg=, bg= }
	// Declares or replaces a bar. Slot values are single widgets or
	// widget lists; declaring an existing name rebuilds that bar.
	e.L.SetField(e.ledgeTable, "bar", e.L.NewFunction(func(L *glua.LState) int {
		tbl := L.CheckTable(1)

		name := tblString(L, tbl, "name", "")
		if name == "" {
			L.ArgError(1, "bar needs a name")
		}
		edge := tblString(L, tbl, "edge", "top")
		if edge != "top" && edge != "bottom" {
			L.ArgError(1, `edge must be "top" or "bottom"`)
		}
		height := tblInt(L, tbl, "height", 1)
		if height < 1 {
			height = 1
		}

		e.host.DeclareBar(BarDef{
			Name:    name,
			Edge:    edge,
			Height:  height,
			Expand:  tblString(L, tbl, "expand", ""),
			Spacing: tblInt(L, tbl, "spacing", 1),
			Left:    slotWidgets(L, L.GetField(tbl, "left")),
			Center:  slotWidgets(L, L.GetField(tbl, "center")),
			Right:   slotWidgets(L, L.GetField(tbl, "right")),
			Fg:      tblString(L, tbl, "fg", ""),
			Bg:      tblString(L, tbl, "bg", ""),
		})
		return 0
	}))

	// ledge.remove_bar(name): Drop a declared bar
	e.L.SetField(e.ledgeTable, "remove_bar", e.L.NewFunction(func(L *glua.LState) int {
		name := L.CheckString(1)
		e.host.RemoveBar(name)
		return 0
	}))
}

// slotWidgets reads a slot value: nil, a single widget, or an array of
// widgets. Non-widget entries are skipped.
func slotWidgets(L *glua.LState, v glua.LValue) []layout.Widget {
	if v == glua.LNil {
		return nil
	}
	if w, ok := ToWidget(v); ok {
		return []layout.Widget{w}
	}
	tbl, ok := v.(*glua.LTable)
	if !ok {
		return nil
	}
	var out []layout.Widget
	tbl.ForEach(func(_, item glua.LValue) {
		if w, ok := ToWidget(item); ok {
			out = append(out, w)
		}
	})
	return out
}
