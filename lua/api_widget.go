package lua

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	glua "github.com/yuin/gopher-lua"

	"github.com/drake/ledge/layout"
	"github.com/drake/ledge/widget"
)

const luaWidgetTypeName = "widget"

// widgetHandle wraps a concrete widget for Lua scripts.
type widgetHandle struct {
	w    layout.Widget
	kind string
}

// registerWidgetType registers the widget type with the Lua state.
// Call this once during engine initialization.
func registerWidgetType(L *glua.LState) {
	mt := L.NewTypeMetatable(luaWidgetTypeName)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), widgetMethods))
}

// newWidget creates a widget userdata and pushes nothing; the caller
// pushes the returned value.
func newWidget(L *glua.LState, w layout.Widget, kind string) *glua.LUserData {
	ud := L.NewUserData()
	ud.Value = &widgetHandle{w: w, kind: kind}
	L.SetMetatable(ud, L.GetTypeMetatable(luaWidgetTypeName))
	return ud
}

// checkWidget retrieves a widgetHandle from Lua userdata at the given stack position.
func checkWidget(L *glua.LState, n int) *widgetHandle {
	ud := L.CheckUserData(n)
	if h, ok := ud.Value.(*widgetHandle); ok {
		return h
	}
	L.ArgError(n, "widget expected")
	return nil
}

// ToWidget unwraps a widget userdata value. The bar API uses this to
// accept widgets in slot lists.
func ToWidget(v glua.LValue) (layout.Widget, bool) {
	ud, ok := v.(*glua.LUserData)
	if !ok {
		return nil, false
	}
	h, ok := ud.Value.(*widgetHandle)
	if !ok {
		return nil, false
	}
	return h.w, true
}

// --- Constructors ---

// registerWidgetFuncs registers the ledge.widget constructor table.
// Every constructor takes one options table and returns a widget
// userdata whose change notification is wired to the host.
func (e *Engine) registerWidgetFuncs() {
	widgetTable := e.L.NewTable()
	e.L.SetField(e.ledgeTable, "widget", widgetTable)

	// ledge.widget.text{ text=, fg=, bg=, bold=, max_width=, visible= }
	e.L.SetField(widgetTable, "text", e.L.NewFunction(func(L *glua.LState) int {
		tbl := L.OptTable(1, L.NewTable())
		w := widget.NewText(tblString(L, tbl, "text", ""))
		if st, ok := styleFromTable(L, tbl); ok {
			w.SetStyle(st)
		}
		if n := tblInt(L, tbl, "max_width", 0); n > 0 {
			w.SetMaxWidth(n)
		}
		return e.finishWidget(L, w, "text", tbl)
	}))

	// ledge.widget.clock{ format=, tz=, fg=, bg=, bold= }
	e.L.SetField(widgetTable, "clock", e.L.NewFunction(func(L *glua.LState) int {
		tbl := L.OptTable(1, L.NewTable())
		w := widget.NewClock(tblString(L, tbl, "format", ""))
		if tz := tblString(L, tbl, "tz", ""); tz != "" {
			loc, err := time.LoadLocation(tz)
			if err != nil {
				L.ArgError(1, "unknown tz "+tz)
			}
			w.SetLocation(loc)
		}
		if st, ok := styleFromTable(L, tbl); ok {
			w.SetStyle(st)
		}
		return e.finishWidget(L, w, "clock", tbl)
	}))

	// ledge.widget.meter{ cells=, label=, value=, low=, high=, fg=, bg= }
	e.L.SetField(widgetTable, "meter", e.L.NewFunction(func(L *glua.LState) int {
		tbl := L.OptTable(1, L.NewTable())
		w := widget.NewMeter(tblInt(L, tbl, "cells", 10))
		w.SetLabel(tblString(L, tbl, "label", ""))
		w.SetValue(tblFloat(L, tbl, "value", 0))
		low := tblString(L, tbl, "low", "")
		high := tblString(L, tbl, "high", "")
		if low != "" && high != "" {
			w.SetRamp(low, high)
		}
		if st, ok := styleFromTable(L, tbl); ok {
			w.SetStyle(st)
		}
		return e.finishWidget(L, w, "meter", tbl)
	}))

	// ledge.widget.spacer{ width=, height= }
	e.L.SetField(widgetTable, "spacer", e.L.NewFunction(func(L *glua.LState) int {
		tbl := L.OptTable(1, L.NewTable())
		w := widget.NewSpacer(tblInt(L, tbl, "width", 1), tblInt(L, tbl, "height", 0))
		return e.finishWidget(L, w, "spacer", tbl)
	}))

	// ledge.widget.separator{ glyph=, fg=, bg= }
	e.L.SetField(widgetTable, "separator", e.L.NewFunction(func(L *glua.LState) int {
		tbl := L.OptTable(1, L.NewTable())
		w := widget.NewSeparator()
		if g := tblString(L, tbl, "glyph", ""); g != "" {
			w.SetGlyph(g)
		}
		if st, ok := styleFromTable(L, tbl); ok {
			w.SetStyle(st)
		}
		return e.finishWidget(L, w, "separator", tbl)
	}))

	// ledge.widget.prompt{ marker=, fg=, bg= }
	e.L.SetField(widgetTable, "prompt", e.L.NewFunction(func(L *glua.LState) int {
		tbl := L.OptTable(1, L.NewTable())
		w := widget.NewPrompt()
		if m := tblString(L, tbl, "marker", ""); m != "" {
			w.SetMarker(m)
		}
		if st, ok := styleFromTable(L, tbl); ok {
			w.SetStyle(st)
		}
		return e.finishWidget(L, w, "prompt", tbl)
	}))
}

// finishWidget applies shared options, wires change notification, and
// pushes the userdata. Wiring comes last so construction-time setters
// do not wake the host.
func (e *Engine) finishWidget(L *glua.LState, w layout.Widget, kind string, tbl *glua.LTable) int {
	if v, ok := w.(interface{ SetVisible(bool) }); ok {
		if !tblBool(L, tbl, "visible", true) {
			v.SetVisible(false)
		}
	}
	if n, ok := w.(interface{ OnChanged(func()) }); ok {
		n.OnChanged(e.notifyLayout)
	}
	L.Push(newWidget(L, w, kind))
	return 1
}

// --- Methods ---

// widgetMethods defines the methods available on widget objects in Lua.
// Methods that only make sense for one kind raise an argument error on
// the others.
var widgetMethods = map[string]glua.LGFunction{
	"kind":          widgetKind,
	"set_text":      widgetSetText,
	"text":          widgetText,
	"set_format":    widgetSetFormat,
	"set_value":     widgetSetValue,
	"value":         widgetValue,
	"set_label":     widgetSetLabel,
	"set_ramp":      widgetSetRamp,
	"set_glyph":     widgetSetGlyph,
	"set_marker":    widgetSetMarker,
	"set_max_width": widgetSetMaxWidth,
	"set_style":     widgetSetStyle,
	"set_visible":   widgetSetVisible,
	"visible":       widgetVisible,
	"show":          widgetShow,
	"hide":          widgetHide,
	"refresh":       widgetRefresh,
}

// widgetKind returns the constructor name.
// Usage: w:kind()
func widgetKind(L *glua.LState) int {
	h := checkWidget(L, 1)
	L.Push(glua.LString(h.kind))
	return 1
}

func checkText(L *glua.LState, h *widgetHandle) *widget.Text {
	t, ok := h.w.(*widget.Text)
	if !ok {
		L.ArgError(1, "text widget expected, got "+h.kind)
	}
	return t
}

// widgetSetText replaces a text widget's content.
// Usage: w:set_text("cpu 42%")
func widgetSetText(L *glua.LState) int {
	h := checkWidget(L, 1)
	s := L.CheckString(2)
	checkText(L, h).SetText(s)
	return 0
}

// widgetText returns a text widget's content.
// Usage: w:text()
func widgetText(L *glua.LState) int {
	h := checkWidget(L, 1)
	L.Push(glua.LString(checkText(L, h).Text()))
	return 1
}

// widgetSetMaxWidth caps a text widget's fitted width; 0 removes the cap.
// Usage: w:set_max_width(20)
func widgetSetMaxWidth(L *glua.LState) int {
	h := checkWidget(L, 1)
	n := int(L.CheckNumber(2))
	checkText(L, h).SetMaxWidth(n)
	return 0
}

// widgetSetFormat replaces a clock widget's time layout string.
// Usage: w:set_format("15:04:05")
func widgetSetFormat(L *glua.LState) int {
	h := checkWidget(L, 1)
	s := L.CheckString(2)
	c, ok := h.w.(*widget.Clock)
	if !ok {
		L.ArgError(1, "clock widget expected, got "+h.kind)
	}
	c.SetFormat(s)
	return 0
}

func checkMeter(L *glua.LState, h *widgetHandle) *widget.Meter {
	m, ok := h.w.(*widget.Meter)
	if !ok {
		L.ArgError(1, "meter widget expected, got "+h.kind)
	}
	return m
}

// widgetSetValue moves a meter widget's gauge; values clamp into [0, 1].
// Usage: w:set_value(0.4)
func widgetSetValue(L *glua.LState) int {
	h := checkWidget(L, 1)
	v := float64(L.CheckNumber(2))
	checkMeter(L, h).SetValue(v)
	return 0
}

// widgetValue returns a meter widget's current fill fraction.
// Usage: w:value()
func widgetValue(L *glua.LState) int {
	h := checkWidget(L, 1)
	L.Push(glua.LNumber(checkMeter(L, h).Value()))
	return 1
}

// widgetSetLabel replaces a meter widget's label.
// Usage: w:set_label("cpu")
func widgetSetLabel(L *glua.LState) int {
	h := checkWidget(L, 1)
	s := L.CheckString(2)
	checkMeter(L, h).SetLabel(s)
	return 0
}

// widgetSetRamp replaces a meter widget's color endpoints.
// Usage: w:set_ramp("#0000d7", "#d70000")
func widgetSetRamp(L *glua.LState) int {
	h := checkWidget(L, 1)
	low := L.CheckString(2)
	high := L.CheckString(3)
	checkMeter(L, h).SetRamp(low, high)
	return 0
}

// widgetSetGlyph replaces a separator widget's divider glyph.
// Usage: w:set_glyph("┃")
func widgetSetGlyph(L *glua.LState) int {
	h := checkWidget(L, 1)
	s := L.CheckString(2)
	sep, ok := h.w.(*widget.Separator)
	if !ok {
		L.ArgError(1, "separator widget expected, got "+h.kind)
	}
	sep.SetGlyph(s)
	return 0
}

// widgetSetMarker replaces a prompt widget's leading marker.
// Usage: w:set_marker(">")
func widgetSetMarker(L *glua.LState) int {
	h := checkWidget(L, 1)
	s := L.CheckString(2)
	p, ok := h.w.(*widget.Prompt)
	if !ok {
		L.ArgError(1, "prompt widget expected, got "+h.kind)
	}
	p.SetMarker(s)
	return 0
}

// widgetSetStyle rebuilds the widget's style from { fg=, bg=, bold= }.
// Usage: w:set_style{ fg = "#ffaf00", bold = true }
func widgetSetStyle(L *glua.LState) int {
	h := checkWidget(L, 1)
	tbl := L.CheckTable(2)
	s, ok := h.w.(interface{ SetStyle(lipgloss.Style) })
	if !ok {
		L.ArgError(1, h.kind+" widget has no style")
	}
	st, _ := styleFromTable(L, tbl)
	s.SetStyle(st)
	return 0
}

// widgetSetVisible shows or hides the widget; hidden widgets collapse
// out of the layout.
// Usage: w:set_visible(false)
func widgetSetVisible(L *glua.LState) int {
	h := checkWidget(L, 1)
	v := L.CheckBool(2)
	setVisible(L, h, v)
	return 0
}

// widgetVisible reports whether the widget is visible.
// Usage: w:visible()
func widgetVisible(L *glua.LState) int {
	h := checkWidget(L, 1)
	vis, ok := h.w.(interface{ Visible() bool })
	if !ok {
		L.ArgError(1, h.kind+" widget has no visibility")
	}
	L.Push(glua.LBool(vis.Visible()))
	return 1
}

// widgetShow makes the widget visible.
// Usage: w:show()
func widgetShow(L *glua.LState) int {
	h := checkWidget(L, 1)
	setVisible(L, h, true)
	return 0
}

// widgetHide hides the widget.
// Usage: w:hide()
func widgetHide(L *glua.LState) int {
	h := checkWidget(L, 1)
	setVisible(L, h, false)
	return 0
}

// widgetRefresh forces a change notification without mutating anything,
// for scripts that tweak state the setters cannot see.
// Usage: w:refresh()
func widgetRefresh(L *glua.LState) int {
	h := checkWidget(L, 1)
	if n, ok := h.w.(interface{ EmitChanged() }); ok {
		n.EmitChanged()
	}
	return 0
}

func setVisible(L *glua.LState, h *widgetHandle, v bool) {
	s, ok := h.w.(interface{ SetVisible(bool) })
	if !ok {
		L.ArgError(1, h.kind+" widget has no visibility")
	}
	s.SetVisible(v)
}

// --- Option helpers ---

func tblString(L *glua.LState, tbl *glua.LTable, key, def string) string {
	if s, ok := L.GetField(tbl, key).(glua.LString); ok {
		return string(s)
	}
	return def
}

func tblInt(L *glua.LState, tbl *glua.LTable, key string, def int) int {
	if n, ok := L.GetField(tbl, key).(glua.LNumber); ok {
		return int(n)
	}
	return def
}

func tblFloat(L *glua.LState, tbl *glua.LTable, key string, def float64) float64 {
	if n, ok := L.GetField(tbl, key).(glua.LNumber); ok {
		return float64(n)
	}
	return def
}

func tblBool(L *glua.LState, tbl *glua.LTable, key string, def bool) bool {
	if b, ok := L.GetField(tbl, key).(glua.LBool); ok {
		return bool(b)
	}
	return def
}

// styleFromTable builds a lipgloss style from fg/bg/bold options.
// Reports whether any option was present.
func styleFromTable(L *glua.LState, tbl *glua.LTable) (lipgloss.Style, bool) {
	st := lipgloss.NewStyle()
	set := false
	if fg := tblString(L, tbl, "fg", ""); fg != "" {
		st = st.Foreground(lipgloss.Color(fg))
		set = true
	}
	if bg := tblString(L, tbl, "bg", ""); bg != "" {
		st = st.Background(lipgloss.Color(bg))
		set = true
	}
	if tblBool(L, tbl, "bold", false) {
		st = st.Bold(true)
		set = true
	}
	return st, set
}
