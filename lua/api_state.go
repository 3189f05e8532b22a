package lua

import glua "github.com/yuin/gopher-lua"

// PanelState holds the current panel state for Lua access.
type PanelState struct {
	Width  int // Terminal width
	Height int // Terminal height
	Bars   int // Declared bar count
	Debug  bool
}

// registerStateFuncs creates the ledge.state table.
// This table is read-only from Lua's perspective - Go pushes updates.
func (e *Engine) registerStateFuncs() {
	stateTable := e.L.NewTable()
	e.L.SetField(e.ledgeTable, "state", stateTable)

	// Initialize with defaults
	e.L.SetField(stateTable, "width", glua.LNumber(0))
	e.L.SetField(stateTable, "height", glua.LNumber(0))
	e.L.SetField(stateTable, "bars", glua.LNumber(0))
	e.L.SetField(stateTable, "debug", glua.LFalse)
}

// UpdateState pushes new panel state to the Lua ledge.state table.
// Called by Session on resize and bar changes.
func (e *Engine) UpdateState(state PanelState) {
	if e.L == nil || e.ledgeTable == nil {
		return
	}

	stateTable := e.L.GetField(e.ledgeTable, "state")
	if stateTable == glua.LNil {
		return
	}

	t := stateTable.(*glua.LTable)
	e.L.SetField(t, "width", glua.LNumber(state.Width))
	e.L.SetField(t, "height", glua.LNumber(state.Height))
	e.L.SetField(t, "bars", glua.LNumber(state.Bars))
	e.L.SetField(t, "debug", glua.LBool(state.Debug))
}
