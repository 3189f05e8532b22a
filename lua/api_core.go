package lua

import glua "github.com/yuin/gopher-lua"

// registerCoreFuncs registers internal ledge._* primitives (wrapped by Lua)
func (e *Engine) registerCoreFuncs() {
	// ledge._print(text): Outputs text on the host's message surface
	e.L.SetField(e.ledgeTable, "_print", e.L.NewFunction(func(L *glua.LState) int {
		msg := L.CheckString(1)
		e.host.Print(msg)
		return 0
	}))

	// ledge._quit(): Exit the panel
	e.L.SetField(e.ledgeTable, "_quit", e.L.NewFunction(func(L *glua.LState) int {
		e.host.Quit()
		return 0
	}))

	// ledge._reload(): Tear down and re-run all scripts
	e.L.SetField(e.ledgeTable, "_reload", e.L.NewFunction(func(L *glua.LState) int {
		e.host.Reload()
		return 0
	}))

	// ledge._load(path): Run an extra Lua script through the host
	e.L.SetField(e.ledgeTable, "_load", e.L.NewFunction(func(L *glua.LState) int {
		path := L.CheckString(1)
		e.host.LoadFile(path)
		return 0
	}))
}
