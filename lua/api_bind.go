package lua

import (
	"sort"

	glua "github.com/yuin/gopher-lua"
)

// bindRegistry holds registered Lua key bindings.
type bindRegistry struct {
	binds map[string]*glua.LFunction
}

func newBindRegistry() *bindRegistry {
	return &bindRegistry{
		binds: make(map[string]*glua.LFunction),
	}
}

// registerBindFuncs registers the ledge.bind API.
func (e *Engine) registerBindFuncs() {
	// ledge.bind(key, callback) - Register a key binding
	// key is a string like "ctrl+r", "ctrl+t", "f1", etc.
	// callback receives no arguments
	e.L.SetField(e.ledgeTable, "bind", e.L.NewFunction(func(L *glua.LState) int {
		key := L.CheckString(1)
		fn := L.CheckFunction(2)
		e.binds.binds[key] = fn
		e.host.BindsChanged(e.GetBoundKeys())
		return 0
	}))

	// ledge.unbind(key) - Remove a key binding
	e.L.SetField(e.ledgeTable, "unbind", e.L.NewFunction(func(L *glua.LState) int {
		key := L.CheckString(1)
		delete(e.binds.binds, key)
		e.host.BindsChanged(e.GetBoundKeys())
		return 0
	}))
}

// HandleKeyBind checks if a key has a Lua binding and executes it.
// Returns true if the key was handled by Lua.
func (e *Engine) HandleKeyBind(key string) bool {
	fn, ok := e.binds.binds[key]
	if !ok {
		return false
	}

	// Execute the callback
	e.L.Push(fn)
	if err := e.L.PCall(0, 0, nil); err != nil {
		e.CallHook("error", "keybind: "+err.Error())
	}
	return true
}

// GetBoundKeys returns all bound key names, sorted for stable updates.
func (e *Engine) GetBoundKeys() []string {
	keys := make([]string, 0, len(e.binds.binds))
	for key := range e.binds.binds {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
