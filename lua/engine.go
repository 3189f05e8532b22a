package lua

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	glua "github.com/yuin/gopher-lua"
)

// Engine wraps gopher-lua and manages the VM lifecycle.
// It is a pure mechanism: it knows how to run Lua code and expose APIs.
// It does NOT know about core scripts, config dirs, or boot sequences.
type Engine struct {
	L          *glua.LState
	regexCache *lru.Cache[string, *regexp.Regexp]

	// Cached table reference
	ledgeTable *glua.LTable

	// Host interface for communication with the rest of the system
	host Host

	// Timer callbacks - Engine owns callbacks, Timer service owns IDs and scheduling
	callbacks map[int]*glua.LFunction

	// Key bindings registered by scripts
	binds *bindRegistry
}

// NewEngine creates an Engine with the given Host.
func NewEngine(host Host) *Engine {
	cache, _ := lru.New[string, *regexp.Regexp](100)
	return &Engine{
		regexCache: cache,
		host:       host,
		callbacks:  make(map[int]*glua.LFunction),
		binds:      newBindRegistry(),
	}
}

// --- Lifecycle ---

// Init initializes (or re-initializes) the Lua VM with fresh state.
// It registers the API but does NOT load any scripts - that's the caller's job.
func (e *Engine) Init() error {
	// Close old Lua state if it exists
	if e.L != nil {
		e.L.Close()
	}

	// Create fresh Lua state
	e.L = glua.NewState()

	// Reset regex cache
	cache, _ := lru.New[string, *regexp.Regexp](100)
	e.regexCache = cache

	// Cancel all pending timers and clear callback map
	e.host.TimerCancelAll()
	e.callbacks = make(map[int]*glua.LFunction)

	// Drop key bindings from the previous state
	e.binds = newBindRegistry()

	// Register custom types
	registerWidgetType(e.L)

	// Register API functions
	e.registerAPIs()

	return nil
}

// Close cleans up the Lua state.
func (e *Engine) Close() {
	e.host.TimerCancelAll()
	e.callbacks = nil
	if e.L != nil {
		e.L.Close()
		e.L = nil
	}
}

// OnTimer handles wake-up calls from Session.
// This is the single entry point for all timer callback execution.
func (e *Engine) OnTimer(id int, repeating bool) {
	if e.L == nil {
		return
	}

	fn, ok := e.callbacks[id]
	if !ok {
		return // Cancelled, or belonged to previous Engine instance
	}

	// Execute callback with protected call
	e.L.Push(fn)
	if err := e.L.PCall(0, 0, nil); err != nil {
		e.CallHook("error", "timer: "+err.Error())
	}

	// Clean up one-shot timer callbacks
	if !repeating {
		delete(e.callbacks, id)
	}
}

// --- Execution Primitives (Mechanism) ---

// DoString executes a raw string of Lua code.
// The name parameter is used for stack traces.
func (e *Engine) DoString(name, code string) error {
	fn, err := e.L.Load(strings.NewReader(code), name)
	if err != nil {
		return err
	}
	e.L.Push(fn)
	return e.L.PCall(0, 0, nil)
}

// DoFile executes a Lua file from the filesystem.
// It temporarily adjusts package.path to allow local requires.
func (e *Engine) DoFile(path string) error {
	path = expandTilde(path)

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(absPath)

	// Temporarily prepend script's directory to package.path
	pkg := e.L.GetGlobal("package").(*glua.LTable)
	oldPath := e.L.GetField(pkg, "path").String()
	newPath := dir + "/?.lua;" + oldPath
	e.L.SetField(pkg, "path", glua.LString(newPath))

	err = e.L.DoFile(absPath)

	// Restore original path
	e.L.SetField(pkg, "path", glua.LString(oldPath))

	return err
}

// CallHook calls a hook event with string arguments.
func (e *Engine) CallHook(event string, args ...string) {
	fn := e.getHooksCall()
	if fn == glua.LNil {
		return // Hooks arrive with the embedded scripts; nothing to call before they load
	}

	luaArgs := make([]glua.LValue, len(args)+1)
	luaArgs[0] = glua.LString(event)
	for i, arg := range args {
		luaArgs[i+1] = glua.LString(arg)
	}

	e.L.CallByParam(glua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, luaArgs...)
}

// --- API Registration ---

func (e *Engine) registerAPIs() {
	e.ledgeTable = e.L.NewTable()
	e.L.SetGlobal("ledge", e.ledgeTable)

	e.registerCoreFuncs()
	e.registerTimerFuncs()
	e.registerRegexFuncs()
	e.registerStateFuncs()
	e.registerWidgetFuncs()
	e.registerBarFuncs()
	e.registerBindFuncs()
}

// getHooksCall returns the ledge.hooks.call function, or LNil when the
// hook script has not been loaded yet.
func (e *Engine) getHooksCall() glua.LValue {
	hooks, ok := e.L.GetField(e.ledgeTable, "hooks").(*glua.LTable)
	if !ok {
		return glua.LNil
	}
	return e.L.GetField(hooks, "call")
}

// notifyLayout is the change handler wired onto every script-built
// widget.
func (e *Engine) notifyLayout() {
	e.host.LayoutChanged()
}

// Stats reports engine internals for the debug monitor. Call from the
// goroutine that owns the engine.
type Stats struct {
	StackSize      int
	TimerCallbacks int
	RegexCacheSize int
	BoundKeys      int
}

func (e *Engine) Stats() Stats {
	s := Stats{
		TimerCallbacks: len(e.callbacks),
		RegexCacheSize: e.regexCache.Len(),
		BoundKeys:      len(e.binds.binds),
	}
	if e.L != nil {
		s.StackSize = e.L.GetTop()
	}
	return s
}

// --- Private Helpers ---

// expandTilde expands ~ to home directory.
func expandTilde(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
