// Package panel orchestrates the session: it owns the Lua engine, the
// live bar trees, and the timer service, and drives the terminal shell
// with rendered rows. All widget and engine state is confined to the
// session goroutine; other goroutines talk to it through channels.
package panel

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/ledge/ctl"
	"github.com/drake/ledge/internal/buffer"
	"github.com/drake/ledge/layout"
	"github.com/drake/ledge/lua"
	"github.com/drake/ledge/render"
	"github.com/drake/ledge/style"
	"github.com/drake/ledge/timer"
	"github.com/drake/ledge/ui"
	"github.com/drake/ledge/widget"
)

// Ensure Session implements lua.Host at compile time
var _ lua.Host = (*Session)(nil)

// UI is the terminal surface the session drives. *ui.BubbleTeaUI
// satisfies it; tests substitute a recorder.
type UI interface {
	Run() error
	Send(msg tea.Msg)
	Events() <-chan ui.Event
	Quit()
}

// Config holds session configuration
type Config struct {
	CoreScripts embed.FS // Embedded core Lua scripts
	DefaultInit string   // Fallback bar declaration when no init.lua exists
	ConfigDir   string   // Path to ~/.config/ledge
	SocketPath  string   // Control socket path, "" disables the socket
	UserScripts []string // CLI script arguments
	Debug       bool
}

// EventType discriminates work queued to the session goroutine.
type EventType int

const (
	// EventAsync runs Callback on the session goroutine. Used for work
	// that must not run inside a Lua call, like rebooting the VM.
	EventAsync EventType = iota
	// EventControlLine executes Payload as Lua and answers Reply.
	EventControlLine
)

// Event is a unit of work for the session loop.
type Event struct {
	Type     EventType
	Payload  string
	Callback func()
	Reply    func(error)
}

// Session orchestrates the panel components.
type Session struct {
	// Components
	ui     UI
	engine *lua.Engine
	timer  *timer.Service
	ctl    *ctl.Server
	ctx    *layout.Context
	styles style.Styles

	// Event queue. The elastic buffer means enqueuing never blocks,
	// which matters because Reload enqueues from the session goroutine
	// itself.
	eventsIn    chan<- Event
	events      <-chan Event
	timerEvents chan timer.Event

	// Live bars, session-goroutine only
	bars       []*Bar
	generation uint64
	clockTimer int
	prompt     *widget.Prompt
	history    *history

	width  int
	height int
	dirty  bool

	// Counters for the debug monitor
	eventsProcessed uint64
	renders         uint64
	statsMu         sync.Mutex
	lastStats       Stats

	// Config (retained for reload)
	config Config

	// Shutdown coordination
	done      chan struct{}
	closeOnce sync.Once
}

// New creates a new Session. Apart from the event queue's pump
// goroutine it is passive until Run.
func New(u UI, cfg Config) *Session {
	timerEvents := make(chan timer.Event, 1024)
	eventsIn, events := buffer.Unbounded[Event](64, 10000)

	s := &Session{
		ui:          u,
		timer:       timer.NewService(timerEvents),
		timerEvents: timerEvents,
		eventsIn:    eventsIn,
		events:      events,
		ctx:         layout.NewContext(),
		styles:      style.DefaultStyles(),
		config:      cfg,
		history:     newHistory(200),
		done:        make(chan struct{}),
	}

	s.engine = lua.NewEngine(s)

	return s
}

// Run starts the session and blocks until exit.
func (s *Session) Run() error {
	defer s.engine.Close()

	// Boot the system
	if err := s.boot(); err != nil {
		s.Print(fmt.Sprintf("boot error: %v", err))
	}

	// Open the control socket
	if s.config.SocketPath != "" {
		srv := ctl.NewServer(s.config.SocketPath, s)
		if err := srv.Start(); err != nil {
			s.Print(fmt.Sprintf("control socket: %v", err))
		} else {
			s.ctl = srv
			defer srv.Close()
		}
	}

	// Start event loop
	go s.processEvents()

	// Block on UI
	err := s.ui.Run()
	// Ensure shutdown of goroutines/resources when UI exits
	s.shutdown()
	return err
}

// processEvents is the main event loop. After each wake-up it drains
// whatever else is queued, then re-renders once if anything dirtied
// the panel. Bursts of widget changes collapse into a single render.
func (s *Session) processEvents() {
	for {
		select {
		case <-s.done:
			return
		case ev := <-s.events:
			s.handleEvent(ev)
		case msg := <-s.ui.Events():
			s.handleUIMsg(msg)
		case evt := <-s.timerEvents:
			s.handleTimer(evt)
		}
		s.drain()
		if s.dirty {
			s.renderBars()
		}
		s.snapshotStats()
	}
}

// drain consumes queued work without blocking.
func (s *Session) drain() {
	for {
		select {
		case ev := <-s.events:
			s.handleEvent(ev)
		case msg := <-s.ui.Events():
			s.handleUIMsg(msg)
		case evt := <-s.timerEvents:
			s.handleTimer(evt)
		default:
			return
		}
	}
}

// handleEvent executes a single queued event on the session loop.
func (s *Session) handleEvent(ev Event) {
	s.eventsProcessed++
	switch ev.Type {
	case EventAsync:
		if ev.Callback != nil {
			ev.Callback()
		}

	case EventControlLine:
		err := s.engine.DoString("control", ev.Payload)
		if err != nil {
			s.engine.CallHook("error", "control: "+err.Error())
		}
		if ev.Reply != nil {
			ev.Reply(err)
		}
	}
}

// handleUIMsg reacts to a message from the shell.
func (s *Session) handleUIMsg(msg ui.Event) {
	s.eventsProcessed++
	switch msg := msg.(type) {
	case ui.WindowSizeChangedMsg:
		if msg.Width == s.width && msg.Height == s.height {
			return
		}
		s.width, s.height = msg.Width, msg.Height
		s.pushState()
		s.dirty = true

	case ui.ExecuteBindMsg:
		s.engine.HandleKeyBind(string(msg))

	case ui.PromptOpenMsg:
		s.openPrompt()

	case ui.PromptKeyMsg:
		s.promptKey(msg.Key)
	}
}

// handleTimer routes a timer wake-up: the reserved clock timer ticks
// the clock widgets, everything else belongs to scripted callbacks.
func (s *Session) handleTimer(evt timer.Event) {
	s.eventsProcessed++
	if evt.ID == s.clockTimer {
		s.tickClocks(time.Now())
		return
	}
	s.engine.OnTimer(evt.ID, evt.Repeating)
}

// tickClocks advances every clock widget. A clock whose rendered text
// did not change stays silent, so a minute-format clock dirties the
// panel once a minute.
func (s *Session) tickClocks(now time.Time) {
	for _, b := range s.bars {
		forEachWidget(b.root, func(w layout.Widget) {
			if c, ok := w.(*widget.Clock); ok {
				c.Tick(now)
			}
		})
	}
}

// boot loads the VM state.
func (s *Session) boot() error {
	if err := s.engine.Init(); err != nil {
		return err
	}

	s.generation++
	s.dropPrompt()

	// Set config directory
	setupCode := fmt.Sprintf("ledge.config_dir = [[%s]]", s.config.ConfigDir)
	if err := s.engine.DoString("boot_config", setupCode); err != nil {
		return err
	}

	// Load Core Scripts
	entries, err := fs.ReadDir(s.config.CoreScripts, "core")
	if err != nil {
		return fmt.Errorf("reading core scripts: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := s.config.CoreScripts.ReadFile("core/" + file)
		if err != nil {
			return fmt.Errorf("core/%s: %w", file, err)
		}
		if err := s.engine.DoString(file, string(content)); err != nil {
			return fmt.Errorf("core/%s: %w", file, err)
		}
	}

	// Load user init.lua, or fall back to the embedded default panel
	initPath := filepath.Join(s.config.ConfigDir, "init.lua")
	if _, err := os.Stat(initPath); err == nil {
		if err := s.engine.DoFile(initPath); err != nil {
			return fmt.Errorf("init.lua: %w", err)
		}
	} else if s.config.DefaultInit != "" {
		if err := s.engine.DoString("default_init", s.config.DefaultInit); err != nil {
			return fmt.Errorf("default init: %w", err)
		}
	}

	// Load CLI scripts
	for _, path := range s.config.UserScripts {
		if err := s.engine.DoFile(path); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	// Bars the rebooted config did not redeclare are gone
	s.sweepBars()

	// Engine.Init cancelled every timer, including the clock tick
	s.clockTimer = s.timer.EveryAligned(time.Second)

	s.pushState()
	s.BindsChanged(s.engine.GetBoundKeys())
	s.engine.CallHook("startup")
	s.dirty = true
	return nil
}

// sweepBars drops bars whose declaration did not survive the last
// boot.
func (s *Session) sweepBars() {
	kept := s.bars[:0]
	for _, b := range s.bars {
		if b.gen == s.generation {
			kept = append(kept, b)
		} else {
			s.dirty = true
		}
	}
	s.bars = kept
}

// renderBars lays out and paints every bar, then pushes the rows to
// the shell, top-edge bars in declaration order before bottom-edge.
func (s *Session) renderBars() {
	s.dirty = false
	if s.width <= 0 {
		return
	}
	s.renders++

	var top, bottom []string
	for _, b := range s.bars {
		rows := render.Lines(s.ctx, b.root, s.width, b.height, b.style)
		if b.edge == "bottom" {
			bottom = append(bottom, rows...)
		} else {
			top = append(top, rows...)
		}
	}
	s.ui.Send(ui.SetBarsMsg{Top: top, Bottom: bottom})
}

// findBar returns the live bar with the given name, or nil.
func (s *Session) findBar(name string) *Bar {
	for _, b := range s.bars {
		if b.name == name {
			return b
		}
	}
	return nil
}

// --- Prompt routing ---

// openPrompt activates the first visible prompt widget and switches
// the shell into prompt mode.
func (s *Session) openPrompt() {
	p := s.findPrompt()
	if p == nil {
		s.Print("no prompt widget in any bar")
		return
	}
	s.prompt = p
	s.history.reset()
	p.Activate()
	s.ui.Send(ui.PromptStateMsg{Active: true})
}

// promptKey feeds one key to the active prompt. Enter submits the
// line to the Lua VM, Esc abandons it, Up and Down walk the history,
// everything else edits.
func (s *Session) promptKey(k tea.KeyMsg) {
	p := s.prompt
	if p == nil || !p.Active() {
		s.ui.Send(ui.PromptStateMsg{Active: false})
		return
	}

	switch k.Type {
	case tea.KeyEnter:
		line := strings.TrimSpace(p.Value())
		s.dropPrompt()
		if line == "" {
			return
		}
		s.history.add(line)
		if err := s.engine.DoString("prompt", line); err != nil {
			s.engine.CallHook("error", "prompt: "+err.Error())
		}

	case tea.KeyEsc:
		s.dropPrompt()

	case tea.KeyUp:
		if line, ok := s.history.prev(); ok {
			p.SetValue(line)
		}

	case tea.KeyDown:
		if line, ok := s.history.next(); ok {
			p.SetValue(line)
		}

	default:
		p.Update(k)
	}
}

// dropPrompt deactivates any active prompt and returns the shell to
// normal key handling.
func (s *Session) dropPrompt() {
	if s.prompt != nil {
		s.prompt.Deactivate()
		s.prompt = nil
	}
	s.ui.Send(ui.PromptStateMsg{Active: false})
}

// findPrompt returns the first visible prompt widget in bar
// declaration order.
func (s *Session) findPrompt() *widget.Prompt {
	var found *widget.Prompt
	for _, b := range s.bars {
		forEachWidget(b.root, func(w layout.Widget) {
			if found != nil {
				return
			}
			if p, ok := w.(*widget.Prompt); ok && p.Visible() {
				found = p
			}
		})
		if found != nil {
			break
		}
	}
	return found
}

// ExecuteControl queues one control-socket chunk for execution on the
// session goroutine. reply receives the execution result.
func (s *Session) ExecuteControl(code string, reply func(error)) {
	ev := Event{Type: EventControlLine, Payload: code, Reply: reply}
	select {
	case <-s.done:
		if reply != nil {
			reply(errors.New("session closed"))
		}
	case s.eventsIn <- ev:
	}
}

// loadScript loads a Lua script file and notifies hooks. Runs on the session goroutine.
func (s *Session) loadScript(path string) {
	if path == "" {
		s.engine.CallHook("error", "load: empty path")
		return
	}

	if err := s.engine.DoFile(path); err != nil {
		s.engine.CallHook("error", fmt.Sprintf("load %s: %v", path, err))
		return
	}

	s.engine.CallHook("loaded", path)
}

// shutdown attempts a coordinated shutdown of goroutines, timers, and UI.
func (s *Session) shutdown() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.timer.CancelAll()
		s.ui.Quit()
	})
}

// pushState mirrors panel geometry into ledge.state.
func (s *Session) pushState() {
	s.engine.UpdateState(lua.PanelState{
		Width:  s.width,
		Height: s.height,
		Bars:   len(s.bars),
		Debug:  s.config.Debug,
	})
}

// --- Host Implementation ---

func (s *Session) Print(text string) {
	s.ui.Send(ui.StatusTextMsg(text))
}

func (s *Session) Quit() { s.shutdown() }

// Reload fires the reload hook on the old VM, then reboots on the
// session loop. Boot closes the Lua state, so it must never run inside
// the Lua call that requested it.
func (s *Session) Reload() {
	s.engine.CallHook("reload")
	s.eventsIn <- Event{Type: EventAsync, Callback: func() {
		if err := s.boot(); err != nil {
			s.Print(fmt.Sprintf("reload failed: %v", err))
		}
	}}
}

// LoadFile enqueues a request to load a Lua script on the session loop.
func (s *Session) LoadFile(path string) {
	s.eventsIn <- Event{Type: EventAsync, Callback: func() {
		s.loadScript(path)
	}}
}

// DeclareBar creates or updates the named bar. An unchanged
// declaration leaves every widget in place and triggers nothing.
func (s *Session) DeclareBar(def lua.BarDef) {
	b := s.findBar(def.Name)
	if b == nil {
		b = &Bar{
			name:  def.Name,
			style: s.styles.Bar,
			root:  layout.NewAlign(layout.Horizontal, nil, nil, nil),
		}
		b.root.OnChanged(s.markDirty)
		s.bars = append(s.bars, b)
		s.dirty = true
	}
	if b.apply(def, s.styles, s.generation) {
		s.dirty = true
	}
	s.pushState()
}

// RemoveBar drops the named bar; unknown names are ignored.
func (s *Session) RemoveBar(name string) {
	for i, b := range s.bars {
		if b.name == name {
			s.bars = append(s.bars[:i], s.bars[i+1:]...)
			s.dirty = true
			s.pushState()
			return
		}
	}
}

// LayoutChanged marks the panel for re-render. Called synchronously
// from widget mutators on the session goroutine; the event loop
// coalesces any burst into one render.
func (s *Session) LayoutChanged() {
	s.dirty = true
}

// BindsChanged pushes the bound-key set to the shell.
func (s *Session) BindsChanged(keys []string) {
	m := make(map[string]bool, len(keys))
	for _, k := range keys {
		m[k] = true
	}
	s.ui.Send(ui.UpdateBindsMsg(m))
}

func (s *Session) markDirty() { s.dirty = true }

// TimerAfter schedules a one-shot timer. Returns the timer ID.
func (s *Session) TimerAfter(d time.Duration) int {
	return s.timer.After(d)
}

// TimerEvery schedules a repeating timer. Returns the timer ID.
func (s *Session) TimerEvery(d time.Duration) int {
	return s.timer.Every(d)
}

// TimerCancel cancels a timer by ID.
func (s *Session) TimerCancel(id int) {
	s.timer.Cancel(id)
}

// TimerCancelAll cancels all timers.
func (s *Session) TimerCancelAll() {
	s.timer.CancelAll()
}

// --- Debug Stats ---

// Stats is a point-in-time snapshot of session internals for the
// debug monitor.
type Stats struct {
	EventsProcessed uint64
	Renders         uint64
	EventQueueLen   int
	EventQueueCap   int
	TimerQueueLen   int
	TimerQueueCap   int
	Goroutines      int

	Width  int
	Height int
	Bars   int

	FitHits    uint64
	FitMisses  uint64
	FitEntries int

	ActiveTimers int
	Lua          lua.Stats
	Ctl          ctl.Stats
}

// snapshotStats captures internals on the session goroutine so the
// monitor can read them from outside without racing the engine.
func (s *Session) snapshotStats() {
	hits, misses, entries := s.ctx.Metrics()
	st := Stats{
		EventsProcessed: s.eventsProcessed,
		Renders:         s.renders,
		EventQueueLen:   len(s.events),
		EventQueueCap:   cap(s.events),
		TimerQueueLen:   len(s.timerEvents),
		TimerQueueCap:   cap(s.timerEvents),
		Goroutines:      runtime.NumGoroutine(),
		Width:           s.width,
		Height:          s.height,
		Bars:            len(s.bars),
		FitHits:         hits,
		FitMisses:       misses,
		FitEntries:      entries,
		ActiveTimers:    s.timer.Active(),
		Lua:             s.engine.Stats(),
	}
	if s.ctl != nil {
		st.Ctl = s.ctl.Stats()
	}

	s.statsMu.Lock()
	s.lastStats = st
	s.statsMu.Unlock()
}

// Stats returns the most recent snapshot. Safe to call from any
// goroutine.
func (s *Session) Stats() Stats {
	s.statsMu.Lock()
	defer s.statsMu.Unlock()
	return s.lastStats
}
