package panel

import (
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/ledge/layout"
	"github.com/drake/ledge/lua"
	"github.com/drake/ledge/scripts"
	"github.com/drake/ledge/text"
	"github.com/drake/ledge/ui"
	"github.com/drake/ledge/widget"
)

// mockUI records everything the session pushes and lets tests feed
// events back through the outbound channel.
type mockUI struct {
	mu     sync.Mutex
	msgs   []tea.Msg
	events chan ui.Event
	quit   bool
}

func newMockUI() *mockUI {
	return &mockUI{events: make(chan ui.Event, 64)}
}

func (m *mockUI) Run() error { return nil }

func (m *mockUI) Send(msg tea.Msg) {
	m.mu.Lock()
	m.msgs = append(m.msgs, msg)
	m.mu.Unlock()
}

func (m *mockUI) Events() <-chan ui.Event { return m.events }

func (m *mockUI) Quit() {
	m.mu.Lock()
	m.quit = true
	m.mu.Unlock()
}

// statusTexts returns every pushed status line in order.
func (m *mockUI) statusTexts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, msg := range m.msgs {
		if s, ok := msg.(ui.StatusTextMsg); ok {
			out = append(out, string(s))
		}
	}
	return out
}

// promptStates returns the prompt mode flips in order.
func (m *mockUI) promptStates() []bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []bool
	for _, msg := range m.msgs {
		if s, ok := msg.(ui.PromptStateMsg); ok {
			out = append(out, s.Active)
		}
	}
	return out
}

// lastBars returns the most recent bar push.
func (m *mockUI) lastBars() (ui.SetBarsMsg, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.msgs) - 1; i >= 0; i-- {
		if b, ok := m.msgs[i].(ui.SetBarsMsg); ok {
			return b, true
		}
	}
	return ui.SetBarsMsg{}, false
}

// setupSession boots a session on the test goroutine. The event loop
// never starts: tests call handlers directly, standing in for the
// session goroutine.
func setupSession(t *testing.T, defaultInit string) (*Session, *mockUI) {
	t.Helper()

	mock := newMockUI()
	s := New(mock, Config{
		CoreScripts: scripts.CoreScripts,
		DefaultInit: defaultInit,
		ConfigDir:   t.TempDir(),
	})
	if err := s.boot(); err != nil {
		t.Fatalf("boot failed: %v", err)
	}
	t.Cleanup(s.engine.Close)
	return s, mock
}

func TestBootDeclaresDefaultPanel(t *testing.T) {
	s, _ := setupSession(t, scripts.DefaultInit)

	b := s.findBar("main")
	if b == nil {
		t.Fatal("default init should declare a bar named main")
	}
	if b.edge != "top" {
		t.Errorf("expected top edge, got %q", b.edge)
	}
	if b.height != 1 {
		t.Errorf("expected height 1, got %d", b.height)
	}
	if b.root.First() == nil || b.root.Second() == nil || b.root.Third() == nil {
		t.Error("default panel should fill all three slots")
	}
}

func TestBootRunsStartupHook(t *testing.T) {
	s, mock := setupSession(t, `
		ledge.hooks.on("startup", function() ledge.print("up") end)
	`)
	_ = s

	got := mock.statusTexts()
	if len(got) != 1 || got[0] != "up" {
		t.Errorf("expected startup hook to print, got %v", got)
	}
}

func TestRenderComposesRows(t *testing.T) {
	s, mock := setupSession(t, `
		ledge.bar{
			name   = "main",
			expand = "none",
			left   = ledge.widget.text{ text = "ab" },
			center = ledge.widget.text{ text = "mid" },
			right  = ledge.widget.text{ text = "yz" },
		}
	`)

	s.handleUIMsg(ui.WindowSizeChangedMsg{Width: 12, Height: 4})
	s.renderBars()

	bars, ok := mock.lastBars()
	if !ok {
		t.Fatal("no bar rows pushed")
	}
	if len(bars.Top) != 1 || len(bars.Bottom) != 0 {
		t.Fatalf("expected 1 top row, got top=%d bottom=%d", len(bars.Top), len(bars.Bottom))
	}
	if got := text.StripANSI(bars.Top[0]); got != "ab  mid   yz" {
		t.Errorf("unexpected row: %q", got)
	}
}

func TestRenderRoutesEdges(t *testing.T) {
	s, mock := setupSession(t, `
		ledge.bar{ name = "status", edge = "top",    left = ledge.widget.text{ text = "top" } }
		ledge.bar{ name = "keys",   edge = "bottom", left = ledge.widget.text{ text = "bot" } }
	`)

	s.handleUIMsg(ui.WindowSizeChangedMsg{Width: 8, Height: 6})
	s.renderBars()

	bars, ok := mock.lastBars()
	if !ok {
		t.Fatal("no bar rows pushed")
	}
	if len(bars.Top) != 1 || len(bars.Bottom) != 1 {
		t.Fatalf("expected one row per edge, got top=%d bottom=%d", len(bars.Top), len(bars.Bottom))
	}
	if got := text.StripANSI(bars.Top[0]); got != "top     " {
		t.Errorf("top row: %q", got)
	}
	if got := text.StripANSI(bars.Bottom[0]); got != "bot     " {
		t.Errorf("bottom row: %q", got)
	}
}

func TestIdenticalRedeclareStaysQuiet(t *testing.T) {
	s, _ := setupSession(t, "")

	left := widget.NewText("cpu")
	right := widget.NewText("42%")
	def := lua.BarDef{
		Name: "x", Edge: "top", Height: 1, Spacing: 1,
		Left:  []layout.Widget{left},
		Right: []layout.Widget{right},
	}

	s.DeclareBar(def)
	s.dirty = false

	s.DeclareBar(def)
	if s.dirty {
		t.Error("redeclaring an identical bar must not dirty the panel")
	}

	// Same widgets at different spacing is a real change.
	def.Spacing = 2
	s.DeclareBar(def)
	if !s.dirty {
		t.Error("spacing change should dirty the panel")
	}
}

func TestRedeclareUpdatesInPlace(t *testing.T) {
	s, _ := setupSession(t, "")

	w := widget.NewText("hi")
	def := lua.BarDef{Name: "x", Edge: "top", Height: 1, Spacing: 1, Left: []layout.Widget{w}}
	s.DeclareBar(def)

	b := s.findBar("x")
	if b == nil {
		t.Fatal("bar not created")
	}
	root := b.root
	s.dirty = false

	def.Edge = "bottom"
	def.Height = 2
	s.DeclareBar(def)

	if got := s.findBar("x"); got != b {
		t.Fatal("redeclaration should update the existing bar, not replace it")
	}
	if b.root != root {
		t.Error("layout tree should survive a redeclaration")
	}
	if b.edge != "bottom" || b.height != 2 {
		t.Errorf("edge/height not applied: %s/%d", b.edge, b.height)
	}
	if !s.dirty {
		t.Error("edge and height changes should dirty the panel")
	}
}

func TestRemoveBar(t *testing.T) {
	s, _ := setupSession(t, `ledge.bar{ name = "gone" }`)

	if s.findBar("gone") == nil {
		t.Fatal("bar not declared")
	}
	s.dirty = false

	s.RemoveBar("gone")
	if s.findBar("gone") != nil {
		t.Error("bar should be removed")
	}
	if !s.dirty {
		t.Error("removal should dirty the panel")
	}

	s.dirty = false
	s.RemoveBar("never-existed")
	if s.dirty {
		t.Error("removing an unknown bar should change nothing")
	}
}

func TestRebootSweepsUndeclaredBars(t *testing.T) {
	s, _ := setupSession(t, `ledge.bar{ name = "main" }`)

	// A bar declared at runtime, outside the config.
	if err := s.engine.DoString("test", `ledge.bar{ name = "extra" }`); err != nil {
		t.Fatalf("declare failed: %v", err)
	}
	if len(s.bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(s.bars))
	}

	// Reboot re-runs the config, which only declares "main".
	if err := s.boot(); err != nil {
		t.Fatalf("reboot failed: %v", err)
	}

	if s.findBar("main") == nil {
		t.Error("main should survive the reboot")
	}
	if s.findBar("extra") != nil {
		t.Error("extra was not redeclared and should be swept")
	}
}

func TestWidgetMutationDirtiesPanel(t *testing.T) {
	s, _ := setupSession(t, `
		w = ledge.widget.text{ text = "a" }
		ledge.bar{ name = "main", left = w }
	`)
	s.dirty = false

	if err := s.engine.DoString("test", `w:set_text("b")`); err != nil {
		t.Fatalf("set_text failed: %v", err)
	}
	if !s.dirty {
		t.Error("widget mutation should dirty the panel")
	}

	s.dirty = false
	if err := s.engine.DoString("test", `w:set_text("b")`); err != nil {
		t.Fatalf("set_text failed: %v", err)
	}
	if s.dirty {
		t.Error("writing the value a widget already shows must stay quiet")
	}
}

func TestPromptFlow(t *testing.T) {
	s, mock := setupSession(t, `
		ledge.bar{ name = "main", center = ledge.widget.prompt{} }
	`)

	s.openPrompt()
	if s.prompt == nil {
		t.Fatal("prompt should be active")
	}
	if states := mock.promptStates(); len(states) == 0 || !states[len(states)-1] {
		t.Fatalf("shell should be in prompt mode, states %v", states)
	}

	s.promptKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(`ledge.print("ran")`)})
	s.promptKey(tea.KeyMsg{Type: tea.KeyEnter})

	if s.prompt != nil {
		t.Error("prompt should deactivate after Enter")
	}
	if states := mock.promptStates(); states[len(states)-1] {
		t.Errorf("shell should leave prompt mode, states %v", states)
	}

	found := false
	for _, line := range mock.statusTexts() {
		if line == "ran" {
			found = true
		}
	}
	if !found {
		t.Errorf("submitted line did not execute, prints %v", mock.statusTexts())
	}
}

func TestPromptHistoryRecall(t *testing.T) {
	s, _ := setupSession(t, `
		ledge.bar{ name = "main", center = ledge.widget.prompt{} }
	`)

	s.openPrompt()
	s.promptKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(`ledge.print("first")`)})
	s.promptKey(tea.KeyMsg{Type: tea.KeyEnter})

	s.openPrompt()
	p := s.prompt
	s.promptKey(tea.KeyMsg{Type: tea.KeyUp})
	if got := p.Value(); got != `ledge.print("first")` {
		t.Errorf("Up should recall the last line, got %q", got)
	}
	s.promptKey(tea.KeyMsg{Type: tea.KeyDown})
	if got := p.Value(); got != "" {
		t.Errorf("Down past the newest should clear, got %q", got)
	}
}

func TestPromptEscAbandons(t *testing.T) {
	s, mock := setupSession(t, `
		ledge.bar{ name = "main", center = ledge.widget.prompt{} }
	`)

	s.openPrompt()
	s.promptKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ledge.quit()")})
	s.promptKey(tea.KeyMsg{Type: tea.KeyEsc})

	if s.prompt != nil {
		t.Error("Esc should deactivate the prompt")
	}
	select {
	case <-s.done:
		t.Error("abandoned line must not execute")
	default:
	}
	if states := mock.promptStates(); states[len(states)-1] {
		t.Errorf("shell should leave prompt mode, states %v", states)
	}
}

func TestOpenPromptWithoutWidget(t *testing.T) {
	s, mock := setupSession(t, `ledge.bar{ name = "main" }`)

	s.openPrompt()
	if s.prompt != nil {
		t.Error("no prompt widget exists, nothing should activate")
	}
	if states := mock.promptStates(); len(states) != 0 {
		t.Errorf("prompt mode should not flip, states %v", states)
	}
	got := mock.statusTexts()
	if len(got) == 0 || !strings.Contains(got[len(got)-1], "no prompt widget") {
		t.Errorf("expected a status explaining the miss, got %v", got)
	}
}

func TestControlLineExecutes(t *testing.T) {
	s, mock := setupSession(t, "")

	var replied error
	repliedSet := false
	s.handleEvent(Event{
		Type:    EventControlLine,
		Payload: `ledge.print("ctl")`,
		Reply:   func(err error) { replied, repliedSet = err, true },
	})

	if !repliedSet {
		t.Fatal("reply callback never ran")
	}
	if replied != nil {
		t.Errorf("expected clean execution, got %v", replied)
	}
	got := mock.statusTexts()
	if len(got) == 0 || got[len(got)-1] != "ctl" {
		t.Errorf("control line did not print, got %v", got)
	}
}

func TestControlLineReportsErrors(t *testing.T) {
	s, mock := setupSession(t, "")

	var replied error
	s.handleEvent(Event{
		Type:    EventControlLine,
		Payload: "this is not lua",
		Reply:   func(err error) { replied = err },
	})

	if replied == nil {
		t.Fatal("expected a parse error")
	}
	// The error hook also surfaces it on the panel.
	got := mock.statusTexts()
	if len(got) == 0 || !strings.HasPrefix(got[len(got)-1], "error: control:") {
		t.Errorf("expected an error status, got %v", got)
	}
}

func TestClockTickCoalesces(t *testing.T) {
	s, _ := setupSession(t, `
		ledge.bar{ name = "main", right = ledge.widget.clock{ format = "15:04:05" } }
	`)

	t1 := time.Date(2001, 2, 3, 4, 5, 6, 0, time.UTC)
	t2 := t1.Add(time.Second)

	s.tickClocks(t1)
	s.dirty = false

	s.tickClocks(t2)
	if !s.dirty {
		t.Error("a new second should dirty a second-resolution clock")
	}

	s.dirty = false
	s.tickClocks(t2)
	if s.dirty {
		t.Error("re-ticking the same instant should stay quiet")
	}
}

func TestQuitShutsDown(t *testing.T) {
	s, mock := setupSession(t, "")

	s.Quit()

	select {
	case <-s.done:
	default:
		t.Error("done should be closed after Quit")
	}
	mock.mu.Lock()
	quit := mock.quit
	mock.mu.Unlock()
	if !quit {
		t.Error("Quit should stop the shell")
	}
}

func TestBindsPushedOnBoot(t *testing.T) {
	_, mock := setupSession(t, `
		ledge.bind("f1", function() end)
		ledge.bind("ctrl+r", function() ledge.reload() end)
	`)

	mock.mu.Lock()
	defer mock.mu.Unlock()
	var last ui.UpdateBindsMsg
	for _, msg := range mock.msgs {
		if b, ok := msg.(ui.UpdateBindsMsg); ok {
			last = b
		}
	}
	if last == nil {
		t.Fatal("no bind set pushed")
	}
	if !last["f1"] || !last["ctrl+r"] || len(last) != 2 {
		t.Errorf("unexpected bind set: %v", last)
	}
}
