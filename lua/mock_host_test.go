package lua

import (
	"sync"
	"time"
)

// MockHost implements Host for testing.
type MockHost struct {
	mu sync.Mutex

	// Captured calls
	PrintCalls      []string
	QuitCalled      bool
	ReloadCalls     int
	LoadFileCalls   []string
	DeclaredBars    []BarDef
	RemovedBars     []string
	LayoutChanges   int
	BindUpdates     [][]string
	ScheduledTimers []struct {
		ID       int
		Duration time.Duration
		Repeat   bool
	}
	CancelledTimers []int
	CancelAllCalls  int

	// Timer ID generation
	nextTimerID int
}

func NewMockHost() *MockHost {
	return &MockHost{}
}

func (m *MockHost) Print(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PrintCalls = append(m.PrintCalls, text)
}

func (m *MockHost) Quit() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.QuitCalled = true
}

func (m *MockHost) Reload() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReloadCalls++
}

func (m *MockHost) LoadFile(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LoadFileCalls = append(m.LoadFileCalls, path)
}

func (m *MockHost) DeclareBar(def BarDef) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeclaredBars = append(m.DeclaredBars, def)
}

func (m *MockHost) RemoveBar(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RemovedBars = append(m.RemovedBars, name)
}

func (m *MockHost) LayoutChanged() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LayoutChanges++
}

func (m *MockHost) BindsChanged(keys []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BindUpdates = append(m.BindUpdates, keys)
}

func (m *MockHost) TimerAfter(d time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextTimerID++
	id := m.nextTimerID
	m.ScheduledTimers = append(m.ScheduledTimers, struct {
		ID       int
		Duration time.Duration
		Repeat   bool
	}{id, d, false})
	return id
}

func (m *MockHost) TimerEvery(d time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextTimerID++
	id := m.nextTimerID
	m.ScheduledTimers = append(m.ScheduledTimers, struct {
		ID       int
		Duration time.Duration
		Repeat   bool
	}{id, d, true})
	return id
}

func (m *MockHost) TimerCancel(id int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CancelledTimers = append(m.CancelledTimers, id)
}

func (m *MockHost) TimerCancelAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CancelAllCalls++
}

// Helper methods for tests

func (m *MockHost) DrainPrintCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := m.PrintCalls
	m.PrintCalls = nil
	return calls
}

func (m *MockHost) LastBar() (BarDef, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.DeclaredBars) == 0 {
		return BarDef{}, false
	}
	return m.DeclaredBars[len(m.DeclaredBars)-1], true
}
