// Package debug provides runtime monitoring and diagnostics.
package debug

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/drake/ledge/panel"
)

// Enabled returns true if debug mode is active (LEDGE_DEBUG=1).
func Enabled() bool {
	return os.Getenv("LEDGE_DEBUG") == "1"
}

// Monitor periodically logs session statistics when debug mode is
// enabled. Logs go to stderr; redirect it to a file, the alternate
// screen owns the terminal.
type Monitor struct {
	session  *panel.Session
	interval time.Duration
	ctx      context.Context
	logger   *log.Logger
}

// NewMonitor creates a new monitor for the given session.
// If debug mode is not enabled, returns nil.
func NewMonitor(ctx context.Context, s *panel.Session) *Monitor {
	if !Enabled() {
		return nil
	}

	return &Monitor{
		session:  s,
		interval: 5 * time.Second,
		ctx:      ctx,
		logger:   log.New(os.Stderr, "", log.LstdFlags),
	}
}

// Start begins the monitoring loop in a goroutine.
func (m *Monitor) Start() {
	if m == nil {
		return
	}
	go m.run()
}

func (m *Monitor) run() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.logger.Println("[DEBUG] Monitor started")

	for {
		select {
		case <-m.ctx.Done():
			m.logger.Println("[DEBUG] Monitor stopped")
			return
		case <-ticker.C:
			m.logStats()
		}
	}
}

func (m *Monitor) logStats() {
	s := m.session.Stats()

	hitRate := 0.0
	if total := s.FitHits + s.FitMisses; total > 0 {
		hitRate = float64(s.FitHits) / float64(total) * 100
	}

	m.logger.Printf("[DEBUG] events=%d renders=%d evtQ=%d/%d timerQ=%d/%d goroutines=%d | panel: %dx%d bars=%d | fit: hits=%d misses=%d entries=%d rate=%.0f%% | lua: stack=%d cb=%d regex=%d binds=%d | timers=%d | ctl: conns=%d lines=%d",
		s.EventsProcessed,
		s.Renders,
		s.EventQueueLen, s.EventQueueCap,
		s.TimerQueueLen, s.TimerQueueCap,
		s.Goroutines,
		s.Width, s.Height, s.Bars,
		s.FitHits, s.FitMisses, s.FitEntries, hitRate,
		s.Lua.StackSize,
		s.Lua.TimerCallbacks,
		s.Lua.RegexCacheSize,
		s.Lua.BoundKeys,
		s.ActiveTimers,
		s.Ctl.ConnsAccepted,
		s.Ctl.LinesExecuted,
	)
}
