// Package timer schedules wake-ups for scripted callbacks and clock
// widgets.
package timer

import (
	"sync"
	"time"
)

// Event is sent on the service channel when a timer fires.
type Event struct {
	ID        int
	Repeating bool
}

// Service manages timed wake-ups with full lifecycle ownership.
// It owns: ID generation, scheduling, repeating logic, cancellation.
// Fixed-interval timers reschedule immediately on fire; aligned timers
// re-anchor to the next wall-clock boundary instead, so a one-minute
// timer keeps firing at :00 regardless of delivery jitter.
type Service struct {
	events chan<- Event
	timers map[int]*entry
	nextID int
	mu     sync.Mutex
}

type entry struct {
	interval time.Duration // 0 = one-shot, >0 = repeating
	aligned  bool
	cancel   func() bool // time.Timer.Stop
}

// NewService creates a timer service that sends fired timer events.
func NewService(events chan<- Event) *Service {
	return &Service{
		events: events,
		timers: make(map[int]*entry),
	}
}

// After schedules a one-shot timer. Returns the timer ID.
func (s *Service) After(d time.Duration) int {
	return s.schedule(d, 0, false)
}

// Every schedules a repeating timer. Returns the timer ID.
func (s *Service) Every(d time.Duration) int {
	return s.schedule(d, d, false)
}

// EveryAligned schedules a repeating timer that fires when the wall
// clock crosses a multiple of d: the first fire lands on the next
// boundary, not d from now. Returns the timer ID.
func (s *Service) EveryAligned(d time.Duration) int {
	return s.schedule(nextAlignedDelay(time.Now(), d), d, true)
}

func (s *Service) schedule(delay, interval time.Duration, aligned bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID

	t := time.AfterFunc(delay, func() {
		s.fire(id)
	})

	s.timers[id] = &entry{
		interval: interval,
		aligned:  aligned,
		cancel:   t.Stop,
	}

	return id
}

// fire sends the timer event and reschedules if repeating.
func (s *Service) fire(id int) {
	s.mu.Lock()
	e, ok := s.timers[id]
	if !ok {
		s.mu.Unlock()
		return // Cancelled before firing
	}

	repeating := e.interval > 0

	if repeating {
		delay := e.interval
		if e.aligned {
			delay = nextAlignedDelay(time.Now(), e.interval)
		}
		t := time.AfterFunc(delay, func() {
			s.fire(id)
		})
		e.cancel = t.Stop
	} else {
		// One-shot: clean up
		delete(s.timers, id)
	}
	s.mu.Unlock()

	select {
	case s.events <- Event{ID: id, Repeating: repeating}:
	default:
		// Receiver shutting down or buffer full
	}
}

// Cancel stops a timer and removes it.
func (s *Service) Cancel(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.timers[id]; ok {
		e.cancel()
		delete(s.timers, id)
	}
}

// CancelAll stops all timers and clears the map.
func (s *Service) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.timers {
		e.cancel()
	}
	s.timers = make(map[int]*entry)
}

// Active reports how many timers are currently scheduled.
func (s *Service) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// nextAlignedDelay computes the wait until the wall clock next crosses
// a multiple of d.
func nextAlignedDelay(now time.Time, d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	delay := now.Truncate(d).Add(d).Sub(now)
	if delay <= 0 {
		delay = d
	}
	return delay
}
