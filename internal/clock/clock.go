// Package clock abstracts the timers a game session owns, so the session can
// be driven by the terminal event loop in production and by virtual time in
// tests.
package clock

import (
	"sort"
	"time"
)

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop cancels the timer. It reports whether the timer was still live.
	// Stopping twice is safe.
	Stop() bool
}

// Scheduler arms one-shot and repeating callbacks.
// Implementations run callbacks on the owner's goroutine, never concurrently.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
	Every(d time.Duration, f func()) Timer
}

// Manual is a Scheduler driven by Advance. It is meant for tests.
type Manual struct {
	now    time.Duration
	nextID int
	timers map[int]*manualTimer
}

type manualTimer struct {
	m      *Manual
	id     int
	due    time.Duration
	period time.Duration // zero for one-shot timers
	fn     func()
}

// NewManual returns a Manual scheduler at virtual time zero.
func NewManual() *Manual {
	return &Manual{timers: make(map[int]*manualTimer)}
}

// AfterFunc schedules f to run once after d.
func (m *Manual) AfterFunc(d time.Duration, f func()) Timer {
	return m.add(d, 0, f)
}

// Every schedules f to run every d, first after d.
func (m *Manual) Every(d time.Duration, f func()) Timer {
	if d <= 0 {
		panic("clock: non-positive interval for Every")
	}
	return m.add(d, d, f)
}

func (m *Manual) add(d, period time.Duration, f func()) Timer {
	m.nextID++
	t := &manualTimer{m: m, id: m.nextID, due: m.now + d, period: period, fn: f}
	m.timers[t.id] = t
	return t
}

func (t *manualTimer) Stop() bool {
	if _, ok := t.m.timers[t.id]; !ok {
		return false
	}
	delete(t.m.timers, t.id)
	return true
}

// Now returns the virtual time elapsed since creation.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Pending returns the number of live timers.
func (m *Manual) Pending() int {
	return len(m.timers)
}

// Advance moves virtual time forward by d, firing due timers in order.
// Timers armed or stopped by callbacks take effect immediately.
func (m *Manual) Advance(d time.Duration) {
	end := m.now + d
	for {
		t := m.nextDue(end)
		if t == nil {
			break
		}
		m.now = t.due
		if t.period > 0 {
			t.due += t.period
		} else {
			delete(m.timers, t.id)
		}
		t.fn()
	}
	m.now = end
}

// nextDue returns the earliest timer due at or before end. Ties fire in arming order.
func (m *Manual) nextDue(end time.Duration) *manualTimer {
	due := make([]*manualTimer, 0, len(m.timers))
	for _, t := range m.timers {
		if t.due <= end {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].id < due[j].id
	})
	return due[0]
}
