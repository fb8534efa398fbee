// Package tui provides the Bubble Tea integration for typefall.
// It handles the terminal UI loop, input mapping, timers and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/typefall/internal/clock"
)

// timerMsg wakes the callback of a scheduled timer.
type timerMsg struct {
	id int
}

// Scheduler implements clock.Scheduler on top of Bubble Tea ticks, so timer
// callbacks run inside Update like any other message. Stopping a timer
// forgets its ID; a tick already in flight for it is dropped on arrival.
type Scheduler struct {
	nextID  int
	timers  map[int]*teaTimer
	pending []tea.Cmd
}

type teaTimer struct {
	s      *Scheduler
	id     int
	d      time.Duration
	repeat bool
	fn     func()
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{timers: make(map[int]*teaTimer)}
}

// AfterFunc schedules f once after d.
func (s *Scheduler) AfterFunc(d time.Duration, f func()) clock.Timer {
	return s.arm(d, false, f)
}

// Every schedules f every d.
func (s *Scheduler) Every(d time.Duration, f func()) clock.Timer {
	return s.arm(d, true, f)
}

func (s *Scheduler) arm(d time.Duration, repeat bool, f func()) clock.Timer {
	s.nextID++
	t := &teaTimer{s: s, id: s.nextID, d: d, repeat: repeat, fn: f}
	s.timers[t.id] = t
	s.pending = append(s.pending, t.tick())
	return t
}

// tick returns a command that delivers one wake-up for t.
func (t *teaTimer) tick() tea.Cmd {
	id := t.id
	return tea.Tick(t.d, func(time.Time) tea.Msg {
		return timerMsg{id: id}
	})
}

func (t *teaTimer) Stop() bool {
	if _, ok := t.s.timers[t.id]; !ok {
		return false
	}
	delete(t.s.timers, t.id)
	return true
}

// Handle runs the callback for msg if its timer is still live.
// Repeating timers are re-armed before the callback runs.
func (s *Scheduler) Handle(msg timerMsg) {
	t, ok := s.timers[msg.id]
	if !ok {
		return
	}
	if t.repeat {
		s.pending = append(s.pending, t.tick())
	} else {
		delete(s.timers, t.id)
	}
	t.fn()
}

// Flush returns the commands for ticks armed since the last call.
func (s *Scheduler) Flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmd := tea.Batch(s.pending...)
	s.pending = nil
	return cmd
}

// Live returns the number of armed timers.
func (s *Scheduler) Live() int {
	return len(s.timers)
}
