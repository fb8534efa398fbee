package clock

import (
	"testing"
	"time"
)

func TestManualAfterFunc(t *testing.T) {
	m := NewManual()
	fired := 0
	m.AfterFunc(100*time.Millisecond, func() { fired++ })

	m.Advance(99 * time.Millisecond)
	if fired != 0 {
		t.Fatalf("fired early: %d", fired)
	}
	m.Advance(time.Millisecond)
	if fired != 1 {
		t.Fatalf("fired = %d, expected 1", fired)
	}
	m.Advance(time.Second)
	if fired != 1 {
		t.Errorf("one-shot fired again: %d", fired)
	}
	if m.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", m.Pending())
	}
}

func TestManualEvery(t *testing.T) {
	m := NewManual()
	ticks := 0
	m.Every(50*time.Millisecond, func() { ticks++ })

	m.Advance(time.Second)
	if ticks != 20 {
		t.Errorf("ticks = %d, expected 20", ticks)
	}
	if m.Now() != time.Second {
		t.Errorf("Now() = %v, expected 1s", m.Now())
	}
}

func TestManualStop(t *testing.T) {
	m := NewManual()
	ticks := 0
	timer := m.Every(10*time.Millisecond, func() { ticks++ })

	m.Advance(30 * time.Millisecond)
	if !timer.Stop() {
		t.Error("Stop() on live timer should return true")
	}
	if timer.Stop() {
		t.Error("second Stop() should return false")
	}
	m.Advance(time.Second)
	if ticks != 3 {
		t.Errorf("ticks = %d, expected 3", ticks)
	}
}

func TestManualStopFromCallback(t *testing.T) {
	m := NewManual()
	ticks := 0
	var timer Timer
	timer = m.Every(10*time.Millisecond, func() {
		ticks++
		if ticks == 2 {
			timer.Stop()
		}
	})

	m.Advance(time.Second)
	if ticks != 2 {
		t.Errorf("ticks = %d, expected 2", ticks)
	}
}

func TestManualOrdering(t *testing.T) {
	m := NewManual()
	var order []string
	m.AfterFunc(20*time.Millisecond, func() { order = append(order, "b") })
	m.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	m.AfterFunc(20*time.Millisecond, func() { order = append(order, "c") })

	m.Advance(20 * time.Millisecond)
	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Errorf("order = %v, expected [a b c]", order)
	}
}

func TestManualCallbackArmsTimer(t *testing.T) {
	m := NewManual()
	fired := false
	m.AfterFunc(10*time.Millisecond, func() {
		m.AfterFunc(10*time.Millisecond, func() { fired = true })
	})

	m.Advance(20 * time.Millisecond)
	if !fired {
		t.Error("timer armed inside a callback should fire within the same Advance")
	}
}
