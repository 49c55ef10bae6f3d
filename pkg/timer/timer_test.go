package timer

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestManualScheduleAndAdvance(t *testing.T) {
	m := NewManual(time.Unix(0, 0))

	h := m.ScheduleAt(m.Now().Add(5*time.Second), "assoc-timeout")
	if h.ID() == uuid.Nil {
		t.Error("handle has nil ID")
	}

	var fired []Fired
	m.Advance(4*time.Second, func(f Fired) { fired = append(fired, f) })
	if len(fired) != 0 {
		t.Fatalf("fired %d events before deadline, want 0", len(fired))
	}

	m.Advance(time.Second, func(f Fired) { fired = append(fired, f) })
	if len(fired) != 1 {
		t.Fatalf("fired %d events, want 1", len(fired))
	}
	if fired[0].Tag != "assoc-timeout" {
		t.Errorf("Tag = %v, want assoc-timeout", fired[0].Tag)
	}
	if fired[0].ID != h.ID() {
		t.Error("fired ID does not match handle ID")
	}
}

func TestManualStopSuppressesDelivery(t *testing.T) {
	m := NewManual(time.Unix(0, 0))

	h := m.ScheduleAt(m.Now().Add(time.Second), "x")
	h.Stop()
	h.Stop() // idempotent

	var fired []Fired
	m.Advance(2*time.Second, func(f Fired) { fired = append(fired, f) })
	if len(fired) != 0 {
		t.Errorf("fired %d events after Stop, want 0", len(fired))
	}
}

func TestManualFireNextOrdersByDeadline(t *testing.T) {
	m := NewManual(time.Unix(0, 0))

	m.ScheduleAt(m.Now().Add(5*time.Second), "later")
	m.ScheduleAt(m.Now().Add(time.Second), "sooner")

	var got []any
	for m.FireNext(func(f Fired) { got = append(got, f.Tag) }) {
	}

	if len(got) != 2 || got[0] != "sooner" || got[1] != "later" {
		t.Errorf("fire order = %v, want [sooner later]", got)
	}
}

func TestManualPending(t *testing.T) {
	m := NewManual(time.Unix(0, 0))

	h := m.ScheduleAt(m.Now().Add(time.Second), "a")
	m.ScheduleAt(m.Now().Add(2*time.Second), "b")
	h.Stop()

	pending := m.Pending()
	if len(pending) != 1 || pending[0] != "b" {
		t.Errorf("Pending() = %v, want [b]", pending)
	}
}

func TestStopNilHandle(t *testing.T) {
	var h *Handle
	h.Stop() // must not panic
}

func TestClockDeliversAndStops(t *testing.T) {
	var mu sync.Mutex
	var fired []Fired
	done := make(chan struct{})

	c := NewClock(func(f Fired) {
		mu.Lock()
		fired = append(fired, f)
		mu.Unlock()
		close(done)
	})
	defer c.Close()

	stopped := c.ScheduleAt(time.Now().Add(time.Millisecond), "stopped")
	stopped.Stop()
	c.ScheduleAt(time.Now().Add(5*time.Millisecond), "fires")

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event delivery")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(fired) != 1 {
		t.Fatalf("fired %d events, want 1", len(fired))
	}
	if fired[0].Tag != "fires" {
		t.Errorf("Tag = %v, want fires", fired[0].Tag)
	}
}

func TestClockCloseIsInert(t *testing.T) {
	c := NewClock(func(Fired) { t.Error("event delivered after Close") })
	c.ScheduleAt(time.Now().Add(10*time.Millisecond), "x")
	c.Close()

	h := c.ScheduleAt(time.Now().Add(time.Millisecond), "y")
	h.Stop()

	time.Sleep(30 * time.Millisecond)
}
