package timer

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Clock is a real-time Scheduler built on time.AfterFunc.
type Clock struct {
	mu   sync.Mutex
	sink Sink

	// Pending timers by event ID, so Close can sweep them.
	pending map[uuid.UUID]*time.Timer
	closed  bool
}

// NewClock creates a Clock delivering fired events to sink.
func NewClock(sink Sink) *Clock {
	return &Clock{
		sink:    sink,
		pending: make(map[uuid.UUID]*time.Timer),
	}
}

// Now returns the wall-clock time.
func (c *Clock) Now() time.Time {
	return time.Now()
}

// ScheduleAt schedules tag for delivery at or after deadline.
func (c *Clock) ScheduleAt(deadline time.Time, tag any) *Handle {
	id := uuid.New()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		// Closed scheduler: hand back an inert handle.
		return NewHandle(id, func() {})
	}

	t := time.AfterFunc(time.Until(deadline), func() {
		c.fire(id, tag)
	})
	c.pending[id] = t

	return NewHandle(id, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if t, ok := c.pending[id]; ok {
			t.Stop()
			delete(c.pending, id)
		}
	})
}

// Close cancels all pending timers. Events already in flight may still be
// delivered.
func (c *Clock) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	for id, t := range c.pending {
		t.Stop()
		delete(c.pending, id)
	}
}

func (c *Clock) fire(id uuid.UUID, tag any) {
	c.mu.Lock()
	_, ok := c.pending[id]
	if ok {
		delete(c.pending, id)
	}
	sink := c.sink
	closed := c.closed
	c.mu.Unlock()

	// Deliver outside the lock so the sink may schedule again.
	if ok && !closed && sink != nil {
		sink(Fired{ID: id, Tag: tag})
	}
}

// Compile-time interface satisfaction check.
var _ Scheduler = (*Clock)(nil)
