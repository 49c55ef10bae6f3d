package timer

import (
	"time"

	"github.com/google/uuid"
)

// Scheduler schedules tagged events for later delivery.
type Scheduler interface {
	// ScheduleAt arranges for tag to be delivered to the scheduler's sink
	// at or after deadline. The returned handle stops delivery when its
	// Stop method is called before the deadline.
	ScheduleAt(deadline time.Time, tag any) *Handle

	// Now returns the scheduler's notion of the current time. Deadlines
	// passed to ScheduleAt must be derived from it.
	Now() time.Time
}

// Fired is a scheduled event that reached its deadline.
type Fired struct {
	// ID identifies the handle that produced the event.
	ID uuid.UUID

	// Tag is the payload given to ScheduleAt.
	Tag any
}

// Sink receives fired events. Delivery happens on the scheduler's own
// goroutine for Clock and on the caller's goroutine for Manual; sinks that
// feed a single-threaded state machine must serialize accordingly.
type Sink func(Fired)

// Handle names one scheduled event. The zero value is not a valid handle.
type Handle struct {
	id   uuid.UUID
	stop func()
}

// NewHandle builds a handle with the given cancel function. Schedulers call
// this; hosts normally only receive handles.
func NewHandle(id uuid.UUID, stop func()) *Handle {
	return &Handle{id: id, stop: stop}
}

// ID returns the event identity shared with the Fired event.
func (h *Handle) ID() uuid.UUID {
	if h == nil {
		return uuid.Nil
	}
	return h.id
}

// Stop cancels delivery if the event has not fired yet. Stop is idempotent
// and safe on a nil handle.
func (h *Handle) Stop() {
	if h == nil || h.stop == nil {
		return
	}
	h.stop()
}
