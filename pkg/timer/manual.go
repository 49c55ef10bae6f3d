package timer

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Manual is a virtual-time Scheduler for tests. Nothing fires on its own;
// the test advances time or fires events explicitly, always on the calling
// goroutine.
type Manual struct {
	now     time.Time
	entries []*manualEntry
}

type manualEntry struct {
	id       uuid.UUID
	deadline time.Time
	tag      any
	stopped  bool
}

// NewManual creates a Manual scheduler with its virtual clock at now.
func NewManual(now time.Time) *Manual {
	return &Manual{now: now}
}

// ScheduleAt records the event; it fires only via Advance or FireNext.
func (m *Manual) ScheduleAt(deadline time.Time, tag any) *Handle {
	e := &manualEntry{id: uuid.New(), deadline: deadline, tag: tag}
	m.entries = append(m.entries, e)
	return NewHandle(e.id, func() { e.stopped = true })
}

// Now returns the virtual time.
func (m *Manual) Now() time.Time {
	return m.now
}

// Pending returns the tags of scheduled, unstopped events in deadline order.
func (m *Manual) Pending() []any {
	m.sortEntries()
	var tags []any
	for _, e := range m.entries {
		if !e.stopped {
			tags = append(tags, e.tag)
		}
	}
	return tags
}

// Advance moves the virtual clock forward by d and delivers every due,
// unstopped event to sink in deadline order. Events the sink schedules are
// delivered too if their deadline is within the advanced window.
func (m *Manual) Advance(d time.Duration, sink Sink) {
	m.now = m.now.Add(d)

	for {
		e := m.takeDue()
		if e == nil {
			return
		}
		sink(Fired{ID: e.id, Tag: e.tag})
	}
}

// takeDue removes and returns the earliest due, unstopped entry, discarding
// stopped ones along the way.
func (m *Manual) takeDue() *manualEntry {
	m.sortEntries()
	for i := 0; i < len(m.entries); {
		e := m.entries[i]
		if e.stopped {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			continue
		}
		if e.deadline.After(m.now) {
			return nil
		}
		m.entries = append(m.entries[:i], m.entries[i+1:]...)
		return e
	}
	return nil
}

// FireNext delivers the earliest unstopped event regardless of its deadline,
// advancing the virtual clock to it. Returns false if nothing is pending.
func (m *Manual) FireNext(sink Sink) bool {
	m.sortEntries()
	for i, e := range m.entries {
		if e.stopped {
			continue
		}
		if e.deadline.After(m.now) {
			m.now = e.deadline
		}
		m.entries = append(m.entries[:i], m.entries[i+1:]...)
		sink(Fired{ID: e.id, Tag: e.tag})
		return true
	}
	return false
}

func (m *Manual) sortEntries() {
	sort.SliceStable(m.entries, func(i, j int) bool {
		return m.entries[i].deadline.Before(m.entries[j].deadline)
	})
}

// Compile-time interface satisfaction check.
var _ Scheduler = (*Manual)(nil)
