package aid

import (
	"errors"

	"github.com/softap-project/softap-go/pkg/wire"
)

// Pool errors.
var (
	// ErrPoolExhausted is returned by Assign when every AID is in use.
	ErrPoolExhausted = errors.New("aid pool exhausted")
)

// Pool tracks assigned AIDs for a single BSS.
type Pool struct {
	// One bit per AID, bit i covering AID i. Bit 0 is permanently set so
	// AID 0 is never handed out.
	bits [int(wire.AidMax)/64 + 1]uint64
	max  wire.Aid

	// Rotating scan start; spreads assignments instead of always reusing
	// the lowest free AID.
	next wire.Aid

	assigned int
}

// NewPool creates a pool covering AIDs 1..wire.AidMax.
func NewPool() *Pool {
	return NewPoolWithCapacity(wire.AidMax)
}

// NewPoolWithCapacity creates a pool covering AIDs 1..max. A max of 0 or
// above wire.AidMax is clamped to wire.AidMax.
func NewPoolWithCapacity(max wire.Aid) *Pool {
	if max == 0 || max > wire.AidMax {
		max = wire.AidMax
	}
	p := &Pool{max: max, next: 1}
	p.bits[0] = 1 // reserve AID 0
	return p
}

// Assign returns an unused AID, or ErrPoolExhausted when all AIDs up to the
// pool's capacity are held.
func (p *Pool) Assign() (wire.Aid, error) {
	if p.assigned >= int(p.max) {
		return 0, ErrPoolExhausted
	}

	aid := p.next
	for {
		if !p.isSet(aid) {
			p.set(aid)
			p.assigned++
			p.next = aid%p.max + 1
			return aid, nil
		}
		aid = aid%p.max + 1
	}
}

// Release returns an AID to the pool. Releasing an unassigned or
// out-of-range AID is a no-op.
func (p *Pool) Release(aid wire.Aid) {
	if aid == 0 || aid > p.max || !p.isSet(aid) {
		return
	}
	p.clear(aid)
	p.assigned--
}

// Assigned returns the number of AIDs currently held.
func (p *Pool) Assigned() int {
	return p.assigned
}

// Capacity returns the number of assignable AIDs.
func (p *Pool) Capacity() int {
	return int(p.max)
}

func (p *Pool) isSet(aid wire.Aid) bool {
	return p.bits[aid/64]&(1<<(aid%64)) != 0
}

func (p *Pool) set(aid wire.Aid) {
	p.bits[aid/64] |= 1 << (aid % 64)
}

func (p *Pool) clear(aid wire.Aid) {
	p.bits[aid/64] &^= 1 << (aid % 64)
}
