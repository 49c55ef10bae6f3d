package aid

import (
	"errors"
	"testing"

	"github.com/softap-project/softap-go/pkg/wire"
)

func TestAssignUnique(t *testing.T) {
	p := NewPoolWithCapacity(8)

	seen := make(map[wire.Aid]bool)
	for i := 0; i < 8; i++ {
		aid, err := p.Assign()
		if err != nil {
			t.Fatalf("Assign() #%d error = %v", i, err)
		}
		if aid == 0 {
			t.Fatal("Assign() returned AID 0")
		}
		if aid > 8 {
			t.Fatalf("Assign() = %d, above capacity 8", aid)
		}
		if seen[aid] {
			t.Fatalf("Assign() returned duplicate AID %d", aid)
		}
		seen[aid] = true
	}
}

func TestAssignExhaustion(t *testing.T) {
	p := NewPoolWithCapacity(2)

	if _, err := p.Assign(); err != nil {
		t.Fatalf("Assign() error = %v", err)
	}
	if _, err := p.Assign(); err != nil {
		t.Fatalf("Assign() error = %v", err)
	}

	_, err := p.Assign()
	if !errors.Is(err, ErrPoolExhausted) {
		t.Errorf("Assign() error = %v, want ErrPoolExhausted", err)
	}
}

func TestReleaseMakesAidAssignable(t *testing.T) {
	p := NewPoolWithCapacity(1)

	aid, err := p.Assign()
	if err != nil {
		t.Fatalf("Assign() error = %v", err)
	}

	p.Release(aid)

	got, err := p.Assign()
	if err != nil {
		t.Fatalf("Assign() after Release error = %v", err)
	}
	if got != aid {
		t.Errorf("Assign() = %d, want released AID %d", got, aid)
	}
}

func TestReleaseIdempotent(t *testing.T) {
	p := NewPoolWithCapacity(4)

	aid, _ := p.Assign()
	p.Release(aid)
	p.Release(aid)
	p.Release(0)   // never assignable
	p.Release(100) // out of range

	if got := p.Assigned(); got != 0 {
		t.Errorf("Assigned() = %d, want 0", got)
	}
}

func TestFullPoolCapacity(t *testing.T) {
	p := NewPool()
	if got := p.Capacity(); got != int(wire.AidMax) {
		t.Errorf("Capacity() = %d, want %d", got, wire.AidMax)
	}

	n := 0
	for {
		if _, err := p.Assign(); err != nil {
			break
		}
		n++
	}
	if n != int(wire.AidMax) {
		t.Errorf("assigned %d AIDs before exhaustion, want %d", n, wire.AidMax)
	}
}
