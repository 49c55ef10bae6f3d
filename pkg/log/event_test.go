package log

import (
	"errors"
	"testing"
)

func TestNewStateChange(t *testing.T) {
	ev := NewStateChange("07:07:07:07:07:07", "AUTHENTICATED", "ASSOCIATED", "")

	if ev.Category != CategoryStateChange {
		t.Errorf("Category = %v, want CategoryStateChange", ev.Category)
	}
	if ev.StateChange == nil {
		t.Fatal("StateChange payload is nil")
	}
	if ev.StateChange.OldState != "AUTHENTICATED" || ev.StateChange.NewState != "ASSOCIATED" {
		t.Errorf("transition = %s -> %s, want AUTHENTICATED -> ASSOCIATED",
			ev.StateChange.OldState, ev.StateChange.NewState)
	}
	if ev.Timestamp.IsZero() {
		t.Error("Timestamp is zero")
	}
}

func TestNewErrorNilError(t *testing.T) {
	ev := NewError("07:07:07:07:07:07", nil, "eapol")
	if ev.Error == nil {
		t.Fatal("Error payload is nil")
	}
	if ev.Error.Message != "" {
		t.Errorf("Message = %q, want empty", ev.Error.Message)
	}
}

func TestEventRoundTrip(t *testing.T) {
	ev := NewError("01:02:03:04:05:06", errors.New("no key frame"), "initiate")

	data, err := EncodeEvent(ev)
	if err != nil {
		t.Fatalf("EncodeEvent() error = %v", err)
	}

	got, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent() error = %v", err)
	}

	if got.ClientAddr != ev.ClientAddr {
		t.Errorf("ClientAddr = %q, want %q", got.ClientAddr, ev.ClientAddr)
	}
	if got.Category != CategoryError {
		t.Errorf("Category = %v, want CategoryError", got.Category)
	}
	if got.Error == nil || got.Error.Message != "no key frame" {
		t.Errorf("Error payload = %+v, want message %q", got.Error, "no key frame")
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{CategoryStateChange, "STATE_CHANGE"},
		{CategoryMlme, "MLME"},
		{CategoryTimeout, "TIMEOUT"},
		{CategoryError, "ERROR"},
		{Category(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.cat.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.cat, got, tt.want)
		}
	}
}

func TestMultiLoggerFanout(t *testing.T) {
	var a, b countingLogger
	m := NewMultiLogger(&a, &b)

	m.Log(NewTimeout("07:07:07:07:07:07", "ASSOCIATION", true))

	if a.n != 1 || b.n != 1 {
		t.Errorf("fanout counts = (%d, %d), want (1, 1)", a.n, b.n)
	}
}

type countingLogger struct{ n int }

func (l *countingLogger) Log(Event) { l.n++ }
