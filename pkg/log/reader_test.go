package log

import (
	"errors"
	"io"
	"path/filepath"
	"testing"
)

func writeEventFile(t *testing.T, events []Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.cbor")

	l, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger: %v", err)
	}
	for _, ev := range events {
		l.Log(ev)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return path
}

func TestReaderReadsAllEvents(t *testing.T) {
	path := writeEventFile(t, []Event{
		NewStateChange("02:00:00:00:00:02", "AUTHENTICATING", "AUTHENTICATED", "open system authentication"),
		NewMlme("02:00:00:00:00:02", "AuthenticateResponse", "SUCCESS"),
		NewError("02:00:00:00:00:03", errors.New("truncated frame"), "eapol indication"),
	})

	r, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	defer r.Close()

	var got []Event
	for {
		ev, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		got = append(got, ev)
	}

	if len(got) != 3 {
		t.Fatalf("read %d events, want 3", len(got))
	}
	if got[0].Category != CategoryStateChange {
		t.Errorf("first event category = %v, want CategoryStateChange", got[0].Category)
	}
	if got[2].Error == nil || got[2].Error.Message != "truncated frame" {
		t.Errorf("third event error payload = %+v, want message %q", got[2].Error, "truncated frame")
	}
}

func TestReaderFilters(t *testing.T) {
	path := writeEventFile(t, []Event{
		NewMlme("02:00:00:00:00:02", "AuthenticateResponse", "SUCCESS"),
		NewMlme("02:00:00:00:00:03", "AssociateResponse", "SUCCESS"),
		NewError("02:00:00:00:00:02", errors.New("boom"), ""),
	})

	category := CategoryMlme
	r, err := NewFilteredReader(path, Filter{
		ClientAddr: "02:00:00:00:00:02",
		Category:   &category,
	})
	if err != nil {
		t.Fatalf("NewFilteredReader: %v", err)
	}
	defer r.Close()

	ev, err := r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if ev.Mlme == nil || ev.Mlme.Record != "AuthenticateResponse" {
		t.Errorf("event = %+v, want AuthenticateResponse record", ev)
	}

	if _, err := r.Next(); err != io.EOF {
		t.Errorf("Next after last match = %v, want io.EOF", err)
	}
}
