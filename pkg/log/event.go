package log

import (
	"time"
)

// Event represents a protocol event for one client of the BSS.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// ClientAddr is the station's link-layer address in colon-hex form.
	ClientAddr string `cbor:"2,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"3,keyasint"`

	// Type-specific payload (one of these will be set).
	StateChange *StateChangeEvent `cbor:"4,keyasint,omitempty"`
	Mlme        *MlmeEvent        `cbor:"5,keyasint,omitempty"`
	Timeout     *TimeoutEvent     `cbor:"6,keyasint,omitempty"`
	Error       *ErrorEventData   `cbor:"7,keyasint,omitempty"`
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryStateChange marks a lifecycle transition.
	CategoryStateChange Category = 0
	// CategoryMlme marks an outbound MLME record.
	CategoryMlme Category = 1
	// CategoryTimeout marks a consumed timeout.
	CategoryTimeout Category = 2
	// CategoryError marks a protocol error.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryStateChange:
		return "STATE_CHANGE"
	case CategoryMlme:
		return "MLME"
	case CategoryTimeout:
		return "TIMEOUT"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// StateChangeEvent records a lifecycle transition.
type StateChangeEvent struct {
	OldState string `cbor:"1,keyasint"`
	NewState string `cbor:"2,keyasint"`
	Reason   string `cbor:"3,keyasint,omitempty"`
}

// MlmeEvent records an outbound MLME record.
type MlmeEvent struct {
	// Record is the record name (e.g. "AssociateResponse").
	Record string `cbor:"1,keyasint"`
	// Code is the result or reason code carried, if any.
	Code string `cbor:"2,keyasint,omitempty"`
}

// TimeoutEvent records a consumed timeout.
type TimeoutEvent struct {
	// Kind is the timeout kind (e.g. "ASSOCIATION", "RSNA_REQUEST").
	Kind string `cbor:"1,keyasint"`
	// Handled reports whether the timeout had an effect in the current state.
	Handled bool `cbor:"2,keyasint"`
}

// ErrorEventData records a protocol error.
type ErrorEventData struct {
	Message string `cbor:"1,keyasint"`
	Context string `cbor:"2,keyasint,omitempty"`
}

// NewStateChange builds a state-change event for the given client.
func NewStateChange(addr string, oldState, newState, reason string) Event {
	return Event{
		Timestamp:  time.Now(),
		ClientAddr: addr,
		Category:   CategoryStateChange,
		StateChange: &StateChangeEvent{
			OldState: oldState,
			NewState: newState,
			Reason:   reason,
		},
	}
}

// NewMlme builds an outbound-record event for the given client.
func NewMlme(addr string, record, code string) Event {
	return Event{
		Timestamp:  time.Now(),
		ClientAddr: addr,
		Category:   CategoryMlme,
		Mlme:       &MlmeEvent{Record: record, Code: code},
	}
}

// NewTimeout builds a timeout event for the given client.
func NewTimeout(addr string, kind string, handled bool) Event {
	return Event{
		Timestamp:  time.Now(),
		ClientAddr: addr,
		Category:   CategoryTimeout,
		Timeout:    &TimeoutEvent{Kind: kind, Handled: handled},
	}
}

// NewError builds an error event for the given client.
func NewError(addr string, err error, context string) Event {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return Event{
		Timestamp:  time.Now(),
		ClientAddr: addr,
		Category:   CategoryError,
		Error:      &ErrorEventData{Message: msg, Context: context},
	}
}
