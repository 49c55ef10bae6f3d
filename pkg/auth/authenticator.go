package auth

import (
	"github.com/softap-project/softap-go/pkg/eapol"
	"github.com/softap-project/softap-go/pkg/wire"
)

// Authenticator drives the key exchange for one client. Implementations
// are stateful and single-threaded; the state machine serializes all calls.
type Authenticator interface {
	// Reset returns the engine to its initial state, discarding any
	// partial exchange.
	Reset()

	// Initiate starts the exchange, appending resulting updates to sink.
	Initiate(sink *UpdateSink) error

	// OnEapolFrame feeds a key frame received from the client into the
	// exchange, appending resulting updates to sink.
	OnEapolFrame(sink *UpdateSink, frame eapol.KeyFrame) error

	// OnEapolConf feeds the driver's delivery result for the last
	// transmitted frame into the exchange.
	OnEapolConf(sink *UpdateSink, result wire.EapolResultCode) error

	// NegotiatedFrameIntegritySize returns the MIC size, in bytes, of key
	// frames under the negotiated protection.
	NegotiatedFrameIntegritySize() int
}

// Key is derived key material to be installed in the driver.
type Key struct {
	// ID is the key identifier (e.g. GTK key index).
	ID uint16

	// Type distinguishes pairwise from group keys.
	Type KeyType

	// Bytes is the raw key material.
	Bytes []byte
}

// KeyType distinguishes the kinds of derived keys.
type KeyType uint8

const (
	// KeyTypePairwise is a pairwise transient key.
	KeyTypePairwise KeyType = 0

	// KeyTypeGroup is a group transient key.
	KeyTypeGroup KeyType = 1
)

// String returns the key type name.
func (t KeyType) String() string {
	switch t {
	case KeyTypePairwise:
		return "PAIRWISE"
	case KeyTypeGroup:
		return "GROUP"
	default:
		return "UNKNOWN"
	}
}
