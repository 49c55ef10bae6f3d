package client

import (
	"errors"
	"fmt"

	"github.com/softap-project/softap-go/pkg/wire"
)

// Sentinel errors.
var (
	// ErrRsnaTimeout marks an RSNA negotiation that ran out of time or
	// retry attempts; it maps to the four-way-handshake-timeout reason.
	ErrRsnaTimeout = errors.New("rsna negotiation timed out")

	// ErrNoKeyFrame indicates the engine produced no key frame on
	// initiation, leaving nothing to transmit or retry.
	ErrNoKeyFrame = errors.New("no key frame was produced on engine initiation")

	// ErrNoRsnaLinkState indicates an EAPoL indication arrived for an
	// associated station that has no security handshake in progress.
	ErrNoRsnaLinkState = errors.New("no rsna link state")
)

// AssociationError is a rejected association, carrying the wire codes to
// report alongside the underlying cause.
type AssociationError struct {
	Err        error
	ResultCode wire.AssociateResultCode
	ReasonCode wire.ReasonCode
}

// Error returns the underlying cause with both wire codes.
func (e *AssociationError) Error() string {
	return fmt.Sprintf("association rejected (%s/%s): %v", e.ResultCode, e.ReasonCode, e.Err)
}

// Unwrap returns the underlying cause.
func (e *AssociationError) Unwrap() error {
	return e.Err
}

// rsnaReason maps an RSNA negotiation failure to the deauthentication
// reason the station receives.
func rsnaReason(err error) wire.ReasonCode {
	if errors.Is(err, ErrRsnaTimeout) {
		return wire.ReasonFourwayHandshakeTimeout
	}
	return wire.ReasonUnspecified
}
