package client

import (
	"time"

	"github.com/softap-project/softap-go/pkg/wire"
)

// Lifecycle timing constants. The association timeout is not mandated by
// 802.11; it exists to kick out stations that authenticate but never
// associate. The RSNA timeouts bound the 4-way handshake.
const (
	AssociationTimeout = 300 * time.Second

	RsnaRequestTimeout     = 1 * time.Second
	RsnaRequestMaxAttempts = 4
	RsnaNegotiationTimeout = 5 * time.Second
)

// TimeoutKind tags the timeouts the state machine schedules.
type TimeoutKind uint8

const (
	// TimeoutAssociation fires when an authenticated station has not
	// associated in time.
	TimeoutAssociation TimeoutKind = 0

	// TimeoutRsnaRequest fires when the last key frame went unanswered;
	// the frame is resent until the attempt budget runs out.
	TimeoutRsnaRequest TimeoutKind = 1

	// TimeoutRsnaNegotiation is the overall key-exchange watchdog.
	TimeoutRsnaNegotiation TimeoutKind = 2
)

// String returns the timeout kind name.
func (k TimeoutKind) String() string {
	switch k {
	case TimeoutAssociation:
		return "ASSOCIATION"
	case TimeoutRsnaRequest:
		return "RSNA_REQUEST"
	case TimeoutRsnaNegotiation:
		return "RSNA_NEGOTIATION"
	default:
		return "UNKNOWN"
	}
}

// Event is the tag scheduled with the host's timer and delivered back into
// HandleTimeout when it fires.
type Event struct {
	// Addr routes the event back to the owning client.
	Addr wire.MacAddr

	// Kind is the timeout kind to handle.
	Kind TimeoutKind
}
