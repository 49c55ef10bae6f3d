package wire

// AuthenticationType identifies the authentication mechanism requested by a
// station.
type AuthenticationType uint8

const (
	// AuthTypeOpenSystem is open-system authentication, the only mechanism
	// this control plane accepts.
	AuthTypeOpenSystem AuthenticationType = 1

	// AuthTypeSharedKey is WEP shared-key authentication.
	AuthTypeSharedKey AuthenticationType = 2

	// AuthTypeFastBssTransition is fast BSS transition authentication.
	AuthTypeFastBssTransition AuthenticationType = 3

	// AuthTypeSae is simultaneous authentication of equals.
	AuthTypeSae AuthenticationType = 4
)

// String returns the authentication type name.
func (t AuthenticationType) String() string {
	switch t {
	case AuthTypeOpenSystem:
		return "OPEN_SYSTEM"
	case AuthTypeSharedKey:
		return "SHARED_KEY"
	case AuthTypeFastBssTransition:
		return "FAST_BSS_TRANSITION"
	case AuthTypeSae:
		return "SAE"
	default:
		return "UNKNOWN"
	}
}

// AuthenticateResultCode is the outcome reported in an authenticate
// response.
type AuthenticateResultCode uint8

const (
	// AuthResultSuccess indicates the station is now authenticated.
	AuthResultSuccess AuthenticateResultCode = 0

	// AuthResultRefused indicates the authentication attempt was rejected.
	AuthResultRefused AuthenticateResultCode = 1
)

// String returns the result code name.
func (c AuthenticateResultCode) String() string {
	switch c {
	case AuthResultSuccess:
		return "SUCCESS"
	case AuthResultRefused:
		return "REFUSED"
	default:
		return "UNKNOWN"
	}
}

// IsSuccess reports whether the code indicates success.
func (c AuthenticateResultCode) IsSuccess() bool {
	return c == AuthResultSuccess
}

// AssociateResultCode is the outcome reported in an associate response.
type AssociateResultCode uint8

const (
	// AssocResultSuccess indicates the station is now associated.
	AssocResultSuccess AssociateResultCode = 0

	// AssocResultRefusedReasonUnspecified rejects an association without a
	// more specific cause (e.g. AID pool exhaustion).
	AssocResultRefusedReasonUnspecified AssociateResultCode = 1

	// AssocResultRefusedCapabilitiesMismatch rejects an association whose
	// requested capabilities or security parameters cannot be supported.
	AssocResultRefusedCapabilitiesMismatch AssociateResultCode = 2
)

// String returns the result code name.
func (c AssociateResultCode) String() string {
	switch c {
	case AssocResultSuccess:
		return "SUCCESS"
	case AssocResultRefusedReasonUnspecified:
		return "REFUSED_REASON_UNSPECIFIED"
	case AssocResultRefusedCapabilitiesMismatch:
		return "REFUSED_CAPABILITIES_MISMATCH"
	default:
		return "UNKNOWN"
	}
}

// IsSuccess reports whether the code indicates success.
func (c AssociateResultCode) IsSuccess() bool {
	return c == AssocResultSuccess
}

// ReasonCode is the 802.11 reason carried in deauthentication and
// disassociation frames (IEEE Std 802.11-2016, 9.4.1.7).
type ReasonCode uint16

const (
	// ReasonUnspecified is the catch-all reason.
	ReasonUnspecified ReasonCode = 1

	// ReasonInvalidAuthentication indicates a previous authentication is no
	// longer valid.
	ReasonInvalidAuthentication ReasonCode = 2

	// ReasonInvalidElement indicates a malformed or unexpected information
	// element in a management frame.
	ReasonInvalidElement ReasonCode = 13

	// ReasonFourwayHandshakeTimeout indicates the 4-way key handshake did
	// not complete in time.
	ReasonFourwayHandshakeTimeout ReasonCode = 15

	// ReasonIeee8021XAuthFailed indicates IEEE 802.1X authentication failed.
	ReasonIeee8021XAuthFailed ReasonCode = 23
)

// String returns the reason code name.
func (r ReasonCode) String() string {
	switch r {
	case ReasonUnspecified:
		return "UNSPECIFIED"
	case ReasonInvalidAuthentication:
		return "INVALID_AUTHENTICATION"
	case ReasonInvalidElement:
		return "INVALID_ELEMENT"
	case ReasonFourwayHandshakeTimeout:
		return "FOURWAY_HANDSHAKE_TIMEOUT"
	case ReasonIeee8021XAuthFailed:
		return "IEEE_8021X_AUTH_FAILED"
	default:
		return "UNKNOWN"
	}
}

// EapolResultCode is the driver's delivery confirmation for a transmitted
// EAPoL frame.
type EapolResultCode uint8

const (
	// EapolResultSuccess indicates the frame was transmitted.
	EapolResultSuccess EapolResultCode = 0

	// EapolResultTransmissionFailure indicates the driver could not
	// transmit the frame.
	EapolResultTransmissionFailure EapolResultCode = 1
)

// String returns the result code name.
func (c EapolResultCode) String() string {
	switch c {
	case EapolResultSuccess:
		return "SUCCESS"
	case EapolResultTransmissionFailure:
		return "TRANSMISSION_FAILURE"
	default:
		return "UNKNOWN"
	}
}

// ControlledPortState gates a station's data traffic until its security
// handshake completes.
type ControlledPortState uint8

const (
	// ControlledPortClosed blocks all non-EAPoL data frames.
	ControlledPortClosed ControlledPortState = 0

	// ControlledPortOpen admits data frames; the RSNA is established.
	ControlledPortOpen ControlledPortState = 1
)

// String returns the port state name.
func (s ControlledPortState) String() string {
	switch s {
	case ControlledPortClosed:
		return "CLOSED"
	case ControlledPortOpen:
		return "OPEN"
	default:
		return "UNKNOWN"
	}
}
