package wire

// MLME records exchanged with the driver transport. Each record is a CBOR
// map with integer keys; the peer station address is always key 1.

// AuthenticateResponse answers an authenticate indication.
//
// CBOR encoding:
//
//	{
//	  1: peerStaAddress,  // 6 bytes
//	  2: resultCode       // uint8
//	}
type AuthenticateResponse struct {
	PeerStaAddress MacAddr                `cbor:"1,keyasint"`
	ResultCode     AuthenticateResultCode `cbor:"2,keyasint"`
}

// AssociateResponse answers an associate indication. On refusal the AID is
// 0, the capability field is 0 and the rate set is empty.
//
// CBOR encoding:
//
//	{
//	  1: peerStaAddress,  // 6 bytes
//	  2: resultCode,      // uint8
//	  3: associationId,   // uint16
//	  4: capabilityInfo,  // uint16
//	  5: rates            // byte string
//	}
type AssociateResponse struct {
	PeerStaAddress MacAddr             `cbor:"1,keyasint"`
	ResultCode     AssociateResultCode `cbor:"2,keyasint"`
	AssociationID  Aid                 `cbor:"3,keyasint"`
	CapabilityInfo uint16              `cbor:"4,keyasint"`
	Rates          []SupportedRate     `cbor:"5,keyasint,omitempty"`
}

// DeauthenticateRequest asks the driver to deauthenticate a station.
//
// CBOR encoding:
//
//	{
//	  1: peerStaAddress,  // 6 bytes
//	  2: reasonCode       // uint16
//	}
type DeauthenticateRequest struct {
	PeerStaAddress MacAddr    `cbor:"1,keyasint"`
	ReasonCode     ReasonCode `cbor:"2,keyasint"`
}

// EapolRequest carries an EAPoL key frame toward a station.
//
// CBOR encoding:
//
//	{
//	  1: peerStaAddress,  // 6 bytes (destination)
//	  2: data             // byte string
//	}
type EapolRequest struct {
	PeerStaAddress MacAddr `cbor:"1,keyasint"`
	Data           []byte  `cbor:"2,keyasint"`
}

// SetKeysRequest installs derived key material in the driver.
//
// CBOR encoding:
//
//	{
//	  1: peerStaAddress,  // 6 bytes
//	  2: keyId,           // uint16
//	  3: keyType,         // uint8
//	  4: key              // byte string
//	}
type SetKeysRequest struct {
	PeerStaAddress MacAddr `cbor:"1,keyasint"`
	KeyID          uint16  `cbor:"2,keyasint"`
	KeyType        uint8   `cbor:"3,keyasint"`
	Key            []byte  `cbor:"4,keyasint"`
}

// SetControlledPortRequest opens or closes a station's controlled port.
//
// CBOR encoding:
//
//	{
//	  1: peerStaAddress,  // 6 bytes
//	  2: state            // uint8
//	}
type SetControlledPortRequest struct {
	PeerStaAddress MacAddr             `cbor:"1,keyasint"`
	State          ControlledPortState `cbor:"2,keyasint"`
}
