// Package eapol holds the minimal EAPoL key-frame framing shared between
// the client state machine and the handshake engine. Full key-descriptor
// parsing and validation is the engine's job; this package only checks that
// received bytes have the shape of a key frame before they are handed over.
package eapol

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Frame layout constants (IEEE Std 802.1X-2010, 11.3; IEEE Std 802.11-2016,
// 12.7.2).
const (
	// headerLen covers version, packet type and body length.
	headerLen = 4

	// keyFrameFixedLen covers the key descriptor fields up to and
	// excluding the MIC: descriptor type (1), key info (2), key length
	// (2), replay counter (8), nonce (32), IV (16), RSC (8), reserved (8).
	keyFrameFixedLen = 77

	// keyDataLenFieldLen is the 2-byte key data length following the MIC.
	keyDataLenFieldLen = 2

	// packetTypeKey is the EAPOL-Key packet type.
	packetTypeKey = 3
)

// Framing errors.
var (
	ErrTruncated     = errors.New("eapol: truncated key frame")
	ErrNotKeyFrame   = errors.New("eapol: not an EAPOL-Key frame")
	ErrBadBodyLength = errors.New("eapol: body length mismatch")
)

// KeyFrame is a shape-checked EAPOL-Key frame. The bytes are retained
// verbatim; interpretation is left to the handshake engine.
type KeyFrame struct {
	raw     []byte
	micSize int
}

// ParseKeyFrame checks that data has the shape of an EAPOL-Key frame whose
// MIC field is micSize bytes, as negotiated by the handshake engine.
func ParseKeyFrame(micSize int, data []byte) (KeyFrame, error) {
	if len(data) < headerLen {
		return KeyFrame{}, ErrTruncated
	}
	if data[1] != packetTypeKey {
		return KeyFrame{}, fmt.Errorf("%w: packet type %d", ErrNotKeyFrame, data[1])
	}

	bodyLen := int(binary.BigEndian.Uint16(data[2:4]))
	if len(data) < headerLen+bodyLen {
		return KeyFrame{}, ErrTruncated
	}

	minBody := keyFrameFixedLen + micSize + keyDataLenFieldLen
	if bodyLen < minBody {
		return KeyFrame{}, fmt.Errorf("%w: body %d bytes, need at least %d",
			ErrBadBodyLength, bodyLen, minBody)
	}

	keyDataLen := int(binary.BigEndian.Uint16(data[headerLen+keyFrameFixedLen+micSize:]))
	if bodyLen < minBody+keyDataLen {
		return KeyFrame{}, fmt.Errorf("%w: key data %d bytes overruns body",
			ErrBadBodyLength, keyDataLen)
	}

	return KeyFrame{raw: data[:headerLen+bodyLen], micSize: micSize}, nil
}

// Bytes returns the frame as received, trimmed to its declared length.
func (f KeyFrame) Bytes() []byte {
	return f.raw
}

// MicSize returns the negotiated MIC size the frame was checked against.
func (f KeyFrame) MicSize() int {
	return f.micSize
}
