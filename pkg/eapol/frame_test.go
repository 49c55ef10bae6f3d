package eapol

import (
	"encoding/binary"
	"errors"
	"testing"
)

// buildKeyFrame builds a well-formed EAPOL-Key frame with the given MIC
// size and key data.
func buildKeyFrame(micSize int, keyData []byte) []byte {
	bodyLen := keyFrameFixedLen + micSize + keyDataLenFieldLen + len(keyData)
	frame := make([]byte, headerLen+bodyLen)
	frame[0] = 2 // protocol version
	frame[1] = packetTypeKey
	binary.BigEndian.PutUint16(frame[2:4], uint16(bodyLen))
	binary.BigEndian.PutUint16(frame[headerLen+keyFrameFixedLen+micSize:], uint16(len(keyData)))
	copy(frame[headerLen+keyFrameFixedLen+micSize+keyDataLenFieldLen:], keyData)
	return frame
}

func TestParseKeyFrame(t *testing.T) {
	data := buildKeyFrame(16, []byte{0xdd, 0x00})

	f, err := ParseKeyFrame(16, data)
	if err != nil {
		t.Fatalf("ParseKeyFrame() error = %v", err)
	}
	if f.MicSize() != 16 {
		t.Errorf("MicSize() = %d, want 16", f.MicSize())
	}
	if len(f.Bytes()) != len(data) {
		t.Errorf("Bytes() length = %d, want %d", len(f.Bytes()), len(data))
	}
}

func TestParseKeyFrameTrimsTrailer(t *testing.T) {
	data := buildKeyFrame(16, nil)
	padded := append(append([]byte{}, data...), 0xff, 0xff)

	f, err := ParseKeyFrame(16, padded)
	if err != nil {
		t.Fatalf("ParseKeyFrame() error = %v", err)
	}
	if len(f.Bytes()) != len(data) {
		t.Errorf("Bytes() length = %d, want %d (trailer trimmed)", len(f.Bytes()), len(data))
	}
}

func TestParseKeyFrameErrors(t *testing.T) {
	tests := []struct {
		name    string
		micSize int
		data    []byte
		wantErr error
	}{
		{"empty", 16, nil, ErrTruncated},
		{"short header", 16, []byte{2, 3}, ErrTruncated},
		{"wrong packet type", 16, []byte{2, 0, 0, 0}, ErrNotKeyFrame},
		{"truncated body", 16, []byte{2, 3, 0xff, 0xff}, ErrTruncated},
		{"body too small for mic", 24, buildKeyFrame(16, nil), ErrBadBodyLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseKeyFrame(tt.micSize, tt.data)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseKeyFrame() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
