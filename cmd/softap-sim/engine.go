package main

import (
	"encoding/binary"

	"github.com/softap-project/softap-go/pkg/auth"
	"github.com/softap-project/softap-go/pkg/eapol"
	"github.com/softap-project/softap-go/pkg/rsn"
	"github.com/softap-project/softap-go/pkg/wire"
)

// engineFactory hands out simulated handshake engines. The simulator
// exercises the exchange's shape (frames, retries, timeouts, key install)
// without doing the real key derivation.
type engineFactory struct{}

func (engineFactory) NewAuthenticator(_, _ wire.MacAddr, _ []byte, local *rsn.Config) (auth.Authenticator, error) {
	return &simEngine{psk: local.Psk}, nil
}

// simEngine is a two-round stand-in for the 4-way handshake: it sends a
// frame, expects a reply, sends a second frame, and on the next reply
// installs keys and opens the port.
type simEngine struct {
	psk      []byte
	received int
}

const simMicSize = 16

func (e *simEngine) Reset() {
	e.received = 0
}

func (e *simEngine) Initiate(sink *auth.UpdateSink) error {
	sink.PushFrame(simKeyFrame(1))
	return nil
}

func (e *simEngine) OnEapolFrame(sink *auth.UpdateSink, _ eapol.KeyFrame) error {
	e.received++
	switch e.received {
	case 1:
		sink.PushFrame(simKeyFrame(3))
	case 2:
		sink.PushKey(auth.Key{ID: 0, Type: auth.KeyTypePairwise, Bytes: e.psk})
		sink.PushKey(auth.Key{ID: 1, Type: auth.KeyTypeGroup, Bytes: []byte("simulated-gtk-16")})
		sink.PushEstablished()
	}
	return nil
}

func (e *simEngine) OnEapolConf(_ *auth.UpdateSink, _ wire.EapolResultCode) error {
	return nil
}

func (e *simEngine) NegotiatedFrameIntegritySize() int {
	return simMicSize
}

// simKeyFrame builds a well-formed EAPOL-Key frame with an empty key data
// field; msg is stashed in the descriptor type byte for display.
func simKeyFrame(msg uint8) []byte {
	body := 77 + simMicSize + 2
	frame := make([]byte, 4+body)
	frame[0] = 2
	frame[1] = 3
	binary.BigEndian.PutUint16(frame[2:4], uint16(body))
	frame[4] = msg
	return frame
}
