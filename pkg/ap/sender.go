package ap

import (
	"fmt"

	"github.com/softap-project/softap-go/pkg/auth"
	"github.com/softap-project/softap-go/pkg/client"
	"github.com/softap-project/softap-go/pkg/log"
	"github.com/softap-project/softap-go/pkg/wire"
)

// Sendable is the interface for a transport that can carry an encoded
// record toward the driver.
type Sendable interface {
	Send(data []byte) error
}

// RecordSender adapts a byte transport to the state machine's sender. Each
// outgoing MLME record is CBOR encoded and handed to the transport; encode
// and delivery failures are logged, since the state machine treats sends as
// fire-and-forget.
type RecordSender struct {
	transport Sendable
	logger    log.Logger
}

// NewRecordSender creates a sender framing records for transport.
func NewRecordSender(transport Sendable, logger log.Logger) *RecordSender {
	return &RecordSender{transport: transport, logger: logger}
}

func (s *RecordSender) send(peer wire.MacAddr, record string, v any) {
	data, err := wire.Marshal(v)
	if err != nil {
		s.logger.Log(log.NewError(peer.String(), fmt.Errorf("encode %s: %w", record, err), "record sender"))
		return
	}
	if err := s.transport.Send(data); err != nil {
		s.logger.Log(log.NewError(peer.String(), fmt.Errorf("send %s: %w", record, err), "record sender"))
	}
}

func (s *RecordSender) SendAuthenticateResponse(peer wire.MacAddr, code wire.AuthenticateResultCode) {
	s.send(peer, "AuthenticateResponse", wire.AuthenticateResponse{
		PeerStaAddress: peer,
		ResultCode:     code,
	})
}

func (s *RecordSender) SendAssociateResponse(peer wire.MacAddr, code wire.AssociateResultCode, aid wire.Aid, capabilities wire.CapabilityInfo, rates []wire.SupportedRate) {
	s.send(peer, "AssociateResponse", wire.AssociateResponse{
		PeerStaAddress: peer,
		ResultCode:     code,
		AssociationID:  aid,
		CapabilityInfo: capabilities.Raw(),
		Rates:          rates,
	})
}

func (s *RecordSender) SendDeauthenticateRequest(peer wire.MacAddr, reason wire.ReasonCode) {
	s.send(peer, "DeauthenticateRequest", wire.DeauthenticateRequest{
		PeerStaAddress: peer,
		ReasonCode:     reason,
	})
}

func (s *RecordSender) SendEapolRequest(peer wire.MacAddr, frame []byte) {
	s.send(peer, "EapolRequest", wire.EapolRequest{
		PeerStaAddress: peer,
		Data:           frame,
	})
}

func (s *RecordSender) SendKey(peer wire.MacAddr, key auth.Key) {
	s.send(peer, "SetKeysRequest", wire.SetKeysRequest{
		PeerStaAddress: peer,
		KeyID:          key.ID,
		KeyType:        uint8(key.Type),
		Key:            key.Bytes,
	})
}

func (s *RecordSender) SendSetControlledPort(peer wire.MacAddr, state wire.ControlledPortState) {
	s.send(peer, "SetControlledPortRequest", wire.SetControlledPortRequest{
		PeerStaAddress: peer,
		State:          state,
	})
}

// Compile-time interface satisfaction check.
var _ client.Sender = (*RecordSender)(nil)
