package ap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softap-project/softap-go/pkg/auth"
	"github.com/softap-project/softap-go/pkg/log"
	"github.com/softap-project/softap-go/pkg/wire"
)

type byteSink struct {
	frames [][]byte
	err    error
}

func (s *byteSink) Send(data []byte) error {
	if s.err != nil {
		return s.err
	}
	s.frames = append(s.frames, data)
	return nil
}

type captureLogger struct {
	events []log.Event
}

func (l *captureLogger) Log(e log.Event) {
	l.events = append(l.events, e)
}

func TestRecordSenderEncodesRecords(t *testing.T) {
	sink := &byteSink{}
	s := NewRecordSender(sink, log.NoopLogger{})

	s.SendAssociateResponse(staAddr, wire.AssocResultSuccess, 7,
		wire.CapabilityInfo(0).WithPrivacy(true), []wire.SupportedRate{0x82, 0x04})
	s.SendKey(staAddr, auth.Key{ID: 1, Type: auth.KeyTypeGroup, Bytes: []byte{0xaa}})

	require.Len(t, sink.frames, 2)

	var assoc wire.AssociateResponse
	require.NoError(t, wire.Unmarshal(sink.frames[0], &assoc))
	assert.Equal(t, staAddr, assoc.PeerStaAddress)
	assert.Equal(t, wire.AssocResultSuccess, assoc.ResultCode)
	assert.Equal(t, wire.Aid(7), assoc.AssociationID)
	assert.True(t, wire.CapabilityInfo(assoc.CapabilityInfo).Privacy())
	assert.Equal(t, []wire.SupportedRate{0x82, 0x04}, assoc.Rates)

	var keys wire.SetKeysRequest
	require.NoError(t, wire.Unmarshal(sink.frames[1], &keys))
	assert.Equal(t, uint16(1), keys.KeyID)
	assert.Equal(t, uint8(auth.KeyTypeGroup), keys.KeyType)
	assert.Equal(t, []byte{0xaa}, keys.Key)
}

func TestRecordSenderLogsDeliveryFailures(t *testing.T) {
	logger := &captureLogger{}
	s := NewRecordSender(&byteSink{err: errors.New("transport down")}, logger)

	s.SendDeauthenticateRequest(staAddr, wire.ReasonUnspecified)

	require.Len(t, logger.events, 1)
	assert.Equal(t, log.CategoryError, logger.events[0].Category)
}
