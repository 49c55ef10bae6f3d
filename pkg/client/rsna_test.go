package client

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/softap-project/softap-go/pkg/auth"
	"github.com/softap-project/softap-go/pkg/auth/mocks"
	"github.com/softap-project/softap-go/pkg/eapol"
	"github.com/softap-project/softap-go/pkg/rsn"
	"github.com/softap-project/softap-go/pkg/wire"
)

func initiatedLinkState(t *testing.T, h *harness, m *mocks.MockAuthenticator) *RsnaLinkState {
	t.Helper()
	m.EXPECT().Reset().Return()
	m.EXPECT().Initiate(mock.Anything).Run(func(sink *auth.UpdateSink) {
		sink.PushFrame(buildKeyFrame(16, 0))
	}).Return(nil)

	s := NewRsnaLinkState(m)
	require.NoError(t, s.initiateKeyExchange(h.r, h.ctx))
	return s
}

func TestRsnaLinkStateInitiate(t *testing.T) {
	t.Run("arms both timers and transmits the first frame", func(t *testing.T) {
		h := newHarness(&rsn.Config{Rsne: testRsne}, nil)
		s := initiatedLinkState(t, h, mocks.NewMockAuthenticator(t))

		assert.Len(t, h.sender.eapols, 1)
		assert.NotNil(t, s.LastKeyFrame())
		assert.ElementsMatch(t, []TimeoutKind{TimeoutRsnaRequest, TimeoutRsnaNegotiation}, h.pendingKinds())
	})

	t.Run("fails without an outbound frame", func(t *testing.T) {
		m := mocks.NewMockAuthenticator(t)
		m.EXPECT().Reset().Return()
		m.EXPECT().Initiate(mock.Anything).Return(nil)

		h := newHarness(&rsn.Config{Rsne: testRsne}, nil)
		s := NewRsnaLinkState(m)

		err := s.initiateKeyExchange(h.r, h.ctx)

		require.ErrorIs(t, err, ErrNoKeyFrame)
		assert.Empty(t, h.pendingKinds())
	})

	t.Run("propagates engine errors", func(t *testing.T) {
		engineErr := errors.New("no pmk")
		m := mocks.NewMockAuthenticator(t)
		m.EXPECT().Reset().Return()
		m.EXPECT().Initiate(mock.Anything).Return(engineErr)

		h := newHarness(&rsn.Config{Rsne: testRsne}, nil)
		s := NewRsnaLinkState(m)

		err := s.initiateKeyExchange(h.r, h.ctx)

		require.ErrorIs(t, err, engineErr)
	})
}

func TestRsnaLinkStateRequestTimeout(t *testing.T) {
	t.Run("attempts accumulate until a frame arrives", func(t *testing.T) {
		m := mocks.NewMockAuthenticator(t)
		h := newHarness(&rsn.Config{Rsne: testRsne}, nil)
		s := initiatedLinkState(t, h, m)

		for i := 1; i < RsnaRequestMaxAttempts-1; i++ {
			require.NoError(t, s.handleTimeout(h.r, h.ctx, TimeoutRsnaRequest))
			assert.Equal(t, i, s.RequestAttempts())
		}

		m.EXPECT().NegotiatedFrameIntegritySize().Return(16)
		m.EXPECT().OnEapolFrame(mock.Anything, mock.Anything).Return(nil)
		require.NoError(t, s.handleEapolFrame(h.r, h.ctx, buildKeyFrame(16, 0)))
		assert.Equal(t, 0, s.RequestAttempts())
	})

	t.Run("final attempt reports a timeout", func(t *testing.T) {
		h := newHarness(&rsn.Config{Rsne: testRsne}, nil)
		s := initiatedLinkState(t, h, mocks.NewMockAuthenticator(t))
		s.requestAttempts = RsnaRequestMaxAttempts - 1

		err := s.handleTimeout(h.r, h.ctx, TimeoutRsnaRequest)

		require.ErrorIs(t, err, ErrRsnaTimeout)
	})

	t.Run("negotiation watchdog reports a timeout", func(t *testing.T) {
		h := newHarness(&rsn.Config{Rsne: testRsne}, nil)
		s := initiatedLinkState(t, h, mocks.NewMockAuthenticator(t))

		err := s.handleTimeout(h.r, h.ctx, TimeoutRsnaNegotiation)

		require.ErrorIs(t, err, ErrRsnaTimeout)
	})
}

func TestRsnaLinkStateEapol(t *testing.T) {
	t.Run("malformed frames are rejected before the engine sees them", func(t *testing.T) {
		m := mocks.NewMockAuthenticator(t)
		h := newHarness(&rsn.Config{Rsne: testRsne}, nil)
		s := initiatedLinkState(t, h, m)
		m.EXPECT().NegotiatedFrameIntegritySize().Return(16)

		err := s.handleEapolFrame(h.r, h.ctx, []byte{0x02, 0x03})

		require.ErrorIs(t, err, eapol.ErrTruncated)
	})

	t.Run("confirm results reach the engine", func(t *testing.T) {
		m := mocks.NewMockAuthenticator(t)
		h := newHarness(&rsn.Config{Rsne: testRsne}, nil)
		s := initiatedLinkState(t, h, m)
		m.EXPECT().OnEapolConf(mock.Anything, wire.EapolResultSuccess).Return(nil)

		require.NoError(t, s.handleEapolConf(h.r, h.ctx, wire.EapolResultSuccess))
	})
}

func TestRsnaLinkStateTeardown(t *testing.T) {
	h := newHarness(&rsn.Config{Rsne: testRsne}, nil)
	s := initiatedLinkState(t, h, mocks.NewMockAuthenticator(t))

	s.teardown()

	assert.Empty(t, h.pendingKinds())
	assert.Nil(t, s.LastKeyFrame())
}
