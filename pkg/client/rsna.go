package client

import (
	"fmt"

	"github.com/softap-project/softap-go/pkg/auth"
	"github.com/softap-project/softap-go/pkg/eapol"
	"github.com/softap-project/softap-go/pkg/log"
	"github.com/softap-project/softap-go/pkg/timer"
	"github.com/softap-project/softap-go/pkg/wire"
)

// RsnaLinkState drives the key exchange for one associated station. It is
// present only while a security handshake governs the station's controlled
// port: created when association succeeds with compatible security
// parameters, discarded when negotiation completes, fails, or the station
// leaves ASSOCIATED.
type RsnaLinkState struct {
	authenticator auth.Authenticator

	// lastKeyFrame may be resent up to RsnaRequestMaxAttempts times, so it
	// is retained until the exchange completes.
	lastKeyFrame []byte

	requestAttempts    int
	requestTimeout     *timer.Handle
	negotiationTimeout *timer.Handle
}

// NewRsnaLinkState wraps a freshly constructed handshake engine.
func NewRsnaLinkState(authenticator auth.Authenticator) *RsnaLinkState {
	return &RsnaLinkState{authenticator: authenticator}
}

// RequestAttempts returns how many request timeouts have fired since the
// station last showed liveness.
func (s *RsnaLinkState) RequestAttempts() int {
	return s.requestAttempts
}

// LastKeyFrame returns the retained key frame, or nil once the exchange
// completed.
func (s *RsnaLinkState) LastKeyFrame() []byte {
	return s.lastKeyFrame
}

// initiateKeyExchange resets the engine, starts the exchange and arms both
// the per-request timer and the negotiation watchdog. It fails if the
// engine produced no outbound frame, since there would be nothing to
// transmit or retry.
func (s *RsnaLinkState) initiateKeyExchange(r *RemoteClient, ctx *Context) error {
	var sink auth.UpdateSink
	s.authenticator.Reset()
	if err := s.authenticator.Initiate(&sink); err != nil {
		return fmt.Errorf("engine initiation: %w", err)
	}
	s.processUpdates(r, ctx, &sink)

	if s.lastKeyFrame == nil {
		return ErrNoKeyFrame
	}

	s.negotiationTimeout = r.scheduleAfter(ctx, RsnaNegotiationTimeout, TimeoutRsnaNegotiation)
	s.rescheduleRequestTimeout(r, ctx)
	return nil
}

func (s *RsnaLinkState) rescheduleRequestTimeout(r *RemoteClient, ctx *Context) {
	s.requestTimeout = r.scheduleAfter(ctx, RsnaRequestTimeout, TimeoutRsnaRequest)
}

// handleTimeout consumes a fired RSNA timer. A non-nil error means the
// negotiation is over and the station must be deauthenticated.
func (s *RsnaLinkState) handleTimeout(r *RemoteClient, ctx *Context, kind TimeoutKind) error {
	switch kind {
	case TimeoutRsnaRequest:
		return s.handleRequestTimeout(r, ctx)
	case TimeoutRsnaNegotiation:
		s.negotiationTimeout = nil
		return ErrRsnaTimeout
	default:
		return fmt.Errorf("unexpected rsna timeout kind %s", kind)
	}
}

func (s *RsnaLinkState) handleRequestTimeout(r *RemoteClient, ctx *Context) error {
	s.requestTimeout = nil

	s.requestAttempts++
	if s.requestAttempts >= RsnaRequestMaxAttempts {
		return ErrRsnaTimeout
	}

	if s.lastKeyFrame == nil {
		return fmt.Errorf("no key frame available to resend")
	}

	r.sendEapolReq(ctx, s.lastKeyFrame)
	s.rescheduleRequestTimeout(r, ctx)
	return nil
}

// handleEapolFrame feeds a key frame from the station into the engine. Any
// frame from the peer proves liveness, so the attempt counter resets first.
func (s *RsnaLinkState) handleEapolFrame(r *RemoteClient, ctx *Context, data []byte) error {
	s.requestAttempts = 0

	frame, err := eapol.ParseKeyFrame(s.authenticator.NegotiatedFrameIntegritySize(), data)
	if err != nil {
		return fmt.Errorf("parse key frame: %w", err)
	}

	var sink auth.UpdateSink
	if err := s.authenticator.OnEapolFrame(&sink, frame); err != nil {
		return fmt.Errorf("engine rejected key frame: %w", err)
	}
	s.processUpdates(r, ctx, &sink)
	return nil
}

// handleEapolConf feeds the driver's delivery result into the engine.
func (s *RsnaLinkState) handleEapolConf(r *RemoteClient, ctx *Context, result wire.EapolResultCode) error {
	var sink auth.UpdateSink
	if err := s.authenticator.OnEapolConf(&sink, result); err != nil {
		return fmt.Errorf("engine rejected eapol confirm: %w", err)
	}
	s.processUpdates(r, ctx, &sink)
	return nil
}

// processUpdates acts on the engine's update batch in order.
func (s *RsnaLinkState) processUpdates(r *RemoteClient, ctx *Context, sink *auth.UpdateSink) {
	for _, update := range sink.Updates() {
		switch update.Kind {
		case auth.UpdateTxFrame:
			r.sendEapolReq(ctx, update.Frame)
			s.lastKeyFrame = update.Frame
		case auth.UpdateKey:
			r.sendKey(ctx, *update.Key)
		case auth.UpdateEstablished:
			r.sendSetControlledPort(ctx, wire.ControlledPortOpen)

			// Negotiation is complete: no more retries, no watchdog, and
			// the retained frame is no longer needed.
			s.lastKeyFrame = nil
			s.requestTimeout.Stop()
			s.requestTimeout = nil
			s.negotiationTimeout.Stop()
			s.negotiationTimeout = nil
		default:
			ctx.Logger.Log(log.NewError(r.Addr.String(),
				fmt.Errorf("unhandled engine update: %s", update.Kind), "process updates"))
		}
	}
}

// teardown stops both timers. Called whenever the link state is discarded.
func (s *RsnaLinkState) teardown() {
	s.requestTimeout.Stop()
	s.requestTimeout = nil
	s.negotiationTimeout.Stop()
	s.negotiationTimeout = nil
	s.lastKeyFrame = nil
}
