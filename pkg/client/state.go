package client

import (
	"fmt"

	"github.com/softap-project/softap-go/pkg/aid"
	"github.com/softap-project/softap-go/pkg/timer"
	"github.com/softap-project/softap-go/pkg/wire"
)

// State is the tagged union over the three lifecycle states. Handlers
// consume the current State and return the next one; payload (timer
// handles, RSNA link state) moves with the transition and is torn down
// when its state is discarded.
type State interface {
	// Name returns the state name for logging.
	Name() string

	isState()
}

// Authenticating is the initial state. A station that leaves an
// authenticated state returns here, and the host should then forget it.
type Authenticating struct{}

// Name returns "AUTHENTICATING".
func (Authenticating) Name() string { return "AUTHENTICATING" }
func (Authenticating) isState()     {}

// Authenticated is the state after a successful open-system
// authentication. Its association timeout kicks out stations that never
// associate.
type Authenticated struct {
	timeout *timer.Handle
}

// Name returns "AUTHENTICATED".
func (*Authenticated) Name() string { return "AUTHENTICATED" }
func (*Authenticated) isState()     {}

// Associated is the state after a successful association. Rsna is nil for
// an open BSS.
type Associated struct {
	Aid  wire.Aid
	Rsna *RsnaLinkState
}

// Name returns "ASSOCIATED".
func (*Associated) Name() string { return "ASSOCIATED" }
func (*Associated) isState()     {}

// NewState returns the initial state for a newly seen station.
func NewState() State {
	return Authenticating{}
}

// Aid retrieves the association ID. ok is true iff the station is
// associated.
func Aid(s State) (a wire.Aid, ok bool) {
	if st, isAssoc := s.(*Associated); isAssoc {
		return st.Aid, true
	}
	return 0, false
}

// IsAuthenticated reports whether the station is at least authenticated
// (authenticated or associated).
func IsAuthenticated(s State) bool {
	_, isAuthenticating := s.(Authenticating)
	return !isAuthenticating
}

// association is the outcome of a successful association step, consumed
// immediately by HandleAssocInd.
type association struct {
	aid          wire.Aid
	capabilities wire.CapabilityInfo
	rates        []wire.SupportedRate
	rsna         *RsnaLinkState
}

// HandleAuthInd handles an authenticate indication.
//
// From AUTHENTICATING with open-system authentication, the station receives
// a success response and moves to AUTHENTICATED with a fresh association
// timeout. Anything else is refused without disturbing the current state.
func HandleAuthInd(s State, r *RemoteClient, ctx *Context, authType wire.AuthenticationType) State {
	st, ok := s.(Authenticating)
	if !ok {
		r.sendAuthenticateResp(ctx, wire.AuthResultRefused)
		return s
	}

	if authType != wire.AuthTypeOpenSystem {
		r.logError(ctx, fmt.Errorf("unsupported authentication type: %s", authType), "authenticate indication")
		r.sendAuthenticateResp(ctx, wire.AuthResultRefused)
		return st
	}

	timeout := r.scheduleAfter(ctx, AssociationTimeout, TimeoutAssociation)
	r.sendAuthenticateResp(ctx, wire.AuthResultSuccess)

	next := &Authenticated{timeout: timeout}
	r.logTransition(ctx, st, next, "open system authentication")
	return next
}

// HandleAssocInd handles an associate indication.
//
// From AUTHENTICATED it resolves the RSNA requirement, assigns an AID and
// answers with a success response; with an RSNA it also starts the key
// exchange. On failure the station is refused, deauthenticated and moved
// back to AUTHENTICATING. From any other state the association is refused
// and the state is unchanged.
func HandleAssocInd(s State, r *RemoteClient, ctx *Context, pool *aid.Pool,
	capabilities wire.CapabilityInfo, rates []wire.SupportedRate, peerRsne []byte) State {
	st, ok := s.(*Authenticated)
	if !ok {
		r.sendAssociateResp(ctx, wire.AssocResultRefusedReasonUnspecified, 0, 0, nil)
		return s
	}

	// Leaving AUTHENTICATED either way; the association timeout is spent.
	st.timeout.Stop()
	st.timeout = nil

	assoc, assocErr := associate(r, ctx, pool, capabilities, rates, peerRsne)
	if assocErr != nil {
		r.logError(ctx, assocErr, "associate indication")
		r.sendAssociateResp(ctx, assocErr.ResultCode, 0, 0, nil)
		r.sendDeauthenticateReq(ctx, assocErr.ReasonCode)

		next := Authenticating{}
		r.logTransition(ctx, st, next, "association rejected")
		return next
	}

	r.sendAssociateResp(ctx, wire.AssocResultSuccess, assoc.aid, assoc.capabilities, assoc.rates)

	// RSNA authentication is handled after association.
	if assoc.rsna != nil {
		if err := assoc.rsna.initiateKeyExchange(r, ctx); err != nil {
			r.logError(ctx, err, "key exchange initiation")
			r.sendDeauthenticateReq(ctx, wire.ReasonIeee8021XAuthFailed)
			assoc.rsna.teardown()
			pool.Release(assoc.aid)

			next := Authenticating{}
			r.logTransition(ctx, st, next, "key exchange initiation failed")
			return next
		}
	}

	next := &Associated{Aid: assoc.aid, Rsna: assoc.rsna}
	r.logTransition(ctx, st, next, "association success")
	return next
}

// associate assigns an AID and resolves the RSNA requirement, producing
// either a completed association or the codes to reject it with.
func associate(r *RemoteClient, ctx *Context, pool *aid.Pool,
	capabilities wire.CapabilityInfo, rates []wire.SupportedRate, peerRsne []byte) (*association, *AssociationError) {
	var rsna *RsnaLinkState
	switch {
	case peerRsne != nil && ctx.RsnConfig != nil:
		authenticator, err := ctx.Engines.NewAuthenticator(ctx.ApAddr, r.Addr, peerRsne, ctx.RsnConfig)
		if err != nil {
			return nil, &AssociationError{
				Err:        err,
				ResultCode: wire.AssocResultRefusedCapabilitiesMismatch,
				ReasonCode: wire.ReasonIeee8021XAuthFailed,
			}
		}
		rsna = NewRsnaLinkState(authenticator)
	case peerRsne == nil && ctx.RsnConfig == nil:
		// Open BSS, open client.
	default:
		return nil, &AssociationError{
			Err:        fmt.Errorf("unexpected RSN element: peer=%t bss=%t", peerRsne != nil, ctx.RsnConfig != nil),
			ResultCode: wire.AssocResultRefusedCapabilitiesMismatch,
			ReasonCode: wire.ReasonInvalidElement,
		}
	}

	assigned, err := pool.Assign()
	if err != nil {
		return nil, &AssociationError{
			Err:        err,
			ResultCode: wire.AssocResultRefusedReasonUnspecified,
			ReasonCode: wire.ReasonUnspecified,
		}
	}

	return &association{
		aid: assigned,
		// The privacy bit is set iff data confidentiality governs the BSS.
		capabilities: capabilities.WithPrivacy(rsna != nil),
		rates:        rates,
		rsna:         rsna,
	}, nil
}

// HandleDisassocInd handles a disassociate indication.
//
// From ASSOCIATED the AID is released and the station returns to
// AUTHENTICATED with a fresh association timeout. Elsewhere it is a no-op.
func HandleDisassocInd(s State, r *RemoteClient, ctx *Context, pool *aid.Pool) State {
	st, ok := s.(*Associated)
	if !ok {
		return s
	}

	if st.Rsna != nil {
		st.Rsna.teardown()
	}
	pool.Release(st.Aid)

	next := &Authenticated{timeout: r.scheduleAfter(ctx, AssociationTimeout, TimeoutAssociation)}
	r.logTransition(ctx, st, next, "disassociation")
	return next
}

// HandleEapolInd handles an EAPoL frame received from the station. It may
// advance the key exchange but never transitions the lifecycle state.
func HandleEapolInd(s State, r *RemoteClient, ctx *Context, data []byte) State {
	st, ok := s.(*Associated)
	if !ok {
		return s
	}

	if st.Rsna == nil {
		r.logError(ctx, ErrNoRsnaLinkState, "eapol indication")
		return st
	}
	if err := st.Rsna.handleEapolFrame(r, ctx, data); err != nil {
		r.logError(ctx, err, "eapol indication")
	}
	return st
}

// HandleEapolConf handles the driver's delivery confirmation for a
// transmitted EAPoL frame. It never transitions the lifecycle state.
func HandleEapolConf(s State, r *RemoteClient, ctx *Context, result wire.EapolResultCode) State {
	st, ok := s.(*Associated)
	if !ok {
		return s
	}

	if st.Rsna == nil {
		r.logError(ctx, ErrNoRsnaLinkState, "eapol confirm")
		return st
	}
	if err := st.Rsna.handleEapolConf(r, ctx, result); err != nil {
		r.logError(ctx, err, "eapol confirm")
	}
	return st
}

// HandleTimeout consumes a fired timeout.
//
// An association timeout deauthenticates an AUTHENTICATED station; an
// ASSOCIATED station cannot be timed out this way. An RSNA timeout either
// keeps the exchange alive (resend) or ends it: the station is
// deauthenticated with a reason derived from the failure, its AID is
// released, and it returns to AUTHENTICATING. Timeouts with no defined
// effect in the current state are logged and ignored.
func HandleTimeout(s State, r *RemoteClient, ctx *Context, pool *aid.Pool, kind TimeoutKind) State {
	switch kind {
	case TimeoutAssociation:
		return handleAssociationTimeout(s, r, ctx)
	case TimeoutRsnaRequest, TimeoutRsnaNegotiation:
		return handleRsnaTimeout(s, r, ctx, pool, kind)
	default:
		r.logError(ctx, fmt.Errorf("unknown timeout kind %d", kind), "timeout")
		return s
	}
}

func handleAssociationTimeout(s State, r *RemoteClient, ctx *Context) State {
	switch st := s.(type) {
	case *Authenticated:
		r.logTimeout(ctx, TimeoutAssociation, true)
		st.timeout = nil
		r.sendDeauthenticateReq(ctx, wire.ReasonInvalidAuthentication)

		next := Authenticating{}
		r.logTransition(ctx, st, next, "association timeout")
		return next
	case *Associated:
		// An associated station cannot be timed out this way.
		r.logTimeout(ctx, TimeoutAssociation, false)
		return st
	default:
		r.logError(ctx, fmt.Errorf("association timeout in state %s", s.Name()), "timeout")
		return s
	}
}

func handleRsnaTimeout(s State, r *RemoteClient, ctx *Context, pool *aid.Pool, kind TimeoutKind) State {
	st, ok := s.(*Associated)
	if !ok {
		r.logError(ctx, fmt.Errorf("%s timeout in state %s", kind, s.Name()), "timeout")
		return s
	}
	if st.Rsna == nil {
		r.logTimeout(ctx, kind, false)
		return st
	}

	r.logTimeout(ctx, kind, true)
	err := st.Rsna.handleTimeout(r, ctx, kind)
	if err == nil {
		return st
	}

	reason := rsnaReason(err)
	if reason == wire.ReasonUnspecified {
		r.logError(ctx, err, "rsna negotiation")
	}
	r.sendDeauthenticateReq(ctx, reason)
	st.Rsna.teardown()
	pool.Release(st.Aid)

	next := Authenticating{}
	r.logTransition(ctx, st, next, "rsna negotiation failed")
	return next
}
