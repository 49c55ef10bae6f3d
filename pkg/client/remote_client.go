package client

import (
	"time"

	"github.com/softap-project/softap-go/pkg/auth"
	"github.com/softap-project/softap-go/pkg/log"
	"github.com/softap-project/softap-go/pkg/rsn"
	"github.com/softap-project/softap-go/pkg/timer"
	"github.com/softap-project/softap-go/pkg/wire"
)

// Sender is the driver-facing messaging capability. All sends are
// fire-and-forget from the state machine's perspective; delivery failures
// surface to the host, not here.
type Sender interface {
	SendAuthenticateResponse(peer wire.MacAddr, code wire.AuthenticateResultCode)
	SendAssociateResponse(peer wire.MacAddr, code wire.AssociateResultCode, aid wire.Aid, capabilities wire.CapabilityInfo, rates []wire.SupportedRate)
	SendDeauthenticateRequest(peer wire.MacAddr, reason wire.ReasonCode)
	SendEapolRequest(peer wire.MacAddr, frame []byte)
	SendKey(peer wire.MacAddr, key auth.Key)
	SendSetControlledPort(peer wire.MacAddr, state wire.ControlledPortState)
}

// Context bundles the collaborators shared by every client of one BSS.
type Context struct {
	// ApAddr is the BSS's own link-layer address.
	ApAddr wire.MacAddr

	// Sender delivers MLME records toward the driver.
	Sender Sender

	// Scheduler provides the timeout capability.
	Scheduler timer.Scheduler

	// Engines builds a handshake engine per associating client.
	Engines rsn.EngineFactory

	// RsnConfig is the BSS's security configuration; nil for an open BSS.
	RsnConfig *rsn.Config

	// Logger receives lifecycle events. Must not be nil; use
	// log.NoopLogger to disable.
	Logger log.Logger
}

// RemoteClient is the per-station context threaded through every handler:
// the station address plus send/schedule glue over the shared Context.
type RemoteClient struct {
	// Addr is the station's link-layer address, fixed at creation.
	Addr wire.MacAddr
}

// NewRemoteClient creates the context for one station.
func NewRemoteClient(addr wire.MacAddr) *RemoteClient {
	return &RemoteClient{Addr: addr}
}

func (r *RemoteClient) scheduleAfter(ctx *Context, d time.Duration, kind TimeoutKind) *timer.Handle {
	return ctx.Scheduler.ScheduleAt(ctx.Scheduler.Now().Add(d), Event{Addr: r.Addr, Kind: kind})
}

func (r *RemoteClient) sendAuthenticateResp(ctx *Context, code wire.AuthenticateResultCode) {
	ctx.Sender.SendAuthenticateResponse(r.Addr, code)
	ctx.Logger.Log(log.NewMlme(r.Addr.String(), "AuthenticateResponse", code.String()))
}

func (r *RemoteClient) sendAssociateResp(ctx *Context, code wire.AssociateResultCode, aid wire.Aid, capabilities wire.CapabilityInfo, rates []wire.SupportedRate) {
	ctx.Sender.SendAssociateResponse(r.Addr, code, aid, capabilities, rates)
	ctx.Logger.Log(log.NewMlme(r.Addr.String(), "AssociateResponse", code.String()))
}

func (r *RemoteClient) sendDeauthenticateReq(ctx *Context, reason wire.ReasonCode) {
	ctx.Sender.SendDeauthenticateRequest(r.Addr, reason)
	ctx.Logger.Log(log.NewMlme(r.Addr.String(), "DeauthenticateRequest", reason.String()))
}

func (r *RemoteClient) sendEapolReq(ctx *Context, frame []byte) {
	ctx.Sender.SendEapolRequest(r.Addr, frame)
	ctx.Logger.Log(log.NewMlme(r.Addr.String(), "EapolRequest", ""))
}

func (r *RemoteClient) sendKey(ctx *Context, key auth.Key) {
	ctx.Sender.SendKey(r.Addr, key)
	ctx.Logger.Log(log.NewMlme(r.Addr.String(), "SetKeysRequest", key.Type.String()))
}

func (r *RemoteClient) sendSetControlledPort(ctx *Context, state wire.ControlledPortState) {
	ctx.Sender.SendSetControlledPort(r.Addr, state)
	ctx.Logger.Log(log.NewMlme(r.Addr.String(), "SetControlledPortRequest", state.String()))
}

func (r *RemoteClient) logTimeout(ctx *Context, kind TimeoutKind, handled bool) {
	ctx.Logger.Log(log.NewTimeout(r.Addr.String(), kind.String(), handled))
}

func (r *RemoteClient) logError(ctx *Context, err error, context string) {
	ctx.Logger.Log(log.NewError(r.Addr.String(), err, context))
}

func (r *RemoteClient) logTransition(ctx *Context, oldState, newState State, reason string) {
	if oldState.Name() == newState.Name() {
		return
	}
	ctx.Logger.Log(log.NewStateChange(r.Addr.String(), oldState.Name(), newState.Name(), reason))
}
