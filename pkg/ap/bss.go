package ap

import (
	"sync"

	"github.com/softap-project/softap-go/pkg/aid"
	"github.com/softap-project/softap-go/pkg/client"
	"github.com/softap-project/softap-go/pkg/timer"
	"github.com/softap-project/softap-go/pkg/wire"
)

// BSS owns the stations of one access point. It creates a state machine
// when a station first shows up and forgets it again once the machine
// returns to its initial state, so the table only holds stations with
// standing.
//
// All methods are safe for concurrent use; dispatch into a station's state
// machine is serialized under the BSS lock.
type BSS struct {
	mu       sync.Mutex
	ctx      *client.Context
	pool     *aid.Pool
	stations map[wire.MacAddr]*station
}

type station struct {
	r     *client.RemoteClient
	state client.State
}

// NewBSS creates an empty BSS dispatching through ctx, with capacity
// concurrent associations.
func NewBSS(ctx *client.Context, capacity wire.Aid) *BSS {
	return &BSS{
		ctx:      ctx,
		pool:     aid.NewPoolWithCapacity(capacity),
		stations: make(map[wire.MacAddr]*station),
	}
}

// TimerSink returns the sink to register with the scheduler feeding this
// BSS. Fired events carrying foreign tags are ignored.
func (b *BSS) TimerSink() timer.Sink {
	return func(f timer.Fired) {
		ev, ok := f.Tag.(client.Event)
		if !ok {
			return
		}
		b.HandleTimeout(ev)
	}
}

// HandleAuthInd dispatches an authenticate indication from peer.
func (b *BSS) HandleAuthInd(peer wire.MacAddr, authType wire.AuthenticationType) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sta := b.lookupOrCreate(peer)
	sta.state = client.HandleAuthInd(sta.state, sta.r, b.ctx, authType)
	b.forgetIfIdle(peer, sta)
}

// HandleAssocInd dispatches an associate indication from peer.
func (b *BSS) HandleAssocInd(peer wire.MacAddr, capabilities wire.CapabilityInfo, rates []wire.SupportedRate, peerRsne []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sta := b.lookupOrCreate(peer)
	sta.state = client.HandleAssocInd(sta.state, sta.r, b.ctx, b.pool, capabilities, rates, peerRsne)
	b.forgetIfIdle(peer, sta)
}

// HandleDisassocInd dispatches a disassociate indication from peer.
// Unknown stations are ignored.
func (b *BSS) HandleDisassocInd(peer wire.MacAddr) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sta, ok := b.stations[peer]
	if !ok {
		return
	}
	sta.state = client.HandleDisassocInd(sta.state, sta.r, b.ctx, b.pool)
	b.forgetIfIdle(peer, sta)
}

// HandleEapolInd dispatches an EAPoL frame received from peer. Unknown
// stations are ignored.
func (b *BSS) HandleEapolInd(peer wire.MacAddr, data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sta, ok := b.stations[peer]
	if !ok {
		return
	}
	sta.state = client.HandleEapolInd(sta.state, sta.r, b.ctx, data)
	b.forgetIfIdle(peer, sta)
}

// HandleEapolConf dispatches the driver's delivery confirmation for an
// EAPoL frame sent to peer. Unknown stations are ignored.
func (b *BSS) HandleEapolConf(peer wire.MacAddr, result wire.EapolResultCode) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sta, ok := b.stations[peer]
	if !ok {
		return
	}
	sta.state = client.HandleEapolConf(sta.state, sta.r, b.ctx, result)
	b.forgetIfIdle(peer, sta)
}

// HandleTimeout dispatches a fired timeout to its station. Timeouts for
// stations already forgotten are ignored.
func (b *BSS) HandleTimeout(ev client.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sta, ok := b.stations[ev.Addr]
	if !ok {
		return
	}
	sta.state = client.HandleTimeout(sta.state, sta.r, b.ctx, b.pool, ev.Kind)
	b.forgetIfIdle(ev.Addr, sta)
}

// Aid returns peer's association ID; ok is false if peer is unknown or not
// associated.
func (b *BSS) Aid(peer wire.MacAddr) (wire.Aid, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sta, ok := b.stations[peer]
	if !ok {
		return 0, false
	}
	return client.Aid(sta.state)
}

// Stations returns the addresses of all known stations.
func (b *BSS) Stations() []wire.MacAddr {
	b.mu.Lock()
	defer b.mu.Unlock()

	addrs := make([]wire.MacAddr, 0, len(b.stations))
	for addr := range b.stations {
		addrs = append(addrs, addr)
	}
	return addrs
}

// Len returns the number of known stations.
func (b *BSS) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.stations)
}

func (b *BSS) lookupOrCreate(peer wire.MacAddr) *station {
	sta, ok := b.stations[peer]
	if !ok {
		sta = &station{r: client.NewRemoteClient(peer), state: client.NewState()}
		b.stations[peer] = sta
	}
	return sta
}

// forgetIfIdle drops a station whose machine came back to the initial
// state. Pending timers were already stopped by the transition, and the
// station is recreated fresh should it return.
func (b *BSS) forgetIfIdle(peer wire.MacAddr, sta *station) {
	if !client.IsAuthenticated(sta.state) {
		delete(b.stations, peer)
	}
}
