// Package ap hosts the per-station state machines of one BSS.
//
// A BSS owns the association ID pool and a table of known stations. Driver
// indications are dispatched to the owning station's state machine; a
// station whose machine returns to its initial state is forgotten, so the
// table only ever holds stations that are at least authenticated or mid
// handshake.
//
// The package also provides the YAML configuration for an access point and
// a sender that frames outgoing MLME records as CBOR for a byte transport.
package ap
