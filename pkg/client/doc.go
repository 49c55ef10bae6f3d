// Package client implements the per-station lifecycle state machine of the
// software access point: authentication, association, the RSNA key-exchange
// sub-state machine, disassociation and timeout-driven recovery.
//
// # States
//
//   - AUTHENTICATING: the initial state; the station is known but not
//     authenticated.
//   - AUTHENTICATED: open-system authentication succeeded; an association
//     timeout is pending.
//   - ASSOCIATED: the station holds an AID and, when the BSS requires data
//     confidentiality, an RSNA link state driving the key exchange.
//
// # Discipline
//
// Every handler consumes the current State value and returns the next one;
// there is no observable intermediate state. Timer handles travel with the
// state that owns them and are stopped whenever that state is discarded, so
// a torn-down state cannot fire a timeout into a stale context.
//
// The package performs no locking and starts no goroutines. The host must
// deliver indications and timeouts for one client strictly in sequence.
//
// # Failure policy
//
// Protocol refusals answer the station and leave state intact or force it
// back to AUTHENTICATING; handshake failures deauthenticate the station.
// Indications that have no defined effect in the current state are refused
// or ignored, never fatal.
package client
