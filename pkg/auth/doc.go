// Package auth defines the handshake-engine capability consumed by the
// client lifecycle state machine.
//
// The engine owns all key derivation and validation for one client's
// security association. The state machine never inspects cryptographic
// state; it feeds frames and transport confirmations into the engine and
// acts on the update batch the engine emits: frames to transmit, keys to
// install, and the association-established signal that opens the client's
// controlled port.
//
// Concrete engines (e.g. a WPA2-PSK 4-way handshake authenticator) live
// outside this module; pkg/auth/mocks provides a test double.
package auth
