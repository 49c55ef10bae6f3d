// Package timer provides the scheduler capability consumed by the client
// lifecycle state machine.
//
// # Model
//
// A Scheduler accepts a deadline and an opaque event tag and returns a
// Handle. When the deadline passes, the scheduler delivers the tagged event
// to its sink; stopping the handle first suppresses delivery. Every
// scheduled event carries a unique ID so a host can correlate a fired event
// with the handle that produced it and discard stragglers from states that
// have since been torn down.
//
// # Implementations
//
//   - Clock: real time, built on time.AfterFunc.
//   - Manual: virtual time for tests; events fire only when the test asks.
//
// The state machine owns its handles: whenever a state holding a handle is
// discarded, the handle is stopped. A handle is safe to stop more than once.
package timer
