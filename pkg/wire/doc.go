// Package wire defines the link-layer management vocabulary shared by the
// access-point control plane: station addresses, association identifiers,
// capability bits, result and reason codes, and the MLME request/response
// records handed to the driver transport.
//
// # Encoding
//
// Records are CBOR maps with integer keys for compactness. Encoding is
// deterministic (canonical key order) so captures are byte-stable; decoding
// is lenient so newer peers can add fields without breaking older hosts.
//
// # Scope
//
// This package owns vocabulary only. Frame construction, RSNE grammar and
// radio I/O live behind the driver transport.
package wire
