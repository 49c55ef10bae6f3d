// Package aid manages the association-identifier pool for one BSS.
//
// AIDs are small positive integers (1..wire.AidMax) naming concurrently
// associated stations. The allocator guarantees uniqueness among assigned
// AIDs and refuses assignment once the pool is exhausted; releasing an AID
// is idempotent and makes it assignable again. No reuse order is promised.
//
// The allocator is not safe for concurrent use; hosts that process clients
// in parallel must serialize access per allocator instance.
package aid
