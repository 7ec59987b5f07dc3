// Package replaycache tracks the last accepted one-time code per
// identity so that a code cannot be honored twice within its validity
// window.
//
// A store keeps at most one entry per identity. An entry's expiry is
// the final second of the previous completed time window: the entry
// stays live through the window it was accepted in and becomes
// evictable only once that window has fully elapsed. Eviction is lazy;
// every update first drops entries whose expiry precedes the new
// window's cutoff, then refreshes or inserts the caller's identity.
//
// MemoryStore is the default in-process implementation: a lookup map
// and an expiry-ordered list over the same entries, mutated together
// under a single mutex so concurrent updates serialize. RedisStore
// keeps the same policy in Redis via key TTLs for deployments where
// several instances must share replay state.
//
// The store records acceptance, it does not detect reuse: comparing a
// newly supplied code against the previously accepted one is the
// responsibility of the embedding authentication pipeline.
package replaycache
