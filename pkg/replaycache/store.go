package replaycache

import "context"

// Store records the acceptance of a one-time code per identity so that
// at most one code is honored per identity per time window.
type Store interface {
	// Update marks a code as accepted for identityKey in the window
	// beginning at windowStart (seconds since the configured time
	// origin). An existing entry for the identity is refreshed; stale
	// entries are evicted as a side effect.
	Update(ctx context.Context, identityKey []byte, windowStart, step uint64) error

	// Close releases the store and its entries. Updates after Close
	// fail.
	Close() error
}

// WindowExpiry returns the lazy-eviction cutoff and the entry expiry
// for a code accepted in the window beginning at windowStart. The
// cutoff is the start of the previous completed window and the expiry
// its final second, so an entry stays live through its own window and
// is evicted only on the first update in a later window. For the very
// first window there is no previous one and the cutoff clamps to zero.
func WindowExpiry(windowStart, step uint64) (cutoff, expiresAt uint64) {
	if c := windowStart / step; c > 0 {
		cutoff = (c - 1) * step
	}
	return cutoff, cutoff + step - 1
}
