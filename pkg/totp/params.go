package totp

import "fmt"

const (
	// MinTimeStep is the shortest window the calculator accepts.
	MinTimeStep = 5
	// MaxDigits keeps codes within a 32-bit value with room to pad.
	MaxDigits = 9
)

// Params are the fully resolved parameters for a single code
// calculation.
type Params struct {
	TimeOrigin uint64    // Epoch seconds to start counting windows from (t0)
	TimeStep   uint64    // Window length in seconds
	TimeOffset int64     // Signed clock skew adjustment in seconds
	Algorithm  Algorithm // HMAC hash variant
	Digits     int       // Output code width, 1 to 9
}

// Validate enforces the parameter bounds. Resolved parameters may come
// from per-request overrides, so bounds are checked here rather than
// trusted.
func (p Params) Validate() error {
	if p.TimeStep < MinTimeStep {
		return fmt.Errorf("%w: %d is below the %d second minimum", ErrInvalidTimeStep, p.TimeStep, MinTimeStep)
	}
	if p.Digits < 1 || p.Digits > MaxDigits {
		return fmt.Errorf("%w: %d is outside [1,%d]", ErrInvalidDigits, p.Digits, MaxDigits)
	}
	if !p.Algorithm.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, p.Algorithm)
	}
	return nil
}

// Result carries a computed code along with the window counter it was
// derived from, which the replay cache needs to compute expiry.
type Result struct {
	Code      string    // Decimal code, zero-padded to the requested width
	Counter   uint64    // Window counter the code was derived from
	Algorithm Algorithm // Resolved algorithm, for diagnostics
}
