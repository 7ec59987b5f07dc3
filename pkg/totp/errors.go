package totp

import "errors"

var (
	ErrInvalidConfig          = errors.New("invalid TOTP configuration")
	ErrUnsupportedAlgorithm   = errors.New("unsupported HMAC algorithm")
	ErrInvalidTimeStep        = errors.New("invalid time step")
	ErrInvalidDigits          = errors.New("invalid digit count")
	ErrClockBeforeOrigin      = errors.New("adjusted time precedes time origin")
	ErrInvalidSecret          = errors.New("invalid secret")
	ErrEmptySecret            = errors.New("empty secret")
	ErrMissingIdentityKey     = errors.New("missing identity key for replay tracking")
	ErrFailedToGenerateSecret = errors.New("failed to generate secret")
)
