package replaycache

import "errors"

var (
	// ErrEmptyIdentityKey indicates an update without an identity to
	// track.
	ErrEmptyIdentityKey = errors.New("empty identity key")

	// ErrInvalidTimeStep indicates a zero time step, which would make
	// window arithmetic meaningless.
	ErrInvalidTimeStep = errors.New("invalid time step")

	// ErrStoreClosed indicates an update after Close.
	ErrStoreClosed = errors.New("replay store closed")

	// ErrStoreUnavailable indicates a transient backend failure; the
	// caller may retry the whole request.
	ErrStoreUnavailable = errors.New("replay store unavailable")

	// ErrFailedToParseRedisConnString indicates a malformed Redis
	// connection URL.
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")

	// ErrRedisNotReady indicates the Redis server could not be reached
	// within the configured retry attempts.
	ErrRedisNotReady = errors.New("redis not ready")
)
