package replaycache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig configures the connection used by a Redis-backed replay
// store.
type RedisConfig struct {
	ConnectionURL  string        `env:"REPLAY_REDIS_URL" envDefault:"redis://localhost:6379/0"` // Connection URL in the format "redis://:password@localhost:6379/0"
	RetryAttempts  int           `env:"REPLAY_REDIS_RETRY_ATTEMPTS" envDefault:"3"`             // Number of connection attempts before giving up
	RetryInterval  time.Duration `env:"REPLAY_REDIS_RETRY_INTERVAL" envDefault:"5s"`            // Delay between connection attempts
	ConnectTimeout time.Duration `env:"REPLAY_REDIS_CONNECT_TIMEOUT" envDefault:"30s"`          // Overall connection timeout
}

// Connect establishes a connection to the Redis server, retrying up to
// RetryAttempts times with RetryInterval between attempts.
func Connect(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}

	for attempt := 0; attempt < cfg.RetryAttempts; attempt++ {
		client := redis.NewClient(opt)
		if err := client.Ping(ctx).Err(); err == nil {
			return client, nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrRedisNotReady
}

// RedisStore keeps the replay state in Redis so that multiple service
// instances can share it. The policy is the same as MemoryStore's: one
// entry per identity whose value is the expiry of the previous
// completed window. Eviction is delegated to Redis key TTLs instead of
// a lazy cleanup pass.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithKeyPrefix overrides the default "totp:replay:" key prefix.
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(rs *RedisStore) {
		rs.prefix = prefix
	}
}

// NewRedisStore creates a replay store backed by the given client.
func NewRedisStore(client *redis.Client, opts ...RedisStoreOption) *RedisStore {
	rs := &RedisStore{
		client: client,
		prefix: "totp:replay:",
	}
	for _, opt := range opts {
		opt(rs)
	}
	return rs
}

// Update implements Store.
func (rs *RedisStore) Update(ctx context.Context, identityKey []byte, windowStart, step uint64) error {
	if len(identityKey) == 0 {
		return ErrEmptyIdentityKey
	}
	if step == 0 {
		return ErrInvalidTimeStep
	}

	_, expiresAt := WindowExpiry(windowStart, step)

	// An entry must survive until its own window has fully elapsed,
	// which is at most two steps from the window start.
	ttl := time.Duration(2*step) * time.Second

	key := rs.prefix + string(identityKey)
	value := strconv.FormatUint(expiresAt, 10)
	if err := rs.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

// Close releases the underlying client connection.
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}

// Key returns the Redis key used for an identity. Exposed for
// diagnostics and tests.
func (rs *RedisStore) Key(identityKey []byte) string {
	return rs.prefix + string(identityKey)
}
