package totp

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrymomot/totpcode/pkg/base32"
	"github.com/dmitrymomot/totpcode/pkg/replaycache"
)

// Generator is the long-lived code generation service. It composes the
// base32 codec, the calculator and the replay store; the store is the
// only mutable state and carries its own locking, so a single Generator
// is safe for concurrent use.
type Generator struct {
	cfg   Config
	store replaycache.Store
	now   func() time.Time
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithStore supplies the replay store, e.g. a RedisStore shared across
// instances. Ignored when the configuration allows reuse.
func WithStore(s replaycache.Store) GeneratorOption {
	return func(g *Generator) {
		g.store = s
	}
}

// WithClock overrides the time source. Useful for tests and for known-
// answer generation at fixed instants.
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) {
		g.now = now
	}
}

// New creates a Generator from the given configuration. Unless reuse
// is allowed, a replay store is required and defaults to an in-process
// MemoryStore.
func New(cfg Config, opts ...GeneratorOption) (*Generator, error) {
	if _, err := cfg.Resolve(nil); err != nil {
		return nil, err
	}

	g := &Generator{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}

	if !cfg.AllowReuse && g.store == nil {
		g.store = replaycache.NewMemoryStore()
	}

	return g, nil
}

// Close releases the replay store and its entries.
func (g *Generator) Close() error {
	if g.store == nil {
		return nil
	}
	return g.store.Close()
}

// GenerateRequest describes a single code generation call.
type GenerateRequest struct {
	// Secret is the shared secret: base32-encoded text unless
	// RawSecret is set.
	Secret []byte
	// RawSecret marks Secret as already-decoded key bytes.
	RawSecret bool
	// IdentityKey scopes replay tracking; required unless the
	// generator allows code reuse.
	IdentityKey []byte
	// Overrides optionally replaces instance defaults for this
	// request.
	Overrides *Overrides
}

// Generate resolves the effective parameters, decodes the secret when
// needed, computes the code for the current window and, when reuse is
// disallowed, records the acceptance in the replay store. On any error
// no code string is returned.
func (g *Generator) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	params, err := g.cfg.Resolve(req.Overrides)
	if err != nil {
		return "", err
	}

	key := req.Secret
	if !req.RawSecret {
		if key, err = base32.DecodeString(string(req.Secret)); err != nil {
			return "", errors.Join(ErrInvalidSecret, err)
		}
	}
	if len(key) == 0 {
		return "", ErrEmptySecret
	}

	result, err := Calculate(params, key, uint64(g.now().Unix()))
	if err != nil {
		return "", err
	}

	if !g.cfg.AllowReuse {
		if len(req.IdentityKey) == 0 {
			return "", ErrMissingIdentityKey
		}
		windowStart := result.Counter * params.TimeStep
		if err := g.store.Update(ctx, req.IdentityKey, windowStart, params.TimeStep); err != nil {
			return "", err
		}
	}

	return result.Code, nil
}
