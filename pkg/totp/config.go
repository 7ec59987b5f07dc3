package totp

import (
	"errors"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
)

// Config holds the instance defaults for code generation. Values can
// be loaded from the environment via LoadConfig or populated directly.
type Config struct {
	TimeOrigin    uint64 `env:"TOTP_TIME_ORIGIN" envDefault:"0"`        // Epoch seconds to start counting windows from
	TimeStep      uint64 `env:"TOTP_TIME_STEP" envDefault:"30"`         // Window length in seconds, minimum 5
	TimeOffset    int64  `env:"TOTP_TIME_OFFSET" envDefault:"0"`        // Signed clock skew adjustment in seconds
	Digits        int    `env:"TOTP_DIGITS" envDefault:"6"`             // Code width, 1 to 9
	Algorithm     string `env:"TOTP_ALGORITHM" envDefault:"sha1"`       // HMAC hash variant name
	AllowReuse    bool   `env:"TOTP_ALLOW_REUSE" envDefault:"false"`    // Skip replay tracking entirely
	AllowOverride bool   `env:"TOTP_ALLOW_OVERRIDE" envDefault:"false"` // Honor per-request parameter overrides
}

// LoadConfig parses the configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	return cfg, nil
}

// Overrides carries optional per-request parameter values, typically
// sourced from per-user or per-request attributes. Nil fields keep the
// instance defaults. Overrides are honored only when the instance was
// configured with AllowOverride.
type Overrides struct {
	TimeOrigin *uint64
	TimeStep   *uint64
	TimeOffset *int64
	Digits     *int
	Algorithm  *string
}

// Resolve layers request overrides over the instance defaults and
// validates the effective parameters. Override values are
// client-supplied, so bounds are re-checked on every resolution.
func (c Config) Resolve(ov *Overrides) (Params, error) {
	algo, err := ParseAlgorithm(c.Algorithm)
	if err != nil {
		return Params{}, err
	}

	p := Params{
		TimeOrigin: c.TimeOrigin,
		TimeStep:   c.TimeStep,
		TimeOffset: c.TimeOffset,
		Algorithm:  algo,
		Digits:     c.Digits,
	}

	if ov != nil && c.AllowOverride {
		if ov.TimeOrigin != nil {
			p.TimeOrigin = *ov.TimeOrigin
		}
		if ov.TimeStep != nil {
			p.TimeStep = *ov.TimeStep
		}
		if ov.TimeOffset != nil {
			p.TimeOffset = *ov.TimeOffset
		}
		if ov.Digits != nil {
			p.Digits = *ov.Digits
		}
		if ov.Algorithm != nil {
			if p.Algorithm, err = ParseAlgorithm(*ov.Algorithm); err != nil {
				return Params{}, err
			}
		}
	}

	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}
