package totp_test

import (
	"testing"

	"github.com/dmitrymomot/totpcode/pkg/totp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseConfig() totp.Config {
	return totp.Config{
		TimeOrigin: 0,
		TimeStep:   30,
		TimeOffset: 0,
		Digits:     6,
		Algorithm:  "sha1",
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := totp.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, uint64(30), cfg.TimeStep)
	assert.Equal(t, 6, cfg.Digits)
	assert.Equal(t, "sha1", cfg.Algorithm)
	assert.False(t, cfg.AllowReuse)
	assert.False(t, cfg.AllowOverride)
}

func TestResolveDefaults(t *testing.T) {
	t.Parallel()
	params, err := baseConfig().Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, totp.AlgorithmSHA1, params.Algorithm)
	assert.Equal(t, uint64(30), params.TimeStep)
	assert.Equal(t, 6, params.Digits)
}

func TestResolveIgnoresOverridesByDefault(t *testing.T) {
	t.Parallel()
	digits := 8
	step := uint64(60)
	params, err := baseConfig().Resolve(&totp.Overrides{
		Digits:   &digits,
		TimeStep: &step,
	})
	require.NoError(t, err)
	assert.Equal(t, 6, params.Digits)
	assert.Equal(t, uint64(30), params.TimeStep)
}

func TestResolveHonorsOverridesWhenAllowed(t *testing.T) {
	t.Parallel()
	cfg := baseConfig()
	cfg.AllowOverride = true

	digits := 8
	step := uint64(60)
	offset := int64(-15)
	origin := uint64(100)
	algo := "HMAC-SHA256"
	params, err := cfg.Resolve(&totp.Overrides{
		Digits:     &digits,
		TimeStep:   &step,
		TimeOffset: &offset,
		TimeOrigin: &origin,
		Algorithm:  &algo,
	})
	require.NoError(t, err)
	assert.Equal(t, 8, params.Digits)
	assert.Equal(t, uint64(60), params.TimeStep)
	assert.Equal(t, int64(-15), params.TimeOffset)
	assert.Equal(t, uint64(100), params.TimeOrigin)
	assert.Equal(t, totp.AlgorithmSHA256, params.Algorithm)
}

func TestResolveRejectsOutOfBoundsOverrides(t *testing.T) {
	t.Parallel()
	cfg := baseConfig()
	cfg.AllowOverride = true

	step := uint64(3)
	_, err := cfg.Resolve(&totp.Overrides{TimeStep: &step})
	assert.ErrorIs(t, err, totp.ErrInvalidTimeStep)

	digits := 12
	_, err = cfg.Resolve(&totp.Overrides{Digits: &digits})
	assert.ErrorIs(t, err, totp.ErrInvalidDigits)

	algo := "md4"
	_, err = cfg.Resolve(&totp.Overrides{Algorithm: &algo})
	assert.ErrorIs(t, err, totp.ErrUnsupportedAlgorithm)
}

func TestResolveRejectsBadDefaults(t *testing.T) {
	t.Parallel()
	cfg := baseConfig()
	cfg.Algorithm = "rot13"
	_, err := cfg.Resolve(nil)
	assert.ErrorIs(t, err, totp.ErrUnsupportedAlgorithm)

	cfg = baseConfig()
	cfg.TimeStep = 1
	_, err = cfg.Resolve(nil)
	assert.ErrorIs(t, err, totp.ErrInvalidTimeStep)
}
