// Package totp generates time-based one-time codes (RFC 6238) from a
// shared secret and guards against code reuse within a validity window.
//
// The package keeps the whole pipeline self-contained: base32 secret
// decoding, HMAC-based code calculation with RFC 4226 dynamic
// truncation, and replay tracking, with no dependency on third-party
// OTP libraries.
//
// # Architecture
//
//   - calculation – Calculate in calculate.go turns resolved Params, a
//     raw secret and an instant into a zero-padded decimal code. It
//     supports SHA-1/224/256/384/512 HMAC variants and 1 to 9 digit
//     codes, and is pure and safe for concurrent use.
//
//   - resolution – Config carries instance defaults (env tag aware, see
//     LoadConfig) and Resolve layers optional per-request Overrides on
//     top, gated by AllowOverride and re-validated on every call.
//
//   - service – Generator composes the codec, the calculator and a
//     replaycache.Store. When reuse is disallowed every generated code
//     is recorded per identity, so the authentication pipeline can
//     enforce one accepted code per identity per window.
//
// # Usage
//
//	cfg, err := totp.LoadConfig()
//	if err != nil {
//	    // handle error
//	}
//
//	gen, err := totp.New(cfg)
//	if err != nil {
//	    // handle error
//	}
//	defer gen.Close()
//
//	code, err := gen.Generate(ctx, totp.GenerateRequest{
//	    Secret:      []byte("GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"),
//	    IdentityKey: []byte("alice@example.com"),
//	})
//
// Stateless known-answer generation is available through Calculate
// directly. Secrets are created with GenerateSecret.
//
// # Error Handling
//
// Every failure is reported through package sentinels (ErrInvalidSecret,
// ErrClockBeforeOrigin, ErrUnsupportedAlgorithm, ...) wrapped with
// errors.Join or fmt.Errorf %w; match them with errors.Is. No partial
// code string is ever returned alongside an error.
//
// # See Also
//
//   - RFC 4226 – HMAC-Based One-Time Password (HOTP) Algorithm
//   - RFC 6238 – Time-Based One-Time Password (TOTP) Algorithm
package totp
