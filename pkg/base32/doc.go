// Package base32 implements the RFC 4648 base32 encoding with the
// strict padding rules and confusable-tolerant alphabet used for
// operator-supplied TOTP secrets.
//
// Decoding is case-insensitive and accepts the digits 0, 1 and 8 as
// aliases for the letters O, L and B, which are routinely confused when
// secrets are transcribed by hand. Encoding always produces the
// canonical uppercase, padded form.
//
// Verify reports the exact decoded size of an input without touching a
// destination buffer, so callers can allocate precisely:
//
//	n, err := base32.Verify(src)
//	if err != nil {
//	    // malformed input
//	}
//	dst := make([]byte, n)
//	n, err = base32.Decode(dst, src)
//
// Decode with a nil destination behaves as the same size probe. All
// failures are reported through the package sentinels ErrInvalidSymbol,
// ErrInvalidPadding and ErrBufferTooSmall and can be matched with
// errors.Is.
package base32
