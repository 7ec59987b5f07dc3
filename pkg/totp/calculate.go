package totp

import (
	"crypto/hmac"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/dmitrymomot/totpcode/pkg/base32"
)

// Calculate derives the one-time code for the window containing now
// (epoch seconds). The time offset from p is applied to now before the
// window counter is computed. The function is pure: it performs no I/O,
// holds no state and is safe for concurrent use.
func Calculate(p Params, secret []byte, now uint64) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	if len(secret) == 0 {
		return Result{}, ErrEmptySecret
	}

	adjusted := int64(now) + p.TimeOffset
	if adjusted < 0 || uint64(adjusted) < p.TimeOrigin {
		return Result{}, ErrClockBeforeOrigin
	}
	counter := (uint64(adjusted) - p.TimeOrigin) / p.TimeStep

	// The HMAC message is the window counter as 8 big-endian bytes
	// (RFC 4226 requirement).
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	mac := hmac.New(p.Algorithm.hashFunc(), secret)
	mac.Write(msg[:])
	digest := mac.Sum(nil)

	// Dynamic truncation (RFC 4226 section 5.3): the low nibble of the
	// final byte selects a 4-byte window, whose top bit is masked off
	// to keep the value in a 31-bit range.
	offset := digest[len(digest)-1] & 0x0f
	bin := uint32(digest[offset]&0x7f)<<24 |
		uint32(digest[offset+1])<<16 |
		uint32(digest[offset+2])<<8 |
		uint32(digest[offset+3])

	code := bin % pow10(p.Digits)

	return Result{
		Code:      fmt.Sprintf("%0*d", p.Digits, code),
		Counter:   counter,
		Algorithm: p.Algorithm,
	}, nil
}

func pow10(n int) uint32 {
	result := uint32(1)
	for i := 0; i < n; i++ {
		result *= 10
	}
	return result
}

// GenerateSecret returns a new base32-encoded 160-bit secret (RFC 4226
// recommendation for cryptographic strength).
func GenerateSecret() (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Join(ErrFailedToGenerateSecret, err)
	}
	return base32.EncodeToString(buf), nil
}
