package totp

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"strings"
)

// Algorithm identifies the HMAC hash used to derive one-time codes.
type Algorithm string

const (
	AlgorithmSHA1   Algorithm = "sha1"
	AlgorithmSHA224 Algorithm = "sha224"
	AlgorithmSHA256 Algorithm = "sha256"
	AlgorithmSHA384 Algorithm = "sha384"
	AlgorithmSHA512 Algorithm = "sha512"
)

// hashFunc returns the hash constructor for the algorithm, or nil when
// the algorithm is unknown.
func (a Algorithm) hashFunc() func() hash.Hash {
	switch a {
	case AlgorithmSHA1:
		return sha1.New
	case AlgorithmSHA224:
		return sha256.New224
	case AlgorithmSHA256:
		return sha256.New
	case AlgorithmSHA384:
		return sha512.New384
	case AlgorithmSHA512:
		return sha512.New
	}
	return nil
}

// Valid reports whether the algorithm is one of the supported HMAC
// variants.
func (a Algorithm) Valid() bool { return a.hashFunc() != nil }

// DigestSize returns the HMAC digest length in bytes, 0 for unknown
// algorithms.
func (a Algorithm) DigestSize() int {
	if f := a.hashFunc(); f != nil {
		return f().Size()
	}
	return 0
}

func (a Algorithm) String() string { return string(a) }

// ParseAlgorithm maps an operator-supplied name to an Algorithm. Names
// are case-insensitive and an optional "hmac" or "hmac-" prefix is
// tolerated, so "HMAC-SHA256" and "sha256" are equivalent.
func ParseAlgorithm(name string) (Algorithm, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.TrimPrefix(s, "hmac")
	s = strings.TrimPrefix(s, "-")

	a := Algorithm(s)
	if !a.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
	}
	return a, nil
}
