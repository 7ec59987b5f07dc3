package base32

import "errors"

var (
	// ErrInvalidSymbol indicates the input contains a character outside
	// the base32 alphabet.
	ErrInvalidSymbol = errors.New("invalid base32 symbol")

	// ErrInvalidPadding indicates misplaced padding or an input length
	// that cannot represent whole bytes.
	ErrInvalidPadding = errors.New("invalid base32 padding")

	// ErrBufferTooSmall indicates the destination cannot hold the
	// decoded output; use Decode with a nil destination to size it.
	ErrBufferTooSmall = errors.New("destination buffer too small")
)
