package base32

const (
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	padChar  = '='
)

// symbols maps input bytes to their 5-bit values, -1 for anything
// outside the alphabet. Decoding is case-insensitive and accepts the
// digits 0, 1 and 8 as the visually confusable letters O, L and B,
// since operator-entered secrets frequently swap them.
var symbols = func() (t [256]int8) {
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		t[alphabet[i]] = int8(i)
		t[alphabet[i]|0x20] = int8(i)
	}
	t['0'] = t['O']
	t['1'] = t['L']
	t['8'] = t['B']
	return t
}()

// EncodedLen returns the base32 length of n source bytes, padding
// included.
func EncodedLen(n int) int { return (n + 4) / 5 * 8 }

// DecodedLen returns the number of bytes n unpadded base32 symbols
// decode to.
func DecodedLen(n int) int { return n * 5 / 8 }

// Verify checks that src is well-formed base32 and returns the number
// of bytes its decoded form occupies.
//
// Padding may begin only at a position p with p%8 >= 2, must run
// uninterrupted to the end of the input, and must complete the final
// 8-symbol group exactly. After stripping padding the symbol count
// modulo 8 must be one of 0, 2, 4, 5 or 7; the remainders 1, 3 and 6
// cannot carry a whole number of output bytes.
func Verify(src []byte) (int, error) {
	unpadded := len(src)
	for pos := 0; pos < len(src); pos++ {
		c := src[pos]
		if c == padChar {
			if pos%8 < 2 {
				return 0, ErrInvalidPadding
			}
			if pos+(8-pos%8) != len(src) {
				return 0, ErrInvalidPadding
			}
			for _, r := range src[pos:] {
				if r != padChar {
					return 0, ErrInvalidPadding
				}
			}
			unpadded = pos
			break
		}
		if symbols[c] < 0 {
			return 0, ErrInvalidSymbol
		}
	}

	switch unpadded % 8 {
	case 0, 2, 4, 5, 7:
	default:
		return 0, ErrInvalidPadding
	}

	return DecodedLen(unpadded), nil
}

// Decode validates src and writes its decoded bytes into dst,
// returning the number of bytes written. A nil dst acts as a size
// probe: the input is verified and the required destination size is
// returned without decoding. A non-nil dst smaller than the decoded
// length fails with ErrBufferTooSmall.
//
// Symbols are packed MSB-first, 5 bits each; decoding stops at the
// first padding character, emitting only fully determined bytes.
func Decode(dst, src []byte) (int, error) {
	n, err := Verify(src)
	if err != nil {
		return 0, err
	}
	if dst == nil {
		return n, nil
	}
	if len(dst) < n {
		return 0, ErrBufferTooSmall
	}

	var (
		buf  uint16
		bits uint
		w    int
	)
	for _, c := range src {
		if c == padChar {
			break
		}
		buf = buf<<5 | uint16(symbols[c])
		bits += 5
		if bits >= 8 {
			bits -= 8
			dst[w] = byte(buf >> bits)
			w++
		}
	}

	return w, nil
}

// DecodeString decodes s into a freshly allocated byte slice.
func DecodeString(s string) ([]byte, error) {
	src := []byte(s)
	n, err := Verify(src)
	if err != nil {
		return nil, err
	}
	dst := make([]byte, n)
	if _, err := Decode(dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}

// Encode writes the canonical padded base32 form of src into dst,
// which must be at least EncodedLen(len(src)) bytes. It is the inverse
// of Decode and always emits the uppercase alphabet.
func Encode(dst, src []byte) {
	var (
		buf  uint16
		bits uint
		w    int
	)
	for _, b := range src {
		buf = buf<<8 | uint16(b)
		bits += 8
		for bits >= 5 {
			bits -= 5
			dst[w] = alphabet[(buf>>bits)&0x1f]
			w++
		}
	}
	if bits > 0 {
		dst[w] = alphabet[(buf<<(5-bits))&0x1f]
		w++
	}
	for w < EncodedLen(len(src)) {
		dst[w] = padChar
		w++
	}
}

// EncodeToString returns the canonical padded base32 form of src.
func EncodeToString(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	Encode(dst, src)
	return string(dst)
}
