package base32_test

import (
	"crypto/rand"
	"testing"

	"github.com/dmitrymomot/totpcode/pkg/base32"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    []byte
		wantErr error
	}{
		{
			name:  "empty input",
			input: "",
			want:  []byte{},
		},
		{
			name:  "rfc 4648 single byte",
			input: "MY======",
			want:  []byte("f"),
		},
		{
			name:  "rfc 4648 two bytes",
			input: "MZXQ====",
			want:  []byte("fo"),
		},
		{
			name:  "rfc 4648 three bytes",
			input: "MZXW6===",
			want:  []byte("foo"),
		},
		{
			name:  "rfc 4648 four bytes",
			input: "MZXW6YQ=",
			want:  []byte("foob"),
		},
		{
			name:  "rfc 4648 five bytes",
			input: "MZXW6YTB",
			want:  []byte("fooba"),
		},
		{
			name:  "rfc 4648 six bytes",
			input: "MZXW6YTBOI======",
			want:  []byte("foobar"),
		},
		{
			name:  "unpadded input",
			input: "MZXW6",
			want:  []byte("foo"),
		},
		{
			name:  "lowercase input",
			input: "mzxw6ytboi======",
			want:  []byte("foobar"),
		},
		{
			name:  "three symbol group",
			input: "MFRGG===",
			want:  []byte("abc"),
		},
		{
			name:  "two symbols with full padding run",
			input: "AB======",
			want:  []byte{0x00},
		},
		{
			name:  "confusable zero for O",
			input: "0R",
			want:  []byte("t"),
		},
		{
			name:  "confusable one for L",
			input: "M1",
			want:  []byte("b"),
		},
		{
			name:  "confusable eight for B",
			input: "8A",
			want:  []byte{0x08},
		},
		{
			name:    "invalid symbol",
			input:   "M!XW6===",
			wantErr: base32.ErrInvalidSymbol,
		},
		{
			name:    "padding too early",
			input:   "A=======",
			wantErr: base32.ErrInvalidPadding,
		},
		{
			name:    "padding at group start",
			input:   "========",
			wantErr: base32.ErrInvalidPadding,
		},
		{
			name:    "symbol after padding",
			input:   "AB==A===",
			wantErr: base32.ErrInvalidPadding,
		},
		{
			name:    "padding not reaching end",
			input:   "MZXW6===MZXW6===",
			wantErr: base32.ErrInvalidPadding,
		},
		{
			name:    "residue one",
			input:   "M",
			wantErr: base32.ErrInvalidPadding,
		},
		{
			name:    "residue three",
			input:   "ABC=====",
			wantErr: base32.ErrInvalidPadding,
		},
		{
			name:    "residue six",
			input:   "ABCDEF",
			wantErr: base32.ErrInvalidPadding,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := base32.DecodeString(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVerifyReportsDecodedLength(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"MY======", 1},
		{"MZXQ====", 2},
		{"MZXW6===", 3},
		{"MZXW6YQ=", 4},
		{"MZXW6YTB", 5},
		{"MZXW6YTBOI======", 6},
		{"MZXW6YTBOI", 6},
	}

	for _, tt := range tests {
		n, err := base32.Verify([]byte(tt.input))
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, n, "input %q", tt.input)
	}
}

func TestDecodeSizeProbe(t *testing.T) {
	t.Parallel()
	n, err := base32.Decode(nil, []byte("MZXW6YTBOI======"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestDecodeBufferTooSmall(t *testing.T) {
	t.Parallel()
	dst := make([]byte, 2)
	_, err := base32.Decode(dst, []byte("MZXW6==="))
	assert.ErrorIs(t, err, base32.ErrBufferTooSmall)

	// An exactly sized destination succeeds.
	dst = make([]byte, 3)
	n, err := base32.Decode(dst, []byte("MZXW6==="))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte("foo"), dst[:n])
}

func TestEncodeToString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input []byte
		want  string
	}{
		{[]byte(""), ""},
		{[]byte("f"), "MY======"},
		{[]byte("fo"), "MZXQ===="},
		{[]byte("foo"), "MZXW6==="},
		{[]byte("foob"), "MZXW6YQ="},
		{[]byte("fooba"), "MZXW6YTB"},
		{[]byte("foobar"), "MZXW6YTBOI======"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, base32.EncodeToString(tt.input), "input %q", tt.input)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	for size := 1; size <= 64; size++ {
		buf := make([]byte, size)
		_, err := rand.Read(buf)
		require.NoError(t, err)

		encoded := base32.EncodeToString(buf)
		decoded, err := base32.DecodeString(encoded)
		require.NoError(t, err, "size %d", size)
		assert.Equal(t, buf, decoded, "size %d", size)
	}
}
