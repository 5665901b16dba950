package bigint

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomReadsDeterministicSource(t *testing.T) {
	buf := make([]byte, 2*wordBytes)
	for i := range buf {
		buf[i] = byte(i + 1)
	}
	z, err := New(1).Random(bytes.NewReader(buf), Positive, 2)
	require.NoError(t, err)
	require.Equal(t, 2, z.DigitCount())

	var want0, want1 Word
	for b := 0; b < wordBytes; b++ {
		want0 |= Word(buf[b]) << uint(8*b)
		want1 |= Word(buf[wordBytes+b]) << uint(8*b)
	}
	require.Equal(t, want0, z.digits[0])
	require.Equal(t, want1, z.digits[1])
}

func TestRandomShortSourceFails(t *testing.T) {
	src := bytes.NewReader([]byte{0x01, 0x02})
	_, err := New(1).Random(src, Positive, 2)
	require.Error(t, err)
}

func TestRandomSecureStaysWithinRequestedWidth(t *testing.T) {
	z, err := New(1).RandomSecure(Positive, 4)
	require.NoError(t, err)
	require.LessOrEqual(t, z.DigitCount(), 4)
	require.Equal(t, Positive, z.SignBit())
}
