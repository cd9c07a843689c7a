package buf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestI32BE_RoundTrip(t *testing.T) {
	cases := []int32{0, 1, -1, 42, -42, 1<<31 - 1, -1 << 31, 1048648}
	for _, v := range cases {
		b := make([]byte, 4)
		PutI32BE(b, v)
		require.Equal(t, v, I32BE(b))
	}
}

func TestI32BE_KnownBytes(t *testing.T) {
	require.Equal(t, int32(0x30303030), I32BE([]byte("0000")))
	require.Equal(t, int32(-1), I32BE([]byte{0xFF, 0xFF, 0xFF, 0xFF}))
	require.Equal(t, int32(1048648), I32BE([]byte{0x00, 0x10, 0x00, 0x48}))
}

func TestI32BE_ShortBuffer(t *testing.T) {
	require.Equal(t, int32(0), I32BE([]byte{1, 2, 3}))
	require.Equal(t, uint32(0), U32BE(nil))
}

func TestAppendI32BE(t *testing.T) {
	b := AppendI32BE(nil, 258)
	require.Equal(t, []byte{0, 0, 1, 2}, b)
	b = AppendI32BE(b, -1)
	require.Equal(t, []byte{0, 0, 1, 2, 0xFF, 0xFF, 0xFF, 0xFF}, b)
}

func TestSlice(t *testing.T) {
	b := []byte{1, 2, 3, 4, 5}

	got, ok := Slice(b, 1, 3)
	require.True(t, ok)
	require.Equal(t, []byte{2, 3, 4}, got)

	_, ok = Slice(b, 4, 2)
	require.False(t, ok)

	_, ok = Slice(b, -1, 2)
	require.False(t, ok)

	_, ok = Slice(b, 2, -1)
	require.False(t, ok)

	got, ok = Slice(b, 5, 0)
	require.True(t, ok)
	require.Empty(t, got)
}

func TestHas(t *testing.T) {
	b := make([]byte, 8)
	require.True(t, Has(b, 4, 4))
	require.False(t, Has(b, 5, 4))
}
