package field

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	buf := []byte{0, 1, 2, 3, 4, 5, 6, 7}

	parts, err := Extract(buf, Range{0, 2}, Range{2, 4}, Range{6, 2}, Range{8, 0})
	require.NoError(t, err)
	require.Equal(t, [][]byte{{0, 1}, {2, 3, 4, 5}, {6, 7}, {}}, parts)

	// sub-slices are capped and can not grow into the next field
	parts[0] = append(parts[0], 0xff)
	require.Equal(t, byte(2), buf[2])
}

func TestExtractOutOfRange(t *testing.T) {
	buf := make([]byte, 8)

	for _, r := range []Range{{0, 9}, {7, 2}, {-1, 2}, {2, -1}} {
		_, err := Extract(buf, Range{0, 1}, r)
		require.ErrorIs(t, err, ErrOutOfRange, "%+v", r)
	}
}

func TestSequentialConcat(t *testing.T) {
	rs := Sequential(32, 18)
	require.Len(t, rs, 18)
	require.Equal(t, Range{Start: 0, Len: 32}, rs[0])
	require.Equal(t, Range{Start: 544, Len: 32}, rs[17])
	require.Equal(t, 576, rs[17].End())

	buf := make([]byte, 576)
	for i := range buf {
		buf[i] = byte(i)
	}
	parts, err := Extract(buf, rs...)
	require.NoError(t, err)
	require.Equal(t, buf, Concat(parts...))
}
