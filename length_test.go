package simdb64

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLengths(t *testing.T) {
	require.Equal(t, 12, DecodedLen(16))
	require.Equal(t, 16, EncodedLen(12))
	require.Equal(t, 4, EncodedLen(3))
	require.Equal(t, 2, EncodedLen(1))
	require.Equal(t, 3, EncodedLen(2))
	require.Equal(t, 0, EncodedLen(0))
	require.Equal(t, 0, DecodedLen(0))

	for m, extra := range []int{0, 1, 1, 2} {
		require.Equal(t, 30+extra, DecodedLen(40+m), "n mod 4 = %d", m)
	}
	for m, extra := range []int{0, 2, 3} {
		require.Equal(t, 40+extra, EncodedLen(30+m), "n mod 3 = %d", m)
	}
}

func TestLengthsMatchStdlib(t *testing.T) {
	for n := 0; n < 1000; n++ {
		require.Equal(t, base64.StdEncoding.EncodedLen(n), PaddedLen(n), "n=%d", n)
		require.Equal(t, base64.RawStdEncoding.EncodedLen(n), EncodedLen(n), "n=%d", n)
		if n%4 != 1 {
			require.Equal(t, base64.RawStdEncoding.DecodedLen(n), DecodedLen(n), "n=%d", n)
		}
		require.Equal(t, n, DecodedLen(EncodedLen(n)), "n=%d", n)
	}
}

func TestEncodeLoopEnd(t *testing.T) {
	for n := 0; n < 500; n++ {
		end := encodeLoopEnd(n)
		require.Zero(t, end%rawChunkSize, "n=%d", n)
		require.LessOrEqual(t, end, n, "n=%d", n)
		require.LessOrEqual(t, n-end, 15, "n=%d", n)
		if end > 0 {
			// the last whole-window read must stay inside the input
			require.LessOrEqual(t, end-rawChunkSize+chunkSize, n, "n=%d", n)
		}
	}

	require.Equal(t, 0, encodeLoopEnd(11))
	require.Equal(t, 0, encodeLoopEnd(15))
	require.Equal(t, 12, encodeLoopEnd(16))
	require.Equal(t, 12, encodeLoopEnd(24))
	require.Equal(t, 24, encodeLoopEnd(28))
}
