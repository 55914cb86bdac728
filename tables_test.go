package simdb64

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mnightingale/simdb64/internal/lane"
)

func TestAlphabetValidity(t *testing.T) {
	for c := 0; c < 256; c++ {
		want := strings.IndexByte(alphabet, byte(c)) >= 0
		require.Equal(t, want, isAlphabet(byte(c)), "byte %#02x", c)
	}
}

// TestChunkValidityExhaustive places every byte value in every lane of an
// otherwise valid chunk.
func TestChunkValidityExhaustive(t *testing.T) {
	forEachKernel(t, func(t *testing.T) {
		for c := 0; c < 256; c++ {
			want := strings.IndexByte(alphabet, byte(c)) >= 0
			for pos := 0; pos < chunkSize; pos++ {
				window := fillerWindow
				window[pos] = byte(c)
				var raw [chunkSize]byte
				require.Equal(t, want, decodeBlock(&raw, &window), "byte %#02x in lane %d", c, pos)
			}
		}
	})
}

func TestOffsetTables(t *testing.T) {
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		require.Equal(t, c, encodeSextet(byte(i)), "sextet %d", i)
		require.Equal(t, byte(i), decodeChar(c), "char %q", c)
	}
}

func TestEncodeOffsetLanes(t *testing.T) {
	for base := 0; base < len(alphabet); base += lane.Lanes {
		var sextets lane.U8x16
		for i := range sextets {
			sextets[i] = byte(base + i)
		}
		chars := sextets.Add(encodeOffset(sextets))
		require.Equal(t, alphabet[base:base+lane.Lanes], string(chars[:]))
	}
}

func TestClassHash(t *testing.T) {
	ascii := lane.Load([]byte("AZM035+/2acz126m"))
	require.Equal(t,
		lane.U8x16{4, 5, 4, 3, 3, 3, 2, 1, 3, 6, 6, 7, 3, 3, 3, 6},
		classHash(ascii))
}

func TestInvalidLanes(t *testing.T) {
	ascii := lane.Load([]byte("AZaz09+/~\x7f\x80=-_@\x00"))
	invalid := invalidLanes(ascii)
	for i, v := range invalid {
		require.Equal(t, i >= 8, v != 0, fmt.Sprintf("lane %d", i))
	}
}
