package simdb64

// alphabet is the standard base64 alphabet; sextet i encodes as alphabet[i].
// Both kernels derive characters from the offset tables below, which are
// checked against this string in the tests.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

const padChar = '='

// encodeOffsets is added to a sextet to reach its character, indexed by the
// encode class:
//
//	class  sextets  chars  offset
//	0      0..25    A..Z   +65
//	1      26..51   a..z   +71
//	2      52..61   0..9   -4
//	3      62       +      -19
//	4      63       /      -16
var encodeOffsets = [8]uint8{65, 71, 0xfc, 0xed, 0xf0, 0, 0, 0}

// decodeOffsets is added to a character to recover its sextet, indexed by the
// class hash (c >> 4, minus one for '/'):
//
//	hash  chars       offset
//	1     /           +16
//	2     +           +19
//	3     0..9        +4
//	4, 5  A..O, P..Z  -65
//	6, 7  a..o, p..z  -71
//
// Hash 0 never survives validation.
var decodeOffsets = [8]uint8{0xff, 16, 19, 4, 0xbf, 0xbf, 0xb9, 0xb9}

// validLo and validHi are indexed by the low and high nibble of a character.
// A character is in the alphabet iff validLo[c&15] & validHi[c>>4] == 0.
//
// Each high nibble row owns one bit (0x01 for 0x2_, 0x02 for 0x3_, 0x04 for
// 0x4_ and 0x6_, 0x08 for 0x5_ and 0x7_, 0x10 for everything else); a low
// nibble sets that bit when the character in that row is not in the alphabet.
var validLo = [16]uint8{
	0x15, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11,
	0x11, 0x11, 0x13, 0x1a, 0x1b, 0x1b, 0x1b, 0x1a,
}

var validHi = [16]uint8{
	0x10, 0x10, 0x01, 0x02, 0x04, 0x08, 0x04, 0x08,
	0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10,
}

// zeroLane is a swizzle index that selects zero.
const zeroLane = 0x80

// encodeLayout spreads 12 input bytes over 16 lanes, three data lanes
// followed by one zero gap lane.
var encodeLayout = [16]uint8{
	0, 1, 2, zeroLane,
	3, 4, 5, zeroLane,
	6, 7, 8, zeroLane,
	9, 10, 11, zeroLane,
}

// decodeCompact drops the gap lanes again, packing 12 bytes into lanes 0..11.
var decodeCompact = [16]uint8{
	0, 1, 2, 4, 5, 6, 8, 9, 10, 12, 13, 14,
	zeroLane, zeroLane, zeroLane, zeroLane,
}

// Per-lane masks and shifts shared by the encode split and the decode repack.
var (
	hiBitsMask = [4]uint8{0xfc, 0xf0, 0xc0, 0x00}
	loBitsMask = [4]uint8{0x03, 0x0f, 0x3f, 0x00}
	fieldShift = [4]uint16{2, 4, 6, 8}
)

// isAlphabet reports whether c is one of A-Z a-z 0-9 + /.
func isAlphabet(c byte) bool {
	return validLo[c&0x0f]&validHi[c>>4] == 0
}
