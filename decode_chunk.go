package simdb64

import "github.com/mnightingale/simdb64/internal/lane"

var (
	vValidLo       = lane.LoadArray(&validLo)
	vValidHi       = lane.LoadArray(&validHi)
	vDecodeOffsets = lane.Cycle(decodeOffsets[:]...)
	vDecodeCompact = lane.LoadArray(&decodeCompact)
	vFieldScale    = lane.Cycle16(1<<fieldShift[0], 1<<fieldShift[1], 1<<fieldShift[2], 1<<fieldShift[3])
)

// decodeChunk is the lane kernel for decoding: it decodes the 16 characters
// of src into bytes 0..11 of dst. It returns false without touching dst if
// any character is outside the alphabet.
func decodeChunk(dst, src *[chunkSize]byte) bool {
	ascii := lane.LoadArray(src)
	if invalidLanes(ascii).ReduceOr() {
		return false
	}

	sextets := ascii.Add(lane.Swizzle(vDecodeOffsets, classHash(ascii)))
	lane.Swizzle(joinSextets(sextets), vDecodeCompact).StoreArray(dst)
	return true
}

// invalidLanes returns a vector that is non-zero exactly in the lanes holding
// a character outside the alphabet.
func invalidLanes(ascii lane.U8x16) lane.U8x16 {
	lo := lane.Swizzle(vValidLo, ascii.And(lane.Splat(0x0f)))
	hi := lane.Swizzle(vValidHi, ascii.ShiftRight(4))
	return lo.And(hi)
}

// classHash maps every alphabet character to 1..7: the high nibble, less one
// for '/' so it does not share 2 with '+'.
func classHash(ascii lane.U8x16) lane.U8x16 {
	slash := ascii.Equal(lane.Splat('/')).And(lane.Splat(1))
	return ascii.ShiftRight(4).Sub(slash)
}

// joinSextets is the inverse of splitSextets. Every sextet is moved to its
// bit offset in a 16-bit word; the low byte of lane j is then merged with the
// high byte of lane j+1, giving b0, b1, b2 in the first three lanes of every
// group and junk in the fourth.
func joinSextets(sextets lane.U8x16) lane.U8x16 {
	lo := sextets.WidenLow().Mul(vFieldScale)
	hi := sextets.WidenHigh().Mul(vFieldScale)

	lowBytes := lane.Narrow(lo, hi)
	highBytes := lane.Narrow(lo.ShiftRight(8), hi.ShiftRight(8))
	return lowBytes.Or(highBytes.RotateDown())
}
