package simdb64

import "github.com/mnightingale/simdb64/internal/lane"

var (
	vEncodeLayout  = lane.LoadArray(&encodeLayout)
	vHiBitsMask    = lane.Cycle(hiBitsMask[:]...)
	vLoBitsMask    = lane.Cycle(loBitsMask[:]...)
	vFieldShift    = lane.Cycle16(fieldShift[:]...)
	vEncodeOffsets = lane.Cycle(encodeOffsets[:]...)
)

// encodeChunk is the lane kernel for encoding: it reads bytes 0..11 of src
// and writes the 16 characters that encode them to dst.
func encodeChunk(dst, src *[chunkSize]byte) {
	sextets := splitSextets(lane.Swizzle(lane.LoadArray(src), vEncodeLayout))
	sextets.Add(encodeOffset(sextets)).StoreArray(dst)
}

// splitSextets takes 4 groups of (b0, b1, b2, 0) and returns the four 6-bit
// fields of every group, one per lane.
//
// Lane j of a group becomes ((lo[j-1] << 8) | hi[j]) >> shift[j], where lo
// keeps the bits of a byte that belong to the following field and hi keeps
// the bits that start the current one.
func splitSextets(v lane.U8x16) lane.U8x16 {
	hi := v.And(vHiBitsMask)
	lo := v.And(vLoBitsMask).RotateUp()

	fields := func(l, h lane.U16x8) lane.U16x8 {
		return l.ShiftLeft(8).Or(h).ShiftRightBy(vFieldShift)
	}
	return lane.Narrow(
		fields(lo.WidenLow(), hi.WidenLow()),
		fields(lo.WidenHigh(), hi.WidenHigh()),
	)
}

// encodeOffset returns, per lane, the value to add to a sextet to reach its
// character. The class index counts the thresholds a sextet has crossed:
// one for >= 26, one for >= 52, and satsub(v, 61) which is 1 for 62 and 2
// for 63.
func encodeOffset(sextets lane.U8x16) lane.U8x16 {
	one := lane.Splat(1)
	class := sextets.SaturatingSub(lane.Splat(61)).
		Add(sextets.GreaterEqual(lane.Splat(26)).And(one)).
		Add(sextets.GreaterEqual(lane.Splat(52)).And(one))
	return lane.Swizzle(vEncodeOffsets, class)
}
