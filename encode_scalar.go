package simdb64

// encodeChunkScalar is the pure Go scalar encoder. It has the same contract as
// encodeChunk: bytes 0..11 of src become the 16 characters in dst.
func encodeChunkScalar(dst, src *[chunkSize]byte) {
	for g := 0; g < 4; g++ {
		b0, b1, b2 := src[3*g], src[3*g+1], src[3*g+2]
		d := dst[4*g : 4*g+4 : 4*g+4]
		d[0] = encodeSextet(b0 >> 2)
		d[1] = encodeSextet(b0&loBitsMask[0]<<4 | b1>>4)
		d[2] = encodeSextet(b1&loBitsMask[1]<<2 | b2>>6)
		d[3] = encodeSextet(b2 & loBitsMask[2])
	}
}

// encodeSextet maps 0..63 to its character using the same class index and
// offset table as the lane kernel.
func encodeSextet(s byte) byte {
	class := satsub(s, 61)
	if s >= 26 {
		class++
	}
	if s >= 52 {
		class++
	}
	return s + encodeOffsets[class]
}

func satsub(a, b byte) byte {
	if a > b {
		return a - b
	}
	return 0
}
