package simdb64

// decodeChunkScalar is the pure Go scalar decoder. It has the same contract as
// decodeChunk: the 16 characters of src become bytes 0..11 of dst, and false
// is returned without touching dst if any character is outside the alphabet.
func decodeChunkScalar(dst, src *[chunkSize]byte) bool {
	var sextets [chunkSize]byte
	for i, c := range src {
		if !isAlphabet(c) {
			return false
		}
		sextets[i] = decodeChar(c)
	}

	for g := 0; g < 4; g++ {
		s := sextets[4*g : 4*g+4 : 4*g+4]
		dst[3*g] = s[0]<<2 | s[1]>>4
		dst[3*g+1] = s[1]<<4 | s[2]>>2
		dst[3*g+2] = s[2]<<6 | s[3]
	}
	return true
}

// decodeChar maps an alphabet character to its sextet through the class hash
// and offset table shared with the lane kernel. c must be in the alphabet.
func decodeChar(c byte) byte {
	hash := c >> 4
	if c == '/' {
		hash--
	}
	return c + decodeOffsets[hash]
}
