package simdb64

// EncodedLen returns the number of significant base64 characters, without
// padding, needed to encode n bytes.
func EncodedLen(n int) int {
	m := n % 3
	return n/3*4 + (m + (m+1)/2)
}

// DecodedLen returns the number of bytes carried by n base64 characters
// after padding has been removed. A trailing single character (n%4 == 1)
// carries no complete byte and counts as one; such input is rejected by
// Decode.
func DecodedLen(n int) int {
	m := n % 4
	return n/4*3 + (m - m/2)
}

// PaddedLen returns the length of the padded encoding of n bytes, which is
// what Encode produces.
func PaddedLen(n int) int {
	return (n + 2) / 3 * 4
}

// encodeLoopEnd returns the input offset at which the whole-window encode
// loop stops. Every iteration reads 16 bytes while consuming 12, so the last
// iteration must start at least 16 bytes before the end of the input.
func encodeLoopEnd(n int) int {
	switch {
	case n%rawChunkSize >= 4:
		return n - n%rawChunkSize
	case n < chunkSize:
		return 0
	default:
		return n - n%rawChunkSize - rawChunkSize
	}
}
