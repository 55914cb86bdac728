package simdb64

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when the input is not valid padded or unpadded
// standard base64. Errors returned by the decode functions wrap it together
// with the offending offset; test with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// fillerWindow pads the last partial chunk. 'A' is sextet 0, so the filler
// passes validation and contributes only zero bits.
var fillerWindow = [chunkSize]byte{
	'A', 'A', 'A', 'A', 'A', 'A', 'A', 'A',
	'A', 'A', 'A', 'A', 'A', 'A', 'A', 'A',
}

// Decode returns the bytes represented by the base64 input src. Trailing '='
// padding is optional. An empty input decodes to nothing.
func Decode(src []byte) ([]byte, error) {
	return AppendDecode(nil, src)
}

// DecodeString returns the bytes represented by the base64 string s.
func DecodeString(s string) ([]byte, error) {
	return AppendDecode(nil, []byte(s))
}

// AppendDecode appends the bytes represented by src to dst and returns the
// extended slice.
//
// Decoding stops at the first chunk holding a byte outside the alphabet. On
// error dst is returned with its original length; its spare capacity may hold
// partially decoded bytes and must not be used.
func AppendDecode(dst, src []byte) ([]byte, error) {
	ascii, err := trimPadding(src)
	if err != nil {
		return dst, err
	}
	if len(ascii) == 0 {
		return dst, nil
	}
	if len(ascii)%4 == 1 {
		return dst, fmt.Errorf("%w: truncated quantum at offset %d", ErrInvalidInput, len(ascii)-1)
	}

	out := reserve(dst, DecodedLen(len(ascii)))

	var raw [chunkSize]byte

	i := 0
	for ; i+chunkSize <= len(ascii); i += chunkSize {
		if !decodeBlock(&raw, (*[chunkSize]byte)(ascii[i:i+chunkSize])) {
			return dst, invalidChunk(ascii, i)
		}
		out.put(&raw, rawChunkSize)
	}

	if rest := len(ascii) - i; rest > 0 {
		window := fillerWindow
		copy(window[:], ascii[i:])
		if !decodeBlock(&raw, &window) {
			return dst, invalidChunk(ascii, i)
		}
		out.put(&raw, DecodedLen(rest))
	}

	return out.commit(), nil
}

// trimPadding strips up to two trailing '=' characters. Padding is only
// accepted on input whose length is a multiple of 4.
func trimPadding(src []byte) ([]byte, error) {
	n := len(src)
	trimmed := n
	for trimmed > 0 && n-trimmed < 2 && src[trimmed-1] == padChar {
		trimmed--
	}
	if trimmed != n && n%4 != 0 {
		return nil, fmt.Errorf("%w: padding at offset %d of %d-byte input", ErrInvalidInput, trimmed, n)
	}
	return src[:trimmed], nil
}

// invalidChunk builds the error for the chunk of ascii starting at off, which
// failed validation.
func invalidChunk(ascii []byte, off int) error {
	end := min(off+chunkSize, len(ascii))
	for j, c := range ascii[off:end] {
		if !isAlphabet(c) {
			return fmt.Errorf("%w: illegal byte %#02x at offset %d", ErrInvalidInput, c, off+j)
		}
	}
	return fmt.Errorf("%w: chunk at offset %d", ErrInvalidInput, off)
}
