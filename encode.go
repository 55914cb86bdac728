package simdb64

import "errors"

// ErrEmptyInput is returned when there is nothing to encode.
var ErrEmptyInput = errors.New("empty input")

// Encode returns the padded base64 encoding of src.
func Encode(src []byte) ([]byte, error) {
	return AppendEncode(nil, src)
}

// EncodeToString returns the padded base64 encoding of src as a string.
func EncodeToString(src []byte) (string, error) {
	ascii, err := Encode(src)
	if err != nil {
		return "", err
	}
	return string(ascii), nil
}

// AppendEncode appends the padded base64 encoding of src to dst and returns
// the extended slice. If src is empty it returns dst unchanged and
// ErrEmptyInput.
//
// Spare capacity of dst beyond the returned length may be overwritten.
func AppendEncode(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst, ErrEmptyInput
	}

	out := reserve(dst, PaddedLen(len(src)))

	var ascii [chunkSize]byte

	// Whole windows straight from src: read 16, consume 12.
	i := 0
	for end := encodeLoopEnd(len(src)); i != end; i += rawChunkSize {
		encodeBlock(&ascii, (*[chunkSize]byte)(src[i:i+chunkSize]))
		out.put(&ascii, chunkSize)
	}

	// At most 15 bytes are left. Encode them from a zeroed window and keep
	// only the characters that carry input bits.
	for i < len(src) {
		n := min(len(src)-i, rawChunkSize)
		var window [chunkSize]byte
		copy(window[:], src[i:i+n])
		encodeBlock(&ascii, &window)
		out.put(&ascii, EncodedLen(n))
		i += n
	}

	switch out.written() % 4 {
	case 2:
		out.pad(2)
	case 3:
		out.pad(1)
	}

	return out.commit(), nil
}
