package simdb64

import "slices"

// vectorSlack is the spare capacity kept past the logical end of the output
// so the last chunk can store a whole vector.
const vectorSlack = chunkSize

// outBuffer appends to a caller's slice through a window over its spare
// capacity. Writes go into the window with full 16-byte stores; the visible
// length of the slice changes only once, in commit.
type outBuffer struct {
	buf        []byte // dst resliced to its full capacity
	start, end int
}

// reserve makes room for n more bytes plus vectorSlack after len(dst).
func reserve(dst []byte, n int) outBuffer {
	dst = slices.Grow(dst, n+vectorSlack)
	return outBuffer{buf: dst[:cap(dst)], start: len(dst), end: len(dst)}
}

// put stores all 16 bytes of v at the current end and advances the end by
// advance. Bytes past the new end are slack and get overwritten by the next
// put or dropped by commit.
func (ob *outBuffer) put(v *[chunkSize]byte, advance int) {
	copy(ob.buf[ob.end:ob.end+chunkSize], v[:])
	ob.end += advance
}

// pad appends n padding characters.
func (ob *outBuffer) pad(n int) {
	for ; n > 0; n-- {
		ob.buf[ob.end] = padChar
		ob.end++
	}
}

// written returns the number of bytes appended so far.
func (ob *outBuffer) written() int {
	return ob.end - ob.start
}

// commit returns the caller's slice extended by everything written.
func (ob *outBuffer) commit() []byte {
	return ob.buf[:ob.end]
}
