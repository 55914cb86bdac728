// Package lane provides fixed 128-bit vector values and the lane-wise
// operations the base64 kernels are written in.
//
// A U8x16 is sixteen 8-bit lanes and a U16x8 is the same 128 bits viewed as
// eight 16-bit lanes. Every operation returns a new value; nothing here keeps
// state or fails. The data flow mirrors what a 128-bit SIMD unit does (SSSE3
// PSHUFB, NEON TBL, WebAssembly i8x16.swizzle), so code written against this
// package maps onto those instructions one call per instruction.
//
// Basic usage:
//
//	v := lane.Load(src)
//	lo := lane.Swizzle(table, v.And(lane.Splat(0x0f)))
//	if lo.ReduceOr() {
//		// at least one lane is non-zero
//	}
package lane

// Lanes is the number of 8-bit lanes in a vector.
const Lanes = 16

// U8x16 is a vector of sixteen unsigned 8-bit lanes.
type U8x16 [Lanes]uint8

// U16x8 is a vector of eight unsigned 16-bit lanes.
type U16x8 [Lanes / 2]uint16

// Load copies the first 16 bytes of src into a vector.
// It panics if src is shorter than 16 bytes.
func Load(src []byte) U8x16 {
	return U8x16(src)
}

// LoadArray loads a vector from a 16-byte array.
func LoadArray(src *[Lanes]byte) U8x16 {
	return U8x16(*src)
}

// Store writes all 16 lanes to the start of dst.
// It panics if dst is shorter than 16 bytes.
func (v U8x16) Store(dst []byte) {
	*(*[Lanes]byte)(dst) = v
}

// StoreArray writes all 16 lanes to dst.
func (v U8x16) StoreArray(dst *[Lanes]byte) {
	*dst = v
}

// Splat returns a vector with every lane set to x.
func Splat(x uint8) U8x16 {
	var v U8x16
	for i := range v {
		v[i] = x
	}
	return v
}

// Cycle tiles pattern across all 16 lanes, starting again from pattern[0]
// whenever it runs out.
func Cycle(pattern ...uint8) U8x16 {
	var v U8x16
	for i := range v {
		v[i] = pattern[i%len(pattern)]
	}
	return v
}

// Cycle16 tiles pattern across all eight 16-bit lanes.
func Cycle16(pattern ...uint16) U16x8 {
	var v U16x8
	for i := range v {
		v[i] = pattern[i%len(pattern)]
	}
	return v
}

// Add is lane-wise addition with 8-bit wraparound.
func (v U8x16) Add(w U8x16) U8x16 {
	for i := range v {
		v[i] += w[i]
	}
	return v
}

// Sub is lane-wise subtraction with 8-bit wraparound.
func (v U8x16) Sub(w U8x16) U8x16 {
	for i := range v {
		v[i] -= w[i]
	}
	return v
}

// SaturatingSub is lane-wise subtraction clamped at zero.
// For example 10 - 20 = 0 (not 246).
func (v U8x16) SaturatingSub(w U8x16) U8x16 {
	for i := range v {
		if v[i] > w[i] {
			v[i] -= w[i]
		} else {
			v[i] = 0
		}
	}
	return v
}

// Equal returns a mask with 0xff in every lane where v equals w and 0
// elsewhere.
func (v U8x16) Equal(w U8x16) U8x16 {
	var m U8x16
	for i := range v {
		if v[i] == w[i] {
			m[i] = 0xff
		}
	}
	return m
}

// GreaterEqual returns a mask with 0xff in every lane where v >= w
// (unsigned) and 0 elsewhere.
func (v U8x16) GreaterEqual(w U8x16) U8x16 {
	var m U8x16
	for i := range v {
		if v[i] >= w[i] {
			m[i] = 0xff
		}
	}
	return m
}

// ShiftRight shifts every lane right by n bits, filling with zeros.
func (v U8x16) ShiftRight(n uint) U8x16 {
	for i := range v {
		v[i] >>= n
	}
	return v
}

// ShiftLeft shifts every lane left by n bits.
func (v U8x16) ShiftLeft(n uint) U8x16 {
	for i := range v {
		v[i] <<= n
	}
	return v
}

func (v U8x16) And(w U8x16) U8x16 {
	for i := range v {
		v[i] &= w[i]
	}
	return v
}

func (v U8x16) Or(w U8x16) U8x16 {
	for i := range v {
		v[i] |= w[i]
	}
	return v
}

// AndNot returns v & ^w.
func (v U8x16) AndNot(w U8x16) U8x16 {
	for i := range v {
		v[i] &^= w[i]
	}
	return v
}

func (v U8x16) Not() U8x16 {
	for i := range v {
		v[i] = ^v[i]
	}
	return v
}

// Swizzle selects lanes of tbl by the indices in idx. An index of 16 or more
// selects zero, which is what i8x16.swizzle does and what PSHUFB does for
// indices with the top bit set.
func Swizzle(tbl, idx U8x16) U8x16 {
	var v U8x16
	for i, j := range idx {
		if j < Lanes {
			v[i] = tbl[j]
		}
	}
	return v
}

// Select takes bits from a where mask is set and from b where it is clear.
func Select(mask, a, b U8x16) U8x16 {
	return a.And(mask).Or(b.AndNot(mask))
}

// RotateUp moves every lane one position up: lane i receives lane i-1 and
// lane 0 receives lane 15.
func (v U8x16) RotateUp() U8x16 {
	var r U8x16
	for i := range v {
		r[(i+1)%Lanes] = v[i]
	}
	return r
}

// RotateDown moves every lane one position down: lane i receives lane i+1
// and lane 15 receives lane 0.
func (v U8x16) RotateDown() U8x16 {
	var r U8x16
	for i := range v {
		r[i] = v[(i+1)%Lanes]
	}
	return r
}

// ReduceOr reports whether any lane is non-zero.
func (v U8x16) ReduceOr() bool {
	var acc uint8
	for _, x := range v {
		acc |= x
	}
	return acc != 0
}

// WidenLow zero-extends lanes 0..7 to 16 bits.
func (v U8x16) WidenLow() U16x8 {
	var w U16x8
	for i := range w {
		w[i] = uint16(v[i])
	}
	return w
}

// WidenHigh zero-extends lanes 8..15 to 16 bits.
func (v U8x16) WidenHigh() U16x8 {
	var w U16x8
	for i := range w {
		w[i] = uint16(v[i+len(w)])
	}
	return w
}

// Narrow truncates the lanes of lo and hi to their low bytes and packs them
// into lanes 0..7 and 8..15 respectively.
func Narrow(lo, hi U16x8) U8x16 {
	var v U8x16
	for i := range lo {
		v[i] = uint8(lo[i])
		v[i+len(lo)] = uint8(hi[i])
	}
	return v
}

// Splat16 returns a vector with every 16-bit lane set to x.
func Splat16(x uint16) U16x8 {
	return Cycle16(x)
}

func (v U16x8) And(w U16x8) U16x8 {
	for i := range v {
		v[i] &= w[i]
	}
	return v
}

func (v U16x8) Or(w U16x8) U16x8 {
	for i := range v {
		v[i] |= w[i]
	}
	return v
}

// ShiftLeft shifts every lane left by n bits.
func (v U16x8) ShiftLeft(n uint) U16x8 {
	for i := range v {
		v[i] <<= n
	}
	return v
}

// ShiftRight shifts every lane right by n bits, filling with zeros.
func (v U16x8) ShiftRight(n uint) U16x8 {
	for i := range v {
		v[i] >>= n
	}
	return v
}

// ShiftRightBy shifts lane i right by n[i] bits.
func (v U16x8) ShiftRightBy(n U16x8) U16x8 {
	for i := range v {
		v[i] >>= n[i]
	}
	return v
}

// Mul is lane-wise multiplication keeping the low 16 bits of each product.
func (v U16x8) Mul(w U16x8) U16x8 {
	for i := range v {
		v[i] *= w[i]
	}
	return v
}
