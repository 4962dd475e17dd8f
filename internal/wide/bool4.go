package wide

import "math/bits"

// Bool4 holds 4 boolean lanes, the result of a 4-wide comparison.
type Bool4 [4]bool

// TrueBool4 is a mask with all four lanes set.
var TrueBool4 = Bool4{true, true, true, true}

// And returns the lane-wise logical AND.
func (m Bool4) And(n Bool4) Bool4 {
	var r Bool4
	for i := range m {
		r[i] = m[i] && n[i]
	}
	return r
}

// Or returns the lane-wise logical OR.
func (m Bool4) Or(n Bool4) Bool4 {
	var r Bool4
	for i := range m {
		r[i] = m[i] || n[i]
	}
	return r
}

// AndNot returns m[i] && !n[i] per lane.
func (m Bool4) AndNot(n Bool4) Bool4 {
	var r Bool4
	for i := range m {
		r[i] = m[i] && !n[i]
	}
	return r
}

// Select chooses a[i] when m[i] is true, else b[i].
func (m Bool4) Select(a, b F32x4) F32x4 {
	var r F32x4
	for i := range m {
		if m[i] {
			r[i] = a[i]
		} else {
			r[i] = b[i]
		}
	}
	return r
}

// Mask packs the four lanes into the low 4 bits of a uint32,
// lane i mapping to bit i. Used to extract live child indices during
// BVH traversal with math/bits.TrailingZeros32.
func (m Bool4) Mask() uint32 {
	var mask uint32
	for i, b := range m {
		if b {
			mask |= 1 << uint(i)
		}
	}
	return mask
}

// PopCount returns the number of set lanes.
func (m Bool4) PopCount() int {
	return bits.OnesCount32(m.Mask())
}

// Any reports whether at least one lane is set.
func (m Bool4) Any() bool {
	return m.Mask() != 0
}
