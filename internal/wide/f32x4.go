package wide

import "math"

// F32x4 holds 4 float32 lanes, one per BVH child slot.
type F32x4 [4]float32

// SplatF32x4 returns an F32x4 with all four lanes set to n.
func SplatF32x4(n float32) F32x4 {
	return F32x4{n, n, n, n}
}

// Add returns the element-wise sum.
func (v F32x4) Add(w F32x4) F32x4 {
	return F32x4{v[0] + w[0], v[1] + w[1], v[2] + w[2], v[3] + w[3]}
}

// Sub returns the element-wise difference.
func (v F32x4) Sub(w F32x4) F32x4 {
	return F32x4{v[0] - w[0], v[1] - w[1], v[2] - w[2], v[3] - w[3]}
}

// Mul returns the element-wise product.
func (v F32x4) Mul(w F32x4) F32x4 {
	return F32x4{v[0] * w[0], v[1] * w[1], v[2] * w[2], v[3] * w[3]}
}

// Min returns the element-wise minimum.
func (v F32x4) Min(w F32x4) F32x4 {
	var r F32x4
	for i := range v {
		if v[i] < w[i] {
			r[i] = v[i]
		} else {
			r[i] = w[i]
		}
	}
	return r
}

// Max returns the element-wise maximum.
func (v F32x4) Max(w F32x4) F32x4 {
	var r F32x4
	for i := range v {
		if v[i] > w[i] {
			r[i] = v[i]
		} else {
			r[i] = w[i]
		}
	}
	return r
}

// Lerp linearly interpolates each lane between v and w by t (per-lane).
func (v F32x4) Lerp(w F32x4, t float32) F32x4 {
	var r F32x4
	for i := range v {
		r[i] = v[i] + (w[i]-v[i])*t
	}
	return r
}

// Less returns a lane-wise v[i] < w[i] mask.
func (v F32x4) Less(w F32x4) Bool4 {
	var r Bool4
	for i := range v {
		r[i] = v[i] < w[i]
	}
	return r
}

// LessEqual returns a lane-wise v[i] <= w[i] mask.
func (v F32x4) LessEqual(w F32x4) Bool4 {
	var r Bool4
	for i := range v {
		r[i] = v[i] <= w[i]
	}
	return r
}

// GreaterEqual returns a lane-wise v[i] >= w[i] mask.
func (v F32x4) GreaterEqual(w F32x4) Bool4 {
	var r Bool4
	for i := range v {
		r[i] = v[i] >= w[i]
	}
	return r
}

// IsNaN returns a lane-wise NaN mask.
func (v F32x4) IsNaN() Bool4 {
	var r Bool4
	for i := range v {
		r[i] = math.IsNaN(float64(v[i]))
	}
	return r
}
