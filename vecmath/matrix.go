package vecmath

import "math"

// Matrix4x4 is a 4x4 matrix in row-major order, used to represent affine
// and projective transforms.
type Matrix4x4 struct {
	M [4][4]float64
}

// IdentityMatrix returns the 4x4 identity matrix.
func IdentityMatrix() Matrix4x4 {
	var m Matrix4x4
	for i := 0; i < 4; i++ {
		m.M[i][i] = 1
	}
	return m
}

func MatrixFromRows(rows [4][4]float64) Matrix4x4 { return Matrix4x4{M: rows} }

func (m Matrix4x4) At(i, j int) float64 { return m.M[i][j] }

func (m Matrix4x4) Mul(n Matrix4x4) Matrix4x4 {
	var r Matrix4x4
	for i := 0; i < 4; i++ {
		for k := 0; k < 4; k++ {
			var sum float64
			for j := 0; j < 4; j++ {
				sum += m.M[i][j] * n.M[j][k]
			}
			r.M[i][k] = sum
		}
	}
	return r
}

func (m Matrix4x4) Equal(n Matrix4x4) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if m.M[i][j] != n.M[i][j] {
				return false
			}
		}
	}
	return true
}

func TransposeMatrix(m Matrix4x4) Matrix4x4 {
	var r Matrix4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r.M[j][i] = m.M[i][j]
		}
	}
	return r
}

func LerpMatrix(a, b Matrix4x4, t float64) Matrix4x4 {
	var r Matrix4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r.M[i][j] = a.M[i][j] + (b.M[i][j]-a.M[i][j])*t
		}
	}
	return r
}

// InverseMatrix computes the inverse by Gauss-Jordan elimination with full
// pivoting, the same algorithm as the teacher's original numerical core
// (renoster/matrix.h Inverse). A singular input returns the identity;
// NewTransform (and LookAt and Perspective, which build on it) calls this
// without checking invertibility first.
func InverseMatrix(m Matrix4x4) Matrix4x4 {
	a := m.M
	var indxc, indxr, ipiv [4]int

	for i := 0; i < 4; i++ {
		irow, icol := 0, 0
		big := 0.0
		for j := 0; j < 4; j++ {
			if ipiv[j] != 1 {
				for k := 0; k < 4; k++ {
					if ipiv[k] == 0 {
						if math.Abs(a[j][k]) >= big {
							big = math.Abs(a[j][k])
							irow, icol = j, k
						}
					}
				}
			}
		}
		ipiv[icol]++

		if irow != icol {
			for j := 0; j < 4; j++ {
				a[irow][j], a[icol][j] = a[icol][j], a[irow][j]
			}
		}
		indxr[i] = irow
		indxc[i] = icol

		if a[icol][icol] == 0 {
			return IdentityMatrix()
		}

		pivinv := 1 / a[icol][icol]
		a[icol][icol] = 1
		for j := 0; j < 4; j++ {
			a[icol][j] *= pivinv
		}

		for j := 0; j < 4; j++ {
			if j != icol {
				save := a[j][icol]
				a[j][icol] = 0
				for k := 0; k < 4; k++ {
					a[j][k] -= a[icol][k] * save
				}
			}
		}
	}

	for i := 3; i >= 0; i-- {
		if indxr[i] != indxc[i] {
			for j := 0; j < 4; j++ {
				a[j][indxr[i]], a[j][indxc[i]] = a[j][indxc[i]], a[j][indxr[i]]
			}
		}
	}

	return Matrix4x4{M: a}
}

func (m Matrix4x4) TransformPoint(p Point3) Point3 {
	x := m.M[0][0]*p.X + m.M[0][1]*p.Y + m.M[0][2]*p.Z + m.M[0][3]
	y := m.M[1][0]*p.X + m.M[1][1]*p.Y + m.M[1][2]*p.Z + m.M[1][3]
	z := m.M[2][0]*p.X + m.M[2][1]*p.Y + m.M[2][2]*p.Z + m.M[2][3]
	w := m.M[3][0]*p.X + m.M[3][1]*p.Y + m.M[3][2]*p.Z + m.M[3][3]
	if w == 1 {
		return P3(x, y, z)
	}
	return P3(x/w, y/w, z/w)
}

func (m Matrix4x4) TransformVector(v Vector3) Vector3 {
	x := m.M[0][0]*v.X + m.M[0][1]*v.Y + m.M[0][2]*v.Z
	y := m.M[1][0]*v.X + m.M[1][1]*v.Y + m.M[1][2]*v.Z
	z := m.M[2][0]*v.X + m.M[2][1]*v.Y + m.M[2][2]*v.Z
	return V3(x, y, z)
}

// TransformNormal applies the inverse-transpose of m, as required for
// normals under a non-uniform scale. Callers pass the inverse of the
// forward transform's matrix (see Transform.Normal).
func (mInv Matrix4x4) TransformNormal(n Normal3) Normal3 {
	x := mInv.M[0][0]*n.X + mInv.M[1][0]*n.Y + mInv.M[2][0]*n.Z
	y := mInv.M[0][1]*n.X + mInv.M[1][1]*n.Y + mInv.M[2][1]*n.Z
	z := mInv.M[0][2]*n.X + mInv.M[1][2]*n.Y + mInv.M[2][2]*n.Z
	return N3(x, y, z)
}
