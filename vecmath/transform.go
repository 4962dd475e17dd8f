package vecmath

import "math"

// Transform is an affine (or projective) transform, storing the forward
// matrix alongside its cached inverse so that Inverse and the Normal
// transform are O(1) rather than recomputed per call.
type Transform struct {
	m, mInv Matrix4x4
}

// IdentityTransform returns the identity transform.
func IdentityTransform() Transform {
	id := IdentityMatrix()
	return Transform{m: id, mInv: id}
}

// NewTransform computes the inverse of mat via Gauss-Jordan elimination.
func NewTransform(mat Matrix4x4) Transform {
	return Transform{m: mat, mInv: InverseMatrix(mat)}
}

// NewTransformWithInverse builds a transform from a matrix and its known
// inverse, avoiding the elimination pass when the inverse is already known
// in closed form (Translate, Scale, the rotations).
func NewTransformWithInverse(mat, matInv Matrix4x4) Transform {
	return Transform{m: mat, mInv: matInv}
}

func (t Transform) Matrix() Matrix4x4        { return t.m }
func (t Transform) InverseMatrix() Matrix4x4 { return t.mInv }

// Inverse returns the inverse transform in O(1), since both directions are
// already cached (spec.md property 5: Inverse(Inverse(t)) == t).
func Inverse(t Transform) Transform { return Transform{m: t.mInv, mInv: t.m} }

func TransposeTransform(t Transform) Transform {
	return Transform{m: TransposeMatrix(t.m), mInv: TransposeMatrix(t.mInv)}
}

func (t Transform) Equal(u Transform) bool { return t.m.Equal(u.m) }

func (t Transform) Compose(u Transform) Transform {
	return Transform{m: t.m.Mul(u.m), mInv: u.mInv.Mul(t.mInv)}
}

func (t Transform) Point(p Point3) Point3 { return t.m.TransformPoint(p) }

func (t Transform) Vector(v Vector3) Vector3 { return t.m.TransformVector(v) }

// Normal transforms n by the inverse-transpose, required so that a normal
// stays perpendicular to the surface under a non-uniform scale.
func (t Transform) Normal(n Normal3) Normal3 { return t.mInv.TransformNormal(n) }

func (t Transform) Ray(r Ray) Ray {
	return NewRay(t.Point(r.O), t.Vector(r.D), r.TMin, r.TMax, r.Time)
}

// Bounds transforms b by transforming all eight corners and taking their
// union; correct for any affine transform including rotations, where the
// naive min/max-corner shortcut does not hold.
func (t Transform) Bounds(b Bounds3) Bounds3 {
	corners := [8]Point3{
		P3(b.Min.X, b.Min.Y, b.Min.Z),
		P3(b.Min.X, b.Min.Y, b.Max.Z),
		P3(b.Min.X, b.Max.Y, b.Min.Z),
		P3(b.Min.X, b.Max.Y, b.Max.Z),
		P3(b.Max.X, b.Min.Y, b.Min.Z),
		P3(b.Max.X, b.Min.Y, b.Max.Z),
		P3(b.Max.X, b.Max.Y, b.Min.Z),
		P3(b.Max.X, b.Max.Y, b.Max.Z),
	}
	ret := BoundsFromPoint3(t.Point(corners[0]))
	for _, c := range corners[1:] {
		ret = ret.Expand(t.Point(c))
	}
	return ret
}

func LerpTransform(t0, t1 Transform, t float64) Transform {
	return Transform{m: LerpMatrix(t0.m, t1.m, t), mInv: LerpMatrix(t0.mInv, t1.mInv, t)}
}

func Translate(d Vector3) Transform {
	m := IdentityMatrix()
	m.M[0][3], m.M[1][3], m.M[2][3] = d.X, d.Y, d.Z
	mInv := IdentityMatrix()
	mInv.M[0][3], mInv.M[1][3], mInv.M[2][3] = -d.X, -d.Y, -d.Z
	return NewTransformWithInverse(m, mInv)
}

func Scale(s Vector3) Transform {
	m := Matrix4x4{}
	m.M[0][0], m.M[1][1], m.M[2][2], m.M[3][3] = s.X, s.Y, s.Z, 1
	mInv := Matrix4x4{}
	mInv.M[0][0], mInv.M[1][1], mInv.M[2][2], mInv.M[3][3] = 1/s.X, 1/s.Y, 1/s.Z, 1
	return NewTransformWithInverse(m, mInv)
}

// RotateX returns a rotation of angle radians about the X axis.
func RotateX(angle float64) Transform {
	sin, cos := math.Sincos(angle)
	m := IdentityMatrix()
	m.M[1][1], m.M[1][2] = cos, -sin
	m.M[2][1], m.M[2][2] = sin, cos
	return NewTransformWithInverse(m, TransposeMatrix(m))
}

func RotateY(angle float64) Transform {
	sin, cos := math.Sincos(angle)
	m := IdentityMatrix()
	m.M[0][0], m.M[0][2] = cos, sin
	m.M[2][0], m.M[2][2] = -sin, cos
	return NewTransformWithInverse(m, TransposeMatrix(m))
}

func RotateZ(angle float64) Transform {
	sin, cos := math.Sincos(angle)
	m := IdentityMatrix()
	m.M[0][0], m.M[0][1] = cos, -sin
	m.M[1][0], m.M[1][1] = sin, cos
	return NewTransformWithInverse(m, TransposeMatrix(m))
}

// Rotate returns a rotation of angle radians about an arbitrary axis, via
// the standard Rodrigues-form matrix. The inverse of a rotation matrix is
// its transpose, so no elimination pass is needed.
func Rotate(angle float64, axis Vector3) Transform {
	a := axis.Normalize()
	sin, cos := math.Sincos(angle)

	var m Matrix4x4
	m.M[0][0] = a.X*a.X + (1-a.X*a.X)*cos
	m.M[0][1] = a.X*a.Y*(1-cos) - a.Z*sin
	m.M[0][2] = a.X*a.Z*(1-cos) + a.Y*sin

	m.M[1][0] = a.X*a.Y*(1-cos) + a.Z*sin
	m.M[1][1] = a.Y*a.Y + (1-a.Y*a.Y)*cos
	m.M[1][2] = a.Y*a.Z*(1-cos) - a.X*sin

	m.M[2][0] = a.X*a.Z*(1-cos) - a.Y*sin
	m.M[2][1] = a.Y*a.Z*(1-cos) + a.X*sin
	m.M[2][2] = a.Z*a.Z + (1-a.Z*a.Z)*cos

	m.M[3][3] = 1

	return NewTransformWithInverse(m, TransposeMatrix(m))
}

// LookAt builds a camera-to-world transform with the camera at pos,
// looking toward look, with up as a hint for the vertical direction.
func LookAt(pos, look Point3, up Vector3) Transform {
	dir := look.Sub(pos).Normalize()
	right := up.Normalize().Cross(dir).Normalize()
	newUp := dir.Cross(right)

	var m Matrix4x4
	m.M[0][0], m.M[1][0], m.M[2][0] = right.X, right.Y, right.Z
	m.M[0][1], m.M[1][1], m.M[2][1] = newUp.X, newUp.Y, newUp.Z
	m.M[0][2], m.M[1][2], m.M[2][2] = dir.X, dir.Y, dir.Z
	m.M[0][3], m.M[1][3], m.M[2][3] = pos.X, pos.Y, pos.Z
	m.M[3][3] = 1

	return NewTransform(m)
}

// Orthographic returns a camera-to-screen transform mapping z in
// [zNear, zFar] to [0, 1] with no perspective foreshortening.
func Orthographic(zNear, zFar float64) Transform {
	return Scale(V3(1, 1, 1/(zFar-zNear))).Compose(Translate(V3(0, 0, -zNear)))
}

// Perspective returns a camera-to-screen projective transform with the
// given vertical field of view (degrees) and near/far clip planes,
// mapping z in [zNear, zFar] to [0, 1].
func Perspective(fov, zNear, zFar float64) Transform {
	var persp Matrix4x4
	persp.M[0][0] = 1
	persp.M[1][1] = 1
	persp.M[2][2] = zFar / (zFar - zNear)
	persp.M[2][3] = -zFar * zNear / (zFar - zNear)
	persp.M[3][2] = 1

	invTanAng := 1 / math.Tan(fov*DegToRad/2)
	return NewTransform(persp).Compose(Scale(V3(invTanAng, invTanAng, 1)))
}

// AnimatedTransform interpolates between keyframe transforms by time,
// used for camera and primitive motion blur.
type AnimatedTransform struct {
	transforms []Transform
	times      []float64
}

func NewAnimatedTransform(transforms []Transform, times []float64) AnimatedTransform {
	return AnimatedTransform{transforms: transforms, times: times}
}

// Interpolate returns the transform at time t, clamping to the first or
// last keyframe outside the covered range.
func (a AnimatedTransform) Interpolate(t float64) Transform {
	if len(a.times) == 0 {
		return IdentityTransform()
	}
	if t <= a.times[0] {
		return a.transforms[0]
	}
	if t >= a.times[len(a.times)-1] {
		return a.transforms[len(a.transforms)-1]
	}

	i := 0
	for i+1 < len(a.times) && a.times[i+1] < t {
		i++
	}
	t0, t1 := a.times[i], a.times[i+1]
	return LerpTransform(a.transforms[i], a.transforms[i+1], (t-t0)/(t1-t0))
}
