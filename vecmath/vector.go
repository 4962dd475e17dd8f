// Package vecmath provides the math kernel shared by every renoster
// package: fixed-dimension points, vectors, normals, a 4x4 matrix, axis
// aligned bounds, rays and affine transforms.
//
// Types follow the teacher module's value-receiver, method-chaining style
// (Add/Sub/Mul/Div/Dot/Length/Normalize/Lerp), extended from 2D to 2D/3D
// and specialized per entity (Vector, Point, Normal) because normals
// transform by the inverse-transpose while points and vectors do not.
package vecmath

import "math"

// Vector3 is a 3D displacement with magnitude and direction.
type Vector3 struct {
	X, Y, Z float64
}

// V3 constructs a Vector3.
func V3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func (v Vector3) Add(w Vector3) Vector3 { return Vector3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }
func (v Vector3) Sub(w Vector3) Vector3 { return Vector3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }
func (v Vector3) Mul(s float64) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }
func (v Vector3) Div(s float64) Vector3 { return Vector3{v.X / s, v.Y / s, v.Z / s} }
func (v Vector3) Neg() Vector3          { return Vector3{-v.X, -v.Y, -v.Z} }

// Mul3 returns the component-wise product, used for RGB-like triples and
// for per-axis scaling.
func (v Vector3) Mul3(w Vector3) Vector3 { return Vector3{v.X * w.X, v.Y * w.Y, v.Z * w.Z} }

func (v Vector3) Dot(w Vector3) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

func (v Vector3) Length() float64      { return math.Sqrt(v.Dot(v)) }
func (v Vector3) LengthSq() float64    { return v.Dot(v) }
func (v Vector3) Distance(w Vector3) float64   { return v.Sub(w).Length() }
func (v Vector3) DistanceSq(w Vector3) float64 { return v.Sub(w).LengthSq() }

// Normalize returns a unit vector in the same direction. Returns the zero
// vector for a zero-length input, matching the 2D teacher behavior.
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	if l == 0 {
		return Vector3{}
	}
	return v.Div(l)
}

func (v Vector3) Lerp(w Vector3, t float64) Vector3 {
	return Vector3{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
		Z: v.Z + (w.Z-v.Z)*t,
	}
}

func (v Vector3) Abs() Vector3 {
	return Vector3{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)}
}

func (v Vector3) Min(w Vector3) Vector3 {
	return Vector3{math.Min(v.X, w.X), math.Min(v.Y, w.Y), math.Min(v.Z, w.Z)}
}

func (v Vector3) Max(w Vector3) Vector3 {
	return Vector3{math.Max(v.X, w.X), math.Max(v.Y, w.Y), math.Max(v.Z, w.Z)}
}

// MaxComponent returns the value of the largest component.
func (v Vector3) MaxComponent() float64 {
	return math.Max(v.X, math.Max(v.Y, v.Z))
}

// MaxDimension returns the axis (0=X,1=Y,2=Z) of the largest component.
func (v Vector3) MaxDimension() int {
	switch {
	case v.X > v.Y && v.X > v.Z:
		return 0
	case v.Y > v.Z:
		return 1
	default:
		return 2
	}
}

func (v Vector3) Get(axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func (v Vector3) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// HasNaN reports whether any component is NaN.
func (v Vector3) HasNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// ToPoint converts a displacement to a position.
func (v Vector3) ToPoint() Point3 { return Point3(v) }

// ToNormal reinterprets the vector as a (non-transforming) normal.
func (v Vector3) ToNormal() Normal3 { return Normal3(v) }

// Vector2 is a 2D displacement, used for screen/film-space offsets.
type Vector2 struct {
	X, Y float64
}

func V2(x, y float64) Vector2 { return Vector2{X: x, Y: y} }

func (v Vector2) Add(w Vector2) Vector2 { return Vector2{v.X + w.X, v.Y + w.Y} }
func (v Vector2) Sub(w Vector2) Vector2 { return Vector2{v.X - w.X, v.Y - w.Y} }
func (v Vector2) Mul(s float64) Vector2 { return Vector2{v.X * s, v.Y * s} }
func (v Vector2) Div(s float64) Vector2 { return Vector2{v.X / s, v.Y / s} }
func (v Vector2) Dot(w Vector2) float64 { return v.X*w.X + v.Y*w.Y }
func (v Vector2) Length() float64       { return math.Sqrt(v.Dot(v)) }

// Vector2i is an integer 2D displacement (tile/pixel offsets).
type Vector2i struct {
	X, Y int
}

func V2i(x, y int) Vector2i { return Vector2i{X: x, Y: y} }

func (v Vector2i) Add(w Vector2i) Vector2i { return Vector2i{v.X + w.X, v.Y + w.Y} }
func (v Vector2i) Sub(w Vector2i) Vector2i { return Vector2i{v.X - w.X, v.Y - w.Y} }
func (v Vector2i) Mul(s int) Vector2i      { return Vector2i{v.X * s, v.Y * s} }

// Div performs truncating integer division, not a floating-point
// reciprocal multiply — the Go-idiomatic resolution of the spec's noted
// Vector3i `/=` bug (see DESIGN.md, Open Questions).
func (v Vector2i) Div(s int) Vector2i { return Vector2i{v.X / s, v.Y / s} }

// Vector3i is an integer 3D displacement.
type Vector3i struct {
	X, Y, Z int
}

func (v Vector3i) Add(w Vector3i) Vector3i { return Vector3i{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }
func (v Vector3i) Sub(w Vector3i) Vector3i { return Vector3i{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Div performs truncating integer division.
func (v Vector3i) Div(s int) Vector3i { return Vector3i{v.X / s, v.Y / s, v.Z / s} }
