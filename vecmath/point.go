package vecmath

import "math"

// Point3 is a 3D position. Unlike Vector3, a Point3 does not have a
// well-defined length; it participates in affine (not purely linear)
// transforms.
type Point3 struct {
	X, Y, Z float64
}

func P3(x, y, z float64) Point3 { return Point3{X: x, Y: y, Z: z} }

func (p Point3) Add(v Vector3) Point3  { return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z} }
func (p Point3) Sub(q Point3) Vector3  { return Vector3{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }
func (p Point3) SubVec(v Vector3) Point3 { return Point3{p.X - v.X, p.Y - v.Y, p.Z - v.Z} }
func (p Point3) Mul(s float64) Point3  { return Point3{p.X * s, p.Y * s, p.Z * s} }

func (p Point3) Lerp(q Point3, t float64) Point3 {
	return Point3{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
		Z: p.Z + (q.Z-p.Z)*t,
	}
}

func (p Point3) Min(q Point3) Point3 {
	return Point3{math.Min(p.X, q.X), math.Min(p.Y, q.Y), math.Min(p.Z, q.Z)}
}

func (p Point3) Max(q Point3) Point3 {
	return Point3{math.Max(p.X, q.X), math.Max(p.Y, q.Y), math.Max(p.Z, q.Z)}
}

func (p Point3) Get(axis int) float64 { return Vector3(p).Get(axis) }

func Distance(p, q Point3) float64   { return p.Sub(q).Length() }
func DistanceSq(p, q Point3) float64 { return p.Sub(q).LengthSq() }

// ToVector reinterprets the point as a displacement from the origin.
func (p Point3) ToVector() Vector3 { return Vector3(p) }

// Normal3 is a surface normal. Unlike Vector3 it transforms by the
// inverse-transpose of an affine transform (see Transform.Normal),
// so it is kept as a distinct type even though its arithmetic is identical.
type Normal3 struct {
	X, Y, Z float64
}

func N3(x, y, z float64) Normal3 { return Normal3{X: x, Y: y, Z: z} }

func (n Normal3) Add(m Normal3) Normal3 { return Normal3{n.X + m.X, n.Y + m.Y, n.Z + m.Z} }
func (n Normal3) Neg() Normal3          { return Normal3{-n.X, -n.Y, -n.Z} }
func (n Normal3) Mul(s float64) Normal3 { return Normal3{n.X * s, n.Y * s, n.Z * s} }
func (n Normal3) Dot(v Vector3) float64 { return n.X*v.X + n.Y*v.Y + n.Z*v.Z }
func (n Normal3) DotNormal(m Normal3) float64 { return n.X*m.X + n.Y*m.Y + n.Z*m.Z }
func (n Normal3) Length() float64       { return math.Sqrt(n.DotNormal(n)) }

func (n Normal3) Normalize() Normal3 {
	l := n.Length()
	if l == 0 {
		return Normal3{}
	}
	return n.Mul(1 / l)
}

// FaceForward flips n so that it lies in the same hemisphere as v.
func (n Normal3) FaceForward(v Vector3) Normal3 {
	if n.Dot(v) < 0 {
		return n.Neg()
	}
	return n
}

func (n Normal3) ToVector() Vector3 { return Vector3(n) }

// Point2 is a 2D position in screen, raster or filter space.
type Point2 struct {
	X, Y float64
}

func P2(x, y float64) Point2 { return Point2{X: x, Y: y} }

func (p Point2) Add(v Vector2) Point2 { return Point2{p.X + v.X, p.Y + v.Y} }
func (p Point2) Sub(q Point2) Vector2 { return Vector2{p.X - q.X, p.Y - q.Y} }
func (p Point2) SubVec(v Vector2) Point2 { return Point2{p.X - v.X, p.Y - v.Y} }

func (p Point2) Floor() Point2i { return Point2i{int(math.Floor(p.X)), int(math.Floor(p.Y))} }
func (p Point2) Ceil() Point2i  { return Point2i{int(math.Ceil(p.X)), int(math.Ceil(p.Y))} }

// Point2i is an integer 2D position (pixel/tile index).
type Point2i struct {
	X, Y int
}

func P2i(x, y int) Point2i { return Point2i{X: x, Y: y} }

func (p Point2i) Add(v Vector2i) Point2i { return Point2i{p.X + v.X, p.Y + v.Y} }
func (p Point2i) Sub(q Point2i) Vector2i { return Vector2i{p.X - q.X, p.Y - q.Y} }
func (p Point2i) ToPoint2() Point2       { return Point2{float64(p.X), float64(p.Y)} }

func (p Point2i) Min(q Point2i) Point2i {
	if q.X < p.X {
		p.X = q.X
	}
	if q.Y < p.Y {
		p.Y = q.Y
	}
	return p
}

func (p Point2i) Max(q Point2i) Point2i {
	if q.X > p.X {
		p.X = q.X
	}
	if q.Y > p.Y {
		p.Y = q.Y
	}
	return p
}
