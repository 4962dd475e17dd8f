package vecmath

import "math"

// Bounds3 is an axis-aligned bounding box in 3D. The zero value is not
// empty; use EmptyBounds3 to get the additive identity for Union.
type Bounds3 struct {
	Min, Max Point3
}

// EmptyBounds3 returns the empty bounds: Min at +Inf, Max at -Inf, so that
// Union(EmptyBounds3(), b) == b for any b (the identity required by
// spec.md property 1).
func EmptyBounds3() Bounds3 {
	return Bounds3{
		Min: Point3{math.Inf(1), math.Inf(1), math.Inf(1)},
		Max: Point3{math.Inf(-1), math.Inf(-1), math.Inf(-1)},
	}
}

func BoundsFromPoint3(p Point3) Bounds3 { return Bounds3{Min: p, Max: p} }

// IsEmpty reports min > max on any axis.
func (b Bounds3) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

func (b Bounds3) Diagonal() Vector3 { return b.Max.Sub(b.Min) }

func (b Bounds3) Center() Point3 { return b.Min.Add(b.Diagonal().Mul(0.5)) }

func (b Bounds3) Contains(p Point3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// SurfaceArea returns the surface area used by the SAH cost function. An
// empty bounds has zero area.
func (b Bounds3) SurfaceArea() float64 {
	if b.IsEmpty() {
		return 0
	}
	d := b.Diagonal()
	return 2 * (d.X*d.Y + d.Y*d.Z + d.Z*d.X)
}

// Expand returns the bounds widened to include p. Equivalent to
// Union(b, BoundsFromPoint3(p)) but avoids an allocation-shaped call.
func (b Bounds3) Expand(p Point3) Bounds3 {
	return Bounds3{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// UnionBounds3 returns the smallest bounds containing both inputs. It is
// idempotent, commutative and associative, and EmptyBounds3() is its
// identity (spec.md property 1).
func UnionBounds3(a, b Bounds3) Bounds3 {
	return Bounds3{Min: a.Min.Min(b.Min), Max: a.Max.Max(b.Max)}
}

func IntersectBounds3(a, b Bounds3) Bounds3 {
	return Bounds3{Min: a.Min.Max(b.Min), Max: a.Max.Min(b.Max)}
}

func OverlapsBounds3(a, b Bounds3) bool {
	return a.Max.X >= b.Min.X && a.Min.X <= b.Max.X &&
		a.Max.Y >= b.Min.Y && a.Min.Y <= b.Max.Y &&
		a.Max.Z >= b.Min.Z && a.Min.Z <= b.Max.Z
}

func LerpBounds3(a, b Bounds3, t float64) Bounds3 {
	return Bounds3{Min: a.Min.Lerp(b.Min, t), Max: a.Max.Lerp(b.Max, t)}
}

// Bounds2 is an axis-aligned bounding box in 2D screen/filter space.
type Bounds2 struct {
	Min, Max Point2
}

func (b Bounds2) Diagonal() Vector2 { return b.Max.Sub(b.Min) }

// Bounds2i is an axis-aligned bounding box over integer pixel/tile
// coordinates. Max is exclusive, matching the film's pixelBounds
// convention (a half-open raster rectangle).
type Bounds2i struct {
	Min, Max Point2i
}

func (b Bounds2i) Diagonal() Vector2i { return b.Max.Sub(b.Min) }

// Volume returns the number of integer pixels covered; zero for a
// degenerate bounds.
func (b Bounds2i) Volume() int {
	d := b.Diagonal()
	if d.X <= 0 || d.Y <= 0 {
		return 0
	}
	return d.X * d.Y
}

func (b Bounds2i) Contains(p Point2i) bool {
	return p.X >= b.Min.X && p.X < b.Max.X && p.Y >= b.Min.Y && p.Y < b.Max.Y
}

func IntersectBounds2i(a, b Bounds2i) Bounds2i {
	return Bounds2i{Min: a.Min.Max(b.Min), Max: a.Max.Min(b.Max)}
}

// Points iterates every integer pixel p with Min <= p < Max, calling fn
// for each in row-major order. Used for scanning pixel windows (film
// merge, output-to-display).
func (b Bounds2i) Points(fn func(p Point2i)) {
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			fn(P2i(x, y))
		}
	}
}
