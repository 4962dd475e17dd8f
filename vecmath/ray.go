package vecmath

// Ray is a half-open ray O + t*D for t in [TMin, TMax), carrying the time
// sample used for motion-blurred intersection. TMax is mutable: BVH
// traversal and shadow tests tighten it as closer hits are found (spec.md
// property 7 — TMax only ever shrinks over the lifetime of a ray).
type Ray struct {
	O        Point3
	D        Vector3
	TMin     float64
	TMax     float64
	Time     float64
}

func NewRay(o Point3, d Vector3, tMin, tMax, time float64) Ray {
	return Ray{O: o, D: d, TMin: tMin, TMax: tMax, Time: time}
}

// At evaluates the ray's position at parameter t.
func (r Ray) At(t float64) Point3 { return r.O.Add(r.D.Mul(t)) }
