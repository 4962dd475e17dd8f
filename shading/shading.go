// Package shading defines the ShadingPoint record that flows between
// intersection, BSDF construction, and the integrators.
//
// Grounded on original_source/include/renoster/shading.h. The concrete
// BSDF and Primitive implementations are out of scope (spec.md §1); this
// package defines only the interfaces the renderer core calls through.
package shading

import (
	"github.com/tomvbussel/renoster/arena"
	"github.com/tomvbussel/renoster/vecmath"
)

// Primitive is the capability interface every scene object satisfies.
// Ray intersection, shading setup, and direct/emission light sampling are
// split into separate capability methods rather than one monolithic
// interface, since not every primitive is a light (spec.md §9's
// trait-shaped capability design; see also the primitive package, which
// holds the concrete World-space wrapper).
type Primitive interface {
	// Intersect tests ray against the primitive, filling sp and
	// tightening ray's TMax on a hit.
	Intersect(ray *vecmath.Ray, sp *ShadingPoint) bool

	// Occluded is a cheaper yes/no test used for shadow rays.
	Occluded(ray vecmath.Ray) bool

	// WorldBounds returns the primitive's bounds in world space.
	WorldBounds() vecmath.Bounds3
}

// Shader is implemented by primitives that can construct a BSDF at a
// shading point (a GeometricPrimitive in the original; not every
// Primitive — a pure light has none). Queried with a type assertion on
// ShadingPoint.Primitive, the same capability-interface pattern as
// light.Emitter.
type Shader interface {
	ComputeScatteringFunctions(alloc *arena.Arena, sp *ShadingPoint)
}

// Sampler is the subset of the sampler package's interface a BSDF needs
// to draw a direction, declared locally (as light.Sampler is) to avoid
// an import cycle back through the sampler package.
type Sampler interface {
	Get1D() float64
	Get2D() vecmath.Point2
}

// BSDF is bound to the ShadingPoint it was constructed for (wo comes
// from that point; the original's BSDF subclasses hold a reference to
// it), so neither method takes wo explicitly.
type BSDF interface {
	// Evaluate returns f(wo, wi)*|cos(wi)| and the density Sample would
	// have produced for wi, for use in multiple importance sampling. f is
	// not divided by pdf. sampler is unused by every reference BSDF but
	// kept for parity with Sample's signature.
	Evaluate(sampler Sampler, wi vecmath.Vector3) (f vecmath.Color, pdf float64)

	// Sample draws wi proportional (ideally) to f*|cos|, returning
	// f(wo, wi)*|cos(wi)|/pdf already divided through (a direct path
	// throughput multiplier), the sampled direction, and pdf itself for
	// MIS. pdf == 0 indicates a failed/degenerate sample, in which case f
	// must be ignored.
	Sample(sampler Sampler) (f vecmath.Color, wi vecmath.Vector3, pdf float64)
}

// ShadingPoint carries the full local geometric and material state at a
// ray/primitive intersection. BSDF is nil until ComputeScatteringFunctions
// has run on the owning primitive.
type ShadingPoint struct {
	P   vecmath.Point3
	DPDx, DPDy vecmath.Vector3

	Wo vecmath.Vector3

	Ng vecmath.Normal3 // geometric normal
	Ns vecmath.Normal3 // shading normal

	U, DUDx, DUDy float64
	V, DVDx, DVDy float64

	DPDu, DPDv vecmath.Vector3
	DNgDu, DNgDv vecmath.Normal3
	DNsDu, DNsDv vecmath.Normal3

	Time float64

	Primitive Primitive
	Face      int

	BSDF BSDF
}

// OffsetOrigin returns a shadow/continuation ray origin offset
// along the geometric normal by eps, avoiding self-intersection at the
// cost of (intentionally) not handling displaced/bumped surfaces
// specially — the same epsilon-offset policy the reference integrators
// use (spec.md §4.6, ε = 0.01).
func (sp *ShadingPoint) OffsetOrigin(d vecmath.Vector3, eps float64) vecmath.Point3 {
	n := sp.Ng
	if n.Dot(d) < 0 {
		n = n.Neg()
	}
	return sp.P.Add(n.ToVector().Mul(eps))
}

// ComputeScatteringFunctions builds this point's BSDF from the hit
// primitive, a no-op when the primitive has no Shader capability (a
// pure light surface with no material).
func (sp *ShadingPoint) ComputeScatteringFunctions(alloc *arena.Arena) {
	if s, ok := sp.Primitive.(Shader); ok {
		s.ComputeScatteringFunctions(alloc, sp)
	}
}
