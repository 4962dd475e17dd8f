// Package primitive provides the world/local-space wrapper types the BVH
// builds over. Concrete geometry and material implementations are out of
// scope (spec.md §1); this package supplies the context type every
// Primitive.Intersect call takes and a TransformedPrimitive wrapper for
// instancing, grounded on original_source/include/renoster/primitive.h.
package primitive

import (
	"github.com/tomvbussel/renoster/shading"
	"github.com/tomvbussel/renoster/vecmath"
)

// Context carries the world<->primitive transform pair threaded through
// every BVH traversal call, letting instanced primitives share one
// underlying shape definition transformed differently per instance.
type Context struct {
	WorldToPrimitive vecmath.Transform
	PrimitiveToWorld vecmath.Transform
}

// IdentityContext is the context used at the root of the scene, where
// primitive space and world space coincide.
func IdentityContext() Context {
	id := vecmath.IdentityTransform()
	return Context{WorldToPrimitive: id, PrimitiveToWorld: id}
}

// Compose returns the context seen by a primitive nested under a further
// currentToPrimitive/primitiveToCurrent transform pair, accumulating the
// transform the way nested TransformedPrimitive instances do in the
// original.
func (c Context) Compose(currentToPrimitive, primitiveToCurrent vecmath.Transform) Context {
	return Context{
		WorldToPrimitive: currentToPrimitive.Compose(c.WorldToPrimitive),
		PrimitiveToWorld: c.PrimitiveToWorld.Compose(primitiveToCurrent),
	}
}

// TransformedPrimitive wraps an inner primitive with an additional
// transform, letting one geometry definition be instanced multiple times
// in a scene at different placements (original_source's
// TransformedPrimitive).
type TransformedPrimitive struct {
	Inner            shading.Primitive
	WorldToPrimitive vecmath.Transform
	PrimitiveToWorld vecmath.Transform
}

func NewTransformedPrimitive(inner shading.Primitive, primitiveToWorld vecmath.Transform) *TransformedPrimitive {
	return &TransformedPrimitive{
		Inner:            inner,
		WorldToPrimitive: vecmath.Inverse(primitiveToWorld),
		PrimitiveToWorld: primitiveToWorld,
	}
}

// Intersect transforms ray into the inner primitive's local space,
// delegates, and transforms the resulting shading point back to world
// space. The ray direction is transformed without normalization, so the
// ray parameter t names the same point in local and world space and the
// inner primitive's tightened TMax is copied back to ray unchanged.
func (t *TransformedPrimitive) Intersect(ray *vecmath.Ray, sp *shading.ShadingPoint) bool {
	localRay := t.WorldToPrimitive.Ray(*ray)
	if !t.Inner.Intersect(&localRay, sp) {
		return false
	}
	ray.TMax = localRay.TMax

	sp.P = t.PrimitiveToWorld.Point(sp.P)
	sp.Ng = t.PrimitiveToWorld.Normal(sp.Ng)
	sp.Ns = t.PrimitiveToWorld.Normal(sp.Ns)
	sp.DPDu = t.PrimitiveToWorld.Vector(sp.DPDu)
	sp.DPDv = t.PrimitiveToWorld.Vector(sp.DPDv)
	return true
}

func (t *TransformedPrimitive) Occluded(ray vecmath.Ray) bool {
	return t.Inner.Occluded(t.WorldToPrimitive.Ray(ray))
}

func (t *TransformedPrimitive) WorldBounds() vecmath.Bounds3 {
	return t.PrimitiveToWorld.Bounds(t.Inner.WorldBounds())
}
