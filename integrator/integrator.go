// Package integrator implements the light-transport algorithms that turn
// a camera ray and a scene into a radiance sample.
//
// Grounded on original_source/include/renoster/integrator.h and the four
// reference plugins under original_source/src/plugins/integrators: normal,
// occlusion, direct (DirectLighting), and path (PathTracer).
package integrator

import (
	"math"

	"github.com/tomvbussel/renoster/arena"
	"github.com/tomvbussel/renoster/film"
	"github.com/tomvbussel/renoster/light"
	"github.com/tomvbussel/renoster/shading"
	"github.com/tomvbussel/renoster/vecmath"
)

// Scene is the subset of the scene package's interface an integrator
// needs, declared locally so this package does not import scene (which
// would otherwise be the only dependent of a concrete Integrator, and
// keeps the capability small and mockable for tests).
type Scene interface {
	Intersect(ray *vecmath.Ray, sp *shading.ShadingPoint) bool
	Occluded(ray vecmath.Ray) bool
	SampleDirect(sampler light.Sampler, ref shading.ShadingPoint) (L vecmath.Color, pos shading.ShadingPoint, pdf float64)
	EvaluateDirect(ref, pos shading.ShadingPoint) (L vecmath.Color, pdf float64)
	EvaluateEmission(pos shading.ShadingPoint) (L vecmath.Color, pdf float64)
}

// Sampler is the sample stream an integrator draws from, the union of
// light.Sampler and shading.Sampler (the two capability subsets this
// package's callees need).
type Sampler interface {
	Get1D() float64
	Get2D() vecmath.Point2
}

// Context carries everything an Integrate call needs beyond the ray
// itself: the scene to query, the sample stream to draw from, and a
// per-worker arena for BSDF allocations, mirroring original_source's
// IntegratorContext.
type Context struct {
	Scene   Scene
	Sampler Sampler
	Alloc   *arena.Arena
}

// Integrator is implemented by every light-transport algorithm. Integrate
// traces ray through ctx.Scene and deposits the resulting radiance (and,
// for multi-sample integrators, partial contributions) into accum.
type Integrator interface {
	Integrate(ctx Context, ray vecmath.Ray, accum *film.Accumulator)
}

// areaToSolidAngle converts a light sample's area-measure pdf to the
// area-solid-angle measure as seen from ref, original_source's
// AreaToSolidAngle helper (duplicated verbatim in direct.cpp and
// path.cpp). Returns 0 where the conversion would be infinite or NaN (pos
// seen edge-on from ref).
func areaToSolidAngle(ref, pos shading.ShadingPoint, pdf float64) float64 {
	wi := pos.P.Sub(ref.P).Normalize()
	pdf *= vecmath.DistanceSq(ref.P, pos.P) / math.Abs(pos.Ng.Dot(wi.Neg()))
	if math.IsInf(pdf, 0) || math.IsNaN(pdf) {
		pdf = 0
	}
	return pdf
}
