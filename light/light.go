// Package light defines the light-sampling capability that some scene
// primitives implement, and the sampling contract a concrete Light
// implementation (out of scope; spec.md §1) satisfies.
//
// Grounded on original_source/include/renoster/light.h and the
// light-sampling methods of primitive.h's Primitive base class. The
// original expresses "every primitive can be a light" via four virtual
// methods on Primitive with no-op default bodies; the idiomatic Go
// translation is a separate capability interface that only emitting
// primitives implement, queried with a type assertion where the original
// relies on virtual dispatch to a no-op (spec.md §9, trait-shaped
// capability interfaces).
package light

import (
	"github.com/tomvbussel/renoster/shading"
	"github.com/tomvbussel/renoster/vecmath"
)

// Context carries the world<->light transform pair a Light needs to
// convert between the space it was authored in and world space.
type Context struct {
	WorldToLight vecmath.Transform
	LightToWorld vecmath.Transform
}

// IdentityContext is the context used for a light that sits at the top
// level of the scene, not nested inside an instance transform.
func IdentityContext() Context {
	id := vecmath.IdentityTransform()
	return Context{WorldToLight: id, LightToWorld: id}
}

// Sampler is the subset of the sampler package's interface the light
// sampling routines need: a stream of independent uniform samples.
type Sampler interface {
	Get1D() float64
	Get2D() vecmath.Point2
}

// NoLightID marks a primitive that does not belong to the scene's light
// distribution, the Go rendering of the original's GetLightId()
// returning (size_t)-1.
const NoLightID = -1

// Emitter is implemented by primitives and standalone lights that can be
// sampled for direct lighting and can emit radiance along a ray that
// happens to hit them. The pdf returned by the Sample* methods is with
// respect to area (m^-2) for SampleDirect/EvaluateDirect and area-solid-
// angle (m^-2 sr^-1) for SampleEmission/EvaluateEmission, exactly as the
// original.
type Emitter interface {
	// SampleDirect samples a position on the light visible from ref,
	// returning the emitted radiance, the sampled position, and the
	// area-measure pdf of that position.
	SampleDirect(ctx Context, sampler Sampler, ref shading.ShadingPoint) (L vecmath.Color, pos shading.ShadingPoint, pdf float64)

	// EvaluateDirect returns the radiance and area-measure pdf of pos
	// having been chosen by SampleDirect from ref.
	EvaluateDirect(ctx Context, ref, pos shading.ShadingPoint) (L vecmath.Color, pdf float64)

	// SampleEmission samples a point and direction of emission, for
	// integrators that trace light-carrying paths forward.
	SampleEmission(ctx Context, sampler Sampler) (L vecmath.Color, sp shading.ShadingPoint, pdf float64)

	// EvaluateEmission returns the emitted radiance leaving sp toward
	// sp.Wo and its area-solid-angle pdf.
	EvaluateEmission(ctx Context, sp shading.ShadingPoint) (L vecmath.Color, pdf float64)

	// LightID identifies this light's slot in the scene's light
	// distribution, so EvaluateDirect/EvaluateEmission can recover the
	// probability of having selected this light (scene.cpp's
	// GetLightId/PdfDiscrete pairing). Returns NoLightID if this emitter
	// has not been registered with a scene.
	LightID() int
}
