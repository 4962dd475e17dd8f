// Package material provides the reference Material/BSDF implementations
// needed to exercise the integrators end to end (spec.md's PACKAGE
// LAYOUT calls these "reference camera/light/material stubs needed to
// make the core testable"); the full BSDF/microfacet suite is out of
// scope (spec.md §1).
//
// Grounded on original_source/include/renoster/material.h and
// src/librenoster/bsdf.cpp's LambertianBSDF.
package material

import (
	"github.com/tomvbussel/renoster/arena"
	"github.com/tomvbussel/renoster/sampling"
	"github.com/tomvbussel/renoster/shading"
	"github.com/tomvbussel/renoster/vecmath"
)

// Material builds a BSDF for a shading point, the shading.Shader
// capability a primitive delegates to.
type Material interface {
	ComputeScatteringFunctions(alloc *arena.Arena, sp *shading.ShadingPoint)
}

// Lambertian is a perfectly diffuse reflector. As a reference stub (not
// the performance-sensitive material set this package's doc comment
// describes as out of scope), it builds its BSDF on the GC heap rather
// than via alloc.
type Lambertian struct {
	Reflectance vecmath.Color
}

func (m *Lambertian) ComputeScatteringFunctions(alloc *arena.Arena, sp *shading.ShadingPoint) {
	sp.BSDF = &lambertianBSDF{sp: sp, refl: m.Reflectance}
}

// lambertianBSDF mirrors LambertianBSDF::Evaluate/Sample exactly: Evaluate
// returns InvPi*refl*cos(wi) undivided by its own pdf; Sample returns the
// bare reflectance, which equals that same product already divided by
// the cosine-hemisphere pdf it samples from.
type lambertianBSDF struct {
	sp   *shading.ShadingPoint
	refl vecmath.Color
}

func (b *lambertianBSDF) Evaluate(sampler shading.Sampler, wi vecmath.Vector3) (vecmath.Color, float64) {
	frame := vecmath.NewFrame(b.sp.Ng)
	wiLocal := frame.ToLocal(wi)
	pdf := sampling.CosineSampleHemispherePdf(wiLocal)
	return b.refl.Scale(vecmath.InvPi * vecmath.CosTheta(wiLocal)), pdf
}

func (b *lambertianBSDF) Sample(sampler shading.Sampler) (vecmath.Color, vecmath.Vector3, float64) {
	frame := vecmath.NewFrame(b.sp.Ng)
	wiLocal := sampling.CosineSampleHemisphere(sampler.Get2D())
	wi := frame.ToWorld(wiLocal)
	pdf := sampling.CosineSampleHemispherePdf(wiLocal)
	return b.refl, wi, pdf
}
