// Package scene combines the acceleration structure over every scene
// primitive with a uniform light-selection distribution, and is the
// single object the integrators query for visibility and lighting.
//
// Grounded on original_source/include/renoster/scene.h and
// src/librenoster/scene.cpp.
package scene

import (
	"github.com/tomvbussel/renoster/accel"
	"github.com/tomvbussel/renoster/light"
	"github.com/tomvbussel/renoster/sampling"
	"github.com/tomvbussel/renoster/shading"
	"github.com/tomvbussel/renoster/vecmath"
)

// Scene owns the BVH over every primitive (lights included, since a
// light can also be directly visible geometry) and a uniform
// distribution for selecting which light to sample.
type Scene struct {
	bvh          *accel.BVH[shading.Primitive]
	lights       []light.Emitter
	lightDistrib *sampling.Distribution1D
}

// New builds a scene's BVH over prims and, if any lights are present, a
// uniform light-selection distribution. lights is typically a subset of
// prims (the lights that are also directly visible geometry), but may
// also contain standalone lights with no BVH presence.
func New(prims []shading.Primitive, lights []light.Emitter) *Scene {
	s := &Scene{
		bvh:    accel.Build[shading.Primitive](prims, accel.DefaultMinLeafSize),
		lights: lights,
	}

	if len(lights) > 0 {
		prob := make([]float64, len(lights))
		for i := range prob {
			prob[i] = 1
		}
		s.lightDistrib = sampling.NewDistribution1D(prob)
	}

	return s
}

func (s *Scene) Intersect(ray *vecmath.Ray, sp *shading.ShadingPoint) bool {
	return s.bvh.Intersect(ray, sp)
}

func (s *Scene) Occluded(ray vecmath.Ray) bool {
	return s.bvh.Occluded(ray)
}

// SampleDirect selects a light proportional to the scene's uniform light
// distribution and samples a position on it visible from ref. The
// returned pdf is the product of the light-selection and the light's own
// area-measure pdf.
func (s *Scene) SampleDirect(sampler light.Sampler, ref shading.ShadingPoint) (L vecmath.Color, pos shading.ShadingPoint, pdf float64) {
	if len(s.lights) == 0 {
		return vecmath.Color{}, shading.ShadingPoint{}, 0
	}

	u := sampler.Get1D()
	index, lightPdf, _ := s.lightDistrib.SampleDiscrete(u)

	L, pos, directPdf := s.lights[index].SampleDirect(light.IdentityContext(), sampler, ref)
	return L, pos, lightPdf * directPdf
}

// EvaluateDirect returns the radiance and pdf of pos having been chosen
// by SampleDirect(sampler, ref), for light-sampling MIS. pdf is zero if
// pos's primitive is not a registered light.
func (s *Scene) EvaluateDirect(ref, pos shading.ShadingPoint) (L vecmath.Color, pdf float64) {
	em, lightPdf, ok := s.lightPdfOf(pos)
	if !ok {
		return vecmath.Color{}, 0
	}

	L, directPdf := em.EvaluateDirect(light.IdentityContext(), ref, pos)
	return L, lightPdf * directPdf
}

// SampleEmission selects a light proportional to the scene's uniform
// light distribution and samples an emission point and direction from
// it, for light-traced integrators.
func (s *Scene) SampleEmission(sampler light.Sampler) (L vecmath.Color, pos shading.ShadingPoint, pdf float64) {
	if len(s.lights) == 0 {
		return vecmath.Color{}, shading.ShadingPoint{}, 0
	}

	u := sampler.Get1D()
	index, lightPdf, _ := s.lightDistrib.SampleDiscrete(u)

	L, pos, directPdf := s.lights[index].SampleEmission(light.IdentityContext(), sampler)
	return L, pos, lightPdf * directPdf
}

// EvaluateEmission returns the radiance emitted from pos toward pos.Wo
// and its area-solid-angle pdf, zero if pos's primitive is not a
// registered light.
func (s *Scene) EvaluateEmission(pos shading.ShadingPoint) (L vecmath.Color, pdf float64) {
	em, lightPdf, ok := s.lightPdfOf(pos)
	if !ok {
		return vecmath.Color{}, 0
	}

	L, directPdf := em.EvaluateEmission(light.IdentityContext(), pos)
	return L, lightPdf * directPdf
}

func (s *Scene) lightPdfOf(pos shading.ShadingPoint) (em light.Emitter, lightPdf float64, ok bool) {
	if len(s.lights) == 0 {
		return nil, 0, false
	}

	em, ok = pos.Primitive.(light.Emitter)
	if !ok {
		return nil, 0, false
	}

	lightID := em.LightID()
	if lightID == light.NoLightID {
		return nil, 0, false
	}

	return em, s.lightDistrib.PdfDiscrete(lightID), true
}
