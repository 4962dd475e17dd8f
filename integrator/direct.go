package integrator

import (
	"math"

	"github.com/tomvbussel/renoster/film"
	"github.com/tomvbussel/renoster/sampling"
	"github.com/tomvbussel/renoster/shading"
	"github.com/tomvbussel/renoster/vecmath"
)

// DirectLighting estimates direct illumination only (no indirect bounces)
// with multiple importance sampling between light sampling and BSDF
// sampling. Grounded on original_source's DirectLighting (direct.cpp).
type DirectLighting struct {
	NumLightSamples int
	NumBSDFSamples  int
}

// NewDirectLighting returns a DirectLighting integrator. A sample count
// <= 0 defaults to 1.
func NewDirectLighting(numLightSamples, numBSDFSamples int) *DirectLighting {
	if numLightSamples <= 0 {
		numLightSamples = 1
	}
	if numBSDFSamples <= 0 {
		numBSDFSamples = 1
	}
	return &DirectLighting{NumLightSamples: numLightSamples, NumBSDFSamples: numBSDFSamples}
}

func (d *DirectLighting) Integrate(ctx Context, ray vecmath.Ray, accum *film.Accumulator) {
	var sp shading.ShadingPoint
	if !ctx.Scene.Intersect(&ray, &sp) {
		return
	}

	Le, _ := ctx.Scene.EvaluateEmission(sp)
	accum.AddSample(Le)

	sp.ComputeScatteringFunctions(ctx.Alloc)
	if sp.BSDF == nil {
		return
	}

	sampleDirectLighting(ctx, sp, d.NumLightSamples, d.NumBSDFSamples, accum)
}

// sampleDirectLighting takes numLightSamples light samples and
// numBSDFSamples BSDF samples of direct lighting with power-heuristic MIS
// weights,
// shared between DirectLighting and PathTracer's per-bounce direct term
// (original_source duplicates this as a free function in direct.cpp and
// as PathTracer::DirectLighting in path.cpp; this package shares one
// implementation instead).
func sampleDirectLighting(ctx Context, sp shading.ShadingPoint, numLightSamples, numBSDFSamples int, accum *film.Accumulator) {
	for i := 0; i < numLightSamples; i++ {
		Li, spLight, pdfLight := ctx.Scene.SampleDirect(ctx.Sampler, sp)
		if pdfLight == 0 || Li.IsBlack() {
			continue
		}
		pdfLight = areaToSolidAngle(sp, spLight, pdfLight)

		wi := spLight.P.Sub(sp.P).Normalize()
		dist := vecmath.Distance(spLight.P, sp.P)
		shadowRay := vecmath.NewRay(sp.P, wi, 0.01, dist-0.01, sp.Time)
		if ctx.Scene.Occluded(shadowRay) {
			continue
		}

		f, pdfBSDF := sp.BSDF.Evaluate(ctx.Sampler, wi)
		if f.IsBlack() {
			continue
		}

		weight := sampling.MISPowerHeuristic(numLightSamples, pdfLight, numBSDFSamples, pdfBSDF)

		accum.AddSample(f.Mul(Li).Scale(weight / (pdfLight * float64(numLightSamples))))
	}

	for i := 0; i < numBSDFSamples; i++ {
		f, wi, pdfBSDF := sp.BSDF.Sample(ctx.Sampler)
		if pdfBSDF == 0 || f.IsBlack() {
			continue
		}

		lightRay := vecmath.NewRay(sp.P, wi, 0.01, math.Inf(1), sp.Time)
		var spLight shading.ShadingPoint
		if !ctx.Scene.Intersect(&lightRay, &spLight) {
			continue
		}

		Li, pdfLight := ctx.Scene.EvaluateDirect(sp, spLight)
		if Li.IsBlack() {
			continue
		}
		pdfLight = areaToSolidAngle(sp, spLight, pdfLight)

		weight := sampling.MISPowerHeuristic(numBSDFSamples, pdfBSDF, numLightSamples, pdfLight)

		accum.AddSample(f.Mul(Li).Scale(weight / float64(numBSDFSamples)))
	}
}
