package integrator

import (
	"math"

	"github.com/tomvbussel/renoster/film"
	"github.com/tomvbussel/renoster/shading"
	"github.com/tomvbussel/renoster/vecmath"
)

// PathTracer follows a path of scattering events until it escapes the
// scene, is absorbed by Russian roulette, or reaches MaxDepth bounces,
// accumulating emitted radiance at the first hit and direct-lit radiance
// at every vertex. Grounded
// on original_source's PathTracer (path.cpp).
type PathTracer struct {
	MaxDepth    int
	RRDepth     int
	RRThreshold float64
}

// NewPathTracer returns a PathTracer. maxDepth <= 0 defaults to 8,
// rrThreshold <= 0 defaults to 1.
func NewPathTracer(maxDepth, rrDepth int, rrThreshold float64) *PathTracer {
	if maxDepth <= 0 {
		maxDepth = 8
	}
	if rrThreshold <= 0 {
		rrThreshold = 1
	}
	return &PathTracer{MaxDepth: maxDepth, RRDepth: rrDepth, RRThreshold: rrThreshold}
}

func (p *PathTracer) Integrate(ctx Context, ray vecmath.Ray, accum *film.Accumulator) {
	throughput := vecmath.NewColor(1, 1, 1)

	for depth := 0; depth <= p.MaxDepth; depth++ {
		var sp shading.ShadingPoint
		if !ctx.Scene.Intersect(&ray, &sp) {
			return
		}

		if depth == 0 {
			Le, _ := ctx.Scene.EvaluateEmission(sp)
			accum.AddSample(Le)
		}

		sp.ComputeScatteringFunctions(ctx.Alloc)
		if sp.BSDF == nil {
			return
		}

		const numLightSamples = 1
		const numBSDFSamples = 1
		sampleDirectLighting(ctx, sp, numLightSamples, numBSDFSamples, accum)

		f, wi, pdfBSDF := sp.BSDF.Sample(ctx.Sampler)
		if pdfBSDF == 0 || f.IsBlack() {
			return
		}
		throughput = throughput.Mul(f)
		if throughput.IsBlack() {
			return
		}

		if throughput.ChannelMax() < p.RRThreshold && depth >= p.RRDepth {
			q := math.Max(0.05, 1-throughput.ChannelMax())
			if ctx.Sampler.Get1D() < q {
				return
			}
			throughput = throughput.Scale(1 / (1 - q))
		}

		ray = vecmath.NewRay(sp.P, wi, vecmath.Epsilon, math.Inf(1), ray.Time)
	}
}
