package integrator

import (
	"math"

	"github.com/tomvbussel/renoster/film"
	"github.com/tomvbussel/renoster/sampling"
	"github.com/tomvbussel/renoster/shading"
	"github.com/tomvbussel/renoster/vecmath"
)

// Occlusion estimates ambient occlusion: the fraction of a cosine-weighted
// hemisphere above the hit point that reaches maxDist without hitting
// anything else. Grounded on original_source's Occlusion (occlusion.cpp).
type Occlusion struct {
	MaxDist    float64
	NumSamples int
}

// NewOcclusion returns an Occlusion integrator. maxDist <= 0 means
// unoccluded rays may travel to infinity (the original's default).
// numSamples <= 0 defaults to 1.
func NewOcclusion(maxDist float64, numSamples int) *Occlusion {
	if maxDist <= 0 {
		maxDist = math.Inf(1)
	}
	if numSamples <= 0 {
		numSamples = 1
	}
	return &Occlusion{MaxDist: maxDist, NumSamples: numSamples}
}

func (o *Occlusion) Integrate(ctx Context, ray vecmath.Ray, accum *film.Accumulator) {
	var sp shading.ShadingPoint
	if !ctx.Scene.Intersect(&ray, &sp) {
		return
	}

	for i := 0; i < o.NumSamples; i++ {
		u := ctx.Sampler.Get2D()
		d := sampling.CosineSampleHemisphere(u)

		frame := vecmath.NewFrame(sp.Ng)
		dir := frame.ToWorld(d)

		r := vecmath.NewRay(sp.P, dir, 0.01, o.MaxDist, ray.Time)

		if !ctx.Scene.Occluded(r) {
			accum.AddSample(vecmath.NewColor(1, 1, 1).Scale(1 / float64(o.NumSamples)))
		}
	}
}
