package integrator

import (
	"github.com/tomvbussel/renoster/film"
	"github.com/tomvbussel/renoster/shading"
	"github.com/tomvbussel/renoster/vecmath"
)

// Normal visualizes a surface's absolute geometric normal as a color, a
// single-sample debug integrator with no lighting. Grounded on
// original_source's NormalIntegrator (normal.cpp).
type Normal struct{}

func (Normal) Integrate(ctx Context, ray vecmath.Ray, accum *film.Accumulator) {
	var sp shading.ShadingPoint
	if !ctx.Scene.Intersect(&ray, &sp) {
		return
	}

	accum.WriteValue(vecmath.NewColor(
		abs(sp.Ng.X),
		abs(sp.Ng.Y),
		abs(sp.Ng.Z),
	))
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
