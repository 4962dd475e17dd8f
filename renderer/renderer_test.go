package renderer

import (
	"testing"

	"github.com/tomvbussel/renoster/camera"
	"github.com/tomvbussel/renoster/film"
	"github.com/tomvbussel/renoster/integrator"
	"github.com/tomvbussel/renoster/light"
	"github.com/tomvbussel/renoster/sampler"
	"github.com/tomvbussel/renoster/shading"
	"github.com/tomvbussel/renoster/vecmath"
)

// fakeScene always reports a miss, so Render exercises the full tile/
// pixel/sample loop without needing a real BVH.
type fakeScene struct{}

func (fakeScene) Intersect(*vecmath.Ray, *shading.ShadingPoint) bool { return false }
func (fakeScene) Occluded(vecmath.Ray) bool                          { return false }
func (fakeScene) SampleDirect(light.Sampler, shading.ShadingPoint) (vecmath.Color, shading.ShadingPoint, float64) {
	return vecmath.Color{}, shading.ShadingPoint{}, 0
}
func (fakeScene) EvaluateDirect(shading.ShadingPoint, shading.ShadingPoint) (vecmath.Color, float64) {
	return vecmath.Color{}, 0
}
func (fakeScene) EvaluateEmission(shading.ShadingPoint) (vecmath.Color, float64) {
	return vecmath.Color{}, 0
}

type fakeDisplay struct {
	resolution vecmath.Vector2i
	pixels     []float64
}

func (d *fakeDisplay) Open(resolution vecmath.Vector2i) error {
	d.resolution = resolution
	return nil
}
func (d *fakeDisplay) WriteData(pixels []float64) error { d.pixels = pixels; return nil }
func (d *fakeDisplay) Close() error                     { return nil }

func TestRenderCoversEveryTileWithoutPanicking(t *testing.T) {
	flm := film.NewFilm(
		vecmath.V2i(8, 8), 1,
		vecmath.Bounds2{Min: vecmath.P2(0, 0), Max: vecmath.P2(1, 1)},
		1,
		vecmath.Bounds2{Min: vecmath.P2(-1, -1), Max: vecmath.P2(1, 1)},
		vecmath.V2i(4, 4), 16, film.ConvolutionSample,
	)

	f := film.NewBoxFilter(vecmath.V2(1, 1))
	disp := &fakeDisplay{}
	flm.RenderBegin(f, disp)

	cam := camera.NewPinhole(vecmath.IdentityTransform(), vecmath.IdentityTransform(), 60)
	samp := sampler.NewIndependent(2, 42)

	Render(fakeScene{}, cam, flm, samp, integrator.Normal{}, Options{NumThreads: 2})

	if err := flm.RenderEnd(); err != nil {
		t.Fatalf("RenderEnd: %v", err)
	}
	if disp.resolution != (vecmath.Vector2i{X: 8, Y: 8}) {
		t.Errorf("display resolution = %v, want (8,8)", disp.resolution)
	}
	if len(disp.pixels) != 8*8*3 {
		t.Errorf("display pixel buffer len = %d, want %d", len(disp.pixels), 8*8*3)
	}
}
