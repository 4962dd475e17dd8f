package scene

import (
	"testing"

	"github.com/tomvbussel/renoster/light"
	"github.com/tomvbussel/renoster/shading"
	"github.com/tomvbussel/renoster/vecmath"
)

// fakeLight is both a shading.Primitive (a unit sphere at the origin, for
// BVH bounds purposes only — Intersect/Occluded are never exercised by
// these tests) and a light.Emitter with a fixed, constant radiance.
type fakeLight struct {
	id int
	L  vecmath.Color
}

func (f *fakeLight) Intersect(*vecmath.Ray, *shading.ShadingPoint) bool { return false }
func (f *fakeLight) Occluded(vecmath.Ray) bool                          { return false }
func (f *fakeLight) WorldBounds() vecmath.Bounds3 {
	return vecmath.Bounds3{Min: vecmath.P3(-1, -1, -1), Max: vecmath.P3(1, 1, 1)}
}

func (f *fakeLight) SampleDirect(ctx light.Context, s light.Sampler, ref shading.ShadingPoint) (vecmath.Color, shading.ShadingPoint, float64) {
	return f.L, shading.ShadingPoint{P: vecmath.P3(0, 0, 0), Ng: vecmath.N3(0, 0, 1), Primitive: f}, 1
}

func (f *fakeLight) EvaluateDirect(ctx light.Context, ref, pos shading.ShadingPoint) (vecmath.Color, float64) {
	return f.L, 1
}

func (f *fakeLight) SampleEmission(ctx light.Context, s light.Sampler) (vecmath.Color, shading.ShadingPoint, float64) {
	return f.L, shading.ShadingPoint{P: vecmath.P3(0, 0, 0), Ng: vecmath.N3(0, 0, 1), Primitive: f}, 1
}

func (f *fakeLight) EvaluateEmission(ctx light.Context, sp shading.ShadingPoint) (vecmath.Color, float64) {
	return f.L, 1
}

func (f *fakeLight) LightID() int { return f.id }

type fakeSampler struct{ u float64 }

func (s *fakeSampler) Get1D() float64        { return s.u }
func (s *fakeSampler) Get2D() vecmath.Point2 { return vecmath.P2(s.u, s.u) }

func TestSceneWithNoLightsSampleDirectReturnsZeroPdf(t *testing.T) {
	s := New(nil, nil)
	_, _, pdf := s.SampleDirect(&fakeSampler{u: 0.5}, shading.ShadingPoint{})
	if pdf != 0 {
		t.Errorf("SampleDirect on a lightless scene pdf = %v, want 0", pdf)
	}
}

func TestSceneSampleDirectSelectsTheOnlyLight(t *testing.T) {
	l := &fakeLight{id: 0, L: vecmath.NewColor(2, 2, 2)}
	s := New([]shading.Primitive{l}, []light.Emitter{l})

	Li, pos, pdf := s.SampleDirect(&fakeSampler{u: 0.5}, shading.ShadingPoint{})
	if Li != l.L {
		t.Errorf("SampleDirect L = %v, want %v", Li, l.L)
	}
	if pdf != 1 { // 1 light, selection pdf 1, light's own pdf 1
		t.Errorf("SampleDirect pdf = %v, want 1", pdf)
	}
	if pos.Primitive != shading.Primitive(l) {
		t.Errorf("SampleDirect did not return the light's own shading point")
	}
}

func TestSceneEvaluateDirectRecoversSelectionPdf(t *testing.T) {
	l0 := &fakeLight{id: 0, L: vecmath.NewColor(1, 0, 0)}
	l1 := &fakeLight{id: 1, L: vecmath.NewColor(0, 1, 0)}
	s := New([]shading.Primitive{l0, l1}, []light.Emitter{l0, l1})

	pos := shading.ShadingPoint{Primitive: l1}
	Li, pdf := s.EvaluateDirect(shading.ShadingPoint{}, pos)
	if Li != l1.L {
		t.Errorf("EvaluateDirect L = %v, want %v", Li, l1.L)
	}
	want := 0.5 // uniform selection over 2 lights, times the light's own pdf of 1
	if pdf != want {
		t.Errorf("EvaluateDirect pdf = %v, want %v", pdf, want)
	}
}

func TestSceneEvaluateDirectNonLightPrimitiveReturnsZero(t *testing.T) {
	l := &fakeLight{id: 0, L: vecmath.NewColor(1, 1, 1)}
	s := New([]shading.Primitive{l}, []light.Emitter{l})

	pos := shading.ShadingPoint{Primitive: nil}
	_, pdf := s.EvaluateDirect(shading.ShadingPoint{}, pos)
	if pdf != 0 {
		t.Errorf("EvaluateDirect on a non-light primitive pdf = %v, want 0", pdf)
	}
}

func TestSceneEvaluateEmissionUnregisteredLightReturnsZero(t *testing.T) {
	l := &fakeLight{id: light.NoLightID, L: vecmath.NewColor(1, 1, 1)}
	s := New([]shading.Primitive{l}, []light.Emitter{l})

	_, pdf := s.EvaluateEmission(shading.ShadingPoint{Primitive: l})
	if pdf != 0 {
		t.Errorf("EvaluateEmission on NoLightID pdf = %v, want 0", pdf)
	}
}
