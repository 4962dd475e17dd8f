package shading

import (
	"testing"

	"github.com/tomvbussel/renoster/arena"
	"github.com/tomvbussel/renoster/vecmath"
)

type fakeShadedPrimitive struct{ called bool }

func (p *fakeShadedPrimitive) Intersect(*vecmath.Ray, *ShadingPoint) bool { return false }
func (p *fakeShadedPrimitive) Occluded(vecmath.Ray) bool                  { return false }
func (p *fakeShadedPrimitive) WorldBounds() vecmath.Bounds3               { return vecmath.Bounds3{} }

func (p *fakeShadedPrimitive) ComputeScatteringFunctions(alloc *arena.Arena, sp *ShadingPoint) {
	p.called = true
}

func TestOffsetOriginFlipsAgainstDirection(t *testing.T) {
	sp := &ShadingPoint{
		P:  vecmath.P3(0, 0, 0),
		Ng: vecmath.N3(0, 0, 1),
	}

	// d points into the surface (negative hemisphere): offset should go
	// along -Ng so the shadow ray starts on the far side from d.
	into := vecmath.V3(0, 0, -1)
	got := sp.OffsetOrigin(into, 0.01)
	if got.Z >= 0 {
		t.Errorf("OffsetOrigin into surface = %v, want Z < 0", got)
	}

	// d points away from the surface: offset should go along +Ng.
	away := vecmath.V3(0, 0, 1)
	got = sp.OffsetOrigin(away, 0.01)
	if got.Z <= 0 {
		t.Errorf("OffsetOrigin away from surface = %v, want Z > 0", got)
	}
}

func TestBSDFNilUntilComputed(t *testing.T) {
	sp := &ShadingPoint{}
	if sp.BSDF != nil {
		t.Errorf("zero-value ShadingPoint has non-nil BSDF")
	}
}

func TestComputeScatteringFunctionsDispatchesToShader(t *testing.T) {
	prim := &fakeShadedPrimitive{}
	sp := &ShadingPoint{Primitive: prim}
	sp.ComputeScatteringFunctions(arena.New(0))
	if !prim.called {
		t.Errorf("ComputeScatteringFunctions did not dispatch to the primitive's Shader")
	}
}

func TestComputeScatteringFunctionsNoOpWithoutShader(t *testing.T) {
	sp := &ShadingPoint{}
	sp.ComputeScatteringFunctions(arena.New(0)) // must not panic
}
