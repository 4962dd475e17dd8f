package camera

import (
	"math"
	"testing"

	"github.com/tomvbussel/renoster/sampler"
	"github.com/tomvbussel/renoster/vecmath"
)

func TestPinholeGenerateRayOriginatesAtEye(t *testing.T) {
	c := NewPinhole(vecmath.IdentityTransform(), vecmath.IdentityTransform(), 90)
	s := sampler.NewIndependent(1, 1)

	ray, weight := c.GenerateRay(s, vecmath.P2(0, 0), 0.5)
	if weight != 1 {
		t.Errorf("weight = %v, want 1", weight)
	}
	if ray.O != (vecmath.Point3{}) {
		t.Errorf("ray.O = %v, want origin", ray.O)
	}
	if ray.Time != 0.5 {
		t.Errorf("ray.Time = %v, want 0.5", ray.Time)
	}
	if math.Abs(ray.D.Length()-1) > 1e-9 {
		t.Errorf("ray.D is not normalized: length = %v", ray.D.Length())
	}
}

func TestPinholeGenerateRayPointsForwardAtScreenCenter(t *testing.T) {
	c := NewPinhole(vecmath.IdentityTransform(), vecmath.IdentityTransform(), 90)
	s := sampler.NewIndependent(1, 1)

	ray, _ := c.GenerateRay(s, vecmath.P2(0, 0), 0)
	want := vecmath.V3(0, 0, 1)
	if math.Abs(ray.D.X-want.X) > 1e-9 || math.Abs(ray.D.Y-want.Y) > 1e-9 || math.Abs(ray.D.Z-want.Z) > 1e-9 {
		t.Errorf("ray.D = %v, want %v", ray.D, want)
	}
}

func TestPinholeWiderFovBendsOffAxisRayFurther(t *testing.T) {
	narrow := NewPinhole(vecmath.IdentityTransform(), vecmath.IdentityTransform(), 30)
	wide := NewPinhole(vecmath.IdentityTransform(), vecmath.IdentityTransform(), 120)
	s := sampler.NewIndependent(1, 1)

	rn, _ := narrow.GenerateRay(s, vecmath.P2(1, 0), 0)
	rw, _ := wide.GenerateRay(s, vecmath.P2(1, 0), 0)

	// A wider field of view means the same screen-space offset
	// corresponds to a larger zoom factor, bending the ray further from
	// the optical axis.
	if rw.D.X <= rn.D.X {
		t.Errorf("wide-fov ray.D.X = %v, narrow-fov ray.D.X = %v, want wide > narrow", rw.D.X, rn.D.X)
	}
}

func TestPinholeGenerateRayAppliesCameraToWorld(t *testing.T) {
	xform := vecmath.Translate(vecmath.V3(5, 0, 0))
	c := NewPinhole(vecmath.Inverse(xform), xform, 90)
	s := sampler.NewIndependent(1, 1)

	ray, _ := c.GenerateRay(s, vecmath.P2(0, 0), 0)
	if ray.O != vecmath.P3(5, 0, 0) {
		t.Errorf("ray.O = %v, want (5,0,0) after applying cameraToWorld", ray.O)
	}
}
