package sampling

import (
	"math"
	"testing"

	"github.com/tomvbussel/renoster/vecmath"
)

func TestUniformSampleDiskInsideUnitCircle(t *testing.T) {
	for _, u := range []vecmath.Point2{vecmath.P2(0, 0), vecmath.P2(0.5, 0.25), vecmath.P2(0.99, 0.99)} {
		p := UniformSampleDisk(u)
		if r2 := p.X*p.X + p.Y*p.Y; r2 > 1+1e-9 {
			t.Errorf("UniformSampleDisk(%v) = %v, outside unit disk (r^2=%v)", u, p, r2)
		}
	}
}

func TestUniformSampleSphereUnitLength(t *testing.T) {
	for _, u := range []vecmath.Point2{vecmath.P2(0, 0), vecmath.P2(0.3, 0.7), vecmath.P2(0.99, 0.01)} {
		w := UniformSampleSphere(u)
		if got := w.Length(); math.Abs(got-1) > 1e-9 {
			t.Errorf("UniformSampleSphere(%v).Length() = %v, want 1", u, got)
		}
	}
}

func TestUniformSampleTriangleBarycentricValid(t *testing.T) {
	for _, u := range []vecmath.Point2{vecmath.P2(0, 0), vecmath.P2(0.5, 0.5), vecmath.P2(0.99, 0.99)} {
		p := UniformSampleTriangle(u)
		b0, b1 := p.X, p.Y
		b2 := 1 - b0 - b1
		if b0 < -1e-9 || b1 < -1e-9 || b2 < -1e-9 {
			t.Errorf("UniformSampleTriangle(%v) = (%v,%v), barycentric out of range (b2=%v)", u, b0, b1, b2)
		}
	}
}

func TestCosineSampleHemisphereUpperHalf(t *testing.T) {
	for _, u := range []vecmath.Point2{vecmath.P2(0.1, 0.2), vecmath.P2(0.8, 0.3)} {
		w := CosineSampleHemisphere(u)
		if w.Z < 0 {
			t.Errorf("CosineSampleHemisphere(%v).Z = %v, want >= 0", u, w.Z)
		}
		if math.Abs(w.Length()-1) > 1e-9 {
			t.Errorf("CosineSampleHemisphere(%v) not unit length: %v", u, w.Length())
		}
	}
}
