package vecmath

import (
	"math"
	"testing"
)

func pointsClose(a, b Point3, eps float64) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestTransformInverseOfInverse(t *testing.T) {
	tr := Translate(V3(1, 2, 3)).Compose(RotateY(0.7))
	if got := Inverse(Inverse(tr)); !got.Equal(tr) {
		t.Errorf("Inverse(Inverse(t)) = %v, want %v", got, tr)
	}
}

func TestTransformTranslateRoundTrip(t *testing.T) {
	tr := Translate(V3(1, -2, 3))
	p := P3(0, 0, 0)
	got := Inverse(tr).Point(tr.Point(p))
	if !pointsClose(got, p, 1e-9) {
		t.Errorf("round trip through Translate = %v, want %v", got, p)
	}
}

func TestTransformScaleInverse(t *testing.T) {
	tr := Scale(V3(2, 3, 4))
	p := P3(1, 1, 1)
	got := Inverse(tr).Point(tr.Point(p))
	if !pointsClose(got, p, 1e-9) {
		t.Errorf("round trip through Scale = %v, want %v", got, p)
	}
}

func TestTransformRotatePreservesLength(t *testing.T) {
	tr := Rotate(1.1, V3(0, 1, 0))
	v := V3(1, 2, 3)
	got := tr.Vector(v)
	if math.Abs(got.Length()-v.Length()) > 1e-9 {
		t.Errorf("Rotate changed vector length: %v vs %v", got.Length(), v.Length())
	}
}

func TestTransformBoundsRotated(t *testing.T) {
	b := Bounds3{Min: P3(-1, -1, -1), Max: P3(1, 1, 1)}
	tr := RotateZ(PiDivFour)
	got := tr.Bounds(b)
	if got.IsEmpty() {
		t.Errorf("transformed bounds are empty")
	}
	if !got.Contains(tr.Point(P3(1, 1, 1))) {
		t.Errorf("transformed bounds do not contain a transformed corner")
	}
}

func TestAnimatedTransformClampsOutsideRange(t *testing.T) {
	t0 := IdentityTransform()
	t1 := Translate(V3(10, 0, 0))
	anim := NewAnimatedTransform([]Transform{t0, t1}, []float64{0, 1})

	if got := anim.Interpolate(-1); !got.Equal(t0) {
		t.Errorf("Interpolate(-1) = %v, want %v", got, t0)
	}
	if got := anim.Interpolate(2); !got.Equal(t1) {
		t.Errorf("Interpolate(2) = %v, want %v", got, t1)
	}
}

func TestAnimatedTransformMidpoint(t *testing.T) {
	t0 := IdentityTransform()
	t1 := Translate(V3(10, 0, 0))
	anim := NewAnimatedTransform([]Transform{t0, t1}, []float64{0, 1})

	mid := anim.Interpolate(0.5)
	got := mid.Point(P3(0, 0, 0))
	want := P3(5, 0, 0)
	if !pointsClose(got, want, 1e-9) {
		t.Errorf("Interpolate(0.5) point = %v, want %v", got, want)
	}
}
