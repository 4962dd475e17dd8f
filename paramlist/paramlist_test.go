package paramlist

import (
	"testing"

	"github.com/tomvbussel/renoster/vecmath"
)

func TestGetFloatReturnsFirstElement(t *testing.T) {
	var p ParameterList
	p.SetFloats("roughness", []float64{0.25, 0.5})

	if got := p.GetFloat("roughness", 1); got != 0.25 {
		t.Errorf("GetFloat = %v, want 0.25", got)
	}
}

func TestGetFloatUnsetReturnsDefault(t *testing.T) {
	var p ParameterList
	if got := p.GetFloat("roughness", 1.5); got != 1.5 {
		t.Errorf("GetFloat on unset name = %v, want default 1.5", got)
	}
}

func TestNamesAreCaseInsensitive(t *testing.T) {
	var p ParameterList
	p.SetInts("SampleCount", []int{16})

	if got := p.GetInt("samplecount", 0); got != 16 {
		t.Errorf("GetInt with different case = %d, want 16", got)
	}
	if _, ok := p.GetInts("SAMPLECOUNT"); !ok {
		t.Errorf("GetInts with different case: not found")
	}
}

func TestGetColorsReturnsFullSlice(t *testing.T) {
	var p ParameterList
	want := []vecmath.Color{vecmath.NewColor(1, 0, 0), vecmath.NewColor(0, 1, 0)}
	p.SetColors("Cs", want)

	got, ok := p.GetColors("cs")
	if !ok || len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("GetColors = %v, %v, want %v, true", got, ok, want)
	}
}

func TestGetPoint3fDefault(t *testing.T) {
	var p ParameterList
	def := vecmath.P3(1, 2, 3)
	if got := p.GetPoint3f("p", def); got != def {
		t.Errorf("GetPoint3f unset = %v, want %v", got, def)
	}
}

func TestSetOverwritesPreviousValue(t *testing.T) {
	var p ParameterList
	p.SetStrings("name", []string{"a"})
	p.SetStrings("name", []string{"b", "c"})

	got, _ := p.GetStrings("name")
	if len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Errorf("GetStrings after overwrite = %v, want [b c]", got)
	}
}

func TestClearRemovesEveryEntry(t *testing.T) {
	var p ParameterList
	p.SetBools("b", []bool{true})
	p.SetFloats("f", []float64{1})
	p.Clear()

	if _, ok := p.GetBools("b"); ok {
		t.Errorf("GetBools after Clear: found, want not found")
	}
	if _, ok := p.GetFloats("f"); ok {
		t.Errorf("GetFloats after Clear: found, want not found")
	}
}

func TestVectorAndNormalGetters(t *testing.T) {
	var p ParameterList
	p.SetVector2fs("v2", []vecmath.Vector2{vecmath.V2(1, 2)})
	p.SetVector3fs("v3", []vecmath.Vector3{vecmath.V3(1, 2, 3)})
	p.SetNormal3fs("n", []vecmath.Normal3{vecmath.N3(0, 1, 0)})
	p.SetPoint2fs("p2", []vecmath.Point2{vecmath.P2(1, 2)})

	if got := p.GetVector2f("v2", vecmath.Vector2{}); got != vecmath.V2(1, 2) {
		t.Errorf("GetVector2f = %v, want (1,2)", got)
	}
	if got := p.GetVector3f("v3", vecmath.Vector3{}); got != vecmath.V3(1, 2, 3) {
		t.Errorf("GetVector3f = %v, want (1,2,3)", got)
	}
	if got := p.GetNormal3f("n", vecmath.Normal3{}); got != vecmath.N3(0, 1, 0) {
		t.Errorf("GetNormal3f = %v, want (0,1,0)", got)
	}
	if got := p.GetPoint2f("p2", vecmath.Point2{}); got != vecmath.P2(1, 2) {
		t.Errorf("GetPoint2f = %v, want (1,2)", got)
	}
}
