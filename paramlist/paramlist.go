// Package paramlist implements the typed multi-map the scene-construction
// API (spec.md §6) passes to every named factory: camera, integrator,
// sampler, pixel filter, material, and light constructors all receive a
// ParameterList instead of individual typed arguments.
//
// Grounded on original_source/include/renoster/paramlist.h, verbatim in
// its enumerated value set (bool, int, float, string, Color, Point2f,
// Point3f, Vector2f, Vector3f, Normal3f) and its Set/Get/scalar-getter
// shape.
package paramlist

import (
	"golang.org/x/text/cases"

	"github.com/tomvbussel/renoster/vecmath"
)

// keyCaser normalizes parameter names before every map access. The
// original's names are case-normalized by the (out of scope; spec.md §1)
// text-format parser before reaching ParameterList; since this package
// has no parser in front of it, it normalizes at Set* time itself so a
// caller building a list programmatically gets the same case-insensitive
// lookup the original's scene files rely on.
var keyCaser = cases.Fold()

func normalize(name string) string { return keyCaser.String(name) }

// ParameterList is a typed multi-map keyed by (normalized) parameter
// name. The zero value is an empty list ready to use.
type ParameterList struct {
	bools     map[string][]bool
	ints      map[string][]int
	floats    map[string][]float64
	strings   map[string][]string
	colors    map[string][]vecmath.Color
	point2fs  map[string][]vecmath.Point2
	point3fs  map[string][]vecmath.Point3
	vector2fs map[string][]vecmath.Vector2
	vector3fs map[string][]vecmath.Vector3
	normal3fs map[string][]vecmath.Normal3
}

func (p *ParameterList) SetBools(name string, values []bool) {
	if p.bools == nil {
		p.bools = make(map[string][]bool)
	}
	p.bools[normalize(name)] = values
}

func (p *ParameterList) GetBools(name string) ([]bool, bool) {
	v, ok := p.bools[normalize(name)]
	return v, ok
}

// GetBool returns the first element of name's value, or defValue if name
// is unset (original_source's GetBool(name, *defValue) pointer-as-
// optional pattern becomes a plain parameter).
func (p *ParameterList) GetBool(name string, defValue bool) bool {
	v, ok := p.GetBools(name)
	if !ok || len(v) == 0 {
		return defValue
	}
	return v[0]
}

func (p *ParameterList) SetInts(name string, values []int) {
	if p.ints == nil {
		p.ints = make(map[string][]int)
	}
	p.ints[normalize(name)] = values
}

func (p *ParameterList) GetInts(name string) ([]int, bool) {
	v, ok := p.ints[normalize(name)]
	return v, ok
}

func (p *ParameterList) GetInt(name string, defValue int) int {
	v, ok := p.GetInts(name)
	if !ok || len(v) == 0 {
		return defValue
	}
	return v[0]
}

func (p *ParameterList) SetFloats(name string, values []float64) {
	if p.floats == nil {
		p.floats = make(map[string][]float64)
	}
	p.floats[normalize(name)] = values
}

func (p *ParameterList) GetFloats(name string) ([]float64, bool) {
	v, ok := p.floats[normalize(name)]
	return v, ok
}

func (p *ParameterList) GetFloat(name string, defValue float64) float64 {
	v, ok := p.GetFloats(name)
	if !ok || len(v) == 0 {
		return defValue
	}
	return v[0]
}

func (p *ParameterList) SetStrings(name string, values []string) {
	if p.strings == nil {
		p.strings = make(map[string][]string)
	}
	p.strings[normalize(name)] = values
}

func (p *ParameterList) GetStrings(name string) ([]string, bool) {
	v, ok := p.strings[normalize(name)]
	return v, ok
}

func (p *ParameterList) GetString(name string, defValue string) string {
	v, ok := p.GetStrings(name)
	if !ok || len(v) == 0 {
		return defValue
	}
	return v[0]
}

func (p *ParameterList) SetColors(name string, values []vecmath.Color) {
	if p.colors == nil {
		p.colors = make(map[string][]vecmath.Color)
	}
	p.colors[normalize(name)] = values
}

func (p *ParameterList) GetColors(name string) ([]vecmath.Color, bool) {
	v, ok := p.colors[normalize(name)]
	return v, ok
}

func (p *ParameterList) GetColor(name string, defValue vecmath.Color) vecmath.Color {
	v, ok := p.GetColors(name)
	if !ok || len(v) == 0 {
		return defValue
	}
	return v[0]
}

func (p *ParameterList) SetPoint2fs(name string, values []vecmath.Point2) {
	if p.point2fs == nil {
		p.point2fs = make(map[string][]vecmath.Point2)
	}
	p.point2fs[normalize(name)] = values
}

func (p *ParameterList) GetPoint2fs(name string) ([]vecmath.Point2, bool) {
	v, ok := p.point2fs[normalize(name)]
	return v, ok
}

func (p *ParameterList) GetPoint2f(name string, defValue vecmath.Point2) vecmath.Point2 {
	v, ok := p.GetPoint2fs(name)
	if !ok || len(v) == 0 {
		return defValue
	}
	return v[0]
}

func (p *ParameterList) SetPoint3fs(name string, values []vecmath.Point3) {
	if p.point3fs == nil {
		p.point3fs = make(map[string][]vecmath.Point3)
	}
	p.point3fs[normalize(name)] = values
}

func (p *ParameterList) GetPoint3fs(name string) ([]vecmath.Point3, bool) {
	v, ok := p.point3fs[normalize(name)]
	return v, ok
}

func (p *ParameterList) GetPoint3f(name string, defValue vecmath.Point3) vecmath.Point3 {
	v, ok := p.GetPoint3fs(name)
	if !ok || len(v) == 0 {
		return defValue
	}
	return v[0]
}

func (p *ParameterList) SetVector2fs(name string, values []vecmath.Vector2) {
	if p.vector2fs == nil {
		p.vector2fs = make(map[string][]vecmath.Vector2)
	}
	p.vector2fs[normalize(name)] = values
}

func (p *ParameterList) GetVector2fs(name string) ([]vecmath.Vector2, bool) {
	v, ok := p.vector2fs[normalize(name)]
	return v, ok
}

func (p *ParameterList) GetVector2f(name string, defValue vecmath.Vector2) vecmath.Vector2 {
	v, ok := p.GetVector2fs(name)
	if !ok || len(v) == 0 {
		return defValue
	}
	return v[0]
}

func (p *ParameterList) SetVector3fs(name string, values []vecmath.Vector3) {
	if p.vector3fs == nil {
		p.vector3fs = make(map[string][]vecmath.Vector3)
	}
	p.vector3fs[normalize(name)] = values
}

func (p *ParameterList) GetVector3fs(name string) ([]vecmath.Vector3, bool) {
	v, ok := p.vector3fs[normalize(name)]
	return v, ok
}

func (p *ParameterList) GetVector3f(name string, defValue vecmath.Vector3) vecmath.Vector3 {
	v, ok := p.GetVector3fs(name)
	if !ok || len(v) == 0 {
		return defValue
	}
	return v[0]
}

func (p *ParameterList) SetNormal3fs(name string, values []vecmath.Normal3) {
	if p.normal3fs == nil {
		p.normal3fs = make(map[string][]vecmath.Normal3)
	}
	p.normal3fs[normalize(name)] = values
}

func (p *ParameterList) GetNormal3fs(name string) ([]vecmath.Normal3, bool) {
	v, ok := p.normal3fs[normalize(name)]
	return v, ok
}

func (p *ParameterList) GetNormal3f(name string, defValue vecmath.Normal3) vecmath.Normal3 {
	v, ok := p.GetNormal3fs(name)
	if !ok || len(v) == 0 {
		return defValue
	}
	return v[0]
}

// Clear empties every typed map, returning the list to its zero state.
func (p *ParameterList) Clear() {
	*p = ParameterList{}
}
