// Package film owns the per-pixel image buffer: the reconstruction
// filter, the tiled work decomposition workers pull from, and the
// final merge into the displayable image.
//
// Grounded on original_source/include/renoster/film.h,
// filmaccumulator.h, filtertable.h and pixelfilter.h, and the
// corresponding src/librenoster sources.
package film

import "github.com/tomvbussel/renoster/vecmath"

// Accumulator collects the radiance estimate for a single pixel sample
// as an integrator walks a path, so it can be written or added to the
// film exactly once regardless of how many bounces contributed.
//
// weight extends the original FilmAccumulator (which has no such field)
// with the renderer driver's camera-weight/sampling-pdf pre-multiply
// (spec.md §4.6: "accum.scale(w / pdf) # pre-multiply", applied before
// the integrator runs): every AddSample/WriteValue call is scaled by it,
// rather than scaling the (still zero, just-reset) accumulated value
// directly.
type Accumulator struct {
	value  vecmath.Color
	weight float64
}

func (a *Accumulator) AddSample(value vecmath.Color) {
	a.value = a.value.Add(value.Scale(a.weight))
}

func (a *Accumulator) WriteValue(value vecmath.Color) { a.value = value.Scale(a.weight) }

// Scale sets the multiplier applied to every subsequent AddSample/
// WriteValue call until the next Reset.
func (a *Accumulator) Scale(s float64) { a.weight = s }

func (a *Accumulator) Value() vecmath.Color { return a.value }

// Reset clears the accumulated value and restores the scale multiplier
// to its identity (1), ready for the next pixel sample.
func (a *Accumulator) Reset() {
	a.value = vecmath.Color{}
	a.weight = 1
}
