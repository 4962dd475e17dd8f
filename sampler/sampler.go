// Package sampler provides the per-pixel sample stream every worker
// clones from, and a reference independent sampler.
//
// Grounded on original_source/include/renoster/sampler.h and
// src/plugins/samplers/independent.cpp.
package sampler

import "github.com/tomvbussel/renoster/vecmath"

// Sampler produces the stream of uniform samples consumed while
// estimating one pixel: sub-pixel offsets, BSDF/light selection samples,
// time samples, and so on.
type Sampler interface {
	Get1D() float64
	Get2D() vecmath.Point2

	// StartPixel resets the per-pixel sample counter for pixel.
	StartPixel(pixel vecmath.Point2i)

	// StartNextSample reports whether another sample of the current
	// pixel remains, advancing the counter. original_source's
	// currentSample_++ < samplesPerPixel_ post-increment comparison.
	StartNextSample() bool

	// Clone returns an independent sampler seeded from seed, used to
	// give each worker goroutine (or each tile) its own deterministic
	// stream (spec.md §5).
	Clone(seed int) Sampler
}
