// Package sampling provides the Monte Carlo sampling building blocks used
// by the integrators: piecewise-constant 1D/2D distributions for
// importance sampling arbitrary functions (environment maps, the film's
// reconstruction filter, the scene's light power distribution), the
// canonical disk/sphere/triangle/hemisphere warps, and the MIS power
// heuristic.
//
// Grounded on the teacher's original numerical core (renoster/sampling.h,
// sampling.cpp), translated from float32 to float64 along with the rest
// of this module's math.
package sampling

import (
	"math"
	"sort"

	"github.com/tomvbussel/renoster/vecmath"
)

// Distribution1D supports sampling proportional to an arbitrary
// non-negative, piecewise-constant function given as a slice of bucket
// weights.
type Distribution1D struct {
	cdf     []float64
	funcInt float64
}

// NewDistribution1D builds a distribution over len(fn) buckets. A
// func that integrates to zero (every bucket weight is zero) falls back
// to a uniform distribution, matching the teacher's original numerical
// core rather than dividing by zero.
func NewDistribution1D(fn []float64) *Distribution1D {
	cdf := make([]float64, len(fn)+1)
	for i, f := range fn {
		cdf[i+1] = cdf[i] + f
	}

	funcInt := cdf[len(cdf)-1]
	if funcInt != 0 {
		for i := range cdf {
			cdf[i] /= funcInt
		}
	} else {
		for i := range cdf {
			cdf[i] = float64(i) / float64(len(fn))
		}
	}

	return &Distribution1D{cdf: cdf, funcInt: funcInt}
}

// Integral returns the (unnormalized) integral of the function the
// distribution was built from.
func (d *Distribution1D) Integral() float64 { return d.funcInt }

// Count returns the number of buckets.
func (d *Distribution1D) Count() int { return len(d.cdf) - 1 }

// SampleDiscrete maps a uniform sample u in [0, 1) to a bucket index
// proportional to that bucket's weight, returning the bucket's discrete
// pdf and a remapped uniform sample usable for further sampling within
// the bucket.
func (d *Distribution1D) SampleDiscrete(u float64) (index int, pdf, uRemapped float64) {
	// upper_bound: index of the first cdf entry strictly greater than u.
	index = sort.Search(len(d.cdf), func(i int) bool { return d.cdf[i] > u }) - 1
	if index < 0 {
		index = 0
	}
	if index > len(d.cdf)-2 {
		index = len(d.cdf) - 2
	}

	width := d.cdf[index+1] - d.cdf[index]
	if width > 0 {
		uRemapped = (u - d.cdf[index]) / width
	}
	pdf = width
	return index, pdf, uRemapped
}

// PdfDiscrete returns the probability of SampleDiscrete returning index.
func (d *Distribution1D) PdfDiscrete(index int) float64 {
	return d.cdf[index+1] - d.cdf[index]
}

// SampleContinuous maps u to a continuous value in [0, Count()),
// distributed proportional to the piecewise-constant function.
func (d *Distribution1D) SampleContinuous(u float64) (x, pdf float64) {
	index, pdf, uRemapped := d.SampleDiscrete(u)
	return float64(index) + uRemapped, pdf
}

// PdfContinuous returns the density of SampleContinuous at x.
func (d *Distribution1D) PdfContinuous(x float64) float64 {
	return d.PdfDiscrete(int(math.Floor(x)))
}

// Distribution2D supports importance sampling a 2D piecewise-constant
// function (e.g. an environment map or the film's filter table), by
// sampling a marginal row distribution and then a conditional column
// distribution within that row.
type Distribution2D struct {
	marginal    *Distribution1D
	conditional []*Distribution1D
}

// NewDistribution2D builds a distribution over an n.X by n.Y grid of
// samples stored row-major in fn (row j occupies fn[j*n.X:(j+1)*n.X]).
func NewDistribution2D(fn []float64, n vecmath.Point2i) *Distribution2D {
	conditional := make([]*Distribution1D, n.Y)
	marginalFunc := make([]float64, n.Y)
	for j := 0; j < n.Y; j++ {
		row := fn[j*n.X : (j+1)*n.X]
		conditional[j] = NewDistribution1D(row)
		marginalFunc[j] = conditional[j].Integral()
	}
	return &Distribution2D{
		marginal:    NewDistribution1D(marginalFunc),
		conditional: conditional,
	}
}

// SampleDiscrete maps uv in [0,1)^2 to a (column, row) bucket pair,
// returning the joint discrete pdf and a remapped uv usable for further
// sampling within the bucket.
func (d *Distribution2D) SampleDiscrete(uv vecmath.Point2) (idx vecmath.Point2i, pdf float64, uvRemapped vecmath.Point2) {
	j, pdfMarginal, v := d.marginal.SampleDiscrete(uv.Y)
	i, pdfConditional, u := d.conditional[j].SampleDiscrete(uv.X)
	return vecmath.P2i(i, j), pdfMarginal * pdfConditional, vecmath.P2(u, v)
}

// SampleContinuous maps uv to a continuous point in [0, nx) x [0, ny).
func (d *Distribution2D) SampleContinuous(uv vecmath.Point2) (p vecmath.Point2, pdf float64) {
	idx, pdf, uvRemapped := d.SampleDiscrete(uv)
	return idx.ToPoint2().Add(vecmath.Vector2(uvRemapped)), pdf
}
