package film

import (
	"github.com/tomvbussel/renoster/sampler"
	"github.com/tomvbussel/renoster/vecmath"
)

// SampleMode selects how camera samples are placed within a pixel.
type SampleMode int

const (
	// ConvolutionSample places one sample uniformly in the unit pixel
	// square and splats its contribution, filter-weighted, across every
	// pixel within the filter's radius. Matches box-filter convolution.
	ConvolutionSample SampleMode = iota

	// ImportanceSample draws the sample offset itself from the filter's
	// importance distribution, so every sample lands with unit weight in
	// exactly one pixel — more efficient for wide or negative-lobed
	// filters.
	ImportanceSample
)

// Pixel accumulates filter-weighted radiance across every sample that
// contributed to it.
type Pixel struct {
	ContribSum vecmath.Color
	WeightSum  float64
}

// Tile is a worker's private view of a rectangular region of the
// image: the pixels it must produce values for (PixelBounds) are
// slightly larger than the pixels it must sample (SampleBounds), to
// absorb the reconstruction filter's border.
type Tile struct {
	tileID       int
	index        vecmath.Point2i
	pixelBounds  vecmath.Bounds2i
	sampleBounds vecmath.Bounds2i
	filter       Filter
	filterTable  *FilterTable
	sampleMode   SampleMode
	pixels       []Pixel
}

func newTile(tileID int, index vecmath.Point2i, pixelBounds, sampleBounds vecmath.Bounds2i,
	filter Filter, filterTable *FilterTable, sampleMode SampleMode) *Tile {
	n := pixelBounds.Volume()
	if n < 0 {
		n = 0
	}
	return &Tile{
		tileID:       tileID,
		index:        index,
		pixelBounds:  pixelBounds,
		sampleBounds: sampleBounds,
		filter:       filter,
		filterTable:  filterTable,
		sampleMode:   sampleMode,
		pixels:       make([]Pixel, n),
	}
}

func (t *Tile) TileID() int { return t.tileID }

func (t *Tile) PixelBounds() vecmath.Bounds2i { return t.pixelBounds }

func (t *Tile) SampleBounds() vecmath.Bounds2i { return t.sampleBounds }

// Sample draws the film-plane position to trace a ray through for the
// given pixel, along with its pdf under the current sample mode.
func (t *Tile) Sample(pixel vecmath.Point2i, s sampler.Sampler) (pSample vecmath.Point2, pdf float64) {
	uv := s.Get2D()

	switch t.sampleMode {
	case ImportanceSample:
		pFilter, pdfFilter, _ := t.filterTable.Sample(uv)
		return pixel.ToPoint2().Add(vecmath.Vector2(pFilter)).Add(vecmath.V2(0.5, 0.5)), pdfFilter
	default:
		// Pixel has area 1.
		return pixel.ToPoint2().Add(vecmath.Vector2(uv)), 1
	}
}

// AddSample records one sample's contribution, splatting it across
// every pixel the reconstruction filter reaches from pSample under
// ConvolutionSample, or depositing it in pPixel alone under
// ImportanceSample.
func (t *Tile) AddSample(pPixel vecmath.Point2i, pSample vecmath.Point2, accum *Accumulator) {
	l := accum.Value()

	if t.sampleMode != ConvolutionSample {
		pixel := t.getPixel(pPixel)
		pixel.ContribSum = pixel.ContribSum.Add(l)
		pixel.WeightSum++
		return
	}

	radius := t.filter.Radius()
	pCenter := pPixel.ToPoint2()

	pMin := vecmath.P2(pCenter.X-radius.X, pCenter.Y-radius.Y).Ceil()
	pMax := vecmath.P2(pCenter.X+radius.X, pCenter.Y+radius.Y).Floor().Add(vecmath.V2i(1, 1))

	bPixels := vecmath.IntersectBounds2i(vecmath.Bounds2i{Min: pMin, Max: pMax}, t.pixelBounds)
	bPixels.Points(func(p vecmath.Point2i) {
		pFilter := vecmath.P2(
			float64(p.X)+0.5-pSample.X,
			float64(p.Y)+0.5-pSample.Y,
		)
		weight := t.filterTable.Evaluate(pFilter)

		pixel := t.getPixel(p)
		pixel.ContribSum = pixel.ContribSum.Add(l.Scale(weight))
		pixel.WeightSum += weight
	})
}

func (t *Tile) getPixel(p vecmath.Point2i) *Pixel {
	d := p.Sub(t.pixelBounds.Min)
	dims := t.pixelBounds.Diagonal()
	offset := d.Y*dims.X + d.X
	return &t.pixels[offset]
}
