package film

import (
	"sync"

	"github.com/tomvbussel/renoster/vecmath"
)

// Display receives the finished image. Concrete sinks (PNG file, live
// preview window) live in a separate package and are wired in through
// this interface so film does not need to depend on them, the Go
// rendering of the original's Display/WriteData/Close pattern with Go
// error returns in place of a bool-and-GetError pair.
type Display interface {
	Open(resolution vecmath.Vector2i) error
	WriteData(pixels []float64) error
	Close() error
}

// Film owns the full-resolution pixel buffer and the geometry that
// derives screen space, crop window and tile grid from the render
// settings. Workers never touch it directly except through GetNextTile,
// which locks the tile generator's mutex, and MergeFilmTile, the only
// operation that takes the film's own pixel mutex.
type Film struct {
	resolution       vecmath.Vector2i
	pixelAspectRatio float64
	cropWindow       vecmath.Bounds2
	frameAspectRatio float64
	screenWindow     vecmath.Bounds2
	tileSize         vecmath.Vector2i
	filterTableSize  int
	sampleMode       SampleMode

	nTiles      vecmath.Vector2i
	pixelBounds vecmath.Bounds2i
	pixels      []Pixel

	filter  Filter
	display Display

	sampleBounds vecmath.Bounds2i
	tileGen      *tileGenerator
	filterTable  *FilterTable

	mu sync.Mutex
}

func NewFilm(resolution vecmath.Vector2i, pixelAspectRatio float64, cropWindow vecmath.Bounds2,
	frameAspectRatio float64, screenWindow vecmath.Bounds2, tileSize vecmath.Vector2i,
	filterTableSize int, sampleMode SampleMode) *Film {

	pixelBounds := vecmath.Bounds2i{
		Min: vecmath.P2(
			float64(resolution.X)*cropWindow.Min.X,
			float64(resolution.Y)*cropWindow.Min.Y,
		).Ceil(),
		Max: vecmath.P2(
			float64(resolution.X)*cropWindow.Max.X,
			float64(resolution.Y)*cropWindow.Max.Y,
		).Ceil(),
	}

	n := pixelBounds.Volume()
	if n < 0 {
		n = 0
	}

	return &Film{
		resolution:       resolution,
		pixelAspectRatio: pixelAspectRatio,
		cropWindow:       cropWindow,
		frameAspectRatio: frameAspectRatio,
		screenWindow:     screenWindow,
		tileSize:         tileSize,
		filterTableSize:  filterTableSize,
		sampleMode:       sampleMode,
		pixelBounds:      pixelBounds,
		pixels:           make([]Pixel, n),
	}
}

func (f *Film) ScreenWindow() vecmath.Bounds2 { return f.screenWindow }

func (f *Film) PixelBounds() vecmath.Bounds2i { return f.pixelBounds }

// RenderBegin computes the sample bounds and tile grid for one render
// pass and prepares the filter table. Must be matched by a later call
// to RenderEnd.
func (f *Film) RenderBegin(filter Filter, display Display) {
	f.filter = filter
	f.display = display

	if f.sampleMode == ConvolutionSample {
		radius := filter.Radius()
		f.sampleBounds = vecmath.Bounds2i{
			Min: f.pixelBounds.Min.ToPoint2().SubVec(radius).Ceil(),
			Max: f.pixelBounds.Max.ToPoint2().Add(radius).Floor(),
		}
	} else {
		f.sampleBounds = f.pixelBounds
	}

	sampleExtent := f.sampleBounds.Diagonal()
	f.nTiles = vecmath.V2i(
		(sampleExtent.X+f.tileSize.X-1)/f.tileSize.X,
		(sampleExtent.Y+f.tileSize.Y-1)/f.tileSize.Y,
	)

	f.tileGen = newTileGenerator(Horizontal, f.nTiles)
	f.filterTable = NewFilterTable(filter, f.filterTableSize)
}

// RenderEnd flushes the accumulated pixels to the display configured in
// RenderBegin, then clears the film for the next pass.
func (f *Film) RenderEnd() error {
	err := f.outputToDisplay()

	for i := range f.pixels {
		f.pixels[i] = Pixel{}
	}

	f.sampleBounds = vecmath.Bounds2i{}
	f.filter = nil
	f.display = nil
	f.tileGen = nil
	f.filterTable = nil

	return err
}

// GetNextTile pulls the next tile off the generator, or returns false
// once every tile of the current pass has been handed out. Safe to call
// from any number of worker goroutines concurrently.
func (f *Film) GetNextTile() (*Tile, bool) {
	tileIndex, ok := f.tileGen.next()
	if !ok {
		return nil, false
	}

	tileOffset := vecmath.V2i(tileIndex.X*f.tileSize.X, tileIndex.Y*f.tileSize.Y)
	tileSampleBounds := vecmath.IntersectBounds2i(f.sampleBounds, vecmath.Bounds2i{
		Min: f.sampleBounds.Min.Add(tileOffset),
		Max: f.sampleBounds.Min.Add(tileOffset).Add(f.tileSize),
	})

	var tilePixelBounds vecmath.Bounds2i
	if f.sampleMode == ConvolutionSample {
		halfPixel := vecmath.V2(0.5, 0.5)
		radius := f.filter.Radius()
		tilePixelBounds = vecmath.Bounds2i{
			Min: tileSampleBounds.Min.ToPoint2().SubVec(halfPixel).SubVec(radius).Ceil(),
			Max: tileSampleBounds.Max.ToPoint2().SubVec(halfPixel).Add(radius).Floor().Add(vecmath.V2i(1, 1)),
		}
	} else {
		tilePixelBounds = tileSampleBounds
	}
	tilePixelBounds = vecmath.IntersectBounds2i(f.sampleBounds, tilePixelBounds)

	tileID := f.nTiles.X*tileIndex.Y + tileIndex.X
	return newTile(tileID, tileIndex, tilePixelBounds, tileSampleBounds, f.filter, f.filterTable, f.sampleMode), true
}

// MergeFilmTile adds a finished tile's pixels into the film, under the
// film's one merge mutex.
func (f *Film) MergeFilmTile(tile *Tile) {
	f.mu.Lock()
	defer f.mu.Unlock()

	bPixels := vecmath.IntersectBounds2i(f.pixelBounds, tile.pixelBounds)
	bPixels.Points(func(p vecmath.Point2i) {
		tp := tile.getPixel(p)
		fp := f.getPixel(p)
		fp.ContribSum = fp.ContribSum.Add(tp.ContribSum)
		fp.WeightSum += tp.WeightSum
	})
}

// RasterToScreen maps a raster-space position (pixel coordinates, y
// growing downward) to screen space (y growing upward), matching the
// convention original_source's cameras were written against.
func (f *Film) RasterToScreen(p vecmath.Point2) vecmath.Point2 {
	pNDC := vecmath.P2(p.X/float64(f.resolution.X), p.Y/float64(f.resolution.Y))

	d := vecmath.V2(
		f.screenWindow.Max.X-f.screenWindow.Min.X,
		f.screenWindow.Min.Y-f.screenWindow.Max.Y,
	)

	return vecmath.P2(
		pNDC.X*d.X+f.screenWindow.Min.X,
		pNDC.Y*d.Y+f.screenWindow.Max.Y,
	)
}

func (f *Film) outputToDisplay() error {
	const nChannels = 3
	pixels := make([]float64, f.resolution.X*f.resolution.Y*nChannels)

	f.pixelBounds.Points(func(p vecmath.Point2i) {
		pixel := f.getPixel(p)

		finalColor := pixel.ContribSum
		if pixel.WeightSum != 0 {
			finalColor = finalColor.Scale(1 / pixel.WeightSum)
		}

		offset := p.Y*f.resolution.X + p.X
		pixels[nChannels*offset] = finalColor.R
		pixels[nChannels*offset+1] = finalColor.G
		pixels[nChannels*offset+2] = finalColor.B
	})

	if err := f.display.Open(f.resolution); err != nil {
		return err
	}
	if err := f.display.WriteData(pixels); err != nil {
		return err
	}
	return f.display.Close()
}

func (f *Film) getPixel(p vecmath.Point2i) *Pixel {
	d := p.Sub(f.pixelBounds.Min)
	dims := f.pixelBounds.Diagonal()
	offset := d.Y*dims.X + d.X
	return &f.pixels[offset]
}
