package film

import (
	"testing"

	"github.com/tomvbussel/renoster/vecmath"
)

type fakeDisplay struct {
	resolution vecmath.Vector2i
	pixels     []float64
	closed     bool
}

func (d *fakeDisplay) Open(resolution vecmath.Vector2i) error {
	d.resolution = resolution
	return nil
}

func (d *fakeDisplay) WriteData(pixels []float64) error {
	d.pixels = append([]float64(nil), pixels...)
	return nil
}

func (d *fakeDisplay) Close() error {
	d.closed = true
	return nil
}

func newTestFilm() *Film {
	return NewFilm(
		vecmath.V2i(4, 4),
		1,
		vecmath.Bounds2{Min: vecmath.P2(0, 0), Max: vecmath.P2(1, 1)},
		1,
		vecmath.Bounds2{Min: vecmath.P2(-1, -1), Max: vecmath.P2(1, 1)},
		vecmath.V2i(2, 2),
		16,
		ImportanceSample,
	)
}

func TestFilmGetNextTileExhaustsAllTiles(t *testing.T) {
	f := newTestFilm()
	filter := NewBoxFilter(vecmath.V2(1, 1))
	disp := &fakeDisplay{}
	f.RenderBegin(filter, disp)

	count := 0
	for {
		tile, ok := f.GetNextTile()
		if !ok {
			break
		}
		if tile == nil {
			t.Fatalf("GetNextTile() returned nil tile with ok=true")
		}
		count++
	}

	want := f.nTiles.X * f.nTiles.Y
	if count != want {
		t.Errorf("GetNextTile() produced %d tiles, want %d", count, want)
	}

	if err := f.RenderEnd(); err != nil {
		t.Fatalf("RenderEnd() = %v", err)
	}
}

func TestFilmMergeFilmTileAccumulatesIntoOutput(t *testing.T) {
	f := newTestFilm()
	filter := NewBoxFilter(vecmath.V2(1, 1))
	disp := &fakeDisplay{}
	f.RenderBegin(filter, disp)

	tile, ok := f.GetNextTile()
	if !ok {
		t.Fatalf("GetNextTile() = false on first call")
	}

	var accum Accumulator
	accum.Reset()
	accum.WriteValue(vecmath.NewColor(1, 1, 1))
	pixel := tile.PixelBounds().Min
	tile.AddSample(pixel, pixel.ToPoint2().Add(vecmath.V2(0.5, 0.5)), &accum)

	f.MergeFilmTile(tile)

	if err := f.RenderEnd(); err != nil {
		t.Fatalf("RenderEnd() = %v", err)
	}

	if !disp.closed {
		t.Errorf("display was never closed")
	}
	offset := (pixel.Y*f.resolution.X + pixel.X) * 3
	if disp.pixels[offset] == 0 {
		t.Errorf("merged sample did not reach the display buffer at pixel %v", pixel)
	}
}

func TestFilmRasterToScreenFlipsY(t *testing.T) {
	f := newTestFilm()
	// Top-left raster corner should map to the screen window's top
	// (max Y), not its bottom, since raster y grows downward and
	// screen y grows upward.
	p := f.RasterToScreen(vecmath.P2(0, 0))
	if p.Y != f.screenWindow.Max.Y {
		t.Errorf("RasterToScreen(0,0).Y = %v, want %v (top of screen window)", p.Y, f.screenWindow.Max.Y)
	}
}
