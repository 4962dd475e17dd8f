// Package display provides Display sinks — destinations the renderer
// writes a finished frame's pixels to — satisfying the film package's
// local Display interface (Open/WriteData/Close).
//
// Grounded on original_source/include/renoster/display.h and
// src/plugins/displays/image.cpp (ImageDisplay), adapted from OpenImageIO
// to the standard library's image/png plus the teacher's SavePNG path
// (pixmap.go) for converting a float buffer into an encodable image.
package display

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/tomvbussel/renoster/vecmath"
)

// Image writes a finished frame to a PNG file. Pixel values are clamped
// to [0, 1] before quantizing to 8 bits per channel; renoster does no
// tone mapping (out of scope; spec.md §1).
type Image struct {
	filename   string
	resolution vecmath.Vector2i
	frame      *image.NRGBA
}

// NewImage returns a Display that writes one PNG to filename per render.
func NewImage(filename string) *Image {
	return &Image{filename: filename}
}

func (d *Image) Open(resolution vecmath.Vector2i) error {
	if resolution.X <= 0 || resolution.Y <= 0 {
		return fmt.Errorf("display: invalid resolution %v", resolution)
	}
	d.resolution = resolution
	d.frame = image.NewNRGBA(image.Rect(0, 0, resolution.X, resolution.Y))
	return nil
}

// WriteData converts a row-major, 3-channels-per-pixel float buffer (the
// film's output format, original_source's ImageDisplay::WriteData takes
// the same layout) into the 8-bit frame buffer.
func (d *Image) WriteData(pixels []float64) error {
	if d.frame == nil {
		return fmt.Errorf("display: WriteData called before Open")
	}
	want := d.resolution.X * d.resolution.Y * 3
	if len(pixels) != want {
		return fmt.Errorf("display: WriteData got %d floats, want %d", len(pixels), want)
	}

	src := image.NewNRGBA(d.frame.Bounds())
	offset := 0
	for y := 0; y < d.resolution.Y; y++ {
		for x := 0; x < d.resolution.X; x++ {
			src.Set(x, y, color.NRGBA{
				R: quantize(pixels[offset]),
				G: quantize(pixels[offset+1]),
				B: quantize(pixels[offset+2]),
				A: 255,
			})
			offset += 3
		}
	}

	// A straight 1:1 copy always has matching source/destination bounds,
	// so the nearest-neighbor scaler degenerates to a plain blit; routed
	// through x/image/draw rather than the stdlib image/draw.Draw so a
	// future crop/resize display only needs a different scaler.
	xdraw.NearestNeighbor.Scale(d.frame, d.frame.Bounds(), src, src.Bounds(), draw.Over, nil)
	return nil
}

func (d *Image) Close() error {
	if d.frame == nil {
		return fmt.Errorf("display: Close called before Open")
	}

	f, err := os.Create(d.filename)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, d.frame)
}

func quantize(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
