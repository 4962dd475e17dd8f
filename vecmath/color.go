package vecmath

import "math"

// Color is an RGB radiance/reflectance triple. Unlike the teacher's 2D
// RGBA, there is no alpha channel: a path tracer's colors are physical
// quantities (radiance, throughput, reflectance), not compositing colors,
// so they carry no notion of coverage. Grounded on
// original_source/include/renoster/color.h.
type Color struct {
	R, G, B float64
}

func NewColor(r, g, b float64) Color { return Color{R: r, G: g, B: b} }

// Gray returns a color with all three channels set to v.
func Gray(v float64) Color { return Color{R: v, G: v, B: v} }

var ColorBlack = Color{}

func (c Color) Add(d Color) Color { return Color{c.R + d.R, c.G + d.G, c.B + d.B} }
func (c Color) Sub(d Color) Color { return Color{c.R - d.R, c.G - d.G, c.B - d.B} }
func (c Color) Mul(d Color) Color { return Color{c.R * d.R, c.G * d.G, c.B * d.B} }
func (c Color) Div(d Color) Color { return Color{c.R / d.R, c.G / d.G, c.B / d.B} }

func (c Color) Scale(s float64) Color { return Color{c.R * s, c.G * s, c.B * s} }

func (c Color) IsBlack() bool { return c.R == 0 && c.G == 0 && c.B == 0 }

// HasNaN reports whether any channel is NaN, used to guard against
// propagating a bad sample (e.g. a zero-pdf division) into the film.
func (c Color) HasNaN() bool {
	return math.IsNaN(c.R) || math.IsNaN(c.G) || math.IsNaN(c.B)
}

func (c Color) ChannelMin() float64 { return math.Min(c.R, math.Min(c.G, c.B)) }
func (c Color) ChannelMax() float64 { return math.Max(c.R, math.Max(c.G, c.B)) }
func (c Color) ChannelAvg() float64 { return (c.R + c.G + c.B) / 3 }

func SqrtColor(c Color) Color {
	return Color{math.Sqrt(c.R), math.Sqrt(c.G), math.Sqrt(c.B)}
}

func LerpColor(a, b Color, t float64) Color {
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}
