package film

import "github.com/tomvbussel/renoster/vecmath"

// Filter reconstructs a continuous image from discrete samples: it
// weights a sample at distance p from a pixel center by Evaluate(p),
// and is zero outside Radius().
type Filter interface {
	Evaluate(p vecmath.Point2) float64
	Radius() vecmath.Vector2
}

// BoxFilter is the reference filter: uniform weight inside its box,
// zero outside it.
type BoxFilter struct {
	radius vecmath.Vector2
}

func NewBoxFilter(radius vecmath.Vector2) *BoxFilter {
	return &BoxFilter{radius: radius}
}

func (f *BoxFilter) Evaluate(p vecmath.Point2) float64 {
	if abs(p.X) <= f.radius.X && abs(p.Y) <= f.radius.Y {
		return 1
	}
	return 0
}

func (f *BoxFilter) Radius() vecmath.Vector2 { return f.radius }

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
