package film

import (
	"sync"

	"github.com/tomvbussel/renoster/vecmath"
)

// Order controls the sequence in which tiles are handed to workers.
type Order int

const (
	Horizontal Order = iota
	Vertical
	// Spiral is accepted but currently falls back to Horizontal: no
	// worker correctness depends on tile order, and a center-out spiral
	// only pays off with a progressive display watching the image
	// resolve, which this renderer does not have.
	Spiral
)

// tileGenerator hands out tile indices to worker goroutines one at a
// time, the only state the render loop's workers contend on besides
// the film's pixel merge.
type tileGenerator struct {
	order  Order
	nTiles vecmath.Vector2i

	mu    sync.Mutex
	index int
}

func newTileGenerator(order Order, nTiles vecmath.Vector2i) *tileGenerator {
	return &tileGenerator{order: order, nTiles: nTiles}
}

// next returns the next tile index to render, and false once every tile
// has been handed out.
func (g *tileGenerator) next() (vecmath.Point2i, bool) {
	g.mu.Lock()
	total := g.nTiles.X * g.nTiles.Y
	if g.index >= total {
		g.mu.Unlock()
		return vecmath.Point2i{}, false
	}
	index := g.index
	g.index++
	g.mu.Unlock()

	switch g.order {
	case Vertical:
		return vecmath.P2i(index/g.nTiles.Y, index%g.nTiles.Y), true
	default: // Horizontal, Spiral
		return vecmath.P2i(index%g.nTiles.X, index/g.nTiles.X), true
	}
}
