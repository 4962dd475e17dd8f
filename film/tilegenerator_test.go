package film

import (
	"testing"

	"github.com/tomvbussel/renoster/vecmath"
)

func TestTileGeneratorHorizontalCoversEveryTileOnce(t *testing.T) {
	nTiles := vecmath.V2i(3, 2)
	g := newTileGenerator(Horizontal, nTiles)

	seen := make(map[vecmath.Point2i]bool)
	for {
		idx, ok := g.next()
		if !ok {
			break
		}
		if seen[idx] {
			t.Fatalf("tile %v generated twice", idx)
		}
		seen[idx] = true
	}

	if len(seen) != nTiles.X*nTiles.Y {
		t.Fatalf("generated %d tiles, want %d", len(seen), nTiles.X*nTiles.Y)
	}
	for y := 0; y < nTiles.Y; y++ {
		for x := 0; x < nTiles.X; x++ {
			if !seen[vecmath.P2i(x, y)] {
				t.Errorf("tile (%d,%d) never generated", x, y)
			}
		}
	}
}

func TestTileGeneratorExhaustedReturnsFalse(t *testing.T) {
	g := newTileGenerator(Horizontal, vecmath.V2i(1, 1))
	if _, ok := g.next(); !ok {
		t.Fatalf("next() = false on first call, want true")
	}
	if _, ok := g.next(); ok {
		t.Fatalf("next() = true after every tile handed out, want false")
	}
}

func TestTileGeneratorVerticalCoversEveryTileOnce(t *testing.T) {
	nTiles := vecmath.V2i(2, 3)
	g := newTileGenerator(Vertical, nTiles)

	count := 0
	for {
		_, ok := g.next()
		if !ok {
			break
		}
		count++
	}
	if count != nTiles.X*nTiles.Y {
		t.Fatalf("generated %d tiles, want %d", count, nTiles.X*nTiles.Y)
	}
}
