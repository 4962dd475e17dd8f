package film

import (
	"math"

	"github.com/tomvbussel/renoster/sampling"
	"github.com/tomvbussel/renoster/vecmath"
)

// FilterTable tabulates a Filter over a 2*tableSize x 2*tableSize grid
// spanning [-radius, +radius]^2, so the integrator can both evaluate the
// filter cheaply (a table lookup instead of a virtual call) and
// importance-sample it (draw pFilter with probability proportional to
// |filter value|, rather than rejection-sampling the box).
type FilterTable struct {
	tableSize int
	radius    vecmath.Vector2
	invRadius vecmath.Vector2
	table     []float64
	pTable    *sampling.Distribution2D
}

func NewFilterTable(filter Filter, tableSize int) *FilterTable {
	radius := filter.Radius()
	invRadius := vecmath.V2(1/radius.X, 1/radius.Y)

	table := make([]float64, 4*tableSize*tableSize)
	offset := 0
	for y := -tableSize; y < tableSize; y++ {
		for x := -tableSize; x < tableSize; x++ {
			p := vecmath.P2(
				(float64(x)+0.5)*radius.X/float64(tableSize),
				(float64(y)+0.5)*radius.Y/float64(tableSize),
			)
			table[offset] = filter.Evaluate(p)
			offset++
		}
	}

	absTable := make([]float64, len(table))
	for i, v := range table {
		absTable[i] = abs(v)
	}
	pTable := sampling.NewDistribution2D(absTable, vecmath.P2i(2*tableSize, 2*tableSize))

	return &FilterTable{
		tableSize: tableSize,
		radius:    radius,
		invRadius: invRadius,
		table:     table,
		pTable:    pTable,
	}
}

// Evaluate looks up the tabulated filter weight at p, in the same raw
// filter-space units passed to a Filter's own Evaluate.
func (t *FilterTable) Evaluate(p vecmath.Point2) float64 {
	pFilter := vecmath.P2(p.X*t.invRadius.X, p.Y*t.invRadius.Y)
	pTable := vecmath.P2(
		(pFilter.X+1)*float64(t.tableSize),
		(pFilter.Y+1)*float64(t.tableSize),
	)

	ix := clampInt(int(math.Floor(pTable.X)), 0, 2*t.tableSize-1)
	iy := clampInt(int(math.Floor(pTable.Y)), 0, 2*t.tableSize-1)

	return t.table[iy*2*t.tableSize+ix]
}

// Sample draws a filter-space offset p with probability proportional to
// the tabulated |filter value|, returning its pdf and the filter weight
// at p. uv is a pair of uniform samples in [0, 1)^2.
func (t *FilterTable) Sample(uv vecmath.Point2) (p vecmath.Point2, pdf, weight float64) {
	pTable, pdf := t.pTable.SampleContinuous(uv)

	pUnscaled := vecmath.P2(
		pTable.X/float64(t.tableSize)-1,
		pTable.Y/float64(t.tableSize)-1,
	)
	p = vecmath.P2(pUnscaled.X*t.radius.X, pUnscaled.Y*t.radius.Y)
	pdf *= float64(t.tableSize*t.tableSize) / (t.radius.X * t.radius.Y)

	// (floor(y), floor(x)) indexed with the 2*tableSize row stride that
	// matches the table's construction order: the original computes
	// floor(y) twice here and indexes with a bare tableSize stride.
	ix := clampInt(int(math.Floor(pTable.X)), 0, 2*t.tableSize-1)
	iy := clampInt(int(math.Floor(pTable.Y)), 0, 2*t.tableSize-1)
	weight = t.table[iy*2*t.tableSize+ix]

	return p, pdf, weight
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
