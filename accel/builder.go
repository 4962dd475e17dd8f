package accel

import (
	"math"

	"github.com/tomvbussel/renoster/shading"
	"github.com/tomvbussel/renoster/vecmath"
)

// numBins is the number of SAH bins evaluated per axis, original_source's
// accel/binning.h BinMapping::NumBins.
const numBins = 16

// DefaultMinLeafSize is the leaf threshold for a top-level scene BVH.
// Mesh-local BVHs pass a larger value (16 in the original, spec.md
// §4.2.2) to keep leaves coarser than individual triangles.
const DefaultMinLeafSize = 1

type primInfo[P shading.Primitive] struct {
	bounds   vecmath.Bounds3
	centroid vecmath.Point3
	prim     P
}

type buildRecord[P shading.Primitive] struct {
	bounds     vecmath.Bounds3
	centBounds vecmath.Bounds3
	primInfo   []primInfo[P]
}

// Build constructs a 4-wide BVH over prims with an SAH-binned object
// splitter, original_source's BVHBuilder<Primitive, ObjectSplitter>::Build.
// A minLeafSize below 1 uses DefaultMinLeafSize.
func Build[P shading.Primitive](prims []P, minLeafSize int) *BVH[P] {
	if minLeafSize < 1 {
		minLeafSize = DefaultMinLeafSize
	}

	bvh := &BVH[P]{}
	if len(prims) == 0 {
		return bvh
	}

	infos := make([]primInfo[P], len(prims))
	rec := buildRecord[P]{bounds: vecmath.EmptyBounds3(), centBounds: vecmath.EmptyBounds3()}
	for i, p := range prims {
		b := p.WorldBounds()
		c := b.Center()
		infos[i] = primInfo[P]{bounds: b, centroid: c, prim: p}
		rec.bounds = vecmath.UnionBounds3(rec.bounds, b)
		rec.centBounds = rec.centBounds.Expand(c)
	}
	rec.primInfo = infos

	bvh.root = bvh.buildRecursive(rec, minLeafSize)
	return bvh
}

// buildRecursive mirrors BVHBuilder::BuildRecursive: split the worst
// (largest-surface-area) child iteratively until 4 children exist or
// every candidate is at or below minLeafSize or cannot be split (all its
// centroids fall in one bin), then recurse into each. A record that
// cannot be split becomes a leaf.
func (bvh *BVH[P]) buildRecursive(cur buildRecord[P], minLeafSize int) nodeRef {
	if len(cur.primInfo) <= minLeafSize {
		return bvh.createLeaf(cur)
	}

	var children [4]buildRecord[P]
	var unsplittable [4]bool
	children[0] = cur
	numChildren := 1

	for numChildren < 4 {
		worstChild := -1
		worstArea := math.Inf(-1)
		for i := 0; i < numChildren; i++ {
			if len(children[i].primInfo) <= minLeafSize || unsplittable[i] {
				continue
			}
			area := children[i].bounds.SurfaceArea()
			if area > worstArea {
				worstArea = area
				worstChild = i
			}
		}
		if worstChild == -1 {
			break
		}

		split := bestSplit(children[worstChild])
		left, right := performSplit(children[worstChild], split)
		if len(left.primInfo) == 0 || len(right.primInfo) == 0 {
			unsplittable[worstChild] = true
			continue
		}
		children[worstChild] = left
		children[numChildren] = right
		numChildren++
	}

	if numChildren == 1 {
		return bvh.createLeaf(children[0])
	}

	var childBounds [4]vecmath.Bounds3
	for i := 0; i < 4; i++ {
		if i < numChildren {
			childBounds[i] = children[i].bounds
		} else {
			childBounds[i] = vecmath.EmptyBounds3()
		}
	}

	idx := len(bvh.alignedNodes)
	bvh.alignedNodes = append(bvh.alignedNodes, alignedNode{bounds: newBoundsWide(childBounds)})
	ref := newNodeRef(tagAligned, idx)

	var kids [4]nodeRef
	for i := 0; i < numChildren; i++ {
		kids[i] = bvh.buildRecursive(children[i], minLeafSize)
	}
	bvh.alignedNodes[idx].children = kids

	return ref
}

func (bvh *BVH[P]) createLeaf(rec buildRecord[P]) nodeRef {
	prims := make([]P, len(rec.primInfo))
	for i, info := range rec.primInfo {
		prims[i] = info.prim
	}
	idx := len(bvh.leaves)
	bvh.leaves = append(bvh.leaves, leafNode[P]{prims: prims})
	return newNodeRef(tagLeaf, idx)
}

// binMapping maps a centroid to one of numBins equally spaced bins per
// axis, original_source's accel/binning.h BinMapping.
type binMapping struct {
	offset vecmath.Point3
	scale  vecmath.Vector3
}

func newBinMapping(centBounds vecmath.Bounds3) binMapping {
	diag := centBounds.Diagonal()
	axisScale := func(d float64) float64 {
		if d > vecmath.Epsilon {
			return float64(numBins) / d
		}
		return 0
	}
	return binMapping{
		offset: centBounds.Min,
		scale:  vecmath.V3(axisScale(diag.X), axisScale(diag.Y), axisScale(diag.Z)),
	}
}

func (m binMapping) bin(c vecmath.Point3) [3]int {
	axisBin := func(v, offset, scale float64) int {
		b := int(math.Floor((v - offset) * scale))
		if b > numBins-1 {
			b = numBins - 1
		}
		if b < 0 {
			b = 0
		}
		return b
	}
	return [3]int{
		axisBin(c.X, m.offset.X, m.scale.X),
		axisBin(c.Y, m.offset.Y, m.scale.Y),
		axisBin(c.Z, m.offset.Z, m.scale.Z),
	}
}

// binSplit is the best split found along any axis, original_source's
// BinSplit.
type binSplit struct {
	mapping               binMapping
	sah                   float64
	leftCount, rightCount int
	dim, pos              int
}

// bestSplit bins every primitive's centroid, prefix-scans left-to-right
// and right-to-left per axis for (count * surface area) partial costs,
// then picks the axis/position minimising the SAH cost. Ties keep the
// first candidate found, which iterates axis-ascending then
// position-ascending — original_source's BinInfo::BestSplit.
func bestSplit[P shading.Primitive](cur buildRecord[P]) binSplit {
	mapping := newBinMapping(cur.centBounds)

	var bounds [numBins][3]vecmath.Bounds3
	var counts [numBins][3]int
	for b := 0; b < numBins; b++ {
		for d := 0; d < 3; d++ {
			bounds[b][d] = vecmath.EmptyBounds3()
		}
	}
	for _, info := range cur.primInfo {
		bin := mapping.bin(info.centroid)
		for d := 0; d < 3; d++ {
			bounds[bin[d]][d] = bounds[bin[d]][d].Expand(info.centroid)
			counts[bin[d]][d]++
		}
	}

	split := binSplit{mapping: mapping, sah: math.Inf(1), dim: -1, pos: -1}
	for d := 0; d < 3; d++ {
		var leftSAH [numBins]float64
		leftBounds := vecmath.EmptyBounds3()
		leftCount := 0
		var leftCounts [numBins]int
		for b := 0; b < numBins; b++ {
			leftBounds = vecmath.UnionBounds3(leftBounds, bounds[b][d])
			leftCount += counts[b][d]
			leftCounts[b] = leftCount
			leftSAH[b] = float64(leftCounts[b]) * leftBounds.SurfaceArea()
		}

		var rightSAH [numBins]float64
		rightBounds := vecmath.EmptyBounds3()
		rightCount := 0
		var rightCounts [numBins]int
		for b := numBins - 1; b >= 0; b-- {
			rightBounds = vecmath.UnionBounds3(rightBounds, bounds[b][d])
			rightCount += counts[b][d]
			rightCounts[b] = rightCount
			rightSAH[b] = float64(rightCounts[b]) * rightBounds.SurfaceArea()
		}

		for p := 0; p < numBins-1; p++ {
			splitSAH := leftSAH[p] + rightSAH[p+1]
			if splitSAH < split.sah {
				split.dim = d
				split.pos = p
				split.sah = splitSAH
				split.leftCount = leftCounts[p]
				split.rightCount = rightCounts[p+1]
			}
		}
	}

	return split
}

// performSplit partitions cur's primitives in place around split,
// original_source's ObjectSplitter::PerformSplit.
func performSplit[P shading.Primitive](cur buildRecord[P], split binSplit) (left, right buildRecord[P]) {
	mid := partitionByBin(cur.primInfo, split)

	left.primInfo = cur.primInfo[:mid]
	left.bounds = vecmath.EmptyBounds3()
	left.centBounds = vecmath.EmptyBounds3()
	for _, info := range left.primInfo {
		left.bounds = vecmath.UnionBounds3(left.bounds, info.bounds)
		left.centBounds = left.centBounds.Expand(info.centroid)
	}

	right.primInfo = cur.primInfo[mid:]
	right.bounds = vecmath.EmptyBounds3()
	right.centBounds = vecmath.EmptyBounds3()
	for _, info := range right.primInfo {
		right.bounds = vecmath.UnionBounds3(right.bounds, info.bounds)
		right.centBounds = right.centBounds.Expand(info.centroid)
	}
	return left, right
}

// partitionByBin reorders s so every element whose bin along split.dim is
// <= split.pos comes first, returning the boundary index; the in-place
// analogue of std::partition.
func partitionByBin[P shading.Primitive](s []primInfo[P], split binSplit) int {
	i := 0
	for j := 0; j < len(s); j++ {
		bin := split.mapping.bin(s[j].centroid)
		if bin[split.dim] <= split.pos {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	return i
}
