// Package accel implements the 4-wide bounding volume hierarchy that
// every scene-level and per-shape intersection query runs against.
//
// Grounded on original_source/include/renoster/bvh.h (node shape,
// traversal ray, tagged node reference) and bvh.cpp (per-node-kind
// intersection, far-to-near child ordering). The BVH is generic over the
// leaf primitive type, the same role the original's Primitive template
// parameter plays.
package accel

import (
	"github.com/tomvbussel/renoster/internal/wide"
	"github.com/tomvbussel/renoster/shading"
	"github.com/tomvbussel/renoster/vecmath"
)

// Node-kind tags, combined exactly as original_source's BVH::NodeType.
const (
	tagLeaf      uint16 = 0x0001
	tagUnaligned uint16 = 0x0002
	tagMotion    uint16 = 0x0004
	tagMotion4D  uint16 = 0x0008
)

const (
	tagAligned       uint16 = 0
	tagAlignedMB            = tagMotion
	tagAlignedMB4D          = tagMotion4D
	tagUnalignedMB          = tagUnaligned | tagMotion
	tagUnalignedMB4D        = tagUnaligned | tagMotion4D
)

// indexBits is the width of the index field packed into a nodeRef; the
// remaining 16 high bits hold the tag.
const indexBits = 48
const indexMask = uint64(1)<<indexBits - 1

// nodeRef packs a node-kind tag (high 16 bits) and an index into one of
// the BVH's arena-owned node slices (low 48 bits). Go's garbage collector
// forbids hiding a real pointer inside an integer the way the original's
// tagged_pointer does, so the low bits index a slice the BVH owns rather
// than addressing memory directly (spec.md §9, "index into an owning
// container").
//
// A child slot that was never assigned by the builder keeps its zero
// value (tag 0, index 0); this is never dereferenced because the
// builder pairs every under-full interior node with an empty-bounds
// entry at the same slot, so the AABB test masks it out before the
// traversal ever reads the ref.
type nodeRef uint64

func newNodeRef(tag uint16, index int) nodeRef {
	if index < 0 || uint64(index) > indexMask {
		panic("accel: node arena exceeded 2^48 entries")
	}
	return nodeRef(uint64(tag)<<indexBits | uint64(index))
}

func (r nodeRef) tag() uint16 { return uint16(uint64(r) >> indexBits) }
func (r nodeRef) index() int  { return int(uint64(r) & indexMask) }

// boundsWide stores the axis-aligned bounds of up to four children
// side by side, one lane per child, mirroring original_source's
// Bounds3v4f.
type boundsWide struct {
	minX, minY, minZ wide.F32x4
	maxX, maxY, maxZ wide.F32x4
}

func newBoundsWide(children [4]vecmath.Bounds3) boundsWide {
	var w boundsWide
	for i, b := range children {
		w.minX[i] = float32(b.Min.X)
		w.minY[i] = float32(b.Min.Y)
		w.minZ[i] = float32(b.Min.Z)
		w.maxX[i] = float32(b.Max.X)
		w.maxY[i] = float32(b.Max.Y)
		w.maxZ[i] = float32(b.Max.Z)
	}
	return w
}

func lerpBoundsWide(b0, b1 boundsWide, t float32) boundsWide {
	return boundsWide{
		minX: b0.minX.Lerp(b1.minX, t),
		minY: b0.minY.Lerp(b1.minY, t),
		minZ: b0.minZ.Lerp(b1.minZ, t),
		maxX: b0.maxX.Lerp(b1.maxX, t),
		maxY: b0.maxY.Lerp(b1.maxY, t),
		maxZ: b0.maxZ.Lerp(b1.maxZ, t),
	}
}

// traversalRay is the ray prepared once per BVH walk, matching
// original_source's TraversalRay: precomputed reciprocal direction and
// per-axis sign, widened tMin/tMax so leaf hits tighten every lane's
// far plane without revisiting the original ray struct.
type traversalRay struct {
	orgX, orgY, orgZ          float32
	invDirX, invDirY, invDirZ float32
	negX, negY, negZ          bool
	time                      float32

	org vecmath.Point3
	dir vecmath.Vector3

	tMin wide.F32x4
	tMax wide.F32x4
}

func newTraversalRay(ray vecmath.Ray) *traversalRay {
	invDir := vecmath.V3(1/ray.D.X, 1/ray.D.Y, 1/ray.D.Z)
	return &traversalRay{
		orgX: float32(ray.O.X), orgY: float32(ray.O.Y), orgZ: float32(ray.O.Z),
		invDirX: float32(invDir.X), invDirY: float32(invDir.Y), invDirZ: float32(invDir.Z),
		negX: ray.D.X < 0, negY: ray.D.Y < 0, negZ: ray.D.Z < 0,
		time: float32(ray.Time),
		org:  ray.O,
		dir:  ray.D,
		tMin: wide.SplatF32x4(float32(ray.TMin)),
		tMax: wide.SplatF32x4(float32(ray.TMax)),
	}
}

func (r *traversalRay) refreshTMax(tMax float64) {
	r.tMax = wide.SplatF32x4(float32(tMax))
}

// intersectBoundsWide runs the slab test against 4 children at once,
// original_source bvh.cpp's anonymous-namespace IntersectBounds.
func intersectBoundsWide(ray *traversalRay, b boundsWide) (wide.Bool4, wide.F32x4) {
	pMinX, pMaxX := b.minX, b.maxX
	if ray.negX {
		pMinX, pMaxX = b.maxX, b.minX
	}
	pMinY, pMaxY := b.minY, b.maxY
	if ray.negY {
		pMinY, pMaxY = b.maxY, b.minY
	}
	pMinZ, pMaxZ := b.minZ, b.maxZ
	if ray.negZ {
		pMinZ, pMaxZ = b.maxZ, b.minZ
	}

	orgX, orgY, orgZ := wide.SplatF32x4(ray.orgX), wide.SplatF32x4(ray.orgY), wide.SplatF32x4(ray.orgZ)
	invX, invY, invZ := wide.SplatF32x4(ray.invDirX), wide.SplatF32x4(ray.invDirY), wide.SplatF32x4(ray.invDirZ)

	tMinX := pMinX.Sub(orgX).Mul(invX)
	tMinY := pMinY.Sub(orgY).Mul(invY)
	tMinZ := pMinZ.Sub(orgZ).Mul(invZ)
	tMaxX := pMaxX.Sub(orgX).Mul(invX)
	tMaxY := pMaxY.Sub(orgY).Mul(invY)
	tMaxZ := pMaxZ.Sub(orgZ).Mul(invZ)

	tMin := tMinX.Max(tMinY).Max(tMinZ.Max(ray.tMin))
	tMax := tMaxX.Min(tMaxY).Min(tMaxZ.Min(ray.tMax))

	return tMin.LessEqual(tMax), tMin
}

func timeIntervalMask(timeMin, timeMax wide.F32x4, time float32) wide.Bool4 {
	t := wide.SplatF32x4(time)
	return timeMin.LessEqual(t).And(timeMax.GreaterEqual(t))
}

// alignedNode is an interior node whose 4 children's bounds are fixed in
// time, original_source's BVH::AlignedNode.
type alignedNode struct {
	children [4]nodeRef
	bounds   boundsWide
}

func (n *alignedNode) intersect(ray *traversalRay) (wide.Bool4, wide.F32x4) {
	return intersectBoundsWide(ray, n.bounds)
}

// alignedNodeMB additionally interpolates between two bounds sets by ray
// time, original_source's BVH::AlignedNodeMB.
type alignedNodeMB struct {
	children       [4]nodeRef
	bounds0, bounds1 boundsWide
}

func (n *alignedNodeMB) intersect(ray *traversalRay) (wide.Bool4, wide.F32x4) {
	b := lerpBoundsWide(n.bounds0, n.bounds1, ray.time)
	return intersectBoundsWide(ray, b)
}

// alignedNodeMB4D additionally masks out children whose valid time
// window excludes the ray's time, original_source's
// BVH::AlignedNodeMB4D.
type alignedNodeMB4D struct {
	alignedNodeMB
	timeMin, timeMax wide.F32x4
}

func (n *alignedNodeMB4D) intersect(ray *traversalRay) (wide.Bool4, wide.F32x4) {
	mask, dist := n.alignedNodeMB.intersect(ray)
	mask = mask.And(timeIntervalMask(n.timeMin, n.timeMax, ray.time))
	return mask, dist
}

// unalignedNode carries a per-child world-to-local matrix that maps the
// ray into the child's unit cube, original_source's BVH::UnalignedNode.
// The builder in this module never emits these (the SAH builder only
// produces axis-aligned splits); the kind exists so traversal stays
// complete against the original's seven node kinds.
type unalignedNode struct {
	children [4]nodeRef
	space    [4]vecmath.Matrix4x4
}

func (n *unalignedNode) intersect(ray *traversalRay) (wide.Bool4, wide.F32x4) {
	var mask wide.Bool4
	var dist wide.F32x4
	for i := 0; i < 4; i++ {
		org := n.space[i].TransformPoint(ray.org)
		dir := n.space[i].TransformVector(ray.dir)
		invDir := vecmath.V3(1/dir.X, 1/dir.Y, 1/dir.Z)

		tLowerX := -org.X * invDir.X
		tLowerY := -org.Y * invDir.Y
		tLowerZ := -org.Z * invDir.Z
		tUpperX := tLowerX + invDir.X
		tUpperY := tLowerY + invDir.Y
		tUpperZ := tLowerZ + invDir.Z

		tMinX, tMaxX := minmax(tLowerX, tUpperX)
		tMinY, tMaxY := minmax(tLowerY, tUpperY)
		tMinZ, tMaxZ := minmax(tLowerZ, tUpperZ)

		tMin := max3(tMinX, tMinY, max2(tMinZ, float32(ray.tMin[i])))
		tMax := min3(tMaxX, tMaxY, min2(tMaxZ, float32(ray.tMax[i])))

		dist[i] = tMin
		mask[i] = tMin <= tMax
	}
	return mask, dist
}

// unalignedNodeMB additionally interpolates a fixed unit-cube bounds by
// ray time after the per-child matrix transform, original_source's
// BVH::UnalignedNodeMB.
type unalignedNodeMB struct {
	children [4]nodeRef
	space0   [4]vecmath.Matrix4x4
	bounds1  boundsWide
}

var unitBoundsWide = boundsWide{
	minX: wide.F32x4{}, minY: wide.F32x4{}, minZ: wide.F32x4{},
	maxX: wide.SplatF32x4(1), maxY: wide.SplatF32x4(1), maxZ: wide.SplatF32x4(1),
}

func (n *unalignedNodeMB) intersect(ray *traversalRay) (wide.Bool4, wide.F32x4) {
	b := lerpBoundsWide(unitBoundsWide, n.bounds1, ray.time)

	var mask wide.Bool4
	var dist wide.F32x4
	for i := 0; i < 4; i++ {
		org := n.space0[i].TransformPoint(ray.org)
		dir := n.space0[i].TransformVector(ray.dir)
		invDir := vecmath.V3(1/dir.X, 1/dir.Y, 1/dir.Z)

		tLowerX := (float64(b.minX[i]) - org.X) * invDir.X
		tLowerY := (float64(b.minY[i]) - org.Y) * invDir.Y
		tLowerZ := (float64(b.minZ[i]) - org.Z) * invDir.Z
		tUpperX := (float64(b.maxX[i]) - org.X) * invDir.X
		tUpperY := (float64(b.maxY[i]) - org.Y) * invDir.Y
		tUpperZ := (float64(b.maxZ[i]) - org.Z) * invDir.Z

		tMinX, tMaxX := minmax(tLowerX, tUpperX)
		tMinY, tMaxY := minmax(tLowerY, tUpperY)
		tMinZ, tMaxZ := minmax(tLowerZ, tUpperZ)

		tMin := max3(tMinX, tMinY, max2(tMinZ, float32(ray.tMin[i])))
		tMax := min3(tMaxX, tMaxY, min2(tMaxZ, float32(ray.tMax[i])))

		dist[i] = tMin
		mask[i] = tMin <= tMax
	}
	return mask, dist
}

// unalignedNodeMB4D additionally masks by the child's valid time window,
// the REDESIGN behavior named in spec.md §9: the original's
// UnalignedNodeMB4D::Intersect recurses into itself instead of calling
// its AlignedNodeMB sibling (a self-recursion bug), so this calls the MB
// (non-4D) intersection and conjoins the time-interval test instead.
type unalignedNodeMB4D struct {
	unalignedNodeMB
	timeMin, timeMax wide.F32x4
}

func (n *unalignedNodeMB4D) intersect(ray *traversalRay) (wide.Bool4, wide.F32x4) {
	mask, dist := n.unalignedNodeMB.intersect(ray)
	mask = mask.And(timeIntervalMask(n.timeMin, n.timeMax, ray.time))
	return mask, dist
}

// leafNode holds the primitives contained in a BVH leaf, original_source's
// BVH::LeafNode<Primitive>.
type leafNode[P shading.Primitive] struct {
	prims []P
}

func minmax(a, b float64) (float32, float32) {
	if a < b {
		return float32(a), float32(b)
	}
	return float32(b), float32(a)
}

func max2(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func min2(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max3(a, b, c float32) float32 { return max2(a, max2(b, c)) }
func min3(a, b, c float32) float32 { return min2(a, min2(b, c)) }
