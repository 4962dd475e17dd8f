package accel

import (
	"math/bits"

	"github.com/tomvbussel/renoster/internal/wide"
	"github.com/tomvbussel/renoster/shading"
	"github.com/tomvbussel/renoster/vecmath"
)

// stackDepth is the traversal stack's fixed capacity. Original_source
// uses 64 entries; the builder's branching factor (4) and the fact that
// recursion always stops at a leaf make that more than any input the
// builder can produce needs in practice (spec.md §4.2.3).
const stackDepth = 64

// BVH is a 4-wide bounding volume hierarchy over primitives of type P.
// The zero value is an empty tree: Intersect and Occluded report no hit.
// Grounded on original_source/include/renoster/bvh.h.
type BVH[P shading.Primitive] struct {
	root nodeRef

	alignedNodes       []alignedNode
	alignedMBNodes     []alignedNodeMB
	alignedMB4DNodes   []alignedNodeMB4D
	unalignedNodes     []unalignedNode
	unalignedMBNodes   []unalignedNodeMB
	unalignedMB4DNodes []unalignedNodeMB4D
	leaves             []leafNode[P]
}

func (bvh *BVH[P]) isEmpty() bool {
	return len(bvh.alignedNodes) == 0 && len(bvh.leaves) == 0
}

func (bvh *BVH[P]) childrenOf(ref nodeRef) [4]nodeRef {
	switch ref.tag() {
	case tagAligned:
		return bvh.alignedNodes[ref.index()].children
	case tagAlignedMB:
		return bvh.alignedMBNodes[ref.index()].children
	case tagAlignedMB4D:
		return bvh.alignedMB4DNodes[ref.index()].children
	case tagUnaligned:
		return bvh.unalignedNodes[ref.index()].children
	case tagUnalignedMB:
		return bvh.unalignedMBNodes[ref.index()].children
	case tagUnalignedMB4D:
		return bvh.unalignedMB4DNodes[ref.index()].children
	default:
		panic("accel: unknown node tag")
	}
}

// intersectChildren dispatches to the node kind named by ref's tag,
// original_source's BVH::BaseNode::Intersect switch on node type.
func (bvh *BVH[P]) intersectChildren(ref nodeRef, ray *traversalRay) (wide.Bool4, wide.F32x4) {
	switch ref.tag() {
	case tagAligned:
		return bvh.alignedNodes[ref.index()].intersect(ray)
	case tagAlignedMB:
		return bvh.alignedMBNodes[ref.index()].intersect(ray)
	case tagAlignedMB4D:
		return bvh.alignedMB4DNodes[ref.index()].intersect(ray)
	case tagUnaligned:
		return bvh.unalignedNodes[ref.index()].intersect(ray)
	case tagUnalignedMB:
		return bvh.unalignedMBNodes[ref.index()].intersect(ray)
	case tagUnalignedMB4D:
		return bvh.unalignedMB4DNodes[ref.index()].intersect(ray)
	default:
		panic("accel: unknown node tag")
	}
}

// Intersect walks the tree looking for the closest primitive hit before
// ray.TMax, tightening ray.TMax as primitives are found and writing the
// hit's shading point into sp. original_source's BVH::Intersect.
func (bvh *BVH[P]) Intersect(ray *vecmath.Ray, sp *shading.ShadingPoint) bool {
	if bvh.isEmpty() {
		return false
	}

	travRay := newTraversalRay(*ray)

	var stack [stackDepth]nodeRef
	stack[0] = bvh.root
	top := 1

	hit := false
	for top != 0 {
		top--
		cur := stack[top]

		if cur.tag() != tagLeaf {
			mask, dist := bvh.intersectChildren(cur, travRay)
			children := bvh.childrenOf(cur)
			top = pushFarToNear(children, mask, dist, stack[:], top)
		} else {
			leaf := &bvh.leaves[cur.index()]
			for i := range leaf.prims {
				if leaf.prims[i].Intersect(ray, sp) {
					hit = true
				}
			}
			travRay.refreshTMax(ray.TMax)
		}
	}

	return hit
}

// Occluded walks the tree looking for any primitive hit before ray.TMax,
// returning as soon as one is found. Node ordering doesn't matter here,
// unlike Intersect. original_source's BVH::Occluded.
func (bvh *BVH[P]) Occluded(ray vecmath.Ray) bool {
	if bvh.isEmpty() {
		return false
	}

	travRay := newTraversalRay(ray)

	var stack [stackDepth]nodeRef
	stack[0] = bvh.root
	top := 1

	for top != 0 {
		top--
		cur := stack[top]

		if cur.tag() != tagLeaf {
			mask, _ := bvh.intersectChildren(cur, travRay)
			children := bvh.childrenOf(cur)
			m := mask.Mask()
			for m != 0 {
				i := bits.TrailingZeros32(m)
				m &= m - 1
				stack[top] = children[i]
				top++
			}
		} else {
			leaf := &bvh.leaves[cur.index()]
			for i := range leaf.prims {
				if leaf.prims[i].Occluded(ray) {
					return true
				}
			}
			travRay.refreshTMax(ray.TMax)
		}
	}

	return false
}

// pushFarToNear pushes the live children named by mask onto stack in
// far-to-near order, so the nearest is popped (and visited) first, and
// returns the new stack top. For 2-4 hits it performs the explicit
// minimum-element sorts original_source's TraverseNode uses instead of a
// general sort, since the live set is at most 4 elements.
func pushFarToNear(children [4]nodeRef, mask wide.Bool4, dist wide.F32x4, stack []nodeRef, top int) int {
	m := mask.Mask()
	if m == 0 {
		return top
	}

	i0 := bits.TrailingZeros32(m)
	m &= m - 1
	c0 := children[i0]
	if m == 0 {
		stack[top] = c0
		return top + 1
	}

	i1 := bits.TrailingZeros32(m)
	m &= m - 1
	c1 := children[i1]
	if dist[i1] < dist[i0] {
		i0, i1 = i1, i0
		c0, c1 = c1, c0
	}
	if m == 0 {
		// c0 is nearer than c1; push far (c1) then near (c0) so c0
		// ends up on top of the stack and is popped first.
		stack[top] = c1
		stack[top+1] = c0
		return top + 2
	}

	i2 := bits.TrailingZeros32(m)
	m &= m - 1
	c2 := children[i2]
	if dist[i2] < dist[i1] {
		i1, i2 = i2, i1
		c1, c2 = c2, c1
	}
	if dist[i1] < dist[i0] {
		i0, i1 = i1, i0
		c0, c1 = c1, c0
	}
	if m == 0 {
		stack[top] = c2
		stack[top+1] = c1
		stack[top+2] = c0
		return top + 3
	}

	i3 := bits.TrailingZeros32(m)
	c3 := children[i3]
	if dist[i3] < dist[i2] {
		i2, i3 = i3, i2
		c2, c3 = c3, c2
	}
	if dist[i2] < dist[i1] {
		i1, i2 = i2, i1
		c1, c2 = c2, c1
	}
	if dist[i1] < dist[i0] {
		i0, i1 = i1, i0
		c0, c1 = c1, c0
	}
	stack[top] = c3
	stack[top+1] = c2
	stack[top+2] = c1
	stack[top+3] = c0
	return top + 4
}
