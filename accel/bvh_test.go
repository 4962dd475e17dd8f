package accel

import (
	"math"
	"testing"

	"github.com/tomvbussel/renoster/shading"
	"github.com/tomvbussel/renoster/vecmath"
)

// box is a unit axis-aligned cube centered at Center, just complex
// enough to exercise BVH traversal without implementing real geometry.
type box struct {
	Center vecmath.Point3
	ID     int
}

func (b box) bounds() vecmath.Bounds3 {
	half := vecmath.V3(0.5, 0.5, 0.5)
	return vecmath.Bounds3{Min: b.Center.SubVec(half), Max: b.Center.Add(half)}
}

func (b box) Intersect(ray *vecmath.Ray, sp *shading.ShadingPoint) bool {
	bnd := b.bounds()
	tMin, tMax := ray.TMin, ray.TMax
	for axis := 0; axis < 3; axis++ {
		o, d := ray.O.Get(axis), ray.D.Get(axis)
		lo, hi := bnd.Min.Get(axis), bnd.Max.Get(axis)
		if d == 0 {
			if o < lo || o > hi {
				return false
			}
			continue
		}
		inv := 1 / d
		t0, t1 := (lo-o)*inv, (hi-o)*inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMin > tMax {
			return false
		}
	}
	if tMin > ray.TMax || tMin < ray.TMin {
		return false
	}
	ray.TMax = tMin
	sp.P = ray.At(tMin)
	sp.Face = b.ID
	return true
}

func (b box) Occluded(ray vecmath.Ray) bool {
	var sp shading.ShadingPoint
	r := ray
	return b.Intersect(&r, &sp)
}

func (b box) WorldBounds() vecmath.Bounds3 { return b.bounds() }

func boxRow(n int) []box {
	boxes := make([]box, n)
	for i := 0; i < n; i++ {
		boxes[i] = box{Center: vecmath.P3(float64(i)*4, 0, 0), ID: i}
	}
	return boxes
}

func TestBuildEmptyIsEmpty(t *testing.T) {
	bvh := Build[box](nil, DefaultMinLeafSize)
	if !bvh.isEmpty() {
		t.Errorf("Build(nil) produced a non-empty tree")
	}
	ray := vecmath.NewRay(vecmath.P3(0, 0, -10), vecmath.V3(0, 0, 1), 0, math.Inf(1), 0)
	var sp shading.ShadingPoint
	if bvh.Intersect(&ray, &sp) {
		t.Errorf("Intersect() on an empty BVH reported a hit")
	}
	if bvh.Occluded(ray) {
		t.Errorf("Occluded() on an empty BVH reported a hit")
	}
}

func TestIntersectFindsNearestBox(t *testing.T) {
	boxes := boxRow(8)
	bvh := Build[box](boxes, DefaultMinLeafSize)

	ray := vecmath.NewRay(vecmath.P3(12, 0, -10), vecmath.V3(0, 0, 1), 0, math.Inf(1), 0)
	var sp shading.ShadingPoint
	if !bvh.Intersect(&ray, &sp) {
		t.Fatalf("Intersect() = false, want a hit on box 3")
	}
	if sp.Face != 3 {
		t.Errorf("Intersect() hit box %d, want box 3", sp.Face)
	}
	if math.Abs(sp.P.Z+0.5) > 1e-9 {
		t.Errorf("sp.P.Z = %v, want -0.5 (near face)", sp.P.Z)
	}
}

func TestIntersectMisses(t *testing.T) {
	boxes := boxRow(8)
	bvh := Build[box](boxes, DefaultMinLeafSize)

	ray := vecmath.NewRay(vecmath.P3(100, 100, -10), vecmath.V3(0, 0, 1), 0, math.Inf(1), 0)
	var sp shading.ShadingPoint
	if bvh.Intersect(&ray, &sp) {
		t.Errorf("Intersect() reported a hit for a ray that misses every box")
	}
}

func TestIntersectTightensTMaxAcrossLeaves(t *testing.T) {
	boxes := boxRow(8)
	bvh := Build[box](boxes, DefaultMinLeafSize)

	ray := vecmath.NewRay(vecmath.P3(-10, 0, 0), vecmath.V3(1, 0, 0), 0, math.Inf(1), 0)
	var sp shading.ShadingPoint
	if !bvh.Intersect(&ray, &sp) {
		t.Fatalf("Intersect() = false, want a hit on box 0")
	}
	if sp.Face != 0 {
		t.Errorf("Intersect() hit box %d along the ray's axis, want nearest box 0", sp.Face)
	}
}

func TestOccludedReturnsTrueOnAnyHit(t *testing.T) {
	boxes := boxRow(8)
	bvh := Build[box](boxes, DefaultMinLeafSize)

	ray := vecmath.NewRay(vecmath.P3(16, 0, -10), vecmath.V3(0, 0, 1), 0, math.Inf(1), 0)
	if !bvh.Occluded(ray) {
		t.Errorf("Occluded() = false, want true for a ray crossing box 4")
	}
}

func TestOccludedRespectsTMax(t *testing.T) {
	boxes := boxRow(8)
	bvh := Build[box](boxes, DefaultMinLeafSize)

	ray := vecmath.NewRay(vecmath.P3(16, 0, -10), vecmath.V3(0, 0, 1), 0, 5, 0)
	if bvh.Occluded(ray) {
		t.Errorf("Occluded() = true for a ray whose TMax ends before reaching the box")
	}
}

func TestBuildProducesLeavesAtOrBelowMinLeafSize(t *testing.T) {
	boxes := boxRow(40)
	bvh := Build[box](boxes, 4)
	for i, leaf := range bvh.leaves {
		if len(leaf.prims) > 4 {
			t.Errorf("leaf %d has %d primitives, want <= 4", i, len(leaf.prims))
		}
	}
	total := 0
	for _, leaf := range bvh.leaves {
		total += len(leaf.prims)
	}
	if total != len(boxes) {
		t.Errorf("leaves hold %d primitives total, want %d", total, len(boxes))
	}
}

func TestBuildSingleLeafWhenBelowMinLeafSize(t *testing.T) {
	boxes := boxRow(3)
	bvh := Build[box](boxes, 8)
	if len(bvh.leaves) != 1 {
		t.Fatalf("len(leaves) = %d, want 1 (whole set fits under minLeafSize)", len(bvh.leaves))
	}
	if len(bvh.alignedNodes) != 0 {
		t.Errorf("len(alignedNodes) = %d, want 0 (no split needed)", len(bvh.alignedNodes))
	}
}
