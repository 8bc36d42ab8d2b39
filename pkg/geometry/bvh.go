package geometry

import (
	"math/rand"
	"sort"

	"github.com/CampbellOwen/RayTracing/pkg/core"
)

// BVHNode is a binary bounding-volume hierarchy over a fixed set of
// Intersectables, captured once at build time. A leaf stores the same
// primitive in both Left and Right; a single traversal does not double
// count this because both branches report the same hit and taking the
// closer of two identical hits is idempotent.
type BVHNode struct {
	Left, Right core.Intersectable
	Box         core.AABB
}

// NewBVH builds a tree over a snapshot of shapes. The random axis choice at
// each internal node (rather than always the longest axis) is a deliberate
// stochastic variant of the classic median-split BVH.
func NewBVH(shapes []core.Intersectable, time0, time1 float64) *BVHNode {
	snapshot := make([]core.Intersectable, len(shapes))
	copy(snapshot, shapes)
	return buildBVH(snapshot, time0, time1)
}

func buildBVH(shapes []core.Intersectable, time0, time1 float64) *BVHNode {
	switch len(shapes) {
	case 1:
		box, _ := shapes[0].BoundingBox(time0, time1)
		return &BVHNode{Left: shapes[0], Right: shapes[0], Box: box}
	case 2:
		boxA, _ := shapes[0].BoundingBox(time0, time1)
		boxB, _ := shapes[1].BoundingBox(time0, time1)
		return &BVHNode{Left: shapes[0], Right: shapes[1], Box: core.Union(boxA, boxB)}
	default:
		axis := rand.Intn(3)
		sort.SliceStable(shapes, func(i, j int) bool {
			return boxMinLess(shapes[i], shapes[j], axis, time0, time1)
		})
		mid := len(shapes) / 2
		left := buildBVH(shapes[:mid], time0, time1)
		right := buildBVH(shapes[mid:], time0, time1)
		return &BVHNode{Left: left, Right: right, Box: core.Union(left.Box, right.Box)}
	}
}

// boxMinLess orders by bounding-box min on axis; a shape with no bounding
// box (shouldn't happen for finite primitives) sorts first.
func boxMinLess(a, b core.Intersectable, axis int, time0, time1 float64) bool {
	boxA, okA := a.BoundingBox(time0, time1)
	boxB, okB := b.BoundingBox(time0, time1)
	if !okA {
		return true
	}
	if !okB {
		return false
	}
	return boxA.AxisMin(axis) < boxB.AxisMin(axis)
}

func (n *BVHNode) Hit(r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	if !n.Box.Hit(r, tMin, tMax) {
		return core.HitRecord{}, false
	}

	leftHit, hitLeft := n.Left.Hit(r, tMin, tMax)
	if hitLeft {
		tMax = leftHit.T
	}
	rightHit, hitRight := n.Right.Hit(r, tMin, tMax)

	if hitRight {
		return rightHit, true
	}
	if hitLeft {
		return leftHit, true
	}
	return core.HitRecord{}, false
}

func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.Box, true
}

// ShapeList is a plain, unaccelerated collection of Intersectables
// implementing the same contract by folding over every member and
// tightening tMax after each hit. It exists for the BVH-equivalence
// property tests and as the root of a scene with no objects.
type ShapeList struct {
	Shapes []core.Intersectable
}

func (l ShapeList) Hit(r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	var closest core.HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, s := range l.Shapes {
		if hit, ok := s.Hit(r, tMin, closestSoFar); ok {
			hitAnything = true
			closestSoFar = hit.T
			closest = hit
		}
	}
	return closest, hitAnything
}

func (l ShapeList) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if len(l.Shapes) == 0 {
		return core.AABB{}, false
	}
	box, ok := l.Shapes[0].BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}
	for _, s := range l.Shapes[1:] {
		b, ok := s.BoundingBox(time0, time1)
		if !ok {
			return core.AABB{}, false
		}
		box = core.Union(box, b)
	}
	return box, true
}
