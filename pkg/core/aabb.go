package core

import "math"

// AABB is an axis-aligned bounding box with Min <= Max componentwise.
// Degenerate boxes (one axis collapsed to zero width) are allowed; callers
// that need a non-degenerate box (axis-aligned rectangles) pad it themselves.
type AABB struct {
	Min, Max Vec3
}

func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// Hit runs the slab test over the three axes, tightening [tMin, tMax] as it
// goes. Division by zero (a ray parallel to an axis) is tolerated: the
// resulting +/-Inf either leaves the interval untouched or collapses it,
// and either way the final compare rejects correctly.
func (b AABB) Hit(r Ray, tMin, tMax float64) bool {
	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float64{r.Direction.X, r.Direction.Y, r.Direction.Z}
	min := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	max := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}

	for a := 0; a < 3; a++ {
		invD := 1.0 / dir[a]
		t0 := (min[a] - origin[a]) * invD
		t1 := (max[a] - origin[a]) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax < tMin {
			return false
		}
	}
	return true
}

// Union returns the smallest AABB containing both a and b.
func Union(a, b AABB) AABB {
	return AABB{
		Min: Vec3{math.Min(a.Min.X, b.Min.X), math.Min(a.Min.Y, b.Min.Y), math.Min(a.Min.Z, b.Min.Z)},
		Max: Vec3{math.Max(a.Max.X, b.Max.X), math.Max(a.Max.Y, b.Max.Y), math.Max(a.Max.Z, b.Max.Z)},
	}
}

func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Multiply(0.5)
}

func (b AABB) Size() Vec3 {
	return b.Max.Subtract(b.Min)
}

// LongestAxis returns 0, 1, or 2 for the longest of X, Y, Z.
func (b AABB) LongestAxis() int {
	size := b.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// AxisMin returns Min[axis], used by the BVH build's sort-by-min-on-axis step.
func (b AABB) AxisMin(axis int) float64 {
	switch axis {
	case 0:
		return b.Min.X
	case 1:
		return b.Min.Y
	default:
		return b.Min.Z
	}
}

// Expand pads the box by delta on every side; used by AARect to avoid a
// zero-thickness slab along its plane axis.
func (b AABB) Expand(delta float64) AABB {
	pad := Vec3{delta, delta, delta}
	return AABB{Min: b.Min.Subtract(pad), Max: b.Max.Add(pad)}
}
