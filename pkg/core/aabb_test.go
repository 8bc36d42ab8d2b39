package core

import "testing"

func TestAABBUnionContainsBoth(t *testing.T) {
	a := AABB{Min: Vec3{0, 0, 0}, Max: Vec3{1, 1, 1}}
	b := AABB{Min: Vec3{-1, 2, 0}, Max: Vec3{0.5, 3, 4}}
	u := Union(a, b)

	corners := []Vec3{a.Min, a.Max, b.Min, b.Max}
	for _, c := range corners {
		if c.X < u.Min.X || c.X > u.Max.X ||
			c.Y < u.Min.Y || c.Y > u.Max.Y ||
			c.Z < u.Min.Z || c.Z > u.Max.Z {
			t.Errorf("Union(%v, %v) = %v does not contain %v", a, b, u, c)
		}
	}
}

func TestAABBSlabMiss(t *testing.T) {
	box := AABB{Min: Vec3{-1, -1, -2}, Max: Vec3{1, 1, -1}}
	ray := NewRay(Vec3{-2, 0, 0}, Vec3{1, 0, 0})
	if box.Hit(ray, 0.001, 1e9) {
		t.Error("expected ray along x-axis to miss a box on the z=[-2,-1] slab")
	}
}

func TestAABBSlabHit(t *testing.T) {
	box := AABB{Min: Vec3{-1, -1, -1}, Max: Vec3{1, 1, 1}}
	ray := NewRay(Vec3{-2, 0, 0}, Vec3{1, 0, 0})
	if !box.Hit(ray, 0.001, 1e9) {
		t.Error("expected ray through box center to hit")
	}
}

func TestAABBParallelRayDoesNotPanic(t *testing.T) {
	box := AABB{Min: Vec3{-1, -1, -1}, Max: Vec3{1, 1, 1}}
	ray := NewRay(Vec3{0, 0, -5}, Vec3{1, 0, 0})
	// direction.Z == 0: division by zero must resolve to a clean miss, not
	// a panic or NaN propagation into the bool result.
	if box.Hit(ray, 0.001, 1e9) {
		t.Error("expected a ray parallel to the z slab and outside it to miss")
	}
}
