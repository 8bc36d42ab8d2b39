package geometry

import "github.com/CampbellOwen/RayTracing/pkg/core"

// AARect is a rectangle in the plane z = K, spanning [X0,X1] x [Y0,Y1].
// It is the primitive used for quad lights and walls; its bounding box is
// padded in z since the plane itself has zero thickness.
type AARect struct {
	X0, X1, Y0, Y1, K float64
	Material          core.Material
}

func NewAARect(x0, x1, y0, y1, k float64, material core.Material) *AARect {
	return &AARect{X0: x0, X1: x1, Y0: y0, Y1: y1, K: k, Material: material}
}

func (q *AARect) Hit(r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	if r.Direction.Z == 0 {
		return core.HitRecord{}, false
	}
	t := (q.K - r.Origin.Z) / r.Direction.Z
	if t < tMin || t > tMax {
		return core.HitRecord{}, false
	}
	p := r.At(t)
	if p.X < q.X0 || p.X > q.X1 || p.Y < q.Y0 || p.Y > q.Y1 {
		return core.HitRecord{}, false
	}

	u := (p.X - q.X0) / (q.X1 - q.X0)
	v := (p.Y - q.Y0) / (q.Y1 - q.Y0)
	outwardNormal := core.Vec3{X: 0, Y: 0, Z: 1}

	hit := core.HitRecord{T: t, Point: p, U: u, V: v, Material: q.Material}
	hit.SetFaceNormal(r, outwardNormal)
	return hit, true
}

func (q *AARect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box := core.AABB{
		Min: core.Vec3{X: q.X0, Y: q.Y0, Z: q.K},
		Max: core.Vec3{X: q.X1, Y: q.Y1, Z: q.K},
	}
	return box.Expand(1e-4), true
}

// Area is the rectangle's surface area, used by rect-light PDF conversion.
func (q *AARect) Area() float64 {
	return (q.X1 - q.X0) * (q.Y1 - q.Y0)
}
