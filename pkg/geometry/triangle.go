package geometry

import "github.com/CampbellOwen/RayTracing/pkg/core"

// Triangle is three indices into a shared Mesh. Two behaviors here are
// deliberately preserved even though they look like bugs next to the rest
// of the primitives:
//
//   - the barycentric interpolation weights are applied in the order
//     (u, v, 1-u-v) rather than (1-u-v, u, v);
//   - FrontFace is dir.normal > 0, the opposite sign convention from every
//     other primitive's invariant F.
//
// Both come from the mesh importer this was ported from and are tied
// together: changing one without the other silently breaks lit meshes from
// the inside. Leave them as they are.
type Triangle struct {
	I0, I1, I2 int
	Mesh       *Mesh
}

const triangleEpsilon = 1e-8

func (t *Triangle) v0() core.Vec3 { return t.Mesh.Vertices[t.I0] }
func (t *Triangle) v1() core.Vec3 { return t.Mesh.Vertices[t.I1] }
func (t *Triangle) v2() core.Vec3 { return t.Mesh.Vertices[t.I2] }

func (t *Triangle) hasNormals() bool { return len(t.Mesh.Normals) > 0 }
func (t *Triangle) hasUVs() bool     { return len(t.Mesh.UVs) > 0 }

func (t *Triangle) Hit(r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	v0, v1, v2 := t.v0(), t.v1(), t.v2()
	e1 := v1.Subtract(v0)
	e2 := v2.Subtract(v0)
	h := r.Direction.Cross(e2)
	det := e1.Dot(h)
	if det > -triangleEpsilon && det < triangleEpsilon {
		return core.HitRecord{}, false
	}
	invDet := 1.0 / det

	s := r.Origin.Subtract(v0)
	u := invDet * s.Dot(h)
	if u < 0 || u > 1 {
		return core.HitRecord{}, false
	}

	q := s.Cross(e1)
	v := invDet * r.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return core.HitRecord{}, false
	}

	dist := invDet * e2.Dot(q)
	if dist <= triangleEpsilon || dist < tMin || dist > tMax {
		return core.HitRecord{}, false
	}

	w := 1 - u - v
	point := r.At(dist)

	var normal core.Vec3
	if t.hasNormals() {
		n0, n1, n2 := t.Mesh.Normals[t.I0], t.Mesh.Normals[t.I1], t.Mesh.Normals[t.I2]
		normal = n0.Multiply(u).Add(n1.Multiply(v)).Add(n2.Multiply(w)).Normalize()
	} else {
		normal = e1.Cross(e2).Normalize()
	}

	uu, vv := 0.0, 0.0
	if t.hasUVs() {
		uv0, uv1, uv2 := t.Mesh.UVs[t.I0], t.Mesh.UVs[t.I1], t.Mesh.UVs[t.I2]
		uu = uv0.X*u + uv1.X*v + uv2.X*w
		vv = uv0.Y*u + uv1.Y*v + uv2.Y*w
	}

	hit := core.HitRecord{
		T: dist, Point: point, U: uu, V: vv, Material: t.Mesh.Material,
		FrontFace: r.Direction.Dot(normal) > 0,
	}
	if hit.FrontFace {
		hit.Normal = normal
	} else {
		hit.Normal = normal.Negate()
	}
	return hit, true
}

func (t *Triangle) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	v0, v1, v2 := t.v0(), t.v1(), t.v2()
	box := core.AABB{
		Min: componentMin(v0, componentMin(v1, v2)),
		Max: componentMax(v0, componentMax(v1, v2)),
	}
	return box.Expand(1e-6), true
}

func componentMin(a, b core.Vec3) core.Vec3 {
	return core.Vec3{X: min(a.X, b.X), Y: min(a.Y, b.Y), Z: min(a.Z, b.Z)}
}

func componentMax(a, b core.Vec3) core.Vec3 {
	return core.Vec3{X: max(a.X, b.X), Y: max(a.Y, b.Y), Z: max(a.Z, b.Z)}
}
