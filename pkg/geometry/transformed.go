package geometry

import "github.com/CampbellOwen/RayTracing/pkg/core"

// Mat4 is a row-major 4x4 affine transform.
type Mat4 [4][4]float64

func Identity() Mat4 {
	var m Mat4
	for i := 0; i < 4; i++ {
		m[i][i] = 1
	}
	return m
}

func Translate(v core.Vec3) Mat4 {
	m := Identity()
	m[0][3], m[1][3], m[2][3] = v.X, v.Y, v.Z
	return m
}

func Scale(v core.Vec3) Mat4 {
	m := Identity()
	m[0][0], m[1][1], m[2][2] = v.X, v.Y, v.Z
	return m
}

// RotateY rotates about the Y axis by the angle whose sine and cosine are
// given.
func RotateY(sinTheta, cosTheta float64) Mat4 {
	m := Identity()
	m[0][0], m[0][2] = cosTheta, sinTheta
	m[2][0], m[2][2] = -sinTheta, cosTheta
	return m
}

// Mul composes two transforms:
// a.Mul(b).transformPoint(p) == a.transformPoint(b.transformPoint(p)).
func (a Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// transformPoint applies the matrix to a point (implicit w=1).
func (a Mat4) transformPoint(p core.Vec3) core.Vec3 {
	return core.Vec3{
		X: a[0][0]*p.X + a[0][1]*p.Y + a[0][2]*p.Z + a[0][3],
		Y: a[1][0]*p.X + a[1][1]*p.Y + a[1][2]*p.Z + a[1][3],
		Z: a[2][0]*p.X + a[2][1]*p.Y + a[2][2]*p.Z + a[2][3],
	}
}

// transformDir applies the matrix to a direction (implicit w=0); no
// renormalization, matching the wrapper's hit-space semantics.
func (a Mat4) transformDir(d core.Vec3) core.Vec3 {
	return core.Vec3{
		X: a[0][0]*d.X + a[0][1]*d.Y + a[0][2]*d.Z,
		Y: a[1][0]*d.X + a[1][1]*d.Y + a[1][2]*d.Z,
		Z: a[2][0]*d.X + a[2][1]*d.Y + a[2][2]*d.Z,
	}
}

// Inverse computes the inverse of an affine (3x3 linear part + translation)
// matrix via cofactor expansion of the 3x3 block.
func (a Mat4) Inverse() Mat4 {
	m := [3][3]float64{
		{a[0][0], a[0][1], a[0][2]},
		{a[1][0], a[1][1], a[1][2]},
		{a[2][0], a[2][1], a[2][2]},
	}
	det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])

	inv := [3][3]float64{}
	invDet := 1.0 / det
	inv[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) * invDet
	inv[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * invDet
	inv[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * invDet
	inv[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) * invDet
	inv[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * invDet
	inv[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * invDet
	inv[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) * invDet
	inv[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * invDet
	inv[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * invDet

	translation := core.Vec3{X: a[0][3], Y: a[1][3], Z: a[2][3]}
	invTranslation := core.Vec3{
		X: -(inv[0][0]*translation.X + inv[0][1]*translation.Y + inv[0][2]*translation.Z),
		Y: -(inv[1][0]*translation.X + inv[1][1]*translation.Y + inv[1][2]*translation.Z),
		Z: -(inv[2][0]*translation.X + inv[2][1]*translation.Y + inv[2][2]*translation.Z),
	}

	var out Mat4
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = inv[i][j]
		}
	}
	out[0][3], out[1][3], out[2][3] = invTranslation.X, invTranslation.Y, invTranslation.Z
	out[3][3] = 1
	return out
}

// transposeLinear returns a with only the 3x3 linear block transposed, used to
// transform normals by the inverse-transpose.
func (a Mat4) transposeLinear() Mat4 {
	out := a
	out[0][1], out[1][0] = a[1][0], a[0][1]
	out[0][2], out[2][0] = a[2][0], a[0][2]
	out[1][2], out[2][1] = a[2][1], a[1][2]
	return out
}

// Transformed wraps any Intersectable with an affine transform. Rays are
// transformed into the wrapped shape's local space without renormalizing
// direction, which keeps t consistent between the two spaces for any affine
// map; the hit normal is transformed back by the inverse-transpose and
// renormalized, and the reported point is re-evaluated in world space.
type Transformed struct {
	Transform    Mat4
	InverseTrans Mat4
	Shape        core.Intersectable
}

func NewTransformed(transform Mat4, shape core.Intersectable) *Transformed {
	inv := transform.Inverse()
	return &Transformed{Transform: transform, InverseTrans: inv, Shape: shape}
}

func (tr *Transformed) Hit(r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	localOrigin := tr.InverseTrans.transformPoint(r.Origin)
	localDir := tr.InverseTrans.transformDir(r.Direction)
	localRay := core.Ray{Origin: localOrigin, Direction: localDir, Time: r.Time}

	hit, ok := tr.Shape.Hit(localRay, tMin, tMax)
	if !ok {
		return core.HitRecord{}, false
	}

	worldNormal := tr.InverseTrans.transposeLinear().transformDir(hit.Normal).Normalize()
	hit.Normal = worldNormal
	hit.Point = r.At(hit.T)
	return hit, true
}

func (tr *Transformed) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := tr.Shape.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}

	min, max := box.Min, box.Max
	corners := [8]core.Vec3{
		{min.X, min.Y, min.Z}, {max.X, min.Y, min.Z},
		{min.X, max.Y, min.Z}, {min.X, min.Y, max.Z},
		{max.X, max.Y, min.Z}, {max.X, min.Y, max.Z},
		{min.X, max.Y, max.Z}, {max.X, max.Y, max.Z},
	}

	first := tr.Transform.transformPoint(corners[0])
	result := core.AABB{Min: first, Max: first}
	for _, c := range corners[1:] {
		p := tr.Transform.transformPoint(c)
		result = core.Union(result, core.AABB{Min: p, Max: p})
	}
	return result, true
}
