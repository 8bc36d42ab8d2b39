package geometry

import (
	"math"

	"github.com/CampbellOwen/RayTracing/pkg/core"
)

// Sphere is a static sphere. Radius may be negative: the geometric surface
// is unchanged but the outward normal inverts, which lets a Dielectric
// model a hollow shell (a negative-radius sphere inside a positive one).
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: material}
}

func (s *Sphere) centerAt(_ float64) core.Vec3 {
	return s.Center
}

func (s *Sphere) Hit(r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	return sphereHit(s.centerAt(r.Time), s.Radius, s.Material, r, tMin, tMax)
}

func (s *Sphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	rad := math.Abs(s.Radius)
	radVec := core.Vec3{X: rad, Y: rad, Z: rad}
	return core.AABB{Min: s.Center.Subtract(radVec), Max: s.Center.Add(radVec)}, true
}

// sphereHit implements the shared quadratic-solve intersection used by both
// Sphere and MovingSphere.
func sphereHit(center core.Vec3, radius float64, material core.Material, r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	oc := r.Origin.Subtract(center)
	a := r.Direction.LengthSquared()
	halfB := oc.Dot(r.Direction)
	c := oc.LengthSquared() - radius*radius
	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return core.HitRecord{}, false
		}
	}

	p := r.At(root)
	outwardNormal := p.Subtract(center).Multiply(1 / radius)
	u, v := sphereUV(outwardNormal)

	hit := core.HitRecord{T: root, Point: p, U: u, V: v, Material: material}
	hit.SetFaceNormal(r, outwardNormal)
	return hit, true
}

// sphereUV maps a point on the unit sphere (the outward normal) to (u,v) in
// [0,1]x[0,1] via the standard spherical parameterization.
func sphereUV(n core.Vec3) (float64, float64) {
	theta := math.Acos(-n.Y)
	phi := math.Atan2(-n.Z, n.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}
