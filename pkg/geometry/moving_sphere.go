package geometry

import (
	"math"

	"github.com/CampbellOwen/RayTracing/pkg/core"
)

// MovingSphere linearly interpolates its center between Center0 at Time0
// and Center1 at Time1, sampled per-ray at ray.Time.
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         core.Material
}

func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, material core.Material) *MovingSphere {
	return &MovingSphere{Center0: center0, Center1: center1, Time0: time0, Time1: time1, Radius: radius, Material: material}
}

func (m *MovingSphere) centerAt(time float64) core.Vec3 {
	frac := (time - m.Time0) / (m.Time1 - m.Time0)
	return m.Center0.Add(m.Center1.Subtract(m.Center0).Multiply(frac))
}

func (m *MovingSphere) Hit(r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	return sphereHit(m.centerAt(r.Time), m.Radius, m.Material, r, tMin, tMax)
}

func (m *MovingSphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	rad := math.Abs(m.Radius)
	radVec := core.Vec3{X: rad, Y: rad, Z: rad}
	c0 := m.centerAt(time0)
	c1 := m.centerAt(time1)
	box0 := core.AABB{Min: c0.Subtract(radVec), Max: c0.Add(radVec)}
	box1 := core.AABB{Min: c1.Subtract(radVec), Max: c1.Add(radVec)}
	return core.Union(box0, box1), true
}
