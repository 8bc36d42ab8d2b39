package lights

import (
	"math"

	"github.com/CampbellOwen/RayTracing/pkg/core"
	"github.com/CampbellOwen/RayTracing/pkg/geometry"
	"github.com/CampbellOwen/RayTracing/pkg/material"
)

// SphereLight pairs a Sphere with a direction PDF for explicit light
// sampling. Sampling splits on whether the query origin is inside or
// outside the sphere: outside, solid-angle cone sampling concentrates
// samples on the visible cap; inside, the whole sphere is equally visible
// so uniform spherical sampling applies instead.
type SphereLight struct {
	*geometry.Sphere
}

func NewSphereLight(sphere *geometry.Sphere) *SphereLight {
	return &SphereLight{Sphere: sphere}
}

func (s *SphereLight) PDF(origin core.Vec3) core.PDF {
	toCenter := s.Center.Subtract(origin)
	distanceSquared := toCenter.LengthSquared()
	radiusSquared := s.Radius * s.Radius

	if distanceSquared <= radiusSquared {
		return material.NewUniformSpherePDF(s.Center, s.Radius)
	}

	cosThetaMax := math.Sqrt(1 - radiusSquared/distanceSquared)
	return material.NewUniformConePDF(toCenter.Normalize(), cosThetaMax)
}
