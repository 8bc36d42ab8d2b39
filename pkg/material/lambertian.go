package material

import (
	"math"

	"github.com/CampbellOwen/RayTracing/pkg/core"
)

// Lambertian is a perfectly diffuse material: scatter direction is
// cosine-weighted about the surface normal, and brdf = albedo/pi so the
// cosine-weighted estimator reproduces Lambert's law.
type Lambertian struct {
	Albedo core.Texture
}

func NewLambertian(albedo core.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

func NewLambertianColor(c core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColour(c)}
}

func (l *Lambertian) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

func (l *Lambertian) ScatteringPDF(rayIn core.Ray, hit core.HitRecord) (core.PDF, bool) {
	return NewCosineWeightedHemispherePDF(hit.Normal), true
}

func (l *Lambertian) BRDF(rayIn core.Ray, hit core.HitRecord, rayOut core.Ray) core.Vec3 {
	return l.Albedo.Sample(hit.U, hit.V, hit.Point).Multiply(1 / math.Pi)
}
