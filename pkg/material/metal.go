package material

import "github.com/CampbellOwen/RayTracing/pkg/core"

// Metal is a fuzzy mirror: the scatter direction is a perturbed reflection
// of the incoming ray (still a delta distribution), and brdf divides by
// cos(theta_out) so the estimator's cosine weighting cancels and a perfect
// (fuzz=0) mirror returns exactly albedo*incomingLight.
type Metal struct {
	Albedo core.Texture
	Fuzz   float64
}

func NewMetal(albedo core.Texture, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

func NewMetalColor(c core.Vec3, fuzz float64) *Metal {
	return NewMetal(NewSolidColour(c), fuzz)
}

func (m *Metal) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

func (m *Metal) ScatteringPDF(rayIn core.Ray, hit core.HitRecord) (core.PDF, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(hit.Normal)
	return NewFuzzyDiracDeltaPDF(reflected, m.Fuzz), true
}

func (m *Metal) BRDF(rayIn core.Ray, hit core.HitRecord, rayOut core.Ray) core.Vec3 {
	cosOut := rayOut.Direction.Normalize().Dot(hit.Normal)
	if cosOut <= 0 {
		return core.Vec3{}
	}
	return m.Albedo.Sample(hit.U, hit.V, hit.Point).Multiply(1 / cosOut)
}
