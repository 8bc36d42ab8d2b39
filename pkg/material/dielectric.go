package material

import "github.com/CampbellOwen/RayTracing/pkg/core"

// Dielectric is a perfectly smooth refractive surface (glass, water). Like
// Metal, brdf divides by cos(theta_out) to cancel the estimator's cosine
// weighting; a negative-radius sphere using this material models a hollow
// shell (see pkg/geometry.Sphere).
type Dielectric struct {
	IndexOfRefraction float64
}

func NewDielectric(ior float64) *Dielectric {
	return &Dielectric{IndexOfRefraction: ior}
}

func (d *Dielectric) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

func (d *Dielectric) ScatteringPDF(rayIn core.Ray, hit core.HitRecord) (core.PDF, bool) {
	etaIOverEtaT := d.IndexOfRefraction
	if hit.FrontFace {
		etaIOverEtaT = 1.0 / d.IndexOfRefraction
	}
	return NewDielectricFresnelPDF(rayIn, hit.Normal, etaIOverEtaT), true
}

func (d *Dielectric) BRDF(rayIn core.Ray, hit core.HitRecord, rayOut core.Ray) core.Vec3 {
	cosOut := rayOut.Direction.Normalize().AbsDot(hit.Normal)
	if cosOut <= 0 {
		return core.Vec3{}
	}
	inv := 1 / cosOut
	return core.Vec3{X: inv, Y: inv, Z: inv}
}
