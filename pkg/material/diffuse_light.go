package material

import "github.com/CampbellOwen/RayTracing/pkg/core"

// DiffuseLight is a purely emissive material: it never scatters, so the
// integrator stops recursing through it.
type DiffuseLight struct {
	Emit core.Texture
}

func NewDiffuseLight(emit core.Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

func NewDiffuseLightColor(c core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColour(c)}
}

func (d *DiffuseLight) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return d.Emit.Sample(u, v, p)
}

func (d *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit core.HitRecord) (core.PDF, bool) {
	return nil, false
}

func (d *DiffuseLight) BRDF(rayIn core.Ray, hit core.HitRecord, rayOut core.Ray) core.Vec3 {
	return core.Vec3{}
}
