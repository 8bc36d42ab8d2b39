package core

// HitRecord is the canonical intersection contract shared by every
// primitive, the BVH, and the integrator.
type HitRecord struct {
	Point     Vec3
	Normal    Vec3
	FrontFace bool
	T         float64
	U, V      float64
	Material  Material
}

// SetFaceNormal applies invariant F: Normal is derived from outwardNormal
// and flipped to face the incoming ray, so dot(ray.Direction, Normal) <= 0
// always holds. Triangle does not call this — it has its own, deliberately
// inverted, front-face rule.
func (h *HitRecord) SetFaceNormal(r Ray, outwardNormal Vec3) {
	h.FrontFace = r.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Intersectable is the capability every primitive, the BVH, the Transformed
// wrapper, and a plain scene shape-list all satisfy.
type Intersectable interface {
	Hit(r Ray, tMin, tMax float64) (HitRecord, bool)
	BoundingBox(time0, time1 float64) (AABB, bool)
}

// Material exposes the three declarative queries the integrator uses; it
// never asks a material to imperatively "scatter" a ray.
type Material interface {
	// Emitted is the outgoing radiance at the surface point; zero for
	// non-emitters.
	Emitted(u, v float64, p Vec3) Vec3
	// ScatteringPDF returns the directional distribution used to sample
	// the next direction, or (nil, false) if the material is purely
	// emissive.
	ScatteringPDF(rayIn Ray, hit HitRecord) (PDF, bool)
	// BRDF is the bidirectional reflectance for the given in/out
	// directions.
	BRDF(rayIn Ray, hit HitRecord, rayOut Ray) Vec3
}

// PDF abstracts a directional distribution.
type PDF interface {
	// Generate draws a direction from the distribution.
	Generate(s Sampler) Vec3
	// Value is the density at the given direction; meaningless (and
	// unused) when IsDelta is true.
	Value(direction Vec3) float64
	// IsDelta is true for perfect mirrors and perfect refractors, whose
	// distribution is concentrated on a single direction.
	IsDelta() bool
}

// Texture samples a color at a surface parameterization and point.
type Texture interface {
	Sample(u, v float64, p Vec3) Vec3
}

// SampleableLight is a light that can be explicitly importance-sampled by
// the integrator: it is both hittable (for the visibility test) and able to
// produce a PDF over directions from a given point.
type SampleableLight interface {
	Intersectable
	// PDF returns the directional distribution for sampling this light
	// from origin.
	PDF(origin Vec3) PDF
}
