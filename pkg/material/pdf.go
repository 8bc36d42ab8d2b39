package material

import (
	"math"

	"github.com/CampbellOwen/RayTracing/pkg/core"
)

// CosineWeightedHemispherePDF samples directions about n with density
// proportional to cos(theta)/pi, the distribution a perfectly diffuse
// (Lambertian) surface wants.
type CosineWeightedHemispherePDF struct {
	basis core.OrthonormalBasis
}

func NewCosineWeightedHemispherePDF(n core.Vec3) *CosineWeightedHemispherePDF {
	return &CosineWeightedHemispherePDF{basis: core.NewOrthonormalBasisFromW(n)}
}

func (p *CosineWeightedHemispherePDF) Generate(s core.Sampler) core.Vec3 {
	return p.basis.Local(core.RandomCosineDirection(s)).Normalize()
}

func (p *CosineWeightedHemispherePDF) Value(direction core.Vec3) float64 {
	cosine := direction.Normalize().Dot(p.basis.W)
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}

func (p *CosineWeightedHemispherePDF) IsDelta() bool { return false }

// UniformHemispherePDF samples directions about n uniformly, density
// 1/(2*pi).
type UniformHemispherePDF struct {
	basis core.OrthonormalBasis
}

func NewUniformHemispherePDF(n core.Vec3) *UniformHemispherePDF {
	return &UniformHemispherePDF{basis: core.NewOrthonormalBasisFromW(n)}
}

func (p *UniformHemispherePDF) Generate(s core.Sampler) core.Vec3 {
	return p.basis.Local(core.RandomHemisphereDirection(s)).Normalize()
}

func (p *UniformHemispherePDF) Value(direction core.Vec3) float64 {
	if direction.Normalize().Dot(p.basis.W) <= 0 {
		return 0
	}
	return 1 / (2 * math.Pi)
}

func (p *UniformHemispherePDF) IsDelta() bool { return false }

// UniformSpherePDF samples a direction uniformly over an entire sphere,
// used for sampling a spherical light from inside its radius.
type UniformSpherePDF struct {
	Center core.Vec3
	Radius float64
}

func NewUniformSpherePDF(center core.Vec3, radius float64) *UniformSpherePDF {
	return &UniformSpherePDF{Center: center, Radius: radius}
}

func (p *UniformSpherePDF) Generate(s core.Sampler) core.Vec3 {
	return core.RandomUnitVector(s)
}

func (p *UniformSpherePDF) Value(direction core.Vec3) float64 {
	return 1 / (4 * math.Pi)
}

func (p *UniformSpherePDF) IsDelta() bool { return false }

// UniformConePDF samples directions within cosThetaMax of axis, used for
// solid-angle sampling of a spherical light from outside its radius.
type UniformConePDF struct {
	basis       core.OrthonormalBasis
	cosThetaMax float64
}

func NewUniformConePDF(axis core.Vec3, cosThetaMax float64) *UniformConePDF {
	return &UniformConePDF{basis: core.NewOrthonormalBasisFromW(axis), cosThetaMax: cosThetaMax}
}

func (p *UniformConePDF) Generate(s core.Sampler) core.Vec3 {
	return p.basis.Local(core.RandomInCone(s, p.cosThetaMax)).Normalize()
}

func (p *UniformConePDF) Value(direction core.Vec3) float64 {
	if direction.Normalize().Dot(p.basis.W) < p.cosThetaMax {
		return 0
	}
	return 1 / (2 * math.Pi * (1 - p.cosThetaMax))
}

func (p *UniformConePDF) IsDelta() bool { return false }

// DiracDeltaPDF always returns a single fixed direction; Value is defined
// as 0 since a delta distribution is not integrable as a density — callers
// must special-case IsDelta() and treat the estimator weight as 1.
type DiracDeltaPDF struct {
	Direction core.Vec3
}

func NewDiracDeltaPDF(dir core.Vec3) *DiracDeltaPDF {
	return &DiracDeltaPDF{Direction: dir.Normalize()}
}

func (p *DiracDeltaPDF) Generate(s core.Sampler) core.Vec3 { return p.Direction }
func (p *DiracDeltaPDF) Value(direction core.Vec3) float64 { return 0 }
func (p *DiracDeltaPDF) IsDelta() bool                     { return true }

// FuzzyDiracDeltaPDF perturbs a delta direction by fuzz*RandomInUnitSphere,
// modeling a rough (but still delta) mirror.
type FuzzyDiracDeltaPDF struct {
	Direction core.Vec3
	Fuzz      float64
}

func NewFuzzyDiracDeltaPDF(dir core.Vec3, fuzz float64) *FuzzyDiracDeltaPDF {
	return &FuzzyDiracDeltaPDF{Direction: dir.Normalize(), Fuzz: fuzz}
}

func (p *FuzzyDiracDeltaPDF) Generate(s core.Sampler) core.Vec3 {
	return p.Direction.Add(core.RandomInUnitSphere(s).Multiply(p.Fuzz)).Normalize()
}

func (p *FuzzyDiracDeltaPDF) Value(direction core.Vec3) float64 { return 0 }
func (p *FuzzyDiracDeltaPDF) IsDelta() bool                     { return true }

// DielectricFresnelPDF decides, at construction time, between reflection
// and refraction directions for a dielectric interface, weighting the
// choice by Schlick reflectance and forcing reflection under total
// internal reflection.
type DielectricFresnelPDF struct {
	reflectDir   core.Vec3
	refractDir   core.Vec3
	canRefract   bool
	reflectance  float64
}

// NewDielectricFresnelPDF computes the reflect/refract directions and
// reflectance for a ray hitting a surface with the given unit normal
// (already oriented per invariant F) and refraction-index ratio
// etaIOverEtaT (incident-side IOR over transmitted-side IOR).
func NewDielectricFresnelPDF(rayIn core.Ray, normal core.Vec3, etaIOverEtaT float64) *DielectricFresnelPDF {
	unitDir := rayIn.Direction.Normalize()
	cosTheta := math.Min(normal.Negate().Dot(unitDir), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	canRefract := etaIOverEtaT*sinTheta <= 1.0
	reflectance := core.Schlick(cosTheta, etaIOverEtaT)

	pdf := &DielectricFresnelPDF{
		reflectDir: unitDir.Reflect(normal),
		canRefract: canRefract,
	}
	if canRefract {
		pdf.refractDir = unitDir.Refract(normal, etaIOverEtaT)
	}
	if !canRefract {
		pdf.reflectance = 1.0
	} else {
		pdf.reflectance = reflectance
	}
	return pdf
}

func (p *DielectricFresnelPDF) Generate(s core.Sampler) core.Vec3 {
	if !p.canRefract || s.Get1D() < p.reflectance {
		return p.reflectDir
	}
	return p.refractDir
}

func (p *DielectricFresnelPDF) Value(direction core.Vec3) float64 { return 0 }
func (p *DielectricFresnelPDF) IsDelta() bool                     { return true }

// MixtureMethod selects how MixturePDF combines its component Value()s.
type MixtureMethod int

const (
	MixtureUniform MixtureMethod = iota
	MixturePowerHeuristic
)

// MixturePDF combines several PDFs. Uniform mode averages densities and
// picks a component uniformly to generate from; PowerHeuristic mode is
// restricted to exactly two components (a constructor error, not a panic,
// for any other count).
type MixturePDF struct {
	pdfs   []core.PDF
	method MixtureMethod
}

func NewMixturePDF(pdfs []core.PDF, method MixtureMethod) (*MixturePDF, error) {
	if method == MixturePowerHeuristic && len(pdfs) != 2 {
		return nil, errTooManyPowerHeuristicComponents
	}
	return &MixturePDF{pdfs: pdfs, method: method}, nil
}

var errTooManyPowerHeuristicComponents = mixtureError("MixturePDF: power-heuristic combination requires exactly two components")

type mixtureError string

func (e mixtureError) Error() string { return string(e) }

func (m *MixturePDF) Generate(s core.Sampler) core.Vec3 {
	idx := int(s.Get1D() * float64(len(m.pdfs)))
	if idx >= len(m.pdfs) {
		idx = len(m.pdfs) - 1
	}
	return m.pdfs[idx].Generate(s)
}

func (m *MixturePDF) Value(direction core.Vec3) float64 {
	switch m.method {
	case MixturePowerHeuristic:
		p0 := m.pdfs[0].Value(direction)
		p1 := m.pdfs[1].Value(direction)
		return core.PowerHeuristic(1, p0, 1, p1)
	default:
		sum := 0.0
		for _, p := range m.pdfs {
			sum += p.Value(direction)
		}
		return sum / float64(len(m.pdfs))
	}
}

func (m *MixturePDF) IsDelta() bool {
	for _, p := range m.pdfs {
		if p.IsDelta() {
			return true
		}
	}
	return false
}
