package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/CampbellOwen/RayTracing/pkg/core"
)

func TestCosineWeightedHemispherePDFNormalizes(t *testing.T) {
	pdf := NewCosineWeightedHemispherePDF(core.Vec3{X: 0, Y: 0, Z: 1})
	rng := rand.New(rand.NewSource(42))

	const n = 200000
	sum := 0.0
	for i := 0; i < n; i++ {
		dir := core.RandomUnitVector(&rngSampler{rng})
		sum += pdf.Value(dir)
	}
	integral := (sum / n) * 4 * math.Pi
	if math.Abs(integral-1) > 0.05 {
		t.Errorf("Monte Carlo integral of cosine-weighted pdf = %v, want ~1", integral)
	}
}

type rngSampler struct{ rng *rand.Rand }

func (s *rngSampler) Get1D() float64             { return s.rng.Float64() }
func (s *rngSampler) Get2D() (float64, float64)  { return s.rng.Float64(), s.rng.Float64() }
func (s *rngSampler) Get3D() (float64, float64, float64) {
	return s.rng.Float64(), s.rng.Float64(), s.rng.Float64()
}

func TestUniformConePDFSampleSupport(t *testing.T) {
	axis := core.Vec3{X: 0, Y: 1, Z: 0}
	cosThetaMax := 0.8
	pdf := NewUniformConePDF(axis, cosThetaMax)
	sampler := &rngSampler{rand.New(rand.NewSource(7))}

	for i := 0; i < 1000; i++ {
		dir := pdf.Generate(sampler)
		if dot := dir.Dot(axis); dot < cosThetaMax-1e-9 {
			t.Fatalf("sample %d: dir.axis = %v, want >= %v", i, dot, cosThetaMax)
		}
	}
}

func TestDiracDeltaPDFIsDelta(t *testing.T) {
	pdf := NewDiracDeltaPDF(core.Vec3{X: 0, Y: 0, Z: 1})
	if !pdf.IsDelta() {
		t.Error("expected DiracDeltaPDF.IsDelta() == true")
	}
	if v := pdf.Value(core.Vec3{X: 0, Y: 0, Z: 1}); v != 0 {
		t.Errorf("Value() = %v, want 0 for a delta distribution", v)
	}
}

func TestMixturePDFPowerHeuristicRejectsTooManyComponents(t *testing.T) {
	pdfs := []core.PDF{
		NewCosineWeightedHemispherePDF(core.Vec3{X: 0, Y: 0, Z: 1}),
		NewUniformHemispherePDF(core.Vec3{X: 0, Y: 0, Z: 1}),
		NewUniformSpherePDF(core.Vec3{}, 1),
	}
	if _, err := NewMixturePDF(pdfs, MixturePowerHeuristic); err == nil {
		t.Error("expected an error constructing a power-heuristic MixturePDF with 3 components")
	}
}
