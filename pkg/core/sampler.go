package core

import "math/rand"

// Sampler is a thread-local random source. Each render worker owns one;
// no RNG state is ever shared across goroutines.
type Sampler interface {
	Get1D() float64
	Get2D() (float64, float64)
	Get3D() (float64, float64, float64)
}

// randSampler wraps *rand.Rand to satisfy Sampler.
type randSampler struct {
	rng *rand.Rand
}

func NewSampler(seed int64) Sampler {
	return &randSampler{rng: rand.New(rand.NewSource(seed))}
}

func (s *randSampler) Get1D() float64 {
	return s.rng.Float64()
}

func (s *randSampler) Get2D() (float64, float64) {
	return s.rng.Float64(), s.rng.Float64()
}

func (s *randSampler) Get3D() (float64, float64, float64) {
	return s.rng.Float64(), s.rng.Float64(), s.rng.Float64()
}
