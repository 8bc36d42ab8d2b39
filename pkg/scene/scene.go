package scene

import "github.com/CampbellOwen/RayTracing/pkg/core"

// BackgroundFunc is sampled for rays that escape the scene entirely.
type BackgroundFunc func(r core.Ray) core.Vec3

// SamplingConfig configures the integrator and the tile dispatcher. It is
// passed by value so every worker gets an independent, immutable copy.
type SamplingConfig struct {
	Width, Height             int
	SamplesPerPixel           int
	MaxDepth                  int
	RussianRouletteMinBounces int // 0 disables Russian roulette
}

// Scene is built once and is read-only during rendering: every worker
// goroutine holds the same *Scene and never mutates it.
type Scene struct {
	Objects    core.Intersectable // BVH root, or an empty ShapeList for a scene with no objects
	Lights     []core.SampleableLight
	Camera     *Camera
	Background BackgroundFunc
	Config     SamplingConfig
}

func (s *Scene) Hit(r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	return s.Objects.Hit(r, tMin, tMax)
}

// SkyBackground is the classic top-to-bottom gradient background used by
// the example scenes.
func SkyBackground(top, bottom core.Vec3) BackgroundFunc {
	return func(r core.Ray) core.Vec3 {
		unit := r.Direction.Normalize()
		t := 0.5 * (unit.Y + 1.0)
		return bottom.Multiply(1 - t).Add(top.Multiply(t))
	}
}

// SolidBackground always returns the same color, used by the furnace test.
func SolidBackground(c core.Vec3) BackgroundFunc {
	return func(r core.Ray) core.Vec3 { return c }
}
