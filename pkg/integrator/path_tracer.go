package integrator

import (
	"fmt"
	"math"

	"github.com/CampbellOwen/RayTracing/pkg/core"
	"github.com/CampbellOwen/RayTracing/pkg/scene"
)

// Logger is the sink for optional per-bounce trace output. A nil Logger is
// valid and silently discards everything.
type Logger interface {
	Printf(format string, args ...interface{})
}

// StdLogger writes to stdout via fmt.Printf; the CLI installs it when the
// -verbose flag is set.
type StdLogger struct{}

func (StdLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

const (
	rayEpsilon        = 1e-3
	visibilityEpsilon = 1e-4
	lightRayDepth     = 1
)

// PathTracer evaluates the rendering equation by recursive path
// construction, combining light sampling and BRDF sampling with multiple
// importance sampling (the power heuristic, beta=2).
type PathTracer struct {
	Config scene.SamplingConfig
	Logger Logger
}

func NewPathTracer(config scene.SamplingConfig) *PathTracer {
	return &PathTracer{Config: config}
}

// RayColor is the entry point: evaluate incident radiance along ray,
// starting at the integrator's configured max depth.
func (pt *PathTracer) RayColor(ray core.Ray, sc *scene.Scene, sampler core.Sampler) core.Vec3 {
	return pt.rayColor(ray, sc, sampler, pt.Config.MaxDepth)
}

func (pt *PathTracer) rayColor(ray core.Ray, sc *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := sc.Hit(ray, rayEpsilon, math.Inf(1))
	if !isHit {
		if sc.Background == nil {
			return core.Vec3{}
		}
		return sc.Background(ray)
	}

	emitted := hit.Material.Emitted(hit.U, hit.V, hit.Point)

	matPDF, scatters := hit.Material.ScatteringPDF(ray, hit)
	if !scatters {
		pt.logf(depth, "emissive: %v\n", emitted)
		return emitted
	}

	survivalProb := pt.survivalProbability(depth)
	if survivalProb < 1.0 && sampler.Get1D() > survivalProb {
		return emitted
	}

	var scattered core.Vec3
	if matPDF.IsDelta() {
		scattered = pt.sampleDelta(ray, hit, matPDF, sc, sampler, depth)
	} else {
		scattered = pt.sampleMIS(ray, hit, matPDF, sc, sampler, depth)
	}
	if survivalProb < 1.0 {
		scattered = scattered.Multiply(1.0 / survivalProb)
	}
	return emitted.Add(scattered)
}

// sampleDelta handles the single-bounce, no-light-sampling branch for
// perfect mirrors and perfect refractors.
func (pt *PathTracer) sampleDelta(ray core.Ray, hit core.HitRecord, matPDF core.PDF, sc *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	omega := matPDF.Generate(sampler).Normalize()
	scattered := core.NewRayAtTime(hit.Point, omega, ray.Time)
	brdf := hit.Material.BRDF(ray, hit, scattered)
	cosine := omega.Dot(hit.Normal)

	incoming := pt.rayColor(scattered, sc, sampler, depth-1)
	contribution := brdf.Multiply(cosine).MultiplyVec(incoming)

	pt.logf(depth, "specular: %v = brdf=%v * cos=%v * incoming=%v\n", contribution, brdf, cosine, incoming)
	return contribution
}

// sampleMIS combines a material-sampled estimator and a light-sampled
// estimator with power-heuristic weights, falling back to material-only
// sampling when no light is visible.
func (pt *PathTracer) sampleMIS(ray core.Ray, hit core.HitRecord, matPDF core.PDF, sc *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	light, lightPDF, hasLight := pt.chooseLight(sc, hit.Point, sampler)

	if !hasLight {
		return pt.sampleMaterialOnly(ray, hit, matPDF, sc, sampler, depth)
	}

	omegaL := lightPDF.Generate(sampler).Normalize()
	lightVisible := pt.isVisible(sc, hit, omegaL, light, ray.Time)
	if !lightVisible {
		return pt.sampleMaterialOnly(ray, hit, matPDF, sc, sampler, depth)
	}

	omegaM := matPDF.Generate(sampler).Normalize()

	var lightTerm core.Vec3
	pMAtL := matPDF.Value(omegaL)
	pLAtL := lightPDF.Value(omegaL)
	wL := core.PowerHeuristic(1, pLAtL, 1, pMAtL)
	if pLAtL > 0 {
		brdfL := hit.Material.BRDF(ray, hit, core.NewRayAtTime(hit.Point, omegaL, ray.Time))
		cosL := omegaL.Dot(hit.Normal)
		if cosL > 0 {
			lightRay := core.NewRayAtTime(hit.Point, omegaL, ray.Time)
			incomingL := pt.rayColor(lightRay, sc, sampler, lightRayDepth)
			lightTerm = brdfL.Multiply(cosL * wL / pLAtL).MultiplyVec(incomingL)
		}
	}

	pMAtM := matPDF.Value(omegaM)
	var matTerm core.Vec3
	if pMAtM > 0 {
		pLAtM := lightPDF.Value(omegaM)
		wM := core.PowerHeuristic(1, pMAtM, 1, pLAtM)
		cosM := omegaM.Dot(hit.Normal)
		if cosM > 0 {
			matRay := core.NewRayAtTime(hit.Point, omegaM, ray.Time)
			brdfM := hit.Material.BRDF(ray, hit, matRay)
			incomingM := pt.rayColor(matRay, sc, sampler, depth-1)
			matTerm = brdfM.Multiply(cosM * wM / pMAtM).MultiplyVec(incomingM)
		}
	}

	contribution := lightTerm.Add(matTerm)
	pt.logf(depth, "mis: %v = light=%v + material=%v\n", contribution, lightTerm, matTerm)
	return contribution
}

// sampleMaterialOnly is taken when light sampling fails to choose a light
// at all (an empty scene.Lights list) or the chosen light is not visible;
// it falls back to plain BRDF (material) sampling with no MIS weighting.
func (pt *PathTracer) sampleMaterialOnly(ray core.Ray, hit core.HitRecord, matPDF core.PDF, sc *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	omega := matPDF.Generate(sampler).Normalize()
	p := matPDF.Value(omega)
	if p <= 0 {
		return core.Vec3{}
	}
	cosine := omega.Dot(hit.Normal)
	if cosine <= 0 {
		return core.Vec3{}
	}
	scattered := core.NewRayAtTime(hit.Point, omega, ray.Time)
	brdf := hit.Material.BRDF(ray, hit, scattered)
	incoming := pt.rayColor(scattered, sc, sampler, depth-1)
	return brdf.Multiply(cosine / p).MultiplyVec(incoming)
}

// chooseLight picks one of the scene's lights uniformly at random and
// returns its direction PDF from point.
func (pt *PathTracer) chooseLight(sc *scene.Scene, point core.Vec3, sampler core.Sampler) (core.SampleableLight, core.PDF, bool) {
	if len(sc.Lights) == 0 {
		return nil, nil, false
	}
	idx := int(sampler.Get1D() * float64(len(sc.Lights)))
	if idx >= len(sc.Lights) {
		idx = len(sc.Lights) - 1
	}
	light := sc.Lights[idx]
	return light, light.PDF(point), true
}

// isVisible tests the MIS visibility condition: the sampled light direction
// must face outward from the surface, and the scene's nearest hit along
// that direction must match the light's own intersection distance within
// visibilityEpsilon. The shadow ray is stamped with the path's shutter time
// so moving occluders are tested at the position the path actually saw.
func (pt *PathTracer) isVisible(sc *scene.Scene, hit core.HitRecord, direction core.Vec3, light core.SampleableLight, time float64) bool {
	if direction.Dot(hit.Normal) <= 0 {
		return false
	}
	shadowRay := core.NewRayAtTime(hit.Point, direction, time)
	sceneHit, hitScene := sc.Hit(shadowRay, rayEpsilon, math.Inf(1))
	if !hitScene {
		return false
	}
	lightHit, hitLight := light.Hit(shadowRay, rayEpsilon, math.Inf(1))
	if !hitLight {
		return false
	}
	return math.Abs(sceneHit.T-lightHit.T) < visibilityEpsilon
}

// russianRouletteSurvival is the fixed continuation probability once
// Russian roulette engages.
const russianRouletteSurvival = 0.9

// survivalProbability applies Russian roulette once the configured minimum
// bounce count is reached, returning 1.0 (always continue, no reweighting)
// until then; RussianRouletteMinBounces == 0 disables it entirely,
// preserving spec.md's plain depth-cap-only pseudocode. A surviving path's
// contribution must be divided by this probability to stay unbiased.
func (pt *PathTracer) survivalProbability(depth int) float64 {
	if pt.Config.RussianRouletteMinBounces <= 0 {
		return 1.0
	}
	currentBounce := pt.Config.MaxDepth - depth
	if currentBounce < pt.Config.RussianRouletteMinBounces {
		return 1.0
	}
	return russianRouletteSurvival
}

func (pt *PathTracer) logf(depth int, format string, args ...interface{}) {
	if pt.Logger == nil {
		return
	}
	prefix := fmt.Sprintf("      pt[%d] ", pt.Config.MaxDepth-depth)
	pt.Logger.Printf(prefix+format, args...)
}
