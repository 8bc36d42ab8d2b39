package material

import (
	"math"
	"testing"

	"github.com/CampbellOwen/RayTracing/pkg/core"
)

func TestLambertianEnergyBound(t *testing.T) {
	albedo := core.Vec3{X: 0.8, Y: 0.3, Z: 0.6}
	lam := NewLambertianColor(albedo)

	hit := core.HitRecord{Normal: core.Vec3{X: 0, Y: 0, Z: 1}, U: 0, V: 0, Point: core.Vec3{}}
	rayIn := core.NewRay(core.Vec3{X: 0, Y: 0, Z: 1}, core.Vec3{X: 0, Y: 0, Z: -1})
	rayOut := core.NewRay(hit.Point, core.Vec3{X: 0, Y: 0, Z: 1})

	brdf := lam.BRDF(rayIn, hit, rayOut)
	scaled := brdf.Multiply(math.Pi)

	if scaled.X > albedo.X+1e-9 || scaled.Y > albedo.Y+1e-9 || scaled.Z > albedo.Z+1e-9 {
		t.Errorf("brdf*pi = %v, want componentwise <= albedo %v", scaled, albedo)
	}
}

func TestLambertianScatteringPDFIsCosineWeighted(t *testing.T) {
	lam := NewLambertianColor(core.Vec3{X: 1, Y: 1, Z: 1})
	hit := core.HitRecord{Normal: core.Vec3{X: 0, Y: 1, Z: 0}}
	pdf, ok := lam.ScatteringPDF(core.Ray{}, hit)
	if !ok {
		t.Fatal("expected Lambertian to return a scattering PDF")
	}
	if pdf.IsDelta() {
		t.Error("expected Lambertian's PDF to not be a delta distribution")
	}
}

func TestDiffuseLightHasNoScatteringPDF(t *testing.T) {
	light := NewDiffuseLightColor(core.Vec3{X: 4, Y: 4, Z: 4})
	_, ok := light.ScatteringPDF(core.Ray{}, core.HitRecord{})
	if ok {
		t.Error("expected DiffuseLight to report no scattering PDF (purely emissive)")
	}
	if got := light.Emitted(0, 0, core.Vec3{}); !got.Equals(core.Vec3{X: 4, Y: 4, Z: 4}, 1e-9) {
		t.Errorf("Emitted() = %v, want (4,4,4)", got)
	}
}

func TestMetalPerfectMirrorReturnsAlbedoTimesIncoming(t *testing.T) {
	albedo := core.Vec3{X: 0.9, Y: 0.9, Z: 0.9}
	metal := NewMetalColor(albedo, 0)

	hit := core.HitRecord{Normal: core.Vec3{X: 0, Y: 0, Z: 1}}
	rayIn := core.NewRay(core.Vec3{}, core.Vec3{X: 0, Y: 0, Z: -1})
	pdf, _ := metal.ScatteringPDF(rayIn, hit)
	if !pdf.IsDelta() {
		t.Fatal("expected Metal's PDF to be a delta distribution")
	}

	reflected := pdf.Generate(core.NewSampler(1))
	rayOut := core.NewRay(hit.Point, reflected)
	brdf := metal.BRDF(rayIn, hit, rayOut)
	cosine := reflected.Normalize().Dot(hit.Normal)

	contribution := brdf.Multiply(cosine)
	if !contribution.Equals(albedo, 1e-9) {
		t.Errorf("brdf*cosine = %v, want albedo %v for a perfect mirror", contribution, albedo)
	}
}
