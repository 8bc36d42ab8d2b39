package geometry

import (
	"testing"

	"github.com/CampbellOwen/RayTracing/pkg/core"
)

func TestTriangleMollerTrumboreSelfTest(t *testing.T) {
	verts := []core.Vec3{
		{X: 1, Y: 0, Z: -1},
		{X: 0, Y: 1, Z: -1},
		{X: 0, Y: 0, Z: -1},
	}
	mesh := &Mesh{Vertices: verts}
	tri := &Triangle{I0: 0, I1: 1, I2: 2, Mesh: mesh}

	dir := core.Vec3{X: 0.5, Y: 0.5, Z: -1}.Normalize()
	r := core.NewRay(core.Vec3{}, dir)

	hit, ok := tri.Hit(r, 0.001, 1e9)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.T <= 0 {
		t.Errorf("t = %v, want > 0", hit.T)
	}
}

func TestTriangleFrontFaceAnomaly(t *testing.T) {
	// The flat-shaded normal for this triangle (wound v0,v1,v2) points
	// toward +z (out of the page); a ray traveling in -z hits it from the
	// "front" in the usual sense, but this primitive's FrontFace rule is
	// inverted from every other primitive's, so it should read false here.
	verts := []core.Vec3{
		{X: 1, Y: 0, Z: -1},
		{X: 0, Y: 1, Z: -1},
		{X: 0, Y: 0, Z: -1},
	}
	mesh := &Mesh{Vertices: verts}
	tri := &Triangle{I0: 0, I1: 1, I2: 2, Mesh: mesh}

	r := core.NewRay(core.Vec3{}, core.Vec3{X: 0, Y: 0, Z: -1})
	hit, ok := tri.Hit(r, 0.001, 1e9)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.FrontFace {
		t.Error("expected FrontFace = false for dir.normal < 0, per the preserved anomaly")
	}
}

func TestTriangleDegenerateMiss(t *testing.T) {
	verts := []core.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
	}
	mesh := &Mesh{Vertices: verts}
	tri := &Triangle{I0: 0, I1: 1, I2: 2, Mesh: mesh}

	r := core.NewRay(core.Vec3{X: 0, Y: 1, Z: -1}, core.Vec3{X: 0, Y: 0, Z: 1})
	if _, ok := tri.Hit(r, 0.001, 1e9); ok {
		t.Error("expected a degenerate (zero-area) triangle to miss every ray")
	}
}
