package geometry

import (
	"testing"

	"github.com/CampbellOwen/RayTracing/pkg/core"
)

func TestAARectHitAndUV(t *testing.T) {
	rect := NewAARect(-1, 1, -1, 1, -2, nil)
	r := core.NewRay(core.Vec3{}, core.Vec3{X: 0, Y: 0, Z: -1})

	hit, ok := rect.Hit(r, 0.001, 1e9)
	if !ok {
		t.Fatal("expected a hit through the rectangle center")
	}
	if hit.U < 0.49 || hit.U > 0.51 || hit.V < 0.49 || hit.V > 0.51 {
		t.Errorf("uv = (%v,%v), want (0.5,0.5) at the rectangle center", hit.U, hit.V)
	}
}

func TestAARectMissOutsideBounds(t *testing.T) {
	rect := NewAARect(-1, 1, -1, 1, -2, nil)
	r := core.NewRay(core.Vec3{X: 5, Y: 5, Z: 0}, core.Vec3{X: 0, Y: 0, Z: -1})
	if _, ok := rect.Hit(r, 0.001, 1e9); ok {
		t.Error("expected a miss for a ray outside the rectangle's x/y bounds")
	}
}

func TestAARectBoundingBoxPadsZ(t *testing.T) {
	rect := NewAARect(-1, 1, -1, 1, -2, nil)
	box, ok := rect.BoundingBox(0, 1)
	if !ok {
		t.Fatal("expected a bounding box")
	}
	if box.Min.Z >= -2 || box.Max.Z <= -2 {
		t.Error("expected the bounding box to be padded around the rectangle's plane")
	}
}
