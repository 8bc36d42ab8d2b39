package geometry

import (
	"testing"

	"github.com/CampbellOwen/RayTracing/pkg/core"
)

func TestTransformedSphereScaleRevealsHit(t *testing.T) {
	sphere := NewSphere(core.Vec3{}, 1, nil)
	r := core.NewRay(core.Vec3{X: 0, Y: 2, Z: 1}, core.Vec3{X: 0, Y: 0, Z: -1})

	if _, ok := sphere.Hit(r, 0.001, 1e9); ok {
		t.Fatal("expected the unscaled unit sphere to miss this ray")
	}

	scaled := NewTransformed(Scale(core.Vec3{X: 2, Y: 2, Z: 2}), sphere)
	if _, ok := scaled.Hit(r, 0.001, 1e9); !ok {
		t.Error("expected the 2x-scaled sphere to be hit by the same ray")
	}
}

func TestTransformedReportsWorldSpacePoint(t *testing.T) {
	sphere := NewSphere(core.Vec3{}, 1, nil)
	moved := NewTransformed(Translate(core.Vec3{X: 5, Y: 0, Z: 0}), sphere)

	r := core.NewRay(core.Vec3{X: 5, Y: 0, Z: 5}, core.Vec3{X: 0, Y: 0, Z: -1})
	hit, ok := moved.Hit(r, 0.001, 1e9)
	if !ok {
		t.Fatal("expected a hit")
	}
	if !hit.Point.Equals(core.Vec3{X: 5, Y: 0, Z: 1}, 1e-9) {
		t.Errorf("point = %v, want (5,0,1)", hit.Point)
	}
}

func TestTransformedBoundingBoxEnclosesTranslatedShape(t *testing.T) {
	sphere := NewSphere(core.Vec3{}, 1, nil)
	moved := NewTransformed(Translate(core.Vec3{X: 5, Y: 0, Z: 0}), sphere)

	box, ok := moved.BoundingBox(0, 1)
	if !ok {
		t.Fatal("expected a bounding box")
	}
	if box.Min.X > 4 || box.Max.X < 6 {
		t.Errorf("box = %v, want to enclose x in [4,6]", box)
	}
}
