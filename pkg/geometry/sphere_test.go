package geometry

import (
	"testing"

	"github.com/CampbellOwen/RayTracing/pkg/core"
)

func TestSphereHitDistance(t *testing.T) {
	s := NewSphere(core.Vec3{X: 0, Y: 0, Z: -1}, 0.5, nil)
	r := core.NewRay(core.Vec3{}, core.Vec3{X: 0, Y: 0, Z: -1})

	hit, ok := s.Hit(r, 0.001, 1e9)
	if !ok {
		t.Fatal("expected a hit")
	}
	if got := hit.T; got < 0.4999 || got > 0.5001 {
		t.Errorf("t = %v, want 0.5", got)
	}
	if !hit.Normal.Equals(core.Vec3{X: 0, Y: 0, Z: 1}, 1e-9) {
		t.Errorf("normal = %v, want (0,0,1)", hit.Normal)
	}
	if !hit.FrontFace {
		t.Error("expected FrontFace = true")
	}
}

func TestSphereNormalOrientation(t *testing.T) {
	s := NewSphere(core.Vec3{X: 0, Y: 0, Z: -3}, 1, nil)
	r := core.NewRay(core.Vec3{}, core.Vec3{X: 0, Y: 0, Z: -1})
	hit, ok := s.Hit(r, 0.001, 1e9)
	if !ok {
		t.Fatal("expected a hit")
	}
	if got := r.Direction.Dot(hit.Normal); got > 0 {
		t.Errorf("dot(ray.dir, normal) = %v, want <= 0 when front facing", got)
	}
}

func TestNegativeRadiusInvertsFrontFace(t *testing.T) {
	// Same geometric surface, opposite sign of radius; fire from inside the
	// sphere, where the sign of the radius is the only thing that can
	// change which side the outward normal points to.
	pos := NewSphere(core.Vec3{}, 1, nil)
	neg := NewSphere(core.Vec3{}, -1, nil)

	r := core.NewRay(core.Vec3{X: 0, Y: 0, Z: 0}, core.Vec3{X: 1, Y: 0, Z: 0})
	posHit, _ := pos.Hit(r, 0.001, 1e9)
	negHit, _ := neg.Hit(r, 0.001, 1e9)

	if posHit.T != negHit.T {
		t.Errorf("expected same hit distance regardless of radius sign, got %v vs %v", posHit.T, negHit.T)
	}
	if posHit.FrontFace == negHit.FrontFace {
		t.Error("expected negative radius to invert FrontFace for a ray fired from inside the sphere")
	}
}

func TestSphereMiss(t *testing.T) {
	s := NewSphere(core.Vec3{X: 0, Y: 0, Z: -1}, 0.5, nil)
	r := core.NewRay(core.Vec3{}, core.Vec3{X: 1, Y: 0, Z: 0})
	if _, ok := s.Hit(r, 0.001, 1e9); ok {
		t.Error("expected a miss for a ray pointing away from the sphere")
	}
}
