package core

import "testing"

func TestVec3Add(t *testing.T) {
	got := Vec3{1, 2, 3}.Add(Vec3{4, 5, 6})
	want := Vec3{5, 7, 9}
	if !got.Equals(want, 1e-12) {
		t.Errorf("Add() = %v, want %v", got, want)
	}
}

func TestVec3DotCross(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{0, 1, 0}
	if got := a.Dot(b); got != 0 {
		t.Errorf("Dot() = %v, want 0", got)
	}
	if got := a.Cross(b); !got.Equals(Vec3{0, 0, 1}, 1e-12) {
		t.Errorf("Cross() = %v, want (0,0,1)", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}.Normalize()
	if got := v.Length(); got < 0.999999 || got > 1.000001 {
		t.Errorf("Normalize() length = %v, want 1", got)
	}
}

func TestVec3Reflect(t *testing.T) {
	v := Vec3{1, -1, 0}
	n := Vec3{0, 1, 0}
	got := v.Reflect(n)
	want := Vec3{1, 1, 0}
	if !got.Equals(want, 1e-12) {
		t.Errorf("Reflect() = %v, want %v", got, want)
	}
}

func TestVec3NearZero(t *testing.T) {
	if !(Vec3{1e-9, -1e-9, 0}).NearZero() {
		t.Error("expected near-zero vector to report NearZero() == true")
	}
	if (Vec3{0.1, 0, 0}).NearZero() {
		t.Error("expected (0.1,0,0) to not be NearZero()")
	}
}

func TestVec3Luminance(t *testing.T) {
	got := Vec3{1, 1, 1}.Luminance()
	if got < 0.999999 || got > 1.000001 {
		t.Errorf("Luminance() of white = %v, want 1", got)
	}
}
