package core

import "math"

// OrthonormalBasis is an orthonormal frame (U, V, W) built from a single
// axis (left-handed as built here: U x V = -W), used by the hemisphere PDFs to map a local direction onto a world
// direction aligned with the surface normal.
type OrthonormalBasis struct {
	U, V, W Vec3
}

// NewOrthonormalBasisFromW builds a frame whose W axis is n (need not be
// normalized by the caller; it is normalized here).
func NewOrthonormalBasisFromW(n Vec3) OrthonormalBasis {
	w := n.Normalize()
	var a Vec3
	if math.Abs(w.X) > 0.9 {
		a = Vec3{0, 1, 0}
	} else {
		a = Vec3{1, 0, 0}
	}
	v := w.Cross(a).Normalize()
	u := w.Cross(v)
	return OrthonormalBasis{U: u, V: v, W: w}
}

// Local maps a local-frame vector into world space.
func (b OrthonormalBasis) Local(a Vec3) Vec3 {
	return b.U.Multiply(a.X).Add(b.V.Multiply(a.Y)).Add(b.W.Multiply(a.Z))
}
