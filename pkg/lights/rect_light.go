package lights

import (
	"math"

	"github.com/CampbellOwen/RayTracing/pkg/core"
	"github.com/CampbellOwen/RayTracing/pkg/geometry"
)

// RectLight pairs an AARect with an area-to-solid-angle PDF for explicit
// light sampling. spec.md's PDF family covers hemisphere/sphere/delta
// shapes generically but names nothing for a finite-area emitter; the
// conversion below — sample the rectangle uniformly, then multiply the
// area density 1/area by distance^2/cosTheta to get a solid-angle density —
// is the same conversion any area-light importance sampler needs and is
// grounded directly in how a quad emitter computes its PDF from a point.
type RectLight struct {
	*geometry.AARect
}

func NewRectLight(rect *geometry.AARect) *RectLight {
	return &RectLight{AARect: rect}
}

func (r *RectLight) PDF(origin core.Vec3) core.PDF {
	return &rectLightPDF{rect: r.AARect, origin: origin}
}

type rectLightPDF struct {
	rect   *geometry.AARect
	origin core.Vec3
}

func (p *rectLightPDF) Generate(s core.Sampler) core.Vec3 {
	u1, u2 := s.Get2D()
	x := p.rect.X0 + u1*(p.rect.X1-p.rect.X0)
	y := p.rect.Y0 + u2*(p.rect.Y1-p.rect.Y0)
	point := core.Vec3{X: x, Y: y, Z: p.rect.K}
	return point.Subtract(p.origin).Normalize()
}

func (p *rectLightPDF) Value(direction core.Vec3) float64 {
	unit := direction.Normalize()
	r := core.NewRay(p.origin, unit)
	hit, ok := p.rect.Hit(r, 0.001, math.Inf(1))
	if !ok {
		return 0
	}
	distanceSquared := hit.T * hit.T * unit.LengthSquared()
	cosine := math.Abs(unit.Dot(hit.Normal))
	if cosine < 1e-8 {
		return 0
	}
	area := p.rect.Area()
	return distanceSquared / (cosine * area)
}

func (p *rectLightPDF) IsDelta() bool { return false }
