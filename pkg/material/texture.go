package material

import (
	"math"

	"github.com/CampbellOwen/RayTracing/pkg/core"
)

// SolidColour is a constant-color texture.
type SolidColour struct {
	Color core.Vec3
}

func NewSolidColour(c core.Vec3) *SolidColour {
	return &SolidColour{Color: c}
}

func (s *SolidColour) Sample(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerTexture alternates between two sub-textures using the sign of
// sin(10x)*sin(10y)*sin(10z), a 3D checker pattern independent of surface
// parameterization.
type CheckerTexture struct {
	Odd, Even core.Texture
}

func NewCheckerTexture(odd, even core.Texture) *CheckerTexture {
	return &CheckerTexture{Odd: odd, Even: even}
}

func NewCheckerColor(oddColor, evenColor core.Vec3) *CheckerTexture {
	return NewCheckerTexture(NewSolidColour(oddColor), NewSolidColour(evenColor))
}

func (c *CheckerTexture) Sample(u, v float64, p core.Vec3) core.Vec3 {
	sines := math.Sin(10*p.X) * math.Sin(10*p.Y) * math.Sin(10*p.Z)
	if sines < 0 {
		return c.Odd.Sample(u, v, p)
	}
	return c.Even.Sample(u, v, p)
}
