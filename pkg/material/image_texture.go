package material

import (
	"math"

	"github.com/CampbellOwen/RayTracing/pkg/core"
)

// ImageTexture is a nearest-sample lookup into a 2D grid of already
// gamma-to-linear-converted linear RGB pixels (see pkg/loaders.LoadImage).
type ImageTexture struct {
	Width, Height int
	Pixels        []core.Vec3 // row-major, Pixels[y*Width+x]
}

func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{Width: width, Height: height, Pixels: pixels}
}

func (img *ImageTexture) Sample(u, v float64, p core.Vec3) core.Vec3 {
	if img.Width == 0 || img.Height == 0 {
		return core.Vec3{}
	}
	u = clamp01(u)
	v = 1 - clamp01(v)

	x := int(u * float64(img.Width))
	y := int(v * float64(img.Height))
	if x >= img.Width {
		x = img.Width - 1
	}
	if y >= img.Height {
		y = img.Height - 1
	}
	return img.Pixels[y*img.Width+x]
}

func clamp01(x float64) float64 {
	return math.Min(1, math.Max(0, x))
}
