package scene

import (
	"math"

	"github.com/CampbellOwen/RayTracing/pkg/core"
)

// Camera is a thin-lens pinhole camera. It is built once from a look-from,
// look-at, and up vector and is read-only thereafter; GetRay samples the
// lens disk for depth-of-field and interpolates ray.Time across the
// shutter window for motion blur.
type Camera struct {
	Origin                     core.Vec3
	LowerLeftCorner            core.Vec3
	Horizontal, Vertical       core.Vec3
	U, V, W                    core.Vec3
	LensRadius                 float64
	Time0, Time1               float64
}

// NewCamera builds a camera. vfov is the vertical field of view in
// degrees; aspectRatio is width/height; aperture is the lens diameter;
// focusDist is the distance to the focal plane; time0/time1 bound the
// shutter interval.
func NewCamera(lookFrom, lookAt, up core.Vec3, vfov, aspectRatio, aperture, focusDist, time0, time1 float64) *Camera {
	theta := vfov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := aspectRatio * viewportHeight

	w := lookFrom.Subtract(lookAt).Normalize()
	u := up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := lookFrom
	horizontal := u.Multiply(focusDist * viewportWidth)
	vertical := v.Multiply(focusDist * viewportHeight)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDist))

	return &Camera{
		Origin:           origin,
		LowerLeftCorner:  lowerLeftCorner,
		Horizontal:       horizontal,
		Vertical:         vertical,
		U:                u,
		V:                v,
		W:                w,
		LensRadius:       aperture / 2,
		Time0:            time0,
		Time1:            time1,
	}
}

// GetRay produces a ray through the image plane at (s, t) in [0,1]x[0,1],
// perturbed by a lens-disk sample and stamped with a uniformly sampled
// shutter time.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	rd := core.RandomInUnitDisk(sampler).Multiply(c.LensRadius)
	offset := c.U.Multiply(rd.X).Add(c.V.Multiply(rd.Y))

	origin := c.Origin.Add(offset)
	direction := c.LowerLeftCorner.
		Add(c.Horizontal.Multiply(s)).
		Add(c.Vertical.Multiply(t)).
		Subtract(origin)

	time := c.Time0 + sampler.Get1D()*(c.Time1-c.Time0)
	return core.NewRayAtTime(origin, direction, time)
}
