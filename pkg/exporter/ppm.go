// Package exporter writes the finished image buffer to disk. It is the
// only collaborator that touches the filesystem on the output side.
package exporter

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/CampbellOwen/RayTracing/pkg/core"
)

// Image is a row-major linear-RGB pixel grid, Pixels[y*Width+x], as
// accumulated by the tile dispatcher (each entry the arithmetic mean of
// that pixel's samples).
type Image struct {
	Width, Height int
	Pixels        []core.Vec3
}

// WritePPM writes img to path in ASCII PPM P3 format: rows are emitted in
// reverse y order (top of the image first) and each channel is gamma-2.0
// encoded (sqrt) and quantized to 8 bits.
func WritePPM(path string, img Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("exporter: create %s: %w", path, err)
	}
	defer f.Close()

	if err := Write(f, img); err != nil {
		return fmt.Errorf("exporter: write %s: %w", path, err)
	}
	return nil
}

// Write encodes img as PPM P3 to w, for callers that already have an
// io.Writer (e.g. a cancellation handler flushing a partial image).
func Write(w io.Writer, img Image) error {
	buf := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(buf, "P3\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return err
	}

	for y := img.Height - 1; y >= 0; y-- {
		for x := 0; x < img.Width; x++ {
			r, g, b := encodeChannel(img.Pixels, img.Width, x, y)
			if _, err := fmt.Fprintf(buf, "%d %d %d\n", r, g, b); err != nil {
				return err
			}
		}
	}

	return buf.Flush()
}

func encodeChannel(pixels []core.Vec3, width, x, y int) (int, int, int) {
	c := pixels[y*width+x]
	return gammaQuantize(c.X), gammaQuantize(c.Y), gammaQuantize(c.Z)
}

// gammaQuantize applies a gamma-2.0 encode (sqrt) and quantizes to [0,255].
func gammaQuantize(linear float64) int {
	encoded := math.Sqrt(math.Max(0, linear))
	clamped := math.Min(0.999, math.Max(0, encoded))
	return int(clamped * 256)
}

// ToneMapACES applies the ACES filmic tone-mapping curve, meant to be
// applied before gamma encoding.
func ToneMapACES(c core.Vec3) core.Vec3 {
	return core.Vec3{
		X: acesChannel(c.X),
		Y: acesChannel(c.Y),
		Z: acesChannel(c.Z),
	}
}

func acesChannel(x float64) float64 {
	const a, b, c, d, e = 2.51, 0.03, 2.43, 0.59, 0.14
	v := (x * (a*x + b)) / (x*(c*x+d) + e)
	return math.Min(1, math.Max(0, v))
}
