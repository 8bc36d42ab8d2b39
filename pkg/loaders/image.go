package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"

	"github.com/CampbellOwen/RayTracing/pkg/core"
)

func init() {
	// golang.org/x/image/bmp has no format-sniffing registration of its
	// own (unlike the blank-imported tga package), so it is registered
	// explicitly the way image.RegisterFormat expects.
	image.RegisterFormat("bmp", "BM", bmp.Decode, bmp.DecodeConfig)
}

// ImageData is a decoded raster already converted to linear RGB: each
// channel is (value/255) squared, an approximation of the sRGB-to-linear
// gamma transform applied once at load time.
type ImageData struct {
	Width, Height int
	Pixels        []core.Vec3 // row-major, Pixels[y*Width+x]
}

// LoadImage decodes any PNG, JPEG, TGA, or BMP file at path into an
// ImageData grid.
func LoadImage(path string) (*ImageData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("loaders: decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			linear := core.Vec3{
				X: float64(r) / 65535.0,
				Y: float64(g) / 65535.0,
				Z: float64(b) / 65535.0,
			}
			pixels[y*width+x] = linear.Square()
		}
	}

	return &ImageData{Width: width, Height: height, Pixels: pixels}, nil
}
