package scene

import (
	"testing"

	"github.com/CampbellOwen/RayTracing/pkg/core"
)

func TestRenderFillsEveryPixel(t *testing.T) {
	width, height := 33, 17 // deliberately not a multiple of tileSize
	sample := func(x, y, w, h int, sampler core.Sampler) core.Vec3 {
		return core.Vec3{X: float64(x) / float64(w), Y: float64(y) / float64(h), Z: 1}
	}

	pixels := Render(width, height, 2, sample, nil)
	if len(pixels) != width*height {
		t.Fatalf("len(pixels) = %d, want %d", len(pixels), width*height)
	}
	for i, p := range pixels {
		if p.Z != 1 {
			t.Fatalf("pixel %d not written: %v", i, p)
		}
	}
}

func TestTilesCoverImageExactlyOnce(t *testing.T) {
	width, height := 40, 20
	tl := tiles(width, height)

	covered := make([]int, width*height)
	for _, tile := range tl {
		for y := tile.Y0; y < tile.Y1; y++ {
			for x := tile.X0; x < tile.X1; x++ {
				covered[y*width+x]++
			}
		}
	}
	for i, c := range covered {
		if c != 1 {
			t.Fatalf("pixel %d covered %d times, want exactly 1", i, c)
		}
	}
}
