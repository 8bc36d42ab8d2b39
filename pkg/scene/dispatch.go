package scene

import (
	"runtime"
	"sync"

	"github.com/CampbellOwen/RayTracing/pkg/core"
)

// PixelSampleFunc draws one radiance sample for pixel (x, y) in an image of
// the given dimensions (y measured from the bottom row). The caller composes
// this from a Camera.GetRay call and the integrator's RayColor, keeping
// this package independent of both.
type PixelSampleFunc func(x, y, width, height int, sampler core.Sampler) core.Vec3

// Tile is a rectangular pixel region, [X0,X1) x [Y0,Y1).
type Tile struct {
	X0, X1, Y0, Y1 int
}

const tileSize = 16

// tiles partitions a width x height image into tileSize x tileSize tiles.
func tiles(width, height int) []Tile {
	var out []Tile
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			out = append(out, Tile{
				X0: x, X1: min(x+tileSize, width),
				Y0: y, Y1: min(y+tileSize, height),
			})
		}
	}
	return out
}

// Render runs a pool of runtime.NumCPU() worker goroutines that take tiles
// one at a time from a shared queue, and fills pixels[y*width+x] with the mean of
// samplesPerPixel calls to sample. Each worker owns its own Sampler — no
// RNG state is ever shared across goroutines. cancel, if non-nil, is
// polled between tiles; once it reports true, no new tile is started but
// in-flight tiles still finish and are merged, leaving the rest of the
// image at whatever partial state it was in.
func Render(width, height, samplesPerPixel int, sample PixelSampleFunc, cancel func() bool) []core.Vec3 {
	pixels := make([]core.Vec3, width*height)
	tileList := tiles(width, height)

	taskChan := make(chan Tile, len(tileList))
	for _, tl := range tileList {
		taskChan <- tl
	}
	close(taskChan)

	numWorkers := runtime.NumCPU()
	var wg sync.WaitGroup
	var mu sync.Mutex

	worker := func(seed int64) {
		defer wg.Done()
		sampler := core.NewSampler(seed)
		for tl := range taskChan {
			if cancel != nil && cancel() {
				return
			}
			renderTile(tl, width, height, samplesPerPixel, sample, sampler, pixels, &mu)
		}
	}

	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go worker(int64(i + 1))
	}
	wg.Wait()

	return pixels
}

// renderTile computes every pixel in tl into a local buffer, then takes the
// single merge-boundary mutex once to copy the whole tile into the shared
// image. No two workers ever write the same pixel, so the lock here only
// protects the copy itself, not the per-pixel sampling work.
func renderTile(tl Tile, width, height, samplesPerPixel int, sample PixelSampleFunc, sampler core.Sampler, pixels []core.Vec3, mu *sync.Mutex) {
	tileWidth := tl.X1 - tl.X0
	tileHeight := tl.Y1 - tl.Y0
	local := make([]core.Vec3, tileWidth*tileHeight)

	for y := tl.Y0; y < tl.Y1; y++ {
		for x := tl.X0; x < tl.X1; x++ {
			sum := core.Vec3{}
			for s := 0; s < samplesPerPixel; s++ {
				sum = sum.Add(sample(x, y, width, height, sampler))
			}
			local[(y-tl.Y0)*tileWidth+(x-tl.X0)] = sum.Multiply(1.0 / float64(samplesPerPixel))
		}
	}

	mu.Lock()
	for y := tl.Y0; y < tl.Y1; y++ {
		for x := tl.X0; x < tl.X1; x++ {
			pixels[y*width+x] = local[(y-tl.Y0)*tileWidth+(x-tl.X0)]
		}
	}
	mu.Unlock()
}
