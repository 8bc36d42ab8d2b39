// Command pathtracer renders a built-in scene to a PPM file. Scene
// selection is a compile-time switch, not a file format, per the minimal
// CLI surface this renderer targets.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/CampbellOwen/RayTracing/pkg/core"
	"github.com/CampbellOwen/RayTracing/pkg/exporter"
	"github.com/CampbellOwen/RayTracing/pkg/integrator"
	"github.com/CampbellOwen/RayTracing/pkg/scene"
)

// Config holds the command's flags.
type Config struct {
	SceneName  string
	Output     string
	Width      int
	Height     int
	Samples    int
	MaxDepth   int
	Verbose    bool
}

func main() {
	config := parseFlags()

	sc, err := createScene(config.SceneName, config.Width, config.Height, config.Samples, config.MaxDepth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating scene %q: %v\n", config.SceneName, err)
		os.Exit(1)
	}

	pt := integrator.NewPathTracer(sc.Config)
	if config.Verbose {
		pt.Logger = integrator.StdLogger{}
	}

	var cancelled int32
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "interrupted, writing partial image...")
		atomic.StoreInt32(&cancelled, 1)
	}()

	sample := func(x, y, width, height int, sampler core.Sampler) core.Vec3 {
		s := (float64(x) + sampler.Get1D()) / float64(width)
		// The image buffer's y grows upward (row 0 = bottom), like the
		// camera's t parameter (t=0 at the bottom); the exporter writes the
		// rows in reverse y order so the top of the image comes first.
		t := (float64(y) + sampler.Get1D()) / float64(height)
		ray := sc.Camera.GetRay(s, t, sampler)
		return pt.RayColor(ray, sc, sampler)
	}

	pixels := scene.Render(config.Width, config.Height, config.Samples, sample, func() bool {
		return atomic.LoadInt32(&cancelled) == 1
	})

	img := exporter.Image{Width: config.Width, Height: config.Height, Pixels: pixels}
	if err := exporter.WritePPM(config.Output, img); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", config.Output, err)
		os.Exit(1)
	}

	fmt.Printf("wrote %s (%dx%d, %d spp)\n", config.Output, config.Width, config.Height, config.Samples)
}

func parseFlags() Config {
	config := Config{}
	flag.StringVar(&config.SceneName, "scene", "default", "built-in scene to render")
	flag.StringVar(&config.Output, "output", "output.ppm", "output PPM file path")
	flag.IntVar(&config.Width, "width", 400, "image width in pixels")
	flag.IntVar(&config.Height, "height", 225, "image height in pixels")
	flag.IntVar(&config.Samples, "samples", 100, "samples per pixel")
	flag.IntVar(&config.MaxDepth, "max-depth", 50, "maximum path depth")
	flag.BoolVar(&config.Verbose, "verbose", false, "log per-bounce integrator trace output")
	flag.Parse()
	return config
}
