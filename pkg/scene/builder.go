package scene

import (
	"github.com/CampbellOwen/RayTracing/pkg/core"
	"github.com/CampbellOwen/RayTracing/pkg/geometry"
)

// Builder is a fluent assembler for a Scene: accumulate objects and lights,
// set a camera and background, then Build to snapshot a BVH over the
// accumulated objects.
type Builder struct {
	objects []core.Intersectable
	lights  []core.SampleableLight
	camera  *Camera
	bg      BackgroundFunc
	config  SamplingConfig
	time0   float64
	time1   float64
}

func NewBuilder(config SamplingConfig) *Builder {
	return &Builder{config: config, time0: 0, time1: 1}
}

func (b *Builder) Shutter(time0, time1 float64) *Builder {
	b.time0, b.time1 = time0, time1
	return b
}

func (b *Builder) Add(objects ...core.Intersectable) *Builder {
	b.objects = append(b.objects, objects...)
	return b
}

func (b *Builder) AddLight(light core.SampleableLight) *Builder {
	b.lights = append(b.lights, light)
	return b
}

func (b *Builder) SetCamera(c *Camera) *Builder {
	b.camera = c
	return b
}

func (b *Builder) SetBackground(bg BackgroundFunc) *Builder {
	b.bg = bg
	return b
}

// Build constructs the BVH over every accumulated object (the BVH build
// handles one and two objects itself; a 0-object scene gets an explicit
// empty ShapeList instead) and returns the immutable Scene.
func (b *Builder) Build() *Scene {
	var root core.Intersectable
	if len(b.objects) == 0 {
		root = geometry.ShapeList{}
	} else {
		root = geometry.NewBVH(b.objects, b.time0, b.time1)
	}

	return &Scene{
		Objects:    root,
		Lights:     b.lights,
		Camera:     b.camera,
		Background: b.bg,
		Config:     b.config,
	}
}
