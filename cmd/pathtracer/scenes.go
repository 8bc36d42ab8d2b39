package main

import (
	"fmt"

	"github.com/CampbellOwen/RayTracing/pkg/core"
	"github.com/CampbellOwen/RayTracing/pkg/geometry"
	"github.com/CampbellOwen/RayTracing/pkg/lights"
	"github.com/CampbellOwen/RayTracing/pkg/material"
	"github.com/CampbellOwen/RayTracing/pkg/scene"
)

// createScene is the compile-time scene-selection switch. Each case builds
// one of the scenarios this renderer targets end to end.
func createScene(name string, width, height, samples, maxDepth int) (*scene.Scene, error) {
	config := scene.SamplingConfig{
		Width: width, Height: height,
		SamplesPerPixel: samples, MaxDepth: maxDepth,
	}
	aspect := float64(width) / float64(height)

	switch name {
	case "default":
		return checkerGroundScene(config, aspect), nil
	case "skybox":
		return skyboxScene(config, aspect), nil
	case "rect-light":
		return rectLightScene(config, aspect), nil
	case "motion-blur":
		return motionBlurScene(config, aspect), nil
	case "cornell":
		return cornellScene(config, aspect), nil
	case "transformed-wall":
		return transformedWallScene(config, aspect), nil
	default:
		return nil, fmt.Errorf("unknown scene %q", name)
	}
}

// checkerGroundScene: a dark sphere and a large checkered rectangle in the
// z = -1 plane, which passes through the sphere's center; with +Y up the
// rectangle stands upright rather than lying under the sphere as a ground.
// Viewed from an oblique angle — scenario 1 in spec.md's end-to-end list.
func checkerGroundScene(config scene.SamplingConfig, aspect float64) *scene.Scene {
	ground := material.NewLambertian(material.NewCheckerColor(
		core.Vec3{X: 0.2, Y: 0.3, Z: 0.1}, core.Vec3{X: 0.9, Y: 0.9, Z: 0.9}))
	groundPlane := geometry.NewAARect(-1000, 1000, -1000, 1000, -1, ground) // z-plane stand-in for a ground disc

	darkSphere := material.NewLambertianColor(core.Vec3{X: 0.02, Y: 0.02, Z: 0.02})
	sphere := geometry.NewSphere(core.Vec3{X: 0, Y: 0.8, Z: -1}, 0.8, darkSphere)

	camera := scene.NewCamera(
		core.Vec3{X: -5, Y: 0.8, Z: -3.5}, core.Vec3{X: 0, Y: 0, Z: -1}, core.Vec3{X: 0, Y: 1, Z: 0},
		40, aspect, 0.0, 5.0, 0, 1)

	return scene.NewBuilder(config).
		Add(groundPlane, sphere).
		SetCamera(camera).
		SetBackground(scene.SkyBackground(core.Vec3{X: 0.5, Y: 0.7, Z: 1.0}, core.Vec3{X: 1, Y: 1, Z: 1})).
		Build()
}

// skyboxScene: no geometry at all, so every ray samples the background
// directly — scenario 2.
func skyboxScene(config scene.SamplingConfig, aspect float64) *scene.Scene {
	camera := scene.NewCamera(
		core.Vec3{X: 0, Y: 0, Z: 0}, core.Vec3{X: 0, Y: 0, Z: -1}, core.Vec3{X: 0, Y: 1, Z: 0},
		90, aspect, 0.0, 1.0, 0, 1)

	return scene.NewBuilder(config).
		SetCamera(camera).
		SetBackground(scene.SkyBackground(core.Vec3{X: 0.5, Y: 0.7, Z: 1.0}, core.Vec3{X: 1, Y: 1, Z: 1})).
		Build()
}

// rectLightScene places an emitter behind the camera — scenario 3.
func rectLightScene(config scene.SamplingConfig, aspect float64) *scene.Scene {
	emitter := material.NewDiffuseLightColor(core.Vec3{X: 4, Y: 4, Z: 4})
	rect := geometry.NewAARect(-2, 2, -2, 2, 5, emitter)
	light := lights.NewRectLight(rect)

	floorMat := material.NewLambertianColor(core.Vec3{X: 0.5, Y: 0.5, Z: 0.5})
	floor := geometry.NewAARect(-10, 10, -10, 10, -1, floorMat)

	camera := scene.NewCamera(
		core.Vec3{X: 0, Y: 1, Z: 0}, core.Vec3{X: 0, Y: 0, Z: -1}, core.Vec3{X: 0, Y: 1, Z: 0},
		60, aspect, 0.0, 1.0, 0, 1)

	return scene.NewBuilder(config).
		Add(rect, floor).
		AddLight(light).
		SetCamera(camera).
		SetBackground(scene.SolidBackground(core.Vec3{})).
		Build()
}

// motionBlurScene: a sphere sweeping across the shutter window — scenario 4.
func motionBlurScene(config scene.SamplingConfig, aspect float64) *scene.Scene {
	mat := material.NewLambertianColor(core.Vec3{X: 0.8, Y: 0.3, Z: 0.3})
	sphere := geometry.NewMovingSphere(
		core.Vec3{X: -1, Y: 0, Z: -2}, core.Vec3{X: 1, Y: 0, Z: -2},
		0, 1, 0.4, mat)

	camera := scene.NewCamera(
		core.Vec3{X: 0, Y: 0, Z: 2}, core.Vec3{X: 0, Y: 0, Z: -2}, core.Vec3{X: 0, Y: 1, Z: 0},
		40, aspect, 0.0, 4.0, 0, 1)

	return scene.NewBuilder(config).
		Shutter(0, 1).
		Add(sphere).
		SetCamera(camera).
		SetBackground(scene.SkyBackground(core.Vec3{X: 0.5, Y: 0.7, Z: 1.0}, core.Vec3{X: 1, Y: 1, Z: 1})).
		Build()
}

// cornellScene: a green-tinted left wall, red-tinted right wall, and a
// central diffuse sphere to show color bleed — scenario 5.
func cornellScene(config scene.SamplingConfig, aspect float64) *scene.Scene {
	red := material.NewLambertianColor(core.Vec3{X: 0.65, Y: 0.05, Z: 0.05})
	green := material.NewLambertianColor(core.Vec3{X: 0.12, Y: 0.45, Z: 0.15})
	white := material.NewLambertianColor(core.Vec3{X: 0.73, Y: 0.73, Z: 0.73})
	emitter := material.NewDiffuseLightColor(core.Vec3{X: 15, Y: 15, Z: 15})

	leftWall := geometry.NewTransformed(geometry.RotateY(1, 0), geometry.NewAARect(-2, 2, -2, 2, -2, green))
	rightWall := geometry.NewTransformed(geometry.RotateY(-1, 0), geometry.NewAARect(-2, 2, -2, 2, -2, red))
	ceilingLight := geometry.NewAARect(-0.5, 0.5, -0.5, 0.5, 4, emitter)
	light := lights.NewRectLight(ceilingLight)

	floor := geometry.NewAARect(-3, 3, -3, 3, -2, white)
	box := geometry.NewSphere(core.Vec3{X: 0, Y: -1.2, Z: -1}, 0.8, white)

	camera := scene.NewCamera(
		core.Vec3{X: 0, Y: 0, Z: 4}, core.Vec3{X: 0, Y: 0, Z: -1}, core.Vec3{X: 0, Y: 1, Z: 0},
		40, aspect, 0.0, 5.0, 0, 1)

	return scene.NewBuilder(config).
		Add(leftWall, rightWall, floor, ceilingLight, box).
		AddLight(light).
		SetCamera(camera).
		SetBackground(scene.SolidBackground(core.Vec3{})).
		Build()
}

// transformedWallScene: a thin scaled AARect standing in for a wall, hit
// nearly head-on — scenario 6.
func transformedWallScene(config scene.SamplingConfig, aspect float64) *scene.Scene {
	mat := material.NewLambertianColor(core.Vec3{X: 0.7, Y: 0.7, Z: 0.7})
	wall := geometry.NewAARect(-1, 1, -1, 1, 0, mat)
	scaled := geometry.NewTransformed(
		geometry.Translate(core.Vec3{X: 0, Y: 0, Z: -1.5}).Mul(geometry.Scale(core.Vec3{X: 1.5, Y: 1.5, Z: 0.01})),
		wall)

	camera := scene.NewCamera(
		core.Vec3{X: 0, Y: 0, Z: 0}, core.Vec3{X: 0, Y: 0, Z: -1}, core.Vec3{X: 0, Y: 1, Z: 0},
		40, aspect, 0.0, 3.0, 0, 1)

	return scene.NewBuilder(config).
		Add(scaled).
		SetCamera(camera).
		SetBackground(scene.SkyBackground(core.Vec3{X: 0.5, Y: 0.7, Z: 1.0}, core.Vec3{X: 1, Y: 1, Z: 1})).
		Build()
}
