package scene

import (
	"github.com/hhhizzz/ray-tracing-one-week/pkg/core"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/geometry"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/material"
)

// glassMetal is a diffuse sphere flanked by a hollow glass sphere and a polished metal
// sphere. It is lit only by the sky gradient.
func glassMetal(opts Options, sampler core.Sampler) (*Scene, error) {
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	metal := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		// Negative radius flips the normals inward, leaving a bubble inside the glass
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, glass),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, metal),
	)

	lookFrom := core.NewVec3(3, 3, 2)
	lookAt := core.NewVec3(0, 0, -1)
	camera := defaultCamera(opts)
	camera.LookFrom = lookFrom
	camera.LookAt = lookAt
	camera.FocusDist = lookFrom.Subtract(lookAt).Length()

	return &Scene{
		World:      world,
		Camera:     camera,
		Background: core.NewSkyGradient(),
	}, nil
}
