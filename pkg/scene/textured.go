package scene

import (
	"path/filepath"

	"github.com/hhhizzz/ray-tracing-one-week/pkg/core"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/geometry"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/loaders"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/material"
)

// EarthTexture is the file name the Earth scene loads from Options.TextureDir
const EarthTexture = "earth-map.jpg"

func twoSpheres(opts Options, sampler core.Sampler) (*Scene, error) {
	checker := material.NewTexturedLambertian(
		material.NewCheckerColors(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	)
	return withCamera(world, defaultCamera(opts)), nil
}

// perlinSpheres is a marble ground with a marble sphere resting on it
func perlinSpheres(sampler core.Sampler) *geometry.HittableList {
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, sampler))
	return geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)
}

func twoPerlinSpheres(opts Options, sampler core.Sampler) (*Scene, error) {
	return withCamera(perlinSpheres(sampler), defaultCamera(opts)), nil
}

func earth(opts Options, sampler core.Sampler) (*Scene, error) {
	path := filepath.Join(opts.TextureDir, EarthTexture)

	texture := material.NewEmptyImageTexture()
	img, err := loaders.LoadImage(path, opts.TextureMaxSize)
	if err != nil {
		// A missing texture renders as cyan rather than failing the scene
		if opts.Logger != nil {
			opts.Logger.Printf("Could not load texture %s: %v\n", path, err)
		}
	} else {
		texture = img.Texture()
	}

	globe := geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(texture))
	return withCamera(geometry.NewHittableList(globe), defaultCamera(opts)), nil
}

func sampleLight(opts Options, sampler core.Sampler) (*Scene, error) {
	world := perlinSpheres(sampler)

	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))
	world.Add(geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light))
	world.Add(geometry.NewXYRect(3, 5, 1, 3, -2, light))

	camera := defaultCamera(opts)
	camera.LookFrom = core.NewVec3(26, 3, 6)
	camera.LookAt = core.NewVec3(0, 2, 0)
	camera.Aperture = 0.01
	camera.Background = core.NewVec3(0, 0, 0)
	return withCamera(world, camera), nil
}
