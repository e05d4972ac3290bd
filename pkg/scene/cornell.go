package scene

import (
	"github.com/hhhizzz/ray-tracing-one-week/pkg/core"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/geometry"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/material"
)

// cornellSize is the edge length of the Cornell box
const cornellSize = 555.0

// cornellWalls builds the five walls and a ceiling light spanning [lx0,lx1] x [lz0,lz1]
func cornellWalls(lx0, lx1, lz0, lz1 float64, emission core.Vec3) *geometry.HittableList {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(emission)

	return geometry.NewHittableList(
		geometry.NewYZRect(0, cornellSize, 0, cornellSize, cornellSize, green), // right
		geometry.NewYZRect(0, cornellSize, 0, cornellSize, 0, red),             // left
		geometry.NewXZRect(lx0, lx1, lz0, lz1, cornellSize-1, light),           // just below the ceiling
		geometry.NewXZRect(0, cornellSize, 0, cornellSize, 0, white),           // floor
		geometry.NewXZRect(0, cornellSize, 0, cornellSize, cornellSize, white), // ceiling
		geometry.NewXYRect(0, cornellSize, 0, cornellSize, cornellSize, white), // back
	)
}

// cornellBlocks returns the tall and short boxes, rotated and placed on the floor
func cornellBlocks(mat material.Material) (tall, short geometry.Hittable) {
	tall = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), mat)
	tall = geometry.NewRotateY(tall, 15)
	tall = geometry.NewTranslate(tall, core.NewVec3(265, 0, 295))

	short = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), mat)
	short = geometry.NewRotateY(short, -18)
	short = geometry.NewTranslate(short, core.NewVec3(130, 0, 65))
	return tall, short
}

// cornellCamera looks into the open side of the box
func cornellCamera() geometry.CameraConfig {
	return geometry.CameraConfig{
		LookFrom:    core.NewVec3(278, 278, -800),
		LookAt:      core.NewVec3(278, 278, 0),
		VUp:         core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: 1.0,
		Aperture:    0,
		FocusDist:   10,
		Background:  core.NewVec3(0, 0, 0),
		Time0:       0,
		Time1:       0,
	}
}

func cornellBox(opts Options, sampler core.Sampler) (*Scene, error) {
	world := cornellWalls(213, 343, 227, 332, core.NewVec3(15, 15, 15))

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	tall, short := cornellBlocks(white)
	world.Add(tall)
	world.Add(short)

	return withCamera(world, cornellCamera()), nil
}

func cornellSmoke(opts Options, sampler core.Sampler) (*Scene, error) {
	world := cornellWalls(113, 443, 127, 432, core.NewVec3(7, 7, 7))

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	tall, short := cornellBlocks(white)
	world.Add(geometry.NewConstantMedium(tall, 0.01, core.NewVec3(0, 0, 0)))
	world.Add(geometry.NewConstantMedium(short, 0.01, core.NewVec3(1, 1, 1)))

	return withCamera(world, cornellCamera()), nil
}
