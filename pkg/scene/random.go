package scene

import (
	"github.com/hhhizzz/ray-tracing-one-week/pkg/core"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/geometry"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/material"
)

// randomGridExtent bounds the small-sphere grid to [-11, 11) on X and Z
const randomGridExtent = 11

// randomScene returns the cover scene builder. With motion the diffuse spheres bounce
// upwards over the shutter interval; with checker the ground is a checker pattern.
func randomScene(motion, checker bool) builder {
	return func(opts Options, sampler core.Sampler) (*Scene, error) {
		time0, time1 := 0.0, 1.0
		if !motion {
			time1 = 0.0
		}

		var objects []geometry.Hittable
		if checker {
			ground := material.NewCheckerColors(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
			objects = append(objects, geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(ground)))
		} else {
			ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
			objects = append(objects, geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))
		}

		feature := core.NewVec3(4, 0.2, 0)
		for a := -randomGridExtent; a < randomGridExtent; a++ {
			for b := -randomGridExtent; b < randomGridExtent; b++ {
				chooseMat := sampler.Get1D()
				center := core.NewVec3(float64(a)+0.9*sampler.Get1D(), 0.2, float64(b)+0.9*sampler.Get1D())

				// Keep clear of the big metal sphere
				if center.Subtract(feature).Length() <= 0.9 {
					continue
				}

				switch {
				case chooseMat < 0.8:
					albedo := core.RandomVec3(sampler, 0, 1).MultiplyVec(core.RandomVec3(sampler, 0, 1))
					center1 := center.Add(core.NewVec3(0, core.RandomRange(sampler, 0, 0.5), 0))
					objects = append(objects, geometry.NewMovingSphere(center, center1, time0, time1, 0.2, material.NewLambertian(albedo)))
				case chooseMat < 0.95:
					albedo := core.RandomVec3(sampler, 0.5, 1)
					fuzz := core.RandomRange(sampler, 0, 0.5)
					objects = append(objects, geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
				default:
					objects = append(objects, geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
				}
			}
		}

		objects = append(objects,
			geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
			geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
			geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
		)

		bvh, err := geometry.NewBVHNode(objects, 0, 1, sampler)
		if err != nil {
			return nil, err
		}
		return withCamera(bvh, defaultCamera(opts)), nil
	}
}
