package geometry

import (
	"math"

	"github.com/hhhizzz/ray-tracing-one-week/pkg/core"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/material"
)

// mediumExitEpsilon separates the exit search from the entry hit
const mediumExitEpsilon = 0.0001

// ConstantMedium is a volume of uniform density bounded by a convex hittable, like smoke or fog
type ConstantMedium struct {
	Boundary      Hittable
	Density       float64
	PhaseFunction material.Material
	negInvDensity float64
}

// NewConstantMedium creates a medium with an isotropic phase function of the given color
func NewConstantMedium(boundary Hittable, density float64, color core.Vec3) *ConstantMedium {
	return NewTexturedConstantMedium(boundary, density, material.NewSolidColor(color))
}

// NewTexturedConstantMedium creates a medium whose phase function albedo comes from a texture
func NewTexturedConstantMedium(boundary Hittable, density float64, albedo material.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		Density:       density,
		PhaseFunction: material.NewTexturedIsotropic(albedo),
		negInvDensity: -1 / density,
	}
}

// Hit samples a free-flight distance through the medium and reports a scattering event inside it
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	entry, ok := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1), sampler)
	if !ok {
		return nil, false
	}
	exit, ok := m.Boundary.Hit(ray, entry.T+mediumExitEpsilon, math.Inf(1), sampler)
	if !ok {
		return nil, false
	}

	t0, t1 := math.Max(entry.T, tMin), math.Min(exit.T, tMax)
	if t0 >= t1 {
		return nil, false
	}
	if t0 < 0 {
		t0 = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t1 - t0) * rayLength
	hitDistance := m.negInvDensity * math.Log(sampler.Get1D())
	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := t0 + hitDistance/rayLength
	return &material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary
		FrontFace: true,                  // also arbitrary
		Material:  m.PhaseFunction,
	}, true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return m.Boundary.BoundingBox(time0, time1)
}
