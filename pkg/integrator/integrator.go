package integrator

import (
	"github.com/hhhizzz/ray-tracing-one-week/pkg/core"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// Radiance estimates the light arriving along ray, using one random path
	Radiance(ray core.Ray, background core.Background, world geometry.Hittable, sampler core.Sampler) core.Vec3
}
