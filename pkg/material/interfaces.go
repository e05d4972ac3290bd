package material

import (
	"github.com/hhhizzz/ray-tracing-one-week/pkg/core"
)

// Material interface for objects that can scatter rays
type Material interface {
	// Scatter reports the attenuation and outgoing ray for an incoming ray at hit.
	// It returns false when the ray is absorbed or the material only emits.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// Emitter interface for materials that emit light
type Emitter interface {
	Emitted(u, v float64, point core.Vec3) core.Vec3
}

// Emitted returns the light emitted by m at the surface point, or black when m does not emit
func Emitted(m Material, u, v float64, point core.Vec3) core.Vec3 {
	if emitter, ok := m.(Emitter); ok {
		return emitter.Emitted(u, v, point)
	}
	return core.Vec3{}
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal, always facing against the incoming ray
	T         float64   // Parameter t along the ray
	U, V      float64   // Surface parameterization for texture lookup
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
