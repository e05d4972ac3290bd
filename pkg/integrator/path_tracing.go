package integrator

import (
	"math"

	"github.com/hhhizzz/ray-tracing-one-week/pkg/core"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/geometry"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/material"
)

// ShadowAcneEpsilon is the minimum hit distance; it keeps rays from re-hitting the surface they left
const ShadowAcneEpsilon = 0.001

// DefaultMaxDepth is the bounce limit used when none is configured
const DefaultMaxDepth = 50

// PathTracingIntegrator implements unidirectional path tracing with a fixed bounce limit
type PathTracingIntegrator struct {
	MaxDepth int
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{MaxDepth: maxDepth}
}

// Radiance implements Integrator
func (pt *PathTracingIntegrator) Radiance(ray core.Ray, background core.Background, world geometry.Hittable, sampler core.Sampler) core.Vec3 {
	return RayColor(ray, background, world, pt.MaxDepth, sampler)
}

// RayColor computes the color for a single ray by following one random scattering path.
// Rays that escape take the background radiance; depth bounds the number of bounces.
func RayColor(ray core.Ray, background core.Background, world geometry.Hittable, depth int, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, ShadowAcneEpsilon, math.Inf(1), sampler)
	if !isHit {
		return background.Radiance(ray)
	}

	emitted := material.Emitted(hit.Material, hit.U, hit.V, hit.Point)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return emitted
	}

	return emitted.Add(scatter.Attenuation.MultiplyVec(
		RayColor(scatter.Scattered, background, world, depth-1, sampler)))
}
