package material

import (
	"math"

	"github.com/hhhizzz/ray-tracing-one-week/pkg/core"
)

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Value returns color at the given surface coordinates and 3D point.
	// UV is used for image textures, point for procedural textures.
	Value(u, v float64, point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the solid color regardless of UV or position
func (s *SolidColor) Value(u, v float64, point core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerTexture alternates two textures in a 3D checker pattern tied to world space
type CheckerTexture struct {
	Odd  Texture
	Even Texture
}

// NewCheckerTexture creates a checker pattern from two textures
func NewCheckerTexture(even, odd Texture) *CheckerTexture {
	return &CheckerTexture{Even: even, Odd: odd}
}

// NewCheckerColors creates a checker pattern from two solid colors
func NewCheckerColors(even, odd core.Vec3) *CheckerTexture {
	return NewCheckerTexture(NewSolidColor(even), NewSolidColor(odd))
}

// Value picks a child texture by the sign of the product of sines of the point's coordinates
func (c *CheckerTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	sines := math.Sin(10*point.X) * math.Sin(10*point.Y) * math.Sin(10*point.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, point)
	}
	return c.Even.Value(u, v, point)
}

// defaultTurbulenceDepth is the number of noise octaves summed by NoiseTexture
const defaultTurbulenceDepth = 7

// NoiseTexture is a marble-like pattern built from Perlin turbulence
type NoiseTexture struct {
	noise *Perlin
	Scale float64
}

// NewNoiseTexture creates a marble texture; the sampler seeds the noise lattice
func NewNoiseTexture(scale float64, sampler core.Sampler) *NoiseTexture {
	return &NoiseTexture{noise: NewPerlin(sampler), Scale: scale}
}

// Value returns a gray level phase-shifted along Z by turbulence
func (n *NoiseTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	phase := n.Scale*point.Z + 10*n.noise.Turbulence(point, defaultTurbulenceDepth)
	return core.NewVec3(1, 1, 1).Multiply(0.5 * (1 + math.Sin(phase)))
}
