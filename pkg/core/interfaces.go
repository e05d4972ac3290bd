package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Background gives the radiance carried by rays that escape the scene
type Background interface {
	Radiance(ray Ray) Vec3
}

// SolidBackground returns the same color in every direction
type SolidBackground struct {
	Color Vec3
}

// NewSolidBackground creates a constant background
func NewSolidBackground(color Vec3) SolidBackground {
	return SolidBackground{Color: color}
}

// Radiance implements Background
func (b SolidBackground) Radiance(ray Ray) Vec3 {
	return b.Color
}

// SkyGradient blends Bottom (looking down) to Top (looking up) by the ray's vertical direction
type SkyGradient struct {
	Top    Vec3
	Bottom Vec3
}

// NewSkyGradient creates the classic white-to-blue sky
func NewSkyGradient() SkyGradient {
	return SkyGradient{Top: NewVec3(0.5, 0.7, 1.0), Bottom: NewVec3(1, 1, 1)}
}

// Radiance implements Background
func (g SkyGradient) Radiance(ray Ray) Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return g.Bottom.Multiply(1.0 - t).Add(g.Top.Multiply(t))
}
