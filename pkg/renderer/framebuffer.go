package renderer

import "github.com/hhhizzz/ray-tracing-one-week/pkg/core"

// Framebuffer holds the accumulated radiance of every pixel.
// Pixels are stored row-major with the top image row first; each entry is the
// sum over Samples samples, not the average.
type Framebuffer struct {
	Width   int
	Height  int
	Samples int
	Pixels  []core.Vec3
}

// NewFramebuffer allocates a black framebuffer
func NewFramebuffer(width, height, samples int) *Framebuffer {
	return &Framebuffer{
		Width:   width,
		Height:  height,
		Samples: samples,
		Pixels:  make([]core.Vec3, width*height),
	}
}

// At returns the accumulated color at column x of image row y (0 = top)
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.Pixels[y*fb.Width+x]
}

// Row returns the slice backing image row y (0 = top)
func (fb *Framebuffer) Row(y int) []core.Vec3 {
	return fb.Pixels[y*fb.Width : (y+1)*fb.Width]
}

// Average returns the mean color at column x of image row y
func (fb *Framebuffer) Average(x, y int) core.Vec3 {
	if fb.Samples <= 0 {
		return core.Vec3{}
	}
	return fb.At(x, y).Divide(float64(fb.Samples))
}
