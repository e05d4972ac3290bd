package material

import (
	"github.com/hhhizzz/ray-tracing-one-week/pkg/core"
)

// BytesPerPixel is the channel count of ImageTexture data (RGB)
const BytesPerPixel = 3

// debugColor is returned when a texture has no image data
var debugColor = core.NewVec3(0, 1, 1)

// ImageTexture provides color from a decoded 2D image
type ImageTexture struct {
	Width  int
	Height int
	Data   []byte // Row-major RGB, top row first: Data[(y*Width+x)*3 + c]
}

// NewImageTexture creates a new image texture from raw RGB bytes
func NewImageTexture(width, height int, data []byte) *ImageTexture {
	if width <= 0 || height <= 0 || len(data) < width*height*BytesPerPixel {
		return NewEmptyImageTexture()
	}
	return &ImageTexture{
		Width:  width,
		Height: height,
		Data:   data,
	}
}

// NewEmptyImageTexture creates a texture whose image failed to load; it samples as cyan
func NewEmptyImageTexture() *ImageTexture {
	return &ImageTexture{}
}

// Value samples the texture at given UV coordinates using nearest-neighbor filtering
func (t *ImageTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	if t.Data == nil {
		return debugColor
	}

	// Clamp to [0,1] and flip V: V=0 is the bottom row, image rows start at the top
	u = clamp(u, 0.0, 1.0)
	v = 1.0 - clamp(v, 0.0, 1.0)

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))

	// Coordinates of exactly 1.0 map one past the last pixel
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	const colorScale = 1.0 / 255.0
	offset := (y*t.Width + x) * BytesPerPixel
	return core.NewVec3(
		colorScale*float64(t.Data[offset]),
		colorScale*float64(t.Data[offset+1]),
		colorScale*float64(t.Data[offset+2]),
	)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
