package output

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/hhhizzz/ray-tracing-one-week/pkg/core"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/renderer"
)

// clampCeiling keeps the scaled channel below 256
const clampCeiling = 0.999

// EncodeColor averages an accumulated color over samples, applies gamma 2 and quantises to 8 bits
func EncodeColor(sum core.Vec3, samples int) (r, g, b uint8) {
	scale := 1.0
	if samples > 0 {
		scale = 1.0 / float64(samples)
	}
	return encodeChannel(sum.X * scale), encodeChannel(sum.Y * scale), encodeChannel(sum.Z * scale)
}

func encodeChannel(c float64) uint8 {
	c = math.Sqrt(c)
	// NaN from a degenerate path, or a negative input, encodes as black
	if !(c > 0) {
		return 0
	}
	if c > clampCeiling {
		c = clampCeiling
	}
	return uint8(256 * c)
}

// WritePPM writes the framebuffer as an ASCII P3 image, top row first
func WritePPM(w io.Writer, fb *renderer.Framebuffer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return fmt.Errorf("failed to write ppm header: %w", err)
	}

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b := EncodeColor(fb.At(x, y), fb.Samples)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return fmt.Errorf("failed to write ppm pixel: %w", err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush ppm: %w", err)
	}
	return nil
}
