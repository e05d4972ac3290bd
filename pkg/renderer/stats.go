package renderer

import (
	"fmt"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int           // Image width in pixels
	Height          int           // Image height in pixels
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of samples taken
	SamplesPerPixel int           // Samples taken per pixel
	RowsCompleted   int           // Scanlines finished before returning
	Workers         int           // Goroutines used
	Duration        time.Duration // Wall-clock render time
}

// SamplesPerSecond returns the sampling throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}

func (s RenderStats) String() string {
	return fmt.Sprintf("%dx%d, %d spp, %d rows on %d workers in %v (%.0f samples/s)",
		s.Width, s.Height, s.SamplesPerPixel, s.RowsCompleted, s.Workers,
		s.Duration.Round(time.Millisecond), s.SamplesPerSecond())
}
