package output

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"

	"github.com/hhhizzz/ray-tracing-one-week/pkg/renderer"
)

// ToImage encodes the framebuffer into an 8-bit image with the same gamma and clamping as the PPM writer
func ToImage(fb *renderer.Framebuffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b := EncodeColor(fb.At(x, y), fb.Samples)
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// Save writes the framebuffer to path; the extension picks the format (.ppm, .png, .jpg, ...)
func Save(path string, fb *renderer.Framebuffer) error {
	if strings.EqualFold(filepath.Ext(path), ".ppm") {
		return savePPM(path, fb)
	}
	if err := imaging.Save(ToImage(fb), path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// SavePreview writes a copy of the framebuffer scaled to width pixels, keeping the aspect ratio
func SavePreview(path string, fb *renderer.Framebuffer, width int) error {
	if width <= 0 {
		return fmt.Errorf("invalid preview width %d", width)
	}
	preview := resize.Resize(uint(width), 0, ToImage(fb), resize.Bilinear)
	if err := imaging.Save(preview, path); err != nil {
		return fmt.Errorf("failed to save preview %s: %w", path, err)
	}
	return nil
}

func savePPM(path string, fb *renderer.Framebuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := WritePPM(f, fb); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
