package loaders

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/webp" // WebP decoder; imaging registers the rest

	"github.com/hhhizzz/ray-tracing-one-week/pkg/material"
)

// ImageData contains a decoded image as packed RGB bytes, top row first
type ImageData struct {
	Width  int
	Height int
	Pixels []byte // len = Width*Height*material.BytesPerPixel
}

// LoadImage loads a PNG, JPEG, GIF, BMP, TIFF or WebP image.
// When maxSize > 0 the image is shrunk to fit in maxSize×maxSize, keeping its aspect ratio.
func LoadImage(filename string, maxSize int) (*ImageData, error) {
	img, err := imaging.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", filename, err)
	}

	if maxSize > 0 {
		img = resize.Thumbnail(uint(maxSize), uint(maxSize), img, resize.Bilinear)
	}

	return FromImage(img), nil
}

// FromImage converts any image to packed RGB bytes, dropping alpha
func FromImage(img image.Image) *ImageData {
	nrgba := imaging.Clone(img)
	width, height := nrgba.Rect.Dx(), nrgba.Rect.Dy()

	pixels := make([]byte, 0, width*height*material.BytesPerPixel)
	for y := 0; y < height; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+width*4]
		for x := 0; x < width; x++ {
			pixels = append(pixels, row[x*4], row[x*4+1], row[x*4+2])
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Texture wraps the image data as a nearest-neighbor texture
func (d *ImageData) Texture() *material.ImageTexture {
	return material.NewImageTexture(d.Width, d.Height, d.Pixels)
}
