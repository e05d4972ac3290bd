package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hhhizzz/ray-tracing-one-week/pkg/config"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/core"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/geometry"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/output"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/renderer"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/scene"
)

// publisher uploads a finished file
type publisher interface {
	Publish(ctx context.Context, name, filename string) error
}

// newPublisher is replaced in tests
var newPublisher = func(cfg output.S3Config, logger core.Logger) (publisher, error) {
	return output.NewS3Publisher(cfg, logger)
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(context.Background(), cfg, renderer.NewDefaultLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run renders the configured scene and writes, previews and publishes the result
func run(ctx context.Context, cfg config.Config, logger core.Logger) error {
	s, err := scene.Build(cfg.Scene, scene.Options{
		Aperture:       cfg.Aperture,
		TextureDir:     cfg.TextureDir,
		TextureMaxSize: cfg.TextureMaxSize,
		Seed:           cfg.Seed,
		Logger:         logger,
	})
	if err != nil {
		return err
	}
	logger.Printf("Rendering Scene: %s\n", s.Name)

	rt := renderer.NewRaytracer(s.World, geometry.NewCamera(s.Camera), s.Background, renderConfig(cfg, s), logger)
	fb, _, err := rt.Render(ctx)
	if err != nil {
		return err
	}

	if err := output.Save(cfg.Output, fb); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", cfg.Output)
	files := []string{cfg.Output}

	if cfg.PreviewWidth > 0 {
		preview := previewPath(cfg.Output)
		if err := output.SavePreview(preview, fb, cfg.PreviewWidth); err != nil {
			return err
		}
		logger.Printf("Preview saved as %s\n", preview)
		files = append(files, preview)
	}

	if !cfg.S3.Enabled() {
		return nil
	}
	pub, err := newPublisher(output.S3Config{
		Bucket:    cfg.S3.Bucket,
		Region:    cfg.S3.Region,
		Endpoint:  cfg.S3.Endpoint,
		AccessKey: cfg.S3.AccessKey,
		SecretKey: cfg.S3.SecretKey,
		Prefix:    cfg.S3.Prefix,
	}, logger)
	if err != nil {
		return err
	}
	for _, file := range files {
		if err := pub.Publish(ctx, filepath.Base(file), file); err != nil {
			return err
		}
	}
	return nil
}

// renderConfig derives the image height from the scene camera's aspect ratio
func renderConfig(cfg config.Config, s *scene.Scene) renderer.RenderConfig {
	height := int(float64(cfg.ImageWidth) / s.Camera.AspectRatio)
	return renderer.RenderConfig{
		Width:           cfg.ImageWidth,
		Height:          max(height, 1),
		SamplesPerPixel: cfg.SamplesPerPixel,
		MaxDepth:        cfg.MaxDepth,
		Workers:         cfg.Workers,
		Seed:            cfg.Seed,
	}
}

// previewPath returns out with its extension replaced by _preview.png
func previewPath(out string) string {
	return strings.TrimSuffix(out, filepath.Ext(out)) + "_preview.png"
}
