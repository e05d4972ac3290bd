package main

import (
	"bufio"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hhhizzz/ray-tracing-one-week/pkg/config"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/core"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/output"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/renderer"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/scene"
)

type fakePublisher struct {
	names []string
}

func (f *fakePublisher) Publish(ctx context.Context, name, filename string) error {
	if _, err := os.Stat(filename); err != nil {
		return err
	}
	f.names = append(f.names, name)
	return nil
}

func smallConfig(t *testing.T, sceneName string) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Scene = sceneName
	cfg.ImageWidth = 16
	cfg.SamplesPerPixel = 2
	cfg.MaxDepth = 5
	cfg.Seed = 1
	cfg.TextureDir = t.TempDir()
	cfg.Output = filepath.Join(t.TempDir(), sceneName+".ppm")
	return cfg
}

func TestRun_WritesPPM(t *testing.T) {
	cfg := smallConfig(t, "TwoSpheres")
	if err := run(context.Background(), cfg, renderer.NopLogger{}); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	f, err := os.Open(cfg.Output)
	if err != nil {
		t.Fatalf("Expected output file: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	var header []string
	for i := 0; i < 3 && scanner.Scan(); i++ {
		header = append(header, scanner.Text())
	}
	// 16 / (16/9) = 9 rows
	expected := []string{"P3", "16 9", "255"}
	for i := range expected {
		if i >= len(header) || header[i] != expected[i] {
			t.Fatalf("Expected header %v, got %v", expected, header)
		}
	}
}

func TestRun_UnknownScene(t *testing.T) {
	cfg := smallConfig(t, "Nowhere")
	err := run(context.Background(), cfg, renderer.NopLogger{})
	if !errors.Is(err, scene.ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
	if _, statErr := os.Stat(cfg.Output); !os.IsNotExist(statErr) {
		t.Error("Expected no output for an unknown scene")
	}
}

func TestRun_PreviewAndPublish(t *testing.T) {
	fake := &fakePublisher{}
	original := newPublisher
	newPublisher = func(cfg output.S3Config, logger core.Logger) (publisher, error) {
		if cfg.Bucket != "renders" {
			t.Errorf("Expected bucket renders, got %q", cfg.Bucket)
		}
		return fake, nil
	}
	t.Cleanup(func() { newPublisher = original })

	cfg := smallConfig(t, "CornellBox")
	cfg.Output = filepath.Join(filepath.Dir(cfg.Output), "cornell.png")
	cfg.PreviewWidth = 8
	cfg.S3.Bucket = "renders"

	if err := run(context.Background(), cfg, renderer.NopLogger{}); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	preview := previewPath(cfg.Output)
	if _, err := os.Stat(preview); err != nil {
		t.Errorf("Expected preview file: %v", err)
	}
	if len(fake.names) != 2 || fake.names[0] != "cornell.png" || fake.names[1] != "cornell_preview.png" {
		t.Errorf("Expected render and preview published, got %v", fake.names)
	}
}

func TestRenderConfig_HeightFromAspect(t *testing.T) {
	cfg := config.Default()
	cfg.ImageWidth = 400

	wide, _ := scene.Build("TwoSpheres", scene.Options{Seed: 1})
	if rc := renderConfig(cfg, wide); rc.Height != 225 {
		t.Errorf("Expected 225 rows for 16:9, got %d", rc.Height)
	}
	square, _ := scene.Build("CornellBox", scene.Options{})
	if rc := renderConfig(cfg, square); rc.Height != 400 {
		t.Errorf("Expected 400 rows for a square camera, got %d", rc.Height)
	}

	cfg.ImageWidth = 1
	if rc := renderConfig(cfg, wide); rc.Height != 1 {
		t.Errorf("Expected at least one row, got %d", rc.Height)
	}
}
