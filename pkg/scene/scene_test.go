package scene

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/hhhizzz/ray-tracing-one-week/pkg/core"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/geometry"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/material"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func TestNames(t *testing.T) {
	expected := []string{
		"Random", "WithTime", "CheckerTexture", "TwoSpheres", "TwoPerlinSpheres",
		"Earth", "SampleLight", "CornellBox", "CornellSmoke", "GlassMetal",
	}
	names := Names()
	if len(names) != len(expected) {
		t.Fatalf("Expected %d scenes, got %d: %v", len(expected), len(names), names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Scene %d: expected %s, got %s", i, expected[i], names[i])
		}
	}
	if infos := List(); len(infos) != len(names) || infos[0].Description == "" {
		t.Errorf("Expected described scenes, got %+v", infos)
	}
}

func TestBuild_UnknownScene(t *testing.T) {
	_, err := Build("Teapot", Options{})
	if !errors.Is(err, ErrUnknownScene) {
		t.Fatalf("Expected ErrUnknownScene, got %v", err)
	}
	if !strings.Contains(err.Error(), "Teapot") {
		t.Errorf("Expected error to name the scene, got %v", err)
	}
}

func TestBuild_AllScenes(t *testing.T) {
	opts := Options{Aperture: 0.1, TextureDir: t.TempDir(), Seed: 11}
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := Build(name, opts)
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			if s.Name != name {
				t.Errorf("Expected name %s, got %s", name, s.Name)
			}
			if s.World == nil || s.Background == nil {
				t.Fatal("Expected world and background")
			}
			if _, ok := s.World.BoundingBox(s.Camera.Time0, s.Camera.Time1); !ok {
				t.Error("Expected every scene to be bounded")
			}
			if s.Camera.AspectRatio <= 0 || s.Camera.VFov <= 0 {
				t.Errorf("Invalid camera: %+v", s.Camera)
			}

			// The view direction must see something or escape to the background
			camera := geometry.NewCamera(s.Camera)
			ray := camera.GetRay(0.5, 0.5, core.NewSeededSampler(1))
			if hit, ok := s.World.Hit(ray, 0.001, 1e9, core.NewSeededSampler(2)); ok && hit.Material == nil {
				t.Error("Hit without a material")
			}
		})
	}
}

func TestBuild_DefaultCamera(t *testing.T) {
	s, err := Build("TwoSpheres", Options{Aperture: 0.25})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	cam := s.Camera
	if cam.LookFrom != core.NewVec3(13, 2, 3) || cam.LookAt != (core.Vec3{}) || cam.VFov != 20 {
		t.Errorf("Unexpected view: %+v", cam)
	}
	if cam.Aperture != 0.25 || cam.FocusDist != 10 || cam.Time0 != 0 || cam.Time1 != 1 {
		t.Errorf("Unexpected lens or shutter: %+v", cam)
	}
	if got := s.Background.Radiance(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0))); got != core.NewVec3(0.7, 0.8, 1.0) {
		t.Errorf("Expected solid sky blue background, got %v", got)
	}
}

// probeHits casts a fixed bundle of rays at the world and records each closest hit
func probeHits(world geometry.Hittable) []float64 {
	sampler := core.NewSeededSampler(99)
	var ts []float64
	for i := 0; i < 300; i++ {
		origin := core.NewVec3(13, 2, 3)
		target := core.NewVec3(core.RandomRange(sampler, -11, 11), 0.2, core.RandomRange(sampler, -11, 11))
		ray := core.NewRay(origin, target.Subtract(origin))
		if hit, ok := world.Hit(ray, 0.001, 1e9, sampler); ok {
			ts = append(ts, hit.T)
		} else {
			ts = append(ts, -1)
		}
	}
	return ts
}

func TestBuild_RandomIsReproducibleWithSeed(t *testing.T) {
	a, err := Build("Random", Options{Seed: 5})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	b, _ := Build("Random", Options{Seed: 5})
	c, _ := Build("Random", Options{Seed: 6})

	hitsA, hitsB, hitsC := probeHits(a.World), probeHits(b.World), probeHits(c.World)
	differs := false
	for i := range hitsA {
		if hitsA[i] != hitsB[i] {
			t.Fatalf("Ray %d: same seed gave %f and %f", i, hitsA[i], hitsB[i])
		}
		if hitsA[i] != hitsC[i] {
			differs = true
		}
	}
	if !differs {
		t.Error("Expected a different seed to place the spheres differently")
	}
}

func TestBuild_RandomWithoutMotionIsStatic(t *testing.T) {
	s, err := Build("Random", Options{Seed: 3})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	// The same ray at both ends of the shutter sees the same spheres
	sampler := core.NewSeededSampler(4)
	for i := 0; i < 200; i++ {
		origin := core.NewVec3(13, 2, 3)
		target := core.NewVec3(core.RandomRange(sampler, -11, 11), 0.2, core.RandomRange(sampler, -11, 11))
		dir := target.Subtract(origin)
		early, okEarly := s.World.Hit(core.NewRayAtTime(origin, dir, 0), 0.001, 1e9, sampler)
		late, okLate := s.World.Hit(core.NewRayAtTime(origin, dir, 1), 0.001, 1e9, sampler)
		if okEarly != okLate || (okEarly && early.T != late.T) {
			t.Fatalf("Ray %d changed between shutter open and close", i)
		}
	}
}

func TestBuild_CornellBoxLight(t *testing.T) {
	s, err := Build("CornellBox", Options{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if s.Camera.AspectRatio != 1 || s.Camera.VFov != 40 || s.Camera.LookFrom != core.NewVec3(278, 278, -800) {
		t.Errorf("Unexpected Cornell camera: %+v", s.Camera)
	}
	if got := s.Background.Radiance(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1))); got != (core.Vec3{}) {
		t.Errorf("Expected black background, got %v", got)
	}

	// Straight up from the middle of the box reaches the ceiling light
	ray := core.NewRay(core.NewVec3(278, 400, 279), core.NewVec3(0, 1, 0))
	hit, ok := s.World.Hit(ray, 0.001, 1e9, core.NewSeededSampler(1))
	if !ok {
		t.Fatal("Expected to hit the ceiling light")
	}
	if got := material.Emitted(hit.Material, hit.U, hit.V, hit.Point); got != core.NewVec3(15, 15, 15) {
		t.Errorf("Expected emission (15,15,15), got %v", got)
	}
	if hit.Point.Y != 554 {
		t.Errorf("Expected light at y=554, got %f", hit.Point.Y)
	}
}

func TestBuild_SampleLightCamera(t *testing.T) {
	s, err := Build("SampleLight", Options{Aperture: 0.1, Seed: 1})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if s.Camera.LookFrom != core.NewVec3(26, 3, 6) || s.Camera.LookAt != core.NewVec3(0, 2, 0) || s.Camera.Aperture != 0.01 {
		t.Errorf("Unexpected camera: %+v", s.Camera)
	}
	if got := s.Background.Radiance(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0))); got != (core.Vec3{}) {
		t.Errorf("Expected black background, got %v", got)
	}
}

func TestBuild_GlassMetalUsesSky(t *testing.T) {
	s, err := Build("GlassMetal", Options{Seed: 1})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if _, ok := s.Background.(core.SkyGradient); !ok {
		t.Errorf("Expected sky gradient background, got %T", s.Background)
	}
	if want := core.NewVec3(3, 3, 2).Subtract(core.NewVec3(0, 0, -1)).Length(); s.Camera.FocusDist != want {
		t.Errorf("Expected focus on the look-at point (%f), got %f", want, s.Camera.FocusDist)
	}
}

// earthTexture returns the image texture on the Earth globe
func earthTexture(t *testing.T, s *Scene) *material.ImageTexture {
	t.Helper()
	ray := core.NewRay(core.NewVec3(0, 0, 10), core.NewVec3(0, 0, -1))
	hit, ok := s.World.Hit(ray, 0.001, 1e9, core.NewSeededSampler(1))
	if !ok {
		t.Fatal("Expected to hit the globe")
	}
	lambertian, ok := hit.Material.(*material.Lambertian)
	if !ok {
		t.Fatalf("Expected lambertian globe, got %T", hit.Material)
	}
	texture, ok := lambertian.Albedo.(*material.ImageTexture)
	if !ok {
		t.Fatalf("Expected image texture, got %T", lambertian.Albedo)
	}
	return texture
}

func TestBuild_EarthMissingTexture(t *testing.T) {
	logger := &recordingLogger{}
	s, err := Build("Earth", Options{TextureDir: t.TempDir(), Logger: logger})
	if err != nil {
		t.Fatalf("Expected missing texture to be recoverable, got %v", err)
	}
	if tex := earthTexture(t, s); tex.Width != 0 {
		t.Errorf("Expected empty fallback texture, got %dx%d", tex.Width, tex.Height)
	}
	if len(logger.lines) != 1 || !strings.Contains(logger.lines[0], EarthTexture) {
		t.Errorf("Expected one log line naming the texture, got %v", logger.lines)
	}
}

func TestBuild_EarthLoadsTexture(t *testing.T) {
	dir := t.TempDir()
	img := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.NRGBA{R: 20, G: 80, B: 200, A: 255})
		}
	}
	if err := imaging.Save(img, filepath.Join(dir, EarthTexture)); err != nil {
		t.Fatalf("Failed to write texture: %v", err)
	}

	s, err := Build("Earth", Options{TextureDir: dir, TextureMaxSize: 4})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	tex := earthTexture(t, s)
	if tex.Width != 4 || tex.Height != 2 {
		t.Errorf("Expected texture downscaled to 4x2, got %dx%d", tex.Width, tex.Height)
	}
}
