package scene

import (
	"errors"
	"fmt"

	"github.com/hhhizzz/ray-tracing-one-week/pkg/core"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/geometry"
)

// ErrUnknownScene is returned by Build for names missing from the registry
var ErrUnknownScene = errors.New("unknown scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Name       string
	World      geometry.Hittable     // Root of the intersection hierarchy
	Camera     geometry.CameraConfig // Camera the scene is meant to be viewed through
	Background core.Background       // Radiance of rays that escape the world
}

// Options carries the render settings scene builders depend on
type Options struct {
	Aperture       float64     // Lens diameter for scenes using the default camera
	TextureDir     string      // Directory holding image textures
	TextureMaxSize int         // Downscale image textures to fit this size (0 = off)
	Seed           int64       // Seed for procedural generation (0 = nondeterministic)
	Logger         core.Logger // Receives texture load failures; may be nil
}

// Info describes a registered scene
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type builder func(opts Options, sampler core.Sampler) (*Scene, error)

type entry struct {
	info  Info
	build builder
}

// registry keeps the builders in presentation order
var registry = []entry{
	{Info{"Random", "Random spheres on a gray ground"}, randomScene(false, false)},
	{Info{"WithTime", "Random spheres with motion blur on the bouncing diffuse spheres"}, randomScene(true, false)},
	{Info{"CheckerTexture", "Moving random spheres on a checkered ground"}, randomScene(true, true)},
	{Info{"TwoSpheres", "Two large checkered spheres"}, twoSpheres},
	{Info{"TwoPerlinSpheres", "Perlin marble ground and sphere"}, twoPerlinSpheres},
	{Info{"Earth", "Image textured globe"}, earth},
	{Info{"SampleLight", "Marble spheres lit by an emissive sphere and rectangle"}, sampleLight},
	{Info{"CornellBox", "Cornell box with two rotated boxes"}, cornellBox},
	{Info{"CornellSmoke", "Cornell box with smoke and fog blocks"}, cornellSmoke},
	{Info{"GlassMetal", "Diffuse, hollow glass and metal spheres under a sky"}, glassMetal},
}

// Names returns the registered scene names in presentation order
func Names() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.info.Name
	}
	return names
}

// List returns every registered scene with its description
func List() []Info {
	infos := make([]Info, len(registry))
	for i, e := range registry {
		infos[i] = e.info
	}
	return infos
}

// Build constructs the named scene
func Build(name string, opts Options) (*Scene, error) {
	for _, e := range registry {
		if e.info.Name != name {
			continue
		}
		s, err := e.build(opts, newSampler(opts.Seed))
		if err != nil {
			return nil, fmt.Errorf("failed to build scene %s: %w", name, err)
		}
		s.Name = name
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}

func newSampler(seed int64) core.Sampler {
	if seed != 0 {
		return core.NewSeededSampler(seed)
	}
	return core.NewEntropySampler()
}

// defaultCamera is the view shared by most scenes: looking at the origin from (13,2,3)
func defaultCamera(opts Options) geometry.CameraConfig {
	return geometry.CameraConfig{
		LookFrom:    core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		VUp:         core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: 16.0 / 9.0,
		Aperture:    opts.Aperture,
		FocusDist:   10,
		Background:  core.NewVec3(0.70, 0.80, 1.00),
		Time0:       0,
		Time1:       1,
	}
}

// withCamera pairs a world with a camera and a solid background of the camera's color
func withCamera(world geometry.Hittable, camera geometry.CameraConfig) *Scene {
	return &Scene{
		World:      world,
		Camera:     camera,
		Background: core.NewSolidBackground(camera.Background),
	}
}
