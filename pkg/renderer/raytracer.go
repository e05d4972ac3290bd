package renderer

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/hhhizzz/ray-tracing-one-week/pkg/core"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/geometry"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/integrator"
)

// ErrInvalidConfig is returned for render settings that cannot produce an image
var ErrInvalidConfig = errors.New("invalid render config")

// progressSteps is how many progress lines a full render logs
const progressSteps = 20

// RenderConfig contains rendering configuration
type RenderConfig struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Workers         int   // Parallel workers (0 = use CPU count)
	Seed            int64 // Base seed for per-row samplers (0 = nondeterministic)
}

// DefaultRenderConfig returns the default settings for a 16:9 image
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:           1600,
		Height:          900,
		SamplesPerPixel: 500,
		MaxDepth:        integrator.DefaultMaxDepth,
	}
}

// Validate reports settings that cannot produce an image
func (c RenderConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: %d samples per pixel", ErrInvalidConfig, c.SamplesPerPixel)
	}
	return nil
}

// Raytracer renders a scene into a Framebuffer using a pool of scanline workers
type Raytracer struct {
	world      geometry.Hittable
	camera     *geometry.Camera
	background core.Background
	integrator integrator.Integrator
	config     RenderConfig
	logger     core.Logger

	rowsCompleted atomic.Int64
}

// NewRaytracer creates a new raytracer; the logger may be shared with other goroutines
func NewRaytracer(world geometry.Hittable, camera *geometry.Camera, background core.Background, config RenderConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Raytracer{
		world:      world,
		camera:     camera,
		background: background,
		integrator: integrator.NewPathTracingIntegrator(config.MaxDepth),
		config:     config,
		logger:     NewSyncLogger(logger),
	}
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(in integrator.Integrator) {
	rt.integrator = in
}

// RowsCompleted returns the number of scanlines finished so far; safe to call during Render
func (rt *Raytracer) RowsCompleted() int {
	return int(rt.rowsCompleted.Load())
}

// Render traces every pixel and blocks until all scanlines are done.
// Cancelling ctx stops the remaining rows; the partial buffer is returned with ctx's error.
func (rt *Raytracer) Render(ctx context.Context) (*Framebuffer, RenderStats, error) {
	if err := rt.config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}

	start := time.Now()
	height := rt.config.Height
	fb := NewFramebuffer(rt.config.Width, height, rt.config.SamplesPerPixel)
	rt.rowsCompleted.Store(0)

	pool := NewWorkerPool(rt, fb, rt.config.Workers)
	rt.logger.Printf("Rendering %dx%d at %d samples per pixel (using %d workers)...\n",
		rt.config.Width, height, rt.config.SamplesPerPixel, pool.GetNumWorkers())

	pool.Start(ctx)
	// Top scanline first, matching the order rows are written out
	for j := height - 1; j >= 0; j-- {
		pool.SubmitTask(RowTask{Row: j})
	}
	pool.Stop()

	var renderErr error
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil && renderErr == nil {
			renderErr = result.Error
		}
	}

	stats := RenderStats{
		Width:           rt.config.Width,
		Height:          height,
		TotalPixels:     rt.config.Width * height,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		RowsCompleted:   rt.RowsCompleted(),
		Workers:         pool.GetNumWorkers(),
		Duration:        time.Since(start),
	}
	stats.TotalSamples = stats.RowsCompleted * rt.config.Width * rt.config.SamplesPerPixel

	if renderErr != nil {
		rt.logger.Printf("Render stopped after %d of %d rows: %v\n", stats.RowsCompleted, height, renderErr)
		return fb, stats, renderErr
	}
	rt.logger.Printf("Done: %v\n", stats)
	return fb, stats, nil
}

// RowSampler returns the sampler owned by scanline j.
// With a seed every row is reproducible regardless of which worker renders it.
func (rt *Raytracer) RowSampler(j int) core.Sampler {
	if rt.config.Seed != 0 {
		return core.NewSeededSampler(rt.config.Seed + int64(j))
	}
	return core.NewEntropySampler()
}

// RenderRow accumulates all samples of scanline j (0 = bottom) into fb
func (rt *Raytracer) RenderRow(j int, fb *Framebuffer, sampler core.Sampler) {
	width, height := fb.Width, fb.Height
	row := fb.Row(height - 1 - j)

	// Single-pixel axes would divide by zero
	uScale := float64(max(width-1, 1))
	vScale := float64(max(height-1, 1))

	for i := 0; i < width; i++ {
		var colorAccum core.Vec3
		for sample := 0; sample < fb.Samples; sample++ {
			jitter := sampler.Get2D()
			u := (float64(i) + jitter.X) / uScale
			v := (float64(j) + jitter.Y) / vScale

			ray := rt.camera.GetRay(u, v, sampler)
			colorAccum = colorAccum.Add(rt.integrator.Radiance(ray, rt.background, rt.world, sampler))
		}
		row[i] = colorAccum
	}

	done := rt.rowsCompleted.Add(1)
	if step := max(height/progressSteps, 1); int(done)%step == 0 || int(done) == height {
		rt.logger.Printf("Scanlines remaining: %d\n", height-int(done))
	}
}
