package renderer

import (
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int    // Image width
	Height          int    // Image height
	SamplesPerPixel int    // Number of rays per pixel
	MaxDepth        int    // Maximum ray bounce depth
	NumWorkers      int    // Number of parallel workers (0 = use CPU count)
	Seed            uint64 // Render seed; each pixel's stream is keyed by (Seed, pixel index)
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           640,
		Height:          360,
		SamplesPerPixel: 16,
		MaxDepth:        8,
		NumWorkers:      0,
		Seed:            0,
	}
}

// MergeSamplingConfig returns base with every non-zero field of override applied
func MergeSamplingConfig(base, override SamplingConfig) SamplingConfig {
	result := base
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.NumWorkers != 0 {
		result.NumWorkers = override.NumWorkers
	}
	if override.Seed != 0 {
		result.Seed = override.Seed
	}
	return result
}

// Camera generates a ray for viewport coordinates (s, t), (0,0) being bottom-left
type Camera interface {
	GetRay(s, t float64, sampler core.Sampler) core.Ray
}

// Raytracer renders one camera view of one world. Camera and world are only read.
type Raytracer struct {
	camera     Camera
	world      geometry.Shape
	config     SamplingConfig
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a new raytracer using the path tracing integrator
func NewRaytracer(camera Camera, world geometry.Shape, config SamplingConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		camera:     camera,
		world:      world,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(config.MaxDepth),
		logger:     logger,
	}
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// Config returns the sampling configuration
func (rt *Raytracer) Config() SamplingConfig {
	return rt.config
}

// Render traces every pixel and returns the gamma-corrected buffer
func (rt *Raytracer) Render() (*core.PixelBuffer, RenderStats) {
	width, height := rt.config.Width, rt.config.Height
	buf := core.NewPixelBuffer(width, height)
	pool := NewWorkerPool(width*height, rt.config.NumWorkers)

	rt.logger.Printf("Rendering %dx%d at %d samples per pixel, max depth %d (using %d workers)...\n",
		width, height, rt.config.SamplesPerPixel, rt.config.MaxDepth, pool.GetNumWorkers())

	startTime := time.Now()

	// Workers write only the indices they own, so the buffer needs no locking
	pool.Run(func(w *Worker, pixelIndex int) {
		x := pixelIndex % width
		y := pixelIndex / width
		w.Sampler.Reseed(rt.config.Seed, uint64(pixelIndex))
		buf.Pixels[pixelIndex] = rt.renderPixel(x, y, w.Sampler)
		w.Samples += rt.config.SamplesPerPixel
	})

	stats := RenderStats{
		TotalPixels:     width * height,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		NumWorkers:      pool.GetNumWorkers(),
		Duration:        time.Since(startTime),
	}
	for _, w := range pool.Workers() {
		stats.TotalSamples += w.Samples
	}
	stats.AverageLuminance = CalculateAverageLuminance(buf)

	rt.logger.Printf("Render completed in %v (%d samples)\n", stats.Duration, stats.TotalSamples)

	return buf, stats
}

// renderPixel averages SamplesPerPixel jittered estimates and gamma-corrects the mean
func (rt *Raytracer) renderPixel(x, y int, sampler core.Sampler) core.Color {
	var ps PixelStats
	width := float64(rt.config.Width)
	height := float64(rt.config.Height)

	// Image rows run top-down, viewport t runs bottom-up
	row := float64(rt.config.Height - 1 - y)

	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		s := (float64(x) + sampler.Get1D()) / width
		t := (row + sampler.Get1D()) / height

		ray := rt.camera.GetRay(s, t, sampler)
		ps.AddSample(rt.integrator.RayColor(ray, rt.world, sampler))
	}

	return ps.GetColor().Sqrt()
}

// Render is the render entry point: it traces the world through camera into a
// width x height buffer using threadCount workers (<= 0 means CPU count).
func Render(camera Camera, world geometry.Shape, width, height, samplesPerPixel, maxDepth, threadCount int) *core.PixelBuffer {
	rt := NewRaytracer(camera, world, SamplingConfig{
		Width:           width,
		Height:          height,
		SamplesPerPixel: samplesPerPixel,
		MaxDepth:        maxDepth,
		NumWorkers:      threadCount,
	}, nil)
	buf, _ := rt.Render()
	return buf
}
