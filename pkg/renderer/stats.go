package renderer

import (
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	TotalSamples     int           // Total number of samples taken
	SamplesPerPixel  int           // Samples taken for every pixel
	NumWorkers       int           // Workers the pixels were partitioned across
	Duration         time.Duration // Wall time from spawn to join
	AverageLuminance float64       // Mean luminance of the gamma-corrected image
}

// PixelStats accumulates samples for a single pixel
type PixelStats struct {
	ColorAccum  core.Color // RGB accumulator
	SampleCount int        // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Color) {
	ps.ColorAccum.AddAssign(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Color {
	if ps.SampleCount == 0 {
		return core.Black
	}
	return ps.ColorAccum.Divide(float64(ps.SampleCount))
}

// CalculateAverageLuminance returns the mean luminance over all pixels
func CalculateAverageLuminance(buf *core.PixelBuffer) float64 {
	if len(buf.Pixels) == 0 {
		return 0
	}
	total := 0.0
	for _, p := range buf.Pixels {
		total += p.Luminance()
	}
	return total / float64(len(buf.Pixels))
}
