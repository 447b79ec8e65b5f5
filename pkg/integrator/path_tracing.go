package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// ShadowAcneEpsilon keeps scattered rays from re-hitting the surface they left
const ShadowAcneEpsilon = 0.001

var (
	// HorizonColor is the background at the bottom of the sky gradient
	HorizonColor = core.White
	// SkyColor is the background at the top of the sky gradient
	SkyColor = core.NewColor(0.5, 0.7, 1.0)
)

// PathTracingIntegrator implements unidirectional path tracing with a fixed bounce limit
type PathTracingIntegrator struct {
	maxDepth int
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{maxDepth: maxDepth}
}

// MaxDepth returns the bounce limit
func (pt *PathTracingIntegrator) MaxDepth() int {
	return pt.maxDepth
}

// RayColor computes the color for a single ray. Bounces are evaluated in a loop
// carrying the product of attenuations, so the stack stays flat for any depth.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Color {
	throughput := core.White

	for depth := pt.maxDepth; depth > 0; depth-- {
		hit, isHit := world.Hit(ray, ShadowAcneEpsilon, math.Inf(1))
		if !isHit {
			return throughput.MultiplyVec(BackgroundGradient(ray))
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			// Material absorbed the ray
			return core.Black
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	// Exceeded the bounce limit, no more light is gathered
	return core.Black
}

// BackgroundGradient blends from HorizonColor to SkyColor by the ray's vertical direction
func BackgroundGradient(ray core.Ray) core.Color {
	unitDirection := ray.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return HorizonColor.Multiply(1.0 - t).Add(SkyColor.Multiply(t))
}
