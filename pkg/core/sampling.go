package core

import (
	"math"
	"math/rand/v2"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
	// GetGaussian returns a standard normal draw
	GetGaussian() float64
}

// RandomSampler wraps a PCG generator. It is not safe for concurrent use,
// so each worker owns its own instance.
type RandomSampler struct {
	source *rand.PCG
	random *rand.Rand
}

// NewRandomSampler creates a sampler seeded from (seed, stream)
func NewRandomSampler(seed, stream uint64) *RandomSampler {
	source := rand.NewPCG(seed, stream)
	return &RandomSampler{source: source, random: rand.New(source)}
}

// Reseed restarts the sequence as if freshly created with (seed, stream)
func (r *RandomSampler) Reseed(seed, stream uint64) {
	r.source.Seed(seed, stream)
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// GetGaussian returns a normally distributed float64 with mean 0 and stddev 1
func (r *RandomSampler) GetGaussian() float64 {
	return r.random.NormFloat64()
}

// RandomUnitVector returns a direction uniformly distributed on the unit sphere.
// Three independent normal draws are isotropic, so normalizing them is uniform.
func RandomUnitVector(sampler Sampler) Vec3 {
	v := NewVec3(sampler.GetGaussian(), sampler.GetGaussian(), sampler.GetGaussian())
	return v.Normalize()
}

// SampleUnitDisk returns a point uniformly distributed over the unit disk.
// The radius is sqrt(u) so that area, not radius, is uniform.
func SampleUnitDisk(sampler Sampler) Vec2 {
	d := NewVec2(sampler.GetGaussian(), sampler.GetGaussian())
	return d.Multiply(math.Sqrt(sampler.Get1D()) / d.Length())
}
