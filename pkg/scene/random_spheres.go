package scene

import (
	"math/rand/v2"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewRandomSpheresScene creates the classic cover scene: a 22x22 grid of small
// randomized spheres around three large ones. The same seed always yields the
// same world.
func NewRandomSpheresScene(seed uint64, cameraOverrides ...geometry.CameraConfig) *Scene {
	lookFrom := core.NewVec3(8, 2, 8)
	lookAt := core.NewVec3(0, 0, -1)

	cameraConfig := geometry.CameraConfig{
		LookFrom:      lookFrom,
		LookAt:        lookAt,
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0.25,
		FocusDistance: lookFrom.Subtract(lookAt).Length(),
	}

	samplingConfig := renderer.DefaultSamplingConfig()
	samplingConfig.Seed = seed

	s := newScene("Random Spheres", cameraConfig, samplingConfig, cameraOverrides...)

	groundMaterial := material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))
	s.AddSphere(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, groundMaterial))

	random := rand.New(rand.NewPCG(seed, 0))
	randomColor := func() core.Color {
		return core.NewColor(random.Float64(), random.Float64(), random.Float64())
	}

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())

			// Keep the area around the large metal sphere clear
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			var sphereMaterial material.Material
			switch {
			case chooseMat < 0.8:
				albedo := randomColor().MultiplyVec(randomColor())
				sphereMaterial = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				albedo := randomColor().Multiply(0.5).AddScalar(0.5)
				fuzz := 0.5 + 0.5*random.Float64()
				sphereMaterial = material.NewMetal(albedo, fuzz)
			default:
				sphereMaterial = material.NewDielectric(1.5)
			}
			s.AddSphere(geometry.NewSphere(center, 0.2, sphereMaterial))
		}
	}

	s.AddSphere(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	s.AddSphere(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewColor(0.4, 0.2, 0.1))))
	s.AddSphere(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewColor(0.7, 0.6, 0.5), 0.0)))

	return s
}
