package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewDefaultScene creates a small scene: a diffuse sphere between a hollow
// glass sphere and a gold mirror, on a large green ground sphere
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.CameraConfig{
		LookFrom:    core.NewVec3(-2, 2, 1),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: 16.0 / 9.0,
		Aperture:    0.0, // Pinhole, everything in focus
	}

	s := newScene("Default Scene", cameraConfig, renderer.DefaultSamplingConfig(), cameraOverrides...)

	materialGround := material.NewLambertian(core.NewColor(0.4, 0.8, 0.2))
	materialCenter := material.NewLambertian(core.NewColor(0.1, 0.2, 0.5))
	materialLeft := material.NewDielectric(1.5)
	materialRight := material.NewMetal(core.NewColor(0.8, 0.6, 0.2), 0.0)

	s.AddSphere(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, materialGround))
	s.AddSphere(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, materialCenter))

	// Negative radius flips the normals inward, making the glass a thin shell
	s.AddSphere(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, materialLeft))
	s.AddSphere(geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, materialLeft))

	s.AddSphere(geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, materialRight))

	return s
}
