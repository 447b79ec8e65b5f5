package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// SceneFile is the JSON document accepted by LoadSceneFile. Materials are
// declared once by name and shared by every sphere that references them.
type SceneFile struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description,omitempty"`
	Group       string                  `json:"group,omitempty"`
	Camera      CameraJSON              `json:"camera"`
	Sampling    SamplingJSON            `json:"sampling"`
	Materials   map[string]MaterialJSON `json:"materials"`
	Spheres     []SphereJSON            `json:"spheres"`
}

// CameraJSON mirrors geometry.CameraConfig; absent fields keep the defaults
type CameraJSON struct {
	LookFrom      *[3]float64 `json:"lookFrom,omitempty"`
	LookAt        *[3]float64 `json:"lookAt,omitempty"`
	Up            *[3]float64 `json:"up,omitempty"`
	VFov          float64     `json:"vfov,omitempty"`
	AspectRatio   float64     `json:"aspectRatio,omitempty"`
	Aperture      float64     `json:"aperture,omitempty"`
	FocusDistance float64     `json:"focusDistance,omitempty"`
}

// SamplingJSON mirrors renderer.SamplingConfig
type SamplingJSON struct {
	Width           int    `json:"width,omitempty"`
	Height          int    `json:"height,omitempty"`
	SamplesPerPixel int    `json:"samplesPerPixel,omitempty"`
	MaxDepth        int    `json:"maxDepth,omitempty"`
	Seed            uint64 `json:"seed,omitempty"`
}

// MaterialJSON describes one of "lambertian", "metal" or "dielectric"
type MaterialJSON struct {
	Type            string     `json:"type"`
	Albedo          [3]float64 `json:"albedo"`
	Fuzz            float64    `json:"fuzz,omitempty"`
	RefractiveIndex float64    `json:"refractiveIndex,omitempty"`
}

// SphereJSON places a sphere using a named material
type SphereJSON struct {
	Center   [3]float64 `json:"center"`
	Radius   float64    `json:"radius"`
	Material string     `json:"material"`
}

// DefaultSceneFileCamera is the camera a scene file starts from
func DefaultSceneFileCamera() geometry.CameraConfig {
	return geometry.CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: 16.0 / 9.0,
	}
}

// LoadSceneFile reads and builds a JSON scene
func LoadSceneFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	var file SceneFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scene file %s: %w", path, err)
	}

	s, err := file.Build()
	if err != nil {
		return nil, fmt.Errorf("invalid scene file %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = titleCase(sceneIDFromPath(path))
	}
	return s, nil
}

// Build converts the document into a renderable scene
func (f *SceneFile) Build() (*Scene, error) {
	cameraConfig := DefaultSceneFileCamera()
	f.Camera.apply(&cameraConfig)

	sampling := renderer.MergeSamplingConfig(renderer.DefaultSamplingConfig(), renderer.SamplingConfig{
		Width:           f.Sampling.Width,
		Height:          f.Sampling.Height,
		SamplesPerPixel: f.Sampling.SamplesPerPixel,
		MaxDepth:        f.Sampling.MaxDepth,
		Seed:            f.Sampling.Seed,
	})
	// A width without a height follows the camera's aspect ratio
	if f.Sampling.Width != 0 && f.Sampling.Height == 0 {
		sampling.Height = max(1, int(float64(f.Sampling.Width)/cameraConfig.AspectRatio))
	}

	materials := make(map[string]material.Material, len(f.Materials))
	for name, def := range f.Materials {
		mat, err := def.build()
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = mat
	}

	s := newScene(f.Name, cameraConfig, sampling)
	for i, sphere := range f.Spheres {
		mat, ok := materials[sphere.Material]
		if !ok {
			return nil, fmt.Errorf("sphere %d: unknown material %q", i, sphere.Material)
		}
		if sphere.Radius == 0 {
			return nil, fmt.Errorf("sphere %d: radius must be non-zero", i)
		}
		s.AddSphere(geometry.NewSphere(toVec3(sphere.Center), sphere.Radius, mat))
	}
	return s, nil
}

// apply overwrites every field present in the document
func (c CameraJSON) apply(config *geometry.CameraConfig) {
	if c.LookFrom != nil {
		config.LookFrom = toVec3(*c.LookFrom)
	}
	if c.LookAt != nil {
		config.LookAt = toVec3(*c.LookAt)
	}
	if c.Up != nil {
		config.Up = toVec3(*c.Up)
	}
	if c.VFov != 0 {
		config.VFov = c.VFov
	}
	if c.AspectRatio != 0 {
		config.AspectRatio = c.AspectRatio
	}
	if c.Aperture != 0 {
		config.Aperture = c.Aperture
	}
	if c.FocusDistance != 0 {
		config.FocusDistance = c.FocusDistance
	}
}

func (m MaterialJSON) build() (material.Material, error) {
	switch strings.ToLower(m.Type) {
	case "lambertian", "diffuse":
		return material.NewLambertian(toVec3(m.Albedo)), nil
	case "metal":
		return material.NewMetal(toVec3(m.Albedo), m.Fuzz), nil
	case "dielectric", "glass":
		if m.RefractiveIndex <= 0 {
			return nil, fmt.Errorf("dielectric needs a positive refractiveIndex, got %g", m.RefractiveIndex)
		}
		return material.NewDielectric(m.RefractiveIndex), nil
	default:
		return nil, fmt.Errorf("unknown material type %q", m.Type)
	}
}

func toVec3(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
