package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Built-in scene identifiers accepted by CreateScene
const (
	RandomSpheresSceneID = "random-spheres"
	DefaultSceneID       = "default"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	CameraConfig   geometry.CameraConfig
	Camera         *geometry.Camera
	World          *geometry.ShapeList // Objects in the scene, in insertion order
	SamplingConfig renderer.SamplingConfig
}

// newScene builds the camera from cameraConfig, applying any override
func newScene(name string, cameraConfig geometry.CameraConfig, sampling renderer.SamplingConfig, cameraOverrides ...geometry.CameraConfig) *Scene {
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}
	return &Scene{
		Name:           name,
		CameraConfig:   cameraConfig,
		Camera:         geometry.NewCamera(cameraConfig),
		World:          geometry.NewShapeList(),
		SamplingConfig: sampling,
	}
}

// AddSphere adds a sphere to the world
func (s *Scene) AddSphere(sphere *geometry.Sphere) {
	s.World.Add(sphere)
}

// GetPrimitiveCount returns the number of shapes in the world
func (s *Scene) GetPrimitiveCount() int {
	return s.World.Len()
}

// NewRaytracer wires the scene into a renderer. sampling overrides the scene's
// own sampling config field by field.
func (s *Scene) NewRaytracer(sampling renderer.SamplingConfig, logger core.Logger) *renderer.Raytracer {
	config := renderer.MergeSamplingConfig(s.SamplingConfig, sampling)
	return renderer.NewRaytracer(s.Camera, s.World, config, logger)
}

// CreateScene resolves a built-in scene ID or a path to a JSON scene file.
// seed only affects procedurally generated scenes.
func CreateScene(nameOrPath string, seed uint64) (*Scene, error) {
	switch nameOrPath {
	case RandomSpheresSceneID, "":
		return NewRandomSpheresScene(seed), nil
	case DefaultSceneID:
		return NewDefaultScene(), nil
	}

	if strings.EqualFold(filepath.Ext(nameOrPath), ".json") {
		return LoadSceneFile(nameOrPath)
	}
	return nil, fmt.Errorf("unknown scene %q", nameOrPath)
}
