package scene

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

const threeSpheres = `{
	"name": "Three Spheres",
	"camera": {"lookFrom": [0, 1, 3], "lookAt": [0, 0, 0], "vfov": 30, "aperture": 0.1},
	"sampling": {"width": 160, "samplesPerPixel": 4, "maxDepth": 5, "seed": 9},
	"materials": {
		"ground": {"type": "lambertian", "albedo": [0.5, 0.5, 0.5]},
		"steel":  {"type": "metal", "albedo": [0.8, 0.8, 0.8], "fuzz": 3},
		"glass":  {"type": "dielectric", "refractiveIndex": 1.5}
	},
	"spheres": [
		{"center": [0, -100.5, 0], "radius": 100, "material": "ground"},
		{"center": [-1, 0, 0], "radius": 0.5, "material": "steel"},
		{"center": [1, 0, 0], "radius": 0.5, "material": "glass"},
		{"center": [1, 0, 0], "radius": -0.4, "material": "glass"}
	]
}`

func TestLoadSceneFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "three.json", threeSpheres)

	s, err := LoadSceneFile(path)
	if err != nil {
		t.Fatalf("LoadSceneFile() error: %v", err)
	}

	if s.Name != "Three Spheres" {
		t.Errorf("Name = %q", s.Name)
	}
	if s.World.Len() != 4 {
		t.Fatalf("Expected 4 spheres, got %d", s.World.Len())
	}

	all := spheres(t, s)
	if all[2].Material != all[3].Material {
		t.Error("Spheres naming the same material should share it")
	}
	if metal, ok := all[1].Material.(*material.Metal); !ok || metal.Fuzz != 1 {
		t.Errorf("Expected metal with clamped fuzz 1, got %+v", all[1].Material)
	}

	if !s.CameraConfig.LookFrom.Equals(core.NewVec3(0, 1, 3)) || s.CameraConfig.VFov != 30 {
		t.Errorf("Camera not applied: %+v", s.CameraConfig)
	}
	if !s.CameraConfig.Up.Equals(core.NewVec3(0, 1, 0)) {
		t.Errorf("Expected default up vector, got %v", s.CameraConfig.Up)
	}

	// Height follows the 16:9 default aspect ratio
	if s.SamplingConfig.Width != 160 || s.SamplingConfig.Height != 90 {
		t.Errorf("Expected 160x90, got %dx%d", s.SamplingConfig.Width, s.SamplingConfig.Height)
	}
	if s.SamplingConfig.SamplesPerPixel != 4 || s.SamplingConfig.MaxDepth != 5 || s.SamplingConfig.Seed != 9 {
		t.Errorf("Sampling not applied: %+v", s.SamplingConfig)
	}
}

func TestLoadSceneFile_NameFromFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "lone_sphere.json", `{
		"materials": {"m": {"type": "diffuse", "albedo": [1, 0, 0]}},
		"spheres": [{"center": [0, 0, -1], "radius": 0.5, "material": "m"}]
	}`)

	s, err := LoadSceneFile(path)
	if err != nil {
		t.Fatalf("LoadSceneFile() error: %v", err)
	}
	if s.Name != "Lone Sphere" {
		t.Errorf("Name = %q, want Lone Sphere", s.Name)
	}
	if s.SamplingConfig.Width != 640 || s.SamplingConfig.Height != 360 {
		t.Errorf("Expected default resolution, got %dx%d", s.SamplingConfig.Width, s.SamplingConfig.Height)
	}
}

func TestLoadSceneFile_Errors(t *testing.T) {
	dir := t.TempDir()

	testCases := []struct {
		name    string
		content string
		errText string
	}{
		{"malformed", `{"spheres": [`, "failed to parse"},
		{"unknown_material", `{"spheres": [{"center": [0,0,0], "radius": 1, "material": "gold"}]}`, `unknown material "gold"`},
		{"unknown_type", `{"materials": {"m": {"type": "plastic"}}}`, `unknown material type "plastic"`},
		{"bad_glass", `{"materials": {"m": {"type": "glass"}}}`, "refractiveIndex"},
		{"zero_radius", `{"materials": {"m": {"type": "metal"}}, "spheres": [{"center": [0,0,0], "radius": 0, "material": "m"}]}`, "radius"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, dir, tc.name+".json", tc.content)
			_, err := LoadSceneFile(path)
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tc.errText) {
				t.Errorf("Error %q does not mention %q", err, tc.errText)
			}
		})
	}

	if _, err := LoadSceneFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestCreateScene_File(t *testing.T) {
	path := writeFile(t, t.TempDir(), "three.JSON", threeSpheres)

	s, err := CreateScene(path, 0)
	if err != nil {
		t.Fatalf("CreateScene() error: %v", err)
	}
	if s.World.Len() != 4 {
		t.Errorf("Expected 4 spheres, got %d", s.World.Len())
	}
}

func TestBundledSceneFiles(t *testing.T) {
	infos, err := ListSceneFiles(filepath.Join("..", "..", "scenes"))
	if err != nil {
		t.Fatalf("ListSceneFiles() error: %v", err)
	}
	if len(infos) == 0 {
		t.Fatal("Expected bundled scene files")
	}

	for _, info := range infos {
		t.Run(info.Name, func(t *testing.T) {
			s, err := CreateScene(info.ID, 0)
			if err != nil {
				t.Fatalf("CreateScene(%q) error: %v", info.ID, err)
			}
			if s.World.Len() == 0 {
				t.Error("Expected a non-empty world")
			}
		})
	}
}
