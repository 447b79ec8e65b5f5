package scene

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

func spheres(t *testing.T, s *Scene) []*geometry.Sphere {
	t.Helper()
	var result []*geometry.Sphere
	for _, shape := range s.World.Shapes() {
		sphere, ok := shape.(*geometry.Sphere)
		if !ok {
			t.Fatalf("Expected *geometry.Sphere, got %T", shape)
		}
		result = append(result, sphere)
	}
	return result
}

func TestRandomSpheresScene_Deterministic(t *testing.T) {
	a := spheres(t, NewRandomSpheresScene(42))
	b := spheres(t, NewRandomSpheresScene(42))

	if len(a) != len(b) {
		t.Fatalf("Same seed produced %d and %d spheres", len(a), len(b))
	}
	for i := range a {
		if !a[i].Center.Equals(b[i].Center) || a[i].Radius != b[i].Radius {
			t.Errorf("Sphere %d differs: %v vs %v", i, a[i].Center, b[i].Center)
		}
	}

	c := spheres(t, NewRandomSpheresScene(43))
	same := len(a) == len(c)
	for i := 0; same && i < len(a); i++ {
		same = a[i].Center.Equals(c[i].Center)
	}
	if same {
		t.Error("Different seeds produced identical worlds")
	}
}

func TestRandomSpheresScene_Layout(t *testing.T) {
	s := NewRandomSpheresScene(7)
	all := spheres(t, s)

	// Ground + up to 22x22 small spheres + 3 large ones
	if len(all) < 4 || len(all) > 1+22*22+3 {
		t.Fatalf("Unexpected sphere count %d", len(all))
	}

	ground := all[0]
	if ground.Radius != 1000 || !ground.Center.Equals(core.NewVec3(0, -1000, 0)) {
		t.Errorf("Expected ground sphere first, got center %v radius %v", ground.Center, ground.Radius)
	}

	clearing := core.NewVec3(4, 0.2, 0)
	for _, sphere := range all[1 : len(all)-3] {
		if sphere.Radius != 0.2 || sphere.Center.Y != 0.2 {
			t.Errorf("Small sphere has center %v radius %v", sphere.Center, sphere.Radius)
		}
		if sphere.Center.Subtract(clearing).Length() <= 0.9 {
			t.Errorf("Small sphere at %v intrudes on the clearing", sphere.Center)
		}
	}

	large := all[len(all)-3:]
	if _, ok := large[0].Material.(*material.Dielectric); !ok {
		t.Errorf("Expected glass center sphere, got %T", large[0].Material)
	}
	if _, ok := large[1].Material.(*material.Lambertian); !ok {
		t.Errorf("Expected diffuse left sphere, got %T", large[1].Material)
	}
	if metal, ok := large[2].Material.(*material.Metal); !ok || metal.Fuzz != 0 {
		t.Errorf("Expected polished metal right sphere, got %T", large[2].Material)
	}

	if s.SamplingConfig.Seed != 7 {
		t.Errorf("Expected scene seed 7, got %d", s.SamplingConfig.Seed)
	}
	if s.SamplingConfig.Width != 640 || s.SamplingConfig.Height != 360 {
		t.Errorf("Expected 640x360, got %dx%d", s.SamplingConfig.Width, s.SamplingConfig.Height)
	}
	if s.CameraConfig.FocusDistance != core.NewVec3(8, 2, 9).Length() {
		t.Errorf("Expected focus on the look-at point, got %v", s.CameraConfig.FocusDistance)
	}
}

func TestDefaultScene(t *testing.T) {
	s := NewDefaultScene()
	all := spheres(t, s)

	if len(all) != 5 {
		t.Fatalf("Expected 5 spheres, got %d", len(all))
	}
	if all[3].Radius != -0.45 || all[3].Material != all[2].Material {
		t.Errorf("Expected hollow glass shell sharing the outer material, got radius %v", all[3].Radius)
	}
	if s.Camera.LensRadius() != 0 {
		t.Errorf("Expected pinhole camera, got lens radius %v", s.Camera.LensRadius())
	}
}

func TestCameraOverride(t *testing.T) {
	override := geometry.CameraConfig{VFov: 60}
	s := NewDefaultScene(override)

	if s.CameraConfig.VFov != 60 {
		t.Errorf("Expected overridden VFov 60, got %v", s.CameraConfig.VFov)
	}
	if !s.CameraConfig.LookAt.Equals(core.NewVec3(0, 0, -1)) {
		t.Errorf("Override should keep LookAt, got %v", s.CameraConfig.LookAt)
	}
}

func TestCreateScene(t *testing.T) {
	testCases := []struct {
		input   string
		name    string
		wantErr bool
	}{
		{"random-spheres", "Random Spheres", false},
		{"", "Random Spheres", false},
		{"default", "Default Scene", false},
		{"cornell", "", true},
		{"missing.json", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			s, err := CreateScene(tc.input, 3)
			if tc.wantErr {
				if err == nil {
					t.Errorf("CreateScene(%q) expected error", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateScene(%q) error: %v", tc.input, err)
			}
			if s.Name != tc.name {
				t.Errorf("Name = %q, want %q", s.Name, tc.name)
			}
		})
	}
}

func TestSceneRaytracer(t *testing.T) {
	s := NewDefaultScene()
	rt := s.NewRaytracer(renderer.SamplingConfig{Width: 8, Height: 4, SamplesPerPixel: 2}, nil)

	config := rt.Config()
	if config.Width != 8 || config.Height != 4 || config.SamplesPerPixel != 2 {
		t.Errorf("Override not applied: %+v", config)
	}
	if config.MaxDepth != s.SamplingConfig.MaxDepth {
		t.Errorf("Expected scene max depth %d, got %d", s.SamplingConfig.MaxDepth, config.MaxDepth)
	}

	buf, stats := rt.Render()
	if buf.Width != 8 || buf.Height != 4 {
		t.Errorf("Expected 8x4 buffer, got %dx%d", buf.Width, buf.Height)
	}
	if stats.TotalSamples != 8*4*2 {
		t.Errorf("Expected %d samples, got %d", 8*4*2, stats.TotalSamples)
	}
}
