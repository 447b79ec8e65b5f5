package material

import "github.com/df07/go-pathtracer/pkg/core"

// scriptedSampler replays fixed draws so scatter decisions can be forced
type scriptedSampler struct {
	uniforms  []float64
	gaussians []float64
	u, g      int
}

func (s *scriptedSampler) Get1D() float64 {
	v := s.uniforms[s.u%len(s.uniforms)]
	s.u++
	return v
}

func (s *scriptedSampler) Get2D() core.Vec2 {
	return core.NewVec2(s.Get1D(), s.Get1D())
}

func (s *scriptedSampler) Get3D() core.Vec3 {
	return core.NewVec3(s.Get1D(), s.Get1D(), s.Get1D())
}

func (s *scriptedSampler) GetGaussian() float64 {
	v := s.gaussians[s.g%len(s.gaussians)]
	s.g++
	return v
}
