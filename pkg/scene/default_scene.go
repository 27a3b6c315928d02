package scene

import (
	"github.com/mdillard/go-pathtracer/pkg/core"
	"github.com/mdillard/go-pathtracer/pkg/geometry"
	"github.com/mdillard/go-pathtracer/pkg/material"
	"github.com/mdillard/go-pathtracer/pkg/renderer"
)

// NewDefaultScene builds a small showcase scene: a large diffuse ground
// sphere with one sphere of each material resting on it. The config's
// framing fields are used as given.
func NewDefaultScene(config renderer.CameraConfig) (*Scene, error) {
	world := NewWorld()

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	left, err := material.NewDielectric(1.5)
	if err != nil {
		return nil, err
	}
	right, err := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	if err != nil {
		return nil, err
	}

	spheres := []struct {
		center   core.Vec3
		radius   float64
		material core.Material
	}{
		{core.NewVec3(0, -100.5, -1), 100, ground},
		{core.NewVec3(0, 0, -1.2), 0.5, center},
		{core.NewVec3(-1, 0, -1), 0.5, left},
		{core.NewVec3(1, 0, -1), 0.5, right},
	}

	for _, s := range spheres {
		sphere, err := geometry.NewSphere(s.center, s.radius, s.material)
		if err != nil {
			return nil, err
		}
		world.Add(sphere)
	}

	camera, err := renderer.NewCamera(config)
	if err != nil {
		return nil, err
	}

	return NewScene(world, camera), nil
}
