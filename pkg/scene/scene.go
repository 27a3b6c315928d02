package scene

import (
	"github.com/mdillard/go-pathtracer/pkg/core"
	"github.com/mdillard/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering: the world of
// primitives, the camera, and the background sky colors. Immutable once
// rendering starts.
type Scene struct {
	World            *World
	Camera           *renderer.Camera
	TopBackground    core.Vec3 // Sky color at the zenith
	BottomBackground core.Vec3 // Sky color at the horizon
}

// NewScene creates a scene with the default white-to-sky-blue background
func NewScene(world *World, camera *renderer.Camera) *Scene {
	return &Scene{
		World:            world,
		Camera:           camera,
		TopBackground:    core.NewVec3(0.5, 0.7, 1.0),
		BottomBackground: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// GetCamera implements renderer.Scene
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetBackgroundColors implements renderer.Scene
func (s *Scene) GetBackgroundColors() (top, bottom core.Vec3) {
	return s.TopBackground, s.BottomBackground
}

// GetWorld implements renderer.Scene
func (s *Scene) GetWorld() core.Hittable {
	return s.World
}
