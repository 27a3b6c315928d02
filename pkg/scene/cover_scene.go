package scene

import (
	"math/rand"

	"github.com/mdillard/go-pathtracer/pkg/core"
	"github.com/mdillard/go-pathtracer/pkg/geometry"
	"github.com/mdillard/go-pathtracer/pkg/material"
	"github.com/mdillard/go-pathtracer/pkg/renderer"
)

// NewCoverScene builds the classic orb-field scene: a gray ground sphere
// under a grid of randomly placed spheres mixing diffuse, metal and glass
// materials. Scene construction is seeded so the same seed reproduces the
// same layout. The config's Width, AspectRatio, SamplesPerPixel and
// MaxDepth are honored; the framing is scene-specific and overridden.
func NewCoverScene(config renderer.CameraConfig, seed int64) (*Scene, error) {
	random := rand.New(rand.NewSource(seed))
	world := NewWorld()

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	groundSphere, err := geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground)
	if err != nil {
		return nil, err
	}
	world.Add(groundSphere)

	for a := -8; a < 8; a++ {
		for b := -8; b < 8; b++ {
			radius := 0.05 + 0.45*random.Float64()
			chooseMat := random.Float64()
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				radius,
				float64(b)+0.9*random.Float64(),
			)

			var sphereMaterial core.Material
			switch {
			case chooseMat < 0.5:
				albedo := randomColor(random).MultiplyVec(randomColor(random))
				sphereMaterial = material.NewLambertian(albedo)
			case chooseMat < 0.8:
				albedo := randomColorIn(random, 0.5, 1)
				fuzz := 0.5 * random.Float64()
				sphereMaterial, err = material.NewMetal(albedo, fuzz)
				if err != nil {
					return nil, err
				}
			default:
				sphereMaterial, err = material.NewDielectric(1.5)
				if err != nil {
					return nil, err
				}
			}

			sphere, err := geometry.NewSphere(center, radius, sphereMaterial)
			if err != nil {
				return nil, err
			}
			world.Add(sphere)
		}
	}

	config.VFov = 20
	config.LookFrom = core.NewVec3(13, 2, 3)
	config.LookAt = core.NewVec3(0, 0, 0)
	config.VUp = core.NewVec3(0, 1, 0)
	config.DefocusAngle = 0.6
	config.FocusDistance = 10.0

	camera, err := renderer.NewCamera(config)
	if err != nil {
		return nil, err
	}

	return NewScene(world, camera), nil
}

func randomColor(random *rand.Rand) core.Vec3 {
	return core.NewVec3(random.Float64(), random.Float64(), random.Float64())
}

func randomColorIn(random *rand.Rand, lo, hi float64) core.Vec3 {
	span := hi - lo
	return core.NewVec3(
		lo+span*random.Float64(),
		lo+span*random.Float64(),
		lo+span*random.Float64(),
	)
}
