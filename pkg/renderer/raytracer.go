package renderer

import (
	"image/color"
	"math"

	"github.com/mdillard/go-pathtracer/pkg/core"
)

// Scene provides the read-only state a raytracer needs. Defined here as an
// interface to avoid a dependency on the scene package.
type Scene interface {
	GetCamera() *Camera
	GetBackgroundColors() (top, bottom core.Vec3)
	GetWorld() core.Hittable
}

// Raytracer evaluates pixel colors for a scene
type Raytracer struct {
	scene  Scene
	camera *Camera
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene) *Raytracer {
	return &Raytracer{
		scene:  scene,
		camera: scene.GetCamera(),
	}
}

// RayColor computes the color carried back along a ray, following at most
// depth bounces. The recursion is unrolled into a loop that multiplies
// per-bounce attenuations into a running throughput; paths that exhaust the
// depth budget contribute black. The interval's 0.001 lower bound keeps
// scattered rays from re-hitting their own origin surface.
func (rt *Raytracer) RayColor(ray core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)

	for bounce := 0; bounce < depth; bounce++ {
		hit, isHit := rt.scene.GetWorld().Hit(ray, core.NewInterval(0.001, math.Inf(1)))
		if !isHit {
			return throughput.MultiplyVec(rt.backgroundGradient(ray))
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			return core.Vec3{} // Material absorbed the ray
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	return core.Vec3{} // Bounce limit reached, no more light is gathered
}

// backgroundGradient returns the sky color for a ray that escapes the
// scene: a vertical lerp from the horizon color up to the zenith color
func (rt *Raytracer) backgroundGradient(r core.Ray) core.Vec3 {
	top, bottom := rt.scene.GetBackgroundColors()

	unitDirection := r.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)

	return bottom.Multiply(1.0 - t).Add(top.Multiply(t))
}

// RenderPixel computes the final 8-bit color of pixel (i, j): the mean of
// the camera's per-pixel samples, gamma corrected and clamped
func (rt *Raytracer) RenderPixel(i, j int, sampler core.Sampler) color.RGBA {
	accum := core.Vec3{}
	samples := rt.camera.SamplesPerPixel()

	for s := 0; s < samples; s++ {
		ray := rt.camera.GetRay(i, j, sampler)
		accum = accum.Add(rt.RayColor(ray, rt.camera.MaxDepth(), sampler))
	}

	return vec3ToRGBA(accum.Multiply(1.0 / float64(samples)))
}

// intensity clamps gamma-corrected channels just below 1 so the 8-bit
// mapping never overflows to 256
var intensity = core.NewInterval(0.000, 0.999)

// linearToGamma applies the gamma-2 transfer curve. Non-positive (and NaN)
// inputs map to zero.
func linearToGamma(linearComponent float64) float64 {
	if linearComponent > 0 {
		return math.Sqrt(linearComponent)
	}
	return 0
}

// vec3ToRGBA converts a linear color to 8-bit RGBA with gamma correction
// and clamping
func vec3ToRGBA(colorVec core.Vec3) color.RGBA {
	r := linearToGamma(colorVec.X)
	g := linearToGamma(colorVec.Y)
	b := linearToGamma(colorVec.Z)

	return color.RGBA{
		R: uint8(256 * intensity.Clamp(r)),
		G: uint8(256 * intensity.Clamp(g)),
		B: uint8(256 * intensity.Clamp(b)),
		A: 255,
	}
}
