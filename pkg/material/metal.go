package material

import (
	"fmt"

	"github.com/mdillard/go-pathtracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo core.Vec3 // Metal color
	Fuzz   float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material. Fuzz must lie in [0, 1].
func NewMetal(albedo core.Vec3, fuzz float64) (*Metal, error) {
	if fuzz < 0 || fuzz > 1 {
		return nil, fmt.Errorf("metal fuzz must be in [0, 1], got %g", fuzz)
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}, nil
}

// Scatter implements the Material interface for metal scattering.
// The reflection is normalized and then perturbed by fuzz to model surface
// roughness. Metal always scatters, even when the fuzzed direction dips
// below the surface; that darkens grazing angles on rough metal.
func (m *Metal) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	reflected := core.Reflect(rayIn.Direction, hit.Normal)
	reflected = reflected.Normalize().Add(core.RandomUnitVector(sampler).Multiply(m.Fuzz))

	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, reflected),
		Attenuation: m.Albedo,
	}, true
}
