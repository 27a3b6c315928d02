package core

import "math/rand"

// Sampler provides random sampling for rendering algorithms.
// Can be swapped out for deterministic testing or different sampling patterns.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// SampleRange returns a random float64 in [lo, hi)
func SampleRange(sampler Sampler, lo, hi float64) float64 {
	return lo + (hi-lo)*sampler.Get1D()
}

// RandomUnitVector generates a uniform random direction on the unit sphere
// via rejection sampling: draw points in the [-1,1]³ cube until one falls
// inside the sphere, then normalize. The lower bound on the squared length
// rejects points too close to the origin to normalize safely.
func RandomUnitVector(sampler Sampler) Vec3 {
	for {
		p := Vec3{
			X: SampleRange(sampler, -1, 1),
			Y: SampleRange(sampler, -1, 1),
			Z: SampleRange(sampler, -1, 1),
		}
		lensq := p.LengthSquared()
		if 1e-160 < lensq && lensq <= 1.0 {
			return p.Multiply(1.0 / p.Length())
		}
	}
}

// RandomInUnitDisk generates a random point in the unit disk on the z=0
// plane, used for defocus (thin lens) sampling
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for {
		p := Vec3{
			X: SampleRange(sampler, -1, 1),
			Y: SampleRange(sampler, -1, 1),
		}
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}
