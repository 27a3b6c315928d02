package geometry

import (
	"fmt"
	"math"

	"github.com/mdillard/go-pathtracer/pkg/core"
)

// Sphere represents a sphere shape. Immutable after construction.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere. The radius must be positive; anything else
// is a configuration error, not a renderable primitive.
func NewSphere(center core.Vec3, radius float64, material core.Material) (*Sphere, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("sphere radius must be positive, got %g", radius)
	}
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}, nil
}

// Hit tests if a ray intersects the sphere within tRange.
//
// Substituting the ray equation into the implicit sphere equation gives a
// quadratic at² - 2ht + c = 0 with h = dir·(center-origin), whose
// discriminant decides whether the ray crosses the surface at all.
func (s *Sphere) Hit(ray core.Ray, tRange core.Interval) (*core.HitRecord, bool) {
	oc := s.Center.Subtract(ray.Origin)

	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Find the nearest root strictly inside the acceptable range
	root := (h - sqrtD) / a
	if !tRange.Surrounds(root) {
		root = (h + sqrtD) / a
		if !tRange.Surrounds(root) {
			return nil, false
		}
	}

	hit := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	outwardNormal := hit.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}
