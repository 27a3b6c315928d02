package scene

import (
	"github.com/mdillard/go-pathtracer/pkg/core"
)

// World is a flat aggregate of hittable primitives. It grows via Add before
// rendering and is read-only once rendering begins.
type World struct {
	objects []core.Hittable
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{}
}

// Add appends a primitive to the world
func (w *World) Add(object core.Hittable) {
	w.objects = append(w.objects, object)
}

// Clear removes all primitives from the world
func (w *World) Clear() {
	w.objects = nil
}

// Count returns the number of primitives in the world
func (w *World) Count() int {
	return len(w.objects)
}

// Hit returns the closest qualifying hit among all primitives. Each
// primitive is tested against a query-scoped interval whose max shrinks to
// the closest hit found so far, so a single pass yields the nearest hit.
func (w *World) Hit(ray core.Ray, tRange core.Interval) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	current := tRange

	for _, object := range w.objects {
		if hit, isHit := object.Hit(ray, current); isHit {
			closest = hit
			current.Max = hit.T
		}
	}

	return closest, closest != nil
}
