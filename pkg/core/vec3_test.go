package core

import (
	"math"
	"testing"
)

func TestVec3_BasicOperations(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	sum := a.Add(b)
	if sum != (Vec3{5, 7, 9}) {
		t.Errorf("Expected sum (5,7,9), got %v", sum)
	}

	diff := b.Subtract(a)
	if diff != (Vec3{3, 3, 3}) {
		t.Errorf("Expected difference (3,3,3), got %v", diff)
	}

	if dot := a.Dot(b); dot != 32 {
		t.Errorf("Expected dot product 32, got %f", dot)
	}

	cross := NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0))
	if cross != (Vec3{0, 0, 1}) {
		t.Errorf("Expected cross (0,0,1), got %v", cross)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 0, 4)
	unit := v.Normalize()

	if math.Abs(unit.Length()-1.0) > 1e-12 {
		t.Errorf("Expected unit length, got %f", unit.Length())
	}

	// Zero vector normalizes to zero rather than NaN
	zero := NewVec3(0, 0, 0).Normalize()
	if zero != (Vec3{0, 0, 0}) {
		t.Errorf("Expected zero vector, got %v", zero)
	}
}

func TestReflect_Involution(t *testing.T) {
	// Reflecting a reflected vector about the same unit normal returns the original
	tests := []struct {
		name string
		v    Vec3
		n    Vec3
	}{
		{"axis normal", NewVec3(1, -1, 0), NewVec3(0, 1, 0)},
		{"diagonal normal", NewVec3(0.3, -0.8, 0.2), NewVec3(1, 1, 1).Normalize()},
		{"grazing", NewVec3(1, -0.01, 0), NewVec3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			twice := Reflect(Reflect(tt.v, tt.n), tt.n)
			if twice.Subtract(tt.v).Length() > 1e-12 {
				t.Errorf("Expected %v after double reflection, got %v", tt.v, twice)
			}
		})
	}
}

func TestReflect_KnownValue(t *testing.T) {
	v := NewVec3(1, -1, 0)
	n := NewVec3(0, 1, 0)
	r := Reflect(v, n)
	if r.Subtract(NewVec3(1, 1, 0)).Length() > 1e-12 {
		t.Errorf("Expected (1,1,0), got %v", r)
	}
}

func TestRefract_StraightThrough(t *testing.T) {
	// A ray along the normal passes straight through regardless of index
	uv := NewVec3(0, -1, 0)
	n := NewVec3(0, 1, 0)
	r := Refract(uv, n, 1.0/1.5)
	if r.Subtract(NewVec3(0, -1, 0)).Length() > 1e-12 {
		t.Errorf("Expected straight transmission (0,-1,0), got %v", r)
	}
}

func TestRefract_SnellsLaw(t *testing.T) {
	// 45 degree incidence into glass: sin(theta') = sin(45°)/1.5
	uv := NewVec3(1, -1, 0).Normalize()
	n := NewVec3(0, 1, 0)
	ri := 1.0 / 1.5
	r := Refract(uv, n, ri)

	if math.Abs(r.Length()-1.0) > 1e-12 {
		t.Errorf("Refracted direction should be unit length, got %f", r.Length())
	}

	sinIncident := math.Sqrt(0.5)
	sinRefracted := math.Abs(r.X)
	if math.Abs(sinRefracted-ri*sinIncident) > 1e-12 {
		t.Errorf("Snell's law violated: sin(theta')=%f, expected %f", sinRefracted, ri*sinIncident)
	}
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Expected near-zero vector to report true")
	}
	if NewVec3(1e-7, 0, 0).NearZero() {
		t.Error("Expected non-degenerate vector to report false")
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -1))
	p := ray.At(2.5)
	if p != (Vec3{1, 2, 0.5}) {
		t.Errorf("Expected (1,2,0.5), got %v", p)
	}
}
