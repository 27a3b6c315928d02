package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomUnitVector_IsUnit(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(sampler)
		if math.Abs(v.Length()-1.0) > 1e-12 {
			t.Fatalf("Expected unit vector, got length %g", v.Length())
		}
	}
}

func TestRandomInUnitDisk_InsideDisk(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(sampler)
		if p.LengthSquared() >= 1.0 {
			t.Fatalf("Expected point inside unit disk, got %v (r²=%f)", p, p.LengthSquared())
		}
		if p.Z != 0 {
			t.Fatalf("Disk samples must lie in the z=0 plane, got %v", p)
		}
	}
}

func TestSampleRange(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(7)))

	for i := 0; i < 1000; i++ {
		x := SampleRange(sampler, -2.5, 3.5)
		if x < -2.5 || x >= 3.5 {
			t.Fatalf("Sample %f outside [-2.5, 3.5)", x)
		}
	}
}

func TestRandomSampler_Deterministic(t *testing.T) {
	a := NewRandomSampler(rand.New(rand.NewSource(99)))
	b := NewRandomSampler(rand.New(rand.NewSource(99)))

	for i := 0; i < 100; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatal("Samplers with identical seeds diverged")
		}
	}
}
