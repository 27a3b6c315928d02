package geometry

import (
	"math"
	"testing"

	"github.com/mdillard/go-pathtracer/pkg/core"
)

func testSphere(t *testing.T, center core.Vec3, radius float64) *Sphere {
	t.Helper()
	sphere, err := NewSphere(center, radius, nil)
	if err != nil {
		t.Fatalf("NewSphere failed: %v", err)
	}
	return sphere
}

func TestNewSphere_RejectsNonPositiveRadius(t *testing.T) {
	for _, radius := range []float64{0, -1, -0.001} {
		if _, err := NewSphere(core.NewVec3(0, 0, 0), radius, nil); err == nil {
			t.Errorf("Expected error for radius %g, got none", radius)
		}
	}
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := testSphere(t, core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	if hit, isHit := sphere.Hit(ray, core.NewInterval(0.001, math.Inf(1))); isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_ThroughCenterDistances(t *testing.T) {
	// A ray through the center hits at centerDistance - r and centerDistance + r
	tests := []struct {
		name           string
		center         core.Vec3
		radius         float64
		origin         core.Vec3
		centerDistance float64
	}{
		{"unit sphere", core.NewVec3(0, 0, -3), 1.0, core.NewVec3(0, 0, 0), 3.0},
		{"small sphere", core.NewVec3(0, 0, -1), 0.5, core.NewVec3(0, 0, 0), 1.0},
		{"offset origin", core.NewVec3(5, 0, 0), 2.0, core.NewVec3(-5, 0, 0), 10.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := testSphere(t, tt.center, tt.radius)
			direction := tt.center.Subtract(tt.origin).Normalize()
			ray := core.NewRay(tt.origin, direction)

			near, isHit := sphere.Hit(ray, core.NewInterval(0.001, math.Inf(1)))
			if !isHit {
				t.Fatal("Expected near hit, but got miss")
			}
			if math.Abs(near.T-(tt.centerDistance-tt.radius)) > 1e-9 {
				t.Errorf("Expected near t=%f, got %f", tt.centerDistance-tt.radius, near.T)
			}

			// Narrow the interval past the near root to expose the far root
			far, isHit := sphere.Hit(ray, core.NewInterval(near.T+1e-6, math.Inf(1)))
			if !isHit {
				t.Fatal("Expected far hit, but got miss")
			}
			if math.Abs(far.T-(tt.centerDistance+tt.radius)) > 1e-9 {
				t.Errorf("Expected far t=%f, got %f", tt.centerDistance+tt.radius, far.T)
			}
		})
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := testSphere(t, core.NewVec3(0, 0, 0), 1.0)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, core.NewInterval(0.001, math.Inf(1)))

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_NormalOpposesRay(t *testing.T) {
	// The corrected normal always satisfies dot(ray.direction, normal) <= 0
	sphere := testSphere(t, core.NewVec3(0, 0, -2), 1.0)

	rays := []core.Ray{
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)),
		core.NewRay(core.NewVec3(0.5, 0.3, 0), core.NewVec3(-0.1, -0.05, -1)),
		core.NewRay(core.NewVec3(0, 0, -2), core.NewVec3(0, 1, 0)), // from inside
		core.NewRay(core.NewVec3(0.9, 0, 0), core.NewVec3(0, 0, -1)),
	}

	for _, ray := range rays {
		hit, isHit := sphere.Hit(ray, core.NewInterval(0.001, math.Inf(1)))
		if !isHit {
			continue
		}
		if ray.Direction.Dot(hit.Normal) > 0 {
			t.Errorf("Normal %v does not oppose ray direction %v", hit.Normal, ray.Direction)
		}
	}
}

func TestSphere_Hit_IntervalBounds(t *testing.T) {
	sphere := testSphere(t, core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	// Max below the near root rejects both intersections
	if hit, isHit := sphere.Hit(ray, core.NewInterval(0.001, 0.5)); isHit {
		t.Errorf("Expected miss due to interval max, but got hit at t=%f", hit.T)
	}

	// Min above the far root rejects both intersections
	if hit, isHit := sphere.Hit(ray, core.NewInterval(3.5, math.Inf(1))); isHit {
		t.Errorf("Expected miss due to interval min, but got hit at t=%f", hit.T)
	}

	// Interval boundary is strict-open: a root exactly at Max is rejected
	if hit, isHit := sphere.Hit(ray, core.NewInterval(0.001, 1.0)); isHit {
		t.Errorf("Expected miss for root exactly at interval max, got t=%f", hit.T)
	}
}
