package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-ray-kernel/pkg/core"
	"github.com/df07/go-ray-kernel/pkg/material"
)

const tolerance = 1e-9

func vecNear(a, b core.Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps &&
		math.Abs(a.Y-b.Y) <= eps &&
		math.Abs(a.Z-b.Z) <= eps
}

func TestSphere_Hit_CenteredScenario(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, material.Ref(3))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	var rec HitRecord
	if !sphere.Hit(ray, 0.001, math.Inf(1), &rec) {
		t.Fatal("Expected hit, but got miss")
	}

	if math.Abs(rec.T-0.5) > tolerance {
		t.Errorf("Expected t=0.5, got t=%f", rec.T)
	}
	if !vecNear(rec.Point, core.NewVec3(0, 0, -0.5), tolerance) {
		t.Errorf("Expected point (0,0,-0.5), got %v", rec.Point)
	}
	if !vecNear(rec.Normal, core.NewVec3(0, 0, 1), tolerance) {
		t.Errorf("Expected normal (0,0,1), got %v", rec.Normal)
	}
	if !rec.FrontFace {
		t.Error("Expected front face hit")
	}
	if rec.Material != 3 {
		t.Errorf("Expected material ref 3, got %d", rec.Material)
	}
	if math.Abs(rec.U-0.25) > tolerance || math.Abs(rec.V-0.5) > tolerance {
		t.Errorf("Expected uv (0.25, 0.5), got (%f, %f)", rec.U, rec.V)
	}
}

func TestSphere_Hit_RootSelection(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, material.NoMaterial)

	tests := []struct {
		name          string
		origin        core.Vec3
		tMin, tMax    float64
		expectHit     bool
		expectedT     float64
		expectedFront bool
	}{
		{"smaller root preferred", core.NewVec3(0, 0, 3), 0.001, 100, true, 2, true},
		{"near root below tMin", core.NewVec3(0, 0, 3), 2.5, 100, true, 4, false},
		{"origin inside", core.NewVec3(0, 0, 0), 0.001, 100, true, 1, false},
		{"both roots beyond tMax", core.NewVec3(0, 0, 3), 0.001, 1.5, false, 0, false},
		{"both roots below tMin", core.NewVec3(0, 0, 3), 4.5, 100, false, 0, false},
		{"root equal to tMax is excluded", core.NewVec3(0, 0, 3), 0.001, 2, false, 0, false},
		{"root equal to tMin falls through to far root", core.NewVec3(0, 0, 3), 2, 100, true, 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, core.NewVec3(0, 0, -1))
			var rec HitRecord
			isHit := sphere.Hit(ray, tt.tMin, tt.tMax, &rec)

			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if !isHit {
				return
			}
			if math.Abs(rec.T-tt.expectedT) > tolerance {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, rec.T)
			}
			if rec.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, rec.FrontFace)
			}
		})
	}
}

func TestSphere_Hit_TangentIsMiss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, material.NoMaterial)
	// Discriminant is exactly zero for a ray grazing x = 1
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	var rec HitRecord
	if sphere.Hit(ray, 0.001, 1000, &rec) {
		t.Errorf("Expected tangent ray to miss, got hit at t=%f", rec.T)
	}
}

func TestSphere_Hit_MissLeavesRecord(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, material.NoMaterial)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	rec := HitRecord{T: 42, Material: 7}
	if sphere.Hit(ray, 0.001, 1000, &rec) {
		t.Fatal("Expected miss")
	}
	if rec.T != 42 || rec.Material != 7 {
		t.Errorf("Expected record untouched on miss, got %+v", rec)
	}
}

func TestSphere_Hit_UnnormalizedDirection(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NoMaterial)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -4))

	var rec HitRecord
	if !sphere.Hit(ray, 0.001, math.Inf(1), &rec) {
		t.Fatal("Expected hit")
	}
	if math.Abs(rec.T-0.125) > tolerance {
		t.Errorf("Expected t=0.125 for a direction of length 4, got %f", rec.T)
	}
	if math.Abs(rec.Normal.Length()-1) > tolerance {
		t.Errorf("Expected unit normal, got length %f", rec.Normal.Length())
	}
}

func TestSphere_UV(t *testing.T) {
	tests := []struct {
		name   string
		normal core.Vec3
		u, v   float64
	}{
		{"north pole", core.NewVec3(0, 1, 0), 0.5, 1},
		{"south pole", core.NewVec3(0, -1, 0), 0.5, 0},
		{"+x", core.NewVec3(1, 0, 0), 0.5, 0.5},
		{"+z", core.NewVec3(0, 0, 1), 0.25, 0.5},
		{"-z", core.NewVec3(0, 0, -1), 0.75, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, v := sphereUV(tt.normal)
			if math.Abs(u-tt.u) > tolerance || math.Abs(v-tt.v) > tolerance {
				t.Errorf("Expected uv (%f, %f), got (%f, %f)", tt.u, tt.v, u, v)
			}
		})
	}
}

func TestSphere_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 2, material.NoMaterial)

	for _, times := range [][2]float64{{0, 0}, {0, 1}, {5, 10}} {
		box, ok := sphere.BoundingBox(times[0], times[1])
		if !ok {
			t.Fatal("Expected sphere to have a bounding box")
		}
		expected := core.NewAABB(core.NewVec3(-1, 0, 1), core.NewVec3(3, 4, 5))
		if box != expected {
			t.Errorf("Expected %v for times %v, got %v", expected, times, box)
		}
	}
}

func BenchmarkSphere_Hit(b *testing.B) {
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NoMaterial)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0.1, 0.1, -1))
	var rec HitRecord

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sphere.Hit(ray, 0.001, math.Inf(1), &rec)
	}
}
