package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-ray-kernel/pkg/core"
	"github.com/df07/go-ray-kernel/pkg/material"
)

func TestXYRect_Hit(t *testing.T) {
	rect := NewXYRect(0, 2, 0, 4, -1, material.Ref(1))

	tests := []struct {
		name           string
		origin         core.Vec3
		direction      core.Vec3
		expectHit      bool
		expectedT      float64
		expectedU      float64
		expectedV      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:      "pointing away",
			origin:    core.NewVec3(0.5, 3, 0),
			direction: core.NewVec3(0, 0, 1),
			expectHit: false,
		},
		{
			name:           "hit from above",
			origin:         core.NewVec3(0.5, 3, 1),
			direction:      core.NewVec3(0, 0, -1),
			expectHit:      true,
			expectedT:      2,
			expectedU:      0.25,
			expectedV:      0.75,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "hit from below",
			origin:         core.NewVec3(1, 1, -3),
			direction:      core.NewVec3(0, 0, 2),
			expectHit:      true,
			expectedT:      1,
			expectedU:      0.5,
			expectedV:      0.25,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:      "outside bounds",
			origin:    core.NewVec3(3, 1, 1),
			direction: core.NewVec3(0, 0, -1),
			expectHit: false,
		},
		{
			name:      "parallel to plane",
			origin:    core.NewVec3(1, 1, 1),
			direction: core.NewVec3(1, 0, 0),
			expectHit: false,
		},
		{
			name:      "parallel and inside plane",
			origin:    core.NewVec3(1, 1, -1),
			direction: core.NewVec3(1, 0, 0),
			expectHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.direction)
			var rec HitRecord
			isHit := rect.Hit(ray, 0.001, math.Inf(1), &rec)

			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if !isHit {
				return
			}
			if math.Abs(rec.T-tt.expectedT) > tolerance {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, rec.T)
			}
			if math.Abs(rec.U-tt.expectedU) > tolerance || math.Abs(rec.V-tt.expectedV) > tolerance {
				t.Errorf("Expected uv (%f, %f), got (%f, %f)", tt.expectedU, tt.expectedV, rec.U, rec.V)
			}
			if rec.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, rec.FrontFace)
			}
			if rec.Normal != tt.expectedNormal {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, rec.Normal)
			}
			if rec.Point.Z != -1 {
				t.Errorf("Expected point on z=-1, got %v", rec.Point)
			}
			if rec.Material != 1 {
				t.Errorf("Expected material ref 1, got %d", rec.Material)
			}
		})
	}
}

func TestXZRect_Hit(t *testing.T) {
	rect := NewXZRect(-1, 1, -1, 1, 2, material.NoMaterial)
	ray := core.NewRay(core.NewVec3(0.5, 0, -0.5), core.NewVec3(0, 1, 0))

	var rec HitRecord
	if !rect.Hit(ray, 0.001, math.Inf(1), &rec) {
		t.Fatal("Expected hit")
	}
	if math.Abs(rec.T-2) > tolerance {
		t.Errorf("Expected t=2, got %f", rec.T)
	}
	if math.Abs(rec.U-0.75) > tolerance || math.Abs(rec.V-0.25) > tolerance {
		t.Errorf("Expected uv (0.75, 0.25), got (%f, %f)", rec.U, rec.V)
	}
	if rec.FrontFace || rec.Normal != core.NewVec3(0, -1, 0) {
		t.Errorf("Expected back face with normal (0,-1,0), got front=%t normal=%v", rec.FrontFace, rec.Normal)
	}
}

func TestYZRect_Hit(t *testing.T) {
	rect := NewYZRect(0, 1, 0, 1, 3, material.NoMaterial)
	ray := core.NewRay(core.NewVec3(5, 0.2, 0.4), core.NewVec3(-1, 0, 0))

	var rec HitRecord
	if !rect.Hit(ray, 0.001, math.Inf(1), &rec) {
		t.Fatal("Expected hit")
	}
	if math.Abs(rec.T-2) > tolerance {
		t.Errorf("Expected t=2, got %f", rec.T)
	}
	if math.Abs(rec.U-0.2) > tolerance || math.Abs(rec.V-0.4) > tolerance {
		t.Errorf("Expected uv (0.2, 0.4), got (%f, %f)", rec.U, rec.V)
	}
	if !rec.FrontFace || rec.Normal != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected front face with normal (1,0,0), got front=%t normal=%v", rec.FrontFace, rec.Normal)
	}
}

func TestRect_Hit_RangeIsExclusive(t *testing.T) {
	rect := NewXYRect(-1, 1, -1, 1, 0, material.NoMaterial)
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	var rec HitRecord

	if rect.Hit(ray, 0.001, 1, &rec) {
		t.Error("Expected t == tMax to be rejected")
	}
	if rect.Hit(ray, 1, 10, &rec) {
		t.Error("Expected t == tMin to be rejected")
	}
	if !rect.Hit(ray, 0.999, 1.001, &rec) {
		t.Error("Expected t inside the open interval to hit")
	}
}

func TestRect_Hit_Properties(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	rects := []struct {
		name  string
		shape Hittable
		axis  int
		k     float64
	}{
		{"xy", NewXYRect(-1, 2, -0.5, 1.5, 0.3, material.NoMaterial), 2, 0.3},
		{"xz", NewXZRect(-2, 1, 0, 3, -0.7, material.NoMaterial), 1, -0.7},
		{"yz", NewYZRect(-1, 1, -1, 1, 1.1, material.NoMaterial), 0, 1.1},
	}

	for _, tt := range rects {
		t.Run(tt.name, func(t *testing.T) {
			hits := 0
			for i := 0; i < 2000; i++ {
				origin := core.NewVec3(random.Float64()*8-4, random.Float64()*8-4, random.Float64()*8-4)
				direction := core.NewVec3(random.Float64()*2-1, random.Float64()*2-1, random.Float64()*2-1)
				ray := core.NewRay(origin, direction)

				var rec HitRecord
				if !tt.shape.Hit(ray, 0.001, math.Inf(1), &rec) {
					continue
				}
				hits++

				if rec.U < 0 || rec.U > 1 || rec.V < 0 || rec.V > 1 {
					t.Fatalf("uv (%f, %f) outside [0,1]", rec.U, rec.V)
				}
				if rec.Point.Axis(tt.axis) != tt.k {
					t.Fatalf("Expected fixed coordinate %f, got %f", tt.k, rec.Point.Axis(tt.axis))
				}
				if ray.Direction.Dot(rec.Normal) > 0 {
					t.Fatalf("Normal %v faces along ray direction %v", rec.Normal, ray.Direction)
				}
				if rec.FrontFace != (ray.Direction.Axis(tt.axis) < 0) {
					t.Fatalf("Front face %t inconsistent with direction %v", rec.FrontFace, ray.Direction)
				}
			}
			if hits == 0 {
				t.Fatal("Expected at least one random ray to hit")
			}
		})
	}
}

func TestRect_BoundingBox(t *testing.T) {
	tests := []struct {
		name     string
		shape    Hittable
		expected core.AABB
	}{
		{
			"xy",
			NewXYRect(0, 1, 2, 3, 5, material.NoMaterial),
			core.NewAABB(core.NewVec3(0, 2, 5-RectThickness), core.NewVec3(1, 3, 5+RectThickness)),
		},
		{
			"xz",
			NewXZRect(0, 1, 2, 3, 5, material.NoMaterial),
			core.NewAABB(core.NewVec3(0, 5-RectThickness, 2), core.NewVec3(1, 5+RectThickness, 3)),
		},
		{
			"yz",
			NewYZRect(0, 1, 2, 3, 5, material.NoMaterial),
			core.NewAABB(core.NewVec3(5-RectThickness, 0, 2), core.NewVec3(5+RectThickness, 1, 3)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box, ok := tt.shape.BoundingBox(0, 1)
			if !ok {
				t.Fatal("Expected bounding box")
			}
			if box != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, box)
			}
			size := box.Size()
			if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
				t.Errorf("Expected non-degenerate box, got size %v", size)
			}
		})
	}
}
