package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-ray-kernel/pkg/core"
	"github.com/df07/go-ray-kernel/pkg/material"
)

func TestNewBox_Faces(t *testing.T) {
	p0 := core.NewVec3(-1, -2, -3)
	p1 := core.NewVec3(1, 2, 3)
	box := NewBox(p0, p1, material.Ref(2))

	faces := box.Faces()
	if len(faces) != 6 {
		t.Fatalf("Expected 6 faces, got %d", len(faces))
	}

	counts := map[string]int{}
	for _, face := range faces {
		switch f := face.(type) {
		case XYRect:
			counts["xy"]++
			if f.K != p0.Z && f.K != p1.Z {
				t.Errorf("XY face at unexpected z=%f", f.K)
			}
			if f.Material != 2 {
				t.Errorf("Expected face material 2, got %d", f.Material)
			}
		case XZRect:
			counts["xz"]++
			if f.K != p0.Y && f.K != p1.Y {
				t.Errorf("XZ face at unexpected y=%f", f.K)
			}
		case YZRect:
			counts["yz"]++
			if f.K != p0.X && f.K != p1.X {
				t.Errorf("YZ face at unexpected x=%f", f.K)
			}
		default:
			t.Errorf("Unexpected face type %T", face)
		}
	}

	for _, kind := range []string{"xy", "xz", "yz"} {
		if counts[kind] != 2 {
			t.Errorf("Expected 2 %s faces, got %d", kind, counts[kind])
		}
	}
}

func TestBox_Hit(t *testing.T) {
	box := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), material.Ref(5))

	tests := []struct {
		name           string
		origin         core.Vec3
		direction      core.Vec3
		expectHit      bool
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{"front face", core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), true, 4, true, core.NewVec3(0, 0, 1)},
		{"back face", core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), true, 4, false, core.NewVec3(0, 0, -1)},
		{"top face", core.NewVec3(0.5, 4, 0.5), core.NewVec3(0, -1, 0), true, 3, true, core.NewVec3(0, 1, 0)},
		{"right face", core.NewVec3(3, 0.2, 0.3), core.NewVec3(-1, 0, 0), true, 2, true, core.NewVec3(1, 0, 0)},
		{"from inside", core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), true, 1, false, core.NewVec3(0, 0, -1)},
		{"miss", core.NewVec3(3, 3, 5), core.NewVec3(0, 0, -1), false, 0, false, core.Vec3{}},
		{"pointing away", core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1), false, 0, false, core.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.direction)
			var rec HitRecord
			isHit := box.Hit(ray, 0.001, math.Inf(1), &rec)

			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if !isHit {
				return
			}
			if math.Abs(rec.T-tt.expectedT) > tolerance {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, rec.T)
			}
			if rec.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, rec.FrontFace)
			}
			if !vecNear(rec.Normal, tt.expectedNormal, tolerance) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, rec.Normal)
			}
			if rec.Material != 5 {
				t.Errorf("Expected material 5, got %d", rec.Material)
			}
		})
	}
}

func TestBox_Hit_NearestFace(t *testing.T) {
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), material.NoMaterial)
	// Diagonal ray enters through the x = 0 face first
	ray := core.NewRay(core.NewVec3(-1, 0.25, 0.5), core.NewVec3(1, 0.1, 0))

	var rec HitRecord
	if !box.Hit(ray, 0.001, math.Inf(1), &rec) {
		t.Fatal("Expected hit")
	}
	if math.Abs(rec.T-1) > tolerance {
		t.Errorf("Expected entry at t=1, got %f", rec.T)
	}
	if rec.Point.X != 0 {
		t.Errorf("Expected entry point on x=0, got %v", rec.Point)
	}
}

func TestBox_BoundingBox(t *testing.T) {
	p0 := core.NewVec3(-1, 0, 2)
	p1 := core.NewVec3(3, 4, 5)
	box := NewBox(p0, p1, material.NoMaterial)

	bbox, ok := box.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected bounding box")
	}
	if bbox.Min != p0 || bbox.Max != p1 {
		t.Errorf("Expected stored corners %v-%v, got %v", p0, p1, bbox)
	}

	// The union of the faces only differs by the rectangle padding
	faceBox, ok := surroundingBoxOf(box.Faces(), 0, 1)
	if !ok {
		t.Fatal("Expected face union")
	}
	if !vecNear(faceBox.Min, p0, RectThickness+tolerance) || !vecNear(faceBox.Max, p1, RectThickness+tolerance) {
		t.Errorf("Face union %v disagrees with stored box %v", faceBox, bbox)
	}
}
