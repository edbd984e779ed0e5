package renderer

import (
	"image/color"
	"testing"

	"github.com/df07/go-ray-kernel/pkg/core"
	"github.com/df07/go-ray-kernel/pkg/geometry"
	"github.com/df07/go-ray-kernel/pkg/material"
)

func testWorld() (*geometry.SceneList, *material.Palette) {
	palette := material.NewPalette()
	red := palette.Add("red", material.NewSolidRGB(0.8, 0.1, 0.1))
	world := geometry.NewSceneList(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, red))
	return world, palette
}

func TestRaytracer_RayColor(t *testing.T) {
	world, palette := testWorld()

	tests := []struct {
		name      string
		normals   bool
		direction core.Vec3
		expectHit bool
		expected  core.Vec3
	}{
		{"head-on hit shades full albedo", false, core.NewVec3(0, 0, -1), true, core.NewVec3(0.8, 0.1, 0.1)},
		{"normal mode maps n to rgb", true, core.NewVec3(0, 0, -1), true, core.NewVec3(0.5, 0.5, 1)},
		{"miss up is sky top", false, core.NewVec3(0, 1, 0), false, skyTop},
		{"miss down is sky bottom", false, core.NewVec3(0, -1, 0), false, skyBottom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.ShadeNormals = tt.normals
			rt := NewRaytracer(world, palette, opts)

			got, hit := rt.RayColor(core.NewRay(core.NewVec3(0, 0, 0), tt.direction))
			if hit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, hit)
			}
			if !vecNear(got, tt.expected, 1e-9) {
				t.Errorf("Expected color %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRaytracer_GrazingHitIsDarker(t *testing.T) {
	world, palette := testWorld()
	rt := NewRaytracer(world, palette, DefaultOptions())

	headOn, _ := rt.RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)))
	grazing, hit := rt.RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0.45, 0, -1)))
	if !hit {
		t.Fatal("Expected grazing ray to hit")
	}
	if grazing.X >= headOn.X {
		t.Errorf("Expected grazing hit %v darker than head-on %v", grazing, headOn)
	}
	if grazing.X < 0.4 {
		t.Errorf("Expected at least half albedo, got %v", grazing)
	}
}

func TestRaytracer_UnknownMaterial(t *testing.T) {
	world := geometry.NewSceneList(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.Ref(9)))
	rt := NewRaytracer(world, nil, DefaultOptions())

	got, hit := rt.RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)))
	if !hit {
		t.Fatal("Expected hit")
	}
	if !vecNear(got, core.NewVec3(1, 0, 1), 1e-9) {
		t.Errorf("Expected magenta for a dangling ref, got %v", got)
	}
}

func TestRaytracer_RespectsRange(t *testing.T) {
	world, palette := testWorld()
	opts := DefaultOptions()
	opts.TMax = 0.4
	rt := NewRaytracer(world, palette, opts)

	if _, hit := rt.RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))); hit {
		t.Error("Expected sphere at t=0.5 to be clipped by tMax=0.4")
	}
}

func TestVec3ToColor(t *testing.T) {
	tests := []struct {
		name     string
		input    core.Vec3
		expected color.RGBA
	}{
		{"black", core.NewVec3(0, 0, 0), color.RGBA{0, 0, 0, 255}},
		{"white", core.NewVec3(1, 1, 1), color.RGBA{255, 255, 255, 255}},
		{"gamma quarter", core.NewVec3(0.25, 0.25, 0.25), color.RGBA{127, 127, 127, 255}},
		{"clamped", core.NewVec3(4, -1, 1), color.RGBA{255, 0, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vec3ToColor(tt.input); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
