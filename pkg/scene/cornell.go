package scene

import (
	"github.com/df07/go-ray-kernel/pkg/core"
	"github.com/df07/go-ray-kernel/pkg/geometry"
	"github.com/df07/go-ray-kernel/pkg/material"
	"github.com/df07/go-ray-kernel/pkg/renderer"
)

// cornellSize is the edge length of the standard Cornell box
const cornellSize = 555.0

// NewCornellScene creates a classic Cornell box from axis-aligned
// rectangles with two boxes inside
func NewCornellScene() *Scene {
	s := newScene("cornell", 400, 400, 32)

	s.setCamera(renderer.CameraConfig{
		LookFrom: core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		LookAt:   core.NewVec3(278, 278, 0),    // Look at the center of the box
		Up:       core.NewVec3(0, 1, 0),
		VFov:     40.0,
		Aperture: 0.0, // No depth of field for Cornell box
	})

	// Create materials
	white := s.Materials.Add("white", material.NewSolidRGB(0.73, 0.73, 0.73))
	red := s.Materials.Add("red", material.NewSolidRGB(0.65, 0.05, 0.05))
	green := s.Materials.Add("green", material.NewSolidRGB(0.12, 0.45, 0.15))
	light := s.Materials.Add("light", material.NewSolidRGB(1, 1, 1))

	s.World.Add(
		// Left wall (green) at x = size, right wall (red) at x = 0 as seen from -Z
		geometry.NewYZRect(0, cornellSize, 0, cornellSize, cornellSize, green),
		geometry.NewYZRect(0, cornellSize, 0, cornellSize, 0, red),

		// Ceiling patch stands in for the area light
		geometry.NewXZRect(213, 343, 227, 332, cornellSize-1, light),

		// Floor, ceiling and back wall
		geometry.NewXZRect(0, cornellSize, 0, cornellSize, 0, white),
		geometry.NewXZRect(0, cornellSize, 0, cornellSize, cornellSize, white),
		geometry.NewXYRect(0, cornellSize, 0, cornellSize, cornellSize, white),

		// Short and tall blocks, axis-aligned
		geometry.NewBox(core.NewVec3(130, 0, 65), core.NewVec3(295, 165, 230), white),
		geometry.NewBox(core.NewVec3(265, 0, 295), core.NewVec3(430, 330, 460), white),
	)

	return s
}
