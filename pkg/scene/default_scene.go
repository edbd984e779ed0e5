package scene

import (
	"github.com/df07/go-ray-kernel/pkg/core"
	"github.com/df07/go-ray-kernel/pkg/geometry"
	"github.com/df07/go-ray-kernel/pkg/material"
	"github.com/df07/go-ray-kernel/pkg/renderer"
)

// NewDefaultScene creates a default scene with spheres on a checkered ground
func NewDefaultScene() *Scene {
	s := newScene("default", 400, 225, 32)

	s.setCamera(renderer.CameraConfig{
		LookFrom:      core.NewVec3(0, 0.75, 2), // Position camera higher and farther back
		LookAt:        core.NewVec3(0, 0.5, -1), // Look at the sphere center
		Up:            core.NewVec3(0, 1, 0),    // Standard up direction
		VFov:          40.0,                     // Narrower field of view for focus effect
		Aperture:      0.05,                     // Mild depth of field blur
		FocusDistance: 0.0,                      // Auto-calculate focus distance
	})

	// Create materials
	ground := s.Materials.Add("ground", material.NewChecker(
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
		10,
	))
	blue := s.Materials.Add("blue", material.NewSolidRGB(0.1, 0.2, 0.5))
	red := s.Materials.Add("red", material.NewSolidRGB(0.65, 0.25, 0.2))
	silver := s.Materials.Add("silver", material.NewSolidRGB(0.8, 0.8, 0.8))
	gold := s.Materials.Add("gold", material.NewSolidRGB(0.8, 0.6, 0.2))

	s.World.Add(
		// Large sphere as ground, its top touches y = 0
		geometry.NewSphere(core.NewVec3(0, -1000, -1), 1000, ground),
		geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, red),
		geometry.NewSphere(core.NewVec3(-1, 0.5, -1), 0.5, silver),
		geometry.NewSphere(core.NewVec3(1, 0.5, -1), 0.5, gold),
		geometry.NewSphere(core.NewVec3(0.5, 0.25, -0.3), 0.25, blue),
	)

	return s
}
