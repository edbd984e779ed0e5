package scene

import (
	"github.com/df07/go-ray-kernel/pkg/core"
	"github.com/df07/go-ray-kernel/pkg/geometry"
	"github.com/df07/go-ray-kernel/pkg/material"
	"github.com/df07/go-ray-kernel/pkg/renderer"
)

// NewMotionScene opens the shutter over [0, 1]. Primitives are static, so
// rays carry sampled times that nothing consumes yet.
func NewMotionScene() *Scene {
	s := newScene("motion", 400, 225, 16)

	s.setCamera(renderer.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		Aperture:      0.1,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	})

	ground := s.Materials.Add("ground", material.NewChecker(
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
		10,
	))
	s.World.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	// A short row of spheres so the defocus is easy to read
	for i := -3; i <= 3; i++ {
		shade := 0.3 + 0.1*float64(i+3)
		mat := s.Materials.Add("", material.NewSolidRGB(shade, 0.4, 1-shade))
		s.World.Add(geometry.NewSphere(core.NewVec3(float64(i)*1.2, 0.5, 0), 0.5, mat))
	}

	return s
}
