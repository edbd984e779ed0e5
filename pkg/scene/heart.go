package scene

import (
	"github.com/df07/go-ray-kernel/pkg/core"
	"github.com/df07/go-ray-kernel/pkg/geometry"
	"github.com/df07/go-ray-kernel/pkg/material"
	"github.com/df07/go-ray-kernel/pkg/renderer"
)

// NewHeartScene shows the placeholder volume. Its hit test only samples the
// point at t = 1, which for primary rays is the focus plane, so the volume
// appears as its cross-section at the look-at distance.
func NewHeartScene() *Scene {
	s := newScene("heart", 300, 300, 8)

	s.setCamera(renderer.CameraConfig{
		LookFrom: core.NewVec3(0, 0, 0),
		LookAt:   core.NewVec3(0, 0, -2),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     60,
	})

	pink := s.Materials.Add("pink", material.NewSolidRGB(0.9, 0.2, 0.4))
	floor := s.Materials.Add("floor", material.NewSolidRGB(0.5, 0.5, 0.5))

	s.World.Add(
		geometry.NewPlaceholderVolume(-0.5, 0.5, -0.5, 0.5, -0.5, 0.5, core.NewVec3(0, 0, -2), pink),
		geometry.NewXZRect(-4, 4, -6, 0, -1, floor),
	)

	return s
}
