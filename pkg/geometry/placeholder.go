package geometry

import (
	"github.com/df07/go-ray-kernel/pkg/core"
	"github.com/df07/go-ray-kernel/pkg/material"
)

// probeDistance is the only ray parameter a PlaceholderVolume ever tests
const probeDistance = 1.0

// PlaceholderVolume stands in for a volumetric "heart" shape that was never
// implemented. It does not intersect a surface: Hit evaluates the ray once at
// t = 1 and reports a hit when that point, relative to Center, falls inside
// the box [X0,X1]×[Y0,Y1]×[Z0,Z1]. Scenes should not rely on it for geometry.
type PlaceholderVolume struct {
	X0, X1, Y0, Y1, Z0, Z1 float64
	Center                 core.Vec3
	Material               material.Ref
}

// NewPlaceholderVolume creates a placeholder with extents relative to center
func NewPlaceholderVolume(x0, x1, y0, y1, z0, z1 float64, center core.Vec3, mat material.Ref) *PlaceholderVolume {
	return &PlaceholderVolume{
		X0: x0, X1: x1,
		Y0: y0, Y1: y1,
		Z0: z0, Z1: z1,
		Center:   center,
		Material: mat,
	}
}

// Hit probes the single point origin + direction
func (h *PlaceholderVolume) Hit(ray core.Ray, tMin, tMax float64, rec *HitRecord) bool {
	if !inRange(probeDistance, tMin, tMax) {
		return false
	}

	point := ray.At(probeDistance)
	local := point.Subtract(h.Center)
	if local.X < h.X0 || local.X > h.X1 ||
		local.Y < h.Y0 || local.Y > h.Y1 ||
		local.Z < h.Z0 || local.Z > h.Z1 {
		return false
	}

	rec.T = probeDistance
	rec.Point = point
	rec.U, rec.V = 0, 0
	rec.SetFaceNormal(ray, local.Normalize())
	rec.Material = h.Material
	return true
}

// BoundingBox returns the membership box in world space
func (h *PlaceholderVolume) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		h.Center.Add(core.NewVec3(h.X0, h.Y0, h.Z0)),
		h.Center.Add(core.NewVec3(h.X1, h.Y1, h.Z1)),
	), true
}
