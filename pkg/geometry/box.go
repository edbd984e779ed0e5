package geometry

import (
	"github.com/df07/go-ray-kernel/pkg/core"
	"github.com/df07/go-ray-kernel/pkg/material"
)

// Box represents an axis-aligned rectangular prism made up of 6 rectangles
type Box struct {
	Min      core.Vec3    // Minimum corner
	Max      core.Vec3    // Maximum corner
	Material material.Ref // Material for all faces
	faces    [6]Hittable  // The 6 rectangle faces, owned by the box
}

// NewBox creates a new box spanning the corners p0 and p1
func NewBox(p0, p1 core.Vec3, mat material.Ref) *Box {
	box := &Box{
		Min:      p0,
		Max:      p1,
		Material: mat,
	}

	box.generateFaces()

	return box
}

// generateFaces creates two faces per axis, one at each extreme
func (b *Box) generateFaces() {
	p0, p1 := b.Min, b.Max

	// Front and back (z = max, z = min)
	b.faces[0] = XYRect{X0: p0.X, X1: p1.X, Y0: p0.Y, Y1: p1.Y, K: p1.Z, Material: b.Material}
	b.faces[1] = XYRect{X0: p0.X, X1: p1.X, Y0: p0.Y, Y1: p1.Y, K: p0.Z, Material: b.Material}

	// Top and bottom (y = max, y = min)
	b.faces[2] = XZRect{X0: p0.X, X1: p1.X, Z0: p0.Z, Z1: p1.Z, K: p1.Y, Material: b.Material}
	b.faces[3] = XZRect{X0: p0.X, X1: p1.X, Z0: p0.Z, Z1: p1.Z, K: p0.Y, Material: b.Material}

	// Right and left (x = max, x = min)
	b.faces[4] = YZRect{Y0: p0.Y, Y1: p1.Y, Z0: p0.Z, Z1: p1.Z, K: p1.X, Material: b.Material}
	b.faces[5] = YZRect{Y0: p0.Y, Y1: p1.Y, Z0: p0.Z, Z1: p1.Z, K: p0.X, Material: b.Material}
}

// Faces returns the six faces of the box
func (b *Box) Faces() []Hittable {
	return b.faces[:]
}

// Hit tests if a ray intersects with any face of the box
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, rec *HitRecord) bool {
	return hitNearest(b.faces[:], ray, tMin, tMax, rec)
}

// BoundingBox returns the stored corners rather than the union of the faces
func (b *Box) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}
