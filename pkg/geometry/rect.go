package geometry

import (
	"github.com/df07/go-ray-kernel/pkg/core"
	"github.com/df07/go-ray-kernel/pkg/material"
)

// RectThickness is the half-thickness of a rectangle's bounding box along
// its fixed axis. A zero-thickness box would be degenerate in any union.
const RectThickness = 0.0001

// XYRect is an axis-aligned rectangle in the plane z = K
type XYRect struct {
	X0, X1, Y0, Y1 float64
	K              float64
	Material       material.Ref
}

// XZRect is an axis-aligned rectangle in the plane y = K
type XZRect struct {
	X0, X1, Z0, Z1 float64
	K              float64
	Material       material.Ref
}

// YZRect is an axis-aligned rectangle in the plane x = K
type YZRect struct {
	Y0, Y1, Z0, Z1 float64
	K              float64
	Material       material.Ref
}

// NewXYRect creates a rectangle spanning [x0,x1]×[y0,y1] at z = k
func NewXYRect(x0, x1, y0, y1, k float64, mat material.Ref) *XYRect {
	return &XYRect{X0: x0, X1: x1, Y0: y0, Y1: y1, K: k, Material: mat}
}

// NewXZRect creates a rectangle spanning [x0,x1]×[z0,z1] at y = k
func NewXZRect(x0, x1, z0, z1, k float64, mat material.Ref) *XZRect {
	return &XZRect{X0: x0, X1: x1, Z0: z0, Z1: z1, K: k, Material: mat}
}

// NewYZRect creates a rectangle spanning [y0,y1]×[z0,z1] at x = k
func NewYZRect(y0, y1, z0, z1, k float64, mat material.Ref) *YZRect {
	return &YZRect{Y0: y0, Y1: y1, Z0: z0, Z1: z1, K: k, Material: mat}
}

// Hit tests if a ray intersects with the rectangle
func (r XYRect) Hit(ray core.Ray, tMin, tMax float64, rec *HitRecord) bool {
	t, ok := planeT(ray.Origin.Z, ray.Direction.Z, r.K, tMin, tMax)
	if !ok {
		return false
	}
	x := ray.Origin.X + t*ray.Direction.X
	y := ray.Origin.Y + t*ray.Direction.Y
	if x < r.X0 || x > r.X1 || y < r.Y0 || y > r.Y1 {
		return false
	}

	rec.T = t
	rec.U = (x - r.X0) / (r.X1 - r.X0)
	rec.V = (y - r.Y0) / (r.Y1 - r.Y0)
	rec.Point = core.NewVec3(x, y, r.K)
	rec.SetFaceNormal(ray, core.NewVec3(0, 0, 1))
	rec.Material = r.Material
	return true
}

// BoundingBox returns a thin slab around the rectangle
func (r XYRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.X0, r.Y0, r.K-RectThickness),
		core.NewVec3(r.X1, r.Y1, r.K+RectThickness),
	), true
}

// Hit tests if a ray intersects with the rectangle
func (r XZRect) Hit(ray core.Ray, tMin, tMax float64, rec *HitRecord) bool {
	t, ok := planeT(ray.Origin.Y, ray.Direction.Y, r.K, tMin, tMax)
	if !ok {
		return false
	}
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	if x < r.X0 || x > r.X1 || z < r.Z0 || z > r.Z1 {
		return false
	}

	rec.T = t
	rec.U = (x - r.X0) / (r.X1 - r.X0)
	rec.V = (z - r.Z0) / (r.Z1 - r.Z0)
	rec.Point = core.NewVec3(x, r.K, z)
	rec.SetFaceNormal(ray, core.NewVec3(0, 1, 0))
	rec.Material = r.Material
	return true
}

// BoundingBox returns a thin slab around the rectangle
func (r XZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.X0, r.K-RectThickness, r.Z0),
		core.NewVec3(r.X1, r.K+RectThickness, r.Z1),
	), true
}

// Hit tests if a ray intersects with the rectangle
func (r YZRect) Hit(ray core.Ray, tMin, tMax float64, rec *HitRecord) bool {
	t, ok := planeT(ray.Origin.X, ray.Direction.X, r.K, tMin, tMax)
	if !ok {
		return false
	}
	y := ray.Origin.Y + t*ray.Direction.Y
	z := ray.Origin.Z + t*ray.Direction.Z
	if y < r.Y0 || y > r.Y1 || z < r.Z0 || z > r.Z1 {
		return false
	}

	rec.T = t
	rec.U = (y - r.Y0) / (r.Y1 - r.Y0)
	rec.V = (z - r.Z0) / (r.Z1 - r.Z0)
	rec.Point = core.NewVec3(r.K, y, z)
	rec.SetFaceNormal(ray, core.NewVec3(1, 0, 0))
	rec.Material = r.Material
	return true
}

// BoundingBox returns a thin slab around the rectangle.
// The padding is on X, the rectangle's fixed axis.
func (r YZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.K-RectThickness, r.Y0, r.Z0),
		core.NewVec3(r.K+RectThickness, r.Y1, r.Z1),
	), true
}

// planeT solves origin + t*direction = k on a single axis.
// A zero direction yields ±Inf or NaN, neither of which is in range.
func planeT(origin, direction, k, tMin, tMax float64) (float64, bool) {
	t := (k - origin) / direction
	return t, inRange(t, tMin, tMax)
}
