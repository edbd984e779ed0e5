package geometry

import (
	"github.com/df07/go-ray-kernel/pkg/core"
	"github.com/df07/go-ray-kernel/pkg/material"
)

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T         float64      // Parameter t along the ray
	U, V      float64      // Surface coordinates for texture lookup
	Point     core.Vec3    // Point of intersection
	Normal    core.Vec3    // Unit surface normal, always facing against the ray
	Material  material.Ref // Material of the hit object
	FrontFace bool         // Whether ray hit the outward-facing side
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Hittable is implemented by every primitive and by aggregates of primitives.
//
// Hit reports whether the ray strikes the object at some t strictly inside
// (tMin, tMax) and fills rec with the nearest such hit. rec is left untouched
// on a miss. BoundingBox returns false when the object has no finite bound.
// Implementations are immutable after construction and safe for concurrent use.
type Hittable interface {
	Hit(ray core.Ray, tMin, tMax float64, rec *HitRecord) bool
	BoundingBox(time0, time1 float64) (core.AABB, bool)
}

// inRange reports whether t lies strictly inside (tMin, tMax).
// NaN never does.
func inRange(t, tMin, tMax float64) bool {
	return t > tMin && t < tMax
}
