package geometry

import "github.com/df07/go-ray-kernel/pkg/core"

// SceneList is a flat aggregate of hittables. Hit returns the nearest
// intersection over all children; child order only affects traversal cost.
type SceneList struct {
	children []Hittable
}

// NewSceneList creates a list from the given children.
// The slice is copied so later changes by the caller are not observed.
func NewSceneList(children ...Hittable) *SceneList {
	list := &SceneList{children: make([]Hittable, len(children))}
	copy(list.children, children)
	return list
}

// Add appends children. Only valid while the scene is being built.
func (l *SceneList) Add(children ...Hittable) {
	l.children = append(l.children, children...)
}

// Len returns the number of direct children
func (l *SceneList) Len() int {
	return len(l.children)
}

// Children returns the direct children. The returned slice must not be modified.
func (l *SceneList) Children() []Hittable {
	return l.children
}

// Hit scans every child for the closest intersection
func (l *SceneList) Hit(ray core.Ray, tMin, tMax float64, rec *HitRecord) bool {
	return hitNearest(l.children, ray, tMin, tMax, rec)
}

// BoundingBox returns the union of all child boxes. It fails for an empty
// list or when any child is unbounded.
func (l *SceneList) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return surroundingBoxOf(l.children, time0, time1)
}

// hitNearest narrows tMax to each successive hit so the last hit recorded is
// the globally nearest one. Children write into rec only on success.
func hitNearest(children []Hittable, ray core.Ray, tMin, tMax float64, rec *HitRecord) bool {
	hitAnything := false
	closestSoFar := tMax

	for _, child := range children {
		if child.Hit(ray, tMin, closestSoFar, rec) {
			hitAnything = true
			closestSoFar = rec.T
		}
	}

	return hitAnything
}

// surroundingBoxOf folds child boxes left to right, seeded by the first child
func surroundingBoxOf(children []Hittable, time0, time1 float64) (core.AABB, bool) {
	if len(children) == 0 {
		return core.AABB{}, false
	}

	var outputBox core.AABB
	for i, child := range children {
		box, ok := child.BoundingBox(time0, time1)
		if !ok {
			return core.AABB{}, false
		}
		if i == 0 {
			outputBox = box
		} else {
			outputBox = core.SurroundingBox(outputBox, box)
		}
	}

	return outputBox, true
}
