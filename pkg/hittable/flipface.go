package hittable

import "github.com/nrempel/phototrace/pkg/core"

// FlipFace inverts the FrontFace flag of its child's hit record, leaving
// everything else unchanged. This is used to turn a rectangle meant to be
// an inward-facing light into one, without changing its geometry.
type FlipFace struct {
	Object Hittable
}

// NewFlipFace wraps object, inverting its reported face orientation.
func NewFlipFace(object Hittable) *FlipFace {
	return &FlipFace{Object: object}
}

// Hit delegates to the child and flips FrontFace only; Normal is returned
// exactly as the child set it, preserving the dot(ray.direction, normal) <=
// 0 invariant SetFaceNormal already established.
func (f *FlipFace) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	hit, ok := f.Object.Hit(ray, tMin, tMax)
	if !ok {
		return core.HitRecord{}, false
	}
	hit.FrontFace = !hit.FrontFace
	return hit, true
}

// BoundingBox delegates unchanged.
func (f *FlipFace) BoundingBox(timeStart, timeEnd float64) (core.AABB, bool) {
	return f.Object.BoundingBox(timeStart, timeEnd)
}

// PDFValue delegates unchanged; orientation doesn't affect area sampling.
func (f *FlipFace) PDFValue(origin core.Point3, direction core.Vec3) float64 {
	return f.Object.PDFValue(origin, direction)
}

// Random delegates unchanged.
func (f *FlipFace) Random(origin core.Point3, sampler core.Sampler) core.Vec3 {
	return f.Object.Random(origin, sampler)
}
