package hittable

import "github.com/nrempel/phototrace/pkg/core"

// Box is an axis-aligned cuboid built from six Rects sharing one material.
type Box struct {
	Min, Max core.Point3
	sides    *core.HittableList
}

// NewBox builds a cuboid spanning [min,max]. A Rect's outward normal is
// always +axis, so the three min-side faces are wrapped in FlipFace to make
// FrontFace report the box's outward (-axis) side for them.
func NewBox(min, max core.Point3, mat core.Material) *Box {
	sides := core.NewHittableList(
		NewRect(2, min.X, max.X, min.Y, max.Y, max.Z, mat),              // front  (+z)
		NewFlipFace(NewRect(2, min.X, max.X, min.Y, max.Y, min.Z, mat)), // back   (-z)
		NewRect(1, min.X, max.X, min.Z, max.Z, max.Y, mat),              // top    (+y)
		NewFlipFace(NewRect(1, min.X, max.X, min.Z, max.Z, min.Y, mat)), // bottom (-y)
		NewRect(0, min.Y, max.Y, min.Z, max.Z, max.X, mat),              // right  (+x)
		NewFlipFace(NewRect(0, min.Y, max.Y, min.Z, max.Z, min.X, mat)), // left   (-x)
	)
	return &Box{Min: min, Max: max, sides: sides}
}

// Hit delegates to the aggregate of six sides.
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax)
}

// BoundingBox is exactly [Min, Max].
func (b *Box) BoundingBox(timeStart, timeEnd float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}

// PDFValue is not supported for a cuboid light (sides would need weighting
// by area); use individual Rect lights instead.
func (b *Box) PDFValue(origin core.Point3, direction core.Vec3) float64 { return 0 }

// Random is not supported; see PDFValue.
func (b *Box) Random(origin core.Point3, sampler core.Sampler) core.Vec3 {
	return core.NewVec3(0, 0, 1)
}
