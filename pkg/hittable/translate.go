package hittable

import "github.com/nrempel/phototrace/pkg/core"

// Translate wraps a hittable, offsetting it in world space. The wrapped
// object sees the ray in its own local frame (origin shifted by -Offset);
// the returned hit point is shifted back into world space.
type Translate struct {
	Object Hittable
	Offset core.Vec3
}

// NewTranslate wraps object with a constant world-space offset.
func NewTranslate(object Hittable, offset core.Vec3) *Translate {
	return &Translate{Object: object, Offset: offset}
}

// Hit shifts the ray into the object's local frame, queries it, then
// shifts the hit point back into world space. The normal is unaffected by
// a pure translation.
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	offsetRay := core.NewRayAtTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	hit, ok := t.Object.Hit(offsetRay, tMin, tMax)
	if !ok {
		return core.HitRecord{}, false
	}

	// Direction is unchanged by translation, so FrontFace/Normal computed
	// in the child's local frame already hold in world space.
	hit.P = hit.P.Add(t.Offset)
	return hit, true
}

// BoundingBox shifts the child's box by Offset.
func (t *Translate) BoundingBox(timeStart, timeEnd float64) (core.AABB, bool) {
	box, ok := t.Object.BoundingBox(timeStart, timeEnd)
	if !ok {
		return core.AABB{}, false
	}
	return core.NewAABB(box.Min.Add(t.Offset), box.Max.Add(t.Offset)), true
}

// PDFValue delegates to the child with the origin shifted into its local
// frame.
func (t *Translate) PDFValue(origin core.Point3, direction core.Vec3) float64 {
	return t.Object.PDFValue(origin.Subtract(t.Offset), direction)
}

// Random delegates to the child with the origin shifted into its local
// frame; the resulting direction needs no further transform since
// translation doesn't affect directions.
func (t *Translate) Random(origin core.Point3, sampler core.Sampler) core.Vec3 {
	return t.Object.Random(origin.Subtract(t.Offset), sampler)
}
