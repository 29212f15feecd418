package core

// HittableList is a flat, unaccelerated aggregate of hittables. It is used
// for the "lights" set handed to the integrator (linear scan over a
// handful of emitters is cheap) and for small fixed aggregates such as a
// Box's six sides. BVH leaves hold their hittable directly, not a list.
type HittableList struct {
	Objects []Hittable
}

// NewHittableList builds a list from the given objects.
func NewHittableList(objects ...Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends an object to the list.
func (l *HittableList) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
}

// Hit returns the closest intersection among all objects.
func (l *HittableList) Hit(ray Ray, tMin, tMax float64) (HitRecord, bool) {
	var closest HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, obj := range l.Objects {
		if hit, ok := obj.Hit(ray, tMin, closestSoFar); ok {
			hitAnything = true
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, hitAnything
}

// BoundingBox unions the bounding boxes of every boundable member.
func (l *HittableList) BoundingBox(timeStart, timeEnd float64) (AABB, bool) {
	if len(l.Objects) == 0 {
		return AABB{}, false
	}

	box := NewEmptyAABB()
	first := true
	for _, obj := range l.Objects {
		b, ok := obj.BoundingBox(timeStart, timeEnd)
		if !ok {
			continue
		}
		if first {
			box = b
			first = false
		} else {
			box = box.Union(b)
		}
	}
	if first {
		return AABB{}, false
	}
	return box, true
}

// PDFValue returns the average of each member's PDFValue, i.e. uniform
// selection among the members followed by that member's own sampling
// density.
func (l *HittableList) PDFValue(origin Point3, direction Vec3) float64 {
	if len(l.Objects) == 0 {
		return 0
	}
	weight := 1.0 / float64(len(l.Objects))
	sum := 0.0
	for _, obj := range l.Objects {
		sum += weight * obj.PDFValue(origin, direction)
	}
	return sum
}

// Random picks a uniformly random member and samples a direction from it.
func (l *HittableList) Random(origin Point3, sampler Sampler) Vec3 {
	if len(l.Objects) == 0 {
		return NewVec3(1, 0, 0)
	}
	idx := int(sampler.Range(0, float64(len(l.Objects))))
	if idx >= len(l.Objects) {
		idx = len(l.Objects) - 1
	}
	return l.Objects[idx].Random(origin, sampler)
}

// Empty reports whether the list has no members.
func (l *HittableList) Empty() bool {
	return len(l.Objects) == 0
}
