package hittable

import (
	"math"

	"github.com/nrempel/phototrace/pkg/core"
)

// Rotate wraps a hittable with a rotation of degrees around an arbitrary
// unit axis, using Rodrigues' rotation formula. The object's AABB is
// precomputed once, at construction, by rotating its eight corners and
// taking the extrema.
type Rotate struct {
	Object Hittable
	Axis   core.Vec3 // unit axis
	Sin    float64
	Cos    float64
	box    core.AABB
	hasBox bool
}

// NewRotate wraps object with a rotation of degrees around axis.
func NewRotate(object Hittable, axis core.Vec3, degrees float64) *Rotate {
	radians := degrees * math.Pi / 180
	r := &Rotate{
		Object: object,
		Axis:   axis.Normalize(),
		Sin:    math.Sin(radians),
		Cos:    math.Cos(radians),
	}

	box, ok := object.BoundingBox(0, 1)
	r.hasBox = ok
	if !ok {
		return r
	}

	minPt := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	maxPt := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := lerpCorner(i, box.Min.X, box.Max.X)
				y := lerpCorner(j, box.Min.Y, box.Max.Y)
				z := lerpCorner(k, box.Min.Z, box.Max.Z)

				corner := r.rotateVector(core.NewVec3(x, y, z), 1)
				minPt = minPt.Min(corner)
				maxPt = maxPt.Max(corner)
			}
		}
	}

	r.box = core.NewAABB(minPt, maxPt)
	return r
}

func lerpCorner(i int, lo, hi float64) float64 {
	if i == 0 {
		return lo
	}
	return hi
}

// rotateVector applies Rodrigues' rotation formula; sign flips the
// direction of rotation (used to invert the rotation for incoming rays).
func (r *Rotate) rotateVector(v core.Vec3, sign float64) core.Vec3 {
	sin := sign * r.Sin
	cos := r.Cos
	k := r.Axis

	term1 := v.Multiply(cos)
	term2 := k.Cross(v).Multiply(sin)
	term3 := k.Multiply(k.Dot(v) * (1 - cos))
	return term1.Add(term2).Add(term3)
}

// Hit rotates the incoming ray by the inverse rotation, queries the child,
// then rotates the resulting point and normal back.
func (r *Rotate) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	localOrigin := r.rotateVector(ray.Origin, -1)
	localDir := r.rotateVector(ray.Direction, -1)
	localRay := core.NewRayAtTime(localOrigin, localDir, ray.Time)

	hit, ok := r.Object.Hit(localRay, tMin, tMax)
	if !ok {
		return core.HitRecord{}, false
	}

	hit.P = r.rotateVector(hit.P, 1)
	hit.Normal = r.rotateVector(hit.Normal, 1)
	return hit, true
}

// BoundingBox returns the precomputed rotated box.
func (r *Rotate) BoundingBox(timeStart, timeEnd float64) (core.AABB, bool) {
	return r.box, r.hasBox
}

// PDFValue rotates origin and direction into the child's local frame.
func (r *Rotate) PDFValue(origin core.Point3, direction core.Vec3) float64 {
	return r.Object.PDFValue(r.rotateVector(origin, -1), r.rotateVector(direction, -1))
}

// Random samples in the child's local frame and rotates the result back.
func (r *Rotate) Random(origin core.Point3, sampler core.Sampler) core.Vec3 {
	return r.rotateVector(r.Object.Random(r.rotateVector(origin, -1), sampler), 1)
}
