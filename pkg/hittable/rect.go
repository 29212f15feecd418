package hittable

import (
	"math"

	"github.com/nrempel/phototrace/pkg/core"
)

// rectOtherAxes returns the two axes (in increasing order) that vary over
// the rectangle, given the axis held constant.
func rectOtherAxes(constantAxis int) (a0, a1 int) {
	switch constantAxis {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}

// Rect is an axis-aligned rectangle: constantAxis is held fixed at K, and
// the rectangle spans [P0,P1] x [Q0,Q1] along the other two axes (in
// increasing axis order).
type Rect struct {
	ConstantAxis int
	P0, P1       float64
	Q0, Q1       float64
	K            float64
	Material     core.Material
}

// NewRect builds an axis-aligned rectangle. constantAxis is 0=X, 1=Y, 2=Z.
func NewRect(constantAxis int, p0, p1, q0, q1, k float64, mat core.Material) *Rect {
	return &Rect{ConstantAxis: constantAxis, P0: p0, P1: p1, Q0: q0, Q1: q1, K: k, Material: mat}
}

// Hit solves for the plane intersection and rejects points outside the
// rectangle's bounds.
func (r *Rect) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	axisP, axisQ := rectOtherAxes(r.ConstantAxis)

	denom := ray.Direction.Axis(r.ConstantAxis)
	if denom == 0 {
		return core.HitRecord{}, false
	}
	t := (r.K - ray.Origin.Axis(r.ConstantAxis)) / denom
	if t < tMin || t > tMax {
		return core.HitRecord{}, false
	}

	p := ray.Origin.Axis(axisP) + t*ray.Direction.Axis(axisP)
	q := ray.Origin.Axis(axisQ) + t*ray.Direction.Axis(axisQ)
	if p < r.P0 || p > r.P1 || q < r.Q0 || q > r.Q1 {
		return core.HitRecord{}, false
	}

	u := (p - r.P0) / (r.P1 - r.P0)
	v := (q - r.Q0) / (r.Q1 - r.Q0)

	outwardNormal := axisUnit(r.ConstantAxis)
	hitPoint := ray.At(t)

	rec := core.HitRecord{T: t, P: hitPoint, Material: r.Material, U: u, V: v}
	rec.SetFaceNormal(ray, outwardNormal)
	return rec, true
}

// BoundingBox inflates the zero-thickness rectangle by a small epsilon
// along the constant axis so it is never degenerate in a BVH.
func (r *Rect) BoundingBox(timeStart, timeEnd float64) (core.AABB, bool) {
	const eps = 1e-4
	axisP, axisQ := rectOtherAxes(r.ConstantAxis)

	min := axisVec(r.ConstantAxis, r.K-eps, axisP, r.P0, axisQ, r.Q0)
	max := axisVec(r.ConstantAxis, r.K+eps, axisP, r.P1, axisQ, r.Q1)
	return core.NewAABB(min, max), true
}

// PDFValue returns d^2 / (cos(theta) * area), the standard area-light PDF
// conversion from area measure to solid angle measure.
func (r *Rect) PDFValue(origin core.Point3, direction core.Vec3) float64 {
	hit, ok := r.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1))
	if !ok {
		return 0
	}

	area := (r.P1 - r.P0) * (r.Q1 - r.Q0)
	distSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(hit.Normal)) / direction.Length()
	if cosine < 1e-8 {
		return 0
	}

	return distSquared / (cosine * area)
}

// Random draws a uniform point on the rectangle and returns the direction
// from origin to it.
func (r *Rect) Random(origin core.Point3, sampler core.Sampler) core.Vec3 {
	axisP, axisQ := rectOtherAxes(r.ConstantAxis)
	p := sampler.Range(r.P0, r.P1)
	q := sampler.Range(r.Q0, r.Q1)
	point := axisVec(r.ConstantAxis, r.K, axisP, p, axisQ, q)
	return point.Subtract(origin)
}

// axisUnit returns the unit vector along the given axis.
func axisUnit(axis int) core.Vec3 {
	switch axis {
	case 0:
		return core.NewVec3(1, 0, 0)
	case 1:
		return core.NewVec3(0, 1, 0)
	default:
		return core.NewVec3(0, 0, 1)
	}
}

// axisVec builds a Vec3 by assigning values to three named axes.
func axisVec(axisA int, a float64, axisB int, b float64, axisC int, c float64) core.Vec3 {
	var v core.Vec3
	assign := func(axis int, val float64) {
		switch axis {
		case 0:
			v.X = val
		case 1:
			v.Y = val
		default:
			v.Z = val
		}
	}
	assign(axisA, a)
	assign(axisB, b)
	assign(axisC, c)
	return v
}
