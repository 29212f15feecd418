// Package hittable implements the primitive shapes and the composable
// wrappers (translate, rotate, flip-face, constant-density medium) that
// can be hit-tested, bounded and sampled as light sources.
package hittable

import (
	"math"

	"github.com/nrempel/phototrace/pkg/core"
)

// Sphere is a (possibly linearly moving) sphere. A static sphere has
// Center1 == Center0 and an empty time range, so Center(t) is constant.
type Sphere struct {
	Center0, Center1 core.Point3
	TimeStart        float64
	TimeEnd          float64
	Radius           float64
	Material         core.Material
}

// NewSphere builds a static sphere. Radius must be positive and Center
// finite; violating either is a construction-time fatal error.
func NewSphere(center core.Point3, radius float64, mat core.Material) *Sphere {
	if radius <= 0 {
		panic("hittable: sphere radius must be positive")
	}
	for _, c := range []float64{center.X, center.Y, center.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			panic("hittable: sphere center must be finite")
		}
	}
	return &Sphere{Center0: center, Center1: center, Radius: radius, Material: mat}
}

// NewMovingSphere builds a sphere whose center interpolates linearly from
// center0 at timeStart to center1 at timeEnd.
func NewMovingSphere(center0, center1 core.Point3, timeStart, timeEnd, radius float64, mat core.Material) *Sphere {
	if radius <= 0 {
		panic("hittable: sphere radius must be positive")
	}
	return &Sphere{Center0: center0, Center1: center1, TimeStart: timeStart, TimeEnd: timeEnd, Radius: radius, Material: mat}
}

// Center returns the sphere's center at ray time t.
func (s *Sphere) Center(t float64) core.Point3 {
	if s.TimeEnd <= s.TimeStart {
		return s.Center0
	}
	frac := (t - s.TimeStart) / (s.TimeEnd - s.TimeStart)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(frac))
}

// sphereUV computes (u,v) surface parameters from a point on the unit
// sphere, in [0,1]^2.
func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

// Hit solves the ray-sphere quadratic, preferring the smaller positive root
// inside (tMin, tMax).
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	center := s.Center(ray.Time)
	oc := ray.Origin.Subtract(center)

	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return core.HitRecord{}, false
		}
	}

	p := ray.At(root)
	outwardNormal := p.Subtract(center).Multiply(1.0 / s.Radius)
	u, v := sphereUV(outwardNormal)

	rec := core.HitRecord{T: root, P: p, Material: s.Material, U: u, V: v}
	rec.SetFaceNormal(ray, outwardNormal)
	return rec, true
}

// BoundingBox is the union of the radius-padded boxes at the start and end
// of the sphere's motion over [timeStart, timeEnd].
func (s *Sphere) BoundingBox(timeStart, timeEnd float64) (core.AABB, bool) {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	box0 := core.NewAABB(s.Center(timeStart).Subtract(r), s.Center(timeStart).Add(r))
	box1 := core.NewAABB(s.Center(timeEnd).Subtract(r), s.Center(timeEnd).Add(r))
	return box0.Union(box1), true
}

// PDFValue returns 1/Omega for a cone subtending the sphere from origin,
// if the cone-sampled direction would actually hit the sphere.
func (s *Sphere) PDFValue(origin core.Point3, direction core.Vec3) float64 {
	if _, ok := s.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1)); !ok {
		return 0
	}

	center := s.Center(0)
	distSq := center.Subtract(origin).LengthSquared()
	cosThetaMax := math.Sqrt(math.Max(0, 1-s.Radius*s.Radius/distSq))
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	return 1 / solidAngle
}

// Random draws a direction toward the sphere's solid angle as seen from
// origin, using cone sampling in a basis built from the direction to the
// sphere's center.
func (s *Sphere) Random(origin core.Point3, sampler core.Sampler) core.Vec3 {
	center := s.Center(0)
	direction := center.Subtract(origin)
	distSq := direction.LengthSquared()
	basis := core.NewONB(direction)

	r1 := sampler.Float64()
	r2 := sampler.Float64()
	z := 1 + r2*(math.Sqrt(math.Max(0, 1-s.Radius*s.Radius/distSq))-1)

	phi := 2 * math.Pi * r1
	sinTheta := math.Sqrt(math.Max(0, 1-z*z))
	x := math.Cos(phi) * sinTheta
	y := math.Sin(phi) * sinTheta

	return basis.Local(core.NewVec3(x, y, z))
}
