package hittable

import (
	"math"
	"sync"

	"github.com/nrempel/phototrace/pkg/core"
	"github.com/nrempel/phototrace/pkg/material"
)

// ConstantMedium is a homogeneous participating medium (fog, smoke): a ray
// passing through Boundary has a constant per-unit-distance probability of
// scattering, sampled by exponential free-flight distance. It only behaves
// correctly for convex boundaries.
//
// Hit is called from the Hittable interface, which carries no per-worker
// Sampler, so a medium shared across render goroutines needs its own
// mutex-guarded source for the free-flight draw; this is the one place in
// the hittable tree that pays for a lock instead of a thread-local RNG.
type ConstantMedium struct {
	Boundary      Hittable
	NegInvDensity float64
	Phase         core.Material

	mu   sync.Mutex
	rand *core.RandSampler
}

// NewConstantMedium builds a fog-like volume of the given density bounded
// by boundary, scattering isotropically with albedo.
func NewConstantMedium(boundary Hittable, density float64, albedo core.Color) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		NegInvDensity: -1 / density,
		Phase:         material.NewIsotropicColor(albedo),
		rand:          core.NewRandSampler(1),
	}
}

// Hit finds the ray's entry/exit through Boundary, then samples an
// exponential free-flight distance; if that distance lands inside the
// boundary the ray scattered inside the medium.
func (c *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	c.mu.Lock()
	u := c.rand.Float64()
	c.mu.Unlock()

	rec1, ok := c.Boundary.Hit(ray, math.Inf(-1), math.Inf(1))
	if !ok {
		return core.HitRecord{}, false
	}

	rec2, ok := c.Boundary.Hit(ray, rec1.T+0.0001, math.Inf(1))
	if !ok {
		return core.HitRecord{}, false
	}

	if rec1.T < tMin {
		rec1.T = tMin
	}
	if rec2.T > tMax {
		rec2.T = tMax
	}
	if rec1.T >= rec2.T {
		return core.HitRecord{}, false
	}
	if rec1.T < 0 {
		rec1.T = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (rec2.T - rec1.T) * rayLength
	hitDistance := c.NegInvDensity * math.Log(u)

	if hitDistance > distanceInsideBoundary {
		return core.HitRecord{}, false
	}

	t := rec1.T + hitDistance/rayLength
	rec := core.HitRecord{
		T:         t,
		P:         ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary; isotropic phase ignores it
		FrontFace: true,
		Material:  c.Phase,
	}
	return rec, true
}

// BoundingBox delegates to the boundary's box.
func (c *ConstantMedium) BoundingBox(timeStart, timeEnd float64) (core.AABB, bool) {
	return c.Boundary.BoundingBox(timeStart, timeEnd)
}

// PDFValue is not supported; a volumetric medium is never sampled as a
// light.
func (c *ConstantMedium) PDFValue(origin core.Point3, direction core.Vec3) float64 { return 0 }

// Random is not supported; see PDFValue.
func (c *ConstantMedium) Random(origin core.Point3, sampler core.Sampler) core.Vec3 {
	return core.NewVec3(0, 0, 1)
}
