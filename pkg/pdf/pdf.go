// Package pdf implements the importance-sampling distributions used by the
// integrator: a cosine-weighted hemisphere distribution for diffuse
// scattering, a distribution that samples a hittable's surface directly
// (used for lights), and a 50/50 mixture of the two for multiple
// importance sampling.
package pdf

import (
	"math"

	"github.com/nrempel/phototrace/pkg/core"
)

// Cosine is a cosine-weighted hemisphere distribution around a surface
// normal. It is the scattering distribution for Lambertian materials.
type Cosine struct {
	basis core.ONB
}

// NewCosine builds a cosine PDF oriented around normal w.
func NewCosine(w core.Vec3) Cosine {
	return Cosine{basis: core.NewONB(w)}
}

// Value returns max(0, cos theta)/pi for the angle between direction and
// the basis normal.
func (p Cosine) Value(direction core.Vec3) float64 {
	cosine := direction.Normalize().Dot(p.basis.W)
	return math.Max(0, cosine) / math.Pi
}

// Generate draws a cosine-weighted direction in the hemisphere around the
// basis normal.
func (p Cosine) Generate(sampler core.Sampler) core.Vec3 {
	return core.RandomCosineDirection(p.basis.W, sampler)
}

// Object samples directions toward a hittable (typically a light), using
// the hittable's own PDFValue/Random. It delegates entirely; see the
// per-primitive PDFValue/Random implementations in package hittable.
type Object struct {
	hittable core.Hittable
	origin   core.Point3
}

// NewObject builds a PDF that samples h as observed from origin.
func NewObject(h core.Hittable, origin core.Point3) Object {
	return Object{hittable: h, origin: origin}
}

// Value delegates to the hittable's PDFValue.
func (p Object) Value(direction core.Vec3) float64 {
	return p.hittable.PDFValue(p.origin, direction)
}

// Generate delegates to the hittable's Random.
func (p Object) Generate(sampler core.Sampler) core.Vec3 {
	return p.hittable.Random(p.origin, sampler)
}

// Mixture combines two PDFs with equal weight, used to balance light
// sampling against the material's own scattering distribution (multiple
// importance sampling).
type Mixture struct {
	P0, P1 core.PDF
}

// NewMixture builds an equal-weight mixture of p0 and p1.
func NewMixture(p0, p1 core.PDF) Mixture {
	return Mixture{P0: p0, P1: p1}
}

// Value returns the average of the two component densities.
func (p Mixture) Value(direction core.Vec3) float64 {
	return 0.5*p.P0.Value(direction) + 0.5*p.P1.Value(direction)
}

// Generate flips a fair coin to decide which component generates the
// direction.
func (p Mixture) Generate(sampler core.Sampler) core.Vec3 {
	if sampler.Float64() < 0.5 {
		return p.P0.Generate(sampler)
	}
	return p.P1.Generate(sampler)
}
