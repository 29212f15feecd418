// Package integrator implements the recursive Monte-Carlo radiance
// estimator: the path tracer's core light-transport loop.
package integrator

import (
	"math"

	"github.com/nrempel/phototrace/pkg/core"
	"github.com/nrempel/phototrace/pkg/pdf"
)

// PathTracingIntegrator evaluates radiance along a camera ray by recursive
// sampling, combining light sampling and material sampling via a 50/50
// mixture PDF (multiple importance sampling).
type PathTracingIntegrator struct {
	env core.Environment
}

// NewPathTracingIntegrator builds an integrator bound to env's scene,
// lights, and background.
func NewPathTracingIntegrator(env core.Environment) *PathTracingIntegrator {
	return &PathTracingIntegrator{env: env}
}

// Radiance estimates the radiance arriving along ray, recursing up to
// env.MaxDepth bounces. It never returns a NaN component: any NaN produced
// by a near-zero mixture PDF is replaced with 0 before being folded into the
// running sum.
func (pt *PathTracingIntegrator) Radiance(ray core.Ray, sampler core.Sampler, depth int) core.Color {
	if depth <= 0 {
		return core.Color{}
	}

	hit, ok := pt.env.SceneRoot.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		return pt.env.Background
	}

	emitted := hit.Material.Emitted(hit, hit.U, hit.V, hit.P)

	scatter, scattered := hit.Material.Scatter(ray, hit, sampler)
	if !scattered {
		return emitted
	}

	if scatter.Reflection.IsSpecular() {
		incoming := pt.Radiance(*scatter.Reflection.Specular, sampler, depth-1)
		return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
	}

	return emitted.Add(pt.scatteredContribution(ray, hit, scatter, sampler, depth))
}

// scatteredContribution handles the non-specular (importance-sampled) case:
// it mixes light sampling with the material's own scattering PDF, unless
// the lights set is empty, in which case it falls back to the material PDF
// alone rather than constructing a degenerate mixture and relying on the
// NaN guard to zero it out.
func (pt *PathTracingIntegrator) scatteredContribution(ray core.Ray, hit core.HitRecord, scatter core.ScatterResult, sampler core.Sampler, depth int) core.Color {
	materialPDF := scatter.Reflection.Scatter

	var mix core.PDF
	if pt.env.Lights == nil || lightsEmpty(pt.env.Lights) {
		mix = materialPDF
	} else {
		mix = pdf.NewMixture(pdf.NewObject(pt.env.Lights, hit.P), materialPDF)
	}

	dir := mix.Generate(sampler)
	scattered := core.NewRayAtTime(hit.P, dir, ray.Time)
	pdfVal := mix.Value(scattered.Direction)
	if pdfVal <= 0 {
		return core.Color{}
	}

	scatteringPDF := hit.Material.ScatteringPDF(ray, hit, scattered)
	incoming := pt.Radiance(scattered, sampler, depth-1)

	contribution := scatter.Attenuation.Multiply(scatteringPDF / pdfVal).MultiplyVec(incoming)
	return guardNaN(contribution)
}

// emptyHittable is satisfied by core.HittableList; a smaller interface is
// used here so the integrator doesn't need to import package core's
// concrete list type twice over.
type emptyHittable interface {
	Empty() bool
}

func lightsEmpty(h core.Hittable) bool {
	e, ok := h.(emptyHittable)
	return ok && e.Empty()
}

// guardNaN replaces any NaN component with 0, per the NaN policy: a
// near-zero mixture PDF can produce a 0/0 division.
func guardNaN(c core.Color) core.Color {
	return core.NewVec3(guardComponent(c.X), guardComponent(c.Y), guardComponent(c.Z))
}

func guardComponent(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
