// Package material implements the closed set of surface materials: diffuse
// (Lambertian), reflective (Metal), refractive (Dielectric), emissive
// (DiffuseLight) and participating-medium (Isotropic).
package material

import (
	"math"

	"github.com/nrempel/phototrace/pkg/core"
	"github.com/nrempel/phototrace/pkg/pdf"
	"github.com/nrempel/phototrace/pkg/texture"
)

// Lambertian is a perfectly diffuse surface: it always scatters, weighted
// by a cosine-hemisphere distribution around the surface normal.
type Lambertian struct {
	Tex texture.Texture
}

// NewLambertian wraps a texture as a Lambertian material.
func NewLambertian(tex texture.Texture) *Lambertian {
	return &Lambertian{Tex: tex}
}

// NewLambertianColor is a convenience constructor for a solid-color diffuse
// material.
func NewLambertianColor(albedo core.Color) *Lambertian {
	return &Lambertian{Tex: texture.NewSolid(albedo)}
}

// Scatter always succeeds, proposing a cosine-weighted PDF around the hit
// normal.
func (m *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{
		Attenuation: m.Tex.Value(hit.U, hit.V, hit.P),
		Reflection:  core.Reflection{Scatter: pdf.NewCosine(hit.Normal)},
	}, true
}

// ScatteringPDF returns the cosine-weighted density of the scattered
// direction relative to the hit normal.
func (m *Lambertian) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	cosine := hit.Normal.Dot(scattered.Direction.Normalize())
	return math.Max(0, cosine) / math.Pi
}

// Emitted is always black for a purely diffuse reflector.
func (m *Lambertian) Emitted(hit core.HitRecord, u, v float64, p core.Point3) core.Color {
	return core.Color{}
}
