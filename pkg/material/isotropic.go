package material

import (
	"github.com/nrempel/phototrace/pkg/core"
	"github.com/nrempel/phototrace/pkg/texture"
)

// Isotropic scatters uniformly in every direction; it is the phase
// function for ConstantMedium's participating-media volumes.
type Isotropic struct {
	Tex texture.Texture
}

// NewIsotropic wraps a texture as an isotropic phase function.
func NewIsotropic(tex texture.Texture) *Isotropic {
	return &Isotropic{Tex: tex}
}

// NewIsotropicColor is a convenience constructor for a solid-color medium.
func NewIsotropicColor(albedo core.Color) *Isotropic {
	return &Isotropic{Tex: texture.NewSolid(albedo)}
}

// Scatter always succeeds, specularly, in a direction drawn uniformly from
// the unit sphere.
func (m *Isotropic) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	scattered := core.NewRayAtTime(hit.P, core.RandomUnitVector(sampler), rayIn.Time)
	return core.ScatterResult{
		Attenuation: m.Tex.Value(hit.U, hit.V, hit.P),
		Reflection:  core.Reflection{Specular: &scattered},
	}, true
}

// ScatteringPDF is unused for this specular phase function.
func (m *Isotropic) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted is always black.
func (m *Isotropic) Emitted(hit core.HitRecord, u, v float64, p core.Point3) core.Color {
	return core.Color{}
}
