package material

import (
	"github.com/nrempel/phototrace/pkg/core"
	"github.com/nrempel/phototrace/pkg/texture"
)

// DiffuseLight is an area emitter: it never scatters, and emits its
// texture's color only from its front face so a one-sided light (wrapped
// in FlipFace where needed) shines in a single direction.
type DiffuseLight struct {
	Tex texture.Texture
}

// NewDiffuseLight wraps a texture as an emitter.
func NewDiffuseLight(tex texture.Texture) *DiffuseLight {
	return &DiffuseLight{Tex: tex}
}

// NewDiffuseLightColor is a convenience constructor for a solid-color
// emitter.
func NewDiffuseLightColor(emission core.Color) *DiffuseLight {
	return &DiffuseLight{Tex: texture.NewSolid(emission)}
}

// Scatter never succeeds: the ray is absorbed.
func (m *DiffuseLight) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// ScatteringPDF is unused; DiffuseLight never scatters.
func (m *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns the texture color from the front face, black otherwise.
func (m *DiffuseLight) Emitted(hit core.HitRecord, u, v float64, p core.Point3) core.Color {
	if !hit.FrontFace {
		return core.Color{}
	}
	return m.Tex.Value(u, v, p)
}
