package material

import "github.com/nrempel/phototrace/pkg/core"

// Metal is a specular reflector with optional roughness ("fuzz"): the
// reflected direction is perturbed by a random offset scaled by Fuzz.
type Metal struct {
	Albedo core.Color
	Fuzz   float64
}

// NewMetal clamps fuzz to [0,1] at construction time, per the material
// contract's invariant.
func NewMetal(albedo core.Color, fuzz float64) *Metal {
	if fuzz < 0 {
		fuzz = 0
	}
	if fuzz > 1 {
		fuzz = 1
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter reflects the incoming ray and perturbs it by Fuzz times a random
// unit vector. A reflection that ends up pointing into the surface, or that
// the fuzz offset cancels outright, is treated as absorption.
func (m *Metal) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(hit.Normal)
	reflected = reflected.Add(core.RandomUnitVector(sampler).Multiply(m.Fuzz))
	if reflected.NearZero() {
		return core.ScatterResult{}, false
	}
	reflected = reflected.Normalize()

	if reflected.Dot(hit.Normal) <= 0 {
		return core.ScatterResult{}, false
	}

	scattered := core.NewRayAtTime(hit.P, reflected, rayIn.Time)
	return core.ScatterResult{
		Attenuation: m.Albedo,
		Reflection:  core.Reflection{Specular: &scattered},
	}, true
}

// ScatteringPDF is unused for a specular material; the contract allows a
// trivial default since Reflection.IsSpecular() short-circuits the
// integrator before this is consulted.
func (m *Metal) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted is always black for metal.
func (m *Metal) Emitted(hit core.HitRecord, u, v float64, p core.Point3) core.Color {
	return core.Color{}
}
