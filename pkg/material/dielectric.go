package material

import (
	"math"

	"github.com/nrempel/phototrace/pkg/core"
)

// Dielectric is a transparent, non-conducting surface (glass, water, etc.)
// described by a single index of refraction. It never absorbs: every ray
// either reflects or refracts.
type Dielectric struct {
	IOR float64
}

// NewDielectric builds a dielectric material with the given index of
// refraction. IOR must be > 0; the constructor does not check it.
func NewDielectric(ior float64) *Dielectric {
	return &Dielectric{IOR: ior}
}

// Scatter always succeeds with white attenuation, choosing reflection or
// refraction via total-internal-reflection and Schlick's approximation.
func (m *Dielectric) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	eta := m.IOR
	if hit.FrontFace {
		eta = 1.0 / m.IOR
	}

	unitDir := rayIn.Direction.Normalize()
	cosTheta := math.Min(-unitDir.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))

	cannotRefract := eta*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || schlick(cosTheta, eta) > sampler.Float64() {
		direction = unitDir.Reflect(hit.Normal)
	} else {
		direction = unitDir.Refract(hit.Normal, eta)
	}

	scattered := core.NewRayAtTime(hit.P, direction, rayIn.Time)
	return core.ScatterResult{
		Attenuation: core.NewVec3(1, 1, 1),
		Reflection:  core.Reflection{Specular: &scattered},
	}, true
}

// schlick approximates the Fresnel reflectance for a dielectric interface.
func schlick(cosine, refIdx float64) float64 {
	r0 := (1 - refIdx) / (1 + refIdx)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

// ScatteringPDF is unused for a specular material.
func (m *Dielectric) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted is always black for glass.
func (m *Dielectric) Emitted(hit core.HitRecord, u, v float64, p core.Point3) core.Color {
	return core.Color{}
}
