package material

import (
	"math"
	"testing"

	"github.com/nrempel/phototrace/pkg/core"
)

// TestDielectricNeverAbsorbs covers the invariant that a dielectric never
// absorbs: every ray either reflects or refracts.
func TestDielectricNeverAbsorbs(t *testing.T) {
	mat := NewDielectric(1.5)
	sampler := core.NewRandSampler(3)

	hit := core.HitRecord{
		P:         core.NewVec3(0, 0, 0.5),
		Normal:    core.NewVec3(0, 0, 1),
		FrontFace: true,
	}
	ray := core.NewRay(core.NewVec3(0, 0, -2), core.NewVec3(0, 0, 1))

	for i := 0; i < 1000; i++ {
		_, ok := mat.Scatter(ray, hit, sampler)
		if !ok {
			t.Fatal("Dielectric.Scatter absorbed a ray; it must always scatter")
		}
	}
}

func TestDielectricAttenuationIsWhite(t *testing.T) {
	mat := NewDielectric(1.5)
	sampler := core.NewRandSampler(3)
	hit := core.HitRecord{P: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1), FrontFace: true}
	ray := core.NewRay(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1))

	result, _ := mat.Scatter(ray, hit, sampler)
	if result.Attenuation != core.NewVec3(1, 1, 1) {
		t.Errorf("Dielectric attenuation = %v, want white", result.Attenuation)
	}
}

// TestDielectricRefractionFollowsSnell fires rays into a glass surface at
// known incidence angles and checks that the refracted directions land
// within 5 degrees of Snell's law. Schlick reflection makes some samples
// reflect instead; only the refracted majority is checked, and most
// samples must refract at these angles.
func TestDielectricRefractionFollowsSnell(t *testing.T) {
	const ior = 1.5
	mat := NewDielectric(ior)
	sampler := core.NewRandSampler(11)

	cases := []struct {
		name      string
		incidence float64 // degrees from the surface normal
	}{
		{"head-on", 0},
		{"oblique", 45},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			theta := tc.incidence * math.Pi / 180
			dir := core.NewVec3(math.Sin(theta), 0, math.Cos(theta))
			ray := core.NewRay(core.NewVec3(0, 0, -2), dir)
			hit := core.HitRecord{
				P:         core.Point3{},
				Normal:    core.NewVec3(0, 0, -1),
				FrontFace: true,
			}

			wantAngle := math.Asin(math.Sin(theta) / ior)

			refracted := 0
			const trials = 1000
			for i := 0; i < trials; i++ {
				result, ok := mat.Scatter(ray, hit, sampler)
				if !ok {
					t.Fatal("Dielectric absorbed a ray")
				}
				out := result.Reflection.Specular.Direction.Normalize()
				if out.Z <= 0 {
					continue // reflected by the Fresnel coin flip
				}
				refracted++

				gotAngle := math.Acos(out.Z)
				if math.Abs(gotAngle-wantAngle)*180/math.Pi > 5 {
					t.Fatalf("refraction angle = %.2f deg, want %.2f deg",
						gotAngle*180/math.Pi, wantAngle*180/math.Pi)
				}
			}

			if refracted < trials/2 {
				t.Errorf("only %d/%d samples refracted at %.0f deg incidence", refracted, trials, tc.incidence)
			}
		})
	}
}
