package texture

import (
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/nrempel/phototrace/pkg/core"
)

// Noise is a marbled Perlin-noise texture: turbulence is summed over
// several octaves of github.com/aquilax/go-perlin noise and fed through a
// sine to produce veins, the classic "marble" procedural material.
type Noise struct {
	gen   *perlin.Perlin
	Scale float64
}

// NewNoise builds a noise texture at the given world-space scale. seed
// makes the pattern reproducible across renders.
func NewNoise(scale float64, seed int64) *Noise {
	const alpha, beta = 2.0, 2.0
	const octaves = 3
	return &Noise{
		gen:   perlin.NewPerlin(alpha, beta, octaves, seed),
		Scale: scale,
	}
}

// Value returns a grayscale marble pattern derived from turbulent noise.
func (n *Noise) Value(u, v float64, p core.Point3) core.Color {
	turb := n.turbulence(p, 7)
	intensity := 0.5 * (1 + math.Sin(n.Scale*p.Z+10*turb))
	return core.NewVec3(1, 1, 1).Multiply(intensity)
}

// turbulence sums successively higher-frequency, lower-amplitude noise
// octaves to produce a less regular pattern than a single noise call.
func (n *Noise) turbulence(p core.Point3, depth int) float64 {
	accum := 0.0
	temp := p
	weight := 1.0

	for i := 0; i < depth; i++ {
		accum += weight * n.gen.Noise3D(temp.X, temp.Y, temp.Z)
		weight *= 0.5
		temp = temp.Multiply(2)
	}

	return math.Abs(accum)
}
