package core

import (
	"math"
	"math/rand"
)

// Sampler is the uniform-float source consumed by the integrator and every
// probability distribution. A Sampler is never shared between goroutines;
// each render worker owns one (see the concurrency notes in DESIGN.md).
type Sampler interface {
	// Float64 returns a uniform sample in [0,1).
	Float64() float64
	// Range returns a uniform sample in [a,b).
	Range(a, b float64) float64
}

// RandSampler adapts the standard library's *rand.Rand to the Sampler
// interface. It is the only concrete Sampler the renderer ships; callers
// needing deterministic output construct one with a fixed seed.
type RandSampler struct {
	rnd *rand.Rand
}

// NewRandSampler seeds a new thread-local sampler. Workers must each get
// their own instance: *rand.Rand is not safe for concurrent use.
func NewRandSampler(seed int64) *RandSampler {
	return &RandSampler{rnd: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform sample in [0,1).
func (s *RandSampler) Float64() float64 {
	return s.rnd.Float64()
}

// Range returns a uniform sample in [a,b).
func (s *RandSampler) Range(a, b float64) float64 {
	return a + (b-a)*s.rnd.Float64()
}

// RandomInUnitDisk returns a point uniformly sampled from the unit disk in
// the XY plane, used for thin-lens defocus blur.
func RandomInUnitDisk(s Sampler) Vec3 {
	for {
		p := Vec3{X: s.Range(-1, 1), Y: s.Range(-1, 1)}
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomUnitVector returns a uniformly distributed point on the unit sphere,
// via rejection sampling of the enclosing cube.
func RandomUnitVector(s Sampler) Vec3 {
	for {
		p := Vec3{X: s.Range(-1, 1), Y: s.Range(-1, 1), Z: s.Range(-1, 1)}
		lensq := p.LengthSquared()
		if lensq > 1e-160 && lensq <= 1 {
			return p.Multiply(1 / math.Sqrt(lensq))
		}
	}
}

// ONB is an orthonormal basis built from a single axis vector
// (conventionally a surface normal), with U x V = -W; Local transforms a
// vector from the basis's local frame into world space.
type ONB struct {
	U, V, W Vec3
}

// NewONB builds an orthonormal basis with W aligned to n.
func NewONB(n Vec3) ONB {
	w := n.Normalize()
	var a Vec3
	if math.Abs(w.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	} else {
		a = NewVec3(1, 0, 0)
	}
	v := w.Cross(a).Normalize()
	u := w.Cross(v)
	return ONB{U: u, V: v, W: w}
}

// Local transforms a local-frame vector into world space.
func (b ONB) Local(v Vec3) Vec3 {
	return b.U.Multiply(v.X).Add(b.V.Multiply(v.Y)).Add(b.W.Multiply(v.Z))
}

// RandomCosineDirection draws a cosine-weighted direction in the hemisphere
// around normal.
func RandomCosineDirection(normal Vec3, s Sampler) Vec3 {
	r1 := s.Float64()
	r2 := s.Float64()

	phi := 2 * math.Pi * r1
	z := math.Sqrt(1 - r2)
	x := math.Cos(phi) * math.Sqrt(r2)
	y := math.Sin(phi) * math.Sqrt(r2)

	basis := NewONB(normal)
	return basis.Local(NewVec3(x, y, z))
}
