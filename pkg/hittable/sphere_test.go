package hittable

import (
	"math"
	"testing"

	"github.com/nrempel/phototrace/pkg/core"
	"github.com/nrempel/phototrace/pkg/material"
)

func TestSphereHitNormalIsUnitAndFacesRay(t *testing.T) {
	mat := material.NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5))
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, mat)
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))

	hit, ok := sphere.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(hit.Normal.Length()-1) > 1e-5 {
		t.Errorf("normal length = %f, want ~1", hit.Normal.Length())
	}
	if ray.Direction.Dot(hit.Normal) > 0 {
		t.Errorf("normal does not face against the ray: dot = %f", ray.Direction.Dot(hit.Normal))
	}
}

func TestSphereUVInUnitSquare(t *testing.T) {
	points := []core.Vec3{
		core.NewVec3(1, 0, 0),
		core.NewVec3(-1, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, -1, 0),
		core.NewVec3(0, 0, 1),
		core.NewVec3(0, 0, -1),
		core.NewVec3(0.577, 0.577, 0.577),
	}
	for _, p := range points {
		u, v := sphereUV(p)
		if u < 0 || u > 1 || v < 0 || v > 1 {
			t.Errorf("sphereUV(%v) = (%f, %f), want both in [0,1]", p, u, v)
		}
	}
}

func TestSphereFromInteriorAlwaysHitsOnce(t *testing.T) {
	mat := material.NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5))
	sphere := NewSphere(core.NewVec3(0, 0, 0), 2, mat)
	sampler := core.NewRandSampler(1)

	for i := 0; i < 200; i++ {
		dir := core.RandomUnitVector(sampler)
		ray := core.NewRay(core.NewVec3(0, 0, 0), dir)
		hit, ok := sphere.Hit(ray, 0.0, math.Inf(1))
		if !ok {
			t.Fatalf("ray from interior point missed the sphere: dir=%v", dir)
		}
		if hit.T <= 0 {
			t.Errorf("expected a positive-parameter hit, got t=%f", hit.T)
		}
		if _, again := sphere.Hit(ray, hit.T+0.001, math.Inf(1)); again {
			t.Errorf("found a second boundary hit past the exit: dir=%v", dir)
		}
	}
}

func TestMovingSphereCenterInterpolates(t *testing.T) {
	mat := material.NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5))
	s := NewMovingSphere(core.NewVec3(-1, 0, 0), core.NewVec3(1, 0, 0), 0, 1, 0.2, mat)

	mid := s.Center(0.5)
	if math.Abs(mid.X) > 1e-9 {
		t.Errorf("center at t=0.5 = %v, want x~0", mid)
	}
	if s.Center(0) != core.NewVec3(-1, 0, 0) {
		t.Errorf("center at t=0 = %v, want (-1,0,0)", s.Center(0))
	}
	if s.Center(1) != core.NewVec3(1, 0, 0) {
		t.Errorf("center at t=1 = %v, want (1,0,0)", s.Center(1))
	}
}

func TestNewSpherePanicsOnNonPositiveRadius(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected NewSphere to panic on zero radius")
		}
	}()
	NewSphere(core.NewVec3(0, 0, 0), 0, material.NewLambertianColor(core.NewVec3(1, 1, 1)))
}
