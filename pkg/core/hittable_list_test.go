package core_test

import (
	"math"
	"testing"

	"github.com/nrempel/phototrace/pkg/core"
	"github.com/nrempel/phototrace/pkg/hittable"
	"github.com/nrempel/phototrace/pkg/material"
)

func TestHittableListReturnsClosestHit(t *testing.T) {
	mat := material.NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5))
	near := hittable.NewSphere(core.NewVec3(0, 0, 2), 0.5, mat)
	far := hittable.NewSphere(core.NewVec3(0, 0, 6), 0.5, mat)

	list := core.NewHittableList(far, near)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	hit, ok := list.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("list missed both spheres")
	}
	if math.Abs(hit.T-1.5) > 1e-9 {
		t.Errorf("closest hit t = %v, want 1.5 (the near sphere)", hit.T)
	}
}

func TestHittableListEmpty(t *testing.T) {
	list := core.NewHittableList()
	if !list.Empty() {
		t.Error("fresh list must report Empty")
	}

	mat := material.NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5))
	list.Add(hittable.NewSphere(core.NewVec3(0, 0, 0), 1, mat))
	if list.Empty() {
		t.Error("list with a member must not report Empty")
	}
}

func TestHittableListPDFValueAveragesMembers(t *testing.T) {
	mat := material.NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5))
	a := hittable.NewSphere(core.NewVec3(0, 0, 5), 1, mat)
	b := hittable.NewSphere(core.NewVec3(0, 5, 0), 1, mat)
	list := core.NewHittableList(a, b)

	origin := core.NewVec3(0, 0, 0)
	dir := core.NewVec3(0, 0, 1) // toward a, away from b

	want := 0.5*a.PDFValue(origin, dir) + 0.5*b.PDFValue(origin, dir)
	got := list.PDFValue(origin, dir)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("list PDFValue = %v, want member average %v", got, want)
	}
}

func TestHittableListBoundingBoxSkipsUnboundable(t *testing.T) {
	mat := material.NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5))
	sphere := hittable.NewSphere(core.NewVec3(0, 0, 0), 1, mat)
	list := core.NewHittableList(sphere, unboundable{})

	box, ok := list.BoundingBox(0, 1)
	if !ok {
		t.Fatal("list with one boundable member must be boundable")
	}
	want, _ := sphere.BoundingBox(0, 1)
	if box != want {
		t.Errorf("list bbox = %v, want the sphere's %v", box, want)
	}
}

// unboundable is a stub hittable with no bounding box, standing in for an
// infinite medium.
type unboundable struct {
	core.NoPDF
}

func (unboundable) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	return core.HitRecord{}, false
}

func (unboundable) BoundingBox(timeStart, timeEnd float64) (core.AABB, bool) {
	return core.AABB{}, false
}
