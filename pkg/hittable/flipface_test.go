package hittable

import (
	"math"
	"testing"

	"github.com/nrempel/phototrace/pkg/core"
	"github.com/nrempel/phototrace/pkg/material"
)

// TestFlipFaceIsInvolution checks FlipFace . FlipFace == identity.
func TestFlipFaceIsInvolution(t *testing.T) {
	mat := material.NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5))
	rect := NewRect(2, -1, 1, -1, 1, 0, mat)
	doubled := NewFlipFace(NewFlipFace(rect))

	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))

	want, wantOK := rect.Hit(ray, 0.001, math.Inf(1))
	got, gotOK := doubled.Hit(ray, 0.001, math.Inf(1))

	if wantOK != gotOK || want.FrontFace != got.FrontFace {
		t.Errorf("double FlipFace changed the hit: want FrontFace=%v, got FrontFace=%v", want.FrontFace, got.FrontFace)
	}
	if want.Normal != got.Normal {
		t.Errorf("double FlipFace changed the normal: want %v, got %v", want.Normal, got.Normal)
	}
}

func TestFlipFaceInvertsFrontFaceOnly(t *testing.T) {
	mat := material.NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5))
	rect := NewRect(2, -1, 1, -1, 1, 0, mat)
	flipped := NewFlipFace(rect)

	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))

	want, _ := rect.Hit(ray, 0.001, math.Inf(1))
	got, _ := flipped.Hit(ray, 0.001, math.Inf(1))

	if got.FrontFace == want.FrontFace {
		t.Error("FlipFace did not invert FrontFace")
	}
	if got.Normal != want.Normal {
		t.Errorf("FlipFace must leave Normal unchanged: got %v, want %v", got.Normal, want.Normal)
	}
	if dot := ray.Direction.Dot(got.Normal); dot > 0 {
		t.Errorf("dot(ray.direction, normal) = %v, want <= 0", dot)
	}
}
