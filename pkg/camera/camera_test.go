package camera

import (
	"math"
	"testing"

	"github.com/nrempel/phototrace/pkg/core"
)

func TestGetRayNoApertureOriginatesAtLookFrom(t *testing.T) {
	cam := New(Config{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFovDegrees: 90,
		Aspect:      1,
		Aperture:    0,
		FocusDist:   1,
	})
	sampler := core.NewRandSampler(1)

	ray := cam.GetRay(0.5, 0.5, sampler)
	if ray.Origin != (core.Point3{}) {
		t.Errorf("zero-aperture camera ray origin = %v, want origin point", ray.Origin)
	}
}

func TestGetRayCenterPointsTowardLookAt(t *testing.T) {
	cam := New(Config{
		LookFrom:    core.NewVec3(0, 0, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFovDegrees: 90,
		Aspect:      1,
		Aperture:    0,
		FocusDist:   3,
	})
	sampler := core.NewRandSampler(1)

	ray := cam.GetRay(0.5, 0.5, sampler)
	dir := ray.Direction.Normalize()
	want := core.NewVec3(0, 0, -1)
	if dir.Subtract(want).Length() > 1e-6 {
		t.Errorf("center ray direction = %v, want ~%v", dir, want)
	}
}

func TestGetRayTimeWithinExposureInterval(t *testing.T) {
	cam := New(Config{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFovDegrees: 90,
		Aspect:      1,
		Aperture:    0,
		FocusDist:   1,
		TimeStart:   2,
		TimeEnd:     5,
	})
	sampler := core.NewRandSampler(1)

	for i := 0; i < 100; i++ {
		ray := cam.GetRay(0.5, 0.5, sampler)
		if ray.Time < 2 || ray.Time > 5 {
			t.Fatalf("ray time %f outside exposure interval [2,5]", ray.Time)
		}
	}
}

func TestGetRayDefocusBlurStaysNearFocusPlane(t *testing.T) {
	cam := New(Config{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFovDegrees: 90,
		Aspect:      1,
		Aperture:    2,
		FocusDist:   10,
	})
	sampler := core.NewRandSampler(1)

	for i := 0; i < 50; i++ {
		ray := cam.GetRay(0.5, 0.5, sampler)
		// Direction already spans origin+offset -> target on the focus
		// plane, so t=1 lands exactly on that plane regardless of lens
		// offset.
		focusPoint := ray.At(1)
		if math.Abs(focusPoint.Z-(-10)) > 1e-6 {
			t.Errorf("ray did not pass through the focus plane at z=-10: point=%v", focusPoint)
		}
	}
}
