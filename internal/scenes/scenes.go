// Package scenes builds the demo scenes the CLI can render: a single
// matte sphere, a Cornell box, a moving sphere exercising motion blur, a
// BVH-stressing field of random spheres, and two Perlin-marble spheres.
package scenes

import (
	"math/rand"

	"github.com/nrempel/phototrace/pkg/camera"
	"github.com/nrempel/phototrace/pkg/core"
	"github.com/nrempel/phototrace/pkg/hittable"
	"github.com/nrempel/phototrace/pkg/material"
	"github.com/nrempel/phototrace/pkg/texture"
)

// Scene bundles a scene root, its lights, the camera that frames it, and
// the background color for rays that miss everything; the CLI fills in the
// remaining Environment fields (dimensions, samples, depth).
type Scene struct {
	Root       core.Hittable
	Lights     core.Hittable
	Camera     core.Camera
	Background core.Color
}

// skyGradient is the daylight background the outdoor scenes share.
var skyGradient = core.NewVec3(0.7, 0.8, 1.0)

// Builder constructs a Scene for the given aspect ratio. The Cornell box
// only makes visual sense at a particular aspect; its builder ignores the
// parameter and returns its native square framing.
type Builder func(aspect float64) Scene

// Builders maps a scene name to its constructor, for CLI lookup.
var Builders = map[string]Builder{
	"single-sphere":  SingleSphere,
	"moving-sphere":  MovingSphere,
	"cornell-box":    CornellBox,
	"spheres":        RandomSpheres,
	"perlin-spheres": PerlinSpheres,
}

// SingleSphere is the minimal smoke-test scene: one matte gray sphere at
// the origin, lit only by the constant sky-blue background.
func SingleSphere(aspect float64) Scene {
	ground := material.NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5))
	sphere := hittable.NewSphere(core.NewVec3(0, 0, 0), 0.5, ground)

	world := core.NewHittableList(sphere)
	bvh := core.NewBVH(world.Objects, 0, 1, rand.New(rand.NewSource(1)))

	cam := camera.New(camera.Config{
		LookFrom:    core.NewVec3(0, 0, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFovDegrees: 90,
		Aspect:      aspect,
		Aperture:    0,
		FocusDist:   3,
	})

	return Scene{Root: bvh, Lights: core.NewHittableList(), Camera: cam, Background: skyGradient}
}

// MovingSphere exercises motion blur: a sphere translating across the
// frame during the exposure interval.
func MovingSphere(aspect float64) Scene {
	mat := material.NewLambertianColor(core.NewVec3(0.8, 0.3, 0.3))
	sphere := hittable.NewMovingSphere(
		core.NewVec3(-0.5, 0, -1), core.NewVec3(0.5, 0, -1),
		0, 1, 0.3, mat,
	)

	world := core.NewHittableList(sphere)
	bvh := core.NewBVH(world.Objects, 0, 1, rand.New(rand.NewSource(1)))

	cam := camera.New(camera.Config{
		LookFrom:    core.NewVec3(0, 0, 2),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFovDegrees: 60,
		Aspect:      aspect,
		Aperture:    0,
		FocusDist:   3,
		TimeStart:   0,
		TimeEnd:     1,
	})

	return Scene{Root: bvh, Lights: core.NewHittableList(), Camera: cam, Background: skyGradient}
}

// CornellBox is the classic colored-walls-and-light test box, used to
// exercise area-light importance sampling and color bleeding.
func CornellBox(_ float64) Scene {
	red := material.NewLambertianColor(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertianColor(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertianColor(core.NewVec3(0.12, 0.45, 0.15))
	lightMat := material.NewDiffuseLightColor(core.NewVec3(15, 15, 15))

	world := core.NewHittableList(
		hittable.NewFlipFace(hittable.NewRect(0, 0, 555, 0, 555, 555, green)),
		hittable.NewRect(0, 0, 555, 0, 555, 0, red),
		hittable.NewFlipFace(hittable.NewRect(1, 213, 343, 227, 332, 554, lightMat)),
		hittable.NewFlipFace(hittable.NewRect(1, 0, 555, 0, 555, 555, white)),
		hittable.NewRect(1, 0, 555, 0, 555, 0, white),
		hittable.NewFlipFace(hittable.NewRect(2, 0, 555, 0, 555, 555, white)),
	)

	box1 := hittable.NewRotate(
		hittable.NewTranslate(
			hittable.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white),
			core.NewVec3(265, 0, 295),
		),
		core.NewVec3(0, 1, 0), 15,
	)
	box2 := hittable.NewRotate(
		hittable.NewTranslate(
			hittable.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white),
			core.NewVec3(130, 0, 65),
		),
		core.NewVec3(0, 1, 0), -18,
	)
	world.Add(box1)
	world.Add(box2)

	lights := core.NewHittableList(hittable.NewRect(1, 213, 343, 227, 332, 554, lightMat))

	bvh := core.NewBVH(world.Objects, 0, 1, rand.New(rand.NewSource(1)))

	cam := camera.New(camera.Config{
		LookFrom:    core.NewVec3(278, 278, -800),
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFovDegrees: 40,
		Aspect:      1,
		Aperture:    0,
		FocusDist:   800,
	})

	return Scene{Root: bvh, Lights: lights, Camera: cam, Background: core.Color{}}
}

// PerlinSpheres mirrors the classic two-sphere marble scene: a ground
// sphere and an overhead sphere sharing one turbulent Perlin texture,
// exercising texture.Noise end to end.
func PerlinSpheres(aspect float64) Scene {
	marble := material.NewLambertian(texture.NewNoise(4, 1))

	world := core.NewHittableList(
		hittable.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		hittable.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)
	bvh := core.NewBVH(world.Objects, 0, 1, rand.New(rand.NewSource(1)))

	cam := camera.New(camera.Config{
		LookFrom:    core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFovDegrees: 20,
		Aspect:      aspect,
		Aperture:    0,
		FocusDist:   10,
	})

	return Scene{Root: bvh, Lights: core.NewHittableList(), Camera: cam, Background: skyGradient}
}

// RandomSpheres scatters several hundred small spheres over a checkered
// ground plane, the BVH-construction stress scenario: deep, unbalanced
// recursion and a mix of static/moving leaves.
func RandomSpheres(aspect float64) Scene {
	rnd := rand.New(rand.NewSource(1))
	sample := func() float64 { return rnd.Float64() }

	groundTex := texture.NewChecker(10, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	ground := material.NewLambertian(groundTex)

	var objects []core.Hittable
	objects = append(objects, hittable.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(float64(a)+0.9*sample(), 0.2, float64(b)+0.9*sample())
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			choice := sample()
			switch {
			case choice < 0.8:
				albedo := core.NewVec3(sample()*sample(), sample()*sample(), sample()*sample())
				mat := material.NewLambertianColor(albedo)
				center2 := center.Add(core.NewVec3(0, sample()*0.5, 0))
				objects = append(objects, hittable.NewMovingSphere(center, center2, 0, 1, 0.2, mat))
			case choice < 0.95:
				albedo := core.NewVec3(0.5*(1+sample()), 0.5*(1+sample()), 0.5*(1+sample()))
				fuzz := 0.5 * sample()
				mat := material.NewMetal(albedo, fuzz)
				objects = append(objects, hittable.NewSphere(center, 0.2, mat))
			default:
				mat := material.NewDielectric(1.5)
				objects = append(objects, hittable.NewSphere(center, 0.2, mat))
			}
		}
	}

	objects = append(objects,
		hittable.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		hittable.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertianColor(core.NewVec3(0.4, 0.2, 0.1))),
		hittable.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)),
	)

	bvh := core.NewBVH(objects, 0, 1, rnd)

	cam := camera.New(camera.Config{
		LookFrom:    core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFovDegrees: 20,
		Aspect:      aspect,
		Aperture:    0.1,
		FocusDist:   10,
		TimeStart:   0,
		TimeEnd:     1,
	})

	return Scene{Root: bvh, Lights: core.NewHittableList(), Camera: cam, Background: skyGradient}
}
