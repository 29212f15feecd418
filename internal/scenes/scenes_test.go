package scenes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrempel/phototrace/pkg/core"
	"github.com/nrempel/phototrace/pkg/render"
)

func TestBuildersConstructCompleteScenes(t *testing.T) {
	for name, build := range Builders {
		t.Run(name, func(t *testing.T) {
			scene := build(16.0 / 9.0)

			require.NotNil(t, scene.Root, "scene root")
			require.NotNil(t, scene.Lights, "lights aggregate")
			require.NotNil(t, scene.Camera, "camera")

			sampler := core.NewRandSampler(1)
			ray := scene.Camera.GetRay(0.5, 0.5, sampler)
			assert.NotZero(t, ray.Direction.Length(), "center ray direction")
		})
	}
}

func TestCornellBoxHasLightSamplers(t *testing.T) {
	scene := CornellBox(1)

	lights, ok := scene.Lights.(*core.HittableList)
	require.True(t, ok, "lights should be a HittableList")
	assert.False(t, lights.Empty(), "Cornell box must register its area light for importance sampling")
	assert.Equal(t, core.Color{}, scene.Background, "Cornell box is enclosed; background must be black")
}

func TestOutdoorScenesUseSkyBackground(t *testing.T) {
	for _, name := range []string{"single-sphere", "moving-sphere", "spheres", "perlin-spheres"} {
		scene := Builders[name](1)
		assert.Equal(t, skyGradient, scene.Background, "scene %s", name)
	}
}

// TestCornellBoxRender is the Cornell-box end-to-end scenario: the green
// wall must dominate the left band, the red wall the right band, and the
// ceiling light must saturate to white.
func TestCornellBoxRender(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Cornell render in -short mode")
	}

	const (
		width   = 100
		height  = 100
		samples = 64
	)

	scene := CornellBox(1)
	env := core.Environment{
		SceneRoot:       scene.Root,
		Lights:          scene.Lights,
		Camera:          scene.Camera,
		Width:           width,
		Height:          height,
		SamplesPerPixel: samples,
		MaxDepth:        10,
		Background:      scene.Background,
	}

	d := render.NewDispatcher(env, nil)
	d.Quiet = true
	img := d.Render()

	bandMean := func(x0, x1 int) (r, g, b float64) {
		n := 0
		for y := 0; y < height; y++ {
			for x := x0; x < x1; x++ {
				base := (y*width + x) * 3
				r += float64(img.Pixels[base])
				g += float64(img.Pixels[base+1])
				b += float64(img.Pixels[base+2])
				n++
			}
		}
		return r / float64(n), g / float64(n), b / float64(n)
	}

	lr, lg, lb := bandMean(0, width/6)
	assert.Greater(t, lg, lr, "left band: green wall must out-green red")
	assert.Greater(t, lg, lb, "left band: green wall must out-green blue")

	rr, rg, rb := bandMean(width*5/6, width)
	assert.Greater(t, rr, rg, "right band: red wall must out-red green")
	assert.Greater(t, rr, rb, "right band: red wall must out-red blue")

	saturated := 0
	for y := 5; y < 25; y++ {
		for x := width / 3; x < width*2/3; x++ {
			base := (y*width + x) * 3
			if img.Pixels[base] == 255 && img.Pixels[base+1] == 255 && img.Pixels[base+2] == 255 {
				saturated++
			}
		}
	}
	assert.GreaterOrEqual(t, saturated, 10, "ceiling light must appear saturated white near the top")
}
