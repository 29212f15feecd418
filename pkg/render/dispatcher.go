package render

import (
	"math"

	"github.com/cheggaaa/pb/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nrempel/phototrace/pkg/core"
	"github.com/nrempel/phototrace/pkg/integrator"
)

// Dispatcher drives the top-level render loop: scanlines are processed
// serially (to keep progress reporting and row ordering simple) but every
// pixel within a scanline is computed concurrently.
type Dispatcher struct {
	env   core.Environment
	pt    *integrator.PathTracingIntegrator
	log   *zap.SugaredLogger
	Quiet bool
	Seed  int64
	Gamma float64
}

// NewDispatcher builds a dispatcher over env, logging progress through log.
func NewDispatcher(env core.Environment, log *zap.SugaredLogger) *Dispatcher {
	return &Dispatcher{
		env:   env,
		pt:    integrator.NewPathTracingIntegrator(env),
		log:   log,
		Seed:  1,
		Gamma: 2,
	}
}

// Render iterates scanlines from height-1 down to 0, dispatching every
// pixel in a row to its own goroutine, and returns the assembled image.
func (d *Dispatcher) Render() *Image {
	img := NewImage(d.env.Width, d.env.Height)

	var bar *pb.ProgressBar
	if !d.Quiet {
		bar = pb.StartNew(d.env.Height)
		defer bar.Finish()
	}

	n := int(math.Sqrt(float64(d.env.SamplesPerPixel)))
	if n < 1 {
		n = 1
	}

	for row := 0; row < d.env.Height; row++ {
		j := d.env.Height - 1 - row
		rowBytes := make([]byte, 3*d.env.Width)

		var g errgroup.Group
		for i := 0; i < d.env.Width; i++ {
			i := i
			g.Go(func() error {
				color := d.samplePixel(i, j, n)
				r, gC, b := encodePixel(color, d.env.SamplesPerPixel, d.Gamma)
				rowBytes[3*i] = r
				rowBytes[3*i+1] = gC
				rowBytes[3*i+2] = b
				return nil
			})
		}
		// Pixel errors are never returned (the integrator has no failure
		// mode); Wait only synchronizes completion.
		_ = g.Wait()

		img.SetRow(row, rowBytes)
		if bar != nil {
			bar.Increment()
		}
		if d.log != nil {
			d.log.Debugw("scanline complete", "row", row, "y", j)
		}
	}

	return img
}

// samplePixel stratifies SamplesPerPixel samples on an n x n grid over
// pixel (i, j) and returns the accumulated (unnormalized, un-gamma-encoded)
// color.
func (d *Dispatcher) samplePixel(i, j, n int) core.Color {
	sampler := core.NewRandSampler(pixelSeed(d.Seed, i, j))

	var accum core.Color
	for s := 0; s < n; s++ {
		for t := 0; t < n; t++ {
			u := (float64(i) + (float64(s)+sampler.Float64())/float64(n)) / float64(d.env.Width-1)
			v := (float64(j) + (float64(t)+sampler.Float64())/float64(n)) / float64(d.env.Height-1)

			ray := d.env.Camera.GetRay(u, v, sampler)
			c := d.pt.Radiance(ray, sampler, d.env.MaxDepth)
			accum = accum.Add(guardNaN(c))
		}
	}

	// n*n may fall short of SamplesPerPixel when it isn't a perfect square;
	// the remainder is simply not taken. The accumulator is still divided
	// by the nominal SamplesPerPixel at encode time, per the stratified
	// grid scheme.
	return accum
}

// pixelSeed derives a distinct, deterministic RNG seed per pixel from a
// base seed so reruns with the same seed reproduce the same image.
func pixelSeed(base int64, i, j int) int64 {
	return base*1_000_003 + int64(j)*100_003 + int64(i)
}

// encodePixel averages the accumulator, gamma-encodes it (gamma 2, the
// square root, unless overridden) and packs it into bytes.
func encodePixel(accum core.Color, samples int, gamma float64) (r, g, b byte) {
	scale := 1.0 / float64(samples)
	c := accum.
		Multiply(scale).
		Max(core.Vec3{}).
		GammaCorrect(gamma).
		Clamp(0, 1).
		Multiply(255.999)
	return byte(c.X), byte(c.Y), byte(c.Z)
}

func guardNaN(c core.Color) core.Color {
	return core.NewVec3(guardComponent(c.X), guardComponent(c.Y), guardComponent(c.Z))
}

func guardComponent(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
