// Command phototrace renders a scene with the offline Monte-Carlo path
// tracer and writes the result as a PNG.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nrempel/phototrace/internal/config"
	"github.com/nrempel/phototrace/internal/logging"
	"github.com/nrempel/phototrace/internal/scenes"
	"github.com/nrempel/phototrace/pkg/core"
	"github.com/nrempel/phototrace/pkg/render"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "phototrace",
		Short: "Offline Monte-Carlo path tracer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, v)
		},
	}

	flags := cmd.Flags()
	flags.String("scene", "", "scene to render: single-sphere, moving-sphere, cornell-box, spheres, perlin-spheres")
	flags.Int("width", 0, "output image width in pixels")
	flags.Int("height", 0, "output image height in pixels")
	flags.Int("samples", 0, "samples per pixel")
	flags.Int("max-depth", 0, "maximum ray bounce depth")
	flags.Int64("seed", 0, "RNG seed")
	flags.String("output", "", "output PNG path")
	flags.Float64("gamma", 0, "output gamma (2 encodes the usual square root)")
	flags.Bool("quiet", false, "suppress the progress bar")
	flags.Bool("verbose", false, "enable debug logging")

	for _, name := range []string{"scene", "width", "height", "samples", "max-depth", "seed", "output", "gamma", "quiet", "verbose"} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	return cmd
}

func runRender(cmd *cobra.Command, v *viper.Viper) error {
	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, err := logging.New(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer log.Sync()

	builder, ok := scenes.Builders[cfg.Scene]
	if !ok {
		return fmt.Errorf("unknown scene %q", cfg.Scene)
	}

	aspect := float64(cfg.Width) / float64(cfg.Height)
	built := builder(aspect)

	env := core.Environment{
		SceneRoot:       built.Root,
		Lights:          built.Lights,
		Camera:          built.Camera,
		Width:           cfg.Width,
		Height:          cfg.Height,
		SamplesPerPixel: cfg.SamplesPerPixel,
		MaxDepth:        cfg.MaxDepth,
		Background:      built.Background,
	}

	log.Infow("starting render", "scene", cfg.Scene, "width", cfg.Width, "height", cfg.Height, "samples", cfg.SamplesPerPixel)
	start := time.Now()

	dispatcher := render.NewDispatcher(env, log)
	dispatcher.Quiet = cfg.Quiet
	dispatcher.Seed = cfg.Seed
	dispatcher.Gamma = cfg.Gamma

	img := dispatcher.Render()

	log.Infow("render complete", "elapsed", time.Since(start).String())

	if err := writePNG(img, cfg.Output); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	log.Infow("wrote image", "path", cfg.Output)
	return nil
}

// writePNG converts the row-major RGB8 buffer into a standard library
// image.RGBA and encodes it as a PNG.
func writePNG(img *render.Image, path string) error {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			base := (y*img.Width + x) * 3
			out.Set(x, y, color.RGBA{
				R: img.Pixels[base],
				G: img.Pixels[base+1],
				B: img.Pixels[base+2],
				A: 255,
			})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, out)
}
