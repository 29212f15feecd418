// Package camera implements the thin-lens camera model: defocus blur via a
// finite aperture, and motion blur via a per-ray exposure time.
package camera

import (
	"math"

	"github.com/nrempel/phototrace/pkg/core"
)

// Camera generates primary rays for the integrator. It is immutable once
// constructed and safe to share read-only across render workers.
type Camera struct {
	origin          core.Point3
	lowerLeftCorner core.Point3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // screen basis
	lensRadius      float64
	timeStart       float64
	timeEnd         float64
}

// Config bundles the constructor inputs for a Camera.
type Config struct {
	LookFrom    core.Point3
	LookAt      core.Point3
	Up          core.Vec3
	VFovDegrees float64
	Aspect      float64
	Aperture    float64
	FocusDist   float64
	TimeStart   float64
	TimeEnd     float64
}

// New builds a thin-lens camera from Config.
func New(cfg Config) *Camera {
	theta := cfg.VFovDegrees * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := cfg.Aspect * viewportHeight

	w := cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	u := cfg.Up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(cfg.FocusDist * viewportWidth)
	vertical := v.Multiply(cfg.FocusDist * viewportHeight)
	lowerLeft := cfg.LookFrom.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(cfg.FocusDist))

	return &Camera{
		origin:          cfg.LookFrom,
		lowerLeftCorner: lowerLeft,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      cfg.Aperture / 2,
		timeStart:       cfg.TimeStart,
		timeEnd:         cfg.TimeEnd,
	}
}

// GetRay samples a ray through screen coordinates (s, t) in [0,1]^2,
// jittering the origin across the lens for defocus blur and the time
// uniformly across the exposure interval for motion blur.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	rd := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset)

	time := c.timeStart
	if c.timeEnd > c.timeStart {
		time = sampler.Range(c.timeStart, c.timeEnd)
	}

	return core.NewRayAtTime(origin, direction, time)
}
