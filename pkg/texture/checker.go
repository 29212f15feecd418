package texture

import (
	"math"

	"github.com/nrempel/phototrace/pkg/core"
)

// Checker alternates between two sub-textures on a 3-D grid of the given
// scale, independent of surface UVs.
type Checker struct {
	Scale float64
	Odd   Texture
	Even  Texture
}

// NewChecker builds a 3-D checker pattern between two solid colors.
func NewChecker(scale float64, even, odd core.Color) *Checker {
	return &Checker{Scale: scale, Even: NewSolid(even), Odd: NewSolid(odd)}
}

// Value selects Even or Odd based on the parity of the floored,
// scale-divided world coordinates.
func (c *Checker) Value(u, v float64, p core.Point3) core.Color {
	x := int(math.Floor(p.X / c.Scale))
	y := int(math.Floor(p.Y / c.Scale))
	z := int(math.Floor(p.Z / c.Scale))

	if (x+y+z)%2 == 0 {
		return c.Even.Value(u, v, p)
	}
	return c.Odd.Value(u, v, p)
}
