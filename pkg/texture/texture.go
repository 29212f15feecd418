// Package texture supplies concrete Texture implementations. The core
// renderer only depends on the Texture interface (see materials in package
// material); everything here is replaceable by caller-supplied textures.
package texture

import "github.com/nrempel/phototrace/pkg/core"

// Texture produces a color from a surface parameterization (u,v) and a
// world-space point. Implementations must be pure and safe to call
// concurrently from any render worker.
type Texture interface {
	Value(u, v float64, p core.Point3) core.Color
}

// Solid is a constant-color texture; a plain core.Color also satisfies
// Texture through core.Vec3's own Value method for callers that just have a
// Vec3.
type Solid struct {
	Color core.Color
}

// NewSolid wraps a constant color as a Texture.
func NewSolid(c core.Color) Solid {
	return Solid{Color: c}
}

// Value always returns the wrapped color.
func (s Solid) Value(u, v float64, p core.Point3) core.Color {
	return s.Color
}
