package hittable

import "github.com/nrempel/phototrace/pkg/core"

// Hittable is a local alias for core.Hittable, used throughout this
// package's wrapper constructors for readability.
type Hittable = core.Hittable
