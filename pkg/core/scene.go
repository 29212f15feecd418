package core

// Environment aggregates everything the integrator needs to render a
// frame: the scene root, the light-sampling set, the camera and the render
// parameters. The caller constructs it once, up front; it is shared
// read-only across render workers.
type Environment struct {
	SceneRoot Hittable
	Lights    Hittable // may be the empty aggregate, core.NewHittableList()
	Camera    Camera

	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	Background      Color
}

// Camera is the minimal ray-generation contract the integrator and
// dispatcher depend on; see package camera for the thin-lens implementation.
type Camera interface {
	GetRay(s, t float64, sampler Sampler) Ray
}
