package core

// Ray is a half-line origin + t*direction. Time is used for motion blur;
// it is meaningful only for rays produced by a camera with a non-trivial
// exposure interval.
type Ray struct {
	Origin    Point3
	Direction Vec3
	Time      float64
}

// NewRay creates a ray at time 0.
func NewRay(origin Point3, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// NewRayAtTime creates a ray stamped with an exposure time.
func NewRayAtTime(origin Point3, direction Vec3, time float64) Ray {
	return Ray{Origin: origin, Direction: direction, Time: time}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Point3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
