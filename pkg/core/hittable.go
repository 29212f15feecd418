package core

// HitRecord is the payload of a successful intersection. Normal always has
// unit length and points against the incident ray; FrontFace records
// whether the outward geometric normal already agreed with that direction
// or had to be flipped.
type HitRecord struct {
	P         Point3
	Normal    Vec3
	Material  Material
	T         float64
	U, V      float64
	FrontFace bool
}

// SetFaceNormal orients Normal against the ray direction and records which
// side of the surface was hit.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Hittable is implemented by every primitive, wrapper and the BVH itself.
// PDFValue and Random are only meaningful for hittables used as light
// samplers; a hittable that never serves as a light may leave them at the
// zero-value default behavior (see the embeddable NoPDF helper below).
type Hittable interface {
	// Hit returns the closest intersection with t in (tMin, tMax), or false.
	Hit(ray Ray, tMin, tMax float64) (HitRecord, bool)

	// BoundingBox returns a box covering the shape over the given exposure
	// interval, or false if the shape is unboundable (e.g. an infinite
	// medium) and must be excluded from BVH construction.
	BoundingBox(timeStart, timeEnd float64) (AABB, bool)

	// PDFValue returns the probability density, w.r.t. solid angle at
	// origin, that Random(origin, ...) produced direction.
	PDFValue(origin Point3, direction Vec3) float64

	// Random draws a direction toward this hittable as observed from origin.
	Random(origin Point3, sampler Sampler) Vec3
}

// NoPDF can be embedded by hittables that are never used as light samplers
// to satisfy the Hittable interface's sampling methods trivially.
type NoPDF struct{}

// PDFValue always returns 0.
func (NoPDF) PDFValue(origin Point3, direction Vec3) float64 { return 0 }

// Random always returns the unit Z axis; callers must not rely on this
// being meaningful since PDFValue reports zero density for it.
func (NoPDF) Random(origin Point3, sampler Sampler) Vec3 { return NewVec3(0, 0, 1) }

// PDF is a probability distribution over directions, measured w.r.t. solid
// angle. Concrete distributions (cosine-weighted, object-sampling, mixture)
// live in package pdf; the interface is declared here so core.Material can
// reference it without importing pdf.
type PDF interface {
	Value(direction Vec3) float64
	Generate(sampler Sampler) Vec3
}

// Reflection is the outcome of a material scatter event: either a
// deterministic specular ray, or a PDF to importance-sample a diffuse
// scattered direction from. Exactly one field is non-nil.
type Reflection struct {
	Specular *Ray
	Scatter  PDF
}

// IsSpecular reports whether this reflection is a deterministic specular
// bounce rather than an importance-sampled scatter.
func (r Reflection) IsSpecular() bool {
	return r.Specular != nil
}

// ScatterResult is returned by Material.Scatter on a successful scatter.
type ScatterResult struct {
	Attenuation Color
	Reflection  Reflection
}

// Material is the scatter/emit contract every surface material implements.
type Material interface {
	// Scatter proposes an outgoing ray or PDF for the incoming ray at hit.
	// The second return is false if the ray is absorbed.
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (ScatterResult, bool)

	// ScatteringPDF returns the density of the scattered direction under
	// the material's own BRDF-weighted distribution, used to reweight
	// against the sampling PDF actually used to draw it.
	ScatteringPDF(rayIn Ray, hit HitRecord, scattered Ray) float64

	// Emitted returns the radiance emitted from the surface point. Most
	// materials return black.
	Emitted(hit HitRecord, u, v float64, p Point3) Color
}
