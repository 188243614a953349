package physics

// ShapeKind discriminates the Shape variant.
type ShapeKind uint8

const (
	ShapeSphere ShapeKind = iota
	ShapeBox
)

// Shape is a tagged variant: a sphere with a radius, or an axis-aligned
// box with full extents. The collision engine dispatches on Kind.
type Shape struct {
	Kind   ShapeKind
	Radius float64 // Sphere only
	W      float64 // Box only: full width (X)
	H      float64 // Box only: full height (Y)
	D      float64 // Box only: full depth (Z)
}

// Sphere creates a spherical shape with the given radius.
func Sphere(radius float64) Shape {
	return Shape{Kind: ShapeSphere, Radius: radius}
}

// Box creates an axis-aligned box shape with the given full extents.
func Box(w, h, d float64) Shape {
	return Shape{Kind: ShapeBox, W: w, H: h, D: d}
}

// HalfExtents returns the box's half extents. Only meaningful for boxes.
func (s Shape) HalfExtents() Vec3 {
	return Vec3{s.W * 0.5, s.H * 0.5, s.D * 0.5}
}

// BodyKind defines how a body's position evolves.
type BodyKind uint8

const (
	// Static bodies never move.
	Static BodyKind = iota
	// Kinematic bodies are positioned directly by their owning controller
	// and are never altered by integration or collision response.
	Kinematic
	// Dynamic bodies integrate velocity each tick and receive collision
	// response (velocity reflection and penetration push-out).
	Dynamic
)

// Body is the physical state of a simulated entity. Bodies are mutated in
// place each tick by the world that owns them, or by the controller that
// created them for Kinematic bodies.
type Body struct {
	Position Vec3
	Velocity Vec3
	Shape    Shape
	Kind     BodyKind

	// PlanarNormal restricts contacts against this body to the XY play
	// plane: the Z component of the contact normal is dropped before the
	// partner's velocity is reflected.
	PlanarNormal bool

	// BounceBoost, when > 0, multiplies the dynamic partner's speed after
	// it reflects off this body. Used as a difficulty ramp.
	BounceBoost float64
}

// NewBody returns a body with the given position, shape, and kind.
// Velocity is zero.
func NewBody(position Vec3, shape Shape, kind BodyKind) *Body {
	return &Body{
		Position: position,
		Shape:    shape,
		Kind:     kind,
	}
}
