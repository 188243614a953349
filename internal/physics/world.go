package physics

// Bounds is the axis-aligned world bounding box.
type Bounds struct {
	Min, Max Vec3
}

// World owns the set of bodies and advances the simulation. Zero gravity:
// bodies keep their velocity until a collision or boundary changes it.
//
// Single-threaded by design: one Tick call per rendered frame, no locks.
type World struct {
	bodies []*Body
	bounds Bounds
	engine Engine
}

// NewWorld creates an empty world with the given bounds.
func NewWorld(bounds Bounds) *World {
	return &World{bounds: bounds}
}

// AddBody appends a body to the world. Creation order determines the
// collision pair ordering, so it is stable across ticks.
func (w *World) AddBody(b *Body) {
	w.bodies = append(w.bodies, b)
}

// RemoveBody removes a body from the world. Removing a body not present is
// a no-op.
func (w *World) RemoveBody(b *Body) {
	kept := w.bodies[:0]
	for _, body := range w.bodies {
		if body != b {
			kept = append(kept, body)
		}
	}
	w.bodies = kept
}

// Bodies returns the world's body list. Callers must not reorder it.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Bounds returns the world bounding box.
func (w *World) Bounds() Bounds {
	return w.bounds
}

// Tick advances all Dynamic bodies by velocity integration, resolves
// collisions, then contains spherical Dynamic bodies within the world
// bounds. Returns the collisions resolved this tick, in stable pair order;
// the slice is only valid until the next Tick.
func (w *World) Tick(dt float64) []Contact {
	for _, b := range w.bodies {
		if b.Kind != Dynamic {
			continue
		}
		b.Position = b.Position.Add(b.Velocity.Scale(dt))
	}

	contacts := w.engine.Resolve(w.bodies)

	for _, b := range w.bodies {
		// Boxes are assumed contained by construction
		if b.Kind != Dynamic || b.Shape.Kind != ShapeSphere {
			continue
		}
		w.containSphere(b)
	}

	return contacts
}

// containSphere snaps a sphere back inside the bounds on each exceeded axis
// and reflects the corresponding velocity component.
func (w *World) containSphere(b *Body) {
	r := b.Shape.Radius

	b.Position.X, b.Velocity.X = bounceAxis(b.Position.X, b.Velocity.X, w.bounds.Min.X+r, w.bounds.Max.X-r)
	b.Position.Y, b.Velocity.Y = bounceAxis(b.Position.Y, b.Velocity.Y, w.bounds.Min.Y+r, w.bounds.Max.Y-r)
	b.Position.Z, b.Velocity.Z = bounceAxis(b.Position.Z, b.Velocity.Z, w.bounds.Min.Z+r, w.bounds.Max.Z-r)
}

// bounceAxis clamps one position component to [lo, hi] and flips the
// velocity component when the bound was exceeded in its direction of travel.
func bounceAxis(pos, vel, lo, hi float64) (float64, float64) {
	if pos < lo {
		pos = lo
		if vel < 0 {
			vel = -vel
		}
	} else if pos > hi {
		pos = hi
		if vel > 0 {
			vel = -vel
		}
	}
	return pos, vel
}
