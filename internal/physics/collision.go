package physics

import "math"

// Contact describes one resolved collision between two bodies.
// Normal points from B toward A and Depth is the penetration distance
// along it at detection time, before push-out.
type Contact struct {
	A, B   *Body
	Normal Vec3
	Depth  float64
}

// Engine detects and resolves overlapping body pairs. Pairs are checked in
// a stable order: outer loop over bodies in creation order, inner loop over
// subsequent bodies. A body may be resolved against multiple partners within
// one pass; no fixed-point convergence is attempted.
type Engine struct {
	contacts []Contact // reused between ticks to avoid allocations
}

// Resolve checks every pair once, applies collision response to the Dynamic
// member(s), and returns the contacts found this pass. The returned slice is
// only valid until the next call.
func (e *Engine) Resolve(bodies []*Body) []Contact {
	e.contacts = e.contacts[:0]

	for i := 0; i < len(bodies); i++ {
		a := bodies[i]
		for j := i + 1; j < len(bodies); j++ {
			b := bodies[j]

			// Mutual immovable pairs cannot be resolved
			if a.Kind != Dynamic && b.Kind != Dynamic {
				continue
			}

			normal, depth, hit := detect(a, b)
			if !hit {
				continue
			}

			if a.Kind == Dynamic {
				respond(a, b, normal, depth)
			}
			if b.Kind == Dynamic {
				respond(b, a, normal.Scale(-1), depth)
			}

			e.contacts = append(e.contacts, Contact{A: a, B: b, Normal: normal, Depth: depth})
		}
	}

	return e.contacts
}

// respond reflects the dynamic body's velocity about the contact normal
// (pointing from partner toward body) and pushes it out by the penetration
// depth. The partner's contact modifiers are honored.
func respond(body, partner *Body, normal Vec3, depth float64) {
	n := normal
	if partner.PlanarNormal {
		// 2D play plane: drop the depth axis unless the contact is
		// purely along it
		if flat := n.FlattenZ(); flat.LenSq() > 0 {
			n = flat.Normalize()
		}
	}

	body.Velocity = body.Velocity.Reflect(n)
	if partner.BounceBoost > 0 {
		body.Velocity = body.Velocity.Scale(partner.BounceBoost)
	}
	body.Position = body.Position.Add(n.Scale(depth))
}

// detect dispatches narrow-phase detection on the pair's shapes.
// The returned normal points from b toward a.
func detect(a, b *Body) (Vec3, float64, bool) {
	switch {
	case a.Shape.Kind == ShapeSphere && b.Shape.Kind == ShapeSphere:
		return sphereVsSphere(a, b)
	case a.Shape.Kind == ShapeSphere && b.Shape.Kind == ShapeBox:
		return sphereVsBox(a, b)
	case a.Shape.Kind == ShapeBox && b.Shape.Kind == ShapeSphere:
		n, d, hit := sphereVsBox(b, a)
		return n.Scale(-1), d, hit
	default:
		// Box-box pairs do not occur between movable bodies here
		return Vec3{}, 0, false
	}
}

// sphereVsSphere reports a collision when the centers are closer than the
// radius sum. Normal points from b toward a.
func sphereVsSphere(a, b *Body) (Vec3, float64, bool) {
	delta := a.Position.Sub(b.Position)
	rsum := a.Shape.Radius + b.Shape.Radius
	distSq := delta.LenSq()
	if distSq >= rsum*rsum {
		return Vec3{}, 0, false
	}

	dist := math.Sqrt(distSq)
	if dist == 0 {
		// Coincident centers: arbitrary but deterministic axis
		return Vec3{X: 1}, rsum, true
	}
	return delta.Scale(1 / dist), rsum - dist, true
}

// sphereVsBox finds the closest point on the box to the sphere center by
// clamping each axis to the box's half extents. Normal points from the box
// toward the sphere.
func sphereVsBox(sphere, box *Body) (Vec3, float64, bool) {
	half := box.Shape.HalfExtents()
	rel := sphere.Position.Sub(box.Position)

	closest := Vec3{
		X: clamp(rel.X, -half.X, half.X),
		Y: clamp(rel.Y, -half.Y, half.Y),
		Z: clamp(rel.Z, -half.Z, half.Z),
	}

	delta := rel.Sub(closest)
	distSq := delta.LenSq()
	radius := sphere.Shape.Radius
	if distSq >= radius*radius {
		return Vec3{}, 0, false
	}

	if distSq > 0 {
		dist := math.Sqrt(distSq)
		return delta.Scale(1 / dist), radius - dist, true
	}

	// Center is inside the box (or exactly on a face): the closest-point
	// normal degenerates to zero. Push out along the axis with the
	// smallest distance to a face; ties break X, then Y, then Z.
	return insideBoxNormal(rel, half, radius)
}

// insideBoxNormal picks the minimum-penetration face for a sphere center
// embedded in a box.
func insideBoxNormal(rel, half Vec3, radius float64) (Vec3, float64, bool) {
	penX := half.X - math.Abs(rel.X)
	penY := half.Y - math.Abs(rel.Y)
	penZ := half.Z - math.Abs(rel.Z)

	axis := Vec3{X: sign(rel.X)}
	pen := penX
	if penY < pen {
		axis = Vec3{Y: sign(rel.Y)}
		pen = penY
	}
	if penZ < pen {
		axis = Vec3{Z: sign(rel.Z)}
		pen = penZ
	}

	return axis, pen + radius, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// sign returns 1 for non-negative values so a centered sphere still gets a
// deterministic push direction.
func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
