// Package game implements the rules layer on top of the physics core:
// paddle and ball controllers, the alien swarm formation, and the gameplay
// session state machine.
package game

import "swarmpong/internal/physics"

// AlienType represents the size category of an alien. Point value is
// inversely correlated with size: the top row is smallest, hardest to hit,
// and most valuable.
type AlienType int

const (
	AlienSmall AlienType = iota
	AlienMedium
	AlienLarge
)

// Collision radius for each alien type.
var alienRadii = map[AlienType]float64{
	AlienSmall:  0.3,
	AlienMedium: 0.4,
	AlienLarge:  0.5,
}

// Score awarded for destroying each alien type.
var alienPoints = map[AlienType]int{
	AlienSmall:  30,
	AlienMedium: 20,
	AlienLarge:  10,
}

// PointValue returns the score awarded for destroying this alien type.
func (t AlienType) PointValue() int {
	return alienPoints[t]
}

// Radius returns the collision radius for this alien type.
func (t AlienType) Radius() float64 {
	return alienRadii[t]
}

// alienTypeForRow maps a formation row index (0 = top) to an alien type.
func alienTypeForRow(row int) AlienType {
	switch {
	case row == 0:
		return AlienSmall
	case row <= 2:
		return AlienMedium
	default:
		return AlienLarge
	}
}

// Alien is one member of the swarm formation.
type Alien struct {
	Body  *physics.Body
	Type  AlienType
	Alive bool
}

// alienBounceBoost is the speed multiplier applied to the ball on each
// alien hit, independent of alien type.
const alienBounceBoost = 1.05

// newAlien creates an alive alien of the given type at position.
// Alien bodies are Kinematic: the swarm controller moves them directly and
// collisions never deflect them. Contacts against aliens stay in the XY
// play plane.
func newAlien(pos physics.Vec3, t AlienType) *Alien {
	body := physics.NewBody(pos, physics.Sphere(t.Radius()), physics.Kinematic)
	body.PlanarNormal = true
	body.BounceBoost = alienBounceBoost
	return &Alien{Body: body, Type: t, Alive: true}
}
