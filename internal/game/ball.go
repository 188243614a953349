package game

import (
	"math"

	"swarmpong/internal/config"
	"swarmpong/internal/physics"
)

// Ball is the dynamic sphere batted between the paddle and the swarm.
// While attached to the paddle its velocity is zero and its position tracks
// the paddle; once released it flies free under the speed envelope.
type Ball struct {
	body     *physics.Body
	attached bool

	radius           float64
	maxSpeed         float64
	minVerticalSpeed float64
	launchVelocity   physics.Vec3
}

// NewBall creates a ball attached to nothing in particular; call Reset to
// seat it on the paddle.
func NewBall(cfg config.BallSettings) *Ball {
	return &Ball{
		body:             physics.NewBody(physics.Vec3{}, physics.Sphere(cfg.Radius), physics.Dynamic),
		attached:         true,
		radius:           cfg.Radius,
		maxSpeed:         cfg.MaxSpeed,
		minVerticalSpeed: cfg.MinVerticalSpeed,
		launchVelocity:   physics.V3(cfg.LaunchVX, cfg.LaunchVY, 0),
	}
}

// Body returns the ball's physics body.
func (b *Ball) Body() *physics.Body {
	return b.body
}

// Attached reports whether the ball is riding the paddle.
func (b *Ball) Attached() bool {
	return b.attached
}

// Release launches the ball off the paddle. Releasing an already-released
// ball is a no-op.
func (b *Ball) Release() {
	if !b.attached {
		return
	}
	b.attached = false
	b.body.Velocity = b.launchVelocity
}

// Reset reattaches the ball to the paddle with zero velocity.
func (b *Ball) Reset(paddle *Paddle) {
	b.attached = true
	b.body.Velocity = physics.Vec3{}
	b.TrackPaddle(paddle)
}

// TrackPaddle seats the ball on top of the paddle. Called every tick while
// attached.
func (b *Ball) TrackPaddle(paddle *Paddle) {
	if !b.attached {
		return
	}
	p := paddle.Body()
	b.body.Position = physics.V3(
		p.Position.X,
		p.Position.Y+p.Shape.HalfExtents().Y+b.radius,
		p.Position.Z,
	)
}

// EnforceSpeedEnvelope keeps a minimum vertical component so rallies cannot
// stall into a horizontal shuttle, then clamps the total speed to the
// maximum. The cap shrinks the horizontal components so the vertical floor
// survives it. No-op while attached.
func (b *Ball) EnforceSpeedEnvelope() {
	if b.attached {
		return
	}

	v := b.body.Velocity
	if v.Y > -b.minVerticalSpeed && v.Y < b.minVerticalSpeed {
		if v.Y < 0 {
			v.Y = -b.minVerticalSpeed
		} else {
			v.Y = b.minVerticalSpeed
		}
	}

	if v.LenSq() > b.maxSpeed*b.maxSpeed {
		hsq := v.X*v.X + v.Z*v.Z
		budget := b.maxSpeed*b.maxSpeed - v.Y*v.Y
		if budget <= 0 || hsq == 0 {
			// Vertical component alone exceeds the cap
			v = v.ClampLen(b.maxSpeed)
		} else {
			s := math.Sqrt(budget / hsq)
			v.X *= s
			v.Z *= s
		}
	}
	b.body.Velocity = v
}
