package game

import (
	"swarmpong/internal/config"
	"swarmpong/internal/physics"
)

// Paddle translates discrete left/right input into the paddle body's
// position. The body is Kinematic: its position is overwritten from targetX
// every tick and collisions never move it.
type Paddle struct {
	body    *physics.Body
	targetX float64
	speed   float64

	left  bool
	right bool

	// Target range, pre-shrunk by the paddle's half width.
	minX float64
	maxX float64
}

// NewPaddle creates a paddle centered at x=0 on the configured row.
func NewPaddle(cfg config.PaddleSettings, bounds physics.Bounds) *Paddle {
	halfW := cfg.Width * 0.5
	body := physics.NewBody(
		physics.V3(0, cfg.Y, 0),
		physics.Box(cfg.Width, cfg.Height, cfg.Depth),
		physics.Kinematic,
	)
	return &Paddle{
		body:  body,
		speed: cfg.Speed,
		minX:  bounds.Min.X + halfW,
		maxX:  bounds.Max.X - halfW,
	}
}

// Body returns the paddle's physics body.
func (p *Paddle) Body() *physics.Body {
	return p.body
}

// SetInput records the current frame's movement input.
func (p *Paddle) SetInput(left, right bool) {
	p.left = left
	p.right = right
}

// Update advances targetX from the held input, clamps it to the playfield,
// and snaps the body onto it.
func (p *Paddle) Update(dt float64) {
	dir := 0.0
	if p.right {
		dir++
	}
	if p.left {
		dir--
	}

	p.targetX = clampF(p.targetX+dir*p.speed*dt, p.minX, p.maxX)
	p.body.Position.X = p.targetX
}

// Reset snaps the paddle to x and clears input flags.
func (p *Paddle) Reset(x float64) {
	p.targetX = clampF(x, p.minX, p.maxX)
	p.body.Position.X = p.targetX
	p.left = false
	p.right = false
}

// TargetX returns the clamped target position.
func (p *Paddle) TargetX() float64 {
	return p.targetX
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
