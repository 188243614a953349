package game

import (
	"swarmpong/internal/config"
	"swarmpong/internal/physics"
)

// Direction is the swarm's horizontal travel direction.
type Direction int8

const (
	DirectionLeft Direction = iota
	DirectionRight
)

// SwarmEvents reports what happened during one swarm update.
type SwarmEvents struct {
	// ReachedBottom is true on the single update where an alive alien
	// first crosses the bottom boundary. Latched until Reset.
	ReachedBottom bool
}

// Swarm owns the grid of alien bodies and advances the formation on a fixed
// cadence: march horizontally, reverse and step down at the field edges, and
// speed up as aliens are destroyed.
type Swarm struct {
	world  *physics.World
	aliens []*Alien
	cfg    config.SwarmSettings

	direction Direction
	moveTimer float64

	// Cadence: shrinks from baseInterval toward minInterval as aliens die.
	moveInterval float64

	// Difficulty-scaled per SetDifficulty.
	horizontalSpeed       float64
	moveDownAmount        float64
	speedIncreasePerAlien float64

	destroyedCount int
	reachedBottom  bool // latched until Reset

	bottomY float64
	bounds  physics.Bounds
}

// NewSwarm creates the swarm controller and spawns the initial formation
// into the world at level-1 difficulty.
func NewSwarm(world *physics.World, cfg config.SwarmSettings, bottomY float64) *Swarm {
	s := &Swarm{
		world:   world,
		cfg:     cfg,
		bottomY: bottomY,
		bounds:  world.Bounds(),
	}
	s.SetDifficulty(1)
	s.Reset()
	return s
}

// Aliens returns the formation, alive and dead. Order is row-major from the
// top row; indices stay valid until Reset.
func (s *Swarm) Aliens() []*Alien {
	return s.aliens
}

// SetDifficulty recomputes the movement parameters for the given level.
// Applied at level transitions, not mid-level.
func (s *Swarm) SetDifficulty(level int) {
	if level < 1 {
		level = 1
	}
	n := float64(level - 1)
	s.horizontalSpeed = 1.5 + n*0.3
	s.moveDownAmount = 0.5 + n*0.1
	s.speedIncreasePerAlien = 0.025 + n*0.005
}

// Reset destroys the current formation and rebuilds the full grid:
// centered horizontally, rows descending from the top, type by row index.
// Direction resets to Right and the step timer to zero.
func (s *Swarm) Reset() {
	for _, a := range s.aliens {
		s.world.RemoveBody(a.Body)
	}
	s.aliens = s.aliens[:0]

	startX := -float64(s.cfg.Cols-1) * s.cfg.SpacingX * 0.5
	for row := 0; row < s.cfg.Rows; row++ {
		t := alienTypeForRow(row)
		y := s.cfg.TopY - float64(row)*s.cfg.SpacingY
		for col := 0; col < s.cfg.Cols; col++ {
			x := startX + float64(col)*s.cfg.SpacingX
			alien := newAlien(physics.V3(x, y, 0), t)
			s.aliens = append(s.aliens, alien)
			s.world.AddBody(alien.Body)
		}
	}

	s.direction = DirectionRight
	s.moveTimer = 0
	s.moveInterval = s.cfg.BaseInterval
	s.destroyedCount = 0
	s.reachedBottom = false
}

// Update accumulates the step timer and performs a swarm step when it
// elapses, then checks the bottom boundary.
func (s *Swarm) Update(dt float64) SwarmEvents {
	var ev SwarmEvents

	if s.AllDestroyed() {
		return ev
	}

	s.moveTimer += dt
	if s.moveTimer >= s.moveInterval {
		s.moveTimer = 0
		s.step()
	}

	if !s.reachedBottom && s.lowestAliveY() <= s.bottomY {
		s.reachedBottom = true
		ev.ReachedBottom = true
	}

	return ev
}

// step performs one discrete formation move. If the edge alien would cross
// the margin-adjusted bound, the direction flips and the whole formation
// descends instead; horizontal motion is skipped on the flip step.
func (s *Swarm) step() {
	moveDist := s.horizontalSpeed * s.moveInterval

	if s.direction == DirectionRight {
		if s.edgeAlienX(DirectionRight)+moveDist > s.bounds.Max.X-s.cfg.EdgeMargin {
			s.direction = DirectionLeft
			s.descend()
			return
		}
		s.translate(moveDist)
		return
	}

	if s.edgeAlienX(DirectionLeft)-moveDist < s.bounds.Min.X+s.cfg.EdgeMargin {
		s.direction = DirectionRight
		s.descend()
		return
	}
	s.translate(-moveDist)
}

// edgeAlienX returns the alive alien X furthest in the travel direction.
func (s *Swarm) edgeAlienX(dir Direction) float64 {
	first := true
	var edge float64
	for _, a := range s.aliens {
		if !a.Alive {
			continue
		}
		x := a.Body.Position.X
		if first {
			edge = x
			first = false
			continue
		}
		if dir == DirectionRight && x > edge {
			edge = x
		}
		if dir == DirectionLeft && x < edge {
			edge = x
		}
	}
	return edge
}

func (s *Swarm) translate(dx float64) {
	for _, a := range s.aliens {
		if a.Alive {
			a.Body.Position.X += dx
		}
	}
}

func (s *Swarm) descend() {
	for _, a := range s.aliens {
		if a.Alive {
			a.Body.Position.Y -= s.moveDownAmount
		}
	}
}

func (s *Swarm) lowestAliveY() float64 {
	lowest := s.cfg.TopY
	for _, a := range s.aliens {
		if a.Alive && a.Body.Position.Y < lowest {
			lowest = a.Body.Position.Y
		}
	}
	return lowest
}

// DestroyByBody marks the alien owning the given body as destroyed, removes
// it from the world, and accelerates the swarm. Returns the alien's point
// value. Destroying an alien twice, or a body that is not an alien, awards
// nothing.
func (s *Swarm) DestroyByBody(b *physics.Body) (points int, ok bool) {
	for _, a := range s.aliens {
		if a.Body != b {
			continue
		}
		if !a.Alive {
			return 0, false
		}
		a.Alive = false
		s.world.RemoveBody(a.Body)
		s.destroyedCount++
		s.recomputeInterval()
		return a.Type.PointValue(), true
	}
	return 0, false
}

// recomputeInterval applies the monotonic speed-up schedule: more deaths
// means a strictly faster swarm, down to the floor. Never resets mid-level.
func (s *Swarm) recomputeInterval() {
	interval := s.cfg.BaseInterval - float64(s.destroyedCount)*s.speedIncreasePerAlien
	if interval < s.cfg.MinInterval {
		interval = s.cfg.MinInterval
	}
	s.moveInterval = interval
}

// MoveInterval returns the current step cadence in seconds.
func (s *Swarm) MoveInterval() float64 {
	return s.moveInterval
}

// Direction returns the current travel direction.
func (s *Swarm) Direction() Direction {
	return s.direction
}

// AliveCount returns the number of aliens still alive.
func (s *Swarm) AliveCount() int {
	n := 0
	for _, a := range s.aliens {
		if a.Alive {
			n++
		}
	}
	return n
}

// AllDestroyed reports whether the whole formation has been cleared.
func (s *Swarm) AllDestroyed() bool {
	return s.AliveCount() == 0
}
