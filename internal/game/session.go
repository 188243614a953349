package game

import (
	"fmt"

	"swarmpong/internal/config"
	"swarmpong/internal/physics"
)

// State represents the current session phase.
type State uint8

const (
	StateReady State = iota
	StatePlaying
	StatePaused
	StateGameOver
	StateLevelComplete
)

// Session drives the finite game-state machine: it owns the world, the
// paddle/ball/swarm controllers, and the score/lives/level counters, and
// consumes collision and swarm events each tick.
//
// Everything runs synchronously inside Tick; the only deferred work is the
// ball-lost grace countdown, which is session state rather than a
// free-running timer so Reset can always cancel it.
type Session struct {
	cfg config.Settings

	world  *physics.World
	paddle *Paddle
	ball   *Ball
	swarm  *Swarm

	state State
	score int
	lives int
	level int

	// Remaining ball-lost grace delay. While > 0 the session sits in
	// Ready and further ball-lost triggers are ignored.
	graceTimer float64
}

// NewSession builds the world and all controllers and leaves the session in
// Ready at level 1.
func NewSession(cfg config.Settings) *Session {
	bounds := physics.Bounds{
		Min: physics.V3(cfg.World.MinX, cfg.World.MinY, cfg.World.MinZ),
		Max: physics.V3(cfg.World.MaxX, cfg.World.MaxY, cfg.World.MaxZ),
	}
	world := physics.NewWorld(bounds)

	paddle := NewPaddle(cfg.Paddle, bounds)
	world.AddBody(paddle.Body())

	ball := NewBall(cfg.Ball)
	ball.Reset(paddle)
	world.AddBody(ball.Body())

	swarm := NewSwarm(world, cfg.Swarm, cfg.Session.BottomBoundary)

	return &Session{
		cfg:    cfg,
		world:  world,
		paddle: paddle,
		ball:   ball,
		swarm:  swarm,
		state:  StateReady,
		lives:  cfg.Session.InitialLives,
		level:  1,
	}
}

// Tick advances the session by dt seconds. Simulation only runs while
// Playing; the Ready state counts down a pending ball-lost grace delay.
func (s *Session) Tick(dt float64) {
	switch s.state {
	case StateReady:
		if s.graceTimer > 0 {
			s.graceTimer -= dt
			if s.graceTimer <= 0 {
				s.graceTimer = 0
				s.state = StatePlaying
			}
		}
	case StatePlaying:
		s.tickPlaying(dt)
	}
}

func (s *Session) tickPlaying(dt float64) {
	s.paddle.Update(dt)
	s.ball.TrackPaddle(s.paddle)

	contacts := s.world.Tick(dt)
	s.ball.EnforceSpeedEnvelope()
	s.handleContacts(contacts)

	ev := s.swarm.Update(dt)
	if ev.ReachedBottom {
		// The invasion landed: straight to game over, no life decrement
		s.state = StateGameOver
		return
	}

	if s.swarm.AllDestroyed() {
		s.completeLevel()
		return
	}

	if s.ballLost() {
		s.handleBallLost()
	}
}

// handleContacts awards points for every alien the ball struck this tick.
func (s *Session) handleContacts(contacts []physics.Contact) {
	ballBody := s.ball.Body()
	for _, c := range contacts {
		var other *physics.Body
		switch {
		case c.A == ballBody:
			other = c.B
		case c.B == ballBody:
			other = c.A
		default:
			continue
		}
		if points, ok := s.swarm.DestroyByBody(other); ok {
			s.score += points
		}
	}
}

func (s *Session) ballLost() bool {
	if s.ball.Attached() {
		return false
	}
	return s.ball.Body().Position.Y < s.cfg.Session.BottomBoundary-s.cfg.Session.BallLostMargin
}

func (s *Session) handleBallLost() {
	s.lives--
	if s.lives <= 0 {
		s.state = StateGameOver
		return
	}

	// Reattaching the ball also debounces: a seated ball cannot re-trigger
	// the loss condition during the grace window.
	s.ball.Reset(s.paddle)
	s.graceTimer = s.cfg.Session.GraceSeconds
	s.state = StateReady
}

func (s *Session) completeLevel() {
	s.level++
	s.swarm.SetDifficulty(s.level)
	s.swarm.Reset()
	s.ball.Reset(s.paddle)
	s.state = StateLevelComplete
}

// Start begins play from Ready or LevelComplete. Ignored during the
// ball-lost grace window, which resumes on its own.
func (s *Session) Start() {
	if s.graceTimer > 0 {
		return
	}
	if s.state == StateReady || s.state == StateLevelComplete {
		s.state = StatePlaying
	}
}

// TogglePause flips between Playing and Paused.
func (s *Session) TogglePause() {
	switch s.state {
	case StatePlaying:
		s.state = StatePaused
	case StatePaused:
		s.state = StatePlaying
	}
}

// ReleaseBall launches the ball off the paddle during play.
func (s *Session) ReleaseBall() {
	if s.state == StatePlaying {
		s.ball.Release()
	}
}

// Restart resets the session to a fresh game: score 0, full lives, level 1,
// rebuilt paddle/ball/swarm, and any pending grace delay cancelled.
func (s *Session) Restart() {
	s.score = 0
	s.lives = s.cfg.Session.InitialLives
	s.level = 1
	s.graceTimer = 0

	s.paddle.Reset(0)
	s.ball.Reset(s.paddle)
	s.swarm.SetDifficulty(1)
	s.swarm.Reset()
	s.state = StateReady
}

// Dispose cancels any pending deferred work. The session must not be
// ticked afterwards.
func (s *Session) Dispose() {
	s.graceTimer = 0
}

// State returns the current session phase.
func (s *Session) State() State { return s.state }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Level returns the current level, starting at 1.
func (s *Session) Level() int { return s.level }

// World returns the simulation world.
func (s *Session) World() *physics.World { return s.world }

// Paddle returns the paddle controller.
func (s *Session) Paddle() *Paddle { return s.paddle }

// Ball returns the ball controller.
func (s *Session) Ball() *Ball { return s.ball }

// Swarm returns the alien swarm controller.
func (s *Session) Swarm() *Swarm { return s.swarm }

// SetPaddleInput forwards the current frame's movement input.
func (s *Session) SetPaddleInput(left, right bool) {
	s.paddle.SetInput(left, right)
}

// Message returns the banner text for the current state, empty while the
// game is running without interruption.
func (s *Session) Message() string {
	switch s.state {
	case StateReady:
		if s.graceTimer > 0 {
			return "BALL LOST"
		}
		return "Press SPACE to Start"
	case StatePaused:
		return "PAUSED - Press P to Resume"
	case StateGameOver:
		return "GAME OVER - Press SPACE to Restart"
	case StateLevelComplete:
		return fmt.Sprintf("LEVEL %d COMPLETE - Press SPACE to Continue", s.level-1)
	default:
		return ""
	}
}
