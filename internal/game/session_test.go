package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swarmpong/internal/config"
	"swarmpong/internal/physics"
)

func newTestSession() *Session {
	return NewSession(config.Default())
}

// loseBall drives a playing session into the ball-lost condition.
func loseBall(s *Session) {
	s.ReleaseBall()
	s.Ball().Body().Position = physics.V3(0, -3, 0)
	s.Ball().Body().Velocity = physics.V3(0, -2, 0)
	s.Tick(0.001)
}

func TestNewSessionStartsReady(t *testing.T) {
	s := newTestSession()
	defer s.Dispose()

	assert.Equal(t, StateReady, s.State())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 3, s.Lives())
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, "Press SPACE to Start", s.Message())
	assert.True(t, s.Ball().Attached())
	assert.Equal(t, 45, s.Swarm().AliveCount())
}

func TestStartAndPauseTransitions(t *testing.T) {
	s := newTestSession()
	defer s.Dispose()

	s.Start()
	assert.Equal(t, StatePlaying, s.State())
	assert.Empty(t, s.Message())

	s.TogglePause()
	assert.Equal(t, StatePaused, s.State())
	assert.Equal(t, "PAUSED - Press P to Resume", s.Message())

	// Ticking while paused changes nothing
	pos := s.Ball().Body().Position
	s.Tick(0.5)
	assert.Equal(t, pos, s.Ball().Body().Position)

	s.TogglePause()
	assert.Equal(t, StatePlaying, s.State())
}

func TestReleaseBallOnlyWhilePlaying(t *testing.T) {
	s := newTestSession()
	defer s.Dispose()

	s.ReleaseBall()
	assert.True(t, s.Ball().Attached())

	s.Start()
	s.ReleaseBall()
	assert.False(t, s.Ball().Attached())
}

func TestBallRidesPaddleUntilReleased(t *testing.T) {
	s := newTestSession()
	defer s.Dispose()
	s.Start()

	s.SetPaddleInput(false, true)
	s.Tick(0.1)

	p := s.Paddle().Body().Position
	b := s.Ball().Body().Position
	assert.Equal(t, p.X, b.X)
	assert.Greater(t, b.Y, p.Y)
}

func TestBallLostEntersGraceThenResumes(t *testing.T) {
	s := newTestSession()
	defer s.Dispose()
	s.Start()

	loseBall(s)

	assert.Equal(t, StateReady, s.State())
	assert.Equal(t, 2, s.Lives())
	assert.Equal(t, "BALL LOST", s.Message())
	assert.True(t, s.Ball().Attached())

	// Start is ignored during the grace window
	s.Start()
	assert.Equal(t, StateReady, s.State())

	s.Tick(1.0)
	assert.Equal(t, StateReady, s.State())
	s.Tick(1.5)
	assert.Equal(t, StatePlaying, s.State())
}

func TestBallLostDoesNotRetrigger(t *testing.T) {
	s := newTestSession()
	defer s.Dispose()
	s.Start()

	loseBall(s)
	require.Equal(t, 2, s.Lives())

	// Resume and tick on: the reattached ball sits on the paddle, well
	// above the loss boundary
	s.Tick(2.5)
	require.Equal(t, StatePlaying, s.State())
	for i := 0; i < 10; i++ {
		s.Tick(0.016)
	}
	assert.Equal(t, 2, s.Lives())
	assert.Equal(t, StatePlaying, s.State())
}

func TestLastLifeLostIsImmediateGameOver(t *testing.T) {
	cfg := config.Default()
	cfg.Session.InitialLives = 1
	s := NewSession(cfg)
	defer s.Dispose()
	s.Start()

	loseBall(s)

	assert.Equal(t, StateGameOver, s.State())
	assert.Equal(t, 0, s.Lives())
	assert.Equal(t, "GAME OVER - Press SPACE to Restart", s.Message())

	// No grace countdown is pending after game over
	s.Tick(5)
	assert.Equal(t, StateGameOver, s.State())
}

func TestSwarmReachingBottomEndsGame(t *testing.T) {
	s := newTestSession()
	defer s.Dispose()
	s.Start()

	s.Swarm().Aliens()[0].Body.Position.Y = 0.4
	s.Tick(0.001)

	assert.Equal(t, StateGameOver, s.State())
	// The invasion landing does not burn a life
	assert.Equal(t, 3, s.Lives())
}

func TestClearingSwarmAdvancesLevel(t *testing.T) {
	s := newTestSession()
	defer s.Dispose()
	s.Start()
	s.ReleaseBall()

	for _, a := range s.Swarm().Aliens() {
		s.Swarm().DestroyByBody(a.Body)
	}
	s.Tick(0.001)

	assert.Equal(t, StateLevelComplete, s.State())
	assert.Equal(t, 2, s.Level())
	assert.Equal(t, 3, s.Lives())
	assert.Equal(t, "LEVEL 1 COMPLETE - Press SPACE to Continue", s.Message())

	// Fresh formation, ball reseated, play resumes on Start
	assert.Equal(t, 45, s.Swarm().AliveCount())
	assert.True(t, s.Ball().Attached())
	s.Start()
	assert.Equal(t, StatePlaying, s.State())
}

func TestBallHittingAlienScores(t *testing.T) {
	s := newTestSession()
	defer s.Dispose()
	s.Start()
	s.ReleaseBall()

	// Park the ball overlapping a bottom-row (large, 10 pt) alien
	target := s.Swarm().Aliens()[44]
	s.Ball().Body().Position = target.Body.Position
	s.Ball().Body().Velocity = physics.V3(0, 3, 0)
	s.Tick(0.0)

	assert.Equal(t, 10, s.Score())
	assert.False(t, target.Alive)
	assert.Equal(t, 44, s.Swarm().AliveCount())
}

func TestRestartResetsEverything(t *testing.T) {
	s := newTestSession()
	defer s.Dispose()
	s.Start()
	s.ReleaseBall()

	target := s.Swarm().Aliens()[44]
	s.Ball().Body().Position = target.Body.Position
	s.Tick(0.0)
	require.Equal(t, 10, s.Score())

	loseBall(s)
	require.Equal(t, 2, s.Lives())

	s.Restart()
	assert.Equal(t, StateReady, s.State())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 3, s.Lives())
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, 45, s.Swarm().AliveCount())
	assert.True(t, s.Ball().Attached())
	assert.Equal(t, 0.0, s.Paddle().TargetX())
}

func TestRestartCancelsGraceCountdown(t *testing.T) {
	s := newTestSession()
	defer s.Dispose()
	s.Start()

	loseBall(s)
	require.Equal(t, "BALL LOST", s.Message())

	s.Restart()
	assert.Equal(t, "Press SPACE to Start", s.Message())

	// No pending countdown flips the state underneath the player
	s.Tick(5)
	assert.Equal(t, StateReady, s.State())
	s.Start()
	assert.Equal(t, StatePlaying, s.State())
}
