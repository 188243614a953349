package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swarmpong/internal/config"
	"swarmpong/internal/physics"
)

func testSwarmWorld() *physics.World {
	return physics.NewWorld(physics.Bounds{
		Min: physics.V3(-9, -5, -2),
		Max: physics.V3(9, 16, 2),
	})
}

func defaultSwarm() (*Swarm, *physics.World) {
	w := testSwarmWorld()
	return NewSwarm(w, config.Default().Swarm, 0.5), w
}

func TestSwarmGridComposition(t *testing.T) {
	s, w := defaultSwarm()

	require.Len(t, s.Aliens(), 45)
	assert.Equal(t, 45, s.AliveCount())
	assert.Len(t, w.Bodies(), 45)

	counts := map[AlienType]int{}
	for _, a := range s.Aliens() {
		counts[a.Type]++
	}
	assert.Equal(t, 9, counts[AlienSmall])
	assert.Equal(t, 18, counts[AlienMedium])
	assert.Equal(t, 18, counts[AlienLarge])

	// Row-major layout: top row first, centered on x=0
	top := s.Aliens()[0]
	assert.Equal(t, AlienSmall, top.Type)
	assert.InDelta(t, -6.4, top.Body.Position.X, 1e-9)
	assert.InDelta(t, 13.0, top.Body.Position.Y, 1e-9)

	last := s.Aliens()[44]
	assert.Equal(t, AlienLarge, last.Type)
	assert.InDelta(t, 6.4, last.Body.Position.X, 1e-9)
	assert.InDelta(t, 13.0-4*1.2, last.Body.Position.Y, 1e-9)
}

func TestSwarmTotalPointValue(t *testing.T) {
	s, _ := defaultSwarm()
	total := 0
	for _, a := range s.Aliens() {
		total += a.Type.PointValue()
	}
	assert.Equal(t, 810, total)
}

func TestAlienBodiesAreKinematicPlanarSpheres(t *testing.T) {
	s, _ := defaultSwarm()
	for _, a := range s.Aliens() {
		assert.Equal(t, physics.Kinematic, a.Body.Kind)
		assert.Equal(t, physics.ShapeSphere, a.Body.Shape.Kind)
		assert.True(t, a.Body.PlanarNormal)
		assert.InDelta(t, 1.05, a.Body.BounceBoost, 1e-9)
		assert.Equal(t, a.Type.Radius(), a.Body.Shape.Radius)
	}
}

func TestSwarmMarchesRightThenTranslates(t *testing.T) {
	s, _ := defaultSwarm()
	assert.Equal(t, DirectionRight, s.Direction())

	startX := s.Aliens()[0].Body.Position.X
	ev := s.Update(1.0)
	assert.False(t, ev.ReachedBottom)

	// One step at level 1: 1.5 u/s over a 1.0s cadence
	assert.InDelta(t, startX+1.5, s.Aliens()[0].Body.Position.X, 1e-9)
}

func TestSwarmEdgeFlipDescendsWithoutHorizontalMove(t *testing.T) {
	cfg := config.Default().Swarm
	cfg.Rows = 1
	cfg.Cols = 1
	w := testSwarmWorld()
	s := NewSwarm(w, cfg, 0.5)

	alien := s.Aliens()[0]
	alien.Body.Position.X = 8
	startY := alien.Body.Position.Y

	// 8 + 1.5 would cross the x=9 wall: flip and step down instead
	s.Update(1.0)
	assert.Equal(t, DirectionLeft, s.Direction())
	assert.Equal(t, 8.0, alien.Body.Position.X)
	assert.InDelta(t, startY-0.5, alien.Body.Position.Y, 1e-9)

	// The next step marches left
	s.Update(1.0)
	assert.InDelta(t, 6.5, alien.Body.Position.X, 1e-9)
	assert.Equal(t, DirectionLeft, s.Direction())
}

func TestSwarmCadenceAcceleratesMonotonically(t *testing.T) {
	s, _ := defaultSwarm()
	assert.Equal(t, 1.0, s.MoveInterval())

	prev := s.MoveInterval()
	for i, a := range s.Aliens() {
		_, ok := s.DestroyByBody(a.Body)
		require.True(t, ok)

		interval := s.MoveInterval()
		assert.LessOrEqual(t, interval, prev)
		assert.GreaterOrEqual(t, interval, 0.2)

		// Level 1 schedule: 1.0 - 0.025 per destroyed alien, floored
		want := 1.0 - 0.025*float64(i+1)
		if want < 0.2 {
			want = 0.2
		}
		assert.InDelta(t, want, interval, 1e-9)
		prev = interval
	}
	assert.Equal(t, 0.2, s.MoveInterval())
	assert.True(t, s.AllDestroyed())
}

func TestDestroyByBodyIsIdempotent(t *testing.T) {
	s, w := defaultSwarm()
	alien := s.Aliens()[0]

	points, ok := s.DestroyByBody(alien.Body)
	require.True(t, ok)
	assert.Equal(t, 30, points)
	assert.False(t, alien.Alive)
	assert.Equal(t, 44, s.AliveCount())
	assert.Len(t, w.Bodies(), 44)

	points, ok = s.DestroyByBody(alien.Body)
	assert.False(t, ok)
	assert.Equal(t, 0, points)
	assert.Equal(t, 44, s.AliveCount())
}

func TestDestroyByBodyIgnoresForeignBodies(t *testing.T) {
	s, _ := defaultSwarm()
	stranger := physics.NewBody(physics.V3(0, 0, 0), physics.Sphere(1), physics.Dynamic)
	points, ok := s.DestroyByBody(stranger)
	assert.False(t, ok)
	assert.Equal(t, 0, points)
}

func TestSwarmBottomLatch(t *testing.T) {
	cfg := config.Default().Swarm
	cfg.Rows = 1
	cfg.Cols = 1
	w := testSwarmWorld()
	s := NewSwarm(w, cfg, 0.5)

	alien := s.Aliens()[0]
	alien.Body.Position.Y = 0.4

	ev := s.Update(0.01)
	assert.True(t, ev.ReachedBottom)

	// Latched: the event fires exactly once
	ev = s.Update(0.01)
	assert.False(t, ev.ReachedBottom)

	// Reset clears the latch along with the formation
	s.Reset()
	s.Aliens()[0].Body.Position.Y = 0.4
	ev = s.Update(0.01)
	assert.True(t, ev.ReachedBottom)
}

func TestSwarmResetRestoresFullFormation(t *testing.T) {
	s, w := defaultSwarm()
	for i := 0; i < 10; i++ {
		s.DestroyByBody(s.Aliens()[i].Body)
	}
	s.Update(1.0)
	assert.Less(t, s.MoveInterval(), 1.0)

	s.Reset()
	assert.Equal(t, 45, s.AliveCount())
	assert.Len(t, w.Bodies(), 45)
	assert.Equal(t, DirectionRight, s.Direction())
	assert.Equal(t, 1.0, s.MoveInterval())
}

func TestSetDifficultyScalesWithLevel(t *testing.T) {
	s, _ := defaultSwarm()

	s.SetDifficulty(3)
	s.Reset()
	alien := s.Aliens()[0]
	startX := alien.Body.Position.X

	// Level 3 horizontal speed: 1.5 + 2*0.3 = 2.1 u/s
	s.Update(1.0)
	assert.InDelta(t, startX+2.1, alien.Body.Position.X, 1e-9)

	// Level 3 cadence schedule: 0.025 + 2*0.005 per kill
	s.DestroyByBody(alien.Body)
	assert.InDelta(t, 1.0-0.035, s.MoveInterval(), 1e-9)
}
