package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"swarmpong/internal/config"
	"swarmpong/internal/physics"
)

func testBall() *Ball {
	return NewBall(config.BallSettings{
		Radius:           0.4,
		MaxSpeed:         20,
		MinVerticalSpeed: 2.0,
		LaunchVX:         3,
		LaunchVY:         9,
	})
}

func TestBallReleaseSetsLaunchVelocity(t *testing.T) {
	b := testBall()
	assert.True(t, b.Attached())

	b.Release()
	assert.False(t, b.Attached())
	assert.Equal(t, physics.V3(3, 9, 0), b.Body().Velocity)
}

func TestBallReleaseIsIdempotent(t *testing.T) {
	b := testBall()
	b.Release()
	b.Body().Velocity = physics.V3(-5, -5, 0)

	// A second release must not re-launch a ball already in flight
	b.Release()
	assert.Equal(t, physics.V3(-5, -5, 0), b.Body().Velocity)
}

func TestBallResetSeatsOnPaddle(t *testing.T) {
	b := testBall()
	p := testPaddle()
	b.Release()
	b.Body().Velocity = physics.V3(4, -7, 1)

	b.Reset(p)
	assert.True(t, b.Attached())
	assert.Equal(t, physics.Vec3{}, b.Body().Velocity)
	// Paddle top (y=1 + half height 0.25) plus the ball radius
	assert.InDelta(t, 1.65, b.Body().Position.Y, 1e-9)
	assert.Equal(t, 0.0, b.Body().Position.X)
}

func TestBallTracksPaddleWhileAttached(t *testing.T) {
	b := testBall()
	p := testPaddle()
	b.Reset(p)

	p.SetInput(false, true)
	p.Update(0.1)
	b.TrackPaddle(p)
	assert.InDelta(t, 1.5, b.Body().Position.X, 1e-9)

	// A released ball ignores the paddle
	b.Release()
	p.Update(0.1)
	b.TrackPaddle(p)
	assert.InDelta(t, 1.5, b.Body().Position.X, 1e-9)
}

func TestSpeedEnvelopeClampsMax(t *testing.T) {
	b := testBall()
	b.Release()
	b.Body().Velocity = physics.V3(0, 30, 0)

	b.EnforceSpeedEnvelope()
	assert.InDelta(t, 20.0, b.Body().Velocity.Len(), 1e-9)
}

func TestSpeedEnvelopeKeepsVerticalFloor(t *testing.T) {
	b := testBall()
	b.Release()

	// A shallow downward path gets steepened, sign preserved
	b.Body().Velocity = physics.V3(8, -0.5, 0)
	b.EnforceSpeedEnvelope()
	assert.Equal(t, -2.0, b.Body().Velocity.Y)

	b.Body().Velocity = physics.V3(8, 0.5, 0)
	b.EnforceSpeedEnvelope()
	assert.Equal(t, 2.0, b.Body().Velocity.Y)

	// Already steep enough is left alone
	b.Body().Velocity = physics.V3(8, -6, 0)
	b.EnforceSpeedEnvelope()
	assert.Equal(t, -6.0, b.Body().Velocity.Y)
}

func TestSpeedEnvelopeCapsAfterVerticalFloor(t *testing.T) {
	b := testBall()
	b.Release()

	// Near-horizontal and over the cap: raising the vertical floor must
	// not leave the total speed above the maximum
	b.Body().Velocity = physics.V3(25, 1, 0)
	b.EnforceSpeedEnvelope()

	v := b.Body().Velocity
	assert.Equal(t, 2.0, v.Y)
	assert.InDelta(t, 20.0, v.Len(), 1e-9)
	assert.Greater(t, v.X, 0.0)

	// Horizontal shrink scales X and Z together
	b.Body().Velocity = physics.V3(18, -1, 9)
	b.EnforceSpeedEnvelope()

	v = b.Body().Velocity
	assert.Equal(t, -2.0, v.Y)
	assert.InDelta(t, 20.0, v.Len(), 1e-9)
	assert.InDelta(t, 2.0, v.X/v.Z, 1e-9)
}

func TestSpeedEnvelopeSkipsAttachedBall(t *testing.T) {
	b := testBall()
	b.EnforceSpeedEnvelope()
	assert.Equal(t, physics.Vec3{}, b.Body().Velocity)
}
