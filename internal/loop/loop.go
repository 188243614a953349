// Package loop provides the main game loop: input, session tick, draw.
package loop

import (
	"bufio"
	"io"
	"time"

	"swarmpong/internal/config"
	"swarmpong/internal/draw"
	"swarmpong/internal/game"
	"swarmpong/internal/input"
)

const targetFPS = 60
const targetFrameTime = time.Second / targetFPS

// Options configures a game run.
type Options struct {
	// TermSizeFunc reports terminal dimensions each frame. Defaults to
	// querying os.Stdout.
	TermSizeFunc draw.TermSizeFunc

	// Settings holds the game configuration. Zero value loads from the
	// environment.
	Settings *config.Settings
}

// Run starts the game loop with the standard Input → Update → Draw cycle.
// Blocks until the player quits or the input stream closes.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	sizeFunc := opts.TermSizeFunc
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}
	var cfg config.Settings
	if opts.Settings != nil {
		cfg = *opts.Settings
	} else {
		cfg = config.LoadFromEnv()
	}

	session := game.NewSession(cfg)
	defer session.Dispose()

	stream := input.StartStream(r)
	cw := draw.NewChunkWriter(w)

	draw.HideCursor(cw)
	defer func() {
		draw.ShowCursor(w)
		draw.ClearScreen(w)
	}()

	termWidth, termHeight, err := sizeFunc()
	if err != nil {
		return err
	}
	canvas := draw.NewCanvas(termWidth, termHeight,
		cfg.World.MinX, cfg.World.MaxX, cfg.World.MinY, cfg.World.MaxY)

	var prevSpace, prevPause bool
	lastTime := time.Now()

	for {
		frameStart := time.Now()
		dt := frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart

		// ===== INPUT PHASE =====
		in := stream.Read()
		if in.Quit || stream.Closed() {
			return nil
		}

		if in.Space && !prevSpace {
			handleSpace(session, stream)
		}
		if in.Pause && !prevPause {
			session.TogglePause()
		}
		prevSpace = in.Space
		prevPause = in.Pause

		session.SetPaddleInput(in.Left, in.Right)

		// ===== UPDATE PHASE =====
		session.Tick(dt)

		// ===== DRAW PHASE =====
		termWidth, termHeight, err = sizeFunc()
		if err != nil {
			return err
		}
		canvas.Resize(termWidth, termHeight)

		draw.ClearScreen(cw)
		drawFrame(session, cfg, canvas, cw)
		if err := cw.Flush(); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}
}

// handleSpace dispatches the space key by session state: start, restart, or
// release the ball.
func handleSpace(session *game.Session, stream *input.Stream) {
	switch session.State() {
	case game.StateReady, game.StateLevelComplete:
		session.Start()
	case game.StateGameOver:
		session.Restart()
		stream.Reset()
	case game.StatePlaying:
		session.ReleaseBall()
	}
}

// drawFrame renders the playfield and UI overlay for one frame.
func drawFrame(session *game.Session, cfg config.Settings, canvas *draw.Canvas, cw *draw.ChunkWriter) {
	canvas.Clear()

	// Bottom boundary cue
	canvas.HLine(cfg.Session.BottomBoundary - cfg.Session.BallLostMargin)

	paddle := session.Paddle().Body()
	canvas.FillRect(paddle.Position.X, paddle.Position.Y, paddle.Shape.W, paddle.Shape.H)

	ball := session.Ball().Body()
	canvas.FillDisc(ball.Position.X, ball.Position.Y, ball.Shape.Radius)

	for _, alien := range session.Swarm().Aliens() {
		if !alien.Alive {
			continue
		}
		r := alien.Body.Shape.Radius
		canvas.FillRect(alien.Body.Position.X, alien.Body.Position.Y, r*2.4, r*1.6)
	}

	canvas.Render(cw)
	drawUI(session, canvas, cw)
}
