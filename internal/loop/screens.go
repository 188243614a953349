package loop

import (
	"fmt"

	"swarmpong/internal/draw"
	"swarmpong/internal/game"
)

// drawUI draws the HUD and the state banner over the rendered canvas.
func drawUI(session *game.Session, canvas *draw.Canvas, cw *draw.ChunkWriter) {
	termWidth := canvas.TerminalWidth()
	termHeight := canvas.TerminalHeight()

	drawHUD(session, cw, termWidth)

	if session.State() == game.StateReady && session.Message() == "Press SPACE to Start" {
		drawTitleScreen(cw, termWidth/2, termHeight/2)
		return
	}

	if msg := session.Message(); msg != "" {
		cw.WriteAt(termWidth/2-len(msg)/2, termHeight/2, msg)
	}
}

// drawHUD draws score, level, and lives along the top row.
func drawHUD(session *game.Session, cw *draw.ChunkWriter, termWidth int) {
	scoreText := fmt.Sprintf("Score: %d", session.Score())
	cw.WriteAt(2, 1, scoreText)

	levelText := fmt.Sprintf("Level: %d", session.Level())
	cw.WriteAt(termWidth/2-len(levelText)/2, 1, levelText)

	livesText := fmt.Sprintf("Lives: %d", session.Lives())
	cw.WriteAt(termWidth-len(livesText)-1, 1, livesText)
}

// drawTitleScreen draws the start banner and controls.
func drawTitleScreen(cw *draw.ChunkWriter, centerX, centerY int) {
	title := "S W A R M P O N G"
	cw.WriteAt(centerX-len(title)/2, centerY-2, title)

	subtitle := "Press SPACE to Start"
	cw.WriteAt(centerX-len(subtitle)/2, centerY+1, subtitle)

	controls := "Controls: A/D or Arrows to move, SPACE to launch, P to pause, Q to quit"
	cw.WriteAt(centerX-len(controls)/2, centerY+4, controls)
}
