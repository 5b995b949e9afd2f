package breakout

import (
	"fmt"

	"github.com/vovakirdan/breakout3d/internal/core"
)

// HUDLine returns the one-line status text.
func (g *Game) HUDLine() string {
	s := g.State()
	return fmt.Sprintf("Score: %d  Lives: %d  Bricks: %d/%d  Cam: %s",
		s.Score, s.Lives, s.BricksLeft, len(g.world.Bricks), g.cam.Mode())
}

// Overlay returns the centered message for the current state, if any.
func (g *Game) Overlay() (title, subtitle string, ok bool) {
	s := g.State()
	switch {
	case s.Phase == core.PhaseWin:
		return "YOU WIN!", fmt.Sprintf("Final Score: %d  |  Press R to restart", s.Score), true
	case s.Phase == core.PhaseLose:
		return "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", s.Score), true
	case s.Paused:
		return "PAUSED", "Press P to resume", true
	}
	return "", "", false
}

// Hint returns the bottom-line prompt shown while the ball waits on the paddle.
func (g *Game) Hint() string {
	s := g.State()
	if s.Phase == core.PhasePlay && !s.Paused && s.BallStuck {
		return "Press SPACE to launch"
	}
	return ""
}

// RenderHUD draws the status line, prompt and overlay on a screen.
func (g *Game) RenderHUD(dst *core.Screen) {
	hud := g.HUDLine()
	dst.DrawText(1, 0, hud)
	for x := runeLen(hud) + 2; x < dst.Width(); x++ {
		dst.SetColored(x, 0, '─', core.ColorGray)
	}

	if hint := g.Hint(); hint != "" {
		dst.DrawTextCentered(dst.Height()-1, hint)
	}

	if title, subtitle, ok := g.Overlay(); ok {
		drawCenteredBox(dst, title, subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(runeLen(title), runeLen(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawTextColored(boxX+(boxW-runeLen(title))/2, boxY+1, title, core.ColorYellow)
	dst.DrawText(boxX+(boxW-runeLen(subtitle))/2, boxY+3, subtitle)
}

func runeLen(s string) int {
	return len([]rune(s))
}

// Summary is a short human-readable description of a finished run.
func (g *Game) Summary() string {
	s := g.State()
	return fmt.Sprintf("%s: score %d, lives %d, bricks cleared %d/%d",
		s.Phase, s.Score, s.Lives, g.BricksCleared(), len(g.world.Bricks))
}
