package tui

import (
	"math"
	"strings"

	"github.com/vovakirdan/breakout3d/internal/breakout"
	"github.com/vovakirdan/breakout3d/internal/core"
)

// Minimum terminal size for the scene.
const (
	MinWidth  = 30
	MinHeight = 15
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(theme.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// glyphs picks the fill character per material.
var glyphs = map[breakout.MaterialKind]rune{
	breakout.MaterialWall:         '░',
	breakout.MaterialBrick:        '█',
	breakout.MaterialBrickCracked: '▓',
	breakout.MaterialBrickDying:   '▒',
	breakout.MaterialPaddle:       '=',
	breakout.MaterialBall:         '●',
}

// sceneRenderer rasterizes draw calls into a screen through the game camera.
// Terminal cells are about twice as tall as wide, so projection uses a
// viewport of double height and halves the result.
type sceneRenderer struct {
	game   *breakout.Game
	screen *core.Screen
	top    int // First row available to the scene
}

// Draw implements breakout.Renderer.
func (r *sceneRenderer) Draw(t breakout.Transform, m breakout.Material) {
	w := r.screen.Width()
	h := r.screen.Height() - r.top
	if w <= 0 || h <= 0 {
		return
	}

	cam := r.game.Camera()
	var quad [4][2]float64
	for i, c := range t.Corners() {
		x, y, ok := cam.Project(c, w, h*2)
		if !ok {
			return
		}
		quad[i] = [2]float64{x, y / 2}
	}

	glyph := glyphs[m.Kind]
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range quad {
		minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
		minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
	}

	x0 := core.Clamp(int(math.Floor(minX)), 0, w-1)
	x1 := core.Clamp(int(math.Ceil(maxX)), 0, w-1)
	y0 := core.Clamp(int(math.Floor(minY)), 0, h-1)
	y1 := core.Clamp(int(math.Ceil(maxY)), 0, h-1)

	filled := false
	if quadArea(quad) > 1e-9 {
		for cy := y0; cy <= y1; cy++ {
			for cx := x0; cx <= x1; cx++ {
				if insideQuad(quad, float64(cx)+0.5, float64(cy)+0.5) {
					r.screen.SetColored(cx, cy+r.top, glyph, m.Color)
					filled = true
				}
			}
		}
	}

	// Thin objects become a line along their center row
	if !filled {
		cy := int(math.Floor((minY + maxY) / 2))
		if cy < 0 || cy >= h {
			return
		}
		for cx := x0; cx <= x1; cx++ {
			if fx := float64(cx) + 0.5; fx >= minX && fx <= maxX {
				r.screen.SetColored(cx, cy+r.top, glyph, m.Color)
				filled = true
			}
		}
		if cx := (minX + maxX) / 2; !filled && cx >= 0 && cx < float64(w) {
			r.screen.SetColored(int(cx), cy+r.top, glyph, m.Color)
		}
	}
}

// quadArea returns the unsigned area of a quad.
func quadArea(q [4][2]float64) float64 {
	sum := 0.0
	for i := range q {
		a, b := q[i], q[(i+1)%len(q)]
		sum += a[0]*b[1] - b[0]*a[1]
	}
	return math.Abs(sum) / 2
}

// insideQuad reports whether (x, y) lies inside a convex quad of either
// winding.
func insideQuad(q [4][2]float64, x, y float64) bool {
	var pos, neg bool
	for i := range q {
		a, b := q[i], q[(i+1)%len(q)]
		cross := (b[0]-a[0])*(y-a[1]) - (b[1]-a[1])*(x-a[0])
		switch {
		case cross > 0:
			pos = true
		case cross < 0:
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}

// renderGame draws the scene and HUD of a game into a screen.
func renderGame(g *breakout.Game, s *core.Screen) {
	s.Clear()
	if s.Width() < MinWidth || s.Height() < MinHeight {
		s.DrawTextCentered(s.Height()/2, "Window too small")
		return
	}
	g.Render(&sceneRenderer{game: g, screen: s, top: 1})
	g.RenderHUD(s)
}
