package breakout

import (
	"github.com/vovakirdan/breakout3d/internal/config"
	"github.com/vovakirdan/breakout3d/internal/core"
)

// World is the complete simulation state of one game.
type World struct {
	Ball   Ball
	Paddle Paddle
	Bricks []Brick // Row-major: Row*Cols+Col
	Walls  []Wall
	Rows   int
	Cols   int

	Score   int
	Phase   core.Phase
	Paused  bool
	Tick    uint64  // Simulated frames
	Elapsed float64 // Simulated seconds
}

// NewWorld builds a fresh game from a configuration.
func NewWorld(cfg *config.Breakout) *World {
	w := &World{
		Rows:  cfg.Bricks.Rows,
		Cols:  cfg.Bricks.Cols,
		Phase: core.PhasePlay,
		Paddle: Paddle{
			Position: core.V3(clampPaddleX(0, cfg), cfg.Paddle.Y, 0),
			Scale:    cfg.Paddle.Scale,
			Lives:    cfg.Gameplay.Lives,
		},
		Ball: Ball{
			Scale: cfg.Ball.Scale,
			Stuck: true,
		},
	}
	attachBall(&w.Ball, &w.Paddle)

	w.Bricks = make([]Brick, 0, w.Rows*w.Cols)
	for row := range w.Rows {
		hits := cfg.Bricks.HitsForRow(row)
		for col := range w.Cols {
			w.Bricks = append(w.Bricks, Brick{
				Row: row,
				Col: col,
				Position: core.V3(
					cfg.Bricks.OriginX+float64(col)*cfg.Bricks.SpacingX,
					cfg.Bricks.OriginY-float64(row)*cfg.Bricks.SpacingY,
					0,
				),
				Scale:   cfg.Bricks.Scale,
				Hits:    hits,
				MaxHits: hits,
				Alive:   true,
			})
		}
	}

	w.Walls = buildWalls(&cfg.Arena)
	return w
}

// buildWalls places the boundary strips just outside the ball's clamp
// range so they frame the arena without touching a clamped ball.
func buildWalls(a *config.Arena) []Wall {
	midY := (a.Ceiling + a.Floor) / 2
	halfH := (a.Ceiling-a.Floor)/2 + 1
	return []Wall{
		{Side: WallLeft, Position: core.V3(-(a.WallX + 1), midY, 0), Scale: core.V3(0.5, halfH, 0.5), Active: true},
		{Side: WallRight, Position: core.V3(a.WallX+1, midY, 0), Scale: core.V3(0.5, halfH, 0.5), Active: true},
		{Side: WallTop, Position: core.V3(0, a.Ceiling+1, 0), Scale: core.V3(a.WallX+1.5, 0.5, 0.5), Active: true},
	}
}

// Brick returns the brick at row, col, or nil if out of range.
func (w *World) Brick(row, col int) *Brick {
	if row < 0 || row >= w.Rows || col < 0 || col >= w.Cols {
		return nil
	}
	return &w.Bricks[row*w.Cols+col]
}

// BricksLeft counts alive grid bricks.
func (w *World) BricksLeft() int {
	n := 0
	for i := range w.Bricks {
		if w.Bricks[i].Alive {
			n++
		}
	}
	return n
}

// AnyAlive reports whether at least one grid brick is alive.
func (w *World) AnyAlive() bool {
	for i := range w.Bricks {
		if w.Bricks[i].Alive {
			return true
		}
	}
	return false
}

// State summarizes the world for the platform.
func (w *World) State() core.GameState {
	return core.GameState{
		Score:      w.Score,
		Lives:      w.Paddle.Lives,
		BricksLeft: w.BricksLeft(),
		Phase:      w.Phase,
		Paused:     w.Paused,
		BallStuck:  w.Ball.Stuck,
		Elapsed:    w.Elapsed,
	}
}

// attachBall puts the ball on top of the paddle center.
func attachBall(b *Ball, p *Paddle) {
	b.Position = p.Position.Add(core.V3(0, p.Scale.Y+b.Scale.Y, 0))
}

// clampPaddleX keeps the whole paddle on its track.
func clampPaddleX(x float64, cfg *config.Breakout) float64 {
	offset := cfg.Paddle.Scale.X
	return core.ClampF(x, cfg.Arena.TrackMin+offset, cfg.Arena.TrackMax-offset)
}
