package breakout

import (
	"math"

	"github.com/vovakirdan/breakout3d/internal/config"
	"github.com/vovakirdan/breakout3d/internal/core"
)

// Events counts what happened during one Step.
type Events struct {
	Cracks     int // Brick strikes
	Kills      int // Bricks destroyed
	Misses     int // Balls lost past the floor
	PaddleHits int
	WallHits   int // Boundary and arena-edge reflections
	Releases   int
}

// Add accumulates another frame's events.
func (e *Events) Add(o Events) {
	e.Cracks += o.Cracks
	e.Kills += o.Kills
	e.Misses += o.Misses
	e.PaddleHits += o.PaddleHits
	e.WallHits += o.WallHits
	e.Releases += o.Releases
}

// ClampDelta bounds a frame time to [0, maxDelta].
func ClampDelta(dt, maxDelta float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	if dt > maxDelta {
		return maxDelta
	}
	return dt
}

// Step advances the world by one frame of dt seconds.
//
// Order: paddle, stuck ball or release, X pass (move, arena edge, bodies),
// Y pass (move, arena edge or miss, bodies), dying bricks, paddle contact,
// then lose and win checks.
func Step(w *World, cfg *config.Breakout, in core.InputFrame, dt float64) Events {
	var ev Events
	dt = ClampDelta(dt, cfg.Gameplay.MaxDelta)

	if in.JustPressed(core.ActionQuit) {
		w.Phase = core.PhaseExit
		return ev
	}
	if w.Phase != core.PhasePlay {
		return ev
	}
	if in.JustPressed(core.ActionPause) {
		w.Paused = !w.Paused
	}
	if w.Paused {
		return ev
	}

	w.Tick++
	w.Elapsed += dt

	movePaddle(w, cfg, in, dt)

	ball := &w.Ball
	if ball.Stuck {
		attachBall(ball, &w.Paddle)
		if in.JustPressed(core.ActionRelease) {
			ball.Stuck = false
			ball.Velocity = cfg.Ball.LaunchVelocity
			ev.Releases++
		}
	}

	if !ball.Stuck {
		ball.Position.X += ball.Velocity.X * dt
		bounceX(ball, &cfg.Arena, &ev)
		collideBodies(w, cfg, axisX, dt, &ev)

		ball.Position.Y += ball.Velocity.Y * dt
		if missed := bounceY(w, &cfg.Arena, &ev); !missed {
			collideBodies(w, cfg, axisY, dt, &ev)
		}
	}

	animateDying(w, &cfg.Dying, dt)

	if !ball.Stuck && Overlaps(ball, &w.Paddle) {
		ball.Velocity.Y = math.Abs(ball.Velocity.Y)
		ev.PaddleHits++
	}

	switch {
	case w.Paddle.Lives <= 0:
		w.Phase = core.PhaseLose
	case !w.AnyAlive():
		w.Phase = core.PhaseWin
	}
	return ev
}

func movePaddle(w *World, cfg *config.Breakout, in core.InputFrame, dt float64) {
	x := w.Paddle.Position.X
	if in.Held(core.ActionLeft) {
		x -= cfg.Paddle.Speed * dt
	}
	if in.Held(core.ActionRight) {
		x += cfg.Paddle.Speed * dt
	}
	w.Paddle.Position.X = clampPaddleX(x, cfg)
}

// bounceX reflects the ball off the side edges when it is moving outward.
func bounceX(b *Ball, a *config.Arena, ev *Events) {
	switch {
	case b.Position.X > a.WallX && b.Velocity.X > 0:
		b.Velocity.X = -b.Velocity.X
		b.Position.X = a.WallX
		ev.WallHits++
	case b.Position.X < -a.WallX && b.Velocity.X < 0:
		b.Velocity.X = -b.Velocity.X
		b.Position.X = -a.WallX
		ev.WallHits++
	}
}

// bounceY reflects the ball off the ceiling, or handles a miss at the floor.
// It reports whether the ball was lost.
func bounceY(w *World, a *config.Arena, ev *Events) bool {
	b := &w.Ball
	switch {
	case b.Position.Y > a.Ceiling && b.Velocity.Y > 0:
		b.Velocity.Y = -b.Velocity.Y
		b.Position.Y = a.Ceiling
		ev.WallHits++
	case b.Position.Y <= a.Floor:
		w.Paddle.Lives--
		b.Stuck = true
		b.Velocity = core.Vec3{}
		attachBall(b, &w.Paddle)
		ev.Misses++
		return true
	}
	return false
}

// collideBodies resolves ball contacts for one axis pass. Every alive
// brick overlapping the ball is struck in row-major order; each strike
// reflects the ball on the pass axis. Walls reflect without damage.
func collideBodies(w *World, cfg *config.Breakout, ax axis, dt float64, ev *Events) {
	ball := &w.Ball
	for i := range w.Bricks {
		br := &w.Bricks[i]
		if !br.Alive || !Overlaps(ball, br) {
			continue
		}
		br.Hits--
		w.Score += cfg.Gameplay.CrackPoints
		ev.Cracks++
		reflect(ball, ax, dt)
		if br.Hits < 0 {
			br.Alive = false
			br.Dying = true
			w.Score += cfg.Gameplay.KillPoints
			ev.Kills++
		}
	}
	for i := range w.Walls {
		wall := &w.Walls[i]
		if !wall.Active || !Overlaps(ball, wall) {
			continue
		}
		reflect(ball, ax, dt)
		ev.WallHits++
	}
}
