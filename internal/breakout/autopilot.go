package breakout

import "github.com/vovakirdan/breakout3d/internal/core"

// Autopilot produces input that keeps the paddle under the ball. It is
// used by the headless sim command and by tests.
type Autopilot struct {
	// Offset aims the paddle this far from the ball's X.
	Offset float64
	// DeadZone is the distance within which the paddle does not move.
	DeadZone float64
}

// NewAutopilot returns an autopilot with a small dead zone.
func NewAutopilot() *Autopilot {
	return &Autopilot{DeadZone: 0.2}
}

// Input returns the next frame of input for w.
func (a *Autopilot) Input(w *World) core.InputFrame {
	var in core.InputFrame
	if w.Phase != core.PhasePlay {
		return in
	}
	if w.Ball.Stuck {
		return in.Press(core.ActionRelease)
	}

	diff := w.Ball.Position.X + a.Offset - w.Paddle.Position.X
	switch {
	case diff > a.DeadZone:
		in = in.Hold(core.ActionRight)
	case diff < -a.DeadZone:
		in = in.Hold(core.ActionLeft)
	}
	return in
}

// Run drives g with the autopilot for at most frames steps of dt seconds,
// stopping early when the game ends.
func (a *Autopilot) Run(g *Game, frames int, dt float64) Events {
	var total Events
	for range frames {
		if g.State().Phase.Terminal() {
			break
		}
		res := g.Step(a.Input(g.World()), dt)
		total.Add(g.LastEvents())
		if res.State.Phase.Terminal() {
			break
		}
	}
	return total
}
