// Package breakout implements the 3D breakout simulation: entities, box
// collision, the per-frame step, the destroyed-brick animation and the
// Game controller that front ends drive.
package breakout

import (
	"github.com/vovakirdan/breakout3d/internal/camera"
	"github.com/vovakirdan/breakout3d/internal/config"
	"github.com/vovakirdan/breakout3d/internal/core"
)

// ID is the identifier stored with finished runs.
const ID = "breakout3d"

// Game owns one session: its configuration, world and camera.
type Game struct {
	cfg    config.Breakout
	world  *World
	cam    *camera.Camera
	last   Events // Events of the most recent frame
	totals Events // Events since the last reset
}

// New creates a game ready to play.
func New(cfg config.Breakout) *Game {
	g := &Game{
		cfg: cfg,
		cam: camera.New(cfg.Camera),
	}
	g.Reset()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout 3D"
}

// Reset starts a brand-new game. The camera keeps its preset.
func (g *Game) Reset() {
	g.world = NewWorld(&g.cfg)
	g.last = Events{}
	g.totals = Events{}
}

// Step advances the game by one frame of dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	dt = ClampDelta(dt, g.cfg.Gameplay.MaxDelta)

	g.cam.Input(in)
	g.cam.Update(dt)

	if in.JustPressed(core.ActionRestart) && g.world.State().GameOver() {
		g.Reset()
		return core.StepResult{State: g.State()}
	}

	g.last = Step(g.world, &g.cfg, in, dt)
	g.totals.Add(g.last)
	return core.StepResult{State: g.State()}
}

// State returns the current game summary.
func (g *Game) State() core.GameState {
	return g.world.State()
}

// World exposes the simulation state.
func (g *Game) World() *World {
	return g.world
}

// Camera exposes the viewer.
func (g *Game) Camera() *camera.Camera {
	return g.cam
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.Breakout {
	return g.cfg
}

// LastEvents returns what happened in the most recent frame.
func (g *Game) LastEvents() Events {
	return g.last
}

// Totals returns the events accumulated since the last reset.
func (g *Game) Totals() Events {
	return g.totals
}

// BricksCleared returns how many grid bricks have been destroyed.
func (g *Game) BricksCleared() int {
	return len(g.world.Bricks) - g.world.BricksLeft()
}

// Render issues one draw call per visible entity.
func (g *Game) Render(r Renderer) {
	g.world.Render(r)
}
