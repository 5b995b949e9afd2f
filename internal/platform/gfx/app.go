// Package gfx runs breakout3d in a desktop window using Ebitengine.
// Entities are projected through the game camera and drawn as flat
// colored quads.
package gfx

import (
	"errors"
	"image"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/breakout3d/internal/breakout"
	"github.com/vovakirdan/breakout3d/internal/config"
	"github.com/vovakirdan/breakout3d/internal/core"
	"github.com/vovakirdan/breakout3d/internal/storage"
)

// Options configures the window front end.
type Options struct {
	Config     config.Breakout
	Difficulty config.DifficultyPreset
	Player     string
	Width      int // Initial window size in pixels
	Height     int
	TPS        int            // Simulation ticks per second
	Store      *storage.Store // Optional; runs are not recorded when nil
	Logger     *log.Logger
}

// DefaultOptions returns a 1280x720 window at 60 ticks per second.
func DefaultOptions() Options {
	return Options{
		Config:     config.Default(),
		Difficulty: config.DifficultyNormal,
		Width:      1280,
		Height:     720,
		TPS:        60,
	}
}

var background = color.RGBA{R: 0x10, G: 0x12, B: 0x1a, A: 0xff}

// App implements ebiten.Game.
type App struct {
	game     *breakout.Game
	opts     Options
	tracker  *core.InputTracker
	mesh     mesh
	white    *ebiten.Image
	width    int
	height   int
	lastTick time.Time
	runSaved bool
}

// NewApp creates a window app for a fresh game.
func NewApp(opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.TPS <= 0 {
		opts.TPS = 60
	}
	cfg := opts.Config
	config.ApplyPreset(&cfg, opts.Difficulty)

	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	return &App{
		game:    breakout.New(cfg),
		opts:    opts,
		tracker: core.NewInputTracker(),
		white:   white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		width:   opts.Width,
		height:  opts.Height,
	}
}

// Game returns the running game.
func (a *App) Game() *breakout.Game {
	return a.game
}

// Update polls input and advances the simulation by the wall time since the
// previous update.
func (a *App) Update() error {
	now := time.Now()
	dt := 1 / float64(a.opts.TPS)
	if !a.lastTick.IsZero() {
		dt = now.Sub(a.lastTick).Seconds()
	}
	a.lastTick = now

	wasOver := a.game.State().GameOver()
	state := a.game.Step(a.pollInput(), dt).State

	switch {
	case state.Phase == core.PhaseExit:
		a.recordRun()
		return ebiten.Termination
	case state.GameOver():
		a.recordRun()
	case wasOver:
		a.runSaved = false
	}
	return nil
}

// pollInput reads the keyboard and mouse into one frame.
func (a *App) pollInput() core.InputFrame {
	for action, keys := range keyBindings {
		a.tracker.SetKey(action, anyPressed(keys))
	}

	mx, my := ebiten.CursorPosition()
	a.tracker.MouseMove(float64(mx), float64(my))
	_, wheel := ebiten.Wheel()
	a.tracker.MouseWheel(wheel)

	frame := a.tracker.Frame()
	// Look only while dragging
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && !ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		frame.MouseDX, frame.MouseDY = 0, 0
	}
	return frame
}

// recordRun stores the current run once.
func (a *App) recordRun() {
	if a.runSaved {
		return
	}
	a.runSaved = true

	res := a.game.Result()
	if a.opts.Store == nil || !res.Worth() {
		return
	}
	id, err := a.opts.Store.SaveRun(storage.Run{
		GameID:        a.game.ID(),
		Player:        a.opts.Player,
		Score:         res.Score,
		Outcome:       res.Outcome,
		LivesLeft:     res.LivesLeft,
		BricksCleared: res.BricksCleared,
		Difficulty:    string(a.opts.Difficulty),
		Duration:      res.Duration,
	})
	if err != nil {
		a.opts.Logger.Warn("could not save run", "error", err)
		return
	}
	a.opts.Logger.Debug("run saved", "id", id, "outcome", res.Outcome, "score", res.Score)
}

// Draw renders the scene and HUD.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	a.mesh.reset(a.game.Camera(), a.width, a.height)
	a.game.Render(&a.mesh)
	if len(a.mesh.indices) > 0 {
		screen.DrawTriangles(a.mesh.vertices, a.mesh.indices, a.white, &ebiten.DrawTrianglesOptions{})
	}

	ebitenutil.DebugPrintAt(screen, a.game.HUDLine(), 8, 8)
	if hint := a.game.Hint(); hint != "" {
		ebitenutil.DebugPrintAt(screen, hint, a.width/2-len(hint)*3, a.height-24)
	}
	if title, subtitle, ok := a.game.Overlay(); ok {
		ebitenutil.DebugPrintAt(screen, title, a.width/2-len(title)*3, a.height/2-16)
		ebitenutil.DebugPrintAt(screen, subtitle, a.width/2-len(subtitle)*3, a.height/2+4)
	}
}

// Layout uses the window size as the logical screen size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.width, a.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens the window and plays until the player quits or closes it.
// It returns the final game.
func Run(opts Options) (*breakout.Game, error) {
	app := NewApp(opts)

	ebiten.SetWindowSize(app.width, app.height)
	ebiten.SetWindowTitle(app.game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(app.opts.TPS)

	err := ebiten.RunGame(app)
	app.recordRun()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return app.game, err
	}
	return app.game, nil
}
