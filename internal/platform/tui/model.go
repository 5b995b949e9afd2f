package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/breakout3d/internal/breakout"
	"github.com/vovakirdan/breakout3d/internal/config"
	"github.com/vovakirdan/breakout3d/internal/core"
	"github.com/vovakirdan/breakout3d/internal/storage"
)

// Options configures a terminal game session.
type Options struct {
	Config     config.Breakout
	Difficulty config.DifficultyPreset
	Player     string
	Runtime    core.RuntimeConfig
	Store      *storage.Store // Optional; runs are not recorded when nil
	Logger     *log.Logger    // Optional; defaults to log.Default()
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.Default()
}

// NewGame builds a game from the options with the difficulty preset applied.
func NewGame(opts Options) *breakout.Game {
	cfg := opts.Config
	config.ApplyPreset(&cfg, opts.Difficulty)
	return breakout.New(cfg)
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       *breakout.Game
	screen     *core.Screen
	opts       Options
	keys       GameKeyMap
	input      *terminalInput
	lastTick   time.Time
	gameState  core.GameState
	exitOnBack bool // Standalone play quits instead of returning to a menu
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current run has been recorded
}

// NewModel creates a model for a fresh game.
func NewModel(opts Options) Model {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	game := NewGame(opts)
	return Model{
		game:      game,
		screen:    core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		opts:      opts,
		keys:      DefaultGameKeyMap(),
		input:     newTerminalInput(),
		gameState: game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.input.Mouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.opts.logger().Warn("screenshot failed", "error", err)
		} else {
			m.opts.logger().Debug("screenshot saved", "path", path)
		}
		return m, nil
	}

	// Back to menu while nothing is in motion
	if MapKeyToMenuAction(msg) == MenuActionBack && (m.gameState.GameOver() || m.gameState.Paused) {
		m.recordRun()
		if m.exitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil
	}

	m.input.Key(m.keys.Action(msg), time.Now())
	return m, nil
}

// handleTick advances the simulation by the wall time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1 / float64(m.opts.Runtime.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	wasOver := m.gameState.GameOver()
	result := m.game.Step(m.input.Frame(now), dt)
	m.gameState = result.State

	switch {
	case m.gameState.Phase == core.PhaseExit:
		m.recordRun()
		m.quitting = true
		return m, tea.Quit
	case m.gameState.GameOver():
		m.recordRun()
	case wasOver:
		// Restarted
		m.runSaved = false
		m.input.Reset()
	}

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// recordRun stores the current run once. Runs abandoned before scoring are
// not kept.
func (m *Model) recordRun() {
	if m.runSaved {
		return
	}
	m.runSaved = true

	res := m.game.Result()
	if m.opts.Store == nil || !res.Worth() {
		return
	}

	difficulty := m.opts.Difficulty
	if difficulty == "" {
		difficulty = config.DifficultyNormal
	}

	id, err := m.opts.Store.SaveRun(storage.Run{
		GameID:        m.game.ID(),
		Player:        m.opts.Player,
		Score:         res.Score,
		Outcome:       res.Outcome,
		LivesLeft:     res.LivesLeft,
		BricksCleared: res.BricksCleared,
		Difficulty:    string(difficulty),
		Duration:      res.Duration,
	})
	if err != nil {
		m.opts.logger().Warn("could not save run", "error", err)
		return
	}
	m.opts.logger().Debug("run saved", "id", id, "outcome", res.Outcome, "score", res.Score)
}

// saveScreenshot writes the current screen to a text file.
func (m *Model) saveScreenshot() (string, error) {
	renderGame(m.game, m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".breakout3d", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	renderGame(m.game, m.screen)
	return RenderScreen(m.screen)
}

// Game returns the running game.
func (m Model) Game() *breakout.Game {
	return m.game
}

// IsQuitting returns true if the user asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one game in the local terminal and returns the final game.
func Run(opts Options) (*breakout.Game, error) {
	model := NewModel(opts)
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Free camera look and zoom
	)

	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	if fm, ok := final.(Model); ok {
		return fm.game, nil
	}
	return model.game, nil
}
