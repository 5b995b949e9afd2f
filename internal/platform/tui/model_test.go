package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/breakout3d/internal/breakout"
	"github.com/vovakirdan/breakout3d/internal/config"
	"github.com/vovakirdan/breakout3d/internal/core"
	"github.com/vovakirdan/breakout3d/internal/storage"
)

func testOptions(t *testing.T) Options {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return Options{
		Config:  config.Default(),
		Player:  "tester",
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60},
		Store:   store,
	}
}

// send feeds messages through the model like the Bubble Tea runtime.
func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		if m, ok = next.(Model); !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

// loseNow puts the ball just above the floor on its last life.
func loseNow(g *breakout.Game) {
	w := g.World()
	w.Paddle.Lives = 1
	w.Ball.Stuck = false
	w.Ball.Position = core.V3(5, -14.99, 0)
	w.Ball.Velocity = core.V3(0, -5.5, 0)
}

func TestModelTickLaunchesBall(t *testing.T) {
	m := NewModel(testOptions(t))
	t0 := time.Unix(1000, 0)

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace}, TickMsg(t0))

	if m.Game().State().BallStuck {
		t.Error("space should launch the ball")
	}
	if m.Game().World().Tick != 1 {
		t.Errorf("tick = %d, expected 1", m.Game().World().Tick)
	}

	before := m.Game().World().Elapsed
	m = send(t, m, TickMsg(t0.Add(20*time.Millisecond)))
	if got := m.Game().World().Elapsed - before; got < 0.0199 || got > 0.0201 {
		t.Errorf("dt = %v, expected the wall time between ticks", got)
	}
}

func TestModelRecordsLoss(t *testing.T) {
	opts := testOptions(t)
	opts.Difficulty = config.DifficultyHard
	m := NewModel(opts)
	t0 := time.Unix(1000, 0)

	loseNow(m.Game())
	m = send(t, m, TickMsg(t0), TickMsg(t0.Add(10*time.Millisecond)))

	if m.Game().State().Phase != core.PhaseLose {
		t.Fatalf("phase = %v, expected lose", m.Game().State().Phase)
	}

	runs, err := opts.Store.RecentRuns(breakout.ID, 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs = %d, expected exactly one", len(runs))
	}
	r := runs[0]
	if r.Outcome != "lose" || r.Player != "tester" || r.Difficulty != "hard" || r.LivesLeft != 0 {
		t.Errorf("run = %+v", r)
	}

	// Restart begins a new run that is recorded separately
	m = send(t, m, runeKey('r'), TickMsg(t0.Add(20*time.Millisecond)))
	if m.Game().State().Phase != core.PhasePlay {
		t.Fatalf("phase after restart = %v", m.Game().State().Phase)
	}
	if m.Game().State().Lives != 2 {
		t.Errorf("lives = %d, expected hard preset 2", m.Game().State().Lives)
	}

	loseNow(m.Game())
	m = send(t, m, TickMsg(t0.Add(30*time.Millisecond)), TickMsg(t0.Add(40*time.Millisecond)))
	if runs, _ := opts.Store.RecentRuns(breakout.ID, 10); len(runs) != 2 {
		t.Errorf("runs = %d, expected 2 after second loss", len(runs))
	}
}

func TestModelQuitSkipsEmptyRun(t *testing.T) {
	opts := testOptions(t)
	m := NewModel(opts)

	next, cmd := m.Update(runeKey('q'))
	m = next.(Model)
	if cmd != nil {
		t.Error("quit should go through the simulation first")
	}

	next, cmd = m.Update(TickMsg(time.Unix(1000, 0)))
	m = next.(Model)
	if !m.IsQuitting() || cmd == nil {
		t.Fatal("expected quit after the next tick")
	}
	if m.Game().State().Phase != core.PhaseExit {
		t.Errorf("phase = %v, expected exit", m.Game().State().Phase)
	}
	if runs, _ := opts.Store.RecentRuns(breakout.ID, 10); len(runs) != 0 {
		t.Errorf("runs = %d, expected none for a scoreless exit", len(runs))
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelQuitRecordsScoredRun(t *testing.T) {
	opts := testOptions(t)
	m := NewModel(opts)
	m.Game().World().Score = 12

	m = send(t, m, runeKey('q'), TickMsg(time.Unix(1000, 0)))

	runs, _ := opts.Store.RecentRuns(breakout.ID, 10)
	if len(runs) != 1 || runs[0].Outcome != "exit" || runs[0].Score != 12 {
		t.Errorf("runs = %+v, expected one exit run with score 12", runs)
	}
}

func TestModelBackToMenu(t *testing.T) {
	m := NewModel(testOptions(t))
	t0 := time.Unix(1000, 0)

	// Esc does nothing while playing
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back should be ignored during play")
	}

	m = send(t, m, runeKey('p'), TickMsg(t0), tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back should work while paused")
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(testOptions(t))
	m = send(t, m, tea.WindowSizeMsg{Width: 90, Height: 32})

	view := m.View()
	if !strings.Contains(view, "Score:") {
		t.Error("view should include the HUD")
	}
	if got := strings.Count(view, "\n"); got != 31 {
		t.Errorf("view has %d line breaks, expected 31", got)
	}
}

func TestSessionModelFlow(t *testing.T) {
	opts := testOptions(t)
	var s tea.Model = NewSessionModel(opts)

	step := func(msg tea.Msg) {
		t.Helper()
		s, _ = s.Update(msg)
	}

	step(tea.KeyMsg{Type: tea.KeyTab})
	if s.(SessionModel).screen != screenScoreboard {
		t.Fatal("tab should open the scoreboard")
	}
	step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.(SessionModel).screen != screenMenu {
		t.Fatal("esc should return to the menu")
	}

	// Menu opens on Normal; move down to Hard
	step(tea.KeyMsg{Type: tea.KeyDown})
	step(tea.KeyMsg{Type: tea.KeyEnter})
	sess := s.(SessionModel)
	if sess.screen != screenGame {
		t.Fatal("enter should start a game")
	}
	if lives := sess.game.Game().State().Lives; lives != 2 {
		t.Errorf("lives = %d, expected hard preset", lives)
	}

	step(runeKey('p'))
	step(TickMsg(time.Unix(1000, 0)))
	step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.(SessionModel).screen != screenMenu {
		t.Error("esc while paused should return to the menu")
	}
	if s.View() == "" {
		t.Error("menu view should not be empty")
	}
}
