package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/breakout3d/internal/breakout"
	"github.com/vovakirdan/breakout3d/internal/storage"
)

func TestRunRows(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	runs := []storage.Run{
		{Score: 12345, Player: "ada", Outcome: "win", Difficulty: "hard", CreatedAt: now.Add(-2 * time.Hour)},
		{Score: 7, Outcome: "lose", Difficulty: "normal"},
	}

	rows := runRows(runs, now)

	if len(rows) != 2 {
		t.Fatalf("rows = %d, expected 2", len(rows))
	}
	if rows[0][0] != "1" || rows[0][1] != "12,345" || rows[0][2] != "ada" || rows[0][3] != "win" {
		t.Errorf("row 0 = %v", rows[0])
	}
	if rows[0][5] != "2 hours ago" {
		t.Errorf("played = %q, expected 2 hours ago", rows[0][5])
	}
	if rows[1][2] != "-" || rows[1][5] != "-" {
		t.Errorf("row 1 = %v, expected placeholders", rows[1])
	}
}

func TestScoreboardToggleView(t *testing.T) {
	opts := testOptions(t)
	for _, score := range []int{50, 10, 30} {
		if _, err := opts.Store.SaveRun(storage.Run{GameID: breakout.ID, Score: score, Outcome: "lose"}); err != nil {
			t.Fatal(err)
		}
	}

	m := NewScoreboardModel(opts.Store, 100, 30, ViewTop)
	if len(m.runs) != 3 || m.runs[0].Score != 50 {
		t.Fatalf("top runs = %+v", m.runs)
	}
	if m.stats == nil || m.stats.Runs != 3 {
		t.Errorf("stats = %+v", m.stats)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.view != ViewRecent || m.runs[0].Score != 30 {
		t.Errorf("recent view = %v, first = %+v", m.view, m.runs[0])
	}
	if !strings.Contains(m.View(), "RECENT RUNS") {
		t.Error("title should follow the view")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20, ViewTop)
	if !strings.Contains(m.View(), "unavailable") {
		t.Error("expected unavailable message without a store")
	}
}
