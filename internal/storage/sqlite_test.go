package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{
		GameID:        "breakout3d",
		Player:        "ada",
		Score:         120,
		Outcome:       "win",
		LivesLeft:     2,
		BricksCleared: 50,
		Difficulty:    "hard",
		Duration:      95 * time.Second,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("run id %q is not a UUID: %v", id, err)
	}

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run == nil {
		t.Fatal("RunByID() returned nil for saved run")
	}
	if run.Player != "ada" || run.Score != 120 || run.Outcome != "win" ||
		run.LivesLeft != 2 || run.BricksCleared != 50 || run.Difficulty != "hard" {
		t.Errorf("round trip mismatch: %+v", run)
	}
	if run.Duration != 95*time.Second {
		t.Errorf("duration = %v, expected 1m35s", run.Duration)
	}
	if run.CreatedAt.IsZero() {
		t.Error("created_at should be set")
	}

	missing, err := store.RunByID("nope")
	if err != nil || missing != nil {
		t.Errorf("RunByID(missing) = %v, %v; expected nil, nil", missing, err)
	}
}

func TestStoreSaveRunKeepsGivenID(t *testing.T) {
	store := openTestStore(t)

	want := uuid.NewString()
	got, err := store.SaveRun(Run{ID: want, GameID: "g", Outcome: "lose"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if got != want {
		t.Errorf("id = %q, expected %q", got, want)
	}

	if _, err := store.SaveRun(Run{ID: want, GameID: "g", Outcome: "lose"}); err == nil {
		t.Error("duplicate id should fail")
	}

	run, _ := store.RunByID(want)
	if run == nil || run.Difficulty != "normal" {
		t.Errorf("empty difficulty should default to normal, got %+v", run)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		if _, err := store.SaveRun(Run{GameID: "test", Score: (i + 1) * 100, Outcome: "lose"}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := store.SaveRun(Run{GameID: "other", Score: 9999, Outcome: "win"}); err != nil {
		t.Fatal(err)
	}

	runs, err := store.TopRuns("test", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{30, 10, 20} {
		if _, err := store.SaveRun(Run{GameID: "test", Score: score, Outcome: "lose"}); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := store.RecentRuns("test", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].Score != 20 || runs[1].Score != 10 {
		t.Errorf("recent runs = %v, expected 20 then 10", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("breakout3d")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	for _, score := range []int{100, 300, 200} {
		store.SaveRun(Run{GameID: "breakout3d", Score: score, Outcome: "lose"}) //nolint:errcheck
	}

	high, err = store.HighScore("breakout3d")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "a", Score: 1, Outcome: "lose"}) //nolint:errcheck
	store.SaveRun(Run{GameID: "a", Score: 2, Outcome: "lose"}) //nolint:errcheck
	store.SaveRun(Run{GameID: "b", Score: 3, Outcome: "lose"}) //nolint:errcheck

	if err := store.ClearRuns("a"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	if runs, _ := store.TopRuns("a", 10); len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	if runs, _ := store.TopRuns("b", 10); len(runs) != 1 {
		t.Error("Other game's runs should not be affected")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("breakout3d")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	runs := []Run{
		{GameID: "breakout3d", Score: 200, Outcome: "win", BricksCleared: 50, Duration: time.Minute},
		{GameID: "breakout3d", Score: 40, Outcome: "lose", BricksCleared: 10, Duration: 30 * time.Second},
		{GameID: "breakout3d", Score: 60, Outcome: "exit", BricksCleared: 15, Duration: 30 * time.Second},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := store.Stats("breakout3d")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.Wins != 1 || stats.Losses != 1 {
		t.Errorf("runs/wins/losses = %d/%d/%d, expected 3/1/1", stats.Runs, stats.Wins, stats.Losses)
	}
	if stats.HighScore != 200 || stats.AvgScore != 100 {
		t.Errorf("high/avg = %d/%v, expected 200/100", stats.HighScore, stats.AvgScore)
	}
	if stats.BricksCleared != 75 {
		t.Errorf("bricks cleared = %d, expected 75", stats.BricksCleared)
	}
	if stats.PlayTime != 2*time.Minute {
		t.Errorf("play time = %v, expected 2m", stats.PlayTime)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("last played should be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
