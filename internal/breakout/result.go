package breakout

import (
	"time"

	"github.com/vovakirdan/breakout3d/internal/core"
)

// Result summarizes a run for storage and reports.
type Result struct {
	Outcome       string // "win", "lose" or "exit"
	Score         int
	LivesLeft     int
	BricksCleared int
	Duration      time.Duration // Simulated play time
}

// Result reports the current run. A game still in play counts as an exit.
func (g *Game) Result() Result {
	s := g.State()
	outcome := s.Phase.String()
	if !s.GameOver() {
		outcome = core.PhaseExit.String()
	}
	return Result{
		Outcome:       outcome,
		Score:         s.Score,
		LivesLeft:     s.Lives,
		BricksCleared: g.BricksCleared(),
		Duration:      time.Duration(s.Elapsed * float64(time.Second)),
	}
}

// Worth reports whether the run is worth recording: it finished, or it
// scored before the player left.
func (r Result) Worth() bool {
	return r.Outcome != core.PhaseExit.String() || r.Score > 0
}
