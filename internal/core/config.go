package core

// RuntimeConfig contains settings the platform passes to a game session.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters (terminal) or pixels (window)
	ScreenH  int // Screen height in characters or pixels
	TickRate int // Frames per second requested from the front end
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Phase is the top-level state of a game.
type Phase int

const (
	PhasePlay Phase = iota // Simulation running
	PhaseWin               // Every brick destroyed
	PhaseLose              // No lives left
	PhaseExit              // Player asked to quit
)

// String returns the lowercase name used in logs and storage.
func (p Phase) String() string {
	switch p {
	case PhasePlay:
		return "play"
	case PhaseWin:
		return "win"
	case PhaseLose:
		return "lose"
	case PhaseExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further simulation happens in this phase.
func (p Phase) Terminal() bool {
	return p != PhasePlay
}

// GameState is the summary a game reports to the platform after each frame.
type GameState struct {
	Score      int
	Lives      int
	BricksLeft int
	Phase      Phase
	Paused     bool
	BallStuck  bool
	Elapsed    float64 // Simulated seconds in play
}

// GameOver reports whether the game reached Win or Lose.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseWin || s.Phase == PhaseLose
}

// StepResult is returned by a game after each simulation frame.
type StepResult struct {
	State GameState
}
