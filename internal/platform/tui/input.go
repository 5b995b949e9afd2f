package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/breakout3d/internal/core"
)

// HoldWindow is how long a movement key counts as held after its last
// key event. Terminals report presses and auto-repeats but no releases.
const HoldWindow = 200 * time.Millisecond

// mouseScale converts a cell of mouse travel into camera input units.
const mouseScale = 8.0

// terminalInput turns key and mouse messages into per-frame input.
type terminalInput struct {
	tracker *core.InputTracker
	held    map[core.Action]time.Time // Last event time of continuous actions
	pending []core.Action             // One-shot actions to release after the next frame
}

func newTerminalInput() *terminalInput {
	return &terminalInput{
		tracker: core.NewInputTracker(),
		held:    make(map[core.Action]time.Time),
	}
}

// continuous reports whether an action stays active while its key is held.
func continuous(a core.Action) bool {
	return a == core.ActionLeft || a == core.ActionRight
}

// Key records a key event for an action.
func (in *terminalInput) Key(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	in.tracker.KeyDown(a)
	if !continuous(a) {
		in.pending = append(in.pending, a)
		return
	}
	in.held[a] = now
	// Opposite direction cancels the other immediately
	opposite := core.ActionLeft
	if a == core.ActionLeft {
		opposite = core.ActionRight
	}
	if _, ok := in.held[opposite]; ok {
		delete(in.held, opposite)
		in.tracker.KeyUp(opposite)
	}
}

// Mouse records a mouse message.
func (in *terminalInput) Mouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		in.tracker.MouseWheel(1)
		return
	case tea.MouseButtonWheelDown:
		in.tracker.MouseWheel(-1)
		return
	}
	in.tracker.MouseMove(float64(msg.X)*mouseScale, float64(msg.Y)*mouseScale*2)
}

// Frame returns the input for the next simulation frame.
func (in *terminalInput) Frame(now time.Time) core.InputFrame {
	for a, last := range in.held {
		if now.Sub(last) > HoldWindow {
			delete(in.held, a)
			in.tracker.KeyUp(a)
		}
	}

	frame := in.tracker.Frame()

	for _, a := range in.pending {
		in.tracker.KeyUp(a)
	}
	in.pending = in.pending[:0]
	return frame
}

// Reset forgets all keys.
func (in *terminalInput) Reset() {
	in.tracker.Reset()
	clear(in.held)
	in.pending = in.pending[:0]
}
