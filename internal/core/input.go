package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move paddle left
	ActionRight          // D, Right arrow - move paddle right
	ActionRelease        // Space - launch the ball off the paddle
	ActionCamera1        // 1 - front camera
	ActionCamera2        // 2 - low camera behind the paddle
	ActionCamera3        // 3 - angled side camera
	ActionCamera4        // 4 - free mouse-look camera
	ActionPause          // P - pause/unpause
	ActionRestart        // R - new game after win or lose
	ActionQuit           // Q, Esc, Ctrl+C - exit

	actionCount
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRelease:
		return "Release"
	case ActionCamera1:
		return "Camera1"
	case ActionCamera2:
		return "Camera2"
	case ActionCamera3:
		return "Camera3"
	case ActionCamera4:
		return "Camera4"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ActionSet is a bit set of actions.
type ActionSet uint32

// Has reports whether a is in the set.
func (s ActionSet) Has(a Action) bool {
	if a <= ActionNone || a >= actionCount {
		return false
	}
	return s&(1<<uint(a)) != 0
}

// With returns a copy of the set with a added.
func (s ActionSet) With(a Action) ActionSet {
	if a <= ActionNone || a >= actionCount {
		return s
	}
	return s | 1<<uint(a)
}

// Without returns a copy of the set with a removed.
func (s ActionSet) Without(a Action) ActionSet {
	if a <= ActionNone || a >= actionCount {
		return s
	}
	return s &^ (1 << uint(a))
}

// InputFrame is the input snapshot for a single simulation frame.
type InputFrame struct {
	Down    ActionSet // Actions held this frame
	Pressed ActionSet // Actions that went down this frame

	// Mouse movement and wheel since the previous frame.
	MouseDX, MouseDY float64
	Wheel            float64
}

// Held reports whether a is held down this frame.
func (f InputFrame) Held(a Action) bool {
	return f.Down.Has(a)
}

// JustPressed reports whether a went down this frame.
func (f InputFrame) JustPressed(a Action) bool {
	return f.Pressed.Has(a)
}

// Press returns a frame where a is both held and freshly pressed.
// Convenient for scripted input and tests.
func (f InputFrame) Press(a Action) InputFrame {
	f.Down = f.Down.With(a)
	f.Pressed = f.Pressed.With(a)
	return f
}

// Hold returns a frame where a is held without a fresh press.
func (f InputFrame) Hold(a Action) InputFrame {
	f.Down = f.Down.With(a)
	return f
}

// InputTracker accumulates raw key and mouse events between frames and
// derives edge-triggered presses from the held state of consecutive frames.
type InputTracker struct {
	down     ActionSet
	prevDown ActionSet

	mouseX, mouseY float64
	lastX, lastY   float64
	haveMouse      bool
	wheel          float64
}

// NewInputTracker creates a tracker with nothing held.
func NewInputTracker() *InputTracker {
	return &InputTracker{}
}

// KeyDown marks an action as held.
func (t *InputTracker) KeyDown(a Action) {
	t.down = t.down.With(a)
}

// KeyUp marks an action as released.
func (t *InputTracker) KeyUp(a Action) {
	t.down = t.down.Without(a)
}

// SetKey marks an action held or released.
func (t *InputTracker) SetKey(a Action, down bool) {
	if down {
		t.KeyDown(a)
	} else {
		t.KeyUp(a)
	}
}

// MouseMove records an absolute cursor position. The first sample only
// establishes the origin so it never produces a jump.
func (t *InputTracker) MouseMove(x, y float64) {
	if !t.haveMouse {
		t.lastX, t.lastY = x, y
		t.haveMouse = true
	}
	t.mouseX, t.mouseY = x, y
}

// MouseWheel accumulates wheel movement for the current frame.
func (t *InputTracker) MouseWheel(dy float64) {
	t.wheel += dy
}

// Frame returns the input snapshot for this frame and rolls state over
// so the next call computes presses relative to this one.
func (t *InputTracker) Frame() InputFrame {
	f := InputFrame{
		Down:    t.down,
		Pressed: t.down &^ t.prevDown,
		Wheel:   t.wheel,
	}
	if t.haveMouse {
		f.MouseDX = t.mouseX - t.lastX
		f.MouseDY = t.lastY - t.mouseY // screen y grows downward
		t.lastX, t.lastY = t.mouseX, t.mouseY
	}

	t.prevDown = t.down
	t.wheel = 0
	return f
}

// Reset clears all held keys and mouse history.
func (t *InputTracker) Reset() {
	*t = InputTracker{}
}
