package core

import "testing"

func TestActionSet(t *testing.T) {
	var s ActionSet
	s = s.With(ActionLeft).With(ActionRelease)

	if !s.Has(ActionLeft) || !s.Has(ActionRelease) {
		t.Fatal("set should contain Left and Release")
	}
	if s.Has(ActionRight) {
		t.Error("set should not contain Right")
	}

	s = s.Without(ActionLeft)
	if s.Has(ActionLeft) {
		t.Error("Left should have been removed")
	}

	if s.With(ActionNone) != s {
		t.Error("ActionNone should never be stored")
	}
	if s.Has(ActionNone) {
		t.Error("ActionNone should never be reported")
	}
}

func TestInputTrackerPressedIsEdgeTriggered(t *testing.T) {
	tr := NewInputTracker()

	tr.KeyDown(ActionRelease)
	f := tr.Frame()
	if !f.JustPressed(ActionRelease) || !f.Held(ActionRelease) {
		t.Fatal("first frame with key down should be pressed and held")
	}

	// Still held on the next frame: no new press
	f = tr.Frame()
	if f.JustPressed(ActionRelease) {
		t.Error("held key should not be pressed again")
	}
	if !f.Held(ActionRelease) {
		t.Error("key should still be held")
	}

	tr.KeyUp(ActionRelease)
	f = tr.Frame()
	if f.Held(ActionRelease) || f.JustPressed(ActionRelease) {
		t.Error("released key should be neither held nor pressed")
	}

	tr.KeyDown(ActionRelease)
	f = tr.Frame()
	if !f.JustPressed(ActionRelease) {
		t.Error("re-pressed key should be pressed again")
	}
}

func TestInputTrackerMouse(t *testing.T) {
	tr := NewInputTracker()

	tr.MouseMove(100, 100)
	f := tr.Frame()
	if f.MouseDX != 0 || f.MouseDY != 0 {
		t.Errorf("first mouse sample should not produce a delta, got (%v, %v)", f.MouseDX, f.MouseDY)
	}

	tr.MouseMove(110, 90)
	tr.MouseWheel(1)
	tr.MouseWheel(2)
	f = tr.Frame()
	if f.MouseDX != 10 {
		t.Errorf("MouseDX = %v, expected 10", f.MouseDX)
	}
	if f.MouseDY != 10 {
		t.Errorf("MouseDY = %v, expected 10 (screen up is positive)", f.MouseDY)
	}
	if f.Wheel != 3 {
		t.Errorf("Wheel = %v, expected 3", f.Wheel)
	}

	f = tr.Frame()
	if f.MouseDX != 0 || f.Wheel != 0 {
		t.Error("deltas should reset after each frame")
	}
}

func TestInputFramePressAndHold(t *testing.T) {
	f := InputFrame{}.Press(ActionRelease).Hold(ActionLeft)

	if !f.JustPressed(ActionRelease) || !f.Held(ActionRelease) {
		t.Error("Press should set both pressed and held")
	}
	if f.JustPressed(ActionLeft) {
		t.Error("Hold should not set pressed")
	}
	if !f.Held(ActionLeft) {
		t.Error("Hold should set held")
	}
}

func TestActionString(t *testing.T) {
	if ActionCamera3.String() != "Camera3" {
		t.Errorf("String() = %q", ActionCamera3.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("String() = %q", Action(99).String())
	}
}
