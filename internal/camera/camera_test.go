package camera

import (
	"math"
	"testing"

	"github.com/vovakirdan/breakout3d/internal/config"
	"github.com/vovakirdan/breakout3d/internal/core"
)

func newTestCamera() *Camera {
	return New(config.Default().Camera)
}

func TestNewStartsInFront(t *testing.T) {
	c := newTestCamera()
	if c.Mode() != ModeFront {
		t.Errorf("mode = %v, expected front", c.Mode())
	}
	eye := c.Eye()
	if math.Abs(eye.X) > 1e-9 || math.Abs(eye.Y-Target.Y) > 1e-9 || eye.Z <= 0 {
		t.Errorf("front eye = %+v, expected straight out on +Z", eye)
	}
}

func TestProjectFront(t *testing.T) {
	c := newTestCamera()
	const w, h = 800, 600

	x, y, ok := c.Project(Target, w, h)
	if !ok {
		t.Fatal("target should be visible")
	}
	if math.Abs(x-w/2) > 1e-6 || math.Abs(y-h/2) > 1e-6 {
		t.Errorf("target projects to (%v, %v), expected viewport center", x, y)
	}

	rx, _, ok := c.Project(Target.Add(core.V3(5, 0, 0)), w, h)
	if !ok || rx <= x {
		t.Errorf("point right of target should project right of center, got %v", rx)
	}

	_, uy, ok := c.Project(Target.Add(core.V3(0, 5, 0)), w, h)
	if !ok || uy >= y {
		t.Errorf("point above target should project above center, got %v", uy)
	}

	behind := c.Eye().Add(core.V3(0, 0, 5))
	if _, _, ok := c.Project(behind, w, h); ok {
		t.Error("point behind the camera should not project")
	}

	if _, _, ok := c.Project(Target, 0, h); ok {
		t.Error("empty viewport should not project")
	}
}

func TestSelectEasesToPreset(t *testing.T) {
	c := newTestCamera()
	c.Select(ModeLow)

	if !c.Transitioning() {
		t.Fatal("preset switch should start a transition")
	}

	c.Update(0.3)
	want := presets[ModeLow]
	if c.Pitch >= 0 || c.Pitch <= want.Pitch {
		t.Errorf("pitch halfway = %v, expected between 0 and %v", c.Pitch, want.Pitch)
	}

	c.Update(1)
	if c.Transitioning() {
		t.Error("transition should finish")
	}
	if math.Abs(c.Pitch-want.Pitch) > 1e-4 || math.Abs(c.Distance-want.Distance) > 1e-4 {
		t.Errorf("after transition pitch=%v dist=%v, expected %v/%v", c.Pitch, c.Distance, want.Pitch, want.Distance)
	}
}

func TestSelectWithoutTransitionSnaps(t *testing.T) {
	cfg := config.Default().Camera
	cfg.TransitionSeconds = 0
	c := New(cfg)

	c.Select(ModeSide)
	if c.Transitioning() {
		t.Error("zero duration should snap")
	}
	if c.Yaw != presets[ModeSide].Yaw {
		t.Errorf("yaw = %v, expected %v", c.Yaw, presets[ModeSide].Yaw)
	}
}

func TestFreeLook(t *testing.T) {
	c := newTestCamera()

	c.Look(100, 100)
	if c.Yaw != 0 || c.Pitch != 0 {
		t.Error("mouse look should be ignored outside free mode")
	}

	c.Select(ModeFree)
	c.Look(100, 0)
	if math.Abs(c.Yaw-10) > 1e-9 {
		t.Errorf("yaw = %v, expected 10", c.Yaw)
	}

	c.Look(0, 10000)
	if c.Pitch != MaxPitch {
		t.Errorf("pitch = %v, expected clamp to %v", c.Pitch, MaxPitch)
	}
	c.Look(0, -100000)
	if c.Pitch != -MaxPitch {
		t.Errorf("pitch = %v, expected clamp to %v", c.Pitch, -MaxPitch)
	}
}

func TestZoomClamps(t *testing.T) {
	c := newTestCamera()
	c.Zoom(10)
	if c.FOV != MaxFOV {
		t.Error("zoom should be ignored outside free mode")
	}

	c.Select(ModeFree)
	c.Zoom(10)
	if c.FOV != 35 {
		t.Errorf("fov = %v, expected 35", c.FOV)
	}
	c.Zoom(100)
	if c.FOV != MinFOV {
		t.Errorf("fov = %v, expected %v", c.FOV, MinFOV)
	}
	c.Zoom(-100)
	if c.FOV != MaxFOV {
		t.Errorf("fov = %v, expected %v", c.FOV, MaxFOV)
	}
}

func TestInputRoutesCameraActions(t *testing.T) {
	c := newTestCamera()

	c.Input(core.InputFrame{}.Press(core.ActionCamera3))
	if c.Mode() != ModeSide {
		t.Errorf("mode = %v, expected side", c.Mode())
	}

	c.Input(core.InputFrame{}.Press(core.ActionCamera4))
	if c.Mode() != ModeFree || c.Transitioning() {
		t.Error("camera 4 should enter free mode without a transition")
	}

	c.Input(core.InputFrame{MouseDX: 50, Wheel: 5})
	if c.FOV != 40 {
		t.Errorf("fov = %v, expected 40", c.FOV)
	}
}

func TestWrapDegrees(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{190, -170},
		{-190, 170},
		{540, 180},
		{-180, 180},
	}
	for _, tc := range tests {
		if got := wrapDegrees(tc.in); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("wrapDegrees(%v) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}
