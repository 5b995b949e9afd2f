// Package camera implements the orbiting viewer for the breakout arena:
// numbered presets with eased transitions, a free mouse-look mode, and
// world-to-screen projection.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/breakout3d/internal/config"
	"github.com/vovakirdan/breakout3d/internal/core"
)

// Mode is a camera preset.
type Mode int

const (
	ModeFront  Mode = iota // Straight at the arena
	ModeLow                // Low angle from behind the paddle
	ModeSide               // Angled from the right
	ModeFree               // Mouse look
)

// String returns the preset name shown in the HUD.
func (m Mode) String() string {
	switch m {
	case ModeFront:
		return "front"
	case ModeLow:
		return "low"
	case ModeSide:
		return "side"
	case ModeFree:
		return "free"
	default:
		return "unknown"
	}
}

// Clip planes and limits.
const (
	Near     = 0.1
	Far      = 200.0
	MaxPitch = 89.0
	MinFOV   = 1.0
	MaxFOV   = 45.0
)

// Target is the point every preset orbits.
var Target = core.V3(0, -3, 0)

// orbit is a camera placement in spherical coordinates around Target.
type orbit struct {
	Yaw, Pitch, Distance float64 // Degrees, degrees, world units
}

var presets = map[Mode]orbit{
	ModeFront: {Yaw: 0, Pitch: 0, Distance: 34},
	ModeLow:   {Yaw: 0, Pitch: -48, Distance: 30},
	ModeSide:  {Yaw: 38, Pitch: 18, Distance: 36},
}

// transition holds the active preset tweens.
type transition struct {
	yaw, pitch, dist *gween.Tween
}

// Camera orbits the arena center.
type Camera struct {
	Yaw      float64 // Degrees around Y, 0 looks down -Z
	Pitch    float64 // Degrees above the arena plane
	Distance float64
	FOV      float64 // Vertical field of view in degrees

	mode        Mode
	duration    float64
	sensitivity float64
	anim        *transition
}

// New creates a camera in the front preset.
func New(cfg config.Camera) *Camera {
	front := presets[ModeFront]
	return &Camera{
		Yaw:         front.Yaw,
		Pitch:       front.Pitch,
		Distance:    front.Distance,
		FOV:         core.ClampF(cfg.FOV, MinFOV, MaxFOV),
		mode:        ModeFront,
		duration:    cfg.TransitionSeconds,
		sensitivity: cfg.MouseSensitivity,
	}
}

// Mode returns the active preset.
func (c *Camera) Mode() Mode {
	return c.mode
}

// Transitioning reports whether a preset switch is still easing.
func (c *Camera) Transitioning() bool {
	return c.anim != nil
}

// Select switches preset. Fixed presets ease to their placement; the free
// preset keeps the current placement and unlocks mouse look.
func (c *Camera) Select(m Mode) {
	c.mode = m
	if m == ModeFree {
		c.anim = nil
		return
	}
	to, ok := presets[m]
	if !ok {
		return
	}
	if c.duration <= 0 {
		c.anim = nil
		c.Yaw, c.Pitch, c.Distance = to.Yaw, to.Pitch, to.Distance
		return
	}
	d := float32(c.duration)
	c.anim = &transition{
		yaw:   gween.New(float32(c.Yaw), float32(to.Yaw), d, ease.InOutQuad),
		pitch: gween.New(float32(c.Pitch), float32(to.Pitch), d, ease.InOutQuad),
		dist:  gween.New(float32(c.Distance), float32(to.Distance), d, ease.InOutQuad),
	}
}

// SelectAction maps the Camera1..Camera4 actions to presets.
func (c *Camera) SelectAction(a core.Action) bool {
	switch a {
	case core.ActionCamera1:
		c.Select(ModeFront)
	case core.ActionCamera2:
		c.Select(ModeLow)
	case core.ActionCamera3:
		c.Select(ModeSide)
	case core.ActionCamera4:
		c.Select(ModeFree)
	default:
		return false
	}
	return true
}

// Update advances an active transition by dt seconds.
func (c *Camera) Update(dt float64) {
	if c.anim == nil {
		return
	}
	step := float32(dt)
	yaw, doneYaw := c.anim.yaw.Update(step)
	pitch, donePitch := c.anim.pitch.Update(step)
	dist, doneDist := c.anim.dist.Update(step)
	c.Yaw, c.Pitch, c.Distance = float64(yaw), float64(pitch), float64(dist)
	if doneYaw && donePitch && doneDist {
		c.anim = nil
	}
}

// Look turns the free camera by a mouse delta.
func (c *Camera) Look(dx, dy float64) {
	if c.mode != ModeFree || (dx == 0 && dy == 0) {
		return
	}
	c.Yaw = wrapDegrees(c.Yaw + dx*c.sensitivity)
	c.Pitch = core.ClampF(c.Pitch+dy*c.sensitivity, -MaxPitch, MaxPitch)
}

// Zoom narrows the free camera's field of view by wheel steps.
func (c *Camera) Zoom(wheel float64) {
	if c.mode != ModeFree || wheel == 0 {
		return
	}
	c.FOV = core.ClampF(c.FOV-wheel, MinFOV, MaxFOV)
}

// Input applies one frame of camera controls.
func (c *Camera) Input(in core.InputFrame) {
	for _, a := range []core.Action{core.ActionCamera1, core.ActionCamera2, core.ActionCamera3, core.ActionCamera4} {
		if in.JustPressed(a) {
			c.SelectAction(a)
		}
	}
	c.Look(in.MouseDX, in.MouseDY)
	c.Zoom(in.Wheel)
}

// Eye returns the camera position in world space.
func (c *Camera) Eye() core.Vec3 {
	yaw := mgl64.DegToRad(c.Yaw)
	pitch := mgl64.DegToRad(c.Pitch)
	dir := core.V3(
		math.Sin(yaw)*math.Cos(pitch),
		math.Sin(pitch),
		math.Cos(yaw)*math.Cos(pitch),
	)
	return Target.Add(dir.Scale(c.Distance))
}

// View returns the view matrix.
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(vec(c.Eye()), vec(Target), mgl64.Vec3{0, 1, 0})
}

// Projection returns the perspective matrix for a viewport aspect ratio.
func (c *Camera) Projection(aspect float64) mgl64.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), aspect, Near, Far)
}

// Project maps a world point into a w by h viewport with the origin at the
// top-left. It reports false for points behind the camera.
func (c *Camera) Project(p core.Vec3, w, h int) (x, y float64, ok bool) {
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	view := c.View()
	proj := c.Projection(float64(w) / float64(h))

	clip := proj.Mul4(view).Mul4x1(vec(p).Vec4(1))
	if clip.W() <= Near {
		return 0, 0, false
	}
	win := mgl64.Project(vec(p), view, proj, 0, 0, w, h)
	return win.X(), float64(h) - win.Y(), true
}

func vec(v core.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func wrapDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	switch {
	case d > 180:
		d -= 360
	case d <= -180:
		d += 360
	}
	return d
}
