// Package core provides fundamental types and utilities shared by the
// simulation and its front ends. It has no external dependencies so the
// game logic stays pure and testable without a terminal or a window.
package core

import "math"

// Vec3 is a float64 3D vector in world units.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// V3 is shorthand for constructing a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v multiplied by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Box is an axis-aligned bounding box described by its center and its
// half-extent on each axis.
type Box struct {
	Center Vec3
	Half   Vec3
}

// NewBox creates a box from a center position and half-extents.
func NewBox(center, half Vec3) Box {
	return Box{Center: center, Half: half}
}

// Overlaps reports whether two boxes intersect on the X/Y plane.
// Z is ignored. Boxes that only touch along an edge do not overlap:
// the separation on both axes must be strictly less than the summed
// half-extents.
func (b Box) Overlaps(other Box) bool {
	if math.Abs(b.Center.X-other.Center.X) >= b.Half.X+other.Half.X {
		return false
	}
	if math.Abs(b.Center.Y-other.Center.Y) >= b.Half.Y+other.Half.Y {
		return false
	}
	return true
}

// Min returns the lower-left-near corner.
func (b Box) Min() Vec3 {
	return b.Center.Sub(b.Half)
}

// Max returns the upper-right-far corner.
func (b Box) Max() Vec3 {
	return b.Center.Add(b.Half)
}

// Rect represents an integer cell rectangle on a Screen.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
