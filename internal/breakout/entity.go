package breakout

import "github.com/vovakirdan/breakout3d/internal/core"

// Body is anything with an axis-aligned bounding box.
type Body interface {
	Bounds() core.Box
}

// Ball is the single ball in play.
type Ball struct {
	Position core.Vec3
	Scale    core.Vec3 // Half-extents
	Velocity core.Vec3 // Units per second, Z unused
	Stuck    bool      // Rides on the paddle until released
}

// Bounds returns the ball's bounding box.
func (b *Ball) Bounds() core.Box {
	return core.NewBox(b.Position, b.Scale)
}

// Paddle is the player's paddle. Lives are tracked here.
type Paddle struct {
	Position core.Vec3
	Scale    core.Vec3 // Half-extents
	Lives    int
}

// Bounds returns the paddle's bounding box.
func (p *Paddle) Bounds() core.Box {
	return core.NewBox(p.Position, p.Scale)
}

// Brick is one cell of the destructible grid.
type Brick struct {
	Row, Col int
	Position core.Vec3
	Scale    core.Vec3 // Half-extents, shrinks while dying
	Rotation float64   // Degrees around Z
	Hits     int       // Remaining strikes; dead below zero
	MaxHits  int       // Hits at level start
	Alive    bool
	Dying    bool // Playing the destruction animation
}

// Bounds returns the brick's bounding box.
func (b *Brick) Bounds() core.Box {
	return core.NewBox(b.Position, b.Scale)
}

// Cracked reports whether the brick has taken at least one hit.
func (b *Brick) Cracked() bool {
	return b.Hits < b.MaxHits
}

// WallSide identifies a boundary wall.
type WallSide int

const (
	WallLeft WallSide = iota
	WallRight
	WallTop
)

// String returns the side name.
func (s WallSide) String() string {
	switch s {
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	case WallTop:
		return "top"
	default:
		return "unknown"
	}
}

// Wall is a static boundary strip. It reflects the ball but never takes
// damage and never counts toward winning.
type Wall struct {
	Side     WallSide
	Position core.Vec3
	Scale    core.Vec3
	Rotation float64
	Active   bool
}

// Bounds returns the wall's bounding box.
func (w *Wall) Bounds() core.Box {
	return core.NewBox(w.Position, w.Scale)
}
