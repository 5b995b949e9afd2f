package breakout

// Overlaps reports whether two bodies overlap on X and Y.
// Boxes that only touch do not overlap.
func Overlaps(a, b Body) bool {
	return a.Bounds().Overlaps(b.Bounds())
}

// axis selects which velocity component a collision pass works on.
type axis int

const (
	axisX axis = iota
	axisY
)

// reflect flips the ball's velocity on ax and nudges it one frame-step in
// the new direction.
func reflect(b *Ball, ax axis, dt float64) {
	switch ax {
	case axisX:
		b.Velocity.X = -b.Velocity.X
		b.Position.X += b.Velocity.X * dt
	case axisY:
		b.Velocity.Y = -b.Velocity.Y
		b.Position.Y += b.Velocity.Y * dt
	}
}
