package breakout

import (
	"math"

	"github.com/vovakirdan/breakout3d/internal/config"
)

// animateDying advances destroyed bricks: they fall, spin and shrink until
// they drop out of the arena.
func animateDying(w *World, d *config.Dying, dt float64) {
	shrink := d.ShrinkRate * dt
	for i := range w.Bricks {
		br := &w.Bricks[i]
		if !br.Dying {
			continue
		}
		br.Position.Y -= d.FallSpeed * dt
		br.Rotation = math.Mod(br.Rotation+d.SpinStep, 360)
		br.Scale.X = math.Max(0, br.Scale.X-shrink)
		br.Scale.Y = math.Max(0, br.Scale.Y-shrink)
		br.Scale.Z = math.Max(0, br.Scale.Z-shrink)
		if br.Position.Y < d.RemoveBelow {
			br.Dying = false
		}
	}
}

// DyingCount returns how many bricks are still animating.
func (w *World) DyingCount() int {
	n := 0
	for i := range w.Bricks {
		if w.Bricks[i].Dying {
			n++
		}
	}
	return n
}
