package breakout

import (
	"math"

	"github.com/vovakirdan/breakout3d/internal/core"
)

// MaterialKind selects how an entity is drawn.
type MaterialKind int

const (
	MaterialWall MaterialKind = iota
	MaterialBrick
	MaterialBrickCracked
	MaterialBrickDying
	MaterialPaddle
	MaterialBall
)

// String returns the material name.
func (k MaterialKind) String() string {
	switch k {
	case MaterialWall:
		return "wall"
	case MaterialBrick:
		return "brick"
	case MaterialBrickCracked:
		return "brick-cracked"
	case MaterialBrickDying:
		return "brick-dying"
	case MaterialPaddle:
		return "paddle"
	case MaterialBall:
		return "ball"
	default:
		return "unknown"
	}
}

// Material describes the look of one draw call.
type Material struct {
	Kind  MaterialKind
	Row   int // Brick row, -1 otherwise
	Color core.Color
}

// Transform places a unit quad in the world.
type Transform struct {
	Position core.Vec3
	Scale    core.Vec3 // Half-extents
	Rotation float64   // Degrees around Z
}

// Corners returns the quad corners in the Z plane of Position, counter-clockwise
// from bottom-left, with rotation applied.
func (t Transform) Corners() [4]core.Vec3 {
	sin, cos := math.Sincos(t.Rotation * math.Pi / 180)
	offsets := [4][2]float64{
		{-t.Scale.X, -t.Scale.Y},
		{t.Scale.X, -t.Scale.Y},
		{t.Scale.X, t.Scale.Y},
		{-t.Scale.X, t.Scale.Y},
	}
	var out [4]core.Vec3
	for i, o := range offsets {
		out[i] = core.V3(
			t.Position.X+o[0]*cos-o[1]*sin,
			t.Position.Y+o[0]*sin+o[1]*cos,
			t.Position.Z,
		)
	}
	return out
}

// Renderer draws one entity per call. Implementations own projection and
// output; the game only reports what is visible.
type Renderer interface {
	Draw(Transform, Material)
}

// Render issues draw calls for walls, alive bricks, dying bricks, the
// paddle and the ball, in that order.
func (w *World) Render(r Renderer) {
	for i := range w.Walls {
		wall := &w.Walls[i]
		if !wall.Active {
			continue
		}
		r.Draw(Transform{Position: wall.Position, Scale: wall.Scale, Rotation: wall.Rotation},
			Material{Kind: MaterialWall, Row: -1, Color: core.ColorGray})
	}

	for i := range w.Bricks {
		br := &w.Bricks[i]
		if !br.Alive {
			continue
		}
		kind := MaterialBrick
		if br.Cracked() {
			kind = MaterialBrickCracked
		}
		r.Draw(Transform{Position: br.Position, Scale: br.Scale, Rotation: br.Rotation},
			Material{Kind: kind, Row: br.Row, Color: core.RowColor(br.Row)})
	}

	for i := range w.Bricks {
		br := &w.Bricks[i]
		if !br.Dying {
			continue
		}
		r.Draw(Transform{Position: br.Position, Scale: br.Scale, Rotation: br.Rotation},
			Material{Kind: MaterialBrickDying, Row: br.Row, Color: core.RowColor(br.Row)})
	}

	r.Draw(Transform{Position: w.Paddle.Position, Scale: w.Paddle.Scale},
		Material{Kind: MaterialPaddle, Row: -1, Color: core.ColorBlue})
	r.Draw(Transform{Position: w.Ball.Position, Scale: w.Ball.Scale},
		Material{Kind: MaterialBall, Row: -1, Color: core.ColorWhite})
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Transform, Material)

// Draw calls f.
func (f RendererFunc) Draw(t Transform, m Material) {
	f(t, m)
}
