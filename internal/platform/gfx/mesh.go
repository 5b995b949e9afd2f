package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/breakout3d/internal/breakout"
	"github.com/vovakirdan/breakout3d/internal/camera"
	"github.com/vovakirdan/breakout3d/internal/core"
)

// rgba is a vertex color with components in [0, 1].
type rgba struct {
	R, G, B, A float32
}

// palette maps core colors to vertex colors.
var palette = map[core.Color]rgba{
	core.ColorDefault: {0.85, 0.85, 0.85, 1},
	core.ColorRed:     {0.90, 0.22, 0.21, 1},
	core.ColorGreen:   {0.30, 0.75, 0.35, 1},
	core.ColorYellow:  {0.95, 0.85, 0.25, 1},
	core.ColorBlue:    {0.30, 0.50, 0.95, 1},
	core.ColorMagenta: {0.80, 0.35, 0.80, 1},
	core.ColorCyan:    {0.25, 0.80, 0.85, 1},
	core.ColorWhite:   {1, 1, 1, 1},
	core.ColorOrange:  {0.98, 0.55, 0.15, 1},
	core.ColorGray:    {0.45, 0.45, 0.50, 1},
}

// materialColor shades a material's base color.
func materialColor(m breakout.Material) rgba {
	c, ok := palette[m.Color]
	if !ok {
		c = palette[core.ColorDefault]
	}
	switch m.Kind {
	case breakout.MaterialBrickCracked:
		c.R, c.G, c.B = c.R*0.6, c.G*0.6, c.B*0.6
	case breakout.MaterialBrickDying:
		c.A = 0.6
	}
	return c
}

// mesh collects projected quads for one DrawTriangles call.
type mesh struct {
	cam      *camera.Camera
	w, h     int
	vertices []ebiten.Vertex
	indices  []uint16
}

// reset prepares the mesh for a new frame.
func (m *mesh) reset(cam *camera.Camera, w, h int) {
	m.cam = cam
	m.w, m.h = w, h
	m.vertices = m.vertices[:0]
	m.indices = m.indices[:0]
}

// Draw implements breakout.Renderer. Quads with a corner behind the camera
// are skipped.
func (m *mesh) Draw(t breakout.Transform, mat breakout.Material) {
	var pts [4][2]float32
	for i, c := range t.Corners() {
		x, y, ok := m.cam.Project(c, m.w, m.h)
		if !ok {
			return
		}
		pts[i] = [2]float32{float32(x), float32(y)}
	}

	col := materialColor(mat)
	base := uint16(len(m.vertices)) //#nosec G115 -- a frame holds a few hundred vertices
	for _, p := range pts {
		m.vertices = append(m.vertices, ebiten.Vertex{
			DstX:   p[0],
			DstY:   p[1],
			SrcX:   1.5,
			SrcY:   1.5,
			ColorR: col.R,
			ColorG: col.G,
			ColorB: col.B,
			ColorA: col.A,
		})
	}
	m.indices = append(m.indices, base, base+1, base+2, base, base+2, base+3)
}
