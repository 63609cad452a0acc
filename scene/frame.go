package scene

import (
	"math"

	"golang.org/x/image/math/f32"
)

// Quad is a filled polygon of four world coordinate vertices, counter-clockwise.
type Quad struct {
	Verts [4]f32.Vec2
	Color f32.Vec3
}

// Frame is one redraw: clear to Background, then draw Quads in order.
type Frame struct {
	Viewport   Viewport
	Background f32.Vec3
	Quads      []Quad
}

// Frame returns the draw commands for the current state.
func (sc *Scene) Frame() Frame {
	return Frame{
		Viewport:   sc.Viewport,
		Background: Background,
		Quads:      sc.AppendQuads(make([]Quad, 0, 2+sc.Squares.Len())),
	}
}

// AppendQuads appends draw commands to dst: spinner, player, then squares in insertion order.
func (sc *Scene) AppendQuads(dst []Quad) []Quad {
	center := f32.Vec2{float32(sc.Viewport.Width) * 0.5, float32(sc.Viewport.Height) * 0.5}
	dst = append(dst, rotated(center, spinnerSize, float32(sc.Angle), spinnerColor))
	dst = append(dst, square(sc.Player, playerSize, playerColor))
	for _, sq := range sc.Squares.Slice() {
		dst = append(dst, square(sq.Pos, squareSize, sq.Color))
	}
	return dst
}

// square returns axis aligned quad centered at p extending size in each direction.
func square(p f32.Vec2, size float32, c f32.Vec3) Quad {
	x, y := p[0], p[1]
	return Quad{
		Verts: [4]f32.Vec2{
			{x - size, y - size},
			{x + size, y - size},
			{x + size, y + size},
			{x - size, y + size},
		},
		Color: c,
	}
}

// rotated returns square about p turned by deg degrees counter-clockwise.
func rotated(p f32.Vec2, size, deg float32, c f32.Vec3) Quad {
	q := square(f32.Vec2{}, size, c)
	rad := float64(deg) * math.Pi / 180
	sin, cos := float32(math.Sin(rad)), float32(math.Cos(rad))
	for i, v := range q.Verts {
		q.Verts[i] = f32.Vec2{
			p[0] + v[0]*cos - v[1]*sin,
			p[1] + v[0]*sin + v[1]*cos,
		}
	}
	return q
}
