// Package scene holds the state of the squares demo and the handlers that mutate it.
//
// A Scene knows nothing about windows or GL. Input arrives as Event values through
// Handle, which returns an Action telling the loop whether to redraw or quit, and
// Frame reports what to draw.
package scene

import (
	"math/rand"

	"golang.org/x/image/math/f32"
)

const (
	// DefaultWidth and DefaultHeight are the initial window size in pixels.
	DefaultWidth  = 800
	DefaultHeight = 600

	// Capacity is the most squares a Scene will hold; further inserts are dropped.
	Capacity = 200

	// AngleStep is degrees added to the spinner each unpaused tick.
	AngleStep float32 = 0.2

	// MoveStep is pixels the player moves per arrow key.
	MoveStep float32 = 10

	spinnerSize float32 = 50
	playerSize  float32 = 20
	squareSize  float32 = 10
)

var (
	// Background is the clear color.
	Background = f32.Vec3{1, 1, 1}

	spinnerColor = f32.Vec3{0.2, 0.8, 0.3}
	playerColor  = f32.Vec3{0.1, 0.3, 1.0}
)

// Viewport is the window size in pixels; world coordinates match it with Y up.
type Viewport struct {
	Width, Height int
}

// Resize stores w and h, clamping each to at least 1.
func (vp *Viewport) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	vp.Width, vp.Height = w, h
}

// World converts window pixel coordinates, origin top-left, to world coordinates.
func (vp Viewport) World(x, y float32) f32.Vec2 {
	return f32.Vec2{x, float32(vp.Height) - y}
}

// Angle is a rotation in degrees kept within [0, 360).
type Angle float32

// Advance adds d and wraps once past a full turn.
func (a *Angle) Advance(d float32) {
	v := float32(*a) + d
	if v >= 360 {
		v -= 360
	}
	*a = Angle(v)
}

// Square is a placed square and the color it was given at creation.
type Square struct {
	Pos   f32.Vec2
	Color f32.Vec3
}

// Squares is an ordered set of at most Capacity squares; zero value is valid.
type Squares struct {
	xs [Capacity]Square
	n  int
}

// Insert appends sq and reports whether there was room. A full set drops sq.
func (s *Squares) Insert(sq Square) bool {
	if s.n == len(s.xs) {
		return false
	}
	s.xs[s.n] = sq
	s.n++
	return true
}

// Clear resets the count; slots are overwritten by later inserts.
func (s *Squares) Clear() { s.n = 0 }

// Len returns number of squares held.
func (s *Squares) Len() int { return s.n }

// At returns square i in insertion order. Panics if i is out of range.
func (s *Squares) At(i int) Square {
	if i < 0 || i >= s.n {
		panic("scene: square index out of range")
	}
	return s.xs[i]
}

// Slice returns the held squares in insertion order. The result aliases s.
func (s *Squares) Slice() []Square { return s.xs[:s.n] }

// Scene is everything the demo draws plus the input state that gates it.
type Scene struct {
	Viewport Viewport
	Angle    Angle
	Player   f32.Vec2
	Squares  Squares
	Dragging bool
	Paused   bool

	rnd *rand.Rand
}

// New returns a Scene at the default size with colors drawn from seed.
func New(seed int64) *Scene {
	return &Scene{
		Viewport: Viewport{DefaultWidth, DefaultHeight},
		Player:   f32.Vec2{100, 100},
		rnd:      rand.New(rand.NewSource(seed)),
	}
}

// color samples each channel as one of 256 evenly spaced steps in [0, 1].
func (sc *Scene) color() f32.Vec3 {
	return f32.Vec3{
		float32(sc.rnd.Intn(256)) / 255,
		float32(sc.rnd.Intn(256)) / 255,
		float32(sc.rnd.Intn(256)) / 255,
	}
}

// place inserts a freshly colored square at world position p.
func (sc *Scene) place(p f32.Vec2) bool {
	return sc.Squares.Insert(Square{Pos: p, Color: sc.color()})
}
