package scene

import (
	"fmt"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
)

// Event is one of ButtonEvent, MotionEvent, PassiveMotionEvent, KeyEvent,
// SpecialKeyEvent, ResizeEvent or Tick.
type Event interface {
	String() string
	event()
}

// ButtonEvent is a pointer button press or release at window pixel coordinates.
type ButtonEvent struct {
	Button    mouse.Button
	Direction mouse.Direction
	X, Y      float32
}

// MotionEvent is pointer motion while a button is held.
type MotionEvent struct{ X, Y float32 }

// PassiveMotionEvent is pointer motion while no button is held.
type PassiveMotionEvent struct{ X, Y float32 }

// KeyEvent is a printable character, or Escape as 0x1b.
type KeyEvent struct{ Rune rune }

// SpecialKeyEvent is a non-printable navigation key.
type SpecialKeyEvent struct{ Code key.Code }

// ResizeEvent is a new window size in pixels.
type ResizeEvent struct{ Width, Height int }

// Tick is delivered once per loop iteration when no other event is pending.
type Tick struct{}

func (ButtonEvent) event()        {}
func (MotionEvent) event()        {}
func (PassiveMotionEvent) event() {}
func (KeyEvent) event()           {}
func (SpecialKeyEvent) event()    {}
func (ResizeEvent) event()        {}
func (Tick) event()               {}

func (e ButtonEvent) String() string {
	return fmt.Sprintf("button{%v %v %v,%v}", e.Button, e.Direction, e.X, e.Y)
}
func (e MotionEvent) String() string        { return fmt.Sprintf("motion{%v,%v}", e.X, e.Y) }
func (e PassiveMotionEvent) String() string { return fmt.Sprintf("passive{%v,%v}", e.X, e.Y) }
func (e KeyEvent) String() string           { return fmt.Sprintf("key{%q}", e.Rune) }
func (e SpecialKeyEvent) String() string    { return fmt.Sprintf("special{%v}", e.Code) }
func (e ResizeEvent) String() string        { return fmt.Sprintf("resize{%vx%v}", e.Width, e.Height) }
func (Tick) String() string                 { return "tick" }

// Escape is the KeyEvent rune for the escape key.
const Escape rune = 0x1b

// Action is a set of requests a handler makes of the loop.
type Action uint8

const (
	Redraw Action = 1 << iota // Redraw marks the scene dirty
	Quit                      // Quit asks the loop to tear down and exit 0

	None Action = 0
)

func (a Action) Has(x Action) bool { return a&x == x && x != 0 }

func (a Action) String() string {
	switch a {
	case None:
		return "none"
	case Redraw:
		return "redraw"
	case Quit:
		return "quit"
	case Redraw | Quit:
		return "redraw|quit"
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}
