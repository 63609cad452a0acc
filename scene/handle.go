package scene

import (
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
)

// Handle dispatches ev to its handler and returns what the loop should do next.
func (sc *Scene) Handle(ev Event) Action {
	switch ev := ev.(type) {
	case ButtonEvent:
		return sc.button(ev)
	case MotionEvent:
		return sc.motion(ev)
	case PassiveMotionEvent:
		return sc.passiveMotion(ev)
	case KeyEvent:
		return sc.key(ev)
	case SpecialKeyEvent:
		return sc.special(ev)
	case ResizeEvent:
		return sc.resize(ev)
	case Tick:
		return sc.tick()
	}
	return None
}

func (sc *Scene) resize(ev ResizeEvent) Action {
	sc.Viewport.Resize(ev.Width, ev.Height)
	return Redraw
}

func (sc *Scene) tick() Action {
	if !sc.Paused {
		sc.Angle.Advance(AngleStep)
	}
	return Redraw
}

// button leaves redraw to the next tick.
func (sc *Scene) button(ev ButtonEvent) Action {
	p := sc.Viewport.World(ev.X, ev.Y)
	switch {
	case ev.Button == mouse.ButtonRight && ev.Direction == mouse.DirPress:
		return Quit
	case ev.Button == mouse.ButtonLeft && ev.Direction == mouse.DirPress:
		sc.Dragging = true
		sc.place(p)
	case ev.Button == mouse.ButtonLeft && ev.Direction == mouse.DirRelease:
		sc.Dragging = false
	}
	return None
}

func (sc *Scene) motion(ev MotionEvent) Action {
	if !sc.Dragging {
		return None
	}
	sc.place(sc.Viewport.World(ev.X, ev.Y))
	return Redraw
}

func (sc *Scene) passiveMotion(ev PassiveMotionEvent) Action {
	sc.Player = sc.Viewport.World(ev.X, ev.Y)
	return Redraw
}

func (sc *Scene) key(ev KeyEvent) Action {
	switch ev.Rune {
	case 'q', 'Q', Escape:
		return Quit
	case 'c', 'C':
		sc.Squares.Clear()
	case 'p', 'P':
		sc.Paused = !sc.Paused
	}
	return Redraw
}

func (sc *Scene) special(ev SpecialKeyEvent) Action {
	switch ev.Code {
	case key.CodeUpArrow:
		sc.Player[1] += MoveStep
	case key.CodeDownArrow:
		sc.Player[1] -= MoveStep
	case key.CodeLeftArrow:
		sc.Player[0] -= MoveStep
	case key.CodeRightArrow:
		sc.Player[0] += MoveStep
	}
	return Redraw
}
