package nui

import (
	"dasa.cc/interact/scene"
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
)

var (
	buttonmap = map[glfw.MouseButton]mouse.Button{
		glfw.MouseButtonLeft:   mouse.ButtonLeft,
		glfw.MouseButtonRight:  mouse.ButtonRight,
		glfw.MouseButtonMiddle: mouse.ButtonMiddle,
	}

	// specialmap holds the keys delivered as SpecialKeyEvent.
	specialmap = map[glfw.Key]key.Code{
		glfw.KeyUp:       key.CodeUpArrow,
		glfw.KeyDown:     key.CodeDownArrow,
		glfw.KeyLeft:     key.CodeLeftArrow,
		glfw.KeyRight:    key.CodeRightArrow,
		glfw.KeyPageUp:   key.CodePageUp,
		glfw.KeyPageDown: key.CodePageDown,
		glfw.KeyHome:     key.CodeHome,
		glfw.KeyEnd:      key.CodeEnd,
		glfw.KeyInsert:   key.CodeInsert,
		glfw.KeyF1:       key.CodeF1,
		glfw.KeyF2:       key.CodeF2,
		glfw.KeyF3:       key.CodeF3,
		glfw.KeyF4:       key.CodeF4,
		glfw.KeyF5:       key.CodeF5,
		glfw.KeyF6:       key.CodeF6,
		glfw.KeyF7:       key.CodeF7,
		glfw.KeyF8:       key.CodeF8,
		glfw.KeyF9:       key.CodeF9,
		glfw.KeyF10:      key.CodeF10,
		glfw.KeyF11:      key.CodeF11,
		glfw.KeyF12:      key.CodeF12,
	}
)

// buttonEvent translates a glfw mouse button change at window pixel x, y.
// Unknown buttons map to mouse.ButtonNone which the scene ignores.
func buttonEvent(b glfw.MouseButton, action glfw.Action, x, y float64) scene.ButtonEvent {
	dir := mouse.DirRelease
	if action == glfw.Press {
		dir = mouse.DirPress
	}
	return scene.ButtonEvent{Button: buttonmap[b], Direction: dir, X: float32(x), Y: float32(y)}
}

// keyEvent translates glfw key presses that produce no character callback.
// Escape becomes a KeyEvent, navigation keys a SpecialKeyEvent; ok is false for
// releases and all other keys.
func keyEvent(k glfw.Key, action glfw.Action) (ev scene.Event, ok bool) {
	if action == glfw.Release {
		return nil, false
	}
	if k == glfw.KeyEscape {
		if action != glfw.Press {
			return nil, false
		}
		return scene.KeyEvent{Rune: scene.Escape}, true
	}
	code, ok := specialmap[k]
	if !ok {
		return nil, false
	}
	return scene.SpecialKeyEvent{Code: code}, true
}
