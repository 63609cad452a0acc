// Package nui runs a scene in a glfw window.
//
// glfw callbacks only queue scene events; Run drains the queue on the main
// thread one handler at a time, ticks when nothing arrived, and redraws when any
// handler asked for it.
package nui

import (
	"io"
	"log"
	"os"
	"runtime"

	"dasa.cc/interact/glw"
	"dasa.cc/interact/scene"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfw must be called from the main thread.
func init() { runtime.LockOSThread() }

var logger = log.New(os.Stderr, "nui: ", 0)

// SetLogOutput redirects package logging; io.Discard silences it.
func SetLogOutput(w io.Writer) { logger.SetOutput(w) }

// Handler is the scene side of the loop; *scene.Scene is one.
type Handler interface {
	Handle(scene.Event) scene.Action
	Frame() scene.Frame
}

// Window is an open glfw window and its renderer.
type Window struct {
	win  *glfw.Window
	rdr  glw.Renderer
	held int // buttons currently pressed

	queue []scene.Event

	vp       scene.Viewport
	fbw, fbh int
}

// Open creates the window described by cfg. The caller must Close it.
func Open(cfg Config) (*Window, error) {
	win, err := surface(cfg)
	if err != nil {
		return nil, err
	}
	w := &Window{win: win}
	if err := w.rdr.Create(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, err
	}
	logger.Printf("opened %q %vx%v at %v,%v", cfg.Title, cfg.Width, cfg.Height, cfg.PositionX, cfg.PositionY)

	win.SetMouseButtonCallback(w.onButton)
	win.SetCursorPosCallback(w.onCursor)
	win.SetCharCallback(w.onChar)
	win.SetKeyCallback(w.onKey)
	win.SetSizeCallback(w.onSize)
	return w, nil
}

func (w *Window) push(ev scene.Event) { w.queue = append(w.queue, ev) }

func (w *Window) onButton(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	switch action {
	case glfw.Press:
		w.held++
	case glfw.Release:
		if w.held > 0 {
			w.held--
		}
	}
	x, y := w.win.GetCursorPos()
	w.push(buttonEvent(b, action, x, y))
}

func (w *Window) onCursor(_ *glfw.Window, x, y float64) {
	if w.held > 0 {
		w.push(scene.MotionEvent{X: float32(x), Y: float32(y)})
	} else {
		w.push(scene.PassiveMotionEvent{X: float32(x), Y: float32(y)})
	}
}

func (w *Window) onChar(_ *glfw.Window, char rune) { w.push(scene.KeyEvent{Rune: char}) }

func (w *Window) onKey(_ *glfw.Window, k glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if ev, ok := keyEvent(k, action); ok {
		w.push(ev)
	}
}

func (w *Window) onSize(_ *glfw.Window, width, height int) {
	w.push(scene.ResizeEvent{Width: width, Height: height})
}

// Run dispatches events to h until a handler asks to quit or the window is
// closed. The first event delivered is the window's current size.
func (w *Window) Run(h Handler) {
	width, height := w.win.GetSize()
	w.push(scene.ResizeEvent{Width: width, Height: height})

	for !w.win.ShouldClose() {
		glfw.PollEvents()
		if len(w.queue) == 0 {
			w.push(scene.Tick{})
		}

		dirty, quit := drain(h, w.queue)
		w.queue = w.queue[:0]
		if quit {
			logger.Print("quit")
			w.win.SetShouldClose(true)
			return
		}
		if dirty {
			w.draw(h.Frame())
		}
	}
}

// drain hands evs to h in order, stopping at the first that asks to quit.
func drain(h Handler, evs []scene.Event) (dirty, quit bool) {
	for _, ev := range evs {
		a := h.Handle(ev)
		if a.Has(scene.Quit) {
			return dirty, true
		}
		dirty = dirty || a.Has(scene.Redraw)
	}
	return dirty, false
}

func (w *Window) draw(frame scene.Frame) {
	fbw, fbh := w.win.GetFramebufferSize()
	if frame.Viewport != w.vp || fbw != w.fbw || fbh != w.fbh {
		w.vp, w.fbw, w.fbh = frame.Viewport, fbw, fbh
		w.rdr.Resize(fbw, fbh, frame.Viewport)
	}
	w.rdr.Draw(frame)
	w.win.SwapBuffers()
}

// Close releases GL objects, destroys the window and terminates glfw.
func (w *Window) Close() {
	w.rdr.Delete()
	w.win.Destroy()
	glfw.Terminate()
}
