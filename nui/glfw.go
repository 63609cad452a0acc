package nui

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Config describes the window to open.
type Config struct {
	PositionX, PositionY int
	Width, Height        int
	Title                string

	// SwapInterval is screen updates to wait for before swapping; 0 disables vsync.
	SwapInterval int
}

// DefaultConfig is an 800x600 window at 100,100 with vsync.
func DefaultConfig() Config {
	return Config{
		PositionX:    100,
		PositionY:    100,
		Width:        800,
		Height:       600,
		Title:        "Input & Interaction Demo - Chapter 4",
		SwapInterval: 1,
	}
}

// surface initializes glfw and returns a double buffered window with a current
// 4.1 core context, or an error with glfw already terminated.
func surface(cfg Config) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.SetPos(cfg.PositionX, cfg.PositionY)

	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}
	glfw.SwapInterval(cfg.SwapInterval)

	window.Show()
	return window, nil
}
