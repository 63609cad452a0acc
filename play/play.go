// Package play drives a scene from lines of text instead of a window.
//
// Each line is one command:
//
//	press X Y [left|right|middle]   button press at window pixel X, Y
//	release X Y [left|right|middle] button release
//	drag X Y                        motion with a button held
//	move X Y                        motion with no button held
//	key C                           character key; esc for escape
//	special NAME                    up, down, left, right, home, end, pageup, pagedown, insert, f1..f12
//	resize W H                      window resize
//	tick [N]                        N idle ticks, default 1
//	state                           print scene state
//	snap FILE [SCALE]               write the current frame as png
//	quit                            same as key esc
//
// Blank lines and lines starting with # are skipped.
package play

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dasa.cc/interact/raster"
	"dasa.cc/interact/scene"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
)

// ErrQuit is returned for commands given after the scene asked to quit.
var ErrQuit = errors.New("play: scene has quit")

// Commands lists command names in the order documented.
var Commands = []string{"press", "release", "drag", "move", "key", "special", "resize", "tick", "state", "snap", "quit"}

var (
	buttons = map[string]mouse.Button{
		"left":   mouse.ButtonLeft,
		"right":  mouse.ButtonRight,
		"middle": mouse.ButtonMiddle,
	}

	// Specials maps special key names to codes.
	Specials = map[string]key.Code{
		"up":       key.CodeUpArrow,
		"down":     key.CodeDownArrow,
		"left":     key.CodeLeftArrow,
		"right":    key.CodeRightArrow,
		"home":     key.CodeHome,
		"end":      key.CodeEnd,
		"pageup":   key.CodePageUp,
		"pagedown": key.CodePageDown,
		"insert":   key.CodeInsert,
		"f1":       key.CodeF1,
		"f2":       key.CodeF2,
		"f3":       key.CodeF3,
		"f4":       key.CodeF4,
		"f5":       key.CodeF5,
		"f6":       key.CodeF6,
		"f7":       key.CodeF7,
		"f8":       key.CodeF8,
		"f9":       key.CodeF9,
		"f10":      key.CodeF10,
		"f11":      key.CodeF11,
		"f12":      key.CodeF12,
	}
)

// Command is a parsed line. Events is empty for tick, state and snap.
type Command struct {
	Name   string
	Events []scene.Event
	Args   []string

	// Ticks is the number of idle ticks to handle after Events.
	Ticks int
}

// Parse reads one line. A blank or comment line returns the zero Command.
func Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Command{}, nil
	}
	fields := strings.Fields(line)
	cmd := Command{Name: strings.ToLower(fields[0]), Args: fields[1:]}
	args := cmd.Args

	var err error
	switch cmd.Name {
	case "press", "release":
		var x, y float32
		if x, y, err = point(args, 2, 3); err != nil {
			break
		}
		b := mouse.ButtonLeft
		if len(args) == 3 {
			var ok bool
			if b, ok = buttons[strings.ToLower(args[2])]; !ok {
				err = fmt.Errorf("unknown button %q", args[2])
				break
			}
		}
		dir := mouse.DirPress
		if cmd.Name == "release" {
			dir = mouse.DirRelease
		}
		cmd.Events = []scene.Event{scene.ButtonEvent{Button: b, Direction: dir, X: x, Y: y}}
	case "drag", "move":
		var x, y float32
		if x, y, err = point(args, 2, 2); err != nil {
			break
		}
		if cmd.Name == "drag" {
			cmd.Events = []scene.Event{scene.MotionEvent{X: x, Y: y}}
		} else {
			cmd.Events = []scene.Event{scene.PassiveMotionEvent{X: x, Y: y}}
		}
	case "key":
		if len(args) != 1 {
			err = errors.New("want one key")
			break
		}
		r := []rune(args[0])
		switch {
		case strings.EqualFold(args[0], "esc") || strings.EqualFold(args[0], "escape"):
			r = []rune{scene.Escape}
		case len(r) != 1:
			err = fmt.Errorf("key %q is not a single character", args[0])
		}
		if err == nil {
			cmd.Events = []scene.Event{scene.KeyEvent{Rune: r[0]}}
		}
	case "special":
		if len(args) != 1 {
			err = errors.New("want one key name")
			break
		}
		code, ok := Specials[strings.ToLower(args[0])]
		if !ok {
			err = fmt.Errorf("unknown special key %q", args[0])
			break
		}
		cmd.Events = []scene.Event{scene.SpecialKeyEvent{Code: code}}
	case "resize":
		var w, h int
		if w, h, err = size(args); err == nil {
			cmd.Events = []scene.Event{scene.ResizeEvent{Width: w, Height: h}}
		}
	case "tick":
		n := 1
		if len(args) > 1 {
			err = errors.New("want at most one count")
			break
		}
		if len(args) == 1 {
			if n, err = strconv.Atoi(args[0]); err == nil && n < 0 {
				err = fmt.Errorf("negative tick count %v", n)
			}
			if err != nil {
				break
			}
		}
		cmd.Ticks = n
	case "state", "quit":
		if len(args) != 0 {
			err = fmt.Errorf("%s takes no arguments", cmd.Name)
			break
		}
		if cmd.Name == "quit" {
			cmd.Events = []scene.Event{scene.KeyEvent{Rune: scene.Escape}}
		}
	case "snap":
		if len(args) < 1 || len(args) > 2 {
			err = errors.New("want file and optional scale")
			break
		}
		if len(args) == 2 {
			_, err = strconv.ParseFloat(args[1], 64)
		}
	default:
		err = errors.New("unknown command")
	}

	if err != nil {
		return Command{}, fmt.Errorf("%s: %w", cmd.Name, err)
	}
	return cmd, nil
}

func point(args []string, lo, hi int) (x, y float32, err error) {
	if len(args) < lo || len(args) > hi {
		return 0, 0, fmt.Errorf("want x y, have %q", strings.Join(args, " "))
	}
	fx, err := strconv.ParseFloat(args[0], 32)
	if err != nil {
		return 0, 0, err
	}
	fy, err := strconv.ParseFloat(args[1], 32)
	if err != nil {
		return 0, 0, err
	}
	return float32(fx), float32(fy), nil
}

func size(args []string) (w, h int, err error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("want width height, have %q", strings.Join(args, " "))
	}
	if w, err = strconv.Atoi(args[0]); err != nil {
		return 0, 0, err
	}
	if h, err = strconv.Atoi(args[1]); err != nil {
		return 0, 0, err
	}
	return w, h, nil
}

// Session runs commands against a scene.
type Session struct {
	Scene *scene.Scene

	// Out receives state output; nil discards it.
	Out io.Writer

	quit bool
}

// Quit reports whether the scene asked to quit.
func (s *Session) Quit() bool { return s.quit }

// Exec parses and runs line. Events after one asking to quit are not handled.
func (s *Session) Exec(line string) error {
	cmd, err := Parse(line)
	if err != nil {
		return err
	}
	if cmd.Name == "" {
		return nil
	}
	if s.quit {
		return ErrQuit
	}

	for _, ev := range cmd.Events {
		if a := s.Scene.Handle(ev); a.Has(scene.Quit) {
			s.quit = true
			return nil
		}
	}
	for i := 0; i < cmd.Ticks; i++ {
		if a := s.Scene.Handle(scene.Tick{}); a.Has(scene.Quit) {
			s.quit = true
			return nil
		}
	}

	switch cmd.Name {
	case "state":
		if s.Out != nil {
			fmt.Fprintln(s.Out, Describe(s.Scene))
		}
	case "snap":
		return s.snap(cmd.Args)
	}
	return nil
}

func (s *Session) snap(args []string) error {
	img, err := raster.Draw(s.Scene.Frame(), raster.Options{Caption: Describe(s.Scene)})
	if err != nil {
		return err
	}
	if len(args) == 2 {
		factor, _ := strconv.ParseFloat(args[1], 64)
		img = raster.Scale(img, factor)
	}
	return raster.Save(args[0], img)
}

// Run executes each line of r until r is exhausted or the scene quits.
// Errors carry the line number.
func (s *Session) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		if err := s.Exec(sc.Text()); err != nil {
			return fmt.Errorf("line %v: %w", n, err)
		}
		if s.quit {
			return nil
		}
	}
	return sc.Err()
}

// Describe summarizes sc on one line.
func Describe(sc *scene.Scene) string {
	s := fmt.Sprintf("squares %v/%v angle %.1f player %v,%v viewport %vx%v",
		sc.Squares.Len(), scene.Capacity, float32(sc.Angle),
		sc.Player[0], sc.Player[1], sc.Viewport.Width, sc.Viewport.Height)
	if sc.Dragging {
		s += " dragging"
	}
	if sc.Paused {
		s += " paused"
	}
	return s
}
