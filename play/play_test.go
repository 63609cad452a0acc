package play

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"dasa.cc/interact/scene"
	"golang.org/x/image/math/f32"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line  string
		want  []scene.Event
		ticks int
	}{
		{"press 10 20", []scene.Event{scene.ButtonEvent{Button: mouse.ButtonLeft, Direction: mouse.DirPress, X: 10, Y: 20}}, 0},
		{"press 1.5 2 right", []scene.Event{scene.ButtonEvent{Button: mouse.ButtonRight, Direction: mouse.DirPress, X: 1.5, Y: 2}}, 0},
		{"RELEASE 3 4 Middle", []scene.Event{scene.ButtonEvent{Button: mouse.ButtonMiddle, Direction: mouse.DirRelease, X: 3, Y: 4}}, 0},
		{"drag 5 6", []scene.Event{scene.MotionEvent{X: 5, Y: 6}}, 0},
		{"move 7 8", []scene.Event{scene.PassiveMotionEvent{X: 7, Y: 8}}, 0},
		{"key c", []scene.Event{scene.KeyEvent{Rune: 'c'}}, 0},
		{"key esc", []scene.Event{scene.KeyEvent{Rune: scene.Escape}}, 0},
		{"special up", []scene.Event{scene.SpecialKeyEvent{Code: key.CodeUpArrow}}, 0},
		{"special F3", []scene.Event{scene.SpecialKeyEvent{Code: key.CodeF3}}, 0},
		{"resize 640 0", []scene.Event{scene.ResizeEvent{Width: 640, Height: 0}}, 0},
		{"tick", nil, 1},
		{"tick 3", nil, 3},
		{"tick 0", nil, 0},
		{"quit", []scene.Event{scene.KeyEvent{Rune: scene.Escape}}, 0},
		{"  # comment", nil, 0},
		{"", nil, 0},
		{"state", nil, 0},
		{"snap out.png 0.5", nil, 0},
	}
	for _, tt := range tests {
		cmd, err := Parse(tt.line)
		if err != nil {
			t.Errorf("%q: %v", tt.line, err)
			continue
		}
		if !reflect.DeepEqual(tt.want, cmd.Events) && !(len(tt.want) == 0 && len(cmd.Events) == 0) {
			t.Errorf("%q: want %v, have %v", tt.line, tt.want, cmd.Events)
		}
		if want, have := tt.ticks, cmd.Ticks; want != have {
			t.Errorf("%q: want %v ticks, have %v", tt.line, want, have)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, line := range []string{
		"press 1",
		"press a b",
		"press 1 2 thumb",
		"drag 1 2 3",
		"key",
		"key ab",
		"special f13",
		"resize 1.5 2",
		"tick -1",
		"tick 1 2",
		"state now",
		"quit now",
		"snap",
		"snap a.png big",
		"jump 1 2",
	} {
		if _, err := Parse(line); err == nil {
			t.Errorf("%q: want error", line)
		} else {
			t.Logf("%q: %v", line, err)
		}
	}
}

func TestSessionScript(t *testing.T) {
	const script = `
# three squares then clear and one more
press 10 20
drag 11 21
release 11 21
drag 12 22
press 30 40
key c
press 50 60
move 50 20
tick 5
key p
tick 5
state
`
	var out bytes.Buffer
	s := &Session{Scene: scene.New(1), Out: &out}
	if err := s.Run(strings.NewReader(script)); err != nil {
		t.Fatal(err)
	}
	sc := s.Scene
	if want, have := 1, sc.Squares.Len(); want != have {
		t.Fatalf("want %v squares, have %v", want, have)
	}
	if want, have := (f32.Vec2{50, 540}), sc.Squares.At(0).Pos; want != have {
		t.Errorf("want %v, have %v", want, have)
	}
	if want, have := (f32.Vec2{50, 580}), sc.Player; want != have {
		t.Errorf("want %v, have %v", want, have)
	}
	if !sc.Paused {
		t.Error("want paused")
	}
	t.Log(out.String())
	if !strings.Contains(out.String(), "squares 1/200") || !strings.Contains(out.String(), "paused") {
		t.Errorf("unexpected state output %q", out.String())
	}
}

func TestSessionQuit(t *testing.T) {
	for _, q := range []string{"press 1 1 right", "key q", "key Q", "key esc", "quit"} {
		s := &Session{Scene: scene.New(1)}
		script := strings.Join([]string{"press 5 5", q, "press 6 6", "key c"}, "\n")
		if err := s.Run(strings.NewReader(script)); err != nil {
			t.Fatalf("%s: %v", q, err)
		}
		if !s.Quit() {
			t.Fatalf("%s: want quit", q)
		}
		if want, have := 1, s.Scene.Squares.Len(); want != have {
			t.Errorf("%s: events after quit were handled, want %v squares have %v", q, want, have)
		}
		if err := s.Exec("press 7 7"); !errors.Is(err, ErrQuit) {
			t.Errorf("%s: want ErrQuit, have %v", q, err)
		}
	}
}

func TestParseLargeTick(t *testing.T) {
	const n = 20000000
	var cmd Command
	allocs := testing.AllocsPerRun(10, func() {
		var err error
		if cmd, err = Parse("tick 20000000"); err != nil {
			t.Fatal(err)
		}
	})
	if want, have := n, cmd.Ticks; want != have {
		t.Errorf("want %v ticks, have %v", want, have)
	}
	if len(cmd.Events) != 0 {
		t.Errorf("want no events, have %v", len(cmd.Events))
	}
	if allocs > 10 {
		t.Errorf("want allocations independent of tick count, have %v", allocs)
	}
}

func TestSessionTicks(t *testing.T) {
	s := &Session{Scene: scene.New(1)}
	if err := s.Exec("tick 50"); err != nil {
		t.Fatal(err)
	}
	if want, have := float32(10), float32(s.Scene.Angle); want-have > 0.01 || have-want > 0.01 {
		t.Errorf("want angle %v, have %v", want, have)
	}
}

func TestSessionCommentAfterQuit(t *testing.T) {
	s := &Session{Scene: scene.New(1)}
	if err := s.Exec("key esc"); err != nil {
		t.Fatal(err)
	}
	if err := s.Exec("# still fine"); err != nil {
		t.Errorf("comment after quit: %v", err)
	}
}

func TestSessionCapacity(t *testing.T) {
	var b strings.Builder
	for i := 0; i < scene.Capacity+20; i++ {
		b.WriteString("press 1 1\n")
	}
	s := &Session{Scene: scene.New(1)}
	if err := s.Run(strings.NewReader(b.String())); err != nil {
		t.Fatal(err)
	}
	if want, have := scene.Capacity, s.Scene.Squares.Len(); want != have {
		t.Errorf("want %v, have %v", want, have)
	}
}

func TestSessionError(t *testing.T) {
	s := &Session{Scene: scene.New(1)}
	err := s.Run(strings.NewReader("tick\nbogus\n"))
	if err == nil || !strings.HasPrefix(err.Error(), "line 2:") {
		t.Errorf("want line 2 error, have %v", err)
	}
}

func TestSnap(t *testing.T) {
	dir := t.TempDir()
	s := &Session{Scene: scene.New(1)}
	path := filepath.Join(dir, "half.png")
	if err := s.Exec("snap " + path + " 0.5"); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 400 || cfg.Height != 300 {
		t.Errorf("want 400x300, have %vx%v", cfg.Width, cfg.Height)
	}
}

func TestDescribe(t *testing.T) {
	sc := scene.New(1)
	sc.Handle(scene.ButtonEvent{Button: mouse.ButtonLeft, Direction: mouse.DirPress, X: 1, Y: 1})
	want := "squares 1/200 angle 0.0 player 100,100 viewport 800x600 dragging"
	if have := Describe(sc); want != have {
		t.Errorf("want %q, have %q", want, have)
	}
}
