// Command interact opens a window of colored squares driven by mouse and keyboard.
//
// Left click or drag places squares, moving the mouse moves the blue player square
// as do the arrow keys. Keys: c clears squares, p pauses the spinner, q or escape
// quits, as does a right click.
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"dasa.cc/interact/glw"
	"dasa.cc/interact/nui"
	"dasa.cc/interact/scene"
)

var (
	flagWidth   = flag.Int("width", scene.DefaultWidth, "initial window width in pixels.")
	flagHeight  = flag.Int("height", scene.DefaultHeight, "initial window height in pixels.")
	flagX       = flag.Int("x", 100, "initial window x position.")
	flagY       = flag.Int("y", 100, "initial window y position.")
	flagTitle   = flag.String("title", nui.DefaultConfig().Title, "window title.")
	flagSeed    = flag.Int64("seed", 0, "seed for square colors; zero seeds from current time.")
	flagVSync   = flag.Bool("vsync", true, "wait for vertical refresh before swapping buffers.")
	flagVerbose = flag.Bool("v", false, "verbose")
)

func main() {
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("interact: ")
	if !*flagVerbose {
		log.SetOutput(io.Discard)
		nui.SetLogOutput(io.Discard)
		glw.SetLogOutput(io.Discard)
	}

	seed := *flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("seed %v", seed)

	cfg := nui.DefaultConfig()
	cfg.PositionX, cfg.PositionY = *flagX, *flagY
	cfg.Width, cfg.Height = *flagWidth, *flagHeight
	cfg.Title = *flagTitle
	if !*flagVSync {
		cfg.SwapInterval = 0
	}

	win, err := nui.Open(cfg)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
	defer win.Close()

	sc := scene.New(seed)
	win.Run(sc)
	log.Printf("quit with %v squares", sc.Squares.Len())
}
