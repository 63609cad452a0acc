// Sceneplay drives the squares scene from typed commands, without a window.
//
// Commands are those of package play; run with -script to replay a file instead
// of prompting. Snapshots of the scene are written with snap FILE [SCALE].
package main

import (
	"flag"
	"io"
	"io/ioutil"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"dasa.cc/interact/play"
	"dasa.cc/interact/scene"

	"github.com/chzyer/readline"
)

var (
	flagScript = flag.String("script", "", "file of commands to run instead of prompting; - reads stdin.")
	flagSeed   = flag.Int64("seed", 0, "seed for square colors; zero seeds from current time.")
)

func completer() *readline.PrefixCompleter {
	buttons := []readline.PrefixCompleterInterface{
		readline.PcItem("left"), readline.PcItem("right"), readline.PcItem("middle"),
	}
	var specials []string
	for name := range play.Specials {
		specials = append(specials, name)
	}
	sort.Strings(specials)
	var specialItems []readline.PrefixCompleterInterface
	for _, name := range specials {
		specialItems = append(specialItems, readline.PcItem(name))
	}

	var items []readline.PrefixCompleterInterface
	for _, name := range play.Commands {
		switch name {
		case "press", "release":
			items = append(items, readline.PcItem(name, buttons...))
		case "special":
			items = append(items, readline.PcItem(name, specialItems...))
		case "key":
			items = append(items, readline.PcItem(name, readline.PcItem("c"), readline.PcItem("p"), readline.PcItem("q"), readline.PcItem("esc")))
		default:
			items = append(items, readline.PcItem(name))
		}
	}
	return readline.NewPrefixCompleter(items...)
}

func script(s *play.Session, name string) error {
	var r io.Reader = os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	return s.Run(r)
}

func prompt(s *play.Session) error {
	tmp, err := ioutil.TempFile("", "sceneplay")
	if err != nil {
		return err
	}
	tmp.Close()
	defer os.Remove(tmp.Name())

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "scene: ",
		HistoryFile:       tmp.Name(),
		AutoComplete:      completer(),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	log.SetOutput(rl.Stderr())
	s.Out = rl.Stdout()

	for !s.Quit() {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		if err := s.Exec(strings.TrimSpace(line)); err != nil {
			log.Println(err)
		}
	}
	return nil
}

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("sceneplay: ")

	seed := *flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &play.Session{Scene: scene.New(seed), Out: os.Stdout}

	var err error
	if *flagScript != "" {
		err = script(s, *flagScript)
	} else {
		err = prompt(s)
	}
	if err != nil {
		log.Fatal(err)
	}
	if s.Quit() {
		log.Println("scene quit")
	}
}
