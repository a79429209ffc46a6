package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/howeyc/fsnotify"
	"github.com/rivo/tview"

	"github.com/nbarth/vdu/gpu"
	"github.com/nbarth/vdu/term"
)

// devMode watches a byte-stream file and replays it through the terminal
// adapter whenever it changes, alongside a console for poking the display
// registers by hand.
func devMode(gui bool, g *gpu.GPU, file string) error {
	file = filepath.Clean(file)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Watch(filepath.Dir(file)); err != nil {
		return err
	}

	// Replay, console commands, and GUI key events all mutate the display,
	// so funnel them through one goroutine: the display's control side
	// expects a single writer.
	ops := make(chan func())
	go func() {
		for f := range ops {
			f()
		}
	}()
	w := term.NewWriter(g)

	d := newDebugView(g, ops)
	log.SetPrefix("")
	log.SetOutput(d.log)

	exit := make(chan bool)
	go func() {
		if err := d.Run(); err != nil {
			log.Fatalf("debug: %v", err)
		}
		log.SetOutput(os.Stderr)
		log.SetPrefix("vdu: ")
		close(exit)
	}()

	go func() {
		replay := time.After(1 * time.Millisecond)
		for {
			select {
			case <-replay:
				data, err := os.ReadFile(file)
				if err != nil {
					log.Printf("dev: %v", err)
					break
				}
				log.Printf("dev: replay %s (%d bytes)", filepath.Base(file), len(data))
				ops <- func() {
					g.Reset()
					w.Write(data)
				}
			case ev := <-watcher.Event:
				if ev.Name == file && !ev.IsAttrib() {
					replay = time.After(100 * time.Millisecond)
				}
			case err := <-watcher.Error:
				log.Printf("dev: watcher: %v", err)
			}
		}
	}()

	if gui {
		ui := gpu.NewGUI(g, func(b byte) {
			ops <- func() { w.WriteByte(b) }
		})
		return ui.Run(exit)
	}
	<-exit
	return nil
}

type debugView struct {
	gpu *gpu.GPU
	ops chan<- func()

	log   *tview.TextView
	state *tview.TextView
	input *tview.InputField
	rows  *tview.Flex
	app   *tview.Application
}

func newDebugView(g *gpu.GPU, ops chan<- func()) *debugView {
	d := &debugView{
		gpu: g,
		ops: ops,
		log: tview.NewTextView().
			SetMaxLines(1000),
		state: tview.NewTextView().
			SetWrap(false),
		input: tview.NewInputField(),
		rows: tview.NewFlex().
			SetDirection(tview.FlexRow),
		app: tview.NewApplication(),
	}
	d.log.SetChangedFunc(func() { d.app.Draw() })
	d.state.SetTextColor(tcell.ColorBlack)
	d.state.SetBackgroundColor(tcell.ColorDarkGrey)
	d.rows.
		AddItem(d.log, 0, 1, false).
		AddItem(d.state, 1, 0, false).
		AddItem(d.input, 1, 0, true)
	d.app.SetRoot(d.rows, true)

	d.input.SetAutocompleteFunc(func(t string) (entries []string) {
		for _, cmd := range []string{"bg ", "char ", "clear", "cur ", "cursor ", "fg ", "mode ", "exit"} {
			if t != "" && strings.HasPrefix(cmd, t) {
				entries = append(entries, cmd)
			}
		}
		return
	})
	d.input.SetAutocompletedFunc(func(t string, index, src int) bool {
		if src != tview.AutocompletedNavigate {
			d.input.SetText(t)
		}
		return src == tview.AutocompletedEnter || src == tview.AutocompletedClick
	})
	d.input.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter {
			return
		}
		cmd := d.input.GetText()
		if cmd == "" {
			return
		}
		d.input.SetText("")
		if cmd == "exit" {
			d.app.Stop()
			return
		}
		d.command(cmd)
	})

	go func() {
		t := time.NewTicker(100 * time.Millisecond)
		defer t.Stop()
		for range t.C {
			state := d.stateMsg()
			d.app.QueueUpdateDraw(func() { d.state.SetText(state) })
		}
	}()
	return d
}

func (d *debugView) Run() error { return d.app.Run() }

func (d *debugView) command(cmd string) {
	g := d.gpu
	name, arg, _ := strings.Cut(cmd, " ")
	switch name {
	case "clear":
		d.ops <- g.Clear
	case "char":
		d.ops <- func() {
			for _, r := range arg {
				g.WriteChar(byte(r))
			}
		}
	case "cur":
		f := strings.Fields(arg)
		if len(f) != 2 {
			log.Printf("usage: cur <row> <col>")
			return
		}
		row, _ := strconv.Atoi(f[0])
		col, _ := strconv.Atoi(f[1])
		d.ops <- func() { g.SetCursor(row, col) }
	case "cursor":
		on := arg == "on"
		d.ops <- func() { g.SetCursorEnabled(on) }
	case "mode":
		m := gpu.Mode40
		if arg == "80" {
			m = gpu.Mode80
		}
		d.ops <- func() { g.SetMode(m) }
	case "fg":
		n, _ := strconv.Atoi(arg)
		d.ops <- func() { g.SetForeground(byte(n)) }
	case "bg":
		n, _ := strconv.Atoi(arg)
		d.ops <- func() { g.SetBackground(byte(n)) }
	default:
		log.Printf("unknown command %q", cmd)
	}
}

func (d *debugView) stateMsg() string {
	g := d.gpu
	row, col := g.CursorPos()
	s := g.Status()
	return fmt.Sprintf("%s  cursor=(%d,%d) on=%v  fg=%d bg=%d  ready=%v vblank=%v",
		g.Mode(), row, col, g.CursorEnabled(), g.Foreground(), g.Background(),
		s.Ready, s.VBlank)
}
