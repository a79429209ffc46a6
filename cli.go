package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/nbarth/vdu/gpu"
	"github.com/nbarth/vdu/term"
)

// runCLI renders the character grid straight into the terminal, one tcell
// cell per character cell, and feeds key presses back through the adapter.
// Escape or Ctrl-C quits.
func runCLI(g *gpu.GPU, w *term.Writer) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	go s.ChannelEvents(events, quit)

	t := time.NewTicker(time.Second / 30)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			drawGrid(s, g)
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyEscape, tcell.KeyCtrlC:
					close(quit)
					return nil
				case tcell.KeyEnter:
					w.WriteByte('\n')
				case tcell.KeyBackspace, tcell.KeyBackspace2:
					w.WriteByte('\b')
				case tcell.KeyTab:
					w.WriteByte('\t')
				case tcell.KeyCtrlL:
					w.WriteByte('\f')
				case tcell.KeyRune:
					if r := ev.Rune(); r >= 0x20 && r < 0x7F {
						w.WriteByte(byte(r))
					}
				}
				drawGrid(s, g)
			case *tcell.EventResize:
				s.Sync()
			}
		}
	}
}

func drawGrid(s tcell.Screen, g *gpu.GPU) {
	style := tcell.StyleDefault.
		Foreground(paletteColor(g, g.Foreground())).
		Background(paletteColor(g, g.Background()))
	cols := g.Columns()
	for row := 0; row < gpu.Rows; row++ {
		for col := 0; col < cols; col++ {
			c := g.Cell(row, col)
			r := rune(c)
			if c < 0x20 || c > 0x7E {
				r = tcell.RuneBlock
			}
			s.SetContent(col, row, r, nil, style)
		}
	}
	if g.CursorEnabled() {
		row, col := g.CursorPos()
		s.ShowCursor(col, row)
	} else {
		s.HideCursor()
	}
	s.Show()
}

func paletteColor(g *gpu.GPU, index byte) tcell.Color {
	r, grn, b := g.PaletteRGB(int(index))
	return tcell.NewRGBColor(int32(r), int32(grn), int32(b))
}
