package gpu

import (
	"image"
	"image/draw"
	"log"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

// GUI presents the rendered raster in a window, refreshing at the 60Hz field
// rate, and forwards typed bytes to a sink (normally a terminal adapter
// feeding the control domain).
type GUI struct {
	render *Renderer
	keys   func(byte)

	buf screen.Buffer
	tex screen.Texture
}

// NewGUI returns a GUI rendering g. Typed bytes are passed to keys, which
// may be nil.
func NewGUI(g *GPU, keys func(byte)) *GUI {
	return &GUI{render: NewRenderer(g), keys: keys}
}

// Run drives the window until it is closed or exit is closed.
func (ui *GUI) Run(exit <-chan bool) error {
	driver.Main(func(s screen.Screen) {
		w, err := s.NewWindow(&screen.NewWindowOptions{
			Title:  "vdu",
			Width:  HActive,
			Height: VActive,
		})
		if err != nil {
			log.Fatal(err)
		}
		defer w.Release()
		defer ui.release()

		type update struct{}
		go func() {
			t := time.NewTicker(time.Second / 60)
			defer t.Stop()
			for {
				select {
				case <-t.C:
					w.Send(update{})
				case <-exit:
					w.Send(lifecycle.Event{To: lifecycle.StageDead})
					return
				}
			}
		}()

		var sz size.Event
		for {
			e := w.NextEvent()

			select {
			case <-exit:
				return
			default:
			}

			switch e := e.(type) {
			case lifecycle.Event:
				if e.To == lifecycle.StageDead {
					return
				}

			case size.Event:
				sz = e
				if sz.WidthPx+sz.HeightPx == 0 {
					return
				}

			case key.Event:
				if b, ok := keyByte(e); ok && ui.keys != nil {
					ui.keys(b)
				}

			case update:
				if err := ui.draw(s, w, sz); err != nil {
					log.Fatalf("draw: %v", err)
				}

			case paint.Event:

			case error:
				log.Print(e)
			}
		}
	})
	return nil
}

func (ui *GUI) draw(s screen.Screen, w screen.Window, sz size.Event) error {
	frame := ui.render.Frame()
	win := image.Point{sz.WidthPx, sz.HeightPx}
	if win.X == 0 || win.Y == 0 {
		win = image.Point{HActive, VActive}
	}
	if ui.tex == nil || ui.tex.Size() != win {
		ui.release()
		var err error
		if ui.buf, err = s.NewBuffer(win); err != nil {
			return err
		}
		if ui.tex, err = s.NewTexture(win); err != nil {
			return err
		}
	}
	xdraw.NearestNeighbor.Scale(ui.buf.RGBA(), ui.buf.Bounds(), frame, frame.Bounds(), draw.Src, nil)
	ui.tex.Upload(image.Point{}, ui.buf, ui.buf.Bounds())
	w.Copy(image.Point{}, ui.tex, ui.tex.Bounds(), draw.Src, nil)
	w.Publish()
	return nil
}

func (ui *GUI) release() {
	if ui.tex != nil {
		ui.tex.Release()
		ui.tex = nil
	}
	if ui.buf != nil {
		ui.buf.Release()
		ui.buf = nil
	}
}

// keyByte maps a key event to the byte fed to the terminal adapter.
func keyByte(e key.Event) (byte, bool) {
	if e.Direction == key.DirRelease {
		return 0, false
	}
	switch e.Code {
	case key.CodeReturnEnter:
		return '\n', true
	case key.CodeDeleteBackspace:
		return 0x08, true
	case key.CodeTab:
		return '\t', true
	}
	if e.Rune >= 0x20 && e.Rune < 0x7F {
		return byte(e.Rune), true
	}
	return 0, false
}
