package gpu

import "image"

// Signal is one pixel clock tick's worth of output, as handed to a video
// link serializer. Color channels are zero whenever DisplayEnable is false.
type Signal struct {
	R, G, B       uint8
	HSync, VSync  bool
	DisplayEnable bool
}

// blinkFrames is the number of frames between cursor phase flips: half a
// second at the 60Hz field rate.
const blinkFrames = 30

// Renderer is the pixel-domain side of the GPU. It produces exactly one
// Signal per tick, or one whole frame at a time for front ends that present
// complete images. A Renderer must only be used from one goroutine, but that
// goroutine may run concurrently with the control domain.
type Renderer struct {
	gpu    *GPU
	raster Raster
	frames int
	img    *image.RGBA
}

func NewRenderer(g *GPU) *Renderer {
	return &Renderer{gpu: g}
}

// Tick emits the sample for the current raster position and advances the
// raster. Blanked positions never touch the grid or palette.
func (r *Renderer) Tick() Signal {
	sig := Signal{HSync: r.raster.HSync(), VSync: r.raster.VSync()}
	if r.raster.Visible() {
		sig.DisplayEnable = true
		sig.R, sig.G, sig.B = r.gpu.pixel(r.raster.X, r.raster.Y)
	}
	r.gpu.vblank.Store(r.raster.VBlank())
	r.raster.Tick()
	if r.raster.X == 0 && r.raster.Y == 0 {
		r.endFrame()
	}
	return sig
}

// Frame renders one complete visible field into an RGBA image, reused across
// calls. This is the collapsed form of the tick pipeline for front ends that
// present whole frames; cursor blink and vertical blank advance exactly as
// if the full raster had been walked.
func (r *Renderer) Frame() *image.RGBA {
	if r.img == nil {
		r.img = image.NewRGBA(image.Rect(0, 0, HActive, VActive))
	}
	g := r.gpu
	g.vblank.Store(false)
	cw := g.Mode().CellWidth()
	for y := 0; y < VActive; y++ {
		row := y / GlyphHeight
		i := r.img.PixOffset(0, y)
		for col := 0; col*cw < HActive; col++ {
			code := g.grid.load(g.grid.physical(row), col)
			line := Glyph(code)[y%GlyphHeight]
			fr, fg, fb := g.pal.rgb(int(g.fg.Load()))
			br, bg, bb := g.pal.rgb(int(g.bg.Load()))
			if g.cursorAt(row, col) {
				fr, fg, fb = ^fr, ^fg, ^fb
				br, bg, bb = ^br, ^bg, ^bb
			}
			for px := 0; px < cw; px++ {
				if line&(0x80>>(px*GlyphWidth/cw)) != 0 {
					r.img.Pix[i+0], r.img.Pix[i+1], r.img.Pix[i+2] = fr, fg, fb
				} else {
					r.img.Pix[i+0], r.img.Pix[i+1], r.img.Pix[i+2] = br, bg, bb
				}
				r.img.Pix[i+3] = 0xFF
				i += 4
			}
		}
	}
	g.vblank.Store(true)
	r.endFrame()
	return r.img
}

func (r *Renderer) endFrame() {
	r.frames++
	if r.frames%blinkFrames == 0 {
		r.gpu.blink.Store(!r.gpu.blink.Load())
	}
}

// pixel resolves the color of one visible raster position: grid cell to
// character code, code and scanline to glyph bit, bit to fore- or background
// palette entry, inverted under a visible cursor.
func (g *GPU) pixel(x, y int) (r, grn, b uint8) {
	cw := g.Mode().CellWidth()
	col := x / cw
	row := y / GlyphHeight
	code := g.grid.load(g.grid.physical(row), col)
	line := Glyph(code)[y%GlyphHeight]
	on := line&(0x80>>(x%cw*GlyphWidth/cw)) != 0

	idx := int(g.bg.Load())
	if on {
		idx = int(g.fg.Load())
	}
	r, grn, b = g.pal.rgb(idx)
	if g.cursorAt(row, col) {
		// Inverting the channels, rather than swapping the color
		// indices, keeps the cursor visible even when foreground and
		// background are set to the same color.
		r, grn, b = ^r, ^grn, ^b
	}
	return r, grn, b
}

// cursorAt reports whether the cursor overlay covers a logical cell right
// now, accounting for enable and blink phase.
func (g *GPU) cursorAt(row, col int) bool {
	return g.cursorOn.Load() && g.blink.Load() &&
		row == int(g.cursorRow.Load()) && col == int(g.cursorCol.Load())
}
