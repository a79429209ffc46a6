// Package gpu implements a text-mode display controller: a 30-row character
// grid rendered through an 8x16 font to a fixed 640x480 raster.
//
// The controller spans two timing domains. Control operations (WriteChar,
// SetCursor, and so on) belong to the host and must all be issued from a
// single goroutine. The render side (Renderer, or a front end reading Cell)
// runs freely on another goroutine and samples the same state. Every shared
// field and grid cell is individually atomic, so neither side ever blocks the
// other or observes a torn value; compound updates such as a cursor move are
// deliberately not transactional, as they are quasi-static at pixel rate.
package gpu

import "sync/atomic"

// Mode selects the number of character columns. Forty-column mode doubles
// each glyph pixel horizontally to fill the same 640-pixel line.
type Mode int

const (
	Mode40 Mode = iota
	Mode80
)

const (
	colsNarrow = 40
	colsWide   = 80
)

// Columns returns the number of character columns in this mode.
func (m Mode) Columns() int {
	if m == Mode80 {
		return colsWide
	}
	return colsNarrow
}

// CellWidth returns the width in pixels of one character cell.
func (m Mode) CellWidth() int {
	return HActive / m.Columns()
}

func (m Mode) String() string {
	if m == Mode80 {
		return "80-column"
	}
	return "40-column"
}

// GPU is the display controller state shared between the control and render
// domains. The zero value is not usable; call New.
type GPU struct {
	grid grid
	pal  palette

	cursorRow atomic.Uint32
	cursorCol atomic.Uint32
	cursorOn  atomic.Bool
	blink     atomic.Bool // owned by the render domain

	mode atomic.Uint32
	fg   atomic.Uint32
	bg   atomic.Uint32

	clearing atomic.Bool // clear requested or sweep in progress
	vblank   atomic.Bool // owned by the render domain
}

// New returns a GPU in its reset state: 40-column mode, all spaces, cursor
// enabled at the origin, white on black.
func New() *GPU {
	g := &GPU{}
	g.Reset()
	return g
}

// Reset restores the power-on state. Control domain only.
func (g *GPU) Reset() {
	g.mode.Store(uint32(Mode40))
	g.cursorRow.Store(0)
	g.cursorCol.Store(0)
	g.cursorOn.Store(true)
	g.blink.Store(true)
	g.fg.Store(7) // white
	g.bg.Store(0) // black
	g.pal.reset()
	g.grid.sweep()
	g.clearing.Store(false)
}

// Mode returns the active column mode.
func (g *GPU) Mode() Mode { return Mode(g.mode.Load()) }

// Columns returns the number of character columns in the active mode.
func (g *GPU) Columns() int { return g.Mode().Columns() }

// WriteChar stores code at the cursor cell and advances the cursor, wrapping
// to the next row at the end of a line and scrolling one row when the cursor
// runs off the bottom of the grid. It never rejects a code: values outside
// the printable range are stored as written and render as the placeholder
// block.
func (g *GPU) WriteChar(code byte) {
	row, col := g.CursorPos()
	cols := g.Columns()
	g.grid.store(g.grid.physical(row), col, code)
	col++
	if col >= cols {
		col = 0
		row++
	}
	if row == Rows {
		g.grid.scroll(cols)
		row = Rows - 1
	}
	g.cursorCol.Store(uint32(col))
	g.cursorRow.Store(uint32(row))
}

// SetCursor moves the cursor, clamping row and col to the grid.
func (g *GPU) SetCursor(row, col int) {
	g.cursorRow.Store(uint32(clamp(row, Rows-1)))
	g.cursorCol.Store(uint32(clamp(col, g.Columns()-1)))
}

// CursorPos returns the cursor's logical position.
func (g *GPU) CursorPos() (row, col int) {
	return int(g.cursorRow.Load()), int(g.cursorCol.Load())
}

// SetCursorEnabled switches the cursor overlay on or off.
func (g *GPU) SetCursorEnabled(on bool) { g.cursorOn.Store(on) }

// CursorEnabled reports whether the cursor overlay is on.
func (g *GPU) CursorEnabled() bool { return g.cursorOn.Load() }

// SetMode switches the column mode. A change clears the screen and homes the
// cursor; no cell contents survive a width change. Setting the mode already
// in effect does nothing.
func (g *GPU) SetMode(m Mode) {
	if m == g.Mode() {
		return
	}
	g.mode.Store(uint32(m))
	g.cursorRow.Store(0)
	g.cursorCol.Store(0)
	g.Clear()
}

// SetForeground selects the text color. Only the low 3 bits are used.
func (g *GPU) SetForeground(index byte) { g.fg.Store(uint32(index & 7)) }

// SetBackground selects the background color. Only the low 3 bits are used.
func (g *GPU) SetBackground(index byte) { g.bg.Store(uint32(index & 7)) }

// Foreground returns the current text color index.
func (g *GPU) Foreground() byte { return byte(g.fg.Load()) }

// Background returns the current background color index.
func (g *GPU) Background() byte { return byte(g.bg.Load()) }

// SetPalette replaces palette entry index with an RGB444 triple. Entries are
// expanded to 8 bits per channel by nibble replication when rendered.
func (g *GPU) SetPalette(index int, red, green, blue uint8) {
	g.pal.set(index, red, green, blue)
}

// PaletteRGB returns palette entry index expanded to 8 bits per channel.
func (g *GPU) PaletteRGB(index int) (red, green, blue uint8) {
	return g.pal.rgb(index)
}

// Clear blanks the whole grid to spaces and rewinds the scroll window.
// The sweep runs to completion on the calling goroutine in a bounded number
// of per-cell stores; a Clear issued while one is already in progress
// coalesces into it. The cursor and colors are unchanged.
func (g *GPU) Clear() {
	if !g.clearing.CompareAndSwap(false, true) {
		return
	}
	g.grid.sweep()
	g.clearing.Store(false)
}

// Scroll advances the visible window by one row, blanking the row that
// becomes the new bottom. This is the same step WriteChar triggers when the
// cursor runs off the grid.
func (g *GPU) Scroll() {
	g.grid.scroll(g.Columns())
}

// Cell returns the character code at a logical grid position.
func (g *GPU) Cell(row, col int) byte {
	return g.grid.load(g.grid.physical(row), col)
}

// Status is the read-only state a host can poll.
type Status struct {
	// Ready is false only while a clear sweep is in progress.
	Ready bool
	// VBlank reports whether the raster is in vertical blanking, for hosts
	// that batch updates to avoid tearing.
	VBlank bool
}

// Status returns the current host-visible status flags.
func (g *GPU) Status() Status {
	return Status{
		Ready:  !g.clearing.Load(),
		VBlank: g.vblank.Load(),
	}
}

func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
