package gpu

import "sync/atomic"

const (
	// Rows is the fixed height of the character grid in both modes.
	Rows = 30

	// Space is the character code a cleared cell holds.
	Space = 0x20
)

// grid is the character store: Rows of up to 80 cells, addressed through a
// wrapping top-row offset so that scrolling moves no cell contents.
//
// Each cell is individually atomic. The control goroutine is the only
// writer; the render loop reads concurrently and may observe a mix of old
// and new cells during a scroll or sweep, but never a torn cell.
type grid struct {
	cells [Rows * colsWide]atomic.Uint32
	top   atomic.Uint32
}

// physical maps a logical (on-screen) row to its storage row.
func (g *grid) physical(row int) int {
	return (row + int(g.top.Load())) % Rows
}

func (g *grid) load(physRow, col int) byte {
	return byte(g.cells[physRow*colsWide+col].Load())
}

func (g *grid) store(physRow, col int, code byte) {
	g.cells[physRow*colsWide+col].Store(uint32(code))
}

// scroll advances the visible window by one row and blanks the storage row
// that just became the bottom of the screen. O(cols), not O(rows*cols).
func (g *grid) scroll(cols int) {
	top := (int(g.top.Load()) + 1) % Rows
	g.top.Store(uint32(top))
	g.blankRow(g.physical(Rows-1), cols)
}

func (g *grid) blankRow(physRow, cols int) {
	for col := 0; col < cols; col++ {
		g.store(physRow, col, Space)
	}
}

// sweep writes a space to every cell and rewinds the window to row zero.
func (g *grid) sweep() {
	for i := range g.cells {
		g.cells[i].Store(Space)
	}
	g.top.Store(0)
}
