package gpu

import "testing"

// Distinct logical rows map to distinct in-range physical rows for every
// possible window position.
func TestPhysicalMapping(t *testing.T) {
	var g grid
	for top := 0; top < Rows; top++ {
		g.top.Store(uint32(top))
		seen := make(map[int]int)
		for row := 0; row < Rows; row++ {
			p := g.physical(row)
			if p < 0 || p >= Rows {
				t.Fatalf("top=%d: physical(%d) = %d, out of range", top, row, p)
			}
			if prev, ok := seen[p]; ok {
				t.Fatalf("top=%d: physical rows collide: logical %d and %d both map to %d",
					top, prev, row, p)
			}
			seen[p] = row
		}
	}
}

// A scroll step relocates no cell contents: every surviving row is still
// reachable at its new logical position, and only the vacated row changed.
func TestScrollMovesWindowOnly(t *testing.T) {
	var g grid
	g.sweep()
	for row := 0; row < Rows; row++ {
		for col := 0; col < colsNarrow; col++ {
			g.store(row, col, byte('A'+row%26))
		}
	}

	g.scroll(colsNarrow)

	if top := g.top.Load(); top != 1 {
		t.Fatalf("top = %d, want 1", top)
	}
	for row := 0; row < Rows-1; row++ {
		want := byte('A' + (row+1)%26)
		if c := g.load(g.physical(row), 0); c != want {
			t.Errorf("logical row %d starts with %q, want %q", row, c, want)
		}
	}
	for col := 0; col < colsNarrow; col++ {
		if c := g.load(g.physical(Rows-1), col); c != Space {
			t.Fatalf("vacated bottom row col %d = %#x, want space", col, c)
		}
	}
}

func TestScrollWraps(t *testing.T) {
	var g grid
	g.sweep()
	for i := 0; i < Rows; i++ {
		g.scroll(colsNarrow)
	}
	if top := g.top.Load(); top != 0 {
		t.Errorf("top = %d after %d scrolls, want 0", top, Rows)
	}
}

func TestSweep(t *testing.T) {
	var g grid
	for i := range g.cells {
		g.cells[i].Store('x')
	}
	g.top.Store(17)
	g.sweep()
	if top := g.top.Load(); top != 0 {
		t.Errorf("top = %d, want 0", top)
	}
	for i := range g.cells {
		if c := g.cells[i].Load(); c != Space {
			t.Fatalf("cell %d = %#x, want space", i, c)
		}
	}
}
