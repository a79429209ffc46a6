package gpu

import "testing"

func TestPortResetValues(t *testing.T) {
	p := NewPort(New())
	for _, c := range []struct {
		reg  byte
		want byte
	}{
		{RegCursorRow, 0},
		{RegCursorCol, 0},
		{RegFgColor, 7},
		{RegBgColor, 0},
		{RegStatus, StatusReady},
		{RegCharData, 0}, // write-only
		{RegControl, 0},  // write-only
	} {
		if got := p.In(c.reg); got != c.want {
			t.Errorf("In(%#x) = %#x, want %#x", c.reg, got, c.want)
		}
	}
}

func TestPortCursorReadWrite(t *testing.T) {
	g := New()
	p := NewPort(g)
	for _, row := range []byte{0, 10, 20, 29} {
		p.Out(RegCursorRow, row)
		if got := p.In(RegCursorRow); got != row {
			t.Errorf("In(CURSOR_ROW) = %d, want %d", got, row)
		}
	}
	p.Out(RegCursorRow, 99) // clamped, not rejected
	if got := p.In(RegCursorRow); got != Rows-1 {
		t.Errorf("In(CURSOR_ROW) = %d after out-of-range write, want %d", got, Rows-1)
	}
	p.Out(RegCursorCol, 39)
	if got := p.In(RegCursorCol); got != 39 {
		t.Errorf("In(CURSOR_COL) = %d, want 39", got)
	}
	p.Out(RegCursorCol, 80) // 40-column mode
	if got := p.In(RegCursorCol); got != 39 {
		t.Errorf("In(CURSOR_COL) = %d after out-of-range write, want 39", got)
	}
}

func TestPortCharData(t *testing.T) {
	g := New()
	p := NewPort(g)
	p.Out(RegCharData, 'O')
	p.Out(RegCharData, 'K')
	if c := g.Cell(0, 0); c != 'O' {
		t.Errorf("Cell(0,0) = %q, want 'O'", c)
	}
	if c := g.Cell(0, 1); c != 'K' {
		t.Errorf("Cell(0,1) = %q, want 'K'", c)
	}
	if got := p.In(RegCursorCol); got != 2 {
		t.Errorf("In(CURSOR_COL) = %d, want 2", got)
	}
}

func TestPortControl(t *testing.T) {
	g := New()
	p := NewPort(g)
	g.WriteChar('x')

	p.Out(RegControl, CtrlMode80|CtrlCursorEnable)
	if m := g.Mode(); m != Mode80 {
		t.Errorf("Mode() = %v, want %v", m, Mode80)
	}
	if !g.CursorEnabled() {
		t.Error("cursor disabled")
	}
	if c := g.Cell(0, 0); c != Space { // mode change cleared the grid
		t.Errorf("Cell(0,0) = %#x, want space", c)
	}

	g.WriteChar('x')
	p.Out(RegControl, CtrlMode80|CtrlClear) // clear without mode change
	if c := g.Cell(0, 0); c != Space {
		t.Errorf("Cell(0,0) = %#x after CLEAR, want space", c)
	}
	if g.CursorEnabled() {
		t.Error("cursor still enabled with bit clear")
	}
}

func TestPortColors(t *testing.T) {
	g := New()
	p := NewPort(g)
	p.Out(RegFgColor, 2)
	p.Out(RegBgColor, 0xFD) // only the low 3 bits matter
	if got := p.In(RegFgColor); got != 2 {
		t.Errorf("In(FG_COLOR) = %d, want 2", got)
	}
	if got := p.In(RegBgColor); got != 5 {
		t.Errorf("In(BG_COLOR) = %d, want 5", got)
	}
}
