package gpu

// Register offsets for the byte-addressed host port. How these map into the
// host's address space is the bus's concern.
const (
	RegCharData  = 0x0 // write character at cursor, auto-advance
	RegCursorRow = 0x1
	RegCursorCol = 0x2
	RegControl   = 0x3
	RegFgColor   = 0x4
	RegBgColor   = 0x5
	RegStatus    = 0x6
)

// RegControl bits.
const (
	CtrlClear        = 0x01
	CtrlMode80       = 0x02
	CtrlCursorEnable = 0x04
)

// RegStatus bits.
const (
	StatusReady  = 0x01
	StatusVBlank = 0x02
)

// Port adapts the GPU's typed operations to a byte-wide register file, the
// shape a memory-mapped host bus drives. All writes clamp or ignore rather
// than fail; reads of write-only registers return zero.
type Port struct {
	gpu *GPU
}

func NewPort(g *GPU) *Port {
	return &Port{gpu: g}
}

func (p *Port) In(reg byte) byte {
	g := p.gpu
	switch reg {
	case RegCursorRow:
		row, _ := g.CursorPos()
		return byte(row)
	case RegCursorCol:
		_, col := g.CursorPos()
		return byte(col)
	case RegFgColor:
		return g.Foreground()
	case RegBgColor:
		return g.Background()
	case RegStatus:
		var v byte
		s := g.Status()
		if s.Ready {
			v |= StatusReady
		}
		if s.VBlank {
			v |= StatusVBlank
		}
		return v
	default:
		return 0
	}
}

func (p *Port) Out(reg, v byte) {
	g := p.gpu
	switch reg {
	case RegCharData:
		g.WriteChar(v)
	case RegCursorRow:
		_, col := g.CursorPos()
		g.SetCursor(int(v), col)
	case RegCursorCol:
		row, _ := g.CursorPos()
		g.SetCursor(row, int(v))
	case RegControl:
		mode := Mode40
		if v&CtrlMode80 != 0 {
			mode = Mode80
		}
		g.SetMode(mode)
		g.SetCursorEnabled(v&CtrlCursorEnable != 0)
		if v&CtrlClear != 0 {
			g.Clear()
		}
	case RegFgColor:
		g.SetForeground(v)
	case RegBgColor:
		g.SetBackground(v)
	}
}
