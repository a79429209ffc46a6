// Package term maps a byte stream onto text-GPU operations: the glue between
// something producing characters (stdin, a serial host, key events) and the
// display's register surface.
package term

// Display is the subset of GPU operations the adapter drives. All calls must
// come from a single goroutine.
type Display interface {
	WriteChar(code byte)
	SetCursor(row, col int)
	CursorPos() (row, col int)
	Columns() int
	Clear()
	Scroll()
}

const (
	rows     = 30
	tabWidth = 8
)

// Writer interprets a small set of control bytes and passes everything else
// straight to the display. It implements io.Writer so a stream can be copied
// into it.
type Writer struct {
	d Display
}

func NewWriter(d Display) *Writer {
	return &Writer{d: d}
}

func (w *Writer) Write(p []byte) (int, error) {
	for _, b := range p {
		w.WriteByte(b)
	}
	return len(p), nil
}

// WriteByte processes one byte. It never fails: control bytes the adapter
// does not handle go to the display as-is and render as the placeholder
// block.
func (w *Writer) WriteByte(b byte) error {
	switch b {
	case '\r':
		row, _ := w.d.CursorPos()
		w.d.SetCursor(row, 0)
	case '\n':
		w.newline()
	case '\b':
		row, col := w.d.CursorPos()
		w.d.SetCursor(row, col-1)
	case '\t':
		row, col := w.d.CursorPos()
		col = (col/tabWidth + 1) * tabWidth
		if col >= w.d.Columns() {
			col = w.d.Columns() - 1
		}
		w.d.SetCursor(row, col)
	case '\f':
		w.d.Clear()
		w.d.SetCursor(0, 0)
	default:
		w.d.WriteChar(b)
	}
	return nil
}

func (w *Writer) newline() {
	row, _ := w.d.CursorPos()
	if row == rows-1 {
		w.d.Scroll()
	} else {
		row++
	}
	w.d.SetCursor(row, 0)
}
