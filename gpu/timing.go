package gpu

// VGA 640x480 timing. Each character row is 16 scanlines, giving the fixed
// 30-row grid; the horizontal glyph width depends on the column mode.
const (
	HActive = 640
	hFront  = 16
	hSync   = 96
	hBack   = 48
	HTotal  = HActive + hFront + hSync + hBack // 800

	VActive = Rows * GlyphHeight // 480
	vFront  = 10
	vSync   = 2
	vBack   = 33
	VTotal  = VActive + vFront + vSync + vBack // 525
)

// Raster walks the full 800x525 pixel raster, one position per pixel clock
// tick, wrapping at the end of each line and frame. The zero value starts at
// the top-left of the visible region.
type Raster struct {
	X, Y int
}

// Tick advances to the next pixel position.
func (r *Raster) Tick() {
	r.X++
	if r.X == HTotal {
		r.X = 0
		r.Y++
		if r.Y == VTotal {
			r.Y = 0
		}
	}
}

// Visible reports whether the current position is in the active region.
func (r *Raster) Visible() bool {
	return r.X < HActive && r.Y < VActive
}

// HSync reports whether the horizontal sync pulse is asserted.
func (r *Raster) HSync() bool {
	return r.X >= HActive+hFront && r.X < HActive+hFront+hSync
}

// VSync reports whether the vertical sync pulse is asserted.
func (r *Raster) VSync() bool {
	return r.Y >= VActive+vFront && r.Y < VActive+vFront+vSync
}

// VBlank reports whether the current scanline is below the active region.
func (r *Raster) VBlank() bool {
	return r.Y >= VActive
}
