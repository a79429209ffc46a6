package gpu

import "testing"

func TestRasterCounters(t *testing.T) {
	var r Raster
	for y := 0; y < VTotal; y++ {
		for x := 0; x < HTotal; x++ {
			if r.X != x || r.Y != y {
				t.Fatalf("raster at (%d,%d), want (%d,%d)", r.X, r.Y, x, y)
			}
			r.Tick()
		}
	}
	// One full frame of ticks wraps back to the origin.
	if r.X != 0 || r.Y != 0 {
		t.Errorf("raster at (%d,%d) after full frame, want (0,0)", r.X, r.Y)
	}
}

func TestRasterHSync(t *testing.T) {
	r := Raster{Y: 0}
	for x := 0; x < HTotal; x++ {
		r.X = x
		want := x >= HActive+hFront && x < HActive+hFront+hSync
		if got := r.HSync(); got != want {
			t.Fatalf("HSync() at x=%d is %v, want %v", x, got, want)
		}
	}
}

func TestRasterVSync(t *testing.T) {
	var r Raster
	for y := 0; y < VTotal; y++ {
		r.Y = y
		want := y >= VActive+vFront && y < VActive+vFront+vSync
		if got := r.VSync(); got != want {
			t.Fatalf("VSync() at y=%d is %v, want %v", y, got, want)
		}
	}
}

func TestRasterVisible(t *testing.T) {
	for _, c := range []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{HActive - 1, VActive - 1, true},
		{HActive, 0, false},
		{0, VActive, false},
		{HTotal - 1, VTotal - 1, false},
	} {
		r := Raster{X: c.x, Y: c.y}
		if got := r.Visible(); got != c.want {
			t.Errorf("Visible() at (%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
		if vb := r.VBlank(); vb != (c.y >= VActive) {
			t.Errorf("VBlank() at y=%d = %v", c.y, vb)
		}
	}
}
