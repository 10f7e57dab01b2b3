package render

import "testing"

// grayPalette maps index i to gray level i so ramp math is exact
func grayPalette() *Palette {
	var p Palette
	for i := range p {
		p[i] = RGB{uint8(i), uint8(i), uint8(i)}
	}
	return &p
}

func rampIndex(r *Ramp, c uint8) int {
	for i, v := range r {
		if v == c {
			return i
		}
	}
	return -1
}

func TestRampsFadeTowardBackground(t *testing.T) {
	ramps := NewRamps(grayPalette(), 0, 255)
	r := ramps.Lookup(255)
	if r == nil {
		t.Fatal("Expected ramp for registered color")
	}
	want := Ramp{255, 223, 191, 159, 127, 95, 63, 31}
	if *r != want {
		t.Errorf("Expected %v, got %v", want, *r)
	}
	if ramps.Lookup(100) != nil {
		t.Errorf("Expected no ramp for unregistered color")
	}
}

func TestWuHorizontalFullIntensity(t *testing.T) {
	pal := DefaultPalette()
	fb := NewFramebuffer(64, 64)
	w := NewWindow(fb, 0, 0, 64, 64)
	wu := WuLine{Ramps: NewRamps(pal, 0, 176)}

	wu.DrawLine(w, Line{Point{10, 50}, Point{20, 50}}, 176)

	for x := 10; x <= 20; x++ {
		if got := w.At(x, 50); got != 176 {
			t.Errorf("Expected full intensity at (%d,50), got %d", x, got)
		}
		if w.At(x, 51) != 0 || w.At(x, 49) != 0 {
			t.Errorf("Expected no shaded neighbors at column %d", x)
		}
	}
}

func TestWuVerticalAndDiagonalSolid(t *testing.T) {
	pal := grayPalette()
	ramps := NewRamps(pal, 0, 255)
	fb := NewFramebuffer(16, 16)
	w := NewWindow(fb, 0, 0, 16, 16)
	wu := WuLine{Ramps: ramps}

	wu.DrawLine(w, Line{Point{2, 1}, Point{2, 9}}, 255)
	wu.DrawLine(w, Line{Point{12, 2}, Point{6, 8}}, 255)

	for y := 1; y <= 9; y++ {
		if w.At(2, y) != 255 {
			t.Errorf("Expected solid vertical pixel at (2,%d)", y)
		}
	}
	for i := 0; i <= 6; i++ {
		if w.At(12-i, 2+i) != 255 {
			t.Errorf("Expected solid diagonal pixel at (%d,%d)", 12-i, 2+i)
		}
	}
}

func TestWuGeneralComplementaryWeights(t *testing.T) {
	pal := grayPalette()
	ramps := NewRamps(pal, 0, 255)
	ramp := ramps.Lookup(255)
	fb := NewFramebuffer(16, 8)
	w := NewWindow(fb, 0, 0, 16, 8)
	wu := WuLine{Ramps: ramps}

	wu.DrawLine(w, Line{Point{0, 0}, Point{10, 3}}, 255)

	if w.At(0, 0) != 255 || w.At(10, 3) != 255 {
		t.Fatalf("Expected solid endpoints")
	}
	for x := 1; x < 10; x++ {
		var ys []int
		for y := 0; y < 8; y++ {
			if w.At(x, y) != 0 {
				ys = append(ys, y)
			}
		}
		if len(ys) != 2 || ys[1] != ys[0]+1 {
			t.Fatalf("Column %d: expected two stacked pixels, got rows %v", x, ys)
		}
		a := rampIndex(ramp, w.At(x, ys[0]))
		b := rampIndex(ramp, w.At(x, ys[1]))
		if a < 0 || b < 0 || a+b != NumShades-1 {
			t.Errorf("Column %d: expected complementary weights, got %d and %d", x, a, b)
		}
	}
}

func TestWuThicknessOnlyOnSolidPaths(t *testing.T) {
	ramps := NewRamps(grayPalette(), 0, 255)
	wu := WuLine{Ramps: ramps, Radius: 2}

	tests := []struct {
		name string
		line Line
		want int
	}{
		// Two endpoints plus two weighted pixels in each of the nine inner columns
		{"general", Line{Point{4, 4}, Point{14, 7}}, 20},
		// Every pixel of the span grows into a radius 2 disc
		{"horizontal", Line{Point{4, 8}, Point{6, 8}}, 13 + 2*5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := NewFramebuffer(24, 16)
			w := NewWindow(fb, 0, 0, 24, 16)
			wu.DrawLine(w, tt.line, 255)

			n := 0
			for y := 0; y < 16; y++ {
				for x := 0; x < 24; x++ {
					if w.At(x, y) != 0 {
						n++
					}
				}
			}
			if n != tt.want {
				t.Errorf("Expected %d lit pixels, got %d", tt.want, n)
			}
		})
	}
}

func TestWuFallbackWithoutRamp(t *testing.T) {
	fb := NewFramebuffer(16, 16)
	w := NewWindow(fb, 0, 0, 16, 16)
	wu := WuLine{Ramps: NewRamps(grayPalette(), 0, 255)}

	wu.DrawLine(w, Line{Point{0, 0}, Point{9, 4}}, 42)

	if n := countColor(w, 42); n != 10 {
		t.Errorf("Expected solid Bresenham fallback with 10 pixels, got %d", n)
	}
}

func TestWuEdgeFade(t *testing.T) {
	pal := grayPalette()
	ramps := NewRamps(pal, 0, 255)
	ramp := ramps.Lookup(255)
	fb := NewFramebuffer(100, 100)
	w := NewWindow(fb, 0, 0, 100, 100)
	wu := WuLine{Ramps: ramps, EdgeFade: true}

	wu.DrawLine(w, Line{Point{0, 50}, Point{99, 50}}, 255)

	tests := []struct {
		x, shade int
	}{
		{0, 6},
		{20, 2},
		{50, 0},
		{99, 6},
	}
	for _, tt := range tests {
		if got := rampIndex(ramp, w.At(tt.x, 50)); got != tt.shade {
			t.Errorf("x=%d: expected shade %d, got %d", tt.x, tt.shade, got)
		}
	}
}
