package terminal

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriterDiffs(t *testing.T) {
	var out bytes.Buffer
	w := NewWriter(&out, ColorModeTrueColor)

	red := RGB{255, 0, 0}
	cells := []Cell{
		{Rune: ' ', Bg: red}, {Rune: ' ', Bg: red},
		{Rune: ' ', Bg: red}, {Rune: ' ', Bg: red},
	}
	if err := w.Flush(cells, 2, 2); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	first := out.String()
	if !strings.Contains(first, "48;2;255;0;0") {
		t.Errorf("Expected truecolor background, got %q", first)
	}
	// Style is emitted once for the run of identical cells
	if strings.Count(first, "48;2;255;0;0") != 1 {
		t.Errorf("Expected coalesced style, got %q", first)
	}

	out.Reset()
	if err := w.Flush(cells, 2, 2); err != nil {
		t.Fatal(err)
	}
	if strings.ContainsRune(out.String(), ' ') {
		t.Errorf("Expected unchanged frame to write no cells, got %q", out.String())
	}

	out.Reset()
	cells[3] = Cell{Rune: '▀', Fg: RGB{0, 0, 255}, Bg: red}
	if err := w.Flush(cells, 2, 2); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if !strings.Contains(got, "\x1b[2;2H") || !strings.ContainsRune(got, '▀') {
		t.Errorf("Expected cursor to cell (2,2) and a half block, got %q", got)
	}
}

func TestWriter256(t *testing.T) {
	var out bytes.Buffer
	w := NewWriter(&out, ColorMode256)
	if err := w.Flush([]Cell{{Rune: ' ', Bg: RGB{255, 0, 0}}}, 1, 1); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "48;5;196") {
		t.Errorf("Expected 256-color red, got %q", out.String())
	}
}

func TestWriterInvalidateRedraws(t *testing.T) {
	var out bytes.Buffer
	w := NewWriter(&out, ColorMode256)
	cells := []Cell{{Rune: 'x'}}
	w.Flush(cells, 1, 1)
	out.Reset()
	w.Invalidate()
	w.Flush(cells, 1, 1)
	if !strings.ContainsRune(out.String(), 'x') {
		t.Errorf("Expected full redraw after invalidate")
	}
}

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		c    RGB
		want uint8
	}{
		{RGB{0, 0, 0}, 16},
		{RGB{255, 255, 255}, 231},
		{RGB{255, 0, 0}, 196},
		{RGB{0, 0, 255}, 21},
		{RGB{128, 128, 128}, 244},
	}
	for _, tt := range tests {
		if got := RGBTo256(tt.c); got != tt.want {
			t.Errorf("Expected %d for %+v, got %d", tt.want, tt.c, got)
		}
	}
}

func TestColorModeFromEnv(t *testing.T) {
	env := EnvLookup([]string{"TERM=xterm-256color", "COLORTERM=truecolor"})
	if ColorModeFromEnv(env) != ColorModeTrueColor {
		t.Errorf("Expected truecolor from COLORTERM")
	}
	env = EnvLookup([]string{"TERM=xterm-256color"})
	if ColorModeFromEnv(env) != ColorMode256 {
		t.Errorf("Expected 256 fallback")
	}
}
