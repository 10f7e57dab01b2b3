package render

// Palette maps 8-bit color indices to RGB
type Palette [256]RGB

// Nearest returns the index of the closest palette entry, lowest index on ties
func (p *Palette) Nearest(c RGB) uint8 {
	best := 0
	bestDist := p[0].dist2(c)
	for i := 1; i < len(p) && bestDist > 0; i++ {
		if d := p[i].dist2(c); d < bestDist {
			best, bestDist = i, d
		}
	}
	return uint8(best)
}

// paletteRange is a gradient run inside the synthetic palette
type paletteRange struct {
	start, count int
	from, to     RGB
}

// Ranges follow the classic layout: each run goes from bright to dark so
// that the base index of a semantic color is its brightest shade
var defaultRanges = []paletteRange{
	{1, 15, RGB{80, 60, 40}, RGB{24, 16, 8}},
	{16, 32, RGB{255, 183, 183}, RGB{64, 32, 32}},
	{48, 16, RGB{255, 235, 210}, RGB{120, 90, 60}},
	{64, 16, RGB{190, 130, 80}, RGB{40, 24, 12}},     // browns
	{80, 16, RGB{255, 255, 255}, RGB{110, 110, 110}}, // light grays
	{96, 16, RGB{160, 160, 160}, RGB{20, 20, 20}},    // grays
	{112, 16, RGB{120, 255, 120}, RGB{8, 40, 8}},     // greens
	{128, 16, RGB{190, 170, 140}, RGB{50, 40, 30}},
	{144, 16, RGB{160, 130, 90}, RGB{40, 28, 16}},
	{160, 16, RGB{255, 200, 150}, RGB{110, 70, 40}},
	{176, 16, RGB{255, 0, 0}, RGB{60, 0, 0}},         // reds
	{192, 8, RGB{230, 230, 255}, RGB{150, 150, 255}}, // pale blues
	{200, 8, RGB{0, 0, 255}, RGB{0, 0, 90}},          // blues
	{208, 16, RGB{255, 255, 230}, RGB{255, 110, 0}},  // white into orange
	{224, 8, RGB{255, 255, 200}, RGB{255, 255, 0}},   // yellows, 231 is pure yellow
	{232, 8, RGB{255, 150, 0}, RGB{90, 40, 0}},
	{240, 8, RGB{0, 0, 80}, RGB{0, 0, 8}},
	{248, 8, RGB{255, 100, 100}, RGB{160, 0, 160}},
}

// DefaultPalette builds a stand-in for the game palette with the same index layout
// Hosts replace it with PLAYPAL when a WAD is loaded
func DefaultPalette() *Palette {
	var p Palette
	for _, r := range defaultRanges {
		for i := 0; i < r.count; i++ {
			t := 0.0
			if r.count > 1 {
				t = float64(i) / float64(r.count-1)
			}
			p[r.start+i] = r.from.Toward(r.to, t)
		}
	}
	// Near-black slots used for background and invisible players
	p[246] = RGB{16, 0, 16}
	p[247] = RGB{0, 0, 0}
	return &p
}
