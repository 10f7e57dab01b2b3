package render

// NumShades is the number of intensity levels per antialiasing ramp
const NumShades = 8

// Ramp holds a color's shades from full intensity (index 0) toward the background
type Ramp [NumShades]uint8

// Ramps maps base palette indices to their antialiasing ramp
// Only colors registered through Build have a ramp
type Ramps struct {
	table [256]*Ramp
}

// NewRamps builds ramps for the given base colors fading toward bg
func NewRamps(pal *Palette, bg uint8, colors ...uint8) *Ramps {
	r := &Ramps{}
	r.Build(pal, bg, colors...)
	return r
}

// Build adds ramps for colors that do not have one yet
func (r *Ramps) Build(pal *Palette, bg uint8, colors ...uint8) {
	back := pal[bg]
	for _, c := range colors {
		if r.table[c] != nil {
			continue
		}
		ramp := &Ramp{}
		base := pal[c]
		for i := range ramp {
			if i == 0 {
				ramp[i] = c
				continue
			}
			ramp[i] = pal.Nearest(base.Toward(back, float64(i)/NumShades))
		}
		r.table[c] = ramp
	}
}

// Lookup returns the ramp for a base color, nil if none was built
func (r *Ramps) Lookup(c uint8) *Ramp {
	if r == nil {
		return nil
	}
	return r.table[c]
}

// DimTable darkens every palette entry, used to fade the view under an overlay
func DimTable(pal *Palette, factor float64) *[256]uint8 {
	var t [256]uint8
	for i := range t {
		t[i] = pal.Nearest(pal[i].Scaled(factor))
	}
	return &t
}
