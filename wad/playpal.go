package wad

import (
	"fmt"

	"github.com/lixenwraith/automap/render"
)

const paletteBytes = 256 * 3

// Palette reads the first PLAYPAL palette
func (w *WAD) Palette() (*render.Palette, error) {
	raw, err := w.ReadNamed("PLAYPAL")
	if err != nil {
		return nil, err
	}
	if len(raw) < paletteBytes {
		return nil, fmt.Errorf("%w: PLAYPAL holds %d bytes", ErrLump, len(raw))
	}
	var pal render.Palette
	for i := range pal {
		pal[i] = render.RGB{R: raw[i*3], G: raw[i*3+1], B: raw[i*3+2]}
	}
	return &pal, nil
}
