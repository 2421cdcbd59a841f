package render

import (
	"image/color"
	"math"
)

// Palette maps signed heights onto a three-stop colour ramp: Low at the
// deepest trough, Mid at rest and High at the tallest crest.
type Palette struct {
	Low  color.RGBA
	Mid  color.RGBA
	High color.RGBA
}

// DefaultPalette is a blue/white/red diverging ramp.
var DefaultPalette = Palette{
	Low:  color.RGBA{R: 16, G: 64, B: 160, A: 255},
	Mid:  color.RGBA{R: 232, G: 240, B: 248, A: 255},
	High: color.RGBA{R: 196, G: 40, B: 40, A: 255},
}

// Color returns the colour for height h given the magnitude that maps to
// the ends of the ramp. Heights beyond scale saturate.
func (p Palette) Color(h, scale float64) color.RGBA {
	if scale <= 0 || math.IsNaN(h) {
		return p.Mid
	}
	t := math.Max(-1, math.Min(1, h/scale))
	if t < 0 {
		return lerp(p.Mid, p.Low, -t)
	}
	return lerp(p.Mid, p.High, t)
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// fillHeightRGBA converts heights into RGBA pixels in buf.
func fillHeightRGBA(buf []byte, heights []float64, scale float64, p Palette) {
	for i, h := range heights {
		c := p.Color(h, scale)
		base := i * 4
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}
