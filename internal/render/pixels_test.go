package render

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaletteStops(t *testing.T) {
	p := DefaultPalette
	assert.Equal(t, p.Mid, p.Color(0, 50))
	assert.Equal(t, p.High, p.Color(50, 50))
	assert.Equal(t, p.Low, p.Color(-50, 50))
	assert.Equal(t, p.High, p.Color(500, 50), "crests saturate")
	assert.Equal(t, p.Low, p.Color(-500, 50), "troughs saturate")
	assert.Equal(t, p.Mid, p.Color(math.NaN(), 50))
	assert.Equal(t, p.Mid, p.Color(10, 0))
}

func TestPaletteMidpoint(t *testing.T) {
	p := Palette{
		Low:  color.RGBA{A: 255},
		Mid:  color.RGBA{R: 100, G: 100, B: 100, A: 255},
		High: color.RGBA{R: 200, G: 100, B: 0, A: 255},
	}
	assert.Equal(t, color.RGBA{R: 150, G: 100, B: 50, A: 255}, p.Color(5, 10))
	assert.Equal(t, color.RGBA{R: 50, G: 50, B: 50, A: 255}, p.Color(-5, 10))
}

func TestFillHeightRGBA(t *testing.T) {
	p := DefaultPalette
	heights := []float64{0, 10, -10}
	buf := make([]byte, 4*len(heights))
	fillHeightRGBA(buf, heights, 10, p)

	assert.Equal(t, []byte{p.Mid.R, p.Mid.G, p.Mid.B, p.Mid.A}, buf[0:4])
	assert.Equal(t, []byte{p.High.R, p.High.G, p.High.B, p.High.A}, buf[4:8])
	assert.Equal(t, []byte{p.Low.R, p.Low.G, p.Low.B, p.Low.A}, buf[8:12])
}
