//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// HeightPainter updates a single RGBA image from a heightfield.
type HeightPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette Palette
}

// NewHeightPainter allocates a painter for a grid of w*h nodes.
func NewHeightPainter(w, h int, p Palette) *HeightPainter {
	hp := &HeightPainter{w: w, h: h, buf: make([]byte, 4*w*h), palette: p}
	hp.img = ebiten.NewImage(w, h)
	return hp
}

// Blit uploads heights into the painter image and draws it scaled onto dst.
// scale is the height magnitude that saturates the palette.
func (hp *HeightPainter) Blit(dst *ebiten.Image, heights []float64, scale float64, pixelScale int) {
	if len(heights) != hp.w*hp.h {
		return
	}
	fillHeightRGBA(hp.buf, heights, scale, hp.palette)
	hp.img.WritePixels(hp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(pixelScale), float64(pixelScale))
	dst.DrawImage(hp.img, op)
}

// Size returns the dimensions of the underlying image.
func (hp *HeightPainter) Size() (int, int) { return hp.w, hp.h }
