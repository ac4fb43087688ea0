package graphics

import "github.com/hajimehoshi/ebiten/v2"

// Region is a sampleable texture area. Flip flags are applied when drawn.
type Region struct {
	Image *ebiten.Image
	FlipX bool
	FlipY bool
}

// NewRegion wraps a whole image.
func NewRegion(img *ebiten.Image) *Region {
	return &Region{Image: img}
}

// Flip toggles the horizontal and/or vertical flip flags.
func (r *Region) Flip(x, y bool) {
	if x {
		r.FlipX = !r.FlipX
	}
	if y {
		r.FlipY = !r.FlipY
	}
}

// Size returns the pixel size of the underlying image, or zero when empty.
func (r *Region) Size() (int, int) {
	if r == nil || r.Image == nil {
		return 0, 0
	}
	b := r.Image.Bounds()
	return b.Dx(), b.Dy()
}

// quadGeoM maps the pixels of an iw x ih image onto the y-up world rectangle
// (x, y, w, h), honouring the region flips.
func quadGeoM(r *Region, iw, ih, x, y, w, h float64) ebiten.GeoM {
	var g ebiten.GeoM
	if r.FlipX {
		g.Scale(-1, 1)
		g.Translate(iw, 0)
	}
	if r.FlipY {
		g.Scale(1, -1)
		g.Translate(0, ih)
	}
	// Image row 0 is the top edge of the quad.
	g.Scale(w/iw, -h/ih)
	g.Translate(x, y+h)
	return g
}
