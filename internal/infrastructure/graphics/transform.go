package graphics

import (
	"image"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// surfaceGeoM converts a world-to-clip matrix into the 2D affine transform
// from world coordinates to destination pixels inside vp.
// With bottomUp set, clip y = -1 lands on the first pixel row.
func surfaceGeoM(m mgl64.Mat4, vp image.Rectangle, bottomUp bool) ebiten.GeoM {
	hw := float64(vp.Dx()) / 2
	hh := float64(vp.Dy()) / 2

	a := hw * m.At(0, 0)
	b := hw * m.At(0, 1)
	tx := float64(vp.Min.X) + hw*(1+m.At(0, 3))

	c := -hh * m.At(1, 0)
	d := -hh * m.At(1, 1)
	ty := float64(vp.Min.Y) + hh*(1-m.At(1, 3))
	if bottomUp {
		c, d = -c, -d
		ty = float64(vp.Min.Y) + hh*(1+m.At(1, 3))
	}

	var g ebiten.GeoM
	g.SetElement(0, 0, a)
	g.SetElement(0, 1, b)
	g.SetElement(0, 2, tx)
	g.SetElement(1, 0, c)
	g.SetElement(1, 1, d)
	g.SetElement(1, 2, ty)
	return g
}
