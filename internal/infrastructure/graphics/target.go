package graphics

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// ebitenTarget is an off-screen image captured through the shared batch.
type ebitenTarget struct {
	batch    *SpriteBatch
	image    *ebiten.Image
	width    int
	height   int
	disposed bool
}

func newEbitenTarget(batch *SpriteBatch, width, height int) *ebitenTarget {
	return &ebitenTarget{
		batch:  batch,
		image:  ebiten.NewImage(max(width, 1), max(height, 1)),
		width:  width,
		height: height,
	}
}

// Begin clears the target and redirects the batch to it.
func (t *ebitenTarget) Begin() {
	if t.disposed {
		panic("graphics: Begin on a disposed target")
	}
	t.image.Clear()
	t.batch.push(surface{
		dst:      t.image,
		viewport: t.image.Bounds(),
		bottomUp: true,
	})
}

// End restores the previous destination.
func (t *ebitenTarget) End() {
	t.batch.pop()
}

// ColorOutput returns the raw, bottom-up color image.
func (t *ebitenTarget) ColorOutput() *Region {
	return NewRegion(t.image)
}

func (t *ebitenTarget) Width() int  { return t.width }
func (t *ebitenTarget) Height() int { return t.height }

// Dispose releases the GPU image.
func (t *ebitenTarget) Dispose() {
	if t.disposed {
		return
	}
	t.disposed = true
	t.image.Deallocate()
}
