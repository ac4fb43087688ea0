package graphics

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenBackend implements Backend on top of the image Ebitengine hands to Draw.
type EbitenBackend struct {
	batch  *SpriteBatch
	width  int
	height int
}

// NewEbitenBackend creates a backend for a window of the given size.
func NewEbitenBackend(width, height int) *EbitenBackend {
	b := &EbitenBackend{
		batch:  NewSpriteBatch(),
		width:  width,
		height: height,
	}
	b.batch.SetViewport(image.Rect(0, 0, width, height))
	return b
}

// SetScreen sets the visible framebuffer for the current frame.
func (b *EbitenBackend) SetScreen(screen *ebiten.Image) {
	b.batch.screen.dst = screen
}

// SetSize records a new physical window size.
func (b *EbitenBackend) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Size returns the physical window size.
func (b *EbitenBackend) Size() (int, int) {
	return b.width, b.height
}

// NewTarget allocates an off-screen target drawn through the shared batch.
func (b *EbitenBackend) NewTarget(width, height int) Target {
	return newEbitenTarget(b.batch, width, height)
}

// Batch returns the shared batch.
func (b *EbitenBackend) Batch() Batch {
	return b.batch
}

// Clear fills the visible framebuffer.
func (b *EbitenBackend) Clear(c color.Color) {
	if b.batch.screen.dst != nil {
		b.batch.screen.dst.Fill(c)
	}
}
