package graphics

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// surface is a draw destination. Targets push themselves on Begin.
type surface struct {
	dst      *ebiten.Image
	viewport image.Rectangle
	bottomUp bool
}

// SpriteBatch is the Ebitengine Batch. It draws into the screen image set by
// the backend, or into whichever Target is currently capturing.
type SpriteBatch struct {
	screen     surface
	stack      []surface
	projection mgl64.Mat4
	transform  ebiten.GeoM
	tint       color.Color
	drawing    bool
}

// NewSpriteBatch creates a batch with an identity projection and a white tint.
func NewSpriteBatch() *SpriteBatch {
	return &SpriteBatch{
		projection: mgl64.Ident4(),
		tint:       White,
	}
}

func (b *SpriteBatch) active() surface {
	if n := len(b.stack); n > 0 {
		return b.stack[n-1]
	}
	return b.screen
}

func (b *SpriteBatch) push(s surface) {
	b.stack = append(b.stack, s)
	b.refresh()
}

func (b *SpriteBatch) pop() {
	if len(b.stack) > 0 {
		b.stack = b.stack[:len(b.stack)-1]
	}
	b.refresh()
}

func (b *SpriteBatch) refresh() {
	s := b.active()
	b.transform = surfaceGeoM(b.projection, s.viewport, s.bottomUp)
}

// Begin starts a drawing pass against the active destination.
func (b *SpriteBatch) Begin() {
	if b.drawing {
		panic("graphics: SpriteBatch.End must be called before Begin")
	}
	b.refresh()
	b.drawing = true
}

// End finishes the drawing pass.
func (b *SpriteBatch) End() {
	if !b.drawing {
		panic("graphics: SpriteBatch.Begin must be called before End")
	}
	b.drawing = false
}

// Drawing reports whether the batch is between Begin and End.
func (b *SpriteBatch) Drawing() bool {
	return b.drawing
}

// SetColor sets the tint for subsequent draws.
func (b *SpriteBatch) SetColor(c color.Color) {
	b.tint = c
}

// Color returns the current tint.
func (b *SpriteBatch) Color() color.Color {
	return b.tint
}

// SetProjection sets the world-to-clip matrix.
func (b *SpriteBatch) SetProjection(m mgl64.Mat4) {
	b.projection = m
	b.refresh()
}

// SetViewport sets where clip space lands on the visible framebuffer.
// Targets always map clip space onto their full bounds.
func (b *SpriteBatch) SetViewport(r image.Rectangle) {
	b.screen.viewport = r
	b.refresh()
}

// Draw draws region over the world rectangle (x, y, w, h).
func (b *SpriteBatch) Draw(region *Region, x, y, w, h float64) {
	if !b.drawing {
		panic("graphics: SpriteBatch.Draw called outside Begin/End")
	}
	s := b.active()
	if s.dst == nil || region == nil || region.Image == nil {
		return
	}
	iw, ih := region.Size()
	if iw == 0 || ih == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM = quadGeoM(region, float64(iw), float64(ih), x, y, w, h)
	op.GeoM.Concat(b.transform)
	op.ColorScale.ScaleWithColor(b.tint)
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(region.Image, op)
}

// StrokeLine draws a world-space line on the active destination.
func (b *SpriteBatch) StrokeLine(x0, y0, x1, y1, width float64) {
	if !b.drawing {
		panic("graphics: SpriteBatch.StrokeLine called outside Begin/End")
	}
	s := b.active()
	if s.dst == nil {
		return
	}
	sx0, sy0 := b.transform.Apply(x0, y0)
	sx1, sy1 := b.transform.Apply(x1, y1)
	vector.StrokeLine(s.dst, float32(sx0), float32(sy0), float32(sx1), float32(sy1), float32(width), b.tint, true)
}

var _ LineBatch = (*SpriteBatch)(nil)
