// Package typeset measures, centers and renders text for the sprite batch.
//
// Positions returned by the centering helpers are the top-left corner of the
// text in the y-up world, so the text box spans [x, x+w] x [y-h, y].
package typeset

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/younwookim/screenkit/internal/infrastructure/graphics"
)

// DefaultSource parses the bundled Go Regular font.
func DefaultSource() (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return src, nil
}

// NewFace returns a face of the given size over src.
func NewFace(src *text.GoTextFaceSource, size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: src, Size: size}
}

// LineSpacing is the distance between two baselines for face.
func LineSpacing(face text.Face) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// Measure returns the width and height of s set in face.
func Measure(s string, face text.Face) (float64, float64) {
	return text.Measure(s, face, LineSpacing(face))
}

// CenterSize centers a w x h box in a worldWidth x worldHeight world.
func CenterSize(w, h float64, worldWidth, worldHeight int) mgl64.Vec2 {
	return mgl64.Vec2{(float64(worldWidth) - w) / 2, (float64(worldHeight) + h) / 2}
}

// Center centers s on the world.
func Center(s string, face text.Face, worldWidth, worldHeight int) mgl64.Vec2 {
	w, h := Measure(s, face)
	return CenterSize(w, h, worldWidth, worldHeight)
}

// CenterX centers s horizontally with its top edge at y.
func CenterX(s string, face text.Face, y float64, worldWidth int) mgl64.Vec2 {
	w, _ := Measure(s, face)
	return mgl64.Vec2{(float64(worldWidth) - w) / 2, y}
}

// CenterY centers s vertically with its left edge at x.
func CenterY(s string, face text.Face, x float64, worldHeight int) mgl64.Vec2 {
	_, h := Measure(s, face)
	return mgl64.Vec2{x, (float64(worldHeight) + h) / 2}
}

// CenterOnImage centers s on an image whose bottom-left corner is imgPos.
func CenterOnImage(s string, face text.Face, imgPos mgl64.Vec2, imgWidth, imgHeight float64) mgl64.Vec2 {
	w, h := Measure(s, face)
	return mgl64.Vec2{
		imgPos.X() + (imgWidth-w)/2,
		imgPos.Y() + (imgHeight+h)/2,
	}
}

// Label is a string rendered once into an image so it can be drawn through
// the batch like any other region.
type Label struct {
	Text   string
	region *graphics.Region
	width  float64
	height float64
}

// NewLabel renders s in face and clr.
func NewLabel(s string, face text.Face, clr color.Color) *Label {
	w, h := Measure(s, face)
	img := ebiten.NewImage(max(int(math.Ceil(w)), 1), max(int(math.Ceil(h)), 1))

	op := &text.DrawOptions{}
	op.LineSpacing = LineSpacing(face)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(img, s, face, op)

	return &Label{
		Text:   s,
		region: graphics.NewRegion(img),
		width:  w,
		height: h,
	}
}

// Size returns the measured size of the label.
func (l *Label) Size() (float64, float64) {
	return l.width, l.height
}

// Draw draws the label with its top-left corner at pos.
func (l *Label) Draw(batch graphics.Batch, pos mgl64.Vec2) {
	batch.Draw(l.region, pos.X(), pos.Y()-l.height, l.width, l.height)
}

// Dispose releases the label image.
func (l *Label) Dispose() {
	if l.region != nil && l.region.Image != nil {
		l.region.Image.Deallocate()
		l.region = nil
	}
}
