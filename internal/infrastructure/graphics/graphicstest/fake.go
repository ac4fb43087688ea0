// Package graphicstest provides recording fakes of the graphics collaborators
// so screens, transitions and the manager can be tested without a GPU.
package graphicstest

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/screenkit/internal/infrastructure/graphics"
)

// DrawCall is one recorded Batch.Draw.
type DrawCall struct {
	Region *graphics.Region
	X, Y   float64
	W, H   float64
	Color  color.NRGBA
	// Target is the ID of the capturing target, or 0 for the window.
	Target int
}

// LineCall is one recorded Batch.StrokeLine.
type LineCall struct {
	X0, Y0, X1, Y1 float64
	Width          float64
	Color          color.NRGBA
}

// Batch records every call made to it.
type Batch struct {
	Draws       []DrawCall
	Lines       []LineCall
	Begins      int
	Ends        int
	Projections []mgl64.Mat4
	Viewports   []image.Rectangle

	tint    color.Color
	drawing bool
	targets []int
}

// NewBatch creates an empty recording batch.
func NewBatch() *Batch {
	return &Batch{tint: graphics.White}
}

func (b *Batch) Begin() {
	if b.drawing {
		panic("graphicstest: Begin while drawing")
	}
	b.drawing = true
	b.Begins++
}

func (b *Batch) End() {
	if !b.drawing {
		panic("graphicstest: End without Begin")
	}
	b.drawing = false
	b.Ends++
}

func (b *Batch) Drawing() bool { return b.drawing }

func (b *Batch) SetColor(c color.Color) { b.tint = c }

func (b *Batch) Color() color.Color { return b.tint }

func (b *Batch) Draw(region *graphics.Region, x, y, w, h float64) {
	if !b.drawing {
		panic("graphicstest: Draw outside Begin/End")
	}
	b.Draws = append(b.Draws, DrawCall{
		Region: region,
		X:      x, Y: y, W: w, H: h,
		Color:  color.NRGBAModel.Convert(b.tint).(color.NRGBA),
		Target: b.ActiveTarget(),
	})
}

func (b *Batch) StrokeLine(x0, y0, x1, y1, width float64) {
	if !b.drawing {
		panic("graphicstest: StrokeLine outside Begin/End")
	}
	b.Lines = append(b.Lines, LineCall{
		X0: x0, Y0: y0, X1: x1, Y1: y1,
		Width: width,
		Color: color.NRGBAModel.Convert(b.tint).(color.NRGBA),
	})
}

func (b *Batch) SetProjection(m mgl64.Mat4) {
	b.Projections = append(b.Projections, m)
}

func (b *Batch) SetViewport(r image.Rectangle) {
	b.Viewports = append(b.Viewports, r)
}

// ActiveTarget returns the ID of the target currently capturing, or 0.
func (b *Batch) ActiveTarget() int {
	if n := len(b.targets); n > 0 {
		return b.targets[n-1]
	}
	return 0
}

// DrawsOn returns the draws recorded while the given target was capturing.
func (b *Batch) DrawsOn(target int) []DrawCall {
	var out []DrawCall
	for _, d := range b.Draws {
		if d.Target == target {
			out = append(out, d)
		}
	}
	return out
}

// Reset forgets recorded calls but keeps the capture stack.
func (b *Batch) Reset() {
	b.Draws = nil
	b.Lines = nil
	b.Begins, b.Ends = 0, 0
	b.Projections = nil
	b.Viewports = nil
}

// Target is a fake off-screen buffer.
type Target struct {
	ID        int
	W, H      int
	Begins    int
	Ends      int
	Disposals int

	batch  *Batch
	output *graphics.Region
}

func (t *Target) Begin() {
	if t.Disposals > 0 {
		panic("graphicstest: Begin on disposed target")
	}
	t.Begins++
	t.batch.targets = append(t.batch.targets, t.ID)
}

func (t *Target) End() {
	t.Ends++
	if n := len(t.batch.targets); n > 0 {
		t.batch.targets = t.batch.targets[:n-1]
	}
}

// ColorOutput returns the same unflipped region on every call.
func (t *Target) ColorOutput() *graphics.Region {
	return t.output
}

func (t *Target) Width() int  { return t.W }
func (t *Target) Height() int { return t.H }

func (t *Target) Dispose() { t.Disposals++ }

// Backend hands out fake targets and records clears.
type Backend struct {
	W, H    int
	Targets []*Target
	Clears  []color.Color

	batch *Batch
}

// NewBackend creates a fake window of the given size.
func NewBackend(width, height int) *Backend {
	return &Backend{W: width, H: height, batch: NewBatch()}
}

func (b *Backend) NewTarget(width, height int) graphics.Target {
	t := &Target{
		ID:     len(b.Targets) + 1,
		W:      width,
		H:      height,
		batch:  b.batch,
		output: &graphics.Region{},
	}
	b.Targets = append(b.Targets, t)
	return t
}

func (b *Backend) Batch() graphics.Batch { return b.batch }

// Recorder returns the concrete recording batch.
func (b *Backend) Recorder() *Batch { return b.batch }

func (b *Backend) Size() (int, int) { return b.W, b.H }

func (b *Backend) Clear(c color.Color) { b.Clears = append(b.Clears, c) }

// Live returns the targets that have not been disposed.
func (b *Backend) Live() []*Target {
	var out []*Target
	for _, t := range b.Targets {
		if t.Disposals == 0 {
			out = append(out, t)
		}
	}
	return out
}

var (
	_ graphics.Backend   = (*Backend)(nil)
	_ graphics.LineBatch = (*Batch)(nil)
	_ graphics.Target    = (*Target)(nil)
)
