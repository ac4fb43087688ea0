// Package graphics defines the rendering collaborators used by screens and
// transitions, plus their Ebitengine implementation.
//
// World coordinates are y-up: (0, 0) is the bottom-left corner of the world
// and a quad drawn at (x, y, w, h) covers [x, x+w] x [y, y+h].
package graphics

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Batch issues textured quad draws against the active destination.
// Draw may only be called between Begin and End.
type Batch interface {
	Begin()
	End()
	Drawing() bool

	// SetColor sets the tint applied to subsequent draws.
	SetColor(c color.Color)
	Color() color.Color

	// Draw draws region stretched over the world rectangle (x, y, w, h).
	Draw(region *Region, x, y, w, h float64)

	// SetProjection sets the world-to-clip matrix, usually a camera's combined matrix.
	SetProjection(m mgl64.Mat4)

	// SetViewport sets the on-screen rectangle clip space is mapped to.
	SetViewport(r image.Rectangle)
}

// LineBatch is a Batch that can also stroke lines, used by debug renderers.
type LineBatch interface {
	Batch
	// StrokeLine draws a line between two world points, width pixels wide,
	// in the current tint.
	StrokeLine(x0, y0, x1, y1, width float64)
}

// Target is an off-screen color buffer. Drawing between Begin and End goes to
// the target instead of the visible framebuffer.
//
// Targets store rows bottom-up, following the GL framebuffer convention, so
// the region returned by ColorOutput must be flipped vertically before it is
// composited right-side-up.
type Target interface {
	Begin()
	End()
	ColorOutput() *Region
	Width() int
	Height() int
	Dispose()
}

// Backend owns the visible framebuffer and allocates off-screen targets.
type Backend interface {
	NewTarget(width, height int) Target
	Batch() Batch
	// Size reports the physical window size in pixels.
	Size() (width, height int)
	Clear(c color.Color)
}

// White is the neutral tint.
var White = color.NRGBA{255, 255, 255, 255}

// Alpha returns a white tint with the given opacity, clamped to [0, 1].
func Alpha(a float64) color.NRGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.NRGBA{255, 255, 255, uint8(a*255 + 0.5)}
}
