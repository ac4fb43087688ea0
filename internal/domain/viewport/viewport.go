// Package viewport maps window pixels to world coordinates through a camera.
package viewport

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/screenkit/internal/domain/camera"
)

// Viewport adapts a virtual world size to the physical window.
type Viewport interface {
	// Update recomputes the screen bounds and camera size for a window of
	// width x height pixels, optionally re-centering the camera on the world.
	Update(width, height int, centerCamera bool)
	// Unproject converts a window pixel (y-down) to a world point (y-up).
	Unproject(screen mgl64.Vec2) mgl64.Vec2
	// Project converts a world point to a window pixel.
	Project(world mgl64.Vec2) mgl64.Vec2
	// ScreenBounds is the window rectangle the world is drawn into.
	ScreenBounds() image.Rectangle
	// WorldSize is the visible world extent after the last Update.
	WorldSize() (float64, float64)
	Camera() *camera.Orthographic
}

// base holds the state shared by every viewport strategy.
type base struct {
	cam         *camera.Orthographic
	worldWidth  float64
	worldHeight float64
	bounds      image.Rectangle
}

func (b *base) apply(centerCamera bool) {
	b.cam.ViewportWidth = b.worldWidth
	b.cam.ViewportHeight = b.worldHeight
	if centerCamera {
		b.cam.Position = mgl64.Vec2{b.worldWidth / 2, b.worldHeight / 2}
	}
	b.cam.Update()
}

func (b *base) Unproject(screen mgl64.Vec2) mgl64.Vec2 {
	bw, bh := float64(b.bounds.Dx()), float64(b.bounds.Dy())
	if bw == 0 || bh == 0 {
		return b.cam.Position
	}
	ndcX := 2*(screen.X()-float64(b.bounds.Min.X))/bw - 1
	ndcY := 1 - 2*(screen.Y()-float64(b.bounds.Min.Y))/bh
	return b.cam.Unproject(mgl64.Vec2{ndcX, ndcY})
}

func (b *base) Project(world mgl64.Vec2) mgl64.Vec2 {
	ndc := b.cam.Project(world)
	bw, bh := float64(b.bounds.Dx()), float64(b.bounds.Dy())
	x := float64(b.bounds.Min.X) + (ndc.X()+1)/2*bw
	y := float64(b.bounds.Min.Y) + (1-ndc.Y())/2*bh
	return mgl64.Vec2{x, y}
}

func (b *base) ScreenBounds() image.Rectangle {
	return b.bounds
}

func (b *base) WorldSize() (float64, float64) {
	return b.worldWidth, b.worldHeight
}

func (b *base) Camera() *camera.Orthographic {
	return b.cam
}

// fit scales (w, h) uniformly so it fits inside (tw, th).
func fit(w, h, tw, th float64) (float64, float64) {
	targetRatio := th / tw
	sourceRatio := h / w
	scale := tw / w
	if targetRatio < sourceRatio {
		scale = th / h
	}
	return w * scale, h * scale
}

// Fit keeps the world aspect ratio and letterboxes the rest of the window.
type Fit struct {
	base
	minWidth  float64
	minHeight float64
}

// NewFit creates a letterboxing viewport for a worldWidth x worldHeight world.
func NewFit(worldWidth, worldHeight float64, cam *camera.Orthographic) *Fit {
	return &Fit{
		base:      base{cam: cam, worldWidth: worldWidth, worldHeight: worldHeight},
		minWidth:  worldWidth,
		minHeight: worldHeight,
	}
}

func (f *Fit) Update(width, height int, centerCamera bool) {
	sw, sh := float64(width), float64(height)
	vw, vh := fit(f.minWidth, f.minHeight, sw, sh)
	x := int(math.Round((sw - vw) / 2))
	y := int(math.Round((sh - vh) / 2))
	f.worldWidth, f.worldHeight = f.minWidth, f.minHeight
	f.bounds = image.Rect(x, y, x+int(math.Round(vw)), y+int(math.Round(vh)))
	f.apply(centerCamera)
}

// Extend keeps at least the world size visible and extends the world along
// one axis to fill the window, so nothing is letterboxed.
type Extend struct {
	base
	minWidth  float64
	minHeight float64
}

// NewExtend creates an extending viewport with the given minimum world size.
func NewExtend(minWidth, minHeight float64, cam *camera.Orthographic) *Extend {
	return &Extend{
		base:      base{cam: cam, worldWidth: minWidth, worldHeight: minHeight},
		minWidth:  minWidth,
		minHeight: minHeight,
	}
}

func (e *Extend) Update(width, height int, centerCamera bool) {
	sw, sh := float64(width), float64(height)
	fw, fh := fit(e.minWidth, e.minHeight, sw, sh)
	vw, vh := math.Round(fw), math.Round(fh)

	worldW, worldH := e.minWidth, e.minHeight
	switch {
	case vw < sw:
		toWorld := worldH / vh
		worldW += (sw - vw) * toWorld
		vw = sw
	case vh < sh:
		toWorld := worldW / vw
		worldH += (sh - vh) * toWorld
		vh = sh
	}

	e.worldWidth, e.worldHeight = worldW, worldH
	x := int(math.Round((sw - vw) / 2))
	y := int(math.Round((sh - vh) / 2))
	e.bounds = image.Rect(x, y, x+int(vw), y+int(vh))
	e.apply(centerCamera)
}
