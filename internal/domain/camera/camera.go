// Package camera provides an orthographic 2D camera over a y-up world and the
// follow strategies screens use to move it.
package camera

import "github.com/go-gl/mathgl/mgl64"

// Orthographic is a 2D camera. Position is the world point at the center of
// the view; ViewportWidth/Height are the visible world extents at zoom 1.
//
// Combined is only refreshed by Update.
type Orthographic struct {
	Position       mgl64.Vec2
	ViewportWidth  float64
	ViewportHeight float64
	Zoom           float64

	projection mgl64.Mat4
	view       mgl64.Mat4
	combined   mgl64.Mat4
	inverse    mgl64.Mat4
}

// NewOrthographic creates a camera showing a width x height area, centered on
// the origin.
func NewOrthographic(width, height float64) *Orthographic {
	c := &Orthographic{
		ViewportWidth:  width,
		ViewportHeight: height,
		Zoom:           1,
	}
	c.Update()
	return c
}

// Update recomputes the projection, view and combined matrices.
func (c *Orthographic) Update() {
	hw := c.Zoom * c.ViewportWidth / 2
	hh := c.Zoom * c.ViewportHeight / 2
	c.projection = mgl64.Ortho(-hw, hw, -hh, hh, -1, 1)
	c.view = mgl64.Translate3D(-c.Position.X(), -c.Position.Y(), 0)
	c.combined = c.projection.Mul4(c.view)
	c.inverse = c.combined.Inv()
}

// Combined returns projection * view.
func (c *Orthographic) Combined() mgl64.Mat4 {
	return c.combined
}

// Project maps a world point to normalized device coordinates.
func (c *Orthographic) Project(world mgl64.Vec2) mgl64.Vec2 {
	v := c.combined.Mul4x1(mgl64.Vec4{world.X(), world.Y(), 0, 1})
	return mgl64.Vec2{v.X(), v.Y()}
}

// Unproject maps normalized device coordinates back to the world.
func (c *Orthographic) Unproject(ndc mgl64.Vec2) mgl64.Vec2 {
	v := c.inverse.Mul4x1(mgl64.Vec4{ndc.X(), ndc.Y(), 0, 1})
	return mgl64.Vec2{v.X(), v.Y()}
}

// SetPosition moves the camera and refreshes its matrices.
func (c *Orthographic) SetPosition(p mgl64.Vec2) {
	c.Position = p
	c.Update()
}
