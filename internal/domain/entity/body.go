package entity

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/screenkit/internal/infrastructure/graphics"
)

// Body is the rectangle an entity occupies in world units. Position is the
// bottom-left corner (y-up).
type Body struct {
	Position mgl64.Vec2
	Width    float64
	Height   float64
}

// Center returns the middle of the body.
func (b *Body) Center() mgl64.Vec2 {
	return b.Position.Add(mgl64.Vec2{b.Width / 2, b.Height / 2})
}

// Contains reports whether p lies inside the body.
func (b *Body) Contains(p mgl64.Vec2) bool {
	return p.X() >= b.Position.X() && p.X() < b.Position.X()+b.Width &&
		p.Y() >= b.Position.Y() && p.Y() < b.Position.Y()+b.Height
}

// Draw draws region stretched over the body with the batch's current tint.
func (b *Body) Draw(batch graphics.Batch, region *graphics.Region) {
	batch.Draw(region, b.Position.X(), b.Position.Y(), b.Width, b.Height)
}
