// Package physics wraps a Box2D world with pixel-based builders and a debug
// renderer.
//
// Box2D works in meters. Everything exposed by this package takes pixels
// (world units of the screen camera) and converts with Config.PixelsPerMeter.
package physics

import (
	"github.com/ByteArena/box2d"
	"github.com/go-gl/mathgl/mgl64"
)

// Config tunes the simulation.
type Config struct {
	Gravity            mgl64.Vec2 // m/s^2
	Timestep           float64    // seconds per Step
	VelocityIterations int
	PositionIterations int
	PixelsPerMeter     Scale
	Debug              bool
}

// DefaultConfig returns earth gravity at 60 steps per second.
func DefaultConfig() Config {
	return Config{
		Gravity:            mgl64.Vec2{0, -9.8},
		Timestep:           1.0 / 60.0,
		VelocityIterations: 6,
		PositionIterations: 2,
		PixelsPerMeter:     DefaultScale,
		Debug:              true,
	}
}

// Scale is a number of pixels per meter.
type Scale float64

// DefaultScale maps 100 pixels to one meter.
const DefaultScale Scale = 100

// Meters converts a pixel length.
func (s Scale) Meters(px float64) float64 {
	return px / float64(s)
}

// Pixels converts a meter length.
func (s Scale) Pixels(m float64) float64 {
	return m * float64(s)
}

// ToBox2D converts a pixel position.
func (s Scale) ToBox2D(v mgl64.Vec2) box2d.B2Vec2 {
	return box2d.MakeB2Vec2(s.Meters(v.X()), s.Meters(v.Y()))
}

// FromBox2D converts a meter position.
func (s Scale) FromBox2D(v box2d.B2Vec2) mgl64.Vec2 {
	return mgl64.Vec2{s.Pixels(v.X), s.Pixels(v.Y)}
}

func (s Scale) toBox2DAll(vs []mgl64.Vec2) []box2d.B2Vec2 {
	out := make([]box2d.B2Vec2, len(vs))
	for i, v := range vs {
		out[i] = s.ToBox2D(v)
	}
	return out
}
