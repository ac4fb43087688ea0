package physics

import (
	"github.com/ByteArena/box2d"

	"github.com/younwookim/screenkit/internal/infrastructure/graphics"
)

// World is a Box2D world stepped at a fixed timestep.
type World struct {
	b2     *box2d.B2World
	config Config
	debug  *DebugRenderer
}

// New creates a world for a screen showing worldWidth x worldHeight pixels.
func New(worldWidth, worldHeight int, cfg Config) *World {
	if cfg.PixelsPerMeter <= 0 {
		cfg.PixelsPerMeter = DefaultScale
	}
	b2 := box2d.MakeB2World(box2d.MakeB2Vec2(cfg.Gravity.X(), cfg.Gravity.Y()))
	return &World{
		b2:     &b2,
		config: cfg,
		debug:  NewDebugRenderer(worldWidth, worldHeight, cfg.PixelsPerMeter),
	}
}

// B2 exposes the underlying Box2D world.
func (w *World) B2() *box2d.B2World {
	return w.b2
}

// Scale returns the pixel to meter scale.
func (w *World) Scale() Scale {
	return w.config.PixelsPerMeter
}

// Step advances the simulation by one timestep.
func (w *World) Step() {
	w.b2.Step(w.config.Timestep, w.config.VelocityIterations, w.config.PositionIterations)
}

// Bodies returns every body in the world.
func (w *World) Bodies() []*box2d.B2Body {
	var out []*box2d.B2Body
	for b := w.b2.GetBodyList(); b != nil; b = b.GetNext() {
		out = append(out, b)
	}
	return out
}

// Dispose destroys every body.
func (w *World) Dispose() {
	for _, b := range w.Bodies() {
		w.b2.DestroyBody(b)
	}
}

// SetDebug toggles the debug renderer.
func (w *World) SetDebug(on bool) {
	w.config.Debug = on
}

// Debug reports whether Render draws anything.
func (w *World) Debug() bool {
	return w.config.Debug
}

// Resize adapts debug line widths to a new window size.
func (w *World) Resize(width, height int) {
	w.debug.Resize(width, height)
}

// Render draws body outlines when debugging is on.
func (w *World) Render(batch graphics.Batch) {
	if !w.config.Debug {
		return
	}
	w.debug.Render(batch, w)
}
