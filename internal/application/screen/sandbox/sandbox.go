// Package sandbox is the demo screen showing the physics world through its
// debug renderer.
package sandbox

import (
	"log"

	"github.com/ByteArena/box2d"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/screenkit/internal/application/screen"
	"github.com/younwookim/screenkit/internal/application/transition"
	"github.com/younwookim/screenkit/internal/domain/viewport"
	"github.com/younwookim/screenkit/internal/infrastructure/graphics"
	"github.com/younwookim/screenkit/internal/infrastructure/physics"
)

const (
	// MaxBodies caps what clicking can spawn.
	MaxBodies = 200

	groundY     = 20.0
	ballRadius  = 10.0
	crateSize   = 30.0
	BounceSound = "bounce"
)

// Options wires the sandbox to the rest of the app.
type Options struct {
	Switcher screen.Switcher
	Viewport viewport.Viewport
	Back     screen.Factory
	Sounds   screen.SoundPlayer

	Physics     physics.Config
	WorldWidth  int
	WorldHeight int
	FadeSpeed   float64
}

type Sandbox struct {
	screen.Adapter
	opts       Options
	world      *physics.World
	builder    *physics.BodyBuilder
	bodyDef    *physics.BodyDefBuilder
	fixtureDef *physics.FixtureDefBuilder
	projection mgl64.Mat4
	leaving    bool
}

// New creates the world with a ball above a tilted box, inside a bin.
func New(opts Options) *Sandbox {
	world := physics.New(opts.WorldWidth, opts.WorldHeight, opts.Physics)
	s := &Sandbox{
		Adapter:    screen.NewAdapter(opts.Viewport),
		opts:       opts,
		world:      world,
		builder:    physics.NewBodyBuilder(world),
		bodyDef:    physics.NewBodyDefBuilder(world.Scale()),
		fixtureDef: physics.NewFixtureDefBuilder(world.Scale()),
		projection: mgl64.Ortho(0, float64(opts.WorldWidth), 0, float64(opts.WorldHeight), -1, 1),
	}

	w, h := float64(opts.WorldWidth), float64(opts.WorldHeight)
	s.builder.
		WithBodyDef(s.bodyDef.Type(physics.StaticBody)).
		WithFixtureDef(s.fixtureDef.Chain([]mgl64.Vec2{{0, h}, {0, groundY}, {w, groundY}, {w, h}}).Friction(0.6)).
		WithUserData("ground").
		Build()

	s.builder.
		WithBodyDef(s.bodyDef.Position(mgl64.Vec2{100, 80}).Angle(mgl64.DegToRad(10))).
		WithFixtureDef(s.fixtureDef.Box(50, 50).Density(0.4)).
		WithUserData("box").
		Build()

	s.SpawnBall(mgl64.Vec2{100, 200})
	return s
}

// World exposes the physics world.
func (s *Sandbox) World() *physics.World {
	return s.world
}

// SpawnBall drops a bouncy ball at pos.
func (s *Sandbox) SpawnBall(pos mgl64.Vec2) *box2d.B2Body {
	return s.builder.
		WithBodyDef(s.bodyDef.Type(physics.DynamicBody).Position(pos)).
		WithFixtureDef(s.fixtureDef.Circle(ballRadius).Restitution(0.6).Density(1)).
		WithUserData("ball").
		Build()
}

// SpawnCrate drops a box at pos.
func (s *Sandbox) SpawnCrate(pos mgl64.Vec2) *box2d.B2Body {
	return s.builder.
		WithBodyDef(s.bodyDef.Type(physics.DynamicBody).Position(pos)).
		WithFixtureDef(s.fixtureDef.Box(crateSize, crateSize).Density(0.5).Friction(0.4)).
		WithUserData("crate").
		Build()
}

func (s *Sandbox) TouchDown(x, y, pointer int, button ebiten.MouseButton) bool {
	if len(s.world.Bodies()) >= MaxBodies {
		return false
	}
	pos := s.UnprojectXY(x, y)
	if button == ebiten.MouseButtonRight {
		s.SpawnCrate(pos)
	} else {
		s.SpawnBall(pos)
	}
	if s.opts.Sounds != nil {
		if _, err := s.opts.Sounds.Play(BounceSound, 0.5); err != nil {
			log.Printf("sandbox: %v", err)
		}
	}
	return true
}

func (s *Sandbox) KeyDown(key ebiten.Key) bool {
	switch key {
	case ebiten.KeyD:
		s.world.SetDebug(!s.world.Debug())
		return true
	case ebiten.KeyEscape:
		if s.leaving || s.opts.Back == nil {
			return false
		}
		s.leaving = true
		fade := transition.NewFade(s.opts.FadeSpeed, float64(s.opts.WorldWidth), float64(s.opts.WorldHeight))
		s.opts.Switcher.SwitchToWith(s.opts.Back(), fade)
		return true
	}
	return false
}

// Update steps the world once per frame at the configured timestep.
func (s *Sandbox) Update(dt float64) {
	s.world.Step()
}

func (s *Sandbox) Render(batch graphics.Batch) {
	batch.SetProjection(s.projection)
	s.world.Render(batch)
}

func (s *Sandbox) Resize(width, height int) {
	s.world.Resize(width, height)
}

func (s *Sandbox) Hide() {
	s.leaving = false
}

func (s *Sandbox) Dispose() {
	s.builder.DisposeWorld()
}

var _ screen.Screen = (*Sandbox)(nil)
