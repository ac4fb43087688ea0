// Package play is the demo screen with a walking hero and a following
// camera.
package play

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/screenkit/internal/application/screen"
	"github.com/younwookim/screenkit/internal/application/transition"
	"github.com/younwookim/screenkit/internal/domain/camera"
	"github.com/younwookim/screenkit/internal/domain/entity"
	"github.com/younwookim/screenkit/internal/domain/viewport"
	"github.com/younwookim/screenkit/internal/infrastructure/graphics"
)

const numTrees = 10

// HeroStart is where the hero spawns.
var HeroStart = mgl64.Vec2{30, 80}

// Regions looks up atlas regions.
type Regions interface {
	Take(name string, key ...string) *graphics.Region
	Regions(name string, key ...string) []*graphics.Region
}

// Options wires the play screen to the rest of the app.
type Options struct {
	Switcher screen.Switcher
	Viewport viewport.Viewport
	Camera   *camera.Orthographic
	Regions  Regions
	Back     screen.Factory

	WorldWidth int
	FollowLerp float64
	FadeSpeed  float64
	// WorldHeight is only used by the fade back.
	WorldHeight int
}

type Play struct {
	screen.Adapter
	opts    Options
	leaving bool

	hero       *entity.Hero
	background *entity.Background
	ground     *entity.Ground
}

func New(opts Options) *Play {
	r := opts.Regions
	return &Play{
		Adapter: screen.NewAdapter(opts.Viewport),
		opts:    opts,
		hero: entity.NewHero(HeroStart,
			r.Take(entity.HeroIdle, entity.NormalPack),
			r.Regions(entity.HeroWalking, entity.HeroWalkingPack)),
		background: entity.NewBackground(numTrees,
			r.Take(entity.Tree1, entity.NormalPack),
			r.Take(entity.Tree2, entity.NormalPack)),
		ground: entity.NewGround(opts.WorldWidth, r.Take(entity.BlankQuad, entity.NormalPack)),
	}
}

// Hero exposes the hero for inspection.
func (p *Play) Hero() *entity.Hero {
	return p.hero
}

func (p *Play) TouchDown(x, y, pointer int, button ebiten.MouseButton) bool {
	p.hero.MoveRight()
	return true
}

func (p *Play) TouchUp(x, y, pointer int, button ebiten.MouseButton) bool {
	p.hero.SetMoving(false)
	return true
}

func (p *Play) KeyDown(key ebiten.Key) bool {
	switch key {
	case ebiten.KeyRight, ebiten.KeyD:
		p.hero.MoveRight()
		return true
	case ebiten.KeyEscape:
		if p.leaving || p.opts.Back == nil {
			return false
		}
		p.leaving = true
		fade := transition.NewFade(p.opts.FadeSpeed, float64(p.opts.WorldWidth), float64(p.opts.WorldHeight))
		p.opts.Switcher.SwitchToWith(p.opts.Back(), fade)
		return true
	}
	return false
}

func (p *Play) KeyUp(key ebiten.Key) bool {
	switch key {
	case ebiten.KeyRight, ebiten.KeyD:
		p.hero.SetMoving(false)
		return true
	}
	return false
}

func (p *Play) Update(dt float64) {
	p.hero.Update(dt)
	camera.LerpTo(p.opts.Camera, p.hero.Position, p.opts.FollowLerp, 0, 0)
}

func (p *Play) Render(batch graphics.Batch) {
	batch.SetProjection(p.opts.Camera.Combined())
	batch.Begin()
	p.background.Render(batch)
	p.ground.Render(batch)
	p.hero.Render(batch)
	batch.End()
}

// Pause stops the hero; the release may never arrive while unfocused.
func (p *Play) Pause() {
	p.hero.SetMoving(false)
}

func (p *Play) Hide() {
	p.hero.SetMoving(false)
	p.leaving = false
}

// Dispose does nothing; regions belong to the asset registry.
func (p *Play) Dispose() {}

var _ screen.Screen = (*Play)(nil)
