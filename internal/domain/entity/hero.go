package entity

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/screenkit/internal/infrastructure/graphics"
)

const (
	HeroStep          = 4.0 // world units per update while moving
	HeroSize          = 64.0
	HeroFrameDuration = 0.1
)

// Hero walks right while held and idles otherwise.
type Hero struct {
	Body
	idle    *graphics.Region
	walking *Animation
	moving  bool
	elapsed float64
}

// NewHero places the hero with its bottom-left corner at pos.
func NewHero(pos mgl64.Vec2, idle *graphics.Region, walking []*graphics.Region) *Hero {
	return &Hero{
		Body:    Body{Position: pos, Width: HeroSize, Height: HeroSize},
		idle:    idle,
		walking: NewAnimation(HeroFrameDuration, walking),
	}
}

func (h *Hero) MoveRight() {
	h.moving = true
}

func (h *Hero) SetMoving(moving bool) {
	h.moving = moving
}

func (h *Hero) Moving() bool {
	return h.moving
}

func (h *Hero) Update(dt float64) {
	if h.moving {
		h.Position[0] += HeroStep
	}
	h.elapsed += dt
}

// Frame returns the region Render draws this frame.
func (h *Hero) Frame() *graphics.Region {
	if h.moving {
		return h.walking.KeyFrame(h.elapsed, true)
	}
	return h.idle
}

func (h *Hero) Render(batch graphics.Batch) {
	batch.SetColor(graphics.White)
	h.Draw(batch, h.Frame())
}
