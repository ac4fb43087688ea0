package transition

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/screenkit/internal/infrastructure/graphics"
)

// DefaultLerp is the per-update interpolation rate of a slide.
const DefaultLerp = 0.1

// slideMargin is how close the incoming snapshot must get to its final
// position before the slide counts as completed.
const slideMargin = 0.15

// Motion is the direction both snapshots travel in.
type Motion int

const (
	RightToLeft Motion = iota
	LeftToRight
)

func (m Motion) String() string {
	switch m {
	case RightToLeft:
		return "rightToLeft"
	case LeftToRight:
		return "leftToRight"
	default:
		return "unknown"
	}
}

// ParseMotion parses the names produced by Motion.String.
func ParseMotion(s string) (Motion, error) {
	switch s {
	case "rightToLeft":
		return RightToLeft, nil
	case "leftToRight":
		return LeftToRight, nil
	default:
		return 0, fmt.Errorf("unknown slide motion %q", s)
	}
}

// endpoints returns the start and end x of the current and next snapshots,
// in world units.
func (m Motion) endpoints(worldWidth float64) (curFrom, curTo, nextFrom, nextTo float64) {
	if m == LeftToRight {
		return 0, worldWidth, -worldWidth, 0
	}
	return 0, -worldWidth, worldWidth, 0
}

// HorizontalSlide pushes the current snapshot out one side while the next
// one slides in from the other.
type HorizontalSlide struct {
	lifecycle

	motion      Motion
	lerp        float64
	worldWidth  float64
	worldHeight float64

	current      mgl64.Vec2
	next         mgl64.Vec2
	currentFinal mgl64.Vec2
	nextFinal    mgl64.Vec2
}

var _ Transition = (*HorizontalSlide)(nil)

// NewHorizontalSlide creates a slide over a worldWidth x worldHeight world.
// lerp must be in (0, 1]; a zero rate never completes.
func NewHorizontalSlide(motion Motion, lerp, worldWidth, worldHeight float64) *HorizontalSlide {
	curFrom, curTo, nextFrom, nextTo := motion.endpoints(worldWidth)
	return &HorizontalSlide{
		motion:       motion,
		lerp:         lerp,
		worldWidth:   worldWidth,
		worldHeight:  worldHeight,
		current:      mgl64.Vec2{curFrom, 0},
		next:         mgl64.Vec2{nextFrom, 0},
		currentFinal: mgl64.Vec2{curTo, 0},
		nextFinal:    mgl64.Vec2{nextTo, 0},
	}
}

// Motion returns the slide direction.
func (s *HorizontalSlide) Motion() Motion {
	return s.motion
}

// Positions returns the bottom-left corners of the current and next snapshots.
func (s *HorizontalSlide) Positions() (current, next mgl64.Vec2) {
	return s.current, s.next
}

func (s *HorizontalSlide) Completed() bool {
	return math.Abs(s.next.X()-s.nextFinal.X()) <= slideMargin
}

func (s *HorizontalSlide) State() State {
	return s.state(s.Completed())
}

func (s *HorizontalSlide) Update(dt float64) {
	if !s.running {
		return
	}
	s.current = lerp(s.current, s.currentFinal, s.lerp)
	s.next = lerp(s.next, s.nextFinal, s.lerp)
}

func (s *HorizontalSlide) Render(batch graphics.Batch, current, next *graphics.Region) {
	batch.Begin()
	batch.Draw(current, s.current.X(), s.current.Y(), s.worldWidth, s.worldHeight)
	batch.Draw(next, s.next.X(), s.next.Y(), s.worldWidth, s.worldHeight)
	batch.End()
}

func lerp(from, to mgl64.Vec2, t float64) mgl64.Vec2 {
	return from.Add(to.Sub(from).Mul(t))
}
