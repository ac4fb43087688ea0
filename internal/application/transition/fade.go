package transition

import (
	"github.com/younwookim/screenkit/internal/infrastructure/graphics"
)

// DefaultFadeSpeed advances alpha by 0.3 per update.
const DefaultFadeSpeed = 0.5

const (
	fadeReferenceStep  = 0.3
	fadeReferenceSpeed = 0.5
)

// Fade cross-fades the outgoing snapshot into the incoming one.
type Fade struct {
	lifecycle

	step        float64
	frames      int
	worldWidth  float64
	worldHeight float64
}

var _ Transition = (*Fade)(nil)

// NewFade creates a cross-fade over a worldWidth x worldHeight world.
// speed must be positive; a fade with speed 0 never completes.
func NewFade(speed, worldWidth, worldHeight float64) *Fade {
	return &Fade{
		step:        speed * fadeReferenceStep / fadeReferenceSpeed,
		worldWidth:  worldWidth,
		worldHeight: worldHeight,
	}
}

// Step returns the alpha increment applied per update.
func (f *Fade) Step() float64 {
	return f.step
}

// Alpha returns the opacity of the incoming snapshot, unclamped.
func (f *Fade) Alpha() float64 {
	return float64(f.frames) * f.step
}

// Completed reports whether one more increment would reach full opacity.
func (f *Fade) Completed() bool {
	return float64(f.frames+1)*f.step >= 1
}

func (f *Fade) State() State {
	return f.state(f.Completed())
}

func (f *Fade) Update(dt float64) {
	if !f.running || f.Completed() {
		return
	}
	f.frames++
}

// Render draws current at 1-alpha and next at alpha, in that order.
func (f *Fade) Render(batch graphics.Batch, current, next *graphics.Region) {
	a := f.Alpha()
	batch.Begin()
	batch.SetColor(graphics.Alpha(1 - a))
	batch.Draw(current, 0, 0, f.worldWidth, f.worldHeight)
	batch.SetColor(graphics.Alpha(a))
	batch.Draw(next, 0, 0, f.worldWidth, f.worldHeight)
	batch.SetColor(graphics.White)
	batch.End()
}
