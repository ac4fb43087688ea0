package entity

import (
	"math"

	"github.com/younwookim/screenkit/internal/infrastructure/graphics"
)

// Animation picks a frame from elapsed time.
type Animation struct {
	frames        []*graphics.Region
	frameDuration float64
}

func NewAnimation(frameDuration float64, frames []*graphics.Region) *Animation {
	return &Animation{frames: frames, frameDuration: frameDuration}
}

// KeyFrame returns the frame shown elapsed seconds in. A non-looping
// animation holds its last frame.
func (a *Animation) KeyFrame(elapsed float64, looping bool) *graphics.Region {
	n := len(a.frames)
	if n == 0 {
		return nil
	}
	if a.frameDuration <= 0 {
		return a.frames[0]
	}
	i := int(math.Floor(elapsed / a.frameDuration))
	if looping {
		i %= n
	} else {
		i = min(i, n-1)
	}
	return a.frames[max(i, 0)]
}

// Duration is the length of one pass through the frames.
func (a *Animation) Duration() float64 {
	return float64(len(a.frames)) * a.frameDuration
}
