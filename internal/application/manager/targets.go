package manager

import (
	"image"

	"github.com/younwookim/screenkit/internal/infrastructure/graphics"
)

// targetPair owns the two off-screen buffers used while a transition runs.
type targetPair struct {
	backend graphics.Backend
	current graphics.Target
	next    graphics.Target
}

func newTargetPair(backend graphics.Backend, width, height int) *targetPair {
	p := &targetPair{backend: backend}
	p.allocate(width, height)
	return p
}

func (p *targetPair) allocate(width, height int) {
	p.current = p.backend.NewTarget(width, height)
	p.next = p.backend.NewTarget(width, height)
}

// resize drops both buffers and allocates new ones at exactly width x height.
func (p *targetPair) resize(width, height int) {
	p.dispose()
	p.allocate(width, height)
}

func (p *targetPair) dispose() {
	p.current.Dispose()
	p.next.Dispose()
}

func (p *targetPair) sizes() [2]image.Point {
	return [2]image.Point{
		{p.current.Width(), p.current.Height()},
		{p.next.Width(), p.next.Height()},
	}
}

// capture runs draw with t as the batch destination and returns t's output
// flipped vertically, since targets store rows bottom-up.
func capture(t graphics.Target, draw func()) *graphics.Region {
	t.Begin()
	draw()
	t.End()

	out := t.ColorOutput()
	flipped := &graphics.Region{}
	if out != nil {
		*flipped = *out
	}
	flipped.Flip(false, true)
	return flipped
}
