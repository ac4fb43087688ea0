package input

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/zyedidia/generic/mapset"

	"github.com/younwookim/screenkit/internal/application/screen"
)

// mousePointer is the pointer index reported for mouse events. Touches use
// their touch ID plus one.
const mousePointer = 0

// Dispatcher converts snapshots into InputProcessor calls. It remembers which
// buttons and touches are held so cursor motion can be reported as a drag.
type Dispatcher struct {
	buttons mapset.Set[ebiten.MouseButton]
	touches mapset.Set[ebiten.TouchID]
	touchAt map[ebiten.TouchID]image.Point

	cursor    image.Point
	hasCursor bool
}

// NewDispatcher creates a dispatcher with nothing held.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		buttons: mapset.New[ebiten.MouseButton](),
		touches: mapset.New[ebiten.TouchID](),
		touchAt: make(map[ebiten.TouchID]image.Point),
	}
}

// Dragging reports whether any mouse button or touch is held.
func (d *Dispatcher) Dragging() bool {
	return d.buttons.Size() > 0 || d.touches.Size() > 0
}

// Dispatch delivers the events in s to proc. A nil proc drops the events but
// the held state is still tracked, so releases during a transition are not
// replayed as drags afterwards.
func (d *Dispatcher) Dispatch(proc screen.InputProcessor, s Snapshot) {
	if proc == nil {
		proc = dropped{}
	}

	for _, k := range s.KeysDown {
		proc.KeyDown(k)
	}
	for _, k := range s.KeysUp {
		proc.KeyUp(k)
	}
	for _, r := range s.Typed {
		proc.KeyTyped(r)
	}

	d.dispatchMouse(proc, s)
	d.dispatchTouches(proc, s)

	if s.WheelX != 0 || s.WheelY != 0 {
		proc.Scrolled(s.WheelX, s.WheelY)
	}
}

func (d *Dispatcher) dispatchMouse(proc screen.InputProcessor, s Snapshot) {
	x, y := s.CursorX, s.CursorY
	moved := d.hasCursor && (image.Point{x, y}) != d.cursor
	d.cursor = image.Point{x, y}
	d.hasCursor = true

	if moved {
		if d.buttons.Size() > 0 {
			proc.TouchDragged(x, y, mousePointer)
		} else {
			proc.MouseMoved(x, y)
		}
	}

	for _, b := range s.ButtonsDown {
		d.buttons.Put(b)
		proc.TouchDown(x, y, mousePointer, b)
	}
	for _, b := range s.ButtonsUp {
		if !d.buttons.Has(b) {
			continue
		}
		d.buttons.Remove(b)
		proc.TouchUp(x, y, mousePointer, b)
	}
}

func (d *Dispatcher) dispatchTouches(proc screen.InputProcessor, s Snapshot) {
	for _, t := range s.TouchesDown {
		d.touches.Put(t.ID)
		d.touchAt[t.ID] = image.Point{t.X, t.Y}
		proc.TouchDown(t.X, t.Y, touchPointer(t.ID), ebiten.MouseButtonLeft)
	}
	for _, t := range s.Touches {
		if !d.touches.Has(t.ID) {
			continue
		}
		p := image.Point{t.X, t.Y}
		if p != d.touchAt[t.ID] {
			d.touchAt[t.ID] = p
			proc.TouchDragged(t.X, t.Y, touchPointer(t.ID))
		}
	}
	for _, t := range s.TouchesUp {
		if !d.touches.Has(t.ID) {
			continue
		}
		d.touches.Remove(t.ID)
		delete(d.touchAt, t.ID)
		proc.TouchUp(t.X, t.Y, touchPointer(t.ID), ebiten.MouseButtonLeft)
	}
}

func touchPointer(id ebiten.TouchID) int {
	return int(id) + 1
}

// dropped swallows every event.
type dropped struct{}

func (dropped) KeyDown(ebiten.Key) bool                                { return false }
func (dropped) KeyUp(ebiten.Key) bool                                  { return false }
func (dropped) KeyTyped(rune) bool                                     { return false }
func (dropped) TouchDown(x, y, pointer int, _ ebiten.MouseButton) bool { return false }
func (dropped) TouchUp(x, y, pointer int, _ ebiten.MouseButton) bool   { return false }
func (dropped) TouchDragged(x, y, pointer int) bool                    { return false }
func (dropped) MouseMoved(x, y int) bool                               { return false }
func (dropped) Scrolled(dx, dy float64) bool                           { return false }
