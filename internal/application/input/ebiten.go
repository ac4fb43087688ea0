package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// EbitenSource reads the live input state. Poll must be called from the
// game's Update.
type EbitenSource struct {
	frame int

	keys    []ebiten.Key
	chars   []rune
	touchID []ebiten.TouchID
}

// NewEbitenSource creates a live input source
func NewEbitenSource() *EbitenSource {
	return &EbitenSource{}
}

// Poll reads the current input state
func (e *EbitenSource) Poll() (Snapshot, bool) {
	s := Snapshot{Frame: e.frame}
	e.frame++

	e.keys = inpututil.AppendJustPressedKeys(e.keys[:0])
	s.KeysDown = append(s.KeysDown, e.keys...)
	e.keys = inpututil.AppendJustReleasedKeys(e.keys[:0])
	s.KeysUp = append(s.KeysUp, e.keys...)

	e.chars = ebiten.AppendInputChars(e.chars[:0])
	s.Typed = string(e.chars)

	s.CursorX, s.CursorY = ebiten.CursorPosition()
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			s.ButtonsDown = append(s.ButtonsDown, b)
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			s.ButtonsUp = append(s.ButtonsUp, b)
		}
	}
	s.WheelX, s.WheelY = ebiten.Wheel()

	e.touchID = inpututil.AppendJustPressedTouchIDs(e.touchID[:0])
	for _, id := range e.touchID {
		x, y := ebiten.TouchPosition(id)
		s.TouchesDown = append(s.TouchesDown, Touch{ID: id, X: x, Y: y})
	}
	e.touchID = inpututil.AppendJustReleasedTouchIDs(e.touchID[:0])
	for _, id := range e.touchID {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		s.TouchesUp = append(s.TouchesUp, Touch{ID: id, X: x, Y: y})
	}
	e.touchID = ebiten.AppendTouchIDs(e.touchID[:0])
	for _, id := range e.touchID {
		x, y := ebiten.TouchPosition(id)
		s.Touches = append(s.Touches, Touch{ID: id, X: x, Y: y})
	}

	return s, true
}
