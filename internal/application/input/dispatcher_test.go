package input

import (
	"fmt"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

// mockProcessor records every event it receives.
type mockProcessor struct {
	events []string
}

func (m *mockProcessor) add(format string, args ...any) bool {
	m.events = append(m.events, fmt.Sprintf(format, args...))
	return true
}

func (m *mockProcessor) KeyDown(k ebiten.Key) bool { return m.add("down %s", k) }
func (m *mockProcessor) KeyUp(k ebiten.Key) bool   { return m.add("up %s", k) }
func (m *mockProcessor) KeyTyped(r rune) bool      { return m.add("typed %c", r) }
func (m *mockProcessor) TouchDown(x, y, pointer int, b ebiten.MouseButton) bool {
	return m.add("touchDown %d,%d p%d b%d", x, y, pointer, b)
}
func (m *mockProcessor) TouchUp(x, y, pointer int, b ebiten.MouseButton) bool {
	return m.add("touchUp %d,%d p%d b%d", x, y, pointer, b)
}
func (m *mockProcessor) TouchDragged(x, y, pointer int) bool {
	return m.add("dragged %d,%d p%d", x, y, pointer)
}
func (m *mockProcessor) MouseMoved(x, y int) bool { return m.add("moved %d,%d", x, y) }
func (m *mockProcessor) Scrolled(dx, dy float64) bool {
	return m.add("scrolled %g,%g", dx, dy)
}

func TestDispatcher_Keys(t *testing.T) {
	d := NewDispatcher()
	p := &mockProcessor{}

	d.Dispatch(p, Snapshot{
		KeysDown: []ebiten.Key{ebiten.KeyF},
		KeysUp:   []ebiten.Key{ebiten.KeyP},
		Typed:    "f",
	})

	assert.Equal(t, []string{"down F", "up P", "typed f"}, p.events)
}

func TestDispatcher_MouseMoveAndDrag(t *testing.T) {
	d := NewDispatcher()
	p := &mockProcessor{}

	// first snapshot only establishes the cursor position
	d.Dispatch(p, Snapshot{CursorX: 10, CursorY: 10})
	assert.Empty(t, p.events)

	d.Dispatch(p, Snapshot{CursorX: 20, CursorY: 10})
	d.Dispatch(p, Snapshot{CursorX: 20, CursorY: 10, ButtonsDown: []ebiten.MouseButton{ebiten.MouseButtonLeft}})
	assert.True(t, d.Dragging())
	d.Dispatch(p, Snapshot{CursorX: 30, CursorY: 15})
	d.Dispatch(p, Snapshot{CursorX: 30, CursorY: 15, ButtonsUp: []ebiten.MouseButton{ebiten.MouseButtonLeft}})
	assert.False(t, d.Dragging())
	d.Dispatch(p, Snapshot{CursorX: 31, CursorY: 15})

	assert.Equal(t, []string{
		"moved 20,10",
		"touchDown 20,10 p0 b0",
		"dragged 30,15 p0",
		"touchUp 30,15 p0 b0",
		"moved 31,15",
	}, p.events)
}

func TestDispatcher_IgnoresUnmatchedRelease(t *testing.T) {
	d := NewDispatcher()
	p := &mockProcessor{}

	d.Dispatch(p, Snapshot{ButtonsUp: []ebiten.MouseButton{ebiten.MouseButtonRight}})
	assert.Empty(t, p.events)
}

func TestDispatcher_Touches(t *testing.T) {
	d := NewDispatcher()
	p := &mockProcessor{}

	d.Dispatch(p, Snapshot{
		TouchesDown: []Touch{{ID: 0, X: 5, Y: 5}},
		Touches:     []Touch{{ID: 0, X: 5, Y: 5}},
	})
	d.Dispatch(p, Snapshot{Touches: []Touch{{ID: 0, X: 8, Y: 6}}})
	d.Dispatch(p, Snapshot{TouchesUp: []Touch{{ID: 0, X: 8, Y: 6}}})

	assert.Equal(t, []string{
		"touchDown 5,5 p1 b0",
		"dragged 8,6 p1",
		"touchUp 8,6 p1 b0",
	}, p.events)
	assert.False(t, d.Dragging())
}

func TestDispatcher_Scroll(t *testing.T) {
	d := NewDispatcher()
	p := &mockProcessor{}

	d.Dispatch(p, Snapshot{WheelY: -1})
	assert.Equal(t, []string{"scrolled 0,-1"}, p.events)
}

func TestDispatcher_NilProcessorTracksState(t *testing.T) {
	d := NewDispatcher()

	// press while no screen receives input
	d.Dispatch(nil, Snapshot{ButtonsDown: []ebiten.MouseButton{ebiten.MouseButtonLeft}})
	assert.True(t, d.Dragging())
	d.Dispatch(nil, Snapshot{ButtonsUp: []ebiten.MouseButton{ebiten.MouseButtonLeft}})

	p := &mockProcessor{}
	d.Dispatch(p, Snapshot{CursorX: 40, CursorY: 40})
	assert.Equal(t, []string{"moved 40,40"}, p.events)
}
