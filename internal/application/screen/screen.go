// Package screen defines the Screen contract driven by the screen manager.
//
// Each game screen (menu, playing, sandbox, etc.) implements Screen to handle
// its own update logic and rendering, and InputProcessor to react to pointer
// and key events while it is the manager's input target.
package screen

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/screenkit/internal/infrastructure/graphics"
)

// Screen represents a game screen (menu, playing, settings, etc.)
//
// The manager delegates Update and Render calls to the current screen, and
// renders a pending screen off-screen while a transition is in flight.
type Screen interface {
	InputProcessor

	// Update advances the screen's logic.
	// dt is the delta time in seconds (typically 1/60).
	Update(dt float64)

	// Render draws the screen through the shared batch. Screens call
	// Begin/End on the batch themselves.
	Render(batch graphics.Batch)

	// Resize is called with the physical window size whenever it changes,
	// and right after the screen is handed to the manager.
	Resize(width, height int)

	// Pause and Resume follow the application's focus.
	Pause()
	Resume()

	// Hide is called when the screen stops being current, either replaced
	// directly or after a transition, and when a pending screen is dropped
	// before its transition completes.
	Hide()

	// Dispose releases the screen's resources. Called exactly once.
	Dispose()

	// Unproject converts a window pixel into world coordinates through the
	// viewport the screen renders with.
	Unproject(screenPos mgl64.Vec2) mgl64.Vec2
}

// InputProcessor receives input events. Each hook reports whether the event
// was handled. Coordinates are window pixels, y pointing down.
type InputProcessor interface {
	KeyDown(key ebiten.Key) bool
	KeyUp(key ebiten.Key) bool
	KeyTyped(char rune) bool
	TouchDown(x, y, pointer int, button ebiten.MouseButton) bool
	TouchUp(x, y, pointer int, button ebiten.MouseButton) bool
	TouchDragged(x, y, pointer int) bool
	MouseMoved(x, y int) bool
	Scrolled(dx, dy float64) bool
}
