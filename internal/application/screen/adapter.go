package screen

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/screenkit/internal/domain/viewport"
)

// Adapter provides no-op defaults for the optional parts of Screen.
// Embed it and implement Update, Render and Dispose.
type Adapter struct {
	viewport viewport.Viewport
}

// NewAdapter binds unprojection to the manager's viewport.
func NewAdapter(vp viewport.Viewport) Adapter {
	return Adapter{viewport: vp}
}

// Unproject converts a window pixel into world coordinates using the
// viewport the adapter was created with.
func (a Adapter) Unproject(screenPos mgl64.Vec2) mgl64.Vec2 {
	if a.viewport == nil {
		return screenPos
	}
	return a.viewport.Unproject(screenPos)
}

// UnprojectXY is Unproject for integer event coordinates.
func (a Adapter) UnprojectXY(x, y int) mgl64.Vec2 {
	return a.Unproject(mgl64.Vec2{float64(x), float64(y)})
}

func (Adapter) Resize(width, height int) {}
func (Adapter) Pause()                   {}
func (Adapter) Resume()                  {}
func (Adapter) Hide()                    {}

func (Adapter) KeyDown(ebiten.Key) bool                                { return false }
func (Adapter) KeyUp(ebiten.Key) bool                                  { return false }
func (Adapter) KeyTyped(rune) bool                                     { return false }
func (Adapter) TouchDown(x, y, pointer int, _ ebiten.MouseButton) bool { return false }
func (Adapter) TouchUp(x, y, pointer int, _ ebiten.MouseButton) bool   { return false }
func (Adapter) TouchDragged(x, y, pointer int) bool                    { return false }
func (Adapter) MouseMoved(x, y int) bool                               { return false }
func (Adapter) Scrolled(dx, dy float64) bool                           { return false }
