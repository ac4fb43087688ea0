package screen

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/screenkit/internal/domain/camera"
	"github.com/younwookim/screenkit/internal/domain/viewport"
	"github.com/younwookim/screenkit/internal/infrastructure/graphics"
)

// minimal embeds Adapter and implements only the required methods.
type minimal struct {
	Adapter
	updates int
}

func (m *minimal) Update(float64)        { m.updates++ }
func (m *minimal) Render(graphics.Batch) {}
func (m *minimal) Dispose()              {}

var _ Screen = (*minimal)(nil)

func TestAdapter_DefaultsAreUnhandled(t *testing.T) {
	m := &minimal{}

	assert.False(t, m.KeyDown(ebiten.KeyA))
	assert.False(t, m.KeyUp(ebiten.KeyA))
	assert.False(t, m.KeyTyped('a'))
	assert.False(t, m.TouchDown(1, 2, 0, ebiten.MouseButtonLeft))
	assert.False(t, m.TouchUp(1, 2, 0, ebiten.MouseButtonLeft))
	assert.False(t, m.TouchDragged(1, 2, 0))
	assert.False(t, m.MouseMoved(1, 2))
	assert.False(t, m.Scrolled(0, 1))
}

func TestAdapter_Unproject(t *testing.T) {
	vp := viewport.NewFit(700, 300, camera.NewOrthographic(700, 300))
	vp.Update(700, 300, true)
	a := NewAdapter(vp)

	got := a.UnprojectXY(0, 300)
	assert.InDelta(t, 0, got.X(), 1e-6)
	assert.InDelta(t, 0, got.Y(), 1e-6)
}

func TestAdapter_UnprojectWithoutViewport(t *testing.T) {
	var a Adapter
	assert.Equal(t, mgl64.Vec2{3, 4}, a.Unproject(mgl64.Vec2{3, 4}))
}

func TestScreen_UnprojectThroughInterface(t *testing.T) {
	vp := viewport.NewFit(700, 300, camera.NewOrthographic(700, 300))
	vp.Update(700, 300, true)
	var s Screen = &minimal{Adapter: NewAdapter(vp)}

	got := s.Unproject(mgl64.Vec2{700, 0})
	assert.InDelta(t, 700, got.X(), 1e-6)
	assert.InDelta(t, 300, got.Y(), 1e-6)
}
