package viewport

import (
	"image"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/screenkit/internal/domain/camera"
)

func TestFit_Letterbox(t *testing.T) {
	vp := NewFit(700, 300, camera.NewOrthographic(700, 300))
	vp.Update(1400, 1000, true)

	assert.Equal(t, image.Rect(0, 200, 1400, 800), vp.ScreenBounds())
	w, h := vp.WorldSize()
	assert.Equal(t, 700.0, w)
	assert.Equal(t, 300.0, h)
	assert.Equal(t, mgl64.Vec2{350, 150}, vp.Camera().Position)
}

func TestExtend_Widens(t *testing.T) {
	vp := NewExtend(700, 300, camera.NewOrthographic(700, 300))
	vp.Update(1000, 300, true)

	assert.Equal(t, image.Rect(0, 0, 1000, 300), vp.ScreenBounds())
	w, h := vp.WorldSize()
	assert.InDelta(t, 1000, w, 1e-9)
	assert.InDelta(t, 300, h, 1e-9)
	assert.InDelta(t, 1000, vp.Camera().ViewportWidth, 1e-9)
}

func TestExtend_Heightens(t *testing.T) {
	vp := NewExtend(700, 300, camera.NewOrthographic(700, 300))
	vp.Update(700, 600, false)

	w, h := vp.WorldSize()
	assert.InDelta(t, 700, w, 1e-9)
	assert.InDelta(t, 600, h, 1e-9)
	assert.Equal(t, mgl64.Vec2{0, 0}, vp.Camera().Position, "camera not centered")
}

func TestUnproject(t *testing.T) {
	vp := NewFit(700, 300, camera.NewOrthographic(700, 300))
	vp.Update(700, 300, true)

	tests := []struct {
		name   string
		screen mgl64.Vec2
		world  mgl64.Vec2
	}{
		{"top-left pixel is top of the world", mgl64.Vec2{0, 0}, mgl64.Vec2{0, 300}},
		{"bottom-left pixel is the origin", mgl64.Vec2{0, 300}, mgl64.Vec2{0, 0}},
		{"center", mgl64.Vec2{350, 150}, mgl64.Vec2{350, 150}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := vp.Unproject(tt.screen)
			assert.InDelta(t, tt.world.X(), got.X(), 1e-6)
			assert.InDelta(t, tt.world.Y(), got.Y(), 1e-6)

			back := vp.Project(got)
			assert.InDelta(t, tt.screen.X(), back.X(), 1e-6)
			assert.InDelta(t, tt.screen.Y(), back.Y(), 1e-6)
		})
	}
}

func TestUnproject_Letterboxed(t *testing.T) {
	vp := NewFit(100, 100, camera.NewOrthographic(100, 100))
	vp.Update(200, 100, true)

	got := vp.Unproject(mgl64.Vec2{50, 100})
	assert.InDelta(t, 0, got.X(), 1e-6, "left bar ends at x=50")
	assert.InDelta(t, 0, got.Y(), 1e-6)
}
