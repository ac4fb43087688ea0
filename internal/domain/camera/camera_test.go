package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestOrthographic_ProjectUnproject(t *testing.T) {
	c := NewOrthographic(700, 300)
	c.SetPosition(mgl64.Vec2{350, 150})

	ndc := c.Project(mgl64.Vec2{0, 0})
	assert.InDelta(t, -1, ndc.X(), 1e-9)
	assert.InDelta(t, -1, ndc.Y(), 1e-9)

	ndc = c.Project(mgl64.Vec2{700, 300})
	assert.InDelta(t, 1, ndc.X(), 1e-9)
	assert.InDelta(t, 1, ndc.Y(), 1e-9)

	world := c.Unproject(mgl64.Vec2{0, 0})
	assert.InDelta(t, 350, world.X(), 1e-9)
	assert.InDelta(t, 150, world.Y(), 1e-9)
}

func TestOrthographic_Zoom(t *testing.T) {
	c := NewOrthographic(100, 100)
	c.Zoom = 2
	c.Update()

	ndc := c.Project(mgl64.Vec2{100, 0})
	assert.InDelta(t, 1, ndc.X(), 1e-9, "zoom 2 shows twice the area")
}

func TestCenter(t *testing.T) {
	c := NewOrthographic(700, 300)
	Center(c, 700, 300)

	assert.Equal(t, mgl64.Vec2{350, 150}, c.Position)
	assert.InDelta(t, -1, c.Project(mgl64.Vec2{0, 0}).X(), 1e-9, "matrices refreshed")
}

func TestLockOn(t *testing.T) {
	c := NewOrthographic(100, 100)
	LockOn(c, mgl64.Vec2{12, -4})
	assert.Equal(t, mgl64.Vec2{12, -4}, c.Position)

	LockOnX(c, mgl64.Vec2{5, 5}, 10)
	assert.Equal(t, mgl64.Vec2{5, 15}, c.Position)

	LockOnY(c, mgl64.Vec2{5, 5}, -3)
	assert.Equal(t, mgl64.Vec2{2, 5}, c.Position)
}

func TestLerpTo(t *testing.T) {
	tests := []struct {
		name   string
		lerp   float64
		xOff   float64
		yOff   float64
		expect mgl64.Vec2
	}{
		{"quarter step", 0.25, 0, 0, mgl64.Vec2{25, 50}},
		{"lerp 1 is a rigid lock", 1, 0, 0, mgl64.Vec2{100, 200}},
		{"offset added after interpolation", 0.5, 3, -2, mgl64.Vec2{53, 98}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewOrthographic(100, 100)
			LerpTo(c, mgl64.Vec2{100, 200}, tt.lerp, tt.xOff, tt.yOff)
			assert.InDelta(t, tt.expect.X(), c.Position.X(), 1e-9)
			assert.InDelta(t, tt.expect.Y(), c.Position.Y(), 1e-9)
		})
	}
}

func TestLerpTo_Converges(t *testing.T) {
	c := NewOrthographic(100, 100)
	target := mgl64.Vec2{500, 0}
	prev := target.Sub(c.Position).Len()

	for i := 0; i < 50; i++ {
		LerpTo(c, target, 0.075, 0, 0)
		d := target.Sub(c.Position).Len()
		assert.Less(t, d, prev)
		prev = d
	}
}
