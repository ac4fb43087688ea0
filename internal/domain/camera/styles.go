package camera

import "github.com/go-gl/mathgl/mgl64"

// Center places the camera in the middle of a worldWidth x worldHeight world.
func Center(c *Orthographic, worldWidth, worldHeight int) {
	c.SetPosition(mgl64.Vec2{float64(worldWidth) / 2, float64(worldHeight) / 2})
}

// LockOn snaps the camera onto target. Rigid, so motion can look rough.
func LockOn(c *Orthographic, target mgl64.Vec2) {
	c.SetPosition(target)
}

// LockOnX follows target rigidly on x, offset by yOffset on y.
func LockOnX(c *Orthographic, target mgl64.Vec2, yOffset float64) {
	c.SetPosition(mgl64.Vec2{target.X(), target.Y() + yOffset})
}

// LockOnY follows target rigidly on y, offset by xOffset on x.
func LockOnY(c *Orthographic, target mgl64.Vec2, xOffset float64) {
	c.SetPosition(mgl64.Vec2{target.X() + xOffset, target.Y()})
}

// LerpTo moves the camera by a fraction lerp of the remaining distance to
// target, then adds the offsets. lerp is in (0, 1]; lower is smoother and
// slower, 1 behaves like LockOn.
func LerpTo(c *Orthographic, target mgl64.Vec2, lerp, xOffset, yOffset float64) {
	p := c.Position
	x := p.X() + (target.X()-p.X())*lerp + xOffset
	y := p.Y() + (target.Y()-p.Y())*lerp + yOffset
	c.SetPosition(mgl64.Vec2{x, y})
}
