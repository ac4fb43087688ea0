// Package layout holds sprite positioning helpers. Positions are the
// bottom-left corner of the sprite in y-up world coordinates.
package layout

import "github.com/go-gl/mathgl/mgl64"

// CenterOnScreen centers an imgWidth x imgHeight sprite in the world.
func CenterOnScreen(imgWidth, imgHeight float64, worldWidth, worldHeight int) mgl64.Vec2 {
	return mgl64.Vec2{
		(float64(worldWidth) - imgWidth) / 2,
		(float64(worldHeight) - imgHeight) / 2,
	}
}

// CenterOnScreenX centers horizontally and keeps y.
func CenterOnScreenX(imgWidth, y float64, worldWidth int) mgl64.Vec2 {
	return mgl64.Vec2{(float64(worldWidth) - imgWidth) / 2, y}
}

// CenterOnScreenY centers vertically and keeps x.
func CenterOnScreenY(imgHeight, x float64, worldHeight int) mgl64.Vec2 {
	return mgl64.Vec2{x, (float64(worldHeight) - imgHeight) / 2}
}

// CenterOnImage centers a width x height sprite inside an outer image at
// imgPos of size imgWidth x imgHeight.
func CenterOnImage(width, height float64, imgPos mgl64.Vec2, imgWidth, imgHeight float64) mgl64.Vec2 {
	return mgl64.Vec2{
		imgPos.X() + (imgWidth-width)/2,
		imgPos.Y() + (imgHeight-height)/2,
	}
}

// CenterOnImageSquare is CenterOnImage for square sprites.
func CenterOnImageSquare(size float64, imgPos mgl64.Vec2, imgSize float64) mgl64.Vec2 {
	return CenterOnImage(size, size, imgPos, imgSize, imgSize)
}
