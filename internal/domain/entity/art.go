package entity

import (
	"image"
	"image/color"
	"image/draw"
)

var (
	colorTrunk  = color.NRGBA{R: 110, G: 72, B: 40, A: 255}
	colorLeaves = color.NRGBA{R: 46, G: 125, B: 50, A: 255}
	colorPine   = color.NRGBA{R: 27, G: 94, B: 60, A: 255}
	colorSkin   = color.NRGBA{R: 240, G: 200, B: 160, A: 255}
	colorShirt  = color.NRGBA{R: 200, G: 60, B: 60, A: 255}
	colorPants  = color.NRGBA{R: 50, G: 60, B: 120, A: 255}
)

// Art draws the demo's sprites, keyed by atlas then region name.
func Art() map[string]map[string]image.Image {
	return map[string]map[string]image.Image{
		NormalPack: {
			Tree1:     roundTree(),
			Tree2:     pineTree(),
			HeroIdle:  hero(0),
			BlankQuad: blank(),
		},
		HeroWalkingPack: {
			HeroWalking + "_0": hero(-1),
			HeroWalking + "_1": hero(1),
		},
	}
}

func fill(img *image.NRGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func fillCircle(img *image.NRGBA, cx, cy, radius int, c color.Color) {
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= radius*radius && (image.Point{x, y}).In(img.Rect) {
				img.Set(x, y, c)
			}
		}
	}
}

func blank() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	fill(img, img.Rect, color.White)
	return img
}

func roundTree() image.Image {
	w, h := int(TreeWidth), int(TreeHeight)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	fill(img, image.Rect(w/2-3, h/2, w/2+3, h), colorTrunk)
	fillCircle(img, w/2, h/3, w/2-1, colorLeaves)
	fillCircle(img, w/2, h/2-6, w/2-3, colorLeaves)
	return img
}

func pineTree() image.Image {
	w, h := int(TreeWidth), int(TreeHeight)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	fill(img, image.Rect(w/2-3, h*3/4, w/2+3, h), colorTrunk)
	top, bottom := 4, h*3/4
	for y := top; y < bottom; y++ {
		half := (y - top) * (w / 2) / (bottom - top)
		fill(img, image.Rect(w/2-half, y, w/2+half+1, y+1), colorPine)
	}
	return img
}

// hero draws a figure with its legs spread by stride (-1, 0 or 1).
func hero(stride int) image.Image {
	s := int(HeroSize)
	img := image.NewNRGBA(image.Rect(0, 0, s, s))
	fillCircle(img, s/2, 12, 8, colorSkin)
	fill(img, image.Rect(s/2-9, 21, s/2+9, 42), colorShirt)

	spread := 4 + 4*stride
	fill(img, image.Rect(s/2-8-spread/2, 42, s/2-2-spread/2, s-2), colorPants)
	fill(img, image.Rect(s/2+2+spread/2, 42, s/2+8+spread/2, s-2), colorPants)
	return img
}
