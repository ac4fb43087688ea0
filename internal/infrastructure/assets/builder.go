package assets

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/hajimehoshi/ebiten/v2"
)

// padding keeps linear filtering from bleeding neighbouring regions.
const padding = 1

// Builder packs in-memory images into a single atlas page using rows
// ("shelves") of increasing height.
type Builder struct {
	width   int
	entries []builderEntry
	names   map[string]bool
}

type builderEntry struct {
	name string
	img  image.Image
}

// NewBuilder creates a builder for pages of the given width.
func NewBuilder(width int) *Builder {
	return &Builder{width: width, names: make(map[string]bool)}
}

// Add queues an image under name.
func (b *Builder) Add(name string, img image.Image) error {
	if b.names[name] {
		return fmt.Errorf("duplicate region %q", name)
	}
	if img.Bounds().Dx()+2*padding > b.width {
		return fmt.Errorf("region %q is wider than the page", name)
	}
	b.names[name] = true
	b.entries = append(b.entries, builderEntry{name: name, img: img})
	return nil
}

// Pack lays out every queued image and returns the page and the rectangle of
// each region.
func (b *Builder) Pack() (*image.NRGBA, map[string]image.Rectangle) {
	rects := make(map[string]image.Rectangle, len(b.entries))
	x, y, shelf := padding, padding, 0
	for _, e := range b.entries {
		w, h := e.img.Bounds().Dx(), e.img.Bounds().Dy()
		if x+w+padding > b.width {
			x = padding
			y += shelf + padding
			shelf = 0
		}
		rects[e.name] = image.Rect(x, y, x+w, y+h)
		x += w + padding
		shelf = max(shelf, h)
	}

	page := image.NewNRGBA(image.Rect(0, 0, b.width, max(y+shelf+padding, 1)))
	for _, e := range b.entries {
		r := rects[e.name]
		draw.Draw(page, r, e.img, e.img.Bounds().Min, draw.Src)
	}
	return page, rects
}

// Build packs the queued images and uploads the page.
func (b *Builder) Build() *Atlas {
	page, rects := b.Pack()
	atlas := NewAtlas(ebiten.NewImageFromImage(page))
	for name, r := range rects {
		atlas.AddRegion(name, r)
	}
	return atlas
}
