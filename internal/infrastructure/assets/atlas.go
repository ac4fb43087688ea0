// Package assets keeps texture atlases by key and resolves named regions.
package assets

import (
	"image"
	"sort"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/screenkit/internal/infrastructure/graphics"
)

// Atlas is a set of named rectangles over one page image.
type Atlas struct {
	page    *ebiten.Image
	rects   map[string]image.Rectangle
	regions map[string]*graphics.Region
}

// NewAtlas creates an empty atlas over page.
func NewAtlas(page *ebiten.Image) *Atlas {
	return &Atlas{
		page:    page,
		rects:   make(map[string]image.Rectangle),
		regions: make(map[string]*graphics.Region),
	}
}

// AddRegion names a rectangle of the page. Rectangles are in page pixels.
func (a *Atlas) AddRegion(name string, r image.Rectangle) {
	a.rects[name] = r
	delete(a.regions, name)
}

// Region returns the named region. Regions are created once and shared.
func (a *Atlas) Region(name string) (*graphics.Region, bool) {
	if r, ok := a.regions[name]; ok {
		return r, true
	}
	rect, ok := a.rects[name]
	if !ok {
		return nil, false
	}
	var r *graphics.Region
	if a.page != nil {
		r = graphics.NewRegion(a.page.SubImage(rect).(*ebiten.Image))
	} else {
		r = &graphics.Region{}
	}
	a.regions[name] = r
	return r, true
}

// Bounds returns the page rectangle of a named region.
func (a *Atlas) Bounds(name string) (image.Rectangle, bool) {
	r, ok := a.rects[name]
	return r, ok
}

// Names returns all region names in sorted order.
func (a *Atlas) Names() []string {
	names := make([]string, 0, len(a.rects))
	for n := range a.rects {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Frames returns the names of an animation's frames, "name_0", "name_1", and
// so on, ordered by frame index.
func (a *Atlas) Frames(name string) []string {
	type frame struct {
		name  string
		index int
	}
	var frames []frame
	prefix := name + "_"
	for n := range a.rects {
		suffix, ok := strings.CutPrefix(n, prefix)
		if !ok {
			continue
		}
		idx, err := strconv.Atoi(suffix)
		if err != nil {
			continue
		}
		frames = append(frames, frame{n, idx})
	}
	sort.Slice(frames, func(i, j int) bool { return frames[i].index < frames[j].index })

	out := make([]string, len(frames))
	for i, f := range frames {
		out[i] = f.name
	}
	return out
}

// Dispose releases the page image.
func (a *Atlas) Dispose() {
	if a.page != nil {
		a.page.Deallocate()
		a.page = nil
	}
	a.regions = make(map[string]*graphics.Region)
}
