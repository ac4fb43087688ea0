package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func memoryAtlas(names ...string) *Atlas {
	a := NewAtlas(nil)
	for i, n := range names {
		a.AddRegion(n, image.Rect(i*10, 0, i*10+10, 10))
	}
	return a
}

func TestAtlas_Frames(t *testing.T) {
	a := memoryAtlas("hero_10", "hero_2", "hero_0", "hero_1", "hero_x", "heroic_3", "tree")

	assert.Equal(t, []string{"hero_0", "hero_1", "hero_2", "hero_10"}, a.Frames("hero"))
	assert.Empty(t, a.Frames("missing"))
	assert.Equal(t, []string{"hero_0", "hero_1", "hero_10", "hero_2", "hero_x", "heroic_3", "tree"}, a.Names())
}

func TestAtlas_RegionIsShared(t *testing.T) {
	a := memoryAtlas("tree")

	r1, ok := a.Region("tree")
	require.True(t, ok)
	r2, _ := a.Region("tree")
	assert.Same(t, r1, r2)

	_, ok = a.Region("bush")
	assert.False(t, ok)
}

func TestRegistry_DefaultKey(t *testing.T) {
	r := NewRegistry(fstest.MapFS{})
	assert.Empty(t, r.DefaultKey())

	r.Add("ui", memoryAtlas("button"), false)
	assert.Equal(t, "ui", r.DefaultKey(), "first atlas becomes the default")

	r.Add("world", memoryAtlas("tree"), true)
	assert.Equal(t, "world", r.DefaultKey())

	tree, err := r.Find("tree")
	require.NoError(t, err)
	assert.NotNil(t, tree)

	button, err := r.Find("button", "ui")
	require.NoError(t, err)
	assert.NotNil(t, button)
}

func TestRegistry_Misses(t *testing.T) {
	r := NewRegistry(fstest.MapFS{})
	r.Add("world", memoryAtlas("tree"), true)

	_, err := r.Find("tree", "ui")
	assert.ErrorIs(t, err, ErrAtlasNotFound)

	_, err = r.Find("rock")
	assert.ErrorIs(t, err, ErrRegionNotFound)

	assert.Nil(t, r.Take("rock"))
	assert.Nil(t, r.Regions("hero", "ui"))
}

func TestRegistry_Regions(t *testing.T) {
	r := NewRegistry(fstest.MapFS{})
	a := memoryAtlas("walk_1", "walk_0", "walk_2")
	r.Add("hero", a, true)

	frames := r.Regions("walk")
	require.Len(t, frames, 3)
	first, _ := a.Region("walk_0")
	assert.Same(t, first, frames[0])
}

func TestRegistry_DisposeAtlas(t *testing.T) {
	r := NewRegistry(fstest.MapFS{})
	r.Add("world", memoryAtlas("tree"), true)

	require.NoError(t, r.DisposeAtlas("world"))
	assert.Empty(t, r.DefaultKey())
	_, err := r.Atlas("world")
	assert.ErrorIs(t, err, ErrAtlasNotFound)

	assert.ErrorIs(t, r.DisposeAtlas("world"), ErrAtlasNotFound)
}

func TestRegistry_LoadErrors(t *testing.T) {
	page := pngBytes(t, solid(16, 16, color.White))

	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{"missing description", fstest.MapFS{}},
		{"malformed description", fstest.MapFS{
			"atlas/world.json": {Data: []byte(`{"image":`)},
		}},
		{"missing page", fstest.MapFS{
			"atlas/world.json": {Data: []byte(`{"image":"world.png"}`)},
		}},
		{"page is not an image", fstest.MapFS{
			"atlas/world.json": {Data: []byte(`{"image":"world.png"}`)},
			"atlas/world.png":  {Data: []byte("not a png")},
		}},
		{"region outside page", fstest.MapFS{
			"atlas/world.json": {Data: []byte(`{"image":"world.png","regions":[{"name":"tree","x":8,"y":8,"w":16,"h":16}]}`)},
			"atlas/world.png":  {Data: page},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry(tt.fsys)
			assert.Error(t, r.Load("world", "atlas/world.json", true))
			assert.Empty(t, r.DefaultKey())
		})
	}
}

func TestRegistry_Load(t *testing.T) {
	fsys := fstest.MapFS{
		"atlas/world.json": {Data: []byte(`{"image":"world.png","regions":[
			{"name":"tree","x":0,"y":0,"w":8,"h":16},
			{"name":"rock","x":8,"y":0,"w":8,"h":8}
		]}`)},
		"atlas/world.png": {Data: pngBytes(t, solid(16, 16, color.White))},
	}

	r := NewRegistry(fsys)
	require.NoError(t, r.Load("world", "atlas/world.json", true))

	a, err := r.Atlas("world")
	require.NoError(t, err)
	assert.Equal(t, []string{"rock", "tree"}, a.Names())

	b, ok := a.Bounds("tree")
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, 8, 16), b)

	tree := r.Take("tree")
	require.NotNil(t, tree)
	w, h := tree.Size()
	assert.Equal(t, 8, w)
	assert.Equal(t, 16, h)

	r.Dispose()
	assert.Empty(t, r.DefaultKey())
}

func TestBuilder_Pack(t *testing.T) {
	b := NewBuilder(32)
	require.NoError(t, b.Add("a", solid(10, 10, color.White)))
	require.NoError(t, b.Add("b", solid(10, 4, color.White)))
	require.NoError(t, b.Add("c", solid(20, 6, color.White)))

	assert.Error(t, b.Add("a", solid(1, 1, color.White)))
	assert.Error(t, b.Add("wide", solid(40, 1, color.White)))

	page, rects := b.Pack()
	require.Len(t, rects, 3)
	assert.Equal(t, image.Rect(1, 1, 11, 11), rects["a"])
	assert.Equal(t, image.Rect(12, 1, 22, 5), rects["b"])
	// c does not fit on the first shelf
	assert.Equal(t, image.Rect(1, 12, 21, 18), rects["c"])
	assert.Equal(t, image.Rect(0, 0, 32, 19), page.Bounds())

	for name, r := range rects {
		assert.True(t, r.In(page.Bounds()), name)
		for n2, r2 := range rects {
			if name != n2 {
				assert.False(t, r.Overlaps(r2), "%s overlaps %s", name, n2)
			}
		}
	}
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, page.NRGBAAt(5, 5))
	assert.Equal(t, color.NRGBA{}, page.NRGBAAt(0, 0))
}
