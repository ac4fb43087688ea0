package assets

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log"
	"path"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/screenkit/internal/infrastructure/graphics"
)

var (
	ErrAtlasNotFound  = errors.New("atlas not found")
	ErrRegionNotFound = errors.New("region not found")
)

// atlasFile is the JSON description of an atlas. Image is relative to the
// description file.
type atlasFile struct {
	Image   string `json:"image"`
	Regions []struct {
		Name string `json:"name"`
		X    int    `json:"x"`
		Y    int    `json:"y"`
		W    int    `json:"w"`
		H    int    `json:"h"`
	} `json:"regions"`
}

// Registry holds atlases by key. One atlas may be the default, used when a
// lookup does not name a key.
type Registry struct {
	fsys       fs.FS
	atlases    map[string]*Atlas
	defaultKey string
}

// NewRegistry creates a registry loading files from fsys.
func NewRegistry(fsys fs.FS) *Registry {
	return &Registry{
		fsys:    fsys,
		atlases: make(map[string]*Atlas),
	}
}

// Load reads an atlas description and its page image and stores it as key.
func (r *Registry) Load(key, descPath string, setDefault bool) error {
	data, err := fs.ReadFile(r.fsys, descPath)
	if err != nil {
		return fmt.Errorf("failed to read atlas %s: %w", descPath, err)
	}

	var desc atlasFile
	if err := json.Unmarshal(data, &desc); err != nil {
		return fmt.Errorf("failed to parse atlas %s: %w", descPath, err)
	}

	pagePath := path.Join(path.Dir(descPath), desc.Image)
	f, err := r.fsys.Open(pagePath)
	if err != nil {
		return fmt.Errorf("failed to open atlas page %s: %w", pagePath, err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("failed to decode atlas page %s: %w", pagePath, err)
	}

	bounds := img.Bounds()
	rects := make(map[string]image.Rectangle, len(desc.Regions))
	for _, reg := range desc.Regions {
		rect := image.Rect(reg.X, reg.Y, reg.X+reg.W, reg.Y+reg.H).Add(bounds.Min)
		if !rect.In(bounds) {
			return fmt.Errorf("atlas %s: region %q lies outside the page", descPath, reg.Name)
		}
		rects[reg.Name] = rect
	}

	atlas := NewAtlas(ebiten.NewImageFromImage(img))
	for name, rect := range rects {
		atlas.AddRegion(name, rect)
	}

	r.Add(key, atlas, setDefault)
	return nil
}

// Add stores an atlas built in memory. An atlas already stored under key is
// disposed.
func (r *Registry) Add(key string, atlas *Atlas, setDefault bool) {
	if old, ok := r.atlases[key]; ok && old != atlas {
		old.Dispose()
	}
	r.atlases[key] = atlas
	if setDefault || r.defaultKey == "" {
		r.defaultKey = key
	}
}

// DefaultKey returns the key used when lookups omit one.
func (r *Registry) DefaultKey() string {
	return r.defaultKey
}

func (r *Registry) resolveKey(key []string) string {
	if len(key) > 0 && key[0] != "" {
		return key[0]
	}
	return r.defaultKey
}

// Atlas returns the atlas stored as key.
func (r *Registry) Atlas(key string) (*Atlas, error) {
	a, ok := r.atlases[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrAtlasNotFound, key)
	}
	return a, nil
}

// Find resolves a region in the given atlas, or the default one.
func (r *Registry) Find(name string, key ...string) (*graphics.Region, error) {
	k := r.resolveKey(key)
	a, err := r.Atlas(k)
	if err != nil {
		return nil, err
	}
	reg, ok := a.Region(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q in atlas %q", ErrRegionNotFound, name, k)
	}
	return reg, nil
}

// Take is Find for render code: a miss is logged and yields nil, which the
// batch draws as nothing.
func (r *Registry) Take(name string, key ...string) *graphics.Region {
	reg, err := r.Find(name, key...)
	if err != nil {
		log.Printf("assets: %v", err)
		return nil
	}
	return reg
}

// Regions returns the frames of an animation in frame order.
func (r *Registry) Regions(name string, key ...string) []*graphics.Region {
	a, err := r.Atlas(r.resolveKey(key))
	if err != nil {
		log.Printf("assets: %v", err)
		return nil
	}
	var out []*graphics.Region
	for _, n := range a.Frames(name) {
		reg, _ := a.Region(n)
		out = append(out, reg)
	}
	return out
}

// DisposeAtlas releases and forgets the atlas stored as key.
func (r *Registry) DisposeAtlas(key string) error {
	a, err := r.Atlas(key)
	if err != nil {
		return err
	}
	a.Dispose()
	delete(r.atlases, key)
	if r.defaultKey == key {
		r.defaultKey = ""
	}
	return nil
}

// Dispose releases every atlas.
func (r *Registry) Dispose() {
	for key, a := range r.atlases {
		a.Dispose()
		delete(r.atlases, key)
	}
	r.defaultKey = ""
}
