package main

import (
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/screenkit/internal/application/screen/menu"
	"github.com/younwookim/screenkit/internal/application/screen/sandbox"
	"github.com/younwookim/screenkit/internal/domain/camera"
	"github.com/younwookim/screenkit/internal/domain/entity"
	"github.com/younwookim/screenkit/internal/domain/viewport"
	"github.com/younwookim/screenkit/internal/infrastructure/assets"
	"github.com/younwookim/screenkit/internal/infrastructure/audio"
	"github.com/younwookim/screenkit/internal/infrastructure/config"
	"github.com/younwookim/screenkit/internal/infrastructure/i18n"
	"github.com/younwookim/screenkit/internal/infrastructure/physics"
)

const artPageWidth = 256

// loadConfig reads app.json from dir, or from the embedded configs when dir
// is empty.
func loadConfig(dir string) (*config.Loader, *config.AppConfig, error) {
	var loader *config.Loader
	if dir != "" {
		loader = config.NewLoader(dir)
	} else {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get config subfs: %w", err)
		}
		loader = config.NewFSLoader(fsys, "configs")
	}
	cfg, err := loader.LoadApp()
	if err != nil {
		return nil, nil, err
	}
	return loader, cfg, nil
}

// loadCatalog returns nil, which shows untranslated text, when lang has no
// catalog.
func loadCatalog(lang string) *i18n.Catalog {
	fsys, err := fs.Sub(localeFS, "locales")
	if err != nil {
		log.Printf("Warning: Failed to get locale subfs: %v", err)
		return nil
	}
	catalog, err := i18n.Load(fsys, lang)
	if err != nil {
		langs, _ := i18n.Languages(fsys)
		log.Printf("Warning: %v (available: %v)", err, langs)
		return nil
	}
	return catalog
}

func newViewport(kind string, worldWidth, worldHeight int, cam *camera.Orthographic) viewport.Viewport {
	if kind == config.ViewportFit {
		return viewport.NewFit(float64(worldWidth), float64(worldHeight), cam)
	}
	return viewport.NewExtend(float64(worldWidth), float64(worldHeight), cam)
}

func physicsConfig(c config.PhysicsConfig) physics.Config {
	return physics.Config{
		Gravity:            mgl64.Vec2{c.Gravity.X, c.Gravity.Y},
		Timestep:           c.Timestep,
		VelocityIterations: c.VelocityIterations,
		PositionIterations: c.PositionIterations,
		PixelsPerMeter:     physics.Scale(c.PixelsPerMeter),
		Debug:              c.Debug,
	}
}

func clearColor(c [4]uint8) color.NRGBA {
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// packArt packs the generated sprites, one builder per atlas.
func packArt() (map[string]*assets.Builder, error) {
	out := make(map[string]*assets.Builder)
	for key, images := range entity.Art() {
		b := assets.NewBuilder(artPageWidth)
		for _, name := range sortedKeys(images) {
			if err := b.Add(name, images[name]); err != nil {
				return nil, fmt.Errorf("failed to pack %s/%s: %w", key, name, err)
			}
		}
		out[key] = b
	}
	return out, nil
}

// loadAssets uploads the generated art, then any atlases named in app.json.
func loadAssets(registry *assets.Registry, cfg *config.AppConfig) error {
	builders, err := packArt()
	if err != nil {
		return err
	}
	for _, key := range sortedKeys(builders) {
		registry.Add(key, builders[key].Build(), key == entity.NormalPack)
	}
	for _, a := range cfg.Assets {
		if err := registry.Load(a.Key, a.Path, a.Default); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
	return nil
}

// loadSounds registers generated tones, then any sounds named in app.json.
func loadSounds(sounds *audio.Sounds, cfg *config.AppConfig) {
	rate := cfg.Audio.SampleRate
	tones := map[string][]byte{
		menu.ClickSound:     audio.Tone(880, 60*time.Millisecond, rate),
		sandbox.BounceSound: audio.Tone(440, 40*time.Millisecond, rate),
	}
	for _, name := range sortedKeys(tones) {
		if err := sounds.LoadBytes(name, name+".wav", tones[name]); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
	for _, name := range sortedKeys(cfg.Audio.Sounds) {
		if err := sounds.Load(name, cfg.Audio.Sounds[name]); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
}

// loadMusic loads and starts every looping track named in app.json.
func loadMusic(music *audio.Music, cfg *config.AppConfig) {
	for _, name := range sortedKeys(cfg.Audio.Music) {
		if err := music.Load(name, cfg.Audio.Music[name]); err != nil {
			log.Printf("Warning: %v", err)
			continue
		}
		music.SetLooping(name, true)
		music.Play(name, 0.5)
	}
}

// screenshotFiles numbers captures within dir: screenshot-001.png, ...
func screenshotFiles(dir string) func() (io.WriteCloser, error) {
	n := 0
	return func() (io.WriteCloser, error) {
		n++
		name := filepath.Join(dir, fmt.Sprintf("screenshot-%03d.png", n))
		log.Printf("Saving screenshot: %s", name)
		return os.Create(name)
	}
}
