package audio

import (
	"fmt"
	"io/fs"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Music holds long tracks by name. Unlike Sounds, each track has a single
// player, and operations on unknown tracks do nothing.
type Music struct {
	fsys       fs.FS
	factory    playerFactory
	sampleRate int

	tracks map[string]*track
}

type track struct {
	pcm     []byte
	player  player
	looping bool
	volume  float64
}

// NewMusic creates a music manager on ctx, loading files from fsys.
func NewMusic(ctx *audio.Context, fsys fs.FS) *Music {
	return newMusic(contextFactory{ctx: ctx}, fsys, ctx.SampleRate())
}

func newMusic(factory playerFactory, fsys fs.FS, sampleRate int) *Music {
	return &Music{
		fsys:       fsys,
		factory:    factory,
		sampleRate: sampleRate,
		tracks:     make(map[string]*track),
	}
}

// Load reads and decodes the file at path as name.
func (m *Music) Load(name, path string) error {
	data, err := fs.ReadFile(m.fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read track %s: %w", path, err)
	}
	return m.LoadBytes(name, path, data)
}

// LoadBytes decodes an in-memory file. filename only selects the decoder.
func (m *Music) LoadBytes(name, filename string, data []byte) error {
	pcm, err := Decode(filename, data, m.sampleRate)
	if err != nil {
		return err
	}
	m.Dispose(name)
	m.tracks[name] = &track{pcm: pcm, volume: 1}
	return nil
}

func (m *Music) ensurePlayer(t *track) bool {
	if t.player != nil {
		return true
	}
	p, err := m.factory.NewPlayer(t.pcm, t.looping)
	if err != nil {
		log.Printf("audio: %v", err)
		return false
	}
	p.SetVolume(t.volume)
	t.player = p
	return true
}

// Play starts or resumes name at volume.
func (m *Music) Play(name string, volume float64) {
	t, ok := m.tracks[name]
	if !ok {
		return
	}
	t.volume = volume
	if !m.ensurePlayer(t) {
		return
	}
	t.player.SetVolume(volume)
	t.player.Play()
}

// Pause pauses name, keeping its position.
func (m *Music) Pause(name string) {
	if t, ok := m.tracks[name]; ok && t.player != nil {
		t.player.Pause()
	}
}

// Stop pauses name and rewinds it.
func (m *Music) Stop(name string) {
	if t, ok := m.tracks[name]; ok && t.player != nil {
		t.player.Pause()
		_ = t.player.Rewind()
	}
}

// SetLooping changes whether name restarts when it ends. The player is
// rebuilt at its current position.
func (m *Music) SetLooping(name string, looping bool) {
	t, ok := m.tracks[name]
	if !ok || t.looping == looping {
		return
	}
	t.looping = looping
	if t.player == nil {
		return
	}

	playing := t.player.IsPlaying()
	pos := t.player.Position()
	_ = t.player.Close()
	t.player = nil
	if !m.ensurePlayer(t) {
		return
	}
	_ = t.player.SetPosition(pos)
	if playing {
		t.player.Play()
	}
}

// IsPlaying reports whether name is playing.
func (m *Music) IsPlaying(name string) bool {
	t, ok := m.tracks[name]
	return ok && t.player != nil && t.player.IsPlaying()
}

// IsLooping reports whether name is set to loop.
func (m *Music) IsLooping(name string) bool {
	t, ok := m.tracks[name]
	return ok && t.looping
}

// Position returns the playback position of name.
func (m *Music) Position(name string) time.Duration {
	t, ok := m.tracks[name]
	if !ok || t.player == nil {
		return 0
	}
	return t.player.Position()
}

// SetPosition seeks name.
func (m *Music) SetPosition(name string, pos time.Duration) {
	t, ok := m.tracks[name]
	if !ok || !m.ensurePlayer(t) {
		return
	}
	if err := t.player.SetPosition(pos); err != nil {
		log.Printf("audio: seek %s: %v", name, err)
	}
}

// Duration returns the length of name.
func (m *Music) Duration(name string) time.Duration {
	t, ok := m.tracks[name]
	if !ok {
		return 0
	}
	return time.Duration(len(t.pcm)) * time.Second / time.Duration(bytesPerSecond(m.sampleRate))
}

// Dispose releases name.
func (m *Music) Dispose(name string) {
	t, ok := m.tracks[name]
	if !ok {
		return
	}
	if t.player != nil {
		t.player.Pause()
		_ = t.player.Close()
	}
	delete(m.tracks, name)
}

// Close releases every track.
func (m *Music) Close() {
	for name := range m.tracks {
		m.Dispose(name)
	}
}
