package audio

import (
	"fmt"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Sounds holds short clips by name. Each Play starts an independent
// instance, so the same clip can overlap itself.
type Sounds struct {
	fsys       fs.FS
	factory    playerFactory
	sampleRate int

	clips     map[string][]byte
	instances map[string][]*instance
	nextID    int64
}

type instance struct {
	id     int64
	player player
	paused bool
}

// NewSounds creates a sound manager on ctx, loading files from fsys.
func NewSounds(ctx *audio.Context, fsys fs.FS) *Sounds {
	return newSounds(contextFactory{ctx: ctx}, fsys, ctx.SampleRate())
}

func newSounds(factory playerFactory, fsys fs.FS, sampleRate int) *Sounds {
	return &Sounds{
		fsys:       fsys,
		factory:    factory,
		sampleRate: sampleRate,
		clips:      make(map[string][]byte),
		instances:  make(map[string][]*instance),
	}
}

// Load reads and decodes the file at path as name.
func (s *Sounds) Load(name, path string) error {
	data, err := fs.ReadFile(s.fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read sound %s: %w", path, err)
	}
	return s.LoadBytes(name, path, data)
}

// LoadBytes decodes an in-memory file. filename only selects the decoder.
func (s *Sounds) LoadBytes(name, filename string, data []byte) error {
	pcm, err := Decode(filename, data, s.sampleRate)
	if err != nil {
		return err
	}
	if s.Has(name) {
		_ = s.Dispose(name)
	}
	s.clips[name] = pcm
	return nil
}

// Has reports whether name is loaded.
func (s *Sounds) Has(name string) bool {
	_, ok := s.clips[name]
	return ok
}

// Play starts a new instance of name and returns its id.
func (s *Sounds) Play(name string, volume float64) (int64, error) {
	return s.start(name, volume, false)
}

// Loop starts a new looping instance of name and returns its id.
func (s *Sounds) Loop(name string, volume float64) (int64, error) {
	return s.start(name, volume, true)
}

func (s *Sounds) start(name string, volume float64, loop bool) (int64, error) {
	pcm, ok := s.clips[name]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrAssetNotFound, name)
	}
	s.prune(name)

	p, err := s.factory.NewPlayer(pcm, loop)
	if err != nil {
		return -1, err
	}
	p.SetVolume(volume)
	p.Play()

	s.nextID++
	s.instances[name] = append(s.instances[name], &instance{id: s.nextID, player: p})
	return s.nextID, nil
}

// prune closes instances that finished on their own.
func (s *Sounds) prune(name string) {
	live := s.instances[name][:0]
	for _, in := range s.instances[name] {
		if in.paused || in.player.IsPlaying() {
			live = append(live, in)
			continue
		}
		_ = in.player.Close()
	}
	s.instances[name] = live
}

// Playing returns the number of instances of name still playing.
func (s *Sounds) Playing(name string) int {
	n := 0
	for _, in := range s.instances[name] {
		if in.player.IsPlaying() {
			n++
		}
	}
	return n
}

func (s *Sounds) each(name string, fn func(in *instance)) error {
	if _, ok := s.clips[name]; !ok {
		return fmt.Errorf("%w: %q", ErrAssetNotFound, name)
	}
	for _, in := range s.instances[name] {
		fn(in)
	}
	return nil
}

// Stop stops and releases every instance of name.
func (s *Sounds) Stop(name string) error {
	err := s.each(name, func(in *instance) {
		in.player.Pause()
		_ = in.player.Close()
	})
	delete(s.instances, name)
	return err
}

// Pause pauses every playing instance of name.
func (s *Sounds) Pause(name string) error {
	return s.each(name, func(in *instance) {
		if in.player.IsPlaying() {
			in.player.Pause()
			in.paused = true
		}
	})
}

// Resume resumes the instances of name paused by Pause.
func (s *Sounds) Resume(name string) error {
	return s.each(name, func(in *instance) {
		if in.paused {
			in.player.Play()
			in.paused = false
		}
	})
}

// Dispose stops name and forgets its clip.
func (s *Sounds) Dispose(name string) error {
	err := s.Stop(name)
	delete(s.clips, name)
	return err
}

// Close disposes every clip.
func (s *Sounds) Close() {
	for name := range s.clips {
		_ = s.Dispose(name)
	}
}
