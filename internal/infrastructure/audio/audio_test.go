package audio

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRate = 44100

// mockPlayer is a test double for the audio player.
type mockPlayer struct {
	playing  bool
	closed   bool
	loop     bool
	volume   float64
	position time.Duration
	rewinds  int
}

func (p *mockPlayer) Play()                   { p.playing = true }
func (p *mockPlayer) Pause()                  { p.playing = false }
func (p *mockPlayer) IsPlaying() bool         { return p.playing }
func (p *mockPlayer) Rewind() error           { p.rewinds++; p.position = 0; return nil }
func (p *mockPlayer) SetVolume(v float64)     { p.volume = v }
func (p *mockPlayer) Position() time.Duration { return p.position }
func (p *mockPlayer) SetPosition(d time.Duration) error {
	p.position = d
	return nil
}
func (p *mockPlayer) Close() error { p.closed = true; return nil }

type mockFactory struct {
	players []*mockPlayer
}

func (f *mockFactory) NewPlayer(pcm []byte, loop bool) (player, error) {
	p := &mockPlayer{loop: loop}
	f.players = append(f.players, p)
	return p, nil
}

func toneFS() fstest.MapFS {
	return fstest.MapFS{
		"sfx/click.wav": {Data: Tone(880, 50*time.Millisecond, testRate)},
		"sfx/bad.wav":   {Data: []byte("RIFF nope")},
		"sfx/click.aac": {Data: []byte{0}},
	}
}

func TestDecode_Tone(t *testing.T) {
	pcm, err := Decode("beep.wav", Tone(440, 100*time.Millisecond, testRate), testRate)
	require.NoError(t, err)
	// mono 16-bit expands to stereo 16-bit
	assert.Equal(t, 4410*4, len(pcm))
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode("beep.aac", []byte{1, 2, 3}, testRate)
	assert.Error(t, err)

	_, err = Decode("beep.wav", []byte("garbage"), testRate)
	assert.Error(t, err)
}

func TestSounds_PlayUnknown(t *testing.T) {
	s := newSounds(&mockFactory{}, toneFS(), testRate)

	_, err := s.Play("missing", 1)
	assert.ErrorIs(t, err, ErrAssetNotFound)
	_, err = s.Loop("missing", 1)
	assert.ErrorIs(t, err, ErrAssetNotFound)
	assert.ErrorIs(t, s.Stop("missing"), ErrAssetNotFound)
	assert.ErrorIs(t, s.Pause("missing"), ErrAssetNotFound)
	assert.ErrorIs(t, s.Resume("missing"), ErrAssetNotFound)
	assert.ErrorIs(t, s.Dispose("missing"), ErrAssetNotFound)
}

func TestSounds_LoadErrors(t *testing.T) {
	s := newSounds(&mockFactory{}, toneFS(), testRate)

	assert.Error(t, s.Load("x", "sfx/none.wav"))
	assert.Error(t, s.Load("x", "sfx/bad.wav"))
	assert.Error(t, s.Load("x", "sfx/click.aac"))
	assert.False(t, s.Has("x"))
}

func TestSounds_Lifecycle(t *testing.T) {
	f := &mockFactory{}
	s := newSounds(f, toneFS(), testRate)
	require.NoError(t, s.Load("click", "sfx/click.wav"))

	id1, err := s.Play("click", 0.5)
	require.NoError(t, err)
	id2, err := s.Loop("click", 1)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	require.Len(t, f.players, 2)
	assert.Equal(t, 0.5, f.players[0].volume)
	assert.False(t, f.players[0].loop)
	assert.True(t, f.players[1].loop)
	assert.Equal(t, 2, s.Playing("click"))

	require.NoError(t, s.Pause("click"))
	assert.Equal(t, 0, s.Playing("click"))
	require.NoError(t, s.Resume("click"))
	assert.Equal(t, 2, s.Playing("click"))

	require.NoError(t, s.Stop("click"))
	assert.True(t, f.players[0].closed)
	assert.True(t, f.players[1].closed)
	assert.Equal(t, 0, s.Playing("click"))

	s.Close()
	assert.False(t, s.Has("click"))
}

func TestSounds_PrunesFinishedInstances(t *testing.T) {
	f := &mockFactory{}
	s := newSounds(f, toneFS(), testRate)
	require.NoError(t, s.Load("click", "sfx/click.wav"))

	_, err := s.Play("click", 1)
	require.NoError(t, err)
	f.players[0].playing = false // finished on its own

	_, err = s.Play("click", 1)
	require.NoError(t, err)
	assert.True(t, f.players[0].closed)
	assert.Len(t, s.instances["click"], 1)
}

func TestMusic_UnknownTrackIsNoop(t *testing.T) {
	m := newMusic(&mockFactory{}, toneFS(), testRate)

	assert.NotPanics(t, func() {
		m.Play("theme", 1)
		m.Pause("theme")
		m.Stop("theme")
		m.SetLooping("theme", true)
		m.SetPosition("theme", time.Second)
		m.Dispose("theme")
	})
	assert.False(t, m.IsPlaying("theme"))
	assert.False(t, m.IsLooping("theme"))
	assert.Zero(t, m.Position("theme"))
	assert.Zero(t, m.Duration("theme"))
}

func TestMusic_Lifecycle(t *testing.T) {
	f := &mockFactory{}
	m := newMusic(f, toneFS(), testRate)
	require.NoError(t, m.Load("theme", "sfx/click.wav"))
	assert.Equal(t, 50*time.Millisecond, m.Duration("theme"))

	m.Play("theme", 0.8)
	require.Len(t, f.players, 1)
	assert.True(t, m.IsPlaying("theme"))
	assert.Equal(t, 0.8, f.players[0].volume)

	m.SetPosition("theme", 20*time.Millisecond)
	m.SetLooping("theme", true)
	assert.True(t, m.IsLooping("theme"))

	// the player is rebuilt as a loop at the same position
	require.Len(t, f.players, 2)
	assert.True(t, f.players[0].closed)
	assert.True(t, f.players[1].loop)
	assert.True(t, f.players[1].playing)
	assert.Equal(t, 20*time.Millisecond, m.Position("theme"))

	m.Pause("theme")
	assert.False(t, m.IsPlaying("theme"))

	m.Stop("theme")
	assert.Equal(t, 1, f.players[1].rewinds)
	assert.Zero(t, m.Position("theme"))

	m.Close()
	assert.True(t, f.players[1].closed)
	assert.False(t, m.IsLooping("theme"))
}
