// Package audio plays short sound effects and longer music tracks through
// an Ebitengine audio context.
//
// Clips are decoded once at load time from WAV, MP3 or Ogg Vorbis, chosen by
// file extension.
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// ErrAssetNotFound is returned for sounds that were never loaded.
var ErrAssetNotFound = errors.New("audio asset not found")

// player is the part of *audio.Player the managers use.
type player interface {
	Play()
	Pause()
	IsPlaying() bool
	Rewind() error
	SetVolume(volume float64)
	Position() time.Duration
	SetPosition(offset time.Duration) error
	Close() error
}

// playerFactory creates players over decoded 16-bit stereo PCM.
type playerFactory interface {
	NewPlayer(pcm []byte, loop bool) (player, error)
}

// contextFactory creates real players on an audio context.
type contextFactory struct {
	ctx *audio.Context
}

func (f contextFactory) NewPlayer(pcm []byte, loop bool) (player, error) {
	if !loop {
		return f.ctx.NewPlayerFromBytes(pcm), nil
	}
	stream := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	p, err := f.ctx.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create looping player: %w", err)
	}
	return p, nil
}

// Context returns the process audio context, creating it on first use.
// Ebitengine allows only one context per process.
func Context(sampleRate int) *audio.Context {
	if ctx := audio.CurrentContext(); ctx != nil {
		return ctx
	}
	return audio.NewContext(sampleRate)
}

// Decode decodes data to 16-bit stereo PCM at sampleRate, picking the
// decoder from the extension of name.
func Decode(name string, data []byte, sampleRate int) ([]byte, error) {
	var (
		stream io.Reader
		err    error
	)
	src := bytes.NewReader(data)
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(sampleRate, src)
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(sampleRate, src)
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(sampleRate, src)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return pcm, nil
}

// bytesPerSecond of decoded PCM: 16-bit samples, two channels.
func bytesPerSecond(sampleRate int) int {
	return sampleRate * 4
}
