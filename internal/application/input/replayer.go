package input

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Replayer handles input playback from a recording
type Replayer struct {
	data  Recording
	frame int
}

var _ Source = (*Replayer)(nil)

// NewReplayer creates a new replayer from a recording
func NewReplayer(data Recording) *Replayer {
	return &Replayer{data: data}
}

// DecodeRecording reads a JSON recording.
func DecodeRecording(r io.Reader) (*Recording, error) {
	var data Recording
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode recording: %w", err)
	}
	if data.Version != RecordingVersion {
		return nil, fmt.Errorf("unsupported recording version %q", data.Version)
	}
	return &data, nil
}

// LoadRecording loads a recording from a file
func LoadRecording(filename string) (*Recording, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return DecodeRecording(file)
}

// Poll returns the snapshot for the current frame and advances
func (r *Replayer) Poll() (Snapshot, bool) {
	if r.frame >= len(r.data.Frames) {
		return Snapshot{}, false
	}
	s := r.data.Frames[r.frame]
	r.frame++
	return s, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Label returns the label of the replayed session
func (r *Replayer) Label() string {
	return r.data.Label
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}
