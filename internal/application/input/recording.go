package input

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// RecordingVersion is written into every recording.
const RecordingVersion = "1.0"

// Recording contains all data needed to replay an input session
type Recording struct {
	Version   string     `json:"version"`
	Label     string     `json:"label"`
	StartTime string     `json:"startTime"`
	Frames    []Snapshot `json:"frames"`
}

// Recorder captures snapshots for later replay.
type Recorder struct {
	data      Recording
	recording bool
}

// NewRecorder creates a new recorder. label names the session, usually the
// first screen shown.
func NewRecorder(label string) *Recorder {
	return &Recorder{
		data: Recording{
			Version:   RecordingVersion,
			Label:     label,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]Snapshot, 0, 3600), // ~1 minute at 60fps
		},
		recording: true,
	}
}

// Record appends one frame. The frame number is reassigned so recordings
// are always contiguous.
func (r *Recorder) Record(s Snapshot) {
	if !r.recording {
		return
	}
	s.Frame = len(r.data.Frames)
	r.data.Frames = append(r.data.Frames, s)
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded session.
func (r *Recorder) Data() Recording {
	return r.data
}

// Encode writes the recording as indented JSON.
func (r *Recorder) Encode(w io.Writer) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode recording: %w", err)
	}
	return nil
}

// Save writes the recording to a file
func (r *Recorder) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return r.Encode(file)
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("input_%s.json", time.Now().Format("20060102_150405"))
}

// recordingSource records every snapshot it passes through.
type recordingSource struct {
	src Source
	rec *Recorder
}

// Tee returns a Source that records everything src produces into rec.
func Tee(src Source, rec *Recorder) Source {
	return &recordingSource{src: src, rec: rec}
}

func (t *recordingSource) Poll() (Snapshot, bool) {
	s, ok := t.src.Poll()
	if ok {
		t.rec.Record(s)
	}
	return s, ok
}
