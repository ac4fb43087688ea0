// Package input turns per-frame input state into InputProcessor events.
//
// Input is sampled once per frame into a Snapshot. Snapshots come either from
// the live Ebitengine input state or from a recording, so a session can be
// replayed deterministically.
package input

import "github.com/hajimehoshi/ebiten/v2"

// Touch is one touch point in window pixels.
type Touch struct {
	ID ebiten.TouchID `json:"id"`
	X  int            `json:"x"`
	Y  int            `json:"y"`
}

// Snapshot records the input state for a single frame
type Snapshot struct {
	Frame       int                  `json:"f"`
	KeysDown    []ebiten.Key         `json:"kd,omitempty"` // Just pressed
	KeysUp      []ebiten.Key         `json:"ku,omitempty"` // Just released
	Typed       string               `json:"t,omitempty"`
	CursorX     int                  `json:"cx"`
	CursorY     int                  `json:"cy"`
	ButtonsDown []ebiten.MouseButton `json:"bd,omitempty"`
	ButtonsUp   []ebiten.MouseButton `json:"bu,omitempty"`
	WheelX      float64              `json:"wx,omitempty"`
	WheelY      float64              `json:"wy,omitempty"`
	TouchesDown []Touch              `json:"td,omitempty"`
	TouchesUp   []Touch              `json:"tu,omitempty"`
	Touches     []Touch              `json:"ts,omitempty"` // All active touches
}

// Source produces one snapshot per frame. ok is false once a finite source
// is exhausted.
type Source interface {
	Poll() (s Snapshot, ok bool)
}
