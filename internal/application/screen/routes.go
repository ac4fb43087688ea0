package screen

import "github.com/younwookim/screenkit/internal/application/transition"

// Switcher is the part of the screen manager a screen uses to move on.
type Switcher interface {
	SwitchTo(s Screen)
	SwitchToWith(s Screen, t transition.Transition)
}

// Factory creates a fresh screen each time it is called.
type Factory func() Screen

// Translator turns a message ID into display text.
type Translator interface {
	Get(s string, vars ...any) string
}

// SoundPlayer starts a loaded sound effect.
type SoundPlayer interface {
	Play(name string, volume float64) (int64, error)
}
