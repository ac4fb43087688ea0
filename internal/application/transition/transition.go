// Package transition provides the visual effects played between two screens.
//
// A transition never touches the screens themselves: the manager renders the
// outgoing and incoming screens into off-screen targets and hands both
// snapshots to Render, which composites them over the world rectangle
// (0, 0, worldWidth, worldHeight).
package transition

import "github.com/younwookim/screenkit/internal/infrastructure/graphics"

// Transition is a time-driven effect between a current and a next screen.
//
// Completed is computed from the variant's own progress and is independent
// of Running: the manager polls Completed and then calls Finish.
type Transition interface {
	Start()
	Finish()
	Running() bool
	Completed() bool
	State() State

	// Update advances the effect. It does nothing unless running.
	Update(dt float64)

	// Render composites the two snapshots through batch.
	Render(batch graphics.Batch, current, next *graphics.Region)
}
