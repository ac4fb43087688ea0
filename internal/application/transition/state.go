package transition

// State represents where a transition is in its lifecycle.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateCompleted
)

// String returns the string representation of the transition state
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// lifecycle holds the running flag shared by every transition.
type lifecycle struct {
	started bool
	running bool
}

// Start marks the transition as running.
func (l *lifecycle) Start() {
	l.started = true
	l.running = true
}

// Finish clears the running flag. The manager calls it once it has
// acknowledged completion.
func (l *lifecycle) Finish() {
	l.running = false
}

// Running reports whether Start was called and Finish was not.
func (l *lifecycle) Running() bool {
	return l.running
}

func (l *lifecycle) state(completed bool) State {
	switch {
	case !l.started:
		return StateIdle
	case l.running && !completed:
		return StateRunning
	default:
		return StateCompleted
	}
}
