package transition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_String(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateIdle, "Idle"},
		{StateRunning, "Running"},
		{StateCompleted, "Completed"},
		{State(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestStateConstants(t *testing.T) {
	assert.Equal(t, State(0), StateIdle)
	assert.Equal(t, State(1), StateRunning)
	assert.Equal(t, State(2), StateCompleted)
}

func TestLifecycle(t *testing.T) {
	var l lifecycle
	assert.False(t, l.Running())
	assert.Equal(t, StateIdle, l.state(false))

	l.Start()
	assert.True(t, l.Running())
	assert.Equal(t, StateRunning, l.state(false))
	assert.Equal(t, StateCompleted, l.state(true))

	l.Finish()
	assert.False(t, l.Running())
	assert.Equal(t, StateCompleted, l.state(false))
}
