package mainwindow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"eyeguard/internal/core/engine"
)

func TestBuildViewStateWork(t *testing.T) {
	view := BuildViewState(engine.State{
		Mode:         engine.ModeWork,
		RestType:     engine.RestEye,
		Remaining:    10 * time.Minute,
		WorkDuration: 20 * time.Minute,
		RestDuration: 20 * time.Second,
	})

	assert.Equal(t, "Focus Time", view.Status)
	assert.Equal(t, "10:00", view.Countdown)
	assert.InDelta(t, 0.5, view.Progress, 0.001)
	assert.Equal(t, "Pause", view.PauseLabel)
	assert.Equal(t, "Reset", view.SecondaryLabel)
}

func TestBuildViewStateRestTypes(t *testing.T) {
	base := engine.State{
		Mode:         engine.ModeRest,
		Remaining:    20 * time.Second,
		WorkDuration: 20 * time.Minute,
		RestDuration: 20 * time.Second,
	}

	cases := map[engine.RestType]string{
		engine.RestEye:   "Rest your eyes!",
		engine.RestWater: "Drink some water!",
		engine.RestWalk:  "Time to move!",
	}
	for restType, status := range cases {
		state := base
		state.RestType = restType
		view := BuildViewState(state)
		assert.Equal(t, status, view.Status)
		assert.Equal(t, "Skip rest", view.SecondaryLabel)
		assert.InDelta(t, 1.0, view.Progress, 0.001)
	}
}

func TestBuildViewStatePaused(t *testing.T) {
	view := BuildViewState(engine.State{
		Mode:         engine.ModeWork,
		Paused:       true,
		Remaining:    time.Minute,
		WorkDuration: 20 * time.Minute,
		RestDuration: 20 * time.Second,
	})
	assert.Equal(t, "Resume", view.PauseLabel)
}

func TestFormatRemainingClampsNegative(t *testing.T) {
	assert.Equal(t, "00:00", FormatRemaining(-5*time.Second))
	assert.Equal(t, "01:05", FormatRemaining(65*time.Second))
}
