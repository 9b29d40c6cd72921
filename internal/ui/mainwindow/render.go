package mainwindow

import (
	"fmt"
	"time"

	"eyeguard/internal/core/engine"
)

// ViewState is a pure render description of the control surface. It is
// derived from an engine snapshot only, so every observer renders the
// same state and none of them can drift.
type ViewState struct {
	Status         string
	Countdown      string
	Progress       float64
	PauseLabel     string
	SecondaryLabel string
}

// BuildViewState maps an engine snapshot to its render description.
func BuildViewState(state engine.State) ViewState {
	view := ViewState{
		Status:         statusText(state),
		Countdown:      FormatRemaining(state.Remaining),
		Progress:       progressFraction(state),
		PauseLabel:     "Pause",
		SecondaryLabel: "Reset",
	}
	if state.Paused {
		view.PauseLabel = "Resume"
	}
	if state.Mode == engine.ModeRest {
		view.SecondaryLabel = "Skip rest"
	}
	return view
}

func statusText(state engine.State) string {
	if state.Mode == engine.ModeWork {
		return "Focus Time"
	}
	switch state.RestType {
	case engine.RestWater:
		return "Drink some water!"
	case engine.RestWalk:
		return "Time to move!"
	default:
		return "Rest your eyes!"
	}
}

func progressFraction(state engine.State) float64 {
	total := state.PhaseDuration()
	if total <= 0 {
		return 0
	}
	fraction := float64(state.Remaining) / float64(total)
	if fraction < 0 {
		return 0
	}
	if fraction > 1 {
		return 1
	}
	return fraction
}

// FormatRemaining renders a countdown as MM:SS, clamped at zero.
func FormatRemaining(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
