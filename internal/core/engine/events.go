package engine

import "time"

// Mode represents the current cycle phase.
type Mode string

const (
	ModeWork Mode = "work"
	ModeRest Mode = "rest"
)

// RestType labels the current or upcoming rest phase.
type RestType string

const (
	RestEye   RestType = "eye_rest"
	RestWater RestType = "water"
	RestWalk  RestType = "walk"
)

// EventType defines the type of engine event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventProgress    EventType = "progress"
	EventIdleReset   EventType = "idle_reset"
	EventIdleError   EventType = "idle_error"
)

// State is a read-only snapshot of the engine.
type State struct {
	Mode         Mode
	RestType     RestType
	Paused       bool
	Remaining    time.Duration
	WorkDuration time.Duration
	RestDuration time.Duration
}

// PhaseDuration returns the configured duration of the active phase.
func (state State) PhaseDuration() time.Duration {
	if state.Mode == ModeRest {
		return state.RestDuration
	}
	return state.WorkDuration
}

// Event represents an engine update for observers.
type Event struct {
	Type    EventType
	State   State
	Message string
	At      time.Time
}
