package model

import "time"

// TimerConfig contains runtime settings for the timer engine.
type TimerConfig struct {
	WorkDuration time.Duration
	RestDuration time.Duration

	// A walk reminder fires every WalkInterval rest cycles, a water
	// reminder every WaterInterval cycles; walk wins on collision.
	WaterInterval int
	WalkInterval  int

	IdleResetEnabled  bool
	IdleResetAfter    time.Duration
	IdleCheckInterval time.Duration
}

// DefaultTimerConfig returns the 20-20-20 defaults.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		WorkDuration:      20 * time.Minute,
		RestDuration:      20 * time.Second,
		WaterInterval:     2,
		WalkInterval:      3,
		IdleResetEnabled:  true,
		IdleResetAfter:    5 * time.Minute,
		IdleCheckInterval: 5 * time.Second,
	}
}
