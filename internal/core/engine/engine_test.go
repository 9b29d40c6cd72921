package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eyeguard/internal/core/model"
)

func testConfig(work, rest time.Duration) model.TimerConfig {
	config := model.DefaultTimerConfig()
	config.WorkDuration = work
	config.RestDuration = rest
	config.IdleResetEnabled = false
	return config
}

func newTestEngine(work, rest time.Duration) *Engine {
	return New(testConfig(work, rest), Options{TickInterval: time.Second})
}

func TestRemainingStaysInPhaseBounds(t *testing.T) {
	engine := newTestEngine(3*time.Second, 2*time.Second)

	for i := 0; i < 20; i++ {
		engine.Advance(time.Second)
		state := engine.Snapshot()
		assert.GreaterOrEqual(t, state.Remaining, time.Duration(0))
		assert.LessOrEqual(t, state.Remaining, state.PhaseDuration())
	}
}

func TestModeSequenceFollowsScenario(t *testing.T) {
	// work=2 ticks, rest=1 tick; 4 ticks from Work/remaining=2 must
	// produce Work(1), Rest(1), Work(2), Work(1).
	engine := newTestEngine(2*time.Second, time.Second)

	expected := []State{
		{Mode: ModeWork, Remaining: time.Second},
		{Mode: ModeRest, Remaining: time.Second},
		{Mode: ModeWork, Remaining: 2 * time.Second},
		{Mode: ModeWork, Remaining: time.Second},
	}

	for i, want := range expected {
		engine.Advance(time.Second)
		state := engine.Snapshot()
		assert.Equal(t, want.Mode, state.Mode, "tick %d", i+1)
		assert.Equal(t, want.Remaining, state.Remaining, "tick %d", i+1)
	}
}

func TestModeAlternatesStrictly(t *testing.T) {
	engine := newTestEngine(time.Second, time.Second)

	previous := engine.Snapshot().Mode
	for i := 0; i < 10; i++ {
		engine.Advance(time.Second)
		current := engine.Snapshot().Mode
		assert.NotEqual(t, previous, current, "tick %d", i+1)
		previous = current
	}
}

func TestTogglePauseFreezesCountdown(t *testing.T) {
	engine := newTestEngine(5*time.Second, time.Second)

	engine.Advance(time.Second)
	before := engine.Snapshot()

	engine.TogglePause()
	assert.True(t, engine.Snapshot().Paused)

	engine.Advance(time.Second)
	engine.Advance(time.Second)
	assert.Equal(t, before.Remaining, engine.Snapshot().Remaining)
	assert.Equal(t, before.Mode, engine.Snapshot().Mode)

	engine.TogglePause()
	after := engine.Snapshot()
	assert.False(t, after.Paused)
	assert.Equal(t, before.Remaining, after.Remaining)
}

func TestPauseDoesNotAffectMode(t *testing.T) {
	engine := newTestEngine(time.Second, time.Second)

	engine.TogglePause()
	engine.SkipPhase()
	state := engine.Snapshot()
	assert.Equal(t, ModeRest, state.Mode)
	assert.True(t, state.Paused)
}

func TestSetDurationsRejectsNonPositive(t *testing.T) {
	engine := newTestEngine(2*time.Second, time.Second)
	before := engine.Snapshot()

	err := engine.SetDurations(0, 10*time.Second)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDuration))
	assert.Equal(t, before, engine.Snapshot())

	err = engine.SetDurations(10*time.Second, -time.Second)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDuration))
	assert.Equal(t, before, engine.Snapshot())
}

func TestSetDurationsReclampsActivePhase(t *testing.T) {
	engine := newTestEngine(10*time.Second, time.Second)

	require.NoError(t, engine.SetDurations(3*time.Second, time.Second))
	assert.Equal(t, 3*time.Second, engine.Snapshot().Remaining)

	// A longer duration must not extend the running countdown.
	require.NoError(t, engine.SetDurations(30*time.Second, time.Second))
	assert.Equal(t, 3*time.Second, engine.Snapshot().Remaining)
}

func TestSkipPhaseTwiceTogglesTwice(t *testing.T) {
	engine := newTestEngine(2*time.Second, time.Second)

	engine.SkipPhase()
	state := engine.Snapshot()
	assert.Equal(t, ModeRest, state.Mode)
	assert.Equal(t, time.Second, state.Remaining)

	engine.SkipPhase()
	state = engine.Snapshot()
	assert.Equal(t, ModeWork, state.Mode)
	assert.Equal(t, 2*time.Second, state.Remaining)
}

func TestResetReturnsToFullWorkPhase(t *testing.T) {
	engine := newTestEngine(3*time.Second, time.Second)

	engine.Advance(time.Second)
	engine.TogglePause()
	engine.Reset()

	state := engine.Snapshot()
	assert.Equal(t, ModeWork, state.Mode)
	assert.Equal(t, 3*time.Second, state.Remaining)
	assert.False(t, state.Paused)
}

func TestLargeElapsedGapCrossesSingleBoundary(t *testing.T) {
	engine := newTestEngine(2*time.Second, time.Second)

	// A multi-hour gap counts as one tick: no catch-up storm.
	engine.Advance(3 * time.Hour)
	state := engine.Snapshot()
	assert.Equal(t, ModeWork, state.Mode)
	assert.Equal(t, time.Second, state.Remaining)
}

func TestRestTypeRotation(t *testing.T) {
	config := testConfig(time.Second, time.Second)
	config.WaterInterval = 2
	config.WalkInterval = 3
	engine := New(config, Options{TickInterval: time.Second})

	expected := []RestType{RestEye, RestWater, RestWalk, RestWater, RestEye, RestWalk}
	for i, want := range expected {
		engine.SkipPhase() // enter rest
		assert.Equal(t, want, engine.Snapshot().RestType, "rest cycle %d", i+1)
		engine.SkipPhase() // back to work
	}
}

func TestSetRestTypePinsSingleCycle(t *testing.T) {
	engine := newTestEngine(time.Second, time.Second)

	engine.SetRestType(RestWalk)
	engine.SkipPhase()
	assert.Equal(t, RestWalk, engine.Snapshot().RestType)
	engine.SkipPhase()

	// Rotation resumes: second cycle with default intervals is water.
	engine.SkipPhase()
	assert.Equal(t, RestWater, engine.Snapshot().RestType)
}

func TestSetIntervalsRejectsNonPositive(t *testing.T) {
	engine := newTestEngine(time.Second, time.Second)

	assert.True(t, errors.Is(engine.SetIntervals(0, 3), ErrInvalidInterval))
	assert.True(t, errors.Is(engine.SetIntervals(2, -1), ErrInvalidInterval))
	assert.NoError(t, engine.SetIntervals(4, 5))
}

func TestSubscribeReceivesTransitions(t *testing.T) {
	engine := newTestEngine(time.Second, time.Second)
	events := engine.Subscribe(4)

	engine.SkipPhase()

	select {
	case event := <-events:
		assert.Equal(t, EventStateChange, event.Type)
		assert.Equal(t, ModeRest, event.State.Mode)
	default:
		t.Fatal("expected a state change event")
	}
}

type fixedIdleChecker struct {
	idle time.Duration
	err  error
}

func (checker fixedIdleChecker) IdleDuration() (time.Duration, error) {
	return checker.idle, checker.err
}

func TestIdleResetRestartsWorkCountdown(t *testing.T) {
	config := testConfig(10*time.Second, time.Second)
	config.IdleResetEnabled = true
	config.IdleResetAfter = time.Minute
	engine := New(config, Options{TickInterval: time.Second})
	engine.SetIdleChecker(fixedIdleChecker{idle: 2 * time.Minute})

	// Idle reset refills before the decrement, so one tick leaves
	// remaining at WorkDuration minus a single tick.
	engine.Advance(time.Second)
	assert.Equal(t, 9*time.Second, engine.Snapshot().Remaining)
}

func TestUnsupportedIdleCheckerDisablesQuietly(t *testing.T) {
	config := testConfig(10*time.Second, time.Second)
	config.IdleResetEnabled = true
	engine := New(config, Options{TickInterval: time.Second})
	engine.SetIdleChecker(fixedIdleChecker{err: ErrIdleUnsupported})

	engine.Advance(time.Second)
	engine.Advance(time.Second)
	assert.Equal(t, 8*time.Second, engine.Snapshot().Remaining)
}
