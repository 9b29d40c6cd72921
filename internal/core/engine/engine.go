package engine

import (
	"errors"
	"sync"
	"time"

	"eyeguard/internal/core/model"
)

// ErrInvalidDuration indicates a non-positive work or rest duration.
var ErrInvalidDuration = errors.New("invalid duration")

// ErrInvalidInterval indicates a non-positive reminder interval.
var ErrInvalidInterval = errors.New("invalid interval")

// ErrIdleUnsupported indicates idle detection is not available on this system.
var ErrIdleUnsupported = errors.New("idle detection unsupported")

// IdleChecker reports the duration of user inactivity.
type IdleChecker interface {
	IdleDuration() (time.Duration, error)
}

// Options contains runtime options for the Engine.
type Options struct {
	TickInterval time.Duration
}

// Engine is the work/rest cycle state machine. All mutations are
// serialized by its mutex; observers receive snapshots only.
type Engine struct {
	mu            sync.Mutex
	config        model.TimerConfig
	options       Options
	mode          Mode
	restType      RestType
	pinnedRest    RestType
	pinned        bool
	paused        bool
	remaining     time.Duration
	restCount     int
	idleChecker   IdleChecker
	lastIdleCheck time.Time
	lastTick      time.Time
	events        []chan Event
	stopCh        chan struct{}
	running       bool
}

// New creates an Engine with the provided configuration.
func New(config model.TimerConfig, options Options) *Engine {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if config.IdleCheckInterval <= 0 {
		config.IdleCheckInterval = 5 * time.Second
	}

	return &Engine{
		config:    config,
		options:   options,
		mode:      ModeWork,
		restType:  RestEye,
		remaining: config.WorkDuration,
		stopCh:    make(chan struct{}),
	}
}

// SetIdleChecker injects an idle checker.
func (engine *Engine) SetIdleChecker(checker IdleChecker) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.idleChecker = checker
}

// Subscribe registers a new observer channel.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	engine.events = append(engine.events, ch)
	engine.mu.Unlock()
	return ch
}

// Snapshot returns the current engine state.
func (engine *Engine) Snapshot() State {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.snapshotLocked()
}

// Start launches the ticking loop.
func (engine *Engine) Start() {
	engine.mu.Lock()
	if engine.running {
		engine.mu.Unlock()
		return
	}
	engine.running = true
	engine.lastTick = time.Now()
	state := engine.snapshotLocked()
	engine.mu.Unlock()

	engine.emit(Event{Type: EventStateChange, State: state, At: time.Now()})

	go engine.run()
}

// Stop terminates the ticking loop and closes observers.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	if !engine.running {
		engine.mu.Unlock()
		return
	}
	close(engine.stopCh)
	engine.running = false
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// TogglePause flips the paused flag. It never alters the active mode
// or the remaining countdown.
func (engine *Engine) TogglePause() {
	engine.mu.Lock()
	engine.paused = !engine.paused
	state := engine.snapshotLocked()
	engine.mu.Unlock()

	engine.emit(Event{Type: EventStateChange, State: state, At: time.Now()})
}

// Reset returns to Work mode with a full work countdown and clears pause.
func (engine *Engine) Reset() {
	engine.mu.Lock()
	engine.mode = ModeWork
	engine.remaining = engine.config.WorkDuration
	engine.paused = false
	state := engine.snapshotLocked()
	engine.mu.Unlock()

	engine.emit(Event{Type: EventStateChange, State: state, At: time.Now()})
}

// SetDurations updates work and rest durations. Non-positive values are
// rejected with ErrInvalidDuration and the prior configuration retained.
// The active phase's remaining time is clamped to the new maximum but
// never extended mid-cycle.
func (engine *Engine) SetDurations(work, rest time.Duration) error {
	if work <= 0 || rest <= 0 {
		return ErrInvalidDuration
	}

	engine.mu.Lock()
	engine.config.WorkDuration = work
	engine.config.RestDuration = rest
	if limit := engine.phaseDurationLocked(); engine.remaining > limit {
		engine.remaining = limit
	}
	state := engine.snapshotLocked()
	engine.mu.Unlock()

	engine.emit(Event{Type: EventStateChange, State: state, At: time.Now()})
	return nil
}

// SetIntervals updates the water and walk reminder cycle counts.
func (engine *Engine) SetIntervals(water, walk int) error {
	if water <= 0 || walk <= 0 {
		return ErrInvalidInterval
	}

	engine.mu.Lock()
	engine.config.WaterInterval = water
	engine.config.WalkInterval = walk
	engine.mu.Unlock()
	return nil
}

// SetIdleReset toggles the idle reset feature.
func (engine *Engine) SetIdleReset(enabled bool) {
	engine.mu.Lock()
	engine.config.IdleResetEnabled = enabled
	engine.mu.Unlock()
}

// SetRestType pins the label for the next rest phase. The counter-based
// rotation resumes on the cycle after the pinned one.
func (engine *Engine) SetRestType(restType RestType) {
	switch restType {
	case RestEye, RestWater, RestWalk:
	default:
		return
	}

	engine.mu.Lock()
	engine.pinnedRest = restType
	engine.pinned = true
	engine.mu.Unlock()
}

// SkipPhase immediately ends the current phase, exactly as if the
// countdown reached zero.
func (engine *Engine) SkipPhase() {
	engine.mu.Lock()
	engine.switchPhaseLocked()
	state := engine.snapshotLocked()
	engine.mu.Unlock()

	engine.emit(Event{Type: EventStateChange, State: state, At: time.Now()})
}

// Advance moves the countdown forward by the elapsed duration. Elapsed
// time is clamped to one tick interval, so an arbitrarily long gap
// (e.g. resume from system sleep) crosses at most one phase boundary.
// A paused engine ignores the call entirely.
func (engine *Engine) Advance(elapsed time.Duration) {
	now := time.Now()

	engine.mu.Lock()
	if engine.paused || elapsed <= 0 {
		engine.mu.Unlock()
		return
	}
	if elapsed > engine.options.TickInterval {
		elapsed = engine.options.TickInterval
	}

	if engine.mode == ModeWork {
		engine.handleIdleCheckLocked(now)
	}

	engine.remaining -= elapsed
	if engine.remaining > 0 {
		state := engine.snapshotLocked()
		engine.mu.Unlock()
		engine.emit(Event{Type: EventProgress, State: state, At: now})
		return
	}

	engine.switchPhaseLocked()
	state := engine.snapshotLocked()
	engine.mu.Unlock()
	engine.emit(Event{Type: EventStateChange, State: state, At: now})
}

func (engine *Engine) run() {
	ticker := time.NewTicker(engine.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-engine.stopCh:
			return
		case tickTime := <-ticker.C:
			engine.mu.Lock()
			elapsed := tickTime.Sub(engine.lastTick)
			engine.lastTick = tickTime
			engine.mu.Unlock()
			engine.Advance(elapsed)
		}
	}
}

// switchPhaseLocked flips Work<->Rest and refills the countdown for the
// new phase. On entering Rest the rest-type rotation advances: every
// WalkInterval-th rest is a walk reminder, every WaterInterval-th a
// water reminder, walk winning on collision.
func (engine *Engine) switchPhaseLocked() {
	if engine.mode == ModeWork {
		engine.mode = ModeRest
		engine.remaining = engine.config.RestDuration
		engine.restCount++
		engine.restType = engine.selectRestTypeLocked()
		return
	}

	engine.mode = ModeWork
	engine.remaining = engine.config.WorkDuration
}

func (engine *Engine) selectRestTypeLocked() RestType {
	if engine.pinned {
		engine.pinned = false
		return engine.pinnedRest
	}
	if engine.config.WalkInterval > 0 && engine.restCount%engine.config.WalkInterval == 0 {
		return RestWalk
	}
	if engine.config.WaterInterval > 0 && engine.restCount%engine.config.WaterInterval == 0 {
		return RestWater
	}
	return RestEye
}

func (engine *Engine) handleIdleCheckLocked(now time.Time) {
	if !engine.config.IdleResetEnabled || engine.idleChecker == nil {
		return
	}
	if !engine.lastIdleCheck.IsZero() && now.Sub(engine.lastIdleCheck) < engine.config.IdleCheckInterval {
		return
	}
	engine.lastIdleCheck = now

	idleDuration, err := engine.idleChecker.IdleDuration()
	if err != nil {
		if errors.Is(err, ErrIdleUnsupported) {
			engine.config.IdleResetEnabled = false
		}
		engine.emitLocked(Event{
			Type:    EventIdleError,
			State:   engine.snapshotLocked(),
			Message: err.Error(),
			At:      now,
		})
		return
	}
	if idleDuration >= engine.config.IdleResetAfter {
		engine.remaining = engine.config.WorkDuration
		engine.emitLocked(Event{
			Type:    EventIdleReset,
			State:   engine.snapshotLocked(),
			Message: "idle reset",
			At:      now,
		})
	}
}

func (engine *Engine) phaseDurationLocked() time.Duration {
	if engine.mode == ModeRest {
		return engine.config.RestDuration
	}
	return engine.config.WorkDuration
}

func (engine *Engine) snapshotLocked() State {
	return State{
		Mode:         engine.mode,
		RestType:     engine.restType,
		Paused:       engine.paused,
		Remaining:    engine.remaining,
		WorkDuration: engine.config.WorkDuration,
		RestDuration: engine.config.RestDuration,
	}
}

func (engine *Engine) emit(event Event) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.emitLocked(event)
}

func (engine *Engine) emitLocked(event Event) {
	events := append([]chan Event(nil), engine.events...)
	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}
