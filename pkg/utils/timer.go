package utils

import (
	"sync"
	"time"
)

// Phase records the start and (once stopped) the duration of one named
// span of work.
type Phase struct {
	Name      string
	StartTime time.Time
	Duration  time.Duration
	completed bool
}

// PhaseTimer is the handle returned by Timer.Start. Call Stop when the
// phase is done; it is safe to call more than once.
type PhaseTimer struct {
	timer     *Timer
	phaseName string
}

// Stop stops the phase timer and records the duration.
// Safe to call multiple times; only the first call has effect.
func (pt *PhaseTimer) Stop() time.Duration {
	return pt.timer.StopPhase(pt.phaseName)
}

// Timer is the driver's coarse-grained phase breakdown: one instance
// tracks how long each generate/validate/time span took across a run,
// and can log each phase as it completes. It can be disabled entirely
// for zero overhead when that breakdown isn't wanted.
type Timer struct {
	mu         sync.RWMutex
	name       string
	phases     map[string]*Phase
	phaseOrder []string
	logger     Logger
	enabled    bool
	clock      Clock
}

// TimerOption configures a Timer instance.
type TimerOption func(*Timer)

// WithLogger makes the timer log each phase at Debug level as it stops.
func WithLogger(logger Logger) TimerOption {
	return func(t *Timer) {
		t.logger = logger
	}
}

// WithEnabled sets whether the timer is enabled.
// When disabled, all operations are no-ops for zero overhead.
func WithEnabled(enabled bool) TimerOption {
	return func(t *Timer) {
		t.enabled = enabled
	}
}

// WithClock sets a custom clock for testability.
func WithClock(clock Clock) TimerOption {
	return func(t *Timer) {
		t.clock = clock
	}
}

// NewTimer creates a new Timer with the given name and options.
func NewTimer(name string, opts ...TimerOption) *Timer {
	t := &Timer{
		name:       name,
		phases:     make(map[string]*Phase),
		phaseOrder: make([]string, 0),
		enabled:    true,
		clock:      SystemClock(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Start starts timing a new phase.
// Returns a PhaseTimer that can be used with defer for automatic completion.
func (t *Timer) Start(phaseName string) *PhaseTimer {
	if !t.enabled {
		return &PhaseTimer{timer: t, phaseName: phaseName}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.phases[phaseName] = &Phase{
		Name:      phaseName,
		StartTime: t.clock.Now(),
	}
	t.phaseOrder = append(t.phaseOrder, phaseName)

	return &PhaseTimer{timer: t, phaseName: phaseName}
}

// StopPhase stops timing a phase and returns its duration.
// Safe to call multiple times; only the first call has effect.
func (t *Timer) StopPhase(phaseName string) time.Duration {
	if !t.enabled {
		return 0
	}

	t.mu.Lock()
	phase, ok := t.phases[phaseName]
	if !ok || phase.completed {
		t.mu.Unlock()
		if phase != nil {
			return phase.Duration
		}
		return 0
	}

	phase.Duration = t.clock.Since(phase.StartTime)
	phase.completed = true
	t.mu.Unlock()

	if t.logger != nil {
		t.logger.Debug("%s: %s took %v", t.name, phaseName, phase.Duration)
	}
	return phase.Duration
}

// GetDuration returns the duration of a completed phase.
func (t *Timer) GetDuration(phaseName string) time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if phase, ok := t.phases[phaseName]; ok {
		return phase.Duration
	}
	return 0
}
