// Package timer implements the countdown engine. One goroutine decrements
// the remaining seconds once per tick while Start, Pause, Unpause and Stop
// mutate the same state from the caller's goroutine under a single mutex.
// Log lines are written after the mutex is released, since the logger may
// be backed by the journal.
package timer

import (
	"fmt"
	"log"
	"sync"

	"github.com/akyairhashvil/alarm/internal/alert"
	"github.com/akyairhashvil/alarm/internal/config"
	"github.com/akyairhashvil/alarm/internal/models"
	"github.com/akyairhashvil/alarm/internal/util"
)

// Option customises an Engine.
type Option func(*Engine)

// WithClock replaces the clock used between ticks.
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithSink sets the completion alert. Without one, a text notice is logged.
func WithSink(s alert.Sink) Option {
	return func(e *Engine) { e.sink = s }
}

// WithLogger sets where state changes and warnings are reported.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// Engine counts down from a fixed duration in whole seconds.
type Engine struct {
	mu        sync.Mutex
	duration  int
	remaining int
	paused    bool
	running   bool
	completed bool
	// gen identifies the current run; a ticking goroutine from an older run exits.
	gen  uint64
	done chan struct{}

	onTick func(int)
	clock  Clock
	sink   alert.Sink
	logger *log.Logger
}

// New returns an idle engine for duration seconds. onTick receives every
// change of the remaining time, from the ticking goroutine or from the caller
// of Stop. It always runs with the engine locked, so it must not block or call
// back into the engine.
func New(duration int, onTick func(int), opts ...Option) *Engine {
	if duration < 0 {
		duration = 0
	}
	done := make(chan struct{})
	close(done)
	e := &Engine{
		duration:  duration,
		remaining: duration,
		done:      done,
		onTick:    onTick,
		clock:     SystemClock,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// entry is a log line decided under the lock and written after releasing it.
type entry struct {
	level models.Level
	msg   string
}

func info(msg string) entry { return entry{level: models.LevelInfo, msg: msg} }

func warning(err error) entry { return entry{level: models.LevelWarn, msg: err.Error()} }

// Start begins the countdown from the full duration.
func (e *Engine) Start() {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		e.log(warning(ErrAlreadyRunning))
		return
	}
	e.running, e.paused, e.completed = true, false, false
	e.remaining = e.duration
	e.gen++
	e.done = make(chan struct{})
	gen, done := e.gen, e.done
	e.mu.Unlock()

	e.log(info(fmt.Sprintf("Timer started for %d seconds!", e.duration)))
	go e.run(gen, done)
}

// Pause freezes the remaining time. The tick cadence keeps running.
func (e *Engine) Pause() {
	e.log(e.pause())
}

func (e *Engine) pause() entry {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch {
	case !e.running:
		return warning(ErrNotRunning)
	case e.paused:
		return warning(ErrAlreadyPaused)
	}
	e.paused = true
	return info("Timer paused.")
}

// Unpause lets the countdown continue from where it was paused.
func (e *Engine) Unpause() {
	e.log(e.unpause())
}

func (e *Engine) unpause() entry {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch {
	case !e.running:
		return warning(ErrNotRunning)
	case !e.paused:
		return warning(ErrNotPaused)
	}
	e.paused = false
	return info("Timer resumed.")
}

// Stop abandons the countdown and restores the full duration. The ticking
// goroutine notices at its next wake-up and exits without alerting.
func (e *Engine) Stop() {
	e.log(e.stop())
}

func (e *Engine) stop() entry {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.running {
		return warning(ErrNotRunning)
	}
	e.running, e.paused = false, false
	e.remaining = e.duration
	e.notify(e.duration)
	return info("Timer reset.")
}

// Remaining returns the seconds left.
func (e *Engine) Remaining() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.remaining
}

// Duration returns the seconds requested.
func (e *Engine) Duration() int {
	return e.duration
}

// State reports where the engine is in its lifecycle.
func (e *Engine) State() models.TimerState {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch {
	case e.running && e.paused:
		return models.StatePaused
	case e.running:
		return models.StateRunning
	case e.completed:
		return models.StateCompleted
	default:
		return models.StateIdle
	}
}

// Done is closed when the ticking goroutine of the latest run has exited,
// after the completion alert if there was one.
func (e *Engine) Done() <-chan struct{} {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.done
}

func (e *Engine) run(gen uint64, done chan struct{}) {
	defer close(done)
	for e.tick(gen) {
		e.clock.Sleep(config.TickInterval)
	}
	if e.finish(gen) {
		e.log(info("Time's up!"))
		e.fireAlert()
	}
}

// tick decrements once unless paused. It returns false when the run is over.
func (e *Engine) tick(gen uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if gen != e.gen || !e.running || e.remaining <= 0 {
		return false
	}
	if !e.paused {
		e.remaining--
		e.notify(e.remaining)
	}
	return true
}

// finish moves an exhausted run to Completed and reports whether the alert is due.
func (e *Engine) finish(gen uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if gen != e.gen || !e.running || e.remaining > 0 {
		return false
	}
	e.running, e.paused, e.completed = false, false, true
	e.notify(0)
	return true
}

func (e *Engine) fireAlert() {
	sink := e.sink
	if sink == nil {
		l := e.logger
		if l == nil {
			l = log.Default()
		}
		sink = alert.TextSink{Out: l.Writer()}
	}
	util.LogError(e.logger, "completion alert", sink.Alert())
}

func (e *Engine) notify(remaining int) {
	if e.onTick != nil {
		e.onTick(remaining)
	}
}

func (e *Engine) log(n entry) {
	util.Logf(e.logger, n.level, "%s", n.msg)
}
