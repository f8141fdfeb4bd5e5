package timer

import "time"

// Clock provides the suspension used between ticks.
// This interface allows tests to step the countdown without waiting.
type Clock interface {
	Sleep(d time.Duration)
}

// SystemClock is the default Clock implementation using the standard library.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
