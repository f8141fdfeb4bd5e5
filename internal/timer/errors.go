package timer

import "errors"

// Invalid transitions. They are logged as warnings and never returned from
// the public Engine methods.
var (
	ErrAlreadyRunning = errors.New("timer is already running")
	ErrNotRunning     = errors.New("timer is not running")
	ErrAlreadyPaused  = errors.New("timer is already paused")
	ErrNotPaused      = errors.New("timer is not paused")
)
