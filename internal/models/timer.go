package models

// TimerState enumerates the lifecycle of a countdown.
type TimerState int

const (
	StateIdle TimerState = iota
	StateRunning
	StatePaused
	StateCompleted
)

func (s TimerState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Active reports whether a countdown is in progress (running or paused).
func (s TimerState) Active() bool {
	return s == StateRunning || s == StatePaused
}
