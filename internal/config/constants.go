package config

import "time"

// Countdown cadence.
const (
	TickInterval = time.Second
)

// Completion alert tone.
const (
	BeepCount     = 3
	BeepFrequency = 1000 // Hz
	BeepLength    = 500 * time.Millisecond
)

// Alert modes accepted by the "alert" setting.
const (
	AlertAuto = "auto"
	AlertTone = "tone"
	AlertBell = "bell"
	AlertText = "text"
)

// Application settings.
const (
	AppName              = "alarm"
	EnvPrefix            = "ALARM"
	JournalDSN           = ":memory:"
	DefaultTheme         = "default"
	DefaultActivityLimit = 6
	MaxActivityLimit     = 20
)
