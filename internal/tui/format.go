package tui

import (
	"fmt"

	"github.com/akyairhashvil/alarm/internal/config"
)

// FormatClock renders whole seconds as HH:MM:SS. Hours are not wrapped.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// remainingText is what the countdown line shows for a notification value.
func remainingText(remaining int) string {
	if remaining > 0 {
		return config.RemainingPrefix + FormatClock(remaining)
	}
	return config.TimesUpText
}

// fraction returns the share of the countdown still to run, in [0, 1].
func fraction(remaining, duration int) float64 {
	if duration <= 0 || remaining <= 0 {
		return 0
	}
	if remaining >= duration {
		return 1
	}
	return float64(remaining) / float64(duration)
}
