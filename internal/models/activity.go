package models

import "time"

// Level classifies an activity line.
type Level string

const (
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// ParseLevel maps a level token to a Level. Unknown tokens report false.
func ParseLevel(token string) (Level, bool) {
	switch Level(token) {
	case LevelInfo, LevelWarn, LevelError:
		return Level(token), true
	}
	return "", false
}

// Activity is one operator-visible line recorded during the session.
type Activity struct {
	ID        int64
	Level     Level
	Message   string
	CreatedAt time.Time
}
