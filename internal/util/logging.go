// Package util provides common utilities including leveled logging helpers,
// config paths and small numeric helpers.
package util

import (
	"fmt"
	"log"
	"strings"

	"github.com/akyairhashvil/alarm/internal/models"
)

// Logf writes one "LEVEL message" line to l, or to the standard logger if l is nil.
func Logf(l *log.Logger, level models.Level, format string, args ...any) {
	if l == nil {
		l = log.Default()
	}
	l.Printf("%s %s", level, fmt.Sprintf(format, args...))
}

// LogError logs an error with context if it is non-nil.
func LogError(l *log.Logger, context string, err error) {
	if err != nil {
		Logf(l, models.LevelError, "%s: %v", context, err)
	}
}

// SplitLevel separates a logged line into its level and message. Lines
// without a recognised level token are treated as INFO.
func SplitLevel(line string) (models.Level, string) {
	line = strings.TrimSpace(line)
	token, rest, found := strings.Cut(line, " ")
	if lvl, ok := models.ParseLevel(token); ok {
		if !found {
			return lvl, ""
		}
		return lvl, strings.TrimSpace(rest)
	}
	return models.LevelInfo, line
}
