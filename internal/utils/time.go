package utils

import (
	"strings"
	"time"
)

const layoutClock = "15:04"

// DateOnly trims a DATE/DATETIME string ("2025-01-01T00:00:00Z") to YYYY-MM-DD.
func DateOnly(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, "T "); i > 0 {
		return s[:i]
	}
	return s
}

// ClockHM trims a TIME string ("08:30:00") to HH:MM.
func ClockHM(s string) string {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("15:04:05", s); err == nil {
		return t.Format(layoutClock)
	}
	if len(s) > 5 && s[2] == ':' {
		return s[:5]
	}
	return s
}
