package validators

import (
	"strings"
	"time"
)

// IsValidClock reports whether a string is a well-formed 24h "HH:MM".
// The availability resolver tolerates malformed values, but mutations
// reject them up front so bad rows never get written.
func IsValidClock(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

var weekdayNames = map[string]bool{
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
	"saturday":  true,
	"sunday":    true,
}

func IsValidWeekday(s string) bool {
	return weekdayNames[strings.ToLower(strings.TrimSpace(s))]
}
