package booking

import (
	"strconv"
	"strings"
	"time"
)

// WeekStart is the business week convention shared by the date-range
// resolver, the week grid and the calendar controller.
const WeekStart = time.Monday

// ParseClockHour extracts the hour from an "HH:MM" string. Malformed
// input reports ok=false and must be treated as "matches nothing" by
// callers; the original string is never rewritten.
func ParseClockHour(clock string) (int, bool) {
	sep := strings.IndexByte(clock, ':')
	if sep < 0 {
		return 0, false
	}

	h, err := strconv.Atoi(strings.TrimSpace(clock[:sep]))
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	return h, true
}

// HourInWindow reports whether hour falls in [startHour, endHour).
// End-exclusive: a 9-17 window covers hours 9..16.
func HourInWindow(hour, startHour, endHour int) bool {
	return hour >= startHour && hour < endHour
}

// SameDay compares two instants at calendar-date granularity.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// StartOfDay truncates an instant to midnight of its calendar date.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek truncates an instant to midnight of the Monday of its week.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	offset := (int(day.Weekday()) - int(WeekStart) + 7) % 7
	return day.AddDate(0, 0, -offset)
}
