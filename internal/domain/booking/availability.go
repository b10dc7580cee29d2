package booking

import (
	"strings"
	"time"

	"github.com/Michaelhumble/emviapp-final-sub011/internal/models"
)

// IsHourAvailable reports whether an artist is open for booking at the
// given hour of the given day. Records for the day's weekday are OR'd
// together, so disjoint shifts stored as separate rows behave as a
// union. An empty record set means closed, never open by default.
func IsHourAvailable(day time.Time, hour int, records []models.Availability) bool {
	dayName := day.Weekday().String()

	for _, r := range records {
		if !strings.EqualFold(r.DayOfWeek, dayName) {
			continue
		}

		startHour, ok := ParseClockHour(r.StartTime)
		if !ok {
			continue
		}
		endHour, ok := ParseClockHour(r.EndTime)
		if !ok {
			continue
		}

		if HourInWindow(hour, startHour, endHour) {
			return true
		}
	}

	return false
}
