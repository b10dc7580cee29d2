package booking

import (
	"strings"
	"time"

	"github.com/Michaelhumble/emviapp-final-sub011/internal/models"
)

const FilterAll = "all"

// FilterState is the full filter selection of a booking list view.
// The pipeline tolerates any combination, including contradictory
// ones; keeping DateFilter and DateRange consistent is the job of
// whatever mutates this struct, not of FilterBookings.
type FilterState struct {
	Status      Status
	DateFilter  Preset
	DateRange   DateRange // only meaningful when DateFilter is custom
	ServiceType string
	ClientType  string
	Search      string

	// ServiceTypes is the selectable catalog, supplied externally for
	// the view; the pipeline itself never reads it.
	ServiceTypes []string
}

// FilterBookings applies every active predicate as a logical AND.
// Pure and total: inputs are never mutated and no field combination
// panics. Missing fields fail their predicate instead of erroring.
func FilterBookings(bookings []models.Booking, filters FilterState, now time.Time) []models.Booking {
	rng := ResolveDateRange(filters.DateFilter, now, filters.DateRange)

	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if !matchStatus(b, filters.Status) {
			continue
		}
		if !matchDateRange(b, rng) {
			continue
		}
		if !matchExact(filters.ServiceType, b.ServiceName) {
			continue
		}
		if !matchExact(filters.ClientType, b.ClientType) {
			continue
		}
		if !matchSearch(b, filters.Search) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func matchStatus(b models.Booking, want Status) bool {
	if want == "" || want == StatusAll {
		return true
	}
	return ParseStatus(b.Status) == want
}

// EffectiveDate is the date a booking counts under for range filtering:
// start_time when present, otherwise the legacy date_requested string.
func EffectiveDate(b models.Booking) (time.Time, bool) {
	if !b.StartTime.IsZero() {
		return b.StartTime, true
	}
	if b.DateRequested != "" {
		if t, err := time.Parse("2006-01-02", b.DateRequested); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func matchDateRange(b models.Booking, rng DateRange) bool {
	if rng.Unbounded() {
		return true
	}
	date, ok := EffectiveDate(b)
	if !ok {
		return false
	}
	return rng.ContainsDate(date)
}

func matchExact(want, have string) bool {
	if want == "" || want == FilterAll {
		return true
	}
	return want == have
}

func matchSearch(b models.Booking, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(b.CustomerName), q) ||
		strings.Contains(strings.ToLower(b.ServiceName), q)
}
