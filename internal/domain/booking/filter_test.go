package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Michaelhumble/emviapp-final-sub011/internal/models"
)

var filterNow = datetime(2026, 6, 3, 12, 0)

func TestFilterBookings_StatusAndSearchCompose(t *testing.T) {
	bookings := []models.Booking{
		{ID: "1", Status: "pending", CustomerName: "Alice"},
		{ID: "2", Status: "accepted", CustomerName: "Bob"},
	}

	got := FilterBookings(bookings, FilterState{
		Status: StatusPending,
		Search: "a",
	}, filterNow)

	require.Len(t, got, 1)
	assert.Equal(t, "Alice", got[0].CustomerName)
}

func TestFilterBookings_Idempotent(t *testing.T) {
	bookings := []models.Booking{
		{ID: "1", Status: "pending", CustomerName: "Alice", StartTime: datetime(2026, 6, 3, 10, 0)},
		{ID: "2", Status: "accepted", CustomerName: "Bob", StartTime: datetime(2026, 6, 4, 10, 0)},
		{ID: "3", Status: "declined", CustomerName: "Carol"},
	}
	filters := FilterState{
		Status:     StatusAll,
		DateFilter: PresetThisWeek,
	}

	once := FilterBookings(bookings, filters, filterNow)
	twice := FilterBookings(once, filters, filterNow)
	assert.Equal(t, once, twice)
}

func TestFilterBookings_EmptyInput(t *testing.T) {
	got := FilterBookings(nil, FilterState{Status: StatusPending, Search: "x"}, filterNow)
	assert.Empty(t, got)

	got = FilterBookings([]models.Booking{}, FilterState{}, filterNow)
	assert.Empty(t, got)
}

func TestFilterBookings_ZeroFilterPassesEverything(t *testing.T) {
	bookings := []models.Booking{
		{ID: "1"},
		{ID: "2", Status: "whatever"},
	}

	got := FilterBookings(bookings, FilterState{}, filterNow)
	assert.Equal(t, bookings, got)
}

func TestFilterBookings_StatusAliasAndUnknown(t *testing.T) {
	bookings := []models.Booking{
		{ID: "1", Status: "confirmed"},
		{ID: "2", Status: "Accepted"},
		{ID: "3", Status: "???"},
		{ID: "4"},
	}

	accepted := FilterBookings(bookings, FilterState{Status: StatusAccepted}, filterNow)
	require.Len(t, accepted, 2)

	// unknown and missing statuses are a real state, selectable as such
	unspecified := FilterBookings(bookings, FilterState{Status: StatusUnspecified}, filterNow)
	require.Len(t, unspecified, 2)
	assert.Equal(t, "3", unspecified[0].ID)
	assert.Equal(t, "4", unspecified[1].ID)
}

func TestFilterBookings_DateRangePreset(t *testing.T) {
	bookings := []models.Booking{
		{ID: "today", StartTime: datetime(2026, 6, 3, 18, 0)},
		{ID: "tomorrow", StartTime: datetime(2026, 6, 4, 9, 0)},
		{ID: "next-month", StartTime: datetime(2026, 7, 1, 9, 0)},
		{ID: "dateless"},
	}

	got := FilterBookings(bookings, FilterState{DateFilter: PresetToday}, filterNow)
	require.Len(t, got, 1)
	assert.Equal(t, "today", got[0].ID)

	got = FilterBookings(bookings, FilterState{DateFilter: PresetThisMonth}, filterNow)
	require.Len(t, got, 2)
}

func TestFilterBookings_LegacyDateRequestedFallback(t *testing.T) {
	bookings := []models.Booking{
		{ID: "legacy", DateRequested: "2026-06-03", TimeRequested: "2:00 PM"},
		{ID: "legacy-bad", DateRequested: "June 3rd"},
	}

	got := FilterBookings(bookings, FilterState{DateFilter: PresetToday}, filterNow)
	require.Len(t, got, 1)
	assert.Equal(t, "legacy", got[0].ID)
}

func TestFilterBookings_InvertedCustomRangeMatchesNothing(t *testing.T) {
	from := datetime(2026, 6, 10, 0, 0)
	to := datetime(2026, 6, 1, 0, 0)
	bookings := []models.Booking{
		{ID: "1", StartTime: datetime(2026, 6, 5, 10, 0)},
		{ID: "2", StartTime: datetime(2026, 6, 3, 10, 0)},
	}

	got := FilterBookings(bookings, FilterState{
		DateFilter: PresetCustom,
		DateRange:  DateRange{From: &from, To: &to},
	}, filterNow)

	assert.Empty(t, got)
}

func TestFilterBookings_ServiceAndClientType(t *testing.T) {
	bookings := []models.Booking{
		{ID: "1", ServiceName: "Gel Manicure", ClientType: "walk-in"},
		{ID: "2", ServiceName: "Pedicure", ClientType: "regular"},
		{ID: "3", ServiceName: "gel manicure", ClientType: "regular"},
	}

	// service type matching is case-sensitive by contract
	got := FilterBookings(bookings, FilterState{ServiceType: "Gel Manicure"}, filterNow)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	got = FilterBookings(bookings, FilterState{ClientType: "regular"}, filterNow)
	require.Len(t, got, 2)

	got = FilterBookings(bookings, FilterState{ServiceType: FilterAll, ClientType: FilterAll}, filterNow)
	assert.Len(t, got, 3)
}

func TestFilterBookings_SearchCaseInsensitive(t *testing.T) {
	bookings := []models.Booking{
		{ID: "1", CustomerName: "ALICE"},
		{ID: "2", ServiceName: "Balayage"},
		{ID: "3", Note: "alice asked for Bob"}, // note is not searched
	}

	got := FilterBookings(bookings, FilterState{Search: "ali"}, filterNow)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	got = FilterBookings(bookings, FilterState{Search: "BALA"}, filterNow)
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestFilterBookings_DoesNotMutateInput(t *testing.T) {
	bookings := []models.Booking{
		{ID: "1", Status: "pending"},
		{ID: "2", Status: "accepted"},
	}
	snapshot := make([]models.Booking, len(bookings))
	copy(snapshot, bookings)

	FilterBookings(bookings, FilterState{Status: StatusPending}, filterNow)
	assert.Equal(t, snapshot, bookings)
}

func TestFilterBookings_ContradictoryStateDoesNotPanic(t *testing.T) {
	from := datetime(2026, 6, 1, 0, 0)
	bookings := []models.Booking{{ID: "1", StartTime: datetime(2026, 6, 3, 10, 0)}}

	// named preset plus a stray custom range: the preset wins, the
	// range is ignored, nothing blows up
	assert.NotPanics(t, func() {
		got := FilterBookings(bookings, FilterState{
			DateFilter: PresetToday,
			DateRange:  DateRange{From: &from},
		}, filterNow)
		assert.Len(t, got, 1)
	})
}

func TestEffectiveDate(t *testing.T) {
	withStart := models.Booking{StartTime: datetime(2026, 6, 3, 10, 0), DateRequested: "2026-01-01"}
	d, ok := EffectiveDate(withStart)
	require.True(t, ok)
	assert.Equal(t, datetime(2026, 6, 3, 10, 0), d) // start_time is canonical

	legacy := models.Booking{DateRequested: "2026-06-05"}
	d, ok = EffectiveDate(legacy)
	require.True(t, ok)
	assert.True(t, SameDay(d, datetime(2026, 6, 5, 0, 0)))

	_, ok = EffectiveDate(models.Booking{})
	assert.False(t, ok)
}
