package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/Michaelhumble/emviapp-final-sub011/internal/domain/booking"
	"github.com/Michaelhumble/emviapp-final-sub011/internal/models"
)

type fakeRepo struct {
	bookings []models.Booking
	records  []models.Availability
	err      error
}

func (f *fakeRepo) GetSalonBySlug(ctx context.Context, slug string) (*models.Salon, error) {
	return &models.Salon{Slug: slug}, f.err
}

func (f *fakeRepo) ListServices(ctx context.Context, salonID uint) ([]models.SalonService, error) {
	return nil, f.err
}

func (f *fakeRepo) ListBookingsForArtist(ctx context.Context, artistID uint) ([]models.Booking, error) {
	return f.bookings, f.err
}

func (f *fakeRepo) ListBookingsForPeriod(ctx context.Context, artistID uint, start, end time.Time) ([]models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Booking
	for _, b := range f.bookings {
		if !b.StartTime.Before(start) && b.StartTime.Before(end) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAvailability(ctx context.Context, artistID uint) ([]models.Availability, error) {
	return f.records, f.err
}

func (f *fakeRepo) CreateAvailability(ctx context.Context, record *models.Availability) error {
	f.records = append(f.records, *record)
	return f.err
}

func (f *fakeRepo) UpdateAvailability(ctx context.Context, id, artistID uint, startTime, endTime string) (*models.Availability, error) {
	return nil, errors.New("not found")
}

func (f *fakeRepo) DeleteAvailability(ctx context.Context, id, artistID uint) error {
	return f.err
}

var _ domain.Repository = (*fakeRepo)(nil)

func date(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestGetDayGrid(t *testing.T) {
	repo := &fakeRepo{
		bookings: []models.Booking{
			{ID: "in", StartTime: date(2026, 6, 1, 10)},
			{ID: "next-day", StartTime: date(2026, 6, 2, 10)},
		},
		records: []models.Availability{
			{DayOfWeek: "monday", StartTime: "09:00", EndTime: "12:00"},
		},
	}

	uc := NewGetDayGrid(repo, domain.DefaultHourWindow())
	grid, err := uc.Execute(context.Background(), 1, date(2026, 6, 1, 15))
	require.NoError(t, err)

	assert.False(t, grid.Empty)
	require.Len(t, grid.Cells, 13)

	for _, cell := range grid.Cells {
		if cell.Hour == 10 {
			require.Len(t, cell.Bookings, 1)
			assert.Equal(t, "in", cell.Bookings[0].ID)
			assert.True(t, cell.Available)
		} else {
			assert.Empty(t, cell.Bookings)
		}
	}
}

func TestGetWeekGrid_FetchesWholeWeek(t *testing.T) {
	repo := &fakeRepo{
		bookings: []models.Booking{
			{ID: "mon", StartTime: date(2026, 6, 1, 9)},
			{ID: "sun", StartTime: date(2026, 6, 7, 19)},
			{ID: "next-mon", StartTime: date(2026, 6, 8, 9)},
		},
	}

	uc := NewGetWeekGrid(repo, domain.DefaultHourWindow())
	grid, err := uc.Execute(context.Background(), 1, date(2026, 6, 3, 12))
	require.NoError(t, err)

	require.Len(t, grid.Days, 7)

	var placed []string
	for _, day := range grid.Days {
		for _, cell := range day.Cells {
			for _, b := range cell.Bookings {
				placed = append(placed, b.ID)
			}
		}
	}
	assert.ElementsMatch(t, []string{"mon", "sun"}, placed)
}

func TestGetWeekGrid_RepoError(t *testing.T) {
	repo := &fakeRepo{err: errors.New("db down")}

	uc := NewGetWeekGrid(repo, domain.DefaultHourWindow())
	_, err := uc.Execute(context.Background(), 1, date(2026, 6, 3, 12))
	assert.Error(t, err)
}

func TestListBookings_AppliesFilters(t *testing.T) {
	repo := &fakeRepo{
		bookings: []models.Booking{
			{ID: "1", Status: "pending", CustomerName: "Alice", StartTime: date(2026, 6, 3, 10)},
			{ID: "2", Status: "confirmed", CustomerName: "Bob", StartTime: date(2026, 6, 3, 11)},
			{ID: "3", Status: "pending", CustomerName: "Amara", StartTime: date(2026, 7, 1, 10)},
		},
	}

	uc := NewListBookings(repo)
	now := date(2026, 6, 3, 12)

	out, err := uc.Execute(context.Background(), 1, domain.FilterState{
		Status:     domain.StatusPending,
		DateFilter: domain.PresetToday,
	}, now)
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.Equal(t, "1", out[0].ID)
	assert.Equal(t, "pending", out[0].Status)
	assert.Equal(t, "Alice", out[0].CustomerName)
}

func TestListBookings_NormalizesStatusAlias(t *testing.T) {
	repo := &fakeRepo{
		bookings: []models.Booking{
			{ID: "2", Status: "confirmed", CustomerName: "Bob"},
		},
	}

	uc := NewListBookings(repo)
	out, err := uc.Execute(context.Background(), 1, domain.FilterState{}, date(2026, 6, 3, 12))
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.Equal(t, "accepted", out[0].Status)
}
