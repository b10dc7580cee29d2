package booking

import (
	"context"
	"time"

	domain "github.com/Michaelhumble/emviapp-final-sub011/internal/domain/booking"
)

type GetDayGrid struct {
	repo   domain.Repository
	window domain.HourWindow
}

func NewGetDayGrid(repo domain.Repository, window domain.HourWindow) *GetDayGrid {
	return &GetDayGrid{repo: repo, window: window}
}

func (uc *GetDayGrid) Execute(
	ctx context.Context,
	artistID uint,
	date time.Time,
) (domain.DayGrid, error) {

	start := domain.StartOfDay(date)
	end := start.Add(24 * time.Hour)

	bookings, err := uc.repo.ListBookingsForPeriod(ctx, artistID, start, end)
	if err != nil {
		return domain.DayGrid{}, err
	}

	records, err := uc.repo.ListAvailability(ctx, artistID)
	if err != nil {
		return domain.DayGrid{}, err
	}

	return domain.BuildDayGrid(start, bookings, records, uc.window), nil
}
