package booking

import (
	"context"
	"time"

	domain "github.com/Michaelhumble/emviapp-final-sub011/internal/domain/booking"
)

type GetWeekGrid struct {
	repo   domain.Repository
	window domain.HourWindow
}

func NewGetWeekGrid(repo domain.Repository, window domain.HourWindow) *GetWeekGrid {
	return &GetWeekGrid{repo: repo, window: window}
}

func (uc *GetWeekGrid) Execute(
	ctx context.Context,
	artistID uint,
	anchor time.Time,
) (domain.WeekGrid, error) {

	dates := domain.WeekDates(anchor)
	start := dates[0]
	end := dates[len(dates)-1].Add(24 * time.Hour)

	bookings, err := uc.repo.ListBookingsForPeriod(ctx, artistID, start, end)
	if err != nil {
		return domain.WeekGrid{}, err
	}

	records, err := uc.repo.ListAvailability(ctx, artistID)
	if err != nil {
		return domain.WeekGrid{}, err
	}

	return domain.BuildWeekGrid(anchor, bookings, records, uc.window), nil
}
