package booking

import (
	"context"
	"time"

	domain "github.com/Michaelhumble/emviapp-final-sub011/internal/domain/booking"
	"github.com/Michaelhumble/emviapp-final-sub011/internal/dto"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute fetches the artist's booking snapshot and runs it through the
// filter pipeline. "now" is threaded in from the call site so relative
// presets stay deterministic.
func (uc *ListBookings) Execute(
	ctx context.Context,
	artistID uint,
	filters domain.FilterState,
	now time.Time,
) ([]dto.BookingListDTO, error) {

	bookings, err := uc.repo.ListBookingsForArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}

	filtered := domain.FilterBookings(bookings, filters, now)

	out := make([]dto.BookingListDTO, 0, len(filtered))
	for _, b := range filtered {
		out = append(out, dto.BookingListDTO{
			ID:            b.ID,
			StartTime:     b.StartTime,
			EndTime:       b.EndTime,
			Status:        string(domain.ParseStatus(b.Status)),
			CustomerName:  b.CustomerName,
			ServiceName:   b.ServiceName,
			ArtistName:    b.ArtistName,
			Note:          b.Note,
			DateRequested: b.DateRequested,
			TimeRequested: b.TimeRequested,
		})
	}

	return out, nil
}
