package booking

import (
	"context"
	"time"

	"github.com/Michaelhumble/emviapp-final-sub011/internal/models"
)

type Repository interface {
	// -------- Salon --------
	GetSalonBySlug(
		ctx context.Context,
		slug string,
	) (*models.Salon, error)

	ListServices(
		ctx context.Context,
		salonID uint,
	) ([]models.SalonService, error)

	// -------- Bookings (snapshot reads) --------
	ListBookingsForArtist(
		ctx context.Context,
		artistID uint,
	) ([]models.Booking, error)

	ListBookingsForPeriod(
		ctx context.Context,
		artistID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	// -------- Availability --------
	ListAvailability(
		ctx context.Context,
		artistID uint,
	) ([]models.Availability, error)

	CreateAvailability(
		ctx context.Context,
		record *models.Availability,
	) error

	UpdateAvailability(
		ctx context.Context,
		id uint,
		artistID uint,
		startTime string,
		endTime string,
	) (*models.Availability, error)

	DeleteAvailability(
		ctx context.Context,
		id uint,
		artistID uint,
	) error
}
