package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/Michaelhumble/emviapp-final-sub011/internal/domain/booking"
	"github.com/Michaelhumble/emviapp-final-sub011/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Salon
// --------------------------------------------------

func (r *BookingGormRepository) GetSalonBySlug(
	ctx context.Context,
	slug string,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&salon).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

func (r *BookingGormRepository) ListServices(
	ctx context.Context,
	salonID uint,
) ([]models.SalonService, error) {

	var services []models.SalonService
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND active = ?", salonID, true).
		Order("name ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

// normalizeStartTime backfills start_time from the legacy
// date_requested/time_requested pair for rows written before the
// timestamp column existed. start_time stays canonical; the pair is
// left untouched for table views that still display it.
func normalizeStartTime(b *models.Booking) {
	if !b.StartTime.IsZero() || b.DateRequested == "" {
		return
	}

	if b.TimeRequested != "" {
		if t, err := time.ParseInLocation(
			"2006-01-02 15:04",
			b.DateRequested+" "+b.TimeRequested,
			time.Local,
		); err == nil {
			b.StartTime = t
			return
		}
	}

	if t, err := time.ParseInLocation("2006-01-02", b.DateRequested, time.Local); err == nil {
		b.StartTime = t
	}
}

func (r *BookingGormRepository) ListBookingsForArtist(
	ctx context.Context,
	artistID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	for i := range bookings {
		normalizeStartTime(&bookings[i])
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForPeriod(
	ctx context.Context,
	artistID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where(
			"artist_id = ? AND start_time >= ? AND start_time < ?",
			artistID, start, end,
		).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	for i := range bookings {
		normalizeStartTime(&bookings[i])
	}

	return bookings, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListAvailability(
	ctx context.Context,
	artistID uint,
) ([]models.Availability, error) {

	var records []models.Availability
	if err := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("day_of_week ASC, start_time ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *BookingGormRepository) CreateAvailability(
	ctx context.Context,
	record *models.Availability,
) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *BookingGormRepository) UpdateAvailability(
	ctx context.Context,
	id uint,
	artistID uint,
	startTime string,
	endTime string,
) (*models.Availability, error) {

	var record models.Availability
	if err := r.db.WithContext(ctx).
		Where("id = ? AND artist_id = ?", id, artistID).
		First(&record).Error; err != nil {
		return nil, err
	}

	record.StartTime = startTime
	record.EndTime = endTime

	if err := r.db.WithContext(ctx).Save(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *BookingGormRepository) DeleteAvailability(
	ctx context.Context,
	id uint,
	artistID uint,
) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND artist_id = ?", id, artistID).
		Delete(&models.Availability{}).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
