package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	SalonID uint  `json:"salon_id"`
	Salon   Salon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"salon"`

	ArtistID uint   `json:"artist_id"`
	Artist   Artist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"artist"`

	ServiceID *uint         `json:"service_id"`
	Service   *SalonService `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service,omitempty"`

	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`

	// Denormalized display fields, filled by the booking-request flow.
	// Any of them may be empty; readers degrade instead of failing.
	CustomerName string `gorm:"size:100" json:"customer_name"`
	ServiceName  string `gorm:"size:100" json:"service_name"`
	ArtistName   string `gorm:"size:100" json:"artist_name"`
	Note         string `gorm:"size:255" json:"note"`

	Status     string `gorm:"size:20;default:'pending'" json:"status"`
	ClientType string `gorm:"size:30" json:"client_type"`

	// Legacy human-entered pair, kept for table views that predate
	// start_time. Display only; start_time is canonical.
	DateRequested string `gorm:"size:10" json:"date_requested"`
	TimeRequested string `gorm:"size:8" json:"time_requested"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
