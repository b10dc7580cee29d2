package models

import "time"

// Availability is one recurring weekly open window for an artist.
// An artist may hold several rows for the same weekday to model
// disjoint shifts (9-12 and 14-18).
type Availability struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ArtistID uint `json:"artist_id"`

	DayOfWeek string `gorm:"size:10;not null" json:"day_of_week"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
