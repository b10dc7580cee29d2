package dto

import "time"

type BookingListDTO struct {
	ID           string     `json:"id"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	Status       string     `json:"status"`
	CustomerName string     `json:"customer_name"`
	ServiceName  string     `json:"service_name"`
	ArtistName   string     `json:"artist_name"`
	Note         string     `json:"note,omitempty"`

	DateRequested string `json:"date_requested,omitempty"`
	TimeRequested string `json:"time_requested,omitempty"`
}
