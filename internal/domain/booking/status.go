package booking

import "strings"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusAll         Status = "all"
	StatusPending     Status = "pending"
	StatusAccepted    Status = "accepted"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
	StatusDeclined    Status = "declined"
	StatusUnspecified Status = "unspecified"
)

// ParseStatus maps a raw status string onto the closed Status set.
// "confirmed" is an alias for accepted kept for older booking rows.
// Anything unrecognized is unspecified, which is a real state and
// never an error.
func ParseStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending":
		return StatusPending
	case "accepted", "confirmed":
		return StatusAccepted
	case "completed":
		return StatusCompleted
	case "cancelled", "canceled":
		return StatusCancelled
	case "declined":
		return StatusDeclined
	}
	return StatusUnspecified
}
