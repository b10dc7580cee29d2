package booking

import (
	"time"

	"github.com/Michaelhumble/emviapp-final-sub011/internal/models"
)

// HourWindow is the visible slot range of the calendar, inclusive on
// both ends. The default 8-20 renders 13 hourly slots; bookings outside
// it exist but are not placed on the grid.
type HourWindow struct {
	Open  int
	Close int
}

func DefaultHourWindow() HourWindow {
	return HourWindow{Open: 8, Close: 20}
}

func (w HourWindow) Hours() []int {
	if w.Close < w.Open {
		return nil
	}
	hours := make([]int, 0, w.Close-w.Open+1)
	for h := w.Open; h <= w.Close; h++ {
		hours = append(hours, h)
	}
	return hours
}

// BookingsForHour returns the bookings whose start time falls in hour
// `hour` of calendar day `day`, preserving input order. Bookings with
// no usable start time are skipped.
func BookingsForHour(day time.Time, hour int, bookings []models.Booking) []models.Booking {
	var out []models.Booking
	for _, b := range bookings {
		if b.StartTime.IsZero() {
			continue
		}
		if !SameDay(b.StartTime, day) {
			continue
		}
		if b.StartTime.Hour() != hour {
			continue
		}
		out = append(out, b)
	}
	return out
}

// WeekDates returns the 7 consecutive calendar dates of the week
// containing anchor, starting on WeekStart.
func WeekDates(anchor time.Time) []time.Time {
	monday := StartOfWeek(anchor)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}
	return days
}

type Cell struct {
	Hour      int              `json:"hour"`
	Bookings  []models.Booking `json:"bookings"`
	Available bool             `json:"available"`
}

type DayGrid struct {
	Date  time.Time `json:"date"`
	Cells []Cell    `json:"cells"`

	// Empty is true when the supplied booking collection holds nothing
	// at all, letting views show a single empty state rather than a
	// blank grid.
	Empty bool `json:"empty"`
}

type WeekDay struct {
	Date  time.Time `json:"date"`
	Cells []Cell    `json:"cells"`
}

type WeekGrid struct {
	Days  []WeekDay `json:"days"`
	Empty bool      `json:"empty"`
}

func buildCells(day time.Time, bookings []models.Booking, records []models.Availability, window HourWindow) []Cell {
	hours := window.Hours()
	cells := make([]Cell, 0, len(hours))
	for _, h := range hours {
		cells = append(cells, Cell{
			Hour:      h,
			Bookings:  BookingsForHour(day, h, bookings),
			Available: IsHourAvailable(day, h, records),
		})
	}
	return cells
}

func BuildDayGrid(day time.Time, bookings []models.Booking, records []models.Availability, window HourWindow) DayGrid {
	return DayGrid{
		Date:  StartOfDay(day),
		Cells: buildCells(day, bookings, records, window),
		Empty: len(bookings) == 0,
	}
}

func BuildWeekGrid(anchor time.Time, bookings []models.Booking, records []models.Availability, window HourWindow) WeekGrid {
	dates := WeekDates(anchor)
	days := make([]WeekDay, 0, len(dates))
	for _, d := range dates {
		days = append(days, WeekDay{
			Date:  d,
			Cells: buildCells(d, bookings, records, window),
		})
	}
	return WeekGrid{
		Days:  days,
		Empty: len(bookings) == 0,
	}
}
