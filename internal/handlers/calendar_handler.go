package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/Michaelhumble/emviapp-final-sub011/internal/domain/booking"
	"github.com/Michaelhumble/emviapp-final-sub011/internal/httperr"
	"github.com/Michaelhumble/emviapp-final-sub011/internal/httpresp"
	"github.com/Michaelhumble/emviapp-final-sub011/internal/middleware"
	ucBooking "github.com/Michaelhumble/emviapp-final-sub011/internal/usecase/booking"
)

type CalendarHandler struct {
	dayGridUC  *ucBooking.GetDayGrid
	weekGridUC *ucBooking.GetWeekGrid
}

func NewCalendarHandler(
	dayGridUC *ucBooking.GetDayGrid,
	weekGridUC *ucBooking.GetWeekGrid,
) *CalendarHandler {
	return &CalendarHandler{
		dayGridUC:  dayGridUC,
		weekGridUC: weekGridUC,
	}
}

// Get serves the grid the calendar views render from: one column of
// hourly cells in day mode, 7 columns in week mode. The anchor date
// defaults to today; the client's view controller owns navigation.
func (h *CalendarHandler) Get(c *gin.Context) {
	artistID := c.MustGet(middleware.ContextUserID).(uint)

	anchor := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
			return
		}
		anchor = parsed
	}

	switch domain.ViewMode(c.DefaultQuery("view", string(domain.ViewWeek))) {
	case domain.ViewDay:
		grid, err := h.dayGridUC.Execute(c.Request.Context(), artistID, anchor)
		if err != nil {
			httperr.Internal(c, "failed_to_build_calendar", "Could not build calendar.")
			return
		}
		httpresp.OK(c, grid)

	case domain.ViewWeek:
		grid, err := h.weekGridUC.Execute(c.Request.Context(), artistID, anchor)
		if err != nil {
			httperr.Internal(c, "failed_to_build_calendar", "Could not build calendar.")
			return
		}
		httpresp.OK(c, grid)

	default:
		httperr.BadRequest(c, "invalid_view", "View must be day or week.")
	}
}
