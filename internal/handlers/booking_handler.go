package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/Michaelhumble/emviapp-final-sub011/internal/domain/booking"
	"github.com/Michaelhumble/emviapp-final-sub011/internal/httperr"
	"github.com/Michaelhumble/emviapp-final-sub011/internal/httpresp"
	"github.com/Michaelhumble/emviapp-final-sub011/internal/middleware"
	ucBooking "github.com/Michaelhumble/emviapp-final-sub011/internal/usecase/booking"
)

type BookingHandler struct {
	listUC *ucBooking.ListBookings
}

func NewBookingHandler(listUC *ucBooking.ListBookings) *BookingHandler {
	return &BookingHandler{listUC: listUC}
}

// filterFromQuery builds the filter state for the list view. This is
// the one place that keeps the preset and the custom range consistent:
// an explicit from/to pair forces the custom preset, and any named
// preset wins over stray range params.
func filterFromQuery(c *gin.Context) domain.FilterState {
	filters := domain.FilterState{
		Status:      domain.StatusAll,
		DateFilter:  domain.ParsePreset(c.Query("date_filter")),
		ServiceType: c.Query("service_type"),
		ClientType:  c.Query("client_type"),
		Search:      c.Query("q"),
	}

	if raw := strings.TrimSpace(c.Query("status")); raw != "" && !strings.EqualFold(raw, "all") {
		filters.Status = domain.ParseStatus(raw)
	}

	if filters.DateFilter == domain.PresetAll || filters.DateFilter == domain.PresetCustom {
		var rng domain.DateRange
		if from, err := time.ParseInLocation("2006-01-02", c.Query("from"), time.Local); err == nil {
			rng.From = &from
		}
		if to, err := time.ParseInLocation("2006-01-02", c.Query("to"), time.Local); err == nil {
			rng.To = &to
		}
		if !rng.Unbounded() {
			filters.DateFilter = domain.PresetCustom
			filters.DateRange = rng
		}
	}

	return filters
}

func (h *BookingHandler) List(c *gin.Context) {
	artistID := c.MustGet(middleware.ContextUserID).(uint)

	bookings, err := h.listUC.Execute(
		c.Request.Context(),
		artistID,
		filterFromQuery(c),
		time.Now(),
	)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not load bookings.")
		return
	}

	httpresp.List(c, bookings)
}
