package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/Michaelhumble/emviapp-final-sub011/internal/domain/booking"
	"github.com/Michaelhumble/emviapp-final-sub011/internal/httperr"
	"github.com/Michaelhumble/emviapp-final-sub011/internal/httpresp"
	"github.com/Michaelhumble/emviapp-final-sub011/internal/infra/cache"
)

type PublicHandler struct {
	repo   domain.Repository
	cache  *cache.AvailabilityCache
	window domain.HourWindow
}

func NewPublicHandler(
	repo domain.Repository,
	availabilityCache *cache.AvailabilityCache,
	window domain.HourWindow,
) *PublicHandler {
	return &PublicHandler{
		repo:   repo,
		cache:  availabilityCache,
		window: window,
	}
}

type openHour struct {
	Hour      int  `json:"hour"`
	Available bool `json:"available"`
}

// Availability serves the booking page: the artist's weekly windows
// and, when a date is given, the per-hour open map for that day.
// Snapshots come from Redis when warm; a cold or broken cache falls
// back to the database.
func (h *PublicHandler) Availability(c *gin.Context) {
	slug := c.Param("slug")

	if _, err := h.repo.GetSalonBySlug(c.Request.Context(), slug); err != nil {
		httperr.NotFound(c, "salon_not_found", "Salon not found.")
		return
	}

	artistID, err := strconv.ParseUint(c.Query("artist_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_artist_id", "Artist id is required.")
		return
	}

	records, hit := h.cache.Get(c.Request.Context(), uint(artistID))
	if !hit {
		records, err = h.repo.ListAvailability(c.Request.Context(), uint(artistID))
		if err != nil {
			httperr.Internal(c, "failed_to_list_availability", "Could not load availability.")
			return
		}
		h.cache.Set(c.Request.Context(), uint(artistID), records)
	}

	resp := gin.H{"records": records}

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
			return
		}

		hours := h.window.Hours()
		open := make([]openHour, 0, len(hours))
		for _, hour := range hours {
			open = append(open, openHour{
				Hour:      hour,
				Available: domain.IsHourAvailable(date, hour, records),
			})
		}
		resp["date"] = date.Format("2006-01-02")
		resp["open_hours"] = open
	}

	httpresp.OK(c, resp)
}
