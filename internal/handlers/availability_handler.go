package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Michaelhumble/emviapp-final-sub011/internal/audit"
	domain "github.com/Michaelhumble/emviapp-final-sub011/internal/domain/booking"
	"github.com/Michaelhumble/emviapp-final-sub011/internal/httperr"
	"github.com/Michaelhumble/emviapp-final-sub011/internal/httpresp"
	"github.com/Michaelhumble/emviapp-final-sub011/internal/infra/cache"
	"github.com/Michaelhumble/emviapp-final-sub011/internal/middleware"
	"github.com/Michaelhumble/emviapp-final-sub011/internal/models"
	"github.com/Michaelhumble/emviapp-final-sub011/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewAvailabilityHandler(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	availabilityCache *cache.AvailabilityCache,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		repo:  repo,
		audit: auditDispatcher,
		cache: availabilityCache,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAvailabilityRequest struct {
	DayOfWeek string `json:"day_of_week" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type UpdateAvailabilityRequest struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

func validateWindow(startTime, endTime string) (code string, ok bool) {
	if !validators.IsValidClock(startTime) || !validators.IsValidClock(endTime) {
		return "invalid_time_format", false
	}

	startHour, _ := domain.ParseClockHour(startTime)
	endHour, _ := domain.ParseClockHour(endTime)
	if startHour >= endHour {
		return "start_after_end", false
	}

	return "", true
}

// ======================================================
// LIST
// ======================================================

func (h *AvailabilityHandler) List(c *gin.Context) {
	artistID := c.MustGet(middleware.ContextUserID).(uint)

	records, err := h.repo.ListAvailability(c.Request.Context(), artistID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_availability", "Could not load availability.")
		return
	}

	httpresp.List(c, records)
}

// ======================================================
// CREATE
// ======================================================

func (h *AvailabilityHandler) Create(c *gin.Context) {
	artistID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid availability payload.")
		return
	}

	if !validators.IsValidWeekday(req.DayOfWeek) {
		httperr.BadRequest(c, "invalid_day_of_week", "Unknown day of week.")
		return
	}

	if code, ok := validateWindow(req.StartTime, req.EndTime); !ok {
		httperr.BadRequest(c, code, "Invalid time window.")
		return
	}

	record := models.Availability{
		ArtistID:  artistID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if err := h.repo.CreateAvailability(c.Request.Context(), &record); err != nil {
		httperr.Internal(c, "failed_to_create_availability", "Could not save availability.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), artistID)

	h.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &artistID,
		Action:   "availability_created",
		Entity:   "availability",
		EntityID: &record.ID,
		Metadata: map[string]any{
			"day_of_week": record.DayOfWeek,
			"start_time":  record.StartTime,
			"end_time":    record.EndTime,
		},
	})

	httpresp.Created(c, record)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AvailabilityHandler) Update(c *gin.Context) {
	artistID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid availability id.")
		return
	}

	var req UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid availability payload.")
		return
	}

	if code, ok := validateWindow(req.StartTime, req.EndTime); !ok {
		httperr.BadRequest(c, code, "Invalid time window.")
		return
	}

	record, err := h.repo.UpdateAvailability(
		c.Request.Context(),
		uint(id),
		artistID,
		req.StartTime,
		req.EndTime,
	)
	if err != nil {
		httperr.NotFound(c, "availability_not_found", "Availability record not found.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), artistID)

	h.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &artistID,
		Action:   "availability_updated",
		Entity:   "availability",
		EntityID: &record.ID,
		Metadata: map[string]any{
			"start_time": record.StartTime,
			"end_time":   record.EndTime,
		},
	})

	httpresp.OK(c, record)
}

// ======================================================
// DELETE
// ======================================================

func (h *AvailabilityHandler) Delete(c *gin.Context) {
	artistID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid availability id.")
		return
	}

	if err := h.repo.DeleteAvailability(c.Request.Context(), uint(id), artistID); err != nil {
		httperr.Internal(c, "failed_to_delete_availability", "Could not delete availability.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), artistID)

	recordID := uint(id)
	h.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &artistID,
		Action:   "availability_deleted",
		Entity:   "availability",
		EntityID: &recordID,
	})

	httpresp.OK(c, gin.H{"status": "ok"})
}
