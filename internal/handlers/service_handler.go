package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/Michaelhumble/emviapp-final-sub011/internal/domain/booking"
	"github.com/Michaelhumble/emviapp-final-sub011/internal/httperr"
	"github.com/Michaelhumble/emviapp-final-sub011/internal/httpresp"
	"github.com/Michaelhumble/emviapp-final-sub011/internal/middleware"
)

type ServiceHandler struct {
	repo domain.Repository
}

func NewServiceHandler(repo domain.Repository) *ServiceHandler {
	return &ServiceHandler{repo: repo}
}

// List returns the salon's active service catalog. The booking list
// view uses it to populate the service-type filter choices.
func (h *ServiceHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	services, err := h.repo.ListServices(c.Request.Context(), salonID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not load services.")
		return
	}

	httpresp.List(c, services)
}
