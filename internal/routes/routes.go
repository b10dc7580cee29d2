package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Michaelhumble/emviapp-final-sub011/internal/audit"
	"github.com/Michaelhumble/emviapp-final-sub011/internal/config"
	domain "github.com/Michaelhumble/emviapp-final-sub011/internal/domain/booking"
	"github.com/Michaelhumble/emviapp-final-sub011/internal/handlers"
	"github.com/Michaelhumble/emviapp-final-sub011/internal/infra/cache"
	infraRepo "github.com/Michaelhumble/emviapp-final-sub011/internal/infra/repository"
	"github.com/Michaelhumble/emviapp-final-sub011/internal/middleware"
	ucBooking "github.com/Michaelhumble/emviapp-final-sub011/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	availabilityCache := cache.NewAvailabilityCache(cfg.RedisAddr)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	hourWindow := domain.HourWindow{
		Open:  cfg.OpenHour,
		Close: cfg.CloseHour,
	}

	// ======================================================
	// USE CASES
	// ======================================================
	dayGridUC := ucBooking.NewGetDayGrid(bookingRepo, hourWindow)
	weekGridUC := ucBooking.NewGetWeekGrid(bookingRepo, hourWindow)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	availabilityHandler := handlers.NewAvailabilityHandler(
		bookingRepo,
		auditDispatcher,
		availabilityCache,
	)
	calendarHandler := handlers.NewCalendarHandler(dayGridUC, weekGridUC)
	bookingHandler := handlers.NewBookingHandler(listBookingsUC)
	serviceHandler := handlers.NewServiceHandler(bookingRepo)
	publicHandler := handlers.NewPublicHandler(bookingRepo, availabilityCache, hourWindow)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
		}

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me/availability", availabilityHandler.List)
			secured.POST("/me/availability", availabilityHandler.Create)
			secured.PATCH("/me/availability/:id", availabilityHandler.Update)
			secured.DELETE("/me/availability/:id", availabilityHandler.Delete)

			secured.GET("/me/calendar", calendarHandler.Get)
			secured.GET("/me/bookings", bookingHandler.List)
			secured.GET("/me/services", serviceHandler.List)
		}
	}
}
