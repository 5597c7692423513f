package routes

import (
	"net/http"
	"time"

	"carebook/handlers"
	"carebook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterProviderRoutes registers availability and slot endpoints.
func RegisterProviderRoutes(r *gin.Engine, sh *handlers.ScheduleHandler) {
	api := r.Group("/api/providers")
	{
		api.PUT("/:providerID/availability", sh.SetAvailabilityHandler)
		api.GET("/:providerID/availability", sh.GetAvailabilityHandler)
		api.GET("/:providerID/slots", sh.GetSlotsHandler)
	}
}

// RegisterAppointmentRoutes registers the booking ledger endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, ah *handlers.AppointmentHandler) {
	api := r.Group("/api/appointments")
	{
		api.POST("", ah.CreateAppointmentHandler)
		api.GET("/:id", ah.GetAppointmentHandler)
		api.PATCH("/:id", ah.PatchAppointmentHandler)
		api.POST("/:id/cancel", ah.CancelAppointmentHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, sh *handlers.ScheduleHandler, ah *handlers.AppointmentHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterProviderRoutes(r, sh)
	RegisterAppointmentRoutes(r, ah)
	RegisterHealthRoute(r)
}
