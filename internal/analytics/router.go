package analytics

import (
	"github.com/gin-gonic/gin"

	"eventbuka/internal/shared/config"
	"eventbuka/internal/shared/middleware"
)

func SetupAnalyticsRoutes(router *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	organizer := router.Group("/organizer/events")
	organizer.Use(middleware.JWTAuthWithConfig(cfg))
	organizer.Use(middleware.RequireOrganizerOrAdmin())
	{
		organizer.GET("/:id/stats", controller.GetEventStats)
	}

	admin := router.Group("/admin/analytics")
	admin.Use(middleware.JWTAuthWithConfig(cfg))
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/overview", controller.GetPlatformOverview)
		admin.GET("/bookings/daily", controller.GetDailyBookingStats)
	}
}
