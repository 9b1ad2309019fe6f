package seats

import (
	"github.com/gin-gonic/gin"

	"eventbuka/internal/shared/config"
	"eventbuka/internal/shared/middleware"
)

func SetupSeatRoutes(router *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	// Public seat browsing and pricing
	public := router.Group("/events/:id")
	{
		public.GET("/seatmap", controller.GetSeatMap)
		public.POST("/seats/quote", controller.QuoteSeats)
	}

	// Organizer seat map management
	organizer := router.Group("/organizer/events/:id/seats")
	organizer.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireOrganizerOrAdmin())
	{
		organizer.POST("", controller.GenerateSeats)
	}
}
