package tickets

import (
	"eventbuka/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupTicketRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes - anyone can browse an event's ticket tiers
	public := router.Group("/events/:id/tickets")
	{
		public.GET("", controller.GetEventTicketTypes)
	}

	// Organizer routes - manage ticket tiers for own events
	organizer := router.Group("/organizer/events/:id/tickets")
	organizer.Use(middleware.JWTAuth(), middleware.RequireOrganizerOrAdmin())
	{
		organizer.POST("", controller.CreateTicketType)
		organizer.GET("/:ticketTypeId", controller.GetTicketType)
		organizer.PUT("/:ticketTypeId", controller.UpdateTicketType)
		organizer.DELETE("/:ticketTypeId", controller.DeleteTicketType)
	}
}
