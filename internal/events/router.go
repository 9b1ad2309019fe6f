package events

import (
	"github.com/gin-gonic/gin"

	"eventbuka/internal/shared/config"
	"eventbuka/internal/shared/middleware"
)

func SetupEventRoutes(router *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	// Public routes for browsing published events
	publicEvents := router.Group("/events")
	{
		publicEvents.GET("", controller.ListEvents)
		publicEvents.GET("/upcoming", controller.ListUpcoming)
		publicEvents.GET("/categories", controller.ListCategories)
		publicEvents.GET("/:id", controller.GetEvent)
	}

	// Organizer routes for managing their own events
	organizerEvents := router.Group("/organizer/events")
	organizerEvents.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireOrganizerOrAdmin())
	{
		organizerEvents.POST("", controller.CreateEvent)
		organizerEvents.GET("", controller.ListMine)
		organizerEvents.PUT("/:id", controller.UpdateEvent)
		organizerEvents.POST("/:id/publish", controller.PublishEvent)
		organizerEvents.POST("/:id/cancel", controller.CancelEvent)
		organizerEvents.DELETE("/:id", controller.DeleteEvent)
	}

	// Admin-only category management
	adminEvents := router.Group("/admin/events")
	adminEvents.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireAdmin())
	{
		adminEvents.POST("/categories", controller.CreateCategory)
	}
}
