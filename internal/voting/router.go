package voting

import (
	"github.com/gin-gonic/gin"

	"eventbuka/internal/shared/config"
	"eventbuka/internal/shared/middleware"
)

func SetupVotingRoutes(router *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	// Public voting surface under an event.
	events := router.Group("/events")
	{
		events.GET("/:id/voting/categories", controller.ListCategories)
	}

	categories := router.Group("/voting/categories")
	{
		categories.GET("/:categoryId/nominees", controller.ListNominees)

		authed := categories.Group("")
		authed.Use(middleware.JWTAuthWithConfig(cfg))
		{
			authed.POST("/:categoryId/nominees", controller.CreateNominee)
			authed.POST("/:categoryId/votes", controller.CastVote)
		}
	}

	organizer := router.Group("/organizer/events")
	organizer.Use(middleware.JWTAuthWithConfig(cfg))
	organizer.Use(middleware.RequireOrganizerOrAdmin())
	{
		organizer.POST("/:id/voting/categories", controller.CreateCategory)
	}

	admin := router.Group("/admin/voting")
	admin.Use(middleware.JWTAuthWithConfig(cfg))
	admin.Use(middleware.RequireAdmin())
	{
		admin.POST("/nominees/:nomineeId/approve", controller.ApproveNominee)
	}
}
