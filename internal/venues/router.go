package venues

import (
	"github.com/gin-gonic/gin"

	"eventbuka/internal/shared/config"
	"eventbuka/internal/shared/middleware"
)

func SetupVenueRoutes(router *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	public := router.Group("/venues")
	{
		public.GET("", controller.ListVenues)
		public.GET("/:id", controller.GetVenue)
	}

	admin := router.Group("/admin/venues")
	admin.Use(middleware.JWTAuthWithConfig(cfg))
	admin.Use(middleware.RequireAdmin())
	{
		admin.POST("", controller.CreateVenue)
		admin.PUT("/:id", controller.UpdateVenue)
		admin.DELETE("/:id", controller.DeleteVenue)
	}
}
