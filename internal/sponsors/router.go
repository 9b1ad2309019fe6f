package sponsors

import (
	"github.com/gin-gonic/gin"

	"eventbuka/internal/shared/config"
	"eventbuka/internal/shared/middleware"
	"eventbuka/internal/users"
)

func SetupSponsorRoutes(router *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	group := router.Group("/sponsors")
	{
		group.GET("", controller.ListVerified)

		authed := group.Group("")
		authed.Use(middleware.JWTAuthWithConfig(cfg))
		{
			authed.POST("/profile", middleware.RequireRole(string(users.RoleSponsor)), controller.CreateProfile)
			authed.GET("/requests", middleware.RequireRole(string(users.RoleSponsor)), controller.ListMyRequests)
			authed.POST("/requests/:requestId/respond", middleware.RequireRole(string(users.RoleSponsor)), controller.RespondToRequest)
			authed.POST("/:id/requests", controller.RequestSponsorship)
		}

		group.GET("/:id", controller.GetSponsor)
	}

	admin := router.Group("/admin/sponsors")
	admin.Use(middleware.JWTAuthWithConfig(cfg))
	admin.Use(middleware.RequireAdmin())
	{
		admin.POST("/:id/verify", controller.VerifySponsor)
	}
}
