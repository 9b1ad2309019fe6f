package partners

import (
	"github.com/gin-gonic/gin"

	"eventbuka/internal/shared/config"
	"eventbuka/internal/shared/middleware"
	"eventbuka/internal/users"
)

func SetupPartnerRoutes(router *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	group := router.Group("/partners")
	{
		group.GET("", controller.ListVerified)

		authed := group.Group("")
		authed.Use(middleware.JWTAuthWithConfig(cfg))
		{
			authed.POST("/profile", middleware.RequireRole(string(users.RolePartner)), controller.CreateProfile)
			authed.GET("/requests", middleware.RequireRole(string(users.RolePartner)), controller.ListMyRequests)
			authed.POST("/requests/:requestId/respond", middleware.RequireRole(string(users.RolePartner)), controller.RespondToRequest)
			authed.POST("/:id/requests", controller.RequestService)
		}

		group.GET("/:id", controller.GetPartner)
	}

	admin := router.Group("/admin/partners")
	admin.Use(middleware.JWTAuthWithConfig(cfg))
	admin.Use(middleware.RequireAdmin())
	{
		admin.POST("/:id/verify", controller.VerifyPartner)
	}
}
