package users

import (
	"eventbuka/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(router *gin.RouterGroup, controller Controller) {
	// Authenticated self-service routes
	me := router.Group("/users/me")
	me.Use(middleware.JWTAuth())
	{
		me.GET("", controller.GetMyProfile)
		me.PUT("", controller.UpdateMyProfile)
		me.POST("/organizer-application", controller.ApplyForOrganizer)
	}

	// Admin routes
	admin := router.Group("/admin/users")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.GET("", controller.ListUsers)
		admin.GET("/organizer-applications", controller.ListApplications)
		admin.POST("/organizer-applications/:applicationId/review", controller.ReviewApplication)
	}
}
