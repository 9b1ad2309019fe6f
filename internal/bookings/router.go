package bookings

import (
	"github.com/gin-gonic/gin"

	"eventbuka/internal/shared/config"
	"eventbuka/internal/shared/middleware"
)

func SetupBookingRoutes(router *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	bookings := router.Group("/bookings")
	bookings.Use(middleware.JWTAuthWithConfig(cfg))
	{
		bookings.POST("/tickets", controller.BookTickets)
		bookings.POST("/seats", controller.BookSeats)
		bookings.GET("", controller.ListMyBookings)
		bookings.GET("/:bookingId", controller.GetBooking)
		bookings.POST("/:bookingId/cancel", controller.CancelBooking)
	}
}
