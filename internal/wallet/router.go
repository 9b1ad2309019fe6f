package wallet

import (
	"github.com/gin-gonic/gin"

	"eventbuka/internal/shared/config"
	"eventbuka/internal/shared/middleware"
)

func SetupWalletRoutes(router *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	wallet := router.Group("/wallet")
	wallet.Use(middleware.JWTAuthWithConfig(cfg))
	{
		wallet.GET("", controller.GetBalance)
		wallet.POST("/deposit", controller.Deposit)
		wallet.POST("/withdraw", controller.Withdraw)
		wallet.GET("/transactions", controller.GetHistory)
	}
}
