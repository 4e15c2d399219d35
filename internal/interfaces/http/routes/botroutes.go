package routes

import (
	"github.com/gin-gonic/gin"

	bothandlers "anishop/internal/interfaces/http/handlers/bot"
)

type BotRouteConfig struct {
	BotHandler *bothandlers.Handler
	APIKey     gin.HandlerFunc
}

// SetupBotRoutes registers the shared-secret surface consumed by the
// Telegram bot process.
func SetupBotRoutes(api *gin.RouterGroup, config *BotRouteConfig) {
	bot := api.Group("/bot")
	bot.Use(config.APIKey)
	{
		bot.POST("/orders", config.BotHandler.PlaceOrder)
		bot.GET("/orders/:code", config.BotHandler.GetOrder)
		bot.POST("/cleanup", config.BotHandler.Cleanup)
	}
}
