// Package botwebhook runs the small HTTP server inside the bot process that
// receives order-update pushes from the storefront backend.
package botwebhook

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anishop/internal/application/bot"
	"anishop/internal/shared/constants"
	"anishop/internal/shared/logger"
	"anishop/internal/shared/utils"
)

// NewEngine builds the webhook router. The endpoint is guarded by the same
// shared secret the bot uses to call the backend.
func NewEngine(pusher *bot.UpdatePusher, secret string, log logger.Interface) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.POST("/webhook/order-update", func(c *gin.Context) {
		if secret == "" || c.GetHeader(constants.HeaderAPIKey) != secret {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid API key")
			return
		}

		var ev bot.OrderUpdate
		if err := c.ShouldBindJSON(&ev); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}

		notified, err := pusher.HandleOrderUpdate(c.Request.Context(), ev)
		if err != nil {
			log.Errorw("failed to handle order update", "error", err, "order_code", ev.OrderCode)
			utils.ErrorResponse(c, http.StatusInternalServerError, "failed to push order update")
			return
		}

		utils.SuccessResponse(c, http.StatusOK, "", gin.H{"notified": notified})
	})

	return engine
}
