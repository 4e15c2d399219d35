package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"anishop/internal/shared/constants"
	"anishop/internal/shared/logger"
	"anishop/internal/shared/utils"
)

// APIKey guards the bot surface with a static shared secret. An empty
// configured key disables the surface entirely.
func APIKey(key string, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(constants.HeaderAPIKey)
		if key == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
			log.Warnw("rejected API key request", "client_ip", c.ClientIP(), "path", c.Request.URL.Path)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid API key")
			c.Abort()
			return
		}
		c.Next()
	}
}
