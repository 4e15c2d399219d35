package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anishop/internal/infrastructure/ratelimit"
	"anishop/internal/shared/logger"
	"anishop/internal/shared/utils"
)

// IPRateLimit throttles the public API per client IP using the shared
// redis-backed limiter. A limiter failure lets the request through rather
// than taking the whole surface down with redis.
func IPRateLimit(limiter ratelimit.RateLimiter, config ratelimit.Config, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), "ip:"+c.ClientIP(), config)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}
		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}
