package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anishop/internal/domain/setting"
	"anishop/internal/shared/logger"
	"anishop/internal/shared/utils"
)

// Maintenance blocks public write operations while the maintenance flag is
// set. Reads stay available so customers can still track existing orders,
// and the admin and bot surfaces are not gated. The flag is re-read on every
// request; settings are intentionally uncached.
type Maintenance struct {
	settings setting.Repository
	logger   logger.Interface
}

func NewMaintenance(settings setting.Repository, logger logger.Interface) *Maintenance {
	return &Maintenance{settings: settings, logger: logger}
}

func (m *Maintenance) BlockWrites() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		s, err := m.settings.Get(c.Request.Context(), setting.KeyMaintenanceMode)
		if err != nil {
			// Missing flag or a read failure never blocks traffic.
			c.Next()
			return
		}
		if s.BoolValue() {
			utils.ErrorResponse(c, http.StatusServiceUnavailable, "hệ thống đang bảo trì, vui lòng quay lại sau")
			c.Abort()
			return
		}

		c.Next()
	}
}
