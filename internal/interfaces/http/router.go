package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anishop/internal/interfaces/http/middleware"
	"anishop/internal/interfaces/http/routes"
)

// setupRoutes attaches global middleware and registers every route group.
func (c *Container) setupRoutes() {
	c.engine.Use(middleware.Recovery())
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))

	c.engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	rateLimit := middleware.IPRateLimit(c.limiter, c.rateLimitConfig(), c.log)

	api := c.engine.Group("/api/v1")

	routes.SetupPublicRoutes(api, &routes.PublicRouteConfig{
		OrderHandler:   c.orderHandler,
		VoucherHandler: c.voucherHandler,
		SettingHandler: c.settingHandler,
		TicketHandler:  c.ticketHandler,
		AuthMiddleware: c.authMiddleware,
		Maintenance:    c.maintenance,
		RateLimit:      rateLimit,
	})

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler: c.authHandler,
		RateLimit:   rateLimit,
	})

	routes.SetupBotRoutes(api, &routes.BotRouteConfig{
		BotHandler: c.botHandler,
		APIKey:     middleware.APIKey(c.cfg.API.Key, c.log),
	})

	routes.SetupAdminRoutes(api, &routes.AdminRouteConfig{
		OrderHandler:   c.adminOrderHandler,
		VoucherHandler: c.adminVoucherHandler,
		TicketHandler:  c.adminTicketHandler,
		SettingHandler: c.adminSettingHandler,
		UserHandler:    c.adminUserHandler,
		AuthMiddleware: c.authMiddleware,
	})
}
