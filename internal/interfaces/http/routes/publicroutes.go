package routes

import (
	"github.com/gin-gonic/gin"

	orderhandlers "anishop/internal/interfaces/http/handlers/order"
	settinghandlers "anishop/internal/interfaces/http/handlers/setting"
	tickethandlers "anishop/internal/interfaces/http/handlers/ticket"
	voucherhandlers "anishop/internal/interfaces/http/handlers/voucher"
	"anishop/internal/interfaces/http/middleware"
)

type PublicRouteConfig struct {
	OrderHandler   *orderhandlers.Handler
	VoucherHandler *voucherhandlers.Handler
	SettingHandler *settinghandlers.Handler
	TicketHandler  *tickethandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
	Maintenance    *middleware.Maintenance
	RateLimit      gin.HandlerFunc
}

// SetupPublicRoutes registers the anonymous storefront surface. Writes are
// maintenance-gated; everything is IP rate limited.
func SetupPublicRoutes(api *gin.RouterGroup, config *PublicRouteConfig) {
	public := api.Group("")
	public.Use(config.RateLimit)
	{
		public.POST("/orders",
			config.Maintenance.BlockWrites(),
			config.AuthMiddleware.OptionalAuth(),
			config.OrderHandler.PlaceOrder)
		public.GET("/orders/track/:code", config.OrderHandler.TrackOrder)

		public.GET("/vouchers", config.VoucherHandler.ListActive)
		public.GET("/settings/public", config.SettingHandler.GetPublic)

		public.POST("/tickets",
			config.Maintenance.BlockWrites(),
			config.TicketHandler.Create)
	}

	my := api.Group("/my")
	my.Use(config.RateLimit, config.AuthMiddleware.RequireAuth())
	{
		my.GET("/orders", config.OrderHandler.ListMyOrders)
	}
}
