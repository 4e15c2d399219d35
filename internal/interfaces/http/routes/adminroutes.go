package routes

import (
	"github.com/gin-gonic/gin"

	adminhandlers "anishop/internal/interfaces/http/handlers/admin"
	"anishop/internal/interfaces/http/middleware"
)

type AdminRouteConfig struct {
	OrderHandler   *adminhandlers.OrderHandler
	VoucherHandler *adminhandlers.VoucherHandler
	TicketHandler  *adminhandlers.TicketHandler
	SettingHandler *adminhandlers.SettingHandler
	UserHandler    *adminhandlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupAdminRoutes(api *gin.RouterGroup, config *AdminRouteConfig) {
	admin := api.Group("/admin")
	admin.Use(config.AuthMiddleware.RequireAuth(), config.AuthMiddleware.RequireAdmin())
	{
		// Specific paths before parameterized ones so /orders/stats does not
		// match /orders/:id.
		admin.GET("/orders/stats", config.OrderHandler.GetStats)
		admin.GET("/orders", config.OrderHandler.ListOrders)
		admin.GET("/orders/:id", config.OrderHandler.GetOrder)
		admin.PATCH("/orders/:id", config.OrderHandler.UpdateOrder)
		admin.DELETE("/orders/:id", config.OrderHandler.DeleteOrder)

		admin.GET("/vouchers", config.VoucherHandler.ListVouchers)
		admin.POST("/vouchers", config.VoucherHandler.CreateVoucher)
		admin.PATCH("/vouchers/:id", config.VoucherHandler.ToggleVoucher)
		admin.DELETE("/vouchers/:id", config.VoucherHandler.DeleteVoucher)

		admin.GET("/tickets", config.TicketHandler.ListTickets)
		admin.POST("/tickets/:id/resolve", config.TicketHandler.ResolveTicket)

		admin.GET("/settings", config.SettingHandler.GetSettings)
		admin.PUT("/settings", config.SettingHandler.UpdateSettings)

		admin.GET("/users", config.UserHandler.ListUsers)
		admin.POST("/users/:id/role", config.UserHandler.ToggleRole)
		admin.POST("/users/:id/ban", config.UserHandler.BanUser)
		admin.DELETE("/users/:id/ban", config.UserHandler.UnbanUser)
	}
}
