package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "anishop/internal/interfaces/http/handlers/auth"
)

type AuthRouteConfig struct {
	AuthHandler *authhandlers.Handler
	RateLimit   gin.HandlerFunc
}

func SetupAuthRoutes(api *gin.RouterGroup, config *AuthRouteConfig) {
	auth := api.Group("/auth")
	auth.Use(config.RateLimit)
	{
		auth.POST("/register", config.AuthHandler.Register)
		auth.POST("/login", config.AuthHandler.Login)
	}
}
