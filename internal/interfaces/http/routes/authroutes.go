package routes

import (
	"github.com/gin-gonic/gin"

	"atelier/internal/interfaces/http/handlers"
)

// AuthRouteConfig holds dependencies for account routes.
type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
	RateLimit   gin.HandlerFunc // may be nil
}

// SetupAuthRoutes configures registration and login.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	if cfg.RateLimit != nil {
		auth.Use(cfg.RateLimit)
	}
	{
		auth.POST("/register", cfg.AuthHandler.Register)
		auth.POST("/login", cfg.AuthHandler.Login)
	}
}
